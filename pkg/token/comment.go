package token

// Comment is a # line comment skipped by the lexer, retained for tools
// that want to inspect source trivia. Text includes the leading # and
// excludes the terminating newline.
type Comment struct {
	Text string
	Span Span
}
