package token

// Position is a location in the source code: 0-based line, 1-based
// column, 0-based byte offset. Line and column come from the lexer's
// bookkeeping and are approximate diagnostics, not exact editor
// coordinates.
type Position struct {
	Line   int
	Column int
	Offset int
}

// Span is a half-open range in the source code.
type Span struct {
	Start Position
	End   Position
}

// Contains reports whether the span contains the given byte offset.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start.Offset && offset < s.End.Offset
}
