// Package token defines the token kinds and position types produced by
// the lexer.
//
// Only three lexical categories exist: words, integers, and floats.
// Grammars that need keywords or symbols layer their own recognition on
// top by inspecting the text of word tokens.
package token

import "fmt"

// Kind classifies a token. Invalid is the zero value.
type Kind int

const (
	Invalid Kind = iota // stray character where a token was expected
	Text                // maximal run of token characters with no numeric shape
	Int                 // [+-]?[0-9]+
	Float               // decimal literal with optional signed exponent
	EOF                 // end of input
)

// String returns a short debug name for the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("KIND(%d)", int(k))
}

var kindNames = map[Kind]string{
	Invalid: "INVALID",
	Text:    "TEXT",
	Int:     "INT",
	Float:   "FLOAT",
	EOF:     "EOF",
}

// Describe returns the human phrase used in syntax errors, as in
// "found a word, but needed an integer".
func (k Kind) Describe() string {
	if desc, ok := kindDescriptions[k]; ok {
		return desc
	}
	return fmt.Sprintf("KIND(%d)", int(k))
}

var kindDescriptions = map[Kind]string{
	Invalid: "an invalid token",
	Text:    "a word",
	Int:     "an integer",
	Float:   "a number",
	EOF:     "the end of file",
}

// Token is a classified, positioned span of source characters.
//
// Int is meaningful only when Kind is Int, and Float only when Kind is
// Float; both are zero otherwise.
type Token struct {
	Kind Kind
	Pos  Position // position of the token's first character
	Len  int      // number of source characters in the token

	Int   int64
	Float float64
}

// Text returns the token's raw characters from the source buffer it
// was lexed from.
func (t Token) Text(src []byte) string {
	return string(src[t.Pos.Offset : t.Pos.Offset+t.Len])
}
