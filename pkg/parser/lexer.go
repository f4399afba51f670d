package parser

import (
	"errors"
	"strconv"
	"strings"

	"github.com/leapstack-labs/descent/pkg/token"
)

// Lex skips insignificant input, recognizes the next token, and leaves
// it as the current lookahead. Once an error has latched, Lex returns
// the stale current token unchanged. At end of input it keeps producing
// EOF tokens.
func (p *Parser) Lex() token.Token {
	if p.err != nil {
		return p.tok
	}

	p.skipInsignificant()

	pos := token.Position{Line: p.line, Column: p.col, Offset: p.pos}

	c := p.peek()
	if c == eof {
		p.tok = token.Token{Kind: token.EOF, Pos: pos}
		return p.tok
	}
	if !isTokenChar(c) {
		// Stray character: zero-length Invalid token, not consumed.
		p.tok = token.Token{Kind: token.Invalid, Pos: pos}
		return p.tok
	}
	p.tok = p.scanToken(pos)
	return p.tok
}

// skipInsignificant consumes whitespace and # comments, which may
// interleave freely. A comment runs up to but not including the next
// newline.
func (p *Parser) skipInsignificant() {
	for {
		switch p.peek() {
		case ' ', '\t', '\r', '\n':
			p.advance()
		case '#':
			p.collectComment()
		default:
			return
		}
	}
}

// collectComment consumes a # comment and records it with its span.
func (p *Parser) collectComment() {
	start := token.Position{Line: p.line, Column: p.col, Offset: p.pos}
	for p.peek() != '\n' && p.peek() != eof {
		p.advance()
	}
	end := token.Position{Line: p.line, Column: p.col, Offset: p.pos}
	p.Comments = append(p.Comments, token.Comment{
		Text: string(p.src[start.Offset:end.Offset]),
		Span: token.Span{Start: start, End: end},
	})
}

// Classification states for scanToken. The guess starts at the most
// restrictive kind and only ever relaxes toward text.
const (
	stateInt = iota
	stateFloat
	stateExpSign
	stateExp
	stateText
)

// scanToken consumes a maximal run of token characters plus the single
// character terminating the run, refining the classification as it
// goes. A leading + or - is a sign and is never classified; integer and
// float kinds additionally require at least one digit, so a lone sign
// or dot comes out as a word.
func (p *Parser) scanToken(pos token.Position) token.Token {
	state := stateInt
	sawDigit := false
	length := 1

	c := p.advance()
	if c != '+' && c != '-' {
		state = transition(state, c)
		if isDigit(c) {
			sawDigit = true
		}
	}
	for {
		c = p.advance()
		if !isTokenChar(c) {
			break
		}
		length++
		state = transition(state, c)
		if isDigit(c) {
			sawDigit = true
		}
	}

	tok := token.Token{Pos: pos, Len: length}
	switch {
	case state == stateInt && sawDigit:
		tok.Kind = token.Int
	case (state == stateFloat || state == stateExp) && sawDigit:
		tok.Kind = token.Float
	default:
		tok.Kind = token.Text
	}

	span := p.src[pos.Offset : pos.Offset+length]
	switch tok.Kind {
	case token.Int:
		tok.Int = decodeInt(span)
	case token.Float:
		tok.Float = decodeFloat(span)
	}
	return tok
}

// transition advances the classification state machine by one
// character.
func transition(state, c int) int {
	switch state {
	case stateInt:
		if c == '.' {
			return stateFloat
		}
		if !isDigit(c) {
			return stateText
		}
	case stateFloat:
		if c == 'e' || c == 'E' {
			return stateExpSign
		}
		if !isDigit(c) {
			return stateText
		}
	case stateExpSign:
		// A digit straight after the e is not accepted as an exponent;
		// an explicit sign is required.
		if c == '+' || c == '-' {
			return stateExp
		}
		return stateText
	case stateExp:
		if !isDigit(c) {
			return stateText
		}
	}
	return state
}

// decodeInt decodes a span already classified as an integer literal.
// Range errors are ignored; out-of-range literals saturate.
func decodeInt(span []byte) int64 {
	v, _ := strconv.ParseInt(string(span), 10, 64)
	return v
}

// decodeFloat decodes a span already classified as a float literal. The
// classifier accepts a dangling exponent ("1.5e+"); strconv does not,
// so on a syntax error retry with the exponent suffix stripped, which
// keeps the longest-valid-prefix behavior callers rely on. A range
// error already carries the saturated value (±Inf), which is returned
// as is.
func decodeFloat(span []byte) float64 {
	s := string(span)
	v, err := strconv.ParseFloat(s, 64)
	if err == nil || !errors.Is(err, strconv.ErrSyntax) {
		return v
	}
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		v, _ = strconv.ParseFloat(s[:i], 64)
	}
	return v
}

// isTokenChar reports whether c belongs to a token: alphanumeric, dot,
// plus, or minus.
func isTokenChar(c int) bool {
	return isDigit(c) || isLetter(c) || c == '.' || c == '+' || c == '-'
}

func isLetter(c int) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c int) bool {
	return c >= '0' && c <= '9'
}

// Tokenize drains src and returns every token up to and including EOF.
// A stray character produces a trailing Invalid token and stops the
// drain, since Invalid tokens never advance.
func Tokenize(src []byte) ([]token.Token, error) {
	p := New(src)
	var tokens []token.Token
	for {
		tok := p.Token()
		if err := p.Err(); err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF || tok.Kind == token.Invalid {
			return tokens, nil
		}
		p.Lex()
	}
}
