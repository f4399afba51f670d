package parser

import (
	"math"

	"github.com/leapstack-labs/descent/pkg/token"
)

// Have reports whether the current token has the given kind. No side
// effects.
func (p *Parser) Have(kind token.Kind) bool {
	return p.tok.Kind == kind
}

// Match consumes the current token and returns true if it has the given
// kind; otherwise it returns false and leaves the token in place.
func (p *Parser) Match(kind token.Kind) bool {
	if !p.Have(kind) {
		return false
	}
	p.Lex()
	return true
}

// Expect consumes the current token if it has the given kind, and
// latches a syntax error otherwise. No-op once an error has latched.
func (p *Parser) Expect(kind token.Kind) {
	if p.err != nil {
		return
	}
	if !p.Have(kind) {
		p.syntaxError(kind)
		return
	}
	p.Lex()
}

// syntaxError latches a "found X, but needed Y" error.
func (p *Parser) syntaxError(kind token.Kind) {
	p.Fail("found %s, but needed %s", p.tok.Kind.Describe(), kind.Describe())
}

// Int consumes an integer token and returns its value. A kind mismatch
// latches a syntax error and returns 0; once an error has latched, Int
// returns 0 without inspecting the token.
func (p *Parser) Int() int64 {
	if p.err != nil {
		return 0
	}
	if !p.Have(token.Int) {
		p.syntaxError(token.Int)
		return 0
	}
	v := p.tok.Int
	p.Lex()
	return v
}

// Float consumes an integer or float token and returns its value,
// widening integers. A kind mismatch latches a syntax error and returns
// NaN; once an error has already latched, Float returns 0 instead. The
// asymmetry is deliberate: callers can branch on math.IsNaN to tell a
// fresh mismatch from a poisoned session.
func (p *Parser) Float() float64 {
	if p.err != nil {
		return 0
	}
	if !p.Have(token.Int) && !p.Have(token.Float) {
		p.syntaxError(token.Float)
		return math.NaN()
	}
	v := p.tok.Float
	if p.tok.Kind == token.Int {
		v = float64(p.tok.Int)
	}
	p.Lex()
	return v
}

// Text consumes a word token and returns its text. A kind mismatch
// latches a syntax error and returns ""; once an error has latched,
// Text returns "".
func (p *Parser) Text() string {
	if p.err != nil {
		return ""
	}
	if !p.Have(token.Text) {
		p.syntaxError(token.Text)
		return ""
	}
	s := string(p.src[p.tok.Pos.Offset : p.tok.Pos.Offset+p.tok.Len])
	p.Lex()
	return s
}

// ReadText consumes a word token and copies its text into dst,
// truncating silently if dst is too small. The copied length is
// returned; dst is not NUL-terminated. A nil dst performs no copy and
// returns the token's true length, so callers can size a buffer in a
// first pass. The token is consumed on success either way.
func (p *Parser) ReadText(dst []byte) int {
	if p.err != nil {
		return 0
	}
	if !p.Have(token.Text) {
		p.syntaxError(token.Text)
		return 0
	}
	span := p.src[p.tok.Pos.Offset : p.tok.Pos.Offset+p.tok.Len]
	p.Lex()
	if dst == nil {
		return len(span)
	}
	return copy(dst, span)
}
