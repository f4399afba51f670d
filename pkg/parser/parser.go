// Package parser implements a small tokenizer and the recursive-descent
// primitives built on top of it.
//
// # Usage
//
//	p := parser.New([]byte("wind 270 15.5"))
//	name := p.Text()
//	deg := p.Int()
//	kts := p.Float()
//	if err := p.Err(); err != nil {
//	    // handle error
//	}
//
// A Parser holds exactly one token of lookahead and a single latched
// error. The first failure wins: every later operation short-circuits
// and returns a filler value, so a grammar can run to completion and
// check Err once at the end instead of after every call.
//
// A Parser is single-use and not safe for concurrent use.
package parser

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/leapstack-labs/descent/pkg/token"
)

// eof is the sentinel returned by advance and peek at end of input, and
// unconditionally once an error has latched.
const eof = -1

// Parser is a parsing session: source bounds, scan position,
// line/column accounting, one token of lookahead, and the latched
// error.
type Parser struct {
	src  []byte
	pos  int
	line int
	col  int

	tok token.Token
	err error

	// Comments holds the # comments skipped during lexing, in source
	// order. The token stream is unaffected by them.
	Comments []token.Comment
}

// New creates a session over a borrowed buffer and primes the first
// token. The caller keeps ownership of src and must not mutate it while
// the session is live. Empty input yields an immediate EOF token.
func New(src []byte) *Parser {
	p := &Parser{
		src: src,
		col: 1,
	}
	p.Lex()
	return p
}

// NewFromReader creates a session over a private copy of r, read from
// its current position to end of stream. A read failure latches an
// error on the returned session.
func NewFromReader(r io.Reader) *Parser {
	src, err := io.ReadAll(r)
	if err != nil {
		p := &Parser{}
		p.Fail("can't read input (%s)", err)
		return p
	}
	return New(src)
}

// NewFromPath creates a session over the contents of the file at path.
// If the file can't be opened, the returned session carries an error
// naming the path and produces no tokens.
func NewFromPath(path string) *Parser {
	f, err := os.Open(path)
	if err != nil {
		p := &Parser{}
		p.Fail("can't open '%s' (%s)", path, reason(err))
		return p
	}
	defer f.Close()
	return NewFromReader(f)
}

// reason unwraps a path error down to the bare system message, e.g.
// "no such file or directory".
func reason(err error) string {
	var pe *os.PathError
	if errors.As(err, &pe) {
		return pe.Err.Error()
	}
	return err.Error()
}

// Close resets the session to an inert zero state. Idempotent.
func (p *Parser) Close() {
	*p = Parser{}
}

// Fail latches an error on the session. The first error wins; later
// calls are no-ops.
func (p *Parser) Fail(format string, args ...any) {
	if p.err != nil {
		return
	}
	p.err = fmt.Errorf(format, args...)
}

// Err returns the latched error, or nil.
func (p *Parser) Err() error { return p.err }

// Token returns the current lookahead token.
func (p *Parser) Token() token.Token { return p.tok }

// advance consumes one character and returns it, or eof at end of
// input. Once an error has latched it returns eof without moving, so
// unwinding code can keep probing a dead session.
//
// The line counter bumps when the character now at the read position is
// a newline, i.e. one character before the newline is consumed. This
// matches the historical bookkeeping; positions are approximate
// diagnostics.
func (p *Parser) advance() int {
	if p.err != nil {
		return eof
	}
	if p.pos >= len(p.src) {
		return eof
	}
	c := p.src[p.pos]
	p.pos++
	if p.pos < len(p.src) && p.src[p.pos] == '\n' {
		p.line++
		p.col = 0
	} else {
		p.col++
	}
	return int(c)
}

// peek returns the next character without consuming it, or eof.
func (p *Parser) peek() int {
	if p.err != nil {
		return eof
	}
	if p.pos >= len(p.src) {
		return eof
	}
	return int(p.src[p.pos])
}
