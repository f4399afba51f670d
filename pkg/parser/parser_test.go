package parser

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/descent/pkg/token"
)

func TestNewFromReader(t *testing.T) {
	p := NewFromReader(strings.NewReader("7 8"))
	require.NoError(t, p.Err())

	assert.Equal(t, int64(7), p.Int())
	assert.Equal(t, int64(8), p.Int())
	p.Expect(token.EOF)
	assert.NoError(t, p.Err())
}

func TestNewFromReaderMidStream(t *testing.T) {
	r := strings.NewReader("XXXXX7 8")
	_, err := io.CopyN(io.Discard, r, 5)
	require.NoError(t, err)

	// Reading starts at the reader's current position.
	p := NewFromReader(r)
	assert.Equal(t, int64(7), p.Int())
	assert.Equal(t, int64(8), p.Int())
	assert.NoError(t, p.Err())
}

func TestNewFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nums.txt")
	require.NoError(t, os.WriteFile(path, []byte("12 3.5\n"), 0o644))

	p := NewFromPath(path)
	require.NoError(t, p.Err())

	assert.Equal(t, int64(12), p.Int())
	assert.InDelta(t, 3.5, p.Float(), 1e-12)
	p.Expect(token.EOF)
	assert.NoError(t, p.Err())
}

func TestNewFromPathMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	p := NewFromPath(path)
	require.Error(t, p.Err())
	assert.Contains(t, p.Err().Error(), "can't open")
	assert.Contains(t, p.Err().Error(), path, "error names the path")

	// No valid token stream: probing is safe and yields nothing.
	assert.Equal(t, token.Invalid, p.Token().Kind)
	assert.Equal(t, token.Invalid, p.Lex().Kind)
}

func TestFailFirstWins(t *testing.T) {
	p := New([]byte("x"))

	p.Fail("first: %d", 1)
	p.Fail("second")
	require.EqualError(t, p.Err(), "first: 1")

	// Primitives after a latch leave the error untouched.
	p.Expect(token.Int)
	assert.EqualError(t, p.Err(), "first: 1")
}

func TestLexAfterErrorIsStale(t *testing.T) {
	p := New([]byte("a b"))
	tok := p.Token()

	p.Fail("boom")
	assert.Equal(t, tok, p.Lex(), "lexing a failed session returns the stale token")
	assert.Equal(t, tok, p.Token())
}

func TestClose(t *testing.T) {
	p := New([]byte("1 2 3"))
	p.Fail("boom")

	p.Close()
	assert.NoError(t, p.Err())
	assert.Equal(t, token.Token{}, p.Token())
	assert.Nil(t, p.Comments)

	// Idempotent.
	p.Close()
	assert.NoError(t, p.Err())
}
