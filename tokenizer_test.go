package plorth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeWordsAndDelimiters(t *testing.T) {
	toks, err := Tokenize(`1 2 + ( dup ) [1, 2]`, "<test>", 1)
	require.Nil(t, err)

	kinds := make([]TokenKind, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}
	assert.Equal(t, []TokenKind{
		TokWord, TokWord, TokWord,
		TokLParen, TokWord, TokRParen,
		TokLBrack, TokWord, TokComma, TokWord, TokRBrack,
	}, kinds)
}

func TestTokenizeStringEscapes(t *testing.T) {
	toks, err := Tokenize(`"a\nb\tc\"d\\eé"`, "<test>", 1)
	require.Nil(t, err)
	require.Len(t, toks, 1)
	assert.Equal(t, TokString, toks[0].Kind)
	assert.Equal(t, "a\nb\tc\"d\\eé", toks[0].Text)
}

func TestTokenizeCommentIsSkippedToEndOfLine(t *testing.T) {
	toks, err := Tokenize("1 # this is a comment\n2", "<test>", 1)
	require.Nil(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, "1", toks[0].Text)
	assert.Equal(t, "2", toks[1].Text)
	assert.Equal(t, 2, toks[1].Pos.Line)
}

func TestTokenizeUnterminatedStringIsSyntaxError(t *testing.T) {
	_, err := Tokenize(`"unterminated`, "<test>", 1)
	require.NotNil(t, err)
	assert.Equal(t, ErrSyntax, err.Code)
}

func TestTokenizeUnknownEscapeIsSyntaxError(t *testing.T) {
	_, err := Tokenize(`"\q"`, "<test>", 1)
	require.NotNil(t, err)
	assert.Equal(t, ErrSyntax, err.Code)
}

func TestTokenizeInvalidUnicodeEscapeIsSyntaxError(t *testing.T) {
	_, err := Tokenize(`"\u00zz"`, "<test>", 1)
	require.NotNil(t, err)
	assert.Equal(t, ErrSyntax, err.Code)
}

func TestTokenizePositionsTrackLineAndColumn(t *testing.T) {
	toks, err := Tokenize("foo\nbar", "<test>", 1)
	require.Nil(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, Position{Filename: "<test>", Line: 1, Column: 1}, toks[0].Pos)
	assert.Equal(t, Position{Filename: "<test>", Line: 2, Column: 1}, toks[1].Pos)
}

func TestUpdateBracketStackTracksNesting(t *testing.T) {
	var stack BracketStack
	stack = UpdateBracketStack(stack, `1 ( 2 [ 3`)
	assert.Equal(t, BracketStack{')', ']'}, stack)

	stack = UpdateBracketStack(stack, `] )`)
	assert.Empty(t, stack)
}

func TestUpdateBracketStackIgnoresMismatchedCloser(t *testing.T) {
	var stack BracketStack
	stack = UpdateBracketStack(stack, `(`)
	stack = UpdateBracketStack(stack, `]`)
	assert.Equal(t, BracketStack{')'}, stack)
}
