package lex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComment_SlashStarSlashDoesNotSelfClose(t *testing.T) {
	// the opening "/*" is consumed as a pair, so the very next "/" can't
	// be mistaken for the closing half of "*/".
	toks, err := Lex("c1", []byte("/*/ still inside */x"))
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, Identifier, toks[0].Kind)
	assert.Equal(t, "x", toks[0].Data)
}

func TestComment_LineCommentStopsAtNewline(t *testing.T) {
	toks, err := Lex("c2", []byte("a // trailing\nb"))
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, 1, toks[0].Range.Begin.Line)
	assert.Equal(t, 2, toks[1].Range.Begin.Line)
}

func TestComment_HashLineComment(t *testing.T) {
	toks, err := Lex("c3", []byte("# whole line is a comment\nok"))
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, "ok", toks[0].Data)
}

func TestComment_BlockCommentAdvancesLineCounter(t *testing.T) {
	toks, err := Lex("c4", []byte("/* line1\nline2\nline3 */x"))
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, 3, toks[0].Range.Begin.Line)
}
