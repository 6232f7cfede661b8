package lex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(toks []Token) []Kind {
	ks := make([]Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func TestLex_ObjectWithNegativeNumber(t *testing.T) {
	// S1
	toks, err := Lex("s1", []byte(`{ "a": 1, b: -2.5e+3 }`))
	require.NoError(t, err)

	assert.Equal(t, []Kind{
		BraceL, String, Colon, Number, Comma,
		Identifier, Colon, Operator, Number, BraceR, EndOfFile,
	}, kinds(toks))

	assert.Equal(t, "a", toks[1].Data)
	assert.Equal(t, "1", toks[3].Data)
	assert.Equal(t, "b", toks[5].Data)
	assert.Equal(t, "-", toks[7].Data)
	assert.Equal(t, "2.5e+3", toks[8].Data)
}

func TestLex_MinusNotFoldedIntoIdentifier(t *testing.T) {
	// S2
	toks, err := Lex("s2", []byte(`x-1`))
	require.NoError(t, err)

	require.Len(t, toks, 4)
	assert.Equal(t, Identifier, toks[0].Kind)
	assert.Equal(t, "x", toks[0].Data)
	assert.Equal(t, Operator, toks[1].Kind)
	assert.Equal(t, "-", toks[1].Data)
	assert.Equal(t, Number, toks[2].Kind)
	assert.Equal(t, "1", toks[2].Data)
	assert.Equal(t, EndOfFile, toks[3].Kind)
}

func TestLex_UnicodeEscapeInString(t *testing.T) {
	// S3
	toks, err := Lex("s3", []byte(`"\u00e9\n"`))
	require.NoError(t, err)

	require.Len(t, toks, 2)
	require.Equal(t, String, toks[0].Kind)
	assert.Equal(t, []byte{0xC3, 0xA9, 0x0A}, []byte(toks[0].Data))
}

func TestLex_TextBlock(t *testing.T) {
	// S4
	toks, err := Lex("s4", []byte("|||\n  hello\n  world\n|||"))
	require.NoError(t, err)

	require.Len(t, toks, 2)
	require.Equal(t, String, toks[0].Kind)
	assert.Equal(t, "hello\nworld\n", toks[0].Data)
	assert.Equal(t, EndOfFile, toks[1].Kind)
}

func TestLex_TextBlockRetainsDeeperIndentation(t *testing.T) {
	toks, err := Lex("s4b", []byte("|||\n  hello\n    nested\n  world\n|||"))
	require.NoError(t, err)

	require.Len(t, toks, 2)
	assert.Equal(t, "hello\n  nested\nworld\n", toks[0].Data)
}

func TestLex_AllCommentStylesSkipped(t *testing.T) {
	// S5
	toks, err := Lex("s5", []byte("// c\n/* d */ # e\nfoo"))
	require.NoError(t, err)

	require.Len(t, toks, 2)
	assert.Equal(t, Identifier, toks[0].Kind)
	assert.Equal(t, "foo", toks[0].Data)
	assert.Equal(t, 3, toks[0].Range.Begin.Line)
}

func TestLex_LeadingZeroIsRejected(t *testing.T) {
	_, err := Lex("s6a", []byte("0123"))
	require.Error(t, err)

	var se *StaticError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 1, se.Loc.Column)
}

func TestLex_JunkAfterDecimalPoint(t *testing.T) {
	_, err := Lex("s6b", []byte("1."))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "junk after decimal point")
}

func TestLex_UnterminatedBlockComment(t *testing.T) {
	_, err := Lex("s6c", []byte("/*"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Multi-line comment has no terminating */.")
}

func TestLex_EmptyInputYieldsOnlyEOF(t *testing.T) {
	toks, err := Lex("empty", []byte(""))
	require.NoError(t, err)

	require.Len(t, toks, 1)
	assert.Equal(t, EndOfFile, toks[0].Kind)
	assert.Equal(t, toks[0].Range.Begin, toks[0].Range.End)
	assert.Equal(t, Location{Line: 1, Column: 1}, toks[0].Range.Begin)
}

func TestLex_KeywordsAreNotIdentifiers(t *testing.T) {
	toks, err := Lex("kw", []byte("local x = if true then self else super"))
	require.NoError(t, err)

	assert.Equal(t, []Kind{
		Local, Identifier, Operator, If, True, Then, Self, Else, Super, EndOfFile,
	}, kinds(toks))
	assert.Equal(t, "x", toks[1].Data)
	assert.Empty(t, toks[0].Data)
}

func TestLex_BangEqualsIsTwoCharOperator(t *testing.T) {
	toks, err := Lex("ne", []byte("a != b"))
	require.NoError(t, err)

	require.Len(t, toks, 4)
	assert.Equal(t, Operator, toks[1].Kind)
	assert.Equal(t, "!=", toks[1].Data)
}

func TestLex_SymbolRunFormsSingleOperatorToken(t *testing.T) {
	toks, err := Lex("run", []byte("a <<= b"))
	require.NoError(t, err)

	require.Len(t, toks, 4)
	assert.Equal(t, Operator, toks[1].Kind)
	assert.Equal(t, "<<=", toks[1].Data)
}

func TestLex_HashNeverBeginsAnOperator(t *testing.T) {
	toks, err := Lex("hash", []byte("a # comment\nb"))
	require.NoError(t, err)

	require.Len(t, toks, 3)
	assert.Equal(t, Identifier, toks[0].Kind)
	assert.Equal(t, Identifier, toks[1].Kind)
	assert.Equal(t, "b", toks[1].Data)
}

func TestLex_HashContinuesAnOperatorRunMidSymbol(t *testing.T) {
	toks, err := Lex("hashmid", []byte("a=#b\nc"))
	require.NoError(t, err)

	require.Len(t, toks, 5)
	assert.Equal(t, Identifier, toks[0].Kind)
	assert.Equal(t, Operator, toks[1].Kind)
	assert.Equal(t, "=#", toks[1].Data)
	assert.Equal(t, Identifier, toks[2].Kind)
	assert.Equal(t, "b", toks[2].Data)
	assert.Equal(t, Identifier, toks[3].Kind)
	assert.Equal(t, "c", toks[3].Data)
}

func TestLex_SingleQuoteIsNotAStringDelimiter(t *testing.T) {
	_, err := Lex("quote", []byte(`it's`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `Could not lex the character '''`)
}

func TestLex_UnlexableControlByte(t *testing.T) {
	_, err := Lex("ctl", []byte{0x01})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Could not lex the character code 1")
}

func TestLex_CarriageReturnDoesNotAdvanceLine(t *testing.T) {
	toks, err := Lex("crlf", []byte("a\r\nb"))
	require.NoError(t, err)

	require.Len(t, toks, 3)
	assert.Equal(t, 1, toks[0].Range.Begin.Line)
	assert.Equal(t, 2, toks[1].Range.Begin.Line)
}

func TestLex_EndOfFileLocationIsOnePastLastChar(t *testing.T) {
	toks, err := Lex("eoftok", []byte("ab"))
	require.NoError(t, err)

	require.Len(t, toks, 2)
	eof := toks[1]
	assert.Equal(t, Location{Line: 1, Column: 3}, eof.Range.Begin)
	assert.Equal(t, eof.Range.Begin, eof.Range.End)
}
