package lex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lexOneString(t *testing.T, src string) (string, error) {
	toks, err := Lex("t", []byte(src))
	if err != nil {
		return "", err
	}
	require.GreaterOrEqual(t, len(toks), 1)
	return toks[0].Data, nil
}

func TestString_BasicEscapes(t *testing.T) {
	data, err := lexOneString(t, `"a\tb\nc\\d\"e"`)
	require.NoError(t, err)
	assert.Equal(t, "a\tb\nc\\d\"e", data)
}

func TestString_UnicodeEscapeEncodesBMPCodepoint(t *testing.T) {
	data, err := lexOneString(t, "\"\\u00e9\"")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xC3, 0xA9}, []byte(data))
}

func TestString_LoneSurrogateIsEncodedAsIs(t *testing.T) {
	// \uD800 is a lone high surrogate with no paired low surrogate; it must
	// not be rejected or remapped to U+FFFD.
	data, err := lexOneString(t, `"\uD800"`)
	require.NoError(t, err)
	assert.Equal(t, []byte(encodeCodePoint(0xD800)), []byte(data))
}

func TestString_UnterminatedAtEOF(t *testing.T) {
	_, err := lexOneString(t, `"abc`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unterminated string")
}

func TestString_TruncatedEscapeAtEOF(t *testing.T) {
	_, err := lexOneString(t, `"abc\`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Truncated escape sequence in string literal.")
}

func TestString_UnknownEscape(t *testing.T) {
	_, err := lexOneString(t, `"\q"`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unknown escape sequence in string literal: 'q'")
}

func TestString_MalformedUnicodeHexDigit(t *testing.T) {
	_, err := lexOneString(t, `"\u00zz"`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Malformed unicode escape character, should be hex: 'z'")
}

func TestString_TruncatedUnicodeEscapeAtClosingQuote(t *testing.T) {
	_, err := lexOneString(t, `"\u00"`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Truncated unicode escape sequence in string literal.")
}

func TestString_RawNewlineIsPreservedAndAdvancesLine(t *testing.T) {
	toks, err := Lex("t", []byte("\"a\nb\"\nc"))
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, "a\nb", toks[0].Data)
	assert.Equal(t, 3, toks[1].Range.Begin.Line)
}

func TestEncodeCodePoint_Ranges(t *testing.T) {
	assert.Equal(t, []byte{0x41}, encodeCodePoint(0x41))
	assert.Equal(t, []byte{0xC3, 0x89}, encodeCodePoint(0xC9))
	assert.Equal(t, []byte{0xE0, 0xA4, 0x80}, encodeCodePoint(0x0900))
}
