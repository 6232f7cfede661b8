// Package srcload reads source files for cmd/jsonnetlex, transcoding
// non-UTF-8 input to UTF-8 before it ever reaches package lex. This is
// loader plumbing sitting in front of the lexer, not the parser/AST/
// evaluator front end spec.md places out of scope.
package srcload

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/htmlindex"
)

// Read loads the file at path and returns its contents as UTF-8 bytes.
// encodingName is an IANA/WHATWG label such as "utf-8", "iso-8859-1", or
// "windows-1252"; an empty string is treated as "utf-8".
func Read(path, encodingName string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadFrom(f, encodingName)
}

// ReadFrom transcodes r's bytes from encodingName to UTF-8.
func ReadFrom(r io.Reader, encodingName string) ([]byte, error) {
	if encodingName == "" || encodingName == "utf-8" {
		return io.ReadAll(r)
	}

	enc, err := htmlindex.Get(encodingName)
	if err != nil {
		return nil, fmt.Errorf("unknown source encoding %q: %w", encodingName, err)
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	decoded, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return nil, fmt.Errorf("could not decode source as %q: %w", encodingName, err)
	}
	return decoded, nil
}
