package lex

import (
	"fmt"
	"strings"
)

// StaticError is a fatal lexing error tied to the location of the token
// that was being scanned when the problem was found.
//
// StaticError is non-recoverable at lexer scope: Lex returns the first one
// it hits and does not attempt to resume.
type StaticError struct {
	Filename string
	Loc      Location
	Message  string

	sourceLine string
}

func (e *StaticError) Error() string {
	if e.Filename == "" {
		return fmt.Sprintf("%s: %s", e.Loc, e.Message)
	}
	return fmt.Sprintf("%s:%s: %s", e.Filename, e.Loc, e.Message)
}

// SourceLine returns the full text of the line the error occurred on, or
// an empty string if none was captured.
func (e *StaticError) SourceLine() string {
	return e.sourceLine
}

// FullMessage renders the offending source line with a caret under the
// error column, in the style tunascript.SyntaxError.FullMessage shows
// operators of this language's expression evaluator.
func (e *StaticError) FullMessage() string {
	if e.sourceLine == "" {
		return e.Error()
	}
	caret := strings.Repeat(" ", e.Loc.Column-1) + "^"
	return e.sourceLine + "\n" + caret + "\n" + e.Error()
}

// tokenStart carries the fixed facts about the token currently being
// scanned — its filename, its starting Location, and the text of the line
// it starts on — so that any sub-scanner can build a StaticError without
// re-deriving them.
type tokenStart struct {
	filename string
	loc      Location
	line     string
}

func (ts tokenStart) err(format string, args ...interface{}) *StaticError {
	return &StaticError{
		Filename:   ts.filename,
		Loc:        ts.loc,
		Message:    fmt.Sprintf(format, args...),
		sourceLine: ts.line,
	}
}

func unlexableCharError(ts tokenStart, ch byte) error {
	if ch < 32 {
		return ts.err("Could not lex the character code %d", ch)
	}
	return ts.err("Could not lex the character '%c'", ch)
}
