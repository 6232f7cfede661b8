// Package apierr holds error values shared across jsonnetlexd's HTTP
// surface. It contains the Error type, which can be created with one or
// more "cause" errors. Calling errors.Is() on this Error type with an
// argument consisting of any of the errors it has as a cause will return
// true.
package apierr

import "errors"

var (
	ErrBadCredentials = errors.New("the supplied username/password combination is incorrect")
	ErrUnauthorized   = errors.New("a valid bearer token is required")
	ErrNotFound       = errors.New("the requested entity could not be found")
	ErrBadArgument    = errors.New("one or more of the arguments is invalid")
	ErrBodyUnmarshal  = errors.New("malformed data in request")
	ErrDB             = errors.New("an error occurred with the history store")
)

// Error is a typed error returned by internal/lexservice as its error
// value. It carries both a message and one or more causes, and is
// compatible with errors.Is: calling errors.Is on an Error with any of its
// causes as the target returns true.
type Error struct {
	msg   string
	cause []error
}

// New builds an Error with the given message and causes.
func New(msg string, cause ...error) Error {
	return Error{msg: msg, cause: cause}
}

func (e Error) Error() string {
	if e.msg == "" && len(e.cause) > 0 {
		return e.cause[0].Error()
	}
	if len(e.cause) > 0 {
		return e.msg + ": " + e.cause[0].Error()
	}
	return e.msg
}

func (e Error) Unwrap() []error {
	if len(e.cause) > 0 {
		return e.cause
	}
	return nil
}

func (e Error) Is(target error) bool {
	for _, c := range e.cause {
		if c == target {
			return true
		}
		if wrapped, ok := c.(Error); ok && wrapped.Is(target) {
			return true
		}
	}
	return false
}
