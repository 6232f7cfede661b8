// Package apiresult holds the results used to write jsonnetlexd's HTTP
// responses, decoupling handler logic from the mechanics of status codes,
// JSON marshaling, and headers.
package apiresult

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type ErrorResponse struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

// OK returns a Result containing an HTTP-200 wrapping respObj.
func OK(respObj interface{}, internalMsg ...interface{}) Result {
	return response(http.StatusOK, respObj, "OK", internalMsg)
}

// Created returns a Result containing an HTTP-201 wrapping respObj.
func Created(respObj interface{}, internalMsg ...interface{}) Result {
	return response(http.StatusCreated, respObj, "created", internalMsg)
}

// BadRequest returns a Result containing an HTTP-400 with userMsg as the
// message shown to the caller.
func BadRequest(userMsg string, internalMsg ...interface{}) Result {
	return errResult(http.StatusBadRequest, userMsg, "bad request", internalMsg)
}

// Unauthorized returns a Result containing an HTTP-401 along with the
// WWW-Authenticate header expected of a bearer-token-protected endpoint.
func Unauthorized(userMsg string, internalMsg ...interface{}) Result {
	if userMsg == "" {
		userMsg = "You are not authorized to do that"
	}
	return errResult(http.StatusUnauthorized, userMsg, "unauthorized", internalMsg).
		WithHeader("WWW-Authenticate", `Bearer realm="jsonnetlexd"`)
}

// NotFound returns a Result containing an HTTP-404.
func NotFound(internalMsg ...interface{}) Result {
	return errResult(http.StatusNotFound, "The requested resource was not found", "not found", internalMsg)
}

// UnprocessableEntity returns a Result containing an HTTP-422, used to
// report a StaticError raised while lexing a submitted source file.
func UnprocessableEntity(userMsg string, internalMsg ...interface{}) Result {
	return errResult(http.StatusUnprocessableEntity, userMsg, "unprocessable", internalMsg)
}

// InternalServerError returns a Result containing an HTTP-500.
func InternalServerError(internalMsg ...interface{}) Result {
	return errResult(http.StatusInternalServerError, "An internal server error occurred", "internal server error", internalMsg)
}

func fmtMsg(format string, args []interface{}) string {
	if len(args) >= 1 {
		if f, ok := args[0].(string); ok {
			return fmt.Sprintf(f, args[1:]...)
		}
	}
	return format
}

func response(status int, respObj interface{}, defaultMsg string, internalMsg []interface{}) Result {
	return Result{
		IsJSON:      true,
		Status:      status,
		InternalMsg: fmtMsg(defaultMsg, internalMsg),
		resp:        respObj,
	}
}

func errResult(status int, userMsg, defaultMsg string, internalMsg []interface{}) Result {
	return Result{
		IsJSON:      true,
		IsErr:       true,
		Status:      status,
		InternalMsg: fmtMsg(defaultMsg, internalMsg),
		resp:        ErrorResponse{Error: userMsg, Status: status},
	}
}

// Result is the outcome of one HTTP endpoint call: an HTTP status plus a
// response body not yet committed to the wire, so that handlers can build
// a Result and let a shared wrapper finish writing it out.
type Result struct {
	Status      int
	IsErr       bool
	IsJSON      bool
	InternalMsg string

	resp interface{}
	hdrs [][2]string

	respJSONBytes []byte
}

func (r Result) WithHeader(name, val string) Result {
	r.hdrs = append(append([][2]string{}, r.hdrs...), [2]string{name, val})
	return r
}

// WithBody replaces the response body that will be marshaled, keeping the
// Result's status and headers. Useful when the default ErrorResponse shape
// isn't specific enough, e.g. a StaticError's location needs to ride along.
func (r Result) WithBody(body interface{}) Result {
	r.resp = body
	r.respJSONBytes = nil
	return r
}

// PrepareMarshaledResponse marshals resp to JSON ahead of WriteResponse so
// that a marshal failure can be caught and reported as its own 500 rather
// than panicking mid-write.
func (r *Result) PrepareMarshaledResponse() error {
	if r.respJSONBytes != nil || !r.IsJSON {
		return nil
	}
	b, err := json.Marshal(r.resp)
	if err != nil {
		return err
	}
	r.respJSONBytes = b
	return nil
}

func (r Result) WriteResponse(w http.ResponseWriter) {
	if r.Status == 0 {
		panic("result not populated")
	}
	if err := r.PrepareMarshaledResponse(); err != nil {
		panic(fmt.Sprintf("could not marshal response: %s", err.Error()))
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	for _, h := range r.hdrs {
		w.Header().Set(h[0], h[1])
	}
	w.WriteHeader(r.Status)
	w.Write(r.respJSONBytes)
}
