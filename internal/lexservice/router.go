package lexservice

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/johnboiles/jsonnet/internal/apiresult"
)

// Router builds the chi router for jsonnetlexd. UnauthDelay is the pause
// added before sending a 401/422/500, the same deprioritization tactic
// server/api/api.go uses for unauthorized or failing requests.
func Router(svc *Service, unauthDelay time.Duration) http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)

	r.Post("/v1/login", endpoint(unauthDelay, svc.handleLogin))
	r.Post("/v1/tokens", endpoint(unauthDelay, svc.requireAuth(svc.handleRefresh)))
	r.Post("/v1/lex", endpoint(unauthDelay, svc.requireAuth(svc.handleLex)))
	r.Get("/v1/history/{id}", endpoint(unauthDelay, svc.requireAuth(svc.handleHistory)))

	return r
}

type endpointFunc func(req *http.Request) apiresult.Result

func endpoint(unauthDelay time.Duration, fn endpointFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		defer panicTo500(w)

		res := fn(req)

		if res.IsErr {
			logResponse("ERROR", req, res.Status, res.InternalMsg)
		} else {
			logResponse("INFO", req, res.Status, res.InternalMsg)
		}

		switch res.Status {
		case http.StatusUnauthorized, http.StatusInternalServerError, http.StatusUnprocessableEntity:
			time.Sleep(unauthDelay)
		}

		res.WriteResponse(w)
	}
}

func panicTo500(w http.ResponseWriter) {
	if panicErr := recover(); panicErr != nil {
		res := apiresult.InternalServerError("panic: %v", panicErr)
		res.WriteResponse(w)
	}
}

func logResponse(level string, req *http.Request, status int, msg string) {
	for len(level) < 5 {
		level += " "
	}
	remoteIP := strings.SplitN(req.RemoteAddr, ":", 2)[0]
	reqID, _ := req.Context().Value(requestIDKey).(uuid.UUID)
	log.Printf("%s %s %s %s %s: HTTP-%d %s", level, reqID, remoteIP, req.Method, req.URL.Path, status, msg)
}

type contextKey string

const requestIDKey contextKey = "request-id"

// requestIDMiddleware assigns every request a google/uuid request ID,
// stashes it in the request context for logging, and echoes it back in
// the X-Request-Id response header.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		id := uuid.New()
		w.Header().Set("X-Request-Id", id.String())
		ctx := context.WithValue(req.Context(), requestIDKey, id)
		next.ServeHTTP(w, req.WithContext(ctx))
	})
}

// requireAuth wraps an endpointFunc so it only runs once bearerToken
// produces a token that VerifyToken accepts.
func (s *Service) requireAuth(fn endpointFunc) endpointFunc {
	return func(req *http.Request) apiresult.Result {
		tok, err := bearerToken(req)
		if err != nil {
			return apiresult.Unauthorized("", err.Error())
		}
		if err := s.VerifyToken(tok); err != nil {
			return apiresult.Unauthorized("", fmt.Sprintf("invalid token: %s", err))
		}
		return fn(req)
	}
}
