// Package lexservice implements the HTTP-facing domain logic behind
// cmd/jsonnetlexd: issuing bearer tokens for a single configured operator
// account, running package lex against submitted source text, and
// recording each call in internal/history.
package lexservice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/johnboiles/jsonnet/internal/apierr"
	"github.com/johnboiles/jsonnet/internal/history"
	"github.com/johnboiles/jsonnet/lex"
)

// OperatorUsername is the single account jsonnetlexd authenticates; there
// is no multi-user story here, only a shared operator credential guarding
// the /v1/lex endpoint.
const OperatorUsername = "operator"

// Service holds everything a running jsonnetlexd needs to answer
// requests. The zero value is not usable; build one with New.
type Service struct {
	secret       []byte
	passwordHash string
	history      *history.Store
}

// New builds a Service. secret signs issued JWTs; passwordHash is the
// bcrypt hash of the one operator account's password; hist may be nil, in
// which case /v1/lex still works but nothing is recorded and
// GET /v1/history/{id} always 404s.
func New(secret []byte, passwordHash string, hist *history.Store) *Service {
	return &Service{secret: secret, passwordHash: passwordHash, history: hist}
}

// CheckPassword reports whether password matches the configured operator
// credential.
func (s *Service) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)) == nil
}

// LexResult is the outcome of one lex call, successful or not, in a shape
// convenient for both the HTTP handler and internal/history.
type LexResult struct {
	Tokens   []lex.Token
	Err      *lex.StaticError
	Duration time.Duration
}

// Lex runs package lex against src and records the outcome to history.
// A history write failure is returned as an error wrapping apierr.ErrDB,
// alongside the already-populated LexResult.
func (s *Service) Lex(ctx context.Context, filename string, src []byte) (LexResult, error) {
	start := time.Now()
	tokens, err := lex.Lex(filename, src)
	elapsed := time.Since(start)

	result := LexResult{Tokens: tokens, Duration: elapsed}

	rec := history.Record{
		Filename:  filename,
		ByteCount: len(src),
		Duration:  elapsed,
	}

	if err != nil {
		se, ok := err.(*lex.StaticError)
		if !ok {
			return result, fmt.Errorf("unexpected lex error type: %w", err)
		}
		result.Err = se
		rec.OK = false
		rec.ErrMessage = se.Error()
	} else {
		rec.OK = true
		rec.TokenCount = len(tokens)
	}

	if s.history != nil {
		if _, histErr := s.history.Record(ctx, rec); histErr != nil {
			return result, fmt.Errorf("%w: %s", apierr.ErrDB, histErr)
		}
	}

	return result, nil
}

// History fetches a previously recorded lex call by ID.
func (s *Service) History(ctx context.Context, id string) (history.Record, error) {
	if s.history == nil {
		return history.Record{}, apierr.ErrNotFound
	}
	parsedID, err := uuid.Parse(id)
	if err != nil {
		return history.Record{}, apierr.New("invalid history id", apierr.ErrBadArgument)
	}
	rec, err := s.history.GetByID(ctx, parsedID)
	if err != nil {
		return history.Record{}, err
	}
	return rec, nil
}
