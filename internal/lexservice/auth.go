package lexservice

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken issues a bearer token for the operator account. The
// signing key is derived from the service secret plus the configured
// password hash, the same composition server/token.go uses (secret plus a
// per-principal value) so that rotating the operator password invalidates
// every previously issued token.
func (s *Service) GenerateToken() (string, error) {
	claims := &jwt.MapClaims{
		"iss": "jsonnetlexd",
		"sub": OperatorUsername,
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)

	tokStr, err := tok.SignedString(s.signingKey())
	if err != nil {
		return "", err
	}
	return tokStr, nil
}

// VerifyToken validates tok and reports whether it was issued by this
// Service for the operator account.
func (s *Service) VerifyToken(tok string) error {
	_, err := jwt.Parse(tok, func(t *jwt.Token) (interface{}, error) {
		return s.signingKey(), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}),
		jwt.WithIssuer("jsonnetlexd"),
		jwt.WithSubject(OperatorUsername),
		jwt.WithLeeway(time.Minute))
	return err
}

func (s *Service) signingKey() []byte {
	var key []byte
	key = append(key, s.secret...)
	key = append(key, []byte(s.passwordHash)...)
	return key
}

// bearerToken extracts the token from a request's Authorization header.
func bearerToken(req *http.Request) (string, error) {
	authHeader := strings.TrimSpace(req.Header.Get("Authorization"))
	if authHeader == "" {
		return "", fmt.Errorf("no authorization header present")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", fmt.Errorf("authorization header not in Bearer format")
	}

	scheme := strings.TrimSpace(strings.ToLower(parts[0]))
	token := strings.TrimSpace(parts[1])
	if scheme != "bearer" {
		return "", fmt.Errorf("authorization header not in Bearer format")
	}
	return token, nil
}
