package lexservice

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/johnboiles/jsonnet/internal/apiresult"
	"github.com/johnboiles/jsonnet/lex"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

func (s *Service) handleLogin(req *http.Request) apiresult.Result {
	var body loginRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return apiresult.BadRequest("malformed JSON body", "decode login request: %s", err)
	}

	if body.Username != OperatorUsername || !s.CheckPassword(body.Password) {
		return apiresult.Unauthorized("the supplied username/password combination is incorrect", "bad credentials for %q", body.Username)
	}

	tok, err := s.GenerateToken()
	if err != nil {
		return apiresult.InternalServerError("generate token: %s", err)
	}

	return apiresult.OK(tokenResponse{Token: tok}, "issued token for %s", OperatorUsername)
}

func (s *Service) handleRefresh(req *http.Request) apiresult.Result {
	tok, err := s.GenerateToken()
	if err != nil {
		return apiresult.InternalServerError("generate token: %s", err)
	}
	return apiresult.OK(tokenResponse{Token: tok}, "refreshed token")
}

type lexTokenJSON struct {
	Kind     string `json:"kind"`
	Data     string `json:"data,omitempty"`
	Begin    [2]int `json:"begin"`
	End      [2]int `json:"end"`
}

type lexResponse struct {
	Filename string         `json:"filename"`
	Tokens   []lexTokenJSON `json:"tokens"`
}

type lexErrorResponse struct {
	Filename string `json:"filename"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Message  string `json:"message"`
}

func (s *Service) handleLex(req *http.Request) apiresult.Result {
	filename := req.URL.Query().Get("filename")
	if filename == "" {
		filename = "<upload>"
	}

	src, err := io.ReadAll(req.Body)
	if err != nil {
		return apiresult.BadRequest("could not read request body", "read lex body: %s", err)
	}

	result, err := s.Lex(req.Context(), filename, src)
	if err != nil {
		return apiresult.InternalServerError("lex+record: %s", err)
	}

	if result.Err != nil {
		return apiresult.UnprocessableEntity(result.Err.Error(), "lex failed for %s", filename).
			WithBody(lexErrorResponse{
				Filename: filename,
				Line:     result.Err.Loc.Line,
				Column:   result.Err.Loc.Column,
				Message:  result.Err.Message,
			})
	}

	return apiresult.OK(lexResponse{
		Filename: filename,
		Tokens:   toLexTokenJSON(result.Tokens),
	}, "lexed %s into %d tokens", filename, len(result.Tokens))
}

func toLexTokenJSON(tokens []lex.Token) []lexTokenJSON {
	out := make([]lexTokenJSON, len(tokens))
	for i, t := range tokens {
		out[i] = lexTokenJSON{
			Kind:  t.Kind.String(),
			Data:  t.Data,
			Begin: [2]int{t.Range.Begin.Line, t.Range.Begin.Column},
			End:   [2]int{t.Range.End.Line, t.Range.End.Column},
		}
	}
	return out
}

func (s *Service) handleHistory(req *http.Request) apiresult.Result {
	id := chi.URLParam(req, "id")
	rec, err := s.History(req.Context(), id)
	if err != nil {
		return apiresult.NotFound("history lookup for %q: %s", id, err)
	}

	return apiresult.OK(rec, "fetched history record %s", id)
}
