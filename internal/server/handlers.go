package server

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"qa-chat/internal/match"
)

const (
	requestIDHeader = "X-Request-ID"
	maxRequestIDLen = 64
)

type requestIDKey struct{}

// chatRequest accepts both field names used by chat front-ends.
type chatRequest struct {
	Message string `json:"message"`
	Query   string `json:"query"`
}

type chatResponse struct {
	Response        string        `json:"response"`
	Matched         bool          `json:"matched"`
	Question        string        `json:"question,omitempty"`
	Distance        int           `json:"distance"`
	SimilarityScore float64       `json:"similarity_score"`
	Outcome         match.Outcome `json:"outcome"`
	Truncated       bool          `json:"truncated,omitempty"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Entries int    `json:"entries"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "request body too large"})
			return
		}

		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})

		return
	}

	text := req.Message
	if strings.TrimSpace(text) == "" {
		text = req.Query
	}

	if strings.TrimSpace(text) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "empty query"})
		return
	}

	res := s.answerer.Match(text)

	s.logger.Debug("answered",
		"request_id", requestID(r.Context()),
		"outcome", res.Outcome.String(),
		"question", res.Question,
		"distance", res.Distance,
		"truncated", res.Truncated)
	s.logger.Trace("query text", "request_id", requestID(r.Context()), "text", text)

	writeJSON(w, http.StatusOK, chatResponse{
		Response:        res.Answer,
		Matched:         res.Matched(),
		Question:        res.Question,
		Distance:        res.Distance,
		SimilarityScore: math.Round(res.Similarity*10000) / 10000,
		Outcome:         res.Outcome,
		Truncated:       res.Truncated,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Entries: s.answerer.Len()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// withRequestID tags every request with an id, keeping a sane client-supplied one.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" || len(id) > maxRequestIDLen || strings.ContainsAny(id, "\r\n") {
			id = uuid.NewString()
		}

		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
	})
}

func requestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
