package core

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

// Envelope is the only failure shape external callers ever see. The
// camelCase keys preserve the application's external API contract.
type Envelope struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Timestamp  string `json:"timestamp"`
}

// NewEnvelope classifies err into the canonical envelope. Errors carrying
// an explicit HTTPError keep their status and message. Everything else,
// including anything wrapped around driver or transaction errors, maps to
// 500 "Internal server error" with no internal detail.
func NewEnvelope(err error, now time.Time) Envelope {
	status, message := classify(err)
	return Envelope{
		StatusCode: status,
		Message:    message,
		Timestamp:  now.UTC().Format(time.RFC3339),
	}
}

func classify(err error) (int, string) {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code, httpErr.Message
	}
	return ErrInternalServerError.Code, ErrInternalServerError.Message
}

// WriteError renders err as the canonical envelope. It is the single exit
// point for failures crossing the process boundary.
func WriteError(w http.ResponseWriter, err error) {
	env := NewEnvelope(err, time.Now())
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(env.StatusCode)
	_ = json.NewEncoder(w).Encode(env)
}
