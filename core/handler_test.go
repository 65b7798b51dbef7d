package core_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uplifthq/uplift/core"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) core.Envelope {
	t.Helper()
	var env core.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestHandler(t *testing.T) {
	t.Parallel()

	t.Run("success writes no envelope", func(t *testing.T) {
		t.Parallel()

		h := core.Handler(nil, func(w http.ResponseWriter, r *http.Request) error {
			w.WriteHeader(http.StatusNoContent)
			return nil
		})

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/users/1", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("http error keeps status and message", func(t *testing.T) {
		t.Parallel()

		h := core.Handler(nil, func(w http.ResponseWriter, r *http.Request) error {
			return core.ErrNotFound
		})

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/1", nil))

		require.Equal(t, http.StatusNotFound, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, http.StatusNotFound, env.StatusCode)
		assert.Equal(t, "Not found", env.Message)
	})

	t.Run("raw error becomes generic 500 envelope", func(t *testing.T) {
		t.Parallel()

		h := core.Handler(nil, func(w http.ResponseWriter, r *http.Request) error {
			return errors.New("tx 4521 aborted: duplicate key value violates unique constraint")
		})

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/recognitions", nil))

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, http.StatusInternalServerError, env.StatusCode)
		assert.Equal(t, "Internal server error", env.Message)
		assert.NotContains(t, rec.Body.String(), "duplicate key", "internal detail never leaves the process")

		ts, err := time.Parse(time.RFC3339, env.Timestamp)
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now(), ts, time.Minute)
	})

	t.Run("envelope keys follow the external contract", func(t *testing.T) {
		t.Parallel()

		h := core.Handler(nil, func(w http.ResponseWriter, r *http.Request) error {
			return core.ErrForbidden
		})

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		var raw map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
		assert.Contains(t, raw, "statusCode")
		assert.Contains(t, raw, "message")
		assert.Contains(t, raw, "timestamp")
		assert.Len(t, raw, 3, "the envelope is the whole contract")
	})
}

func TestRecoverer(t *testing.T) {
	t.Parallel()

	h := core.Recoverer(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("nil pointer dereference in erasure path")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/users/1", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "Internal server error", env.Message)
	assert.NotContains(t, rec.Body.String(), "nil pointer", "panic detail never leaks")
}
