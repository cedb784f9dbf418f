package server

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithRequestLogging(t *testing.T) {
	t.Run("should log method, path and status without altering the response", func(t *testing.T) {
		var buf bytes.Buffer
		original := log.Writer()
		log.SetOutput(&buf)
		defer log.SetOutput(original)

		handler := withRequestLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeError(w, http.StatusNotFound, "nope")
		}))

		req := httptest.NewRequest("GET", "/missing", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, buf.String(), "GET /missing 404")
	})

	t.Run("should record 200 when the handler never calls WriteHeader", func(t *testing.T) {
		var buf bytes.Buffer
		original := log.Writer()
		log.SetOutput(&buf)
		defer log.SetOutput(original)

		handler := withRequestLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("ok"))
		}))

		req := httptest.NewRequest("GET", "/", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Contains(t, buf.String(), "GET / 200")
	})
}
