package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-apple-pay/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// injectLogger puts a buffer-backed logger into the request context the way
// withTraceID does.
func injectLogger(r *http.Request, buf *bytes.Buffer) *http.Request {
	l := zerolog.New(buf)
	return r.WithContext(l.WithContext(r.Context()))
}

func serveLogged(t *testing.T, next http.HandlerFunc, method, target string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	h := &Handler{logger: logger.Nop()}

	rec := httptest.NewRecorder()
	h.withLogging(next).ServeHTTP(rec, injectLogger(httptest.NewRequest(method, target, nil), &buf))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), buf.String())
	return rec, entry
}

func TestWithLogging_RecordsRequest(t *testing.T) {
	rec, entry := serveLogged(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("hello"))
	}, http.MethodPost, "/merchant-session/new?x=1")

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/merchant-session/new?x=1", entry["uri"])
	assert.Equal(t, http.MethodPost, entry["method"])
	assert.EqualValues(t, http.StatusCreated, entry["status"])
	assert.EqualValues(t, 5, entry["size"])
	assert.Contains(t, entry, "duration")
	assert.Equal(t, "info", entry["level"])
}

func TestWithLogging_DefaultsToOK(t *testing.T) {
	_, entry := serveLogged(t, func(http.ResponseWriter, *http.Request) {}, http.MethodGet, "/health")

	assert.EqualValues(t, http.StatusOK, entry["status"])
	assert.EqualValues(t, 0, entry["size"])
}

func TestWithLogging_ErrorStatus(t *testing.T) {
	rec, entry := serveLogged(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Bad Gateway", http.StatusBadGateway)
	}, http.MethodPost, "/merchant-session/new")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.EqualValues(t, http.StatusBadGateway, entry["status"])
}
