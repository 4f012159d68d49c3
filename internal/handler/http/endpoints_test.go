package http

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-apple-pay/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetServerVersion(t *testing.T) {
	h, m := newMockedHandler(t, config.Server{})
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.4.2")

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, versionPath, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "1.4.2", rec.Body.String())
}

func TestHealth(t *testing.T) {
	h, _ := newMockedHandler(t, config.Server{})

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, healthPath, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

// failingWriter accepts headers but fails every body write.
type failingWriter struct {
	header http.Header
	status int
}

func (w *failingWriter) Header() http.Header        { return w.header }
func (w *failingWriter) WriteHeader(statusCode int) { w.status = statusCode }
func (w *failingWriter) Write([]byte) (int, error)  { return 0, errors.New("connection reset") }

func TestHealth_LogsWriteError(t *testing.T) {
	var buf bytes.Buffer
	h := newTestHandler()
	w := &failingWriter{header: http.Header{}}

	h.health(w, injectLogger(httptest.NewRequest(http.MethodGet, healthPath, nil), &buf))

	assert.Equal(t, http.StatusOK, w.status)
	assert.Contains(t, buf.String(), "error writing health status")
	assert.Contains(t, buf.String(), "connection reset")
}

func TestGetDomainAssociation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apple-developer-merchantid-domain-association")
	require.NoError(t, os.WriteFile(path, []byte("7B227073704964223A2241"), 0o600))

	t.Run("serves configured file", func(t *testing.T) {
		h, _ := newMockedHandler(t, config.Server{DomainAssociationFile: path})

		rec := httptest.NewRecorder()
		h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, domainAssociationPath, nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "7B227073704964223A2241", rec.Body.String())
		assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	})

	t.Run("not configured", func(t *testing.T) {
		h, _ := newMockedHandler(t, config.Server{})

		rec := httptest.NewRecorder()
		h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, domainAssociationPath, nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("missing file", func(t *testing.T) {
		h, _ := newMockedHandler(t, config.Server{DomainAssociationFile: filepath.Join(t.TempDir(), "absent")})

		rec := httptest.NewRecorder()
		h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, domainAssociationPath, nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
