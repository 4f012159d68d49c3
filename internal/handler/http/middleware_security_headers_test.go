package http

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithSecurityHeaders(t *testing.T) {
	tests := []struct {
		name     string
		prepare  func(r *http.Request)
		wantHSTS bool
	}{
		{name: "plain http", prepare: func(*http.Request) {}},
		{name: "direct tls", prepare: func(r *http.Request) { r.TLS = &tls.ConnectionState{} }, wantHSTS: true},
		{name: "behind tls proxy", prepare: func(r *http.Request) { r.Header.Set("X-Forwarded-Proto", "https") }, wantHSTS: true},
		{name: "behind plain proxy", prepare: func(r *http.Request) { r.Header.Set("X-Forwarded-Proto", "http") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.prepare(req)
			rec := httptest.NewRecorder()

			withSecurityHeaders(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(rec, req)

			h := rec.Header()
			assert.Equal(t, "nosniff", h.Get("X-Content-Type-Options"))
			assert.Equal(t, "DENY", h.Get("X-Frame-Options"))
			assert.Equal(t, "strict-origin-when-cross-origin", h.Get("Referrer-Policy"))
			assert.Equal(t, "default-src 'none'; frame-ancestors 'none'", h.Get("Content-Security-Policy"))
			assert.Equal(t, "no-store", h.Get("Cache-Control"))
			if tt.wantHSTS {
				assert.NotEmpty(t, h.Get("Strict-Transport-Security"))
			} else {
				assert.Empty(t, h.Get("Strict-Transport-Security"))
			}
		})
	}
}
