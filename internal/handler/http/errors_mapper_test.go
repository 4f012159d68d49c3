package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-apple-pay/internal/adapter"
	"github.com/MKhiriev/go-apple-pay/internal/app"
	"github.com/MKhiriev/go-apple-pay/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid url", err: service.ErrInvalidValidationURL, want: http.StatusBadRequest},
		{name: "wrapped invalid url", err: fmt.Errorf("%w: scheme", service.ErrInvalidValidationURL), want: http.StatusBadRequest},
		{name: "invalid merchant request", err: service.ErrInvalidMerchantRequest, want: http.StatusInternalServerError},
		{name: "upstream sentinel", err: adapter.ErrUpstream, want: http.StatusBadGateway},
		{name: "session error parse", err: &adapter.SessionError{Kind: adapter.KindParse}, want: http.StatusBadGateway},
		{name: "session error transport", err: &adapter.SessionError{Kind: adapter.KindTransport}, want: http.StatusBadGateway},
		{name: "session error cancelled", err: &adapter.SessionError{Kind: adapter.KindCancelled}, want: http.StatusGatewayTimeout},
		{name: "other", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestMessageFromStatus(t *testing.T) {
	assert.Equal(t, app.MsgInvalidValidationURL, messageFromStatus(http.StatusBadRequest))
	assert.Equal(t, app.MsgMerchantSessionFailed, messageFromStatus(http.StatusBadGateway))
	assert.Equal(t, app.MsgMerchantSessionTimeout, messageFromStatus(http.StatusGatewayTimeout))
	assert.Equal(t, app.MsgInternalServerError, messageFromStatus(http.StatusInternalServerError))
	assert.Equal(t, "Not Found", messageFromStatus(http.StatusNotFound))
}
