package handler

import (
	"testing"

	"github.com/MKhiriev/go-apple-pay/internal/config"
	"github.com/MKhiriev/go-apple-pay/internal/logger"
	"github.com/MKhiriev/go-apple-pay/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewHandlers_HTTP verifies that an HTTP handler is created when an HTTP
// address is configured.
func TestNewHandlers_HTTP(t *testing.T) {
	cfg := config.Server{HTTPAddress: ":8080"}

	h, err := NewHandlers(&service.Services{}, cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
	assert.NotNil(t, h.HTTP.Init())
}

// TestNewHandlers_NoAddress verifies that a missing HTTP address is fatal.
func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

func TestNewHandlers_NoServices(t *testing.T) {
	h, err := NewHandlers(nil, config.Server{HTTPAddress: ":8080"}, logger.Nop())

	require.ErrorIs(t, err, errNoServices)
	assert.Nil(t, h)
}
