package handler

import (
	"github.com/MKhiriev/go-apple-pay/internal/config"
	"github.com/MKhiriev/go-apple-pay/internal/handler/http"
	"github.com/MKhiriev/go-apple-pay/internal/logger"
	"github.com/MKhiriev/go-apple-pay/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil {
		return nil, errNoServices
	}

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, cfg, logger)}, nil
}
