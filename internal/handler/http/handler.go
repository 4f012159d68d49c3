package http

import (
	"time"

	"github.com/MKhiriev/go-apple-pay/internal/config"
	"github.com/MKhiriev/go-apple-pay/internal/logger"
	"github.com/MKhiriev/go-apple-pay/internal/service"
)

type Handler struct {
	services *service.Services

	requestTimeout        time.Duration
	domainAssociationFile string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:              services,
		requestTimeout:        cfg.RequestTimeout,
		domainAssociationFile: cfg.DomainAssociationFile,
		logger:                logger,
	}
}
