package service

import (
	"fmt"

	"github.com/MKhiriev/go-apple-pay/internal/adapter"
	"github.com/MKhiriev/go-apple-pay/internal/config"
	"github.com/MKhiriev/go-apple-pay/internal/logger"
	"github.com/MKhiriev/go-apple-pay/internal/validators"
	"github.com/MKhiriev/go-apple-pay/models"
)

type Services struct {
	MerchantSessionService MerchantSessionService
	AppInfoService         AppInfoService
}

func NewServices(client adapter.MerchantSessionClient, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	validator := validators.NewStructValidator()

	validation, err := NewMerchantSessionValidationService(cfg.App, validator)
	if err != nil {
		return nil, fmt.Errorf("error creating merchant session service: %w", err)
	}

	appInfo, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		MerchantSessionService: validation.Wrap(NewMerchantSessionService(client, validator, cfg.App, logger)),
		AppInfoService:         appInfo,
	}, nil
}
