// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-apple-pay/internal/adapter"
	"github.com/MKhiriev/go-apple-pay/internal/config"
	"github.com/MKhiriev/go-apple-pay/internal/logger"
	"github.com/MKhiriev/go-apple-pay/internal/validators"
	"github.com/MKhiriev/go-apple-pay/models"
)

type merchantSessionService struct {
	client    adapter.MerchantSessionClient
	validator validators.Validator

	merchantIdentifier string
	displayName        string
	domainName         string

	logger *logger.Logger
}

// NewMerchantSessionService returns the core MerchantSessionService. It
// assumes request.ValidationURL was already checked; wrap it with
// [NewMerchantSessionValidationService] before exposing it.
func NewMerchantSessionService(client adapter.MerchantSessionClient, validator validators.Validator, cfg config.App, logger *logger.Logger) MerchantSessionService {
	return &merchantSessionService{
		client:             client,
		validator:          validator,
		merchantIdentifier: cfg.MerchantIdentifier,
		displayName:        cfg.DisplayName,
		domainName:         cfg.DomainName,
		logger:             logger,
	}
}

func (m *merchantSessionService) CreateMerchantSession(ctx context.Context, request models.ValidateMerchantRequest) (models.MerchantSession, error) {
	sessionRequest := m.buildRequest(request.DomainName)

	if err := m.validator.Validate(ctx, sessionRequest); err != nil {
		return models.MerchantSession{}, fmt.Errorf("%w: %w", ErrInvalidMerchantRequest, err)
	}

	session, err := m.client.GetMerchantSession(ctx, request.ValidationURL, sessionRequest)
	if err != nil {
		return models.MerchantSession{}, fmt.Errorf("error creating merchant session: %w", err)
	}

	return session, nil
}

// buildRequest fills the payload from configuration. requestHost is used as
// the domain when none is configured.
func (m *merchantSessionService) buildRequest(requestHost string) models.MerchantSessionRequest {
	domainName := m.domainName
	if domainName == "" {
		domainName = requestHost
	}

	return models.MerchantSessionRequest{
		MerchantIdentifier: m.merchantIdentifier,
		DomainName:         domainName,
		DisplayName:        m.displayName,
		Initiative:         models.InitiativeWeb,
		InitiativeContext:  domainName,
	}
}
