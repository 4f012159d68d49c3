// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/go-apple-pay/internal/logger"
	"github.com/MKhiriev/go-apple-pay/internal/utils"
	"github.com/MKhiriev/go-apple-pay/models"
)

const (
	headerContentType = "Content-Type"
	headerAccept      = "Accept"
	mimeJSON          = "application/json"

	maxBodyInLog = 512
)

type merchantSessionClient struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewMerchantSessionClient constructs the HTTP implementation of
// [MerchantSessionClient] on top of a shared client. TLS client certificates,
// timeouts and connection pooling are properties of client.
func NewMerchantSessionClient(client *utils.HTTPClient, logger *logger.Logger) MerchantSessionClient {
	return &merchantSessionClient{client: client, logger: logger}
}

// GetMerchantSession implements [MerchantSessionClient].
func (m *merchantSessionClient) GetMerchantSession(ctx context.Context, destinationURI string, request models.MerchantSessionRequest) (models.MerchantSession, error) {
	log := logger.FromContextOr(ctx, m.logger)
	start := time.Now()

	log.Debug().Str("uri", destinationURI).Msg("requesting merchant session")

	resp, err := m.client.R().
		SetContext(ctx).
		SetHeader(headerContentType, mimeJSON).
		SetHeader(headerAccept, mimeJSON).
		SetBody(request).
		Post(destinationURI)
	if err != nil {
		sessErr := mapRequestError(ctx, err)
		log.Err(sessErr).
			Str("uri", destinationURI).
			Stringer("kind", sessErr.Kind).
			Dur("duration", time.Since(start)).
			Msg("merchant session request failed")
		return models.MerchantSession{}, sessErr
	}

	// the response may arrive after ctx is done; drop it
	if ctxErr := ctx.Err(); ctxErr != nil {
		sessErr := &SessionError{Kind: KindCancelled, Err: ctxErr}
		log.Err(sessErr).
			Str("uri", destinationURI).
			Int("status", resp.StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("discarding merchant session response received after cancellation")
		return models.MerchantSession{}, sessErr
	}

	if sessErr := mapHTTPError(resp); sessErr != nil {
		log.Err(sessErr).
			Str("uri", destinationURI).
			Int("status", sessErr.StatusCode).
			Dur("duration", time.Since(start)).
			Msg("merchant session rejected by upstream")
		return models.MerchantSession{}, sessErr
	}

	session, err := models.ParseMerchantSession(resp.Body())
	if err != nil {
		sessErr := &SessionError{
			Kind:       KindParse,
			StatusCode: resp.StatusCode(),
			Reason:     reasonPhrase(resp.StatusCode(), resp.Status()),
			Body:       string(resp.Body()),
			Err:        err,
		}
		log.Err(sessErr).
			Str("uri", destinationURI).
			Int("status", resp.StatusCode()).
			Str("body", truncate(sessErr.Body, maxBodyInLog)).
			Dur("duration", time.Since(start)).
			Msg("merchant session response is not valid JSON")
		return models.MerchantSession{}, sessErr
	}

	log.Debug().
		Str("uri", destinationURI).
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(start)).
		Msg("merchant session received")

	return session, nil
}
