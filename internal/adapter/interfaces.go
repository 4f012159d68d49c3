// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound client used to obtain Apple Pay
// merchant sessions from the payment gateway.
//
// The primary abstraction is [MerchantSessionClient]. Its HTTP implementation
// ([NewMerchantSessionClient]) performs exactly one POST per call and reports
// failures as a [*SessionError] whose kind is matchable with [errors.Is]
// against [ErrTransport], [ErrUpstream], [ErrParse] and [ErrCancelled].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-apple-pay/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/merchant_session_client_mock.go -package=mock

// MerchantSessionClient requests merchant sessions from an upstream Apple Pay
// gateway. Implementations hold no per-call state and are safe for
// concurrent use.
type MerchantSessionClient interface {
	// GetMerchantSession POSTs request as JSON to destinationURI and returns
	// the response body parsed as an opaque JSON document.
	//
	// ctx is honored for the whole exchange: when it is cancelled or its
	// deadline passes before the response is observed, the call fails with
	// [ErrCancelled] and returns no document.
	GetMerchantSession(ctx context.Context, destinationURI string, request models.MerchantSessionRequest) (models.MerchantSession, error)
}
