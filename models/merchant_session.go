// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// InitiativeWeb is the initiative value Apple expects for Apple Pay on the web.
const InitiativeWeb = "web"

var (
	// ErrEmptyDocument is returned by [ParseMerchantSession] when the body
	// contains no JSON value at all.
	ErrEmptyDocument = errors.New("empty JSON document")
	// ErrTrailingData is returned by [ParseMerchantSession] when a valid JSON
	// value is followed by anything other than whitespace.
	ErrTrailingData = errors.New("unexpected data after JSON document")
)

// MerchantSessionRequest is the payload POSTed to the Apple Pay gateway to
// validate the merchant and obtain a merchant session.
//
// Field names follow Apple's "Requesting an Apple Pay Payment Session"
// documentation.
type MerchantSessionRequest struct {
	// MerchantIdentifier is the merchant ID registered in the Apple developer
	// account (e.g. "merchant.com.example.shop").
	MerchantIdentifier string `json:"merchantIdentifier" validate:"required"`

	// DomainName is the fully qualified domain the payment sheet is shown on.
	DomainName string `json:"domainName" validate:"required,hostname_rfc1123"`

	// DisplayName is the merchant name shown on the payment sheet. Apple caps
	// it at 64 UTF-8 characters.
	DisplayName string `json:"displayName" validate:"required,max=64"`

	// Initiative is "web" for Apple Pay JS.
	Initiative string `json:"initiative,omitempty" validate:"omitempty,oneof=web messaging"`

	// InitiativeContext is the domain name for the "web" initiative.
	InitiativeContext string `json:"initiativeContext,omitempty"`
}

// ValidateMerchantRequest is the body the web page sends when the browser
// fires ApplePaySession.onvalidatemerchant.
type ValidateMerchantRequest struct {
	// ValidationURL is the event's validationURL, the Apple Pay gateway
	// endpoint the merchant session must be requested from.
	ValidationURL string `json:"validationUrl" validate:"required,url"`

	// DomainName is filled by the transport layer from the inbound request
	// host. It is used when no domain name is configured.
	DomainName string `json:"-"`
}

// MerchantSession is an opaque JSON document returned by the Apple Pay
// gateway. The service never interprets it; the browser hands it to
// ApplePaySession.completeMerchantValidation.
//
// The zero value represents an absent document and marshals to null.
type MerchantSession struct {
	raw   json.RawMessage
	value any
}

// ParseMerchantSession parses body as a single JSON value.
//
// Numbers are kept as [json.Number] so the document round-trips without
// precision loss.
func ParseMerchantSession(body []byte) (MerchantSession, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		if errors.Is(err, io.EOF) {
			return MerchantSession{}, ErrEmptyDocument
		}
		return MerchantSession{}, fmt.Errorf("decode merchant session: %w", err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return MerchantSession{}, ErrTrailingData
	}

	raw := make(json.RawMessage, len(body))
	copy(raw, body)

	return MerchantSession{raw: bytes.TrimSpace(raw), value: value}, nil
}

// Value returns the decoded document: map[string]any, []any, string,
// json.Number, bool or nil.
func (s MerchantSession) Value() any {
	return s.value
}

// Raw returns the document exactly as received, without surrounding
// whitespace.
func (s MerchantSession) Raw() json.RawMessage {
	return s.raw
}

// IsZero reports whether s holds no document.
func (s MerchantSession) IsZero() bool {
	return len(s.raw) == 0
}

// MarshalJSON returns the raw document. Note that json.Marshal compacts and
// HTML-escapes it; write [MerchantSession.Raw] directly to relay it verbatim.
func (s MerchantSession) MarshalJSON() ([]byte, error) {
	if s.IsZero() {
		return []byte("null"), nil
	}
	return s.raw, nil
}

// UnmarshalJSON implements [json.Unmarshaler].
func (s *MerchantSession) UnmarshalJSON(b []byte) error {
	parsed, err := ParseMerchantSession(b)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
