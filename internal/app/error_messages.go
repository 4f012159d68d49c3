// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// merchant validation handlers and middleware.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies or log entries. Response bodies never carry upstream
// details, only these messages.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded as {"validationUrl": "..."}.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidValidationURL is returned when the validation URL is not an
	// https URL on an allowed Apple Pay gateway host.
	MsgInvalidValidationURL = "invalid validation URL"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs, a misconfigured merchant identity included.
	MsgInternalServerError = "internal server error"

	// MsgMerchantSessionFailed is returned when Apple could not be reached,
	// refused the request or answered with an unusable body.
	MsgMerchantSessionFailed = "merchant session could not be obtained"

	// MsgMerchantSessionTimeout is returned when the request was cancelled or
	// timed out before Apple answered.
	MsgMerchantSessionTimeout = "merchant session request timed out"

	MsgMerchantSessionNotCreated = "merchant session was not created"
)
