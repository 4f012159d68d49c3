package config

import "errors"

// Validation errors returned by [StructuredConfig.validate]. Several may be
// joined into one error; match them with [errors.Is].
var (
	// ErrNoMerchantIdentifier indicates that APP_MERCHANT_IDENTIFIER is unset.
	ErrNoMerchantIdentifier = errors.New("merchant identifier is required")
	// ErrNoHTTPAddress indicates that the server listen address is empty.
	ErrNoHTTPAddress = errors.New("server address is required")
	// ErrIncompleteCertificate indicates that only one of the certificate and
	// key paths is set.
	ErrIncompleteCertificate = errors.New("certificate and key paths must be set together")
	// ErrInvalidTimeout indicates a negative timeout value.
	ErrInvalidTimeout = errors.New("timeouts must not be negative")
)
