package service

import "errors"

var (
	// ErrInvalidValidationURL means the validation URL is missing, malformed,
	// not https, or does not point at an allowed gateway host.
	ErrInvalidValidationURL = errors.New("invalid validation URL")
	// ErrInvalidMerchantRequest means the merchant identity assembled from
	// configuration does not pass validation.
	ErrInvalidMerchantRequest = errors.New("invalid merchant session request")

	ErrInvalidHostPattern    = errors.New("invalid validation host pattern")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
