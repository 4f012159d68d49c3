package service

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-apple-pay/internal/config"
	"github.com/MKhiriev/go-apple-pay/internal/validators"
	"github.com/MKhiriev/go-apple-pay/models"
)

// DefaultValidationHostPattern matches the Apple Pay gateway hosts, e.g.
// apple-pay-gateway.apple.com and apple-pay-gateway-cert.apple.com.
const DefaultValidationHostPattern = `^apple-pay-gateway(-.+)?\.apple\.com$`

// MerchantSessionServiceWrapper defines middleware composition for
// MerchantSessionService. Implementations wrap an existing service to add
// behavior such as validation.
type MerchantSessionServiceWrapper interface {
	Wrap(MerchantSessionService) MerchantSessionService
}

// MerchantSessionValidationService rejects validation URLs that do not point
// at an allowed gateway before the inner service is called.
type MerchantSessionValidationService struct {
	inner       MerchantSessionService
	validator   validators.Validator
	hostPattern *regexp.Regexp
}

// NewMerchantSessionValidationService compiles cfg.ValidationHostPattern, or
// [DefaultValidationHostPattern] when it is empty.
func NewMerchantSessionValidationService(cfg config.App, validator validators.Validator) (*MerchantSessionValidationService, error) {
	pattern := cfg.ValidationHostPattern
	if pattern == "" {
		pattern = DefaultValidationHostPattern
	}

	hostPattern, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidHostPattern, pattern, err)
	}

	return &MerchantSessionValidationService{
		validator:   validator,
		hostPattern: hostPattern,
	}, nil
}

func (v *MerchantSessionValidationService) CreateMerchantSession(ctx context.Context, request models.ValidateMerchantRequest) (models.MerchantSession, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.MerchantSession{}, fmt.Errorf("%w: %w", ErrInvalidValidationURL, err)
	}

	if err := v.checkValidationURL(request.ValidationURL); err != nil {
		return models.MerchantSession{}, err
	}

	return v.inner.CreateMerchantSession(ctx, request)
}

func (v *MerchantSessionValidationService) checkValidationURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidValidationURL, err)
	}

	if !strings.EqualFold(u.Scheme, "https") {
		return fmt.Errorf("%w: scheme must be https, got %q", ErrInvalidValidationURL, u.Scheme)
	}

	if u.User != nil {
		return fmt.Errorf("%w: user info is not allowed", ErrInvalidValidationURL)
	}

	host := strings.ToLower(u.Hostname())
	if !v.hostPattern.MatchString(host) {
		return fmt.Errorf("%w: host %q is not an allowed gateway", ErrInvalidValidationURL, host)
	}

	return nil
}

func (v *MerchantSessionValidationService) Wrap(inner MerchantSessionService) MerchantSessionService {
	v.inner = inner
	return v
}
