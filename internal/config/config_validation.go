// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// validate checks that the final merged [StructuredConfig] can start the
// service. All violations are reported at once.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.App.MerchantIdentifier == "" {
		errs = append(errs, ErrNoMerchantIdentifier)
	}

	if cfg.Server.HTTPAddress == "" {
		errs = append(errs, ErrNoHTTPAddress)
	}

	if (cfg.Adapter.CertificatePath == "") != (cfg.Adapter.KeyPath == "") {
		errs = append(errs, ErrIncompleteCertificate)
	}

	if cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 || cfg.Adapter.RequestTimeout < 0 {
		errs = append(errs, ErrInvalidTimeout)
	}

	return errors.Join(errs...)
}
