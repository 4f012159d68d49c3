// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrDomainAssociationNotConfigured is logged when the domain association
// file is requested but no path is configured.
var ErrDomainAssociationNotConfigured = errors.New("domain association file is not configured")
