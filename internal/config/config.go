// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// merchant validation service. It is populated by merging defaults, a .env
// file, environment variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the merchant identity and application-level settings.
	App App `envPrefix:"APP_"`

	// Server holds the inbound HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the outbound HTTP client settings used to reach the
	// Apple Pay gateway.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds the merchant identity sent to Apple and general settings.
type App struct {
	// MerchantIdentifier is the Apple Pay merchant ID
	// (e.g. "merchant.com.example.shop").
	// Env: APP_MERCHANT_IDENTIFIER
	MerchantIdentifier string `env:"MERCHANT_IDENTIFIER"`

	// DisplayName is the merchant name shown on the payment sheet.
	// Env: APP_DISPLAY_NAME
	DisplayName string `env:"DISPLAY_NAME"`

	// DomainName is the domain registered with Apple. When empty the host of
	// the inbound request is used.
	// Env: APP_DOMAIN_NAME
	DomainName string `env:"DOMAIN_NAME"`

	// ValidationHostPattern is a regular expression the validation URL host
	// must match. Defaults to the Apple Pay gateway hosts.
	// Env: APP_VALIDATION_HOST_PATTERN
	ValidationHostPattern string `env:"VALIDATION_HOST_PATTERN"`

	// Version is exposed via GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is the zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on, in
	// "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request, outbound call included.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// DomainAssociationFile is the path of Apple's domain verification file,
	// served at /.well-known/apple-developer-merchantid-domain-association.
	// Env: SERVER_DOMAIN_ASSOCIATION_FILE
	DomainAssociationFile string `env:"DOMAIN_ASSOCIATION_FILE"`
}

// Adapter holds settings of the shared outbound HTTP client.
type Adapter struct {
	// RequestTimeout is the client-level timeout of an outbound call.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// CertificatePath is the PEM merchant identity certificate presented to
	// the Apple Pay gateway as a TLS client certificate.
	// Env: ADAPTER_CERTIFICATE_PATH
	CertificatePath string `env:"CERTIFICATE_PATH"`

	// KeyPath is the PEM private key of the merchant identity certificate.
	// Env: ADAPTER_KEY_PATH
	KeyPath string `env:"KEY_PATH"`
}

const dotEnvFile = ".env"

// Defaults applied before any other source.
const (
	defaultHTTPAddress           = "localhost:8080"
	defaultServerRequestTimeout  = 30 * time.Second
	defaultServerShutdownTimeout = 10 * time.Second
	defaultAdapterRequestTimeout = 30 * time.Second
	defaultLogLevel              = "debug"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: defaultLogLevel,
		},
		Server: Server{
			HTTPAddress:     defaultHTTPAddress,
			RequestTimeout:  defaultServerRequestTimeout,
			ShutdownTimeout: defaultServerShutdownTimeout,
		},
		Adapter: Adapter{
			RequestTimeout: defaultAdapterRequestTimeout,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration in the following priority order (last source wins for
// non-zero fields):
//  1. Built-in defaults
//  2. .env file in the working directory, if present
//  3. Environment variables
//  4. Command-line flags
//  5. JSON file (path resolved from sources 3 and 4)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(dotEnvFile).
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
