package utils

import (
	"crypto/tls"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// ErrLoadingCertificate is returned by [NewHTTPClient] when the client
// certificate or its key cannot be loaded.
var ErrLoadingCertificate = errors.New("error loading client certificate")

// DefaultMaxResponseBytes caps upstream response bodies when
// [HTTPClientOptions.MaxResponseBytes] is not set. Merchant sessions are a
// few kilobytes.
const DefaultMaxResponseBytes = 1 << 20

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client, err := utils.NewHTTPClient(utils.HTTPClientOptions{Timeout: 30 * time.Second})
//	resp, err := client.R().SetContext(ctx).Post("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOptions configures the shared outbound client.
type HTTPClientOptions struct {
	// Timeout bounds a whole outbound call. Zero means no client-level limit;
	// the request context still applies.
	Timeout time.Duration

	// CertificatePath and KeyPath point to a PEM TLS client certificate and
	// its key. Both must be set for the certificate to be presented.
	CertificatePath string
	KeyPath         string

	// MaxResponseBytes caps a buffered response body. Non-positive means
	// [DefaultMaxResponseBytes]. Larger bodies fail the request.
	MaxResponseBytes int

	// Logger receives resty's own warnings and errors. Nil keeps resty's
	// default stderr logger.
	Logger resty.Logger
}

// NewHTTPClient creates an independent HTTPClient.
//
// Retries are disabled: a merchant session request must be issued at most
// once per validation event.
func NewHTTPClient(opts HTTPClientOptions) (*HTTPClient, error) {
	maxResponseBytes := opts.MaxResponseBytes
	if maxResponseBytes <= 0 {
		maxResponseBytes = DefaultMaxResponseBytes
	}

	client := resty.New().
		SetRetryCount(0).
		SetTimeout(opts.Timeout).
		SetResponseBodyLimit(maxResponseBytes)

	if opts.Logger != nil {
		client.SetLogger(opts.Logger)
	}

	if opts.CertificatePath != "" || opts.KeyPath != "" {
		cert, err := tls.LoadX509KeyPair(opts.CertificatePath, opts.KeyPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadingCertificate, err)
		}
		client.SetCertificates(cert)
	}

	return &HTTPClient{Client: client}, nil
}
