package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses command-line args into a partial [StructuredConfig].
//
// Flags:
//
//	-a server address in format [host]:port
//	-merchant-id Apple Pay merchant identifier
//	-display-name merchant display name
//	-domain merchant domain name
//	-log-level zerolog level
//	-request-timeout inbound request timeout (e.g. "30s")
//	-adapter-timeout outbound request timeout (e.g. "30s")
//	-cert merchant identity certificate path
//	-key merchant identity key path
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("apple-pay-server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress NetAddress
	var merchantID, displayName, domainName, logLevel string
	var requestTimeout, adapterTimeout time.Duration
	var certPath, keyPath string
	var jsonConfigPath string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&merchantID, "merchant-id", "", "Apple Pay merchant identifier")
	fs.StringVar(&displayName, "display-name", "", "Merchant display name")
	fs.StringVar(&domainName, "domain", "", "Merchant domain name")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Outbound request timeout (e.g., 30s, 1m)")
	fs.StringVar(&certPath, "cert", "", "Merchant identity certificate path")
	fs.StringVar(&keyPath, "key", "", "Merchant identity key path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			MerchantIdentifier: merchantID,
			DisplayName:        displayName,
			DomainName:         domainName,
			LogLevel:           logLevel,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			RequestTimeout:  adapterTimeout,
			CertificatePath: certPath,
			KeyPath:         keyPath,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string, or "" for an unset address.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form [host]:port and populates the
// NetAddress. The host may be empty (all interfaces), "localhost" or an IP
// address; the port must be within 1..65535.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return fmt.Errorf("invalid port %q: %w", rawPort, err)
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be within 1..65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
