package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
		{name: "IPv6 host", addr: NetAddress{Host: "::1", Port: 8443}, expected: "[::1]:8443"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		want        NetAddress
	}{
		{name: "localhost", input: "localhost:8080", want: NetAddress{Host: "localhost", Port: 8080}},
		{name: "ipv4", input: "127.0.0.1:443", want: NetAddress{Host: "127.0.0.1", Port: 443}},
		{name: "all interfaces", input: ":8080", want: NetAddress{Port: 8080}},
		{name: "ipv6", input: "[::1]:8080", want: NetAddress{Host: "::1", Port: 8080}},
		{name: "no port", input: "localhost", expectError: true},
		{name: "non numeric port", input: "localhost:http", expectError: true},
		{name: "zero port", input: "localhost:0", expectError: true},
		{name: "port out of range", input: "localhost:70000", expectError: true},
		{name: "hostname other than localhost", input: "example.com:80", expectError: true},
		{name: "too many colons", input: "1:2:3", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				assert.Equal(t, NetAddress{}, addr, "address must stay untouched on error")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	args := []string{
		"-a", "127.0.0.1:9000",
		"-merchant-id", "merchant.com.example",
		"-display-name", "Example Shop",
		"-domain", "shop.example.com",
		"-log-level", "warn",
		"-request-timeout", "20s",
		"-adapter-timeout", "10s",
		"-cert", "/tmp/cert.pem",
		"-key", "/tmp/key.pem",
		"-c", "/tmp/config.json",
	}

	cfg, err := parseFlags(args)

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, 20*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "merchant.com.example", cfg.App.MerchantIdentifier)
	assert.Equal(t, "Example Shop", cfg.App.DisplayName)
	assert.Equal(t, "shop.example.com", cfg.App.DomainName)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/tmp/cert.pem", cfg.Adapter.CertificatePath)
	assert.Equal(t, "/tmp/key.pem", cfg.Adapter.KeyPath)
	assert.Equal(t, "/tmp/config.json", cfg.JSONFilePath)
}

func TestParseFlags_ConfigAlias(t *testing.T) {
	cfg, err := parseFlags([]string{"-config", "/etc/app.json"})

	require.NoError(t, err)
	assert.Equal(t, "/etc/app.json", cfg.JSONFilePath)
}

func TestParseFlags_NoArgs(t *testing.T) {
	cfg, err := parseFlags(nil)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"-grpc-address", ":9090"}},
		{name: "invalid address", args: []string{"-a", "nowhere"}},
		{name: "invalid duration", args: []string{"-request-timeout", "forever"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)
			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "error parsing flags")
		})
	}
}
