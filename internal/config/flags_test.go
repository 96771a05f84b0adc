package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IPv4 with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "IPv6 with port", addr: NetAddress{Host: "::1", Port: 9090}, expected: "[::1]:9090"},
		{name: "only port", addr: NetAddress{Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		expectedHost string
		expectedPort int
	}{
		{name: "localhost", input: "localhost:8080", expectedHost: "localhost", expectedPort: 8080},
		{name: "IPv4", input: "0.0.0.0:80", expectedHost: "0.0.0.0", expectedPort: 80},
		{name: "IPv6", input: "[::1]:443", expectedHost: "::1", expectedPort: 443},
		{name: "empty host", input: ":8080", expectedHost: "", expectedPort: 8080},
		{name: "missing port", input: "localhost", expectError: true},
		{name: "non-numeric port", input: "localhost:http", expectError: true},
		{name: "zero port", input: "localhost:0", expectError: true},
		{name: "port out of range", input: "localhost:70000", expectError: true},
		{name: "hostname", input: "example.com:80", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedHost, addr.Host)
			assert.Equal(t, tt.expectedPort, addr.Port)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-a", "127.0.0.1:8443",
		"-d", "postgres://localhost/nudge",
		"-l", "/tmp/local.db",
		"-config", "/tmp/config.json",
		"-token-sign-key", "sign",
		"-token-issuer", "issuer",
		"-token-duration", "90m",
		"-name-key", "names",
		"-tz", "Europe/Berlin",
		"-request-timeout", "5s",
		"-rate-limit", "3",
		"-rate-burst", "6",
		"-server-url", "https://nudge.example",
		"-guest",
		"-digest-interval", "10m",
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8443", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://localhost/nudge", cfg.Storage.DB.DSN)
	assert.Equal(t, "/tmp/local.db", cfg.Storage.Local.Path)
	assert.Equal(t, "/tmp/config.json", cfg.JSONFilePath)
	assert.Equal(t, "sign", cfg.App.TokenSignKey)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 90*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, "names", cfg.App.NameEncryptionKey)
	assert.Equal(t, "Europe/Berlin", cfg.App.TimeZone)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 3.0, cfg.Server.RateLimit)
	assert.Equal(t, 6, cfg.Server.RateBurst)
	assert.Equal(t, "https://nudge.example", cfg.Adapter.HTTPAddress)
	assert.True(t, cfg.Client.GuestMode)
	assert.Equal(t, 10*time.Minute, cfg.Workers.DigestInterval)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_BadAddress(t *testing.T) {
	_, err := parseFlags([]string{"-a", "nonsense"})
	require.Error(t, err)
}
