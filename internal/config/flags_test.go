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
		{"empty address", NetAddress{}, ""},
		{"localhost with port", NetAddress{Host: "localhost", Port: 8080}, "localhost:8080"},
		{"only port", NetAddress{Port: 8088}, ":8088"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		expected    NetAddress
	}{
		{"localhost", "localhost:8088", false, NetAddress{Host: "localhost", Port: 8088}},
		{"ipv4", "127.0.0.1:9000", false, NetAddress{Host: "127.0.0.1", Port: 9000}},
		{"any host", ":8088", false, NetAddress{Port: 8088}},
		{"no port", "localhost", true, NetAddress{}},
		{"bad port", "localhost:http", true, NetAddress{}},
		{"port out of range", "localhost:70000", true, NetAddress{}},
		{"zero port", "localhost:0", true, NetAddress{}},
		{"hostname", "example.org:80", true, NetAddress{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, a)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-a", "https://relief.example.org",
		"-k", "key",
		"-t", "4s",
		"-d", "memory",
		"-i", "30s",
		"-b", "localhost:8088",
		"-bridge-sign-key", "sign",
		"-bridge-issuer", "shell",
		"-headless",
		"-token", "fcm",
		"-u", "ana",
		"-config", "relief.yaml",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://relief.example.org", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "key", cfg.Adapter.APIKey)
	assert.Equal(t, 4*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "memory", cfg.Storage.DB.DSN)
	assert.Equal(t, 30*time.Second, cfg.Workers.SyncInterval)
	assert.Equal(t, "localhost:8088", cfg.Bridge.HTTPAddress)
	assert.Equal(t, "sign", cfg.Bridge.TokenSignKey)
	assert.Equal(t, "shell", cfg.Bridge.TokenIssuer)
	assert.True(t, cfg.UI.Headless)
	assert.Equal(t, "fcm", cfg.App.DeviceToken)
	assert.Equal(t, "ana", cfg.App.UserName)
	assert.Equal(t, "relief.yaml", cfg.FilePath)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_InvalidBridgeAddress(t *testing.T) {
	_, err := parseFlags([]string{"-b", "nowhere"})
	require.Error(t, err)
}
