package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func TestParseJSON(t *testing.T) {
	path := writeTempConfig(t, `{
		"app": {
			"env": "production",
			"token_sign_key": "json-sign-key",
			"token_issuer": "pulse-keeper",
			"token_duration": "12h"
		},
		"storage": {
			"db": {
				"host": "db.internal",
				"port": 5433,
				"username": "pulse",
				"password": "secret",
				"name": "pulsedb"
			}
		},
		"server": {
			"http_address": ":8080",
			"request_timeout": "30s",
			"rate_limit_requests": 50,
			"rate_limit_window": "1m"
		}
	}`)

	cfg, err := parseJSON(path)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if cfg.App.Env != EnvProduction {
		t.Errorf("expected env %q, got %q", EnvProduction, cfg.App.Env)
	}
	if cfg.App.TokenSignKey != "json-sign-key" {
		t.Errorf("expected sign key from file, got %q", cfg.App.TokenSignKey)
	}
	if cfg.App.TokenDuration != 12*time.Hour {
		t.Errorf("expected token duration 12h, got %v", cfg.App.TokenDuration)
	}
	if cfg.Storage.DB.Host != "db.internal" || cfg.Storage.DB.Port != 5433 {
		t.Errorf("unexpected db settings: %+v", cfg.Storage.DB)
	}
	if cfg.Server.HTTPAddress != ":8080" {
		t.Errorf("expected address :8080, got %q", cfg.Server.HTTPAddress)
	}
	if cfg.Server.RequestTimeout != 30*time.Second {
		t.Errorf("expected request timeout 30s, got %v", cfg.Server.RequestTimeout)
	}
	if cfg.Server.RateLimitRequests != 50 {
		t.Errorf("expected rate limit 50, got %d", cfg.Server.RateLimitRequests)
	}
	if cfg.Server.RateLimitWindow != time.Minute {
		t.Errorf("expected rate window 1m, got %v", cfg.Server.RateLimitWindow)
	}
}

func TestParseJSON_NumericDuration(t *testing.T) {
	// Durations may also arrive as raw nanosecond numbers.
	path := writeTempConfig(t, `{"app": {"token_duration": 3600000000000}}`)

	cfg, err := parseJSON(path)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if cfg.App.TokenDuration != time.Hour {
		t.Errorf("expected 1h from numeric duration, got %v", cfg.App.TokenDuration)
	}
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "no-such-file.json"))
	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	path := writeTempConfig(t, `{not json`)

	_, err := parseJSON(path)
	if err == nil {
		t.Fatal("expected error for malformed JSON, got nil")
	}
}

func TestParseJSON_BadDurationString(t *testing.T) {
	path := writeTempConfig(t, `{"app": {"token_duration": "soon"}}`)

	_, err := parseJSON(path)
	if err == nil {
		t.Fatal("expected error for unparsable duration, got nil")
	}
}
