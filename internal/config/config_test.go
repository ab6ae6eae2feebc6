package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func lookupFrom(env map[string]string) func(string) string {
	return func(k string) string { return env[k] }
}

func TestFromEnv(t *testing.T) {
	cfg, err := FromEnv(lookupFrom(map[string]string{
		EnvDBPath:        "./data/bashir.db",
		EnvJWTSecret:     "s3cret",
		EnvTokenTTL:      "2h",
		EnvOwnerUsername: " bashir ",
	}))
	if err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}
	if cfg.TokenTTL != 2*time.Hour || cfg.Port != DefaultPort || cfg.StorageDir != DefaultStorageDir {
		t.Errorf("Unexpected config: %+v", cfg)
	}
	if cfg.Owner.Username != "bashir" {
		t.Errorf("Expected trimmed owner username, got %q", cfg.Owner.Username)
	}
	if cfg.Addr() != ":8080" {
		t.Errorf("Expected :8080, got %s", cfg.Addr())
	}
}

func TestFromEnv_NotConfigured(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		missing string
	}{
		{"nothing", map[string]string{}, "DB_PATH, JWT_SECRET"},
		{"no secret", map[string]string{EnvDBPath: "x.db"}, "JWT_SECRET"},
		{"no database", map[string]string{EnvJWTSecret: "s"}, "DB_PATH"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromEnv(lookupFrom(tt.env))
			if !errors.Is(err, ErrNotConfigured) {
				t.Fatalf("Expected ErrNotConfigured, got %v", err)
			}
			if !strings.HasSuffix(err.Error(), tt.missing) {
				t.Errorf("Expected message to name %s, got %q", tt.missing, err)
			}
		})
	}
}

func TestFromEnv_InvalidValues(t *testing.T) {
	base := map[string]string{EnvDBPath: "x.db", EnvJWTSecret: "s"}

	for _, kv := range [][2]string{{EnvTokenTTL, "soon"}, {EnvPort, "http"}, {EnvPort, "70000"}} {
		env := map[string]string{kv[0]: kv[1]}
		for k, v := range base {
			env[k] = v
		}
		_, err := FromEnv(lookupFrom(env))
		if err == nil {
			t.Errorf("%s=%s: expected error", kv[0], kv[1])
		}
		if errors.Is(err, ErrNotConfigured) {
			t.Errorf("%s=%s: invalid value is not a missing setting", kv[0], kv[1])
		}
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "test.env")
	if err := os.WriteFile(file, []byte("BASHIR_TEST_VALUE=from-file\n"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	t.Setenv("BASHIR_TEST_VALUE", "")
	os.Unsetenv("BASHIR_TEST_VALUE")

	if err := LoadDotEnv(file, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("LoadDotEnv failed: %v", err)
	}
	if got := os.Getenv("BASHIR_TEST_VALUE"); got != "from-file" {
		t.Errorf("Expected from-file, got %q", got)
	}
}
