package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"
)

var envVars = []string{
	"DB_PATH", "API_PORT", "LOG_LEVEL", "LOG_FORMAT",
	"AUTH_MODE", "JWT_SECRET", "ACCESS_TOKEN_TTL", "REFRESH_TOKEN_TTL",
	"AUTH_VERIFY_PASSWORD", "SEED_DEMO_USER", "CORS_ORIGINS",
}

// clearEnv unsets every config variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envVars {
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		wantErr     bool
		checkConfig func(*Config) bool
	}{
		{
			name: "defaults in token mode",
			env:  map[string]string{"JWT_SECRET": "s3cret"},
			checkConfig: func(cfg *Config) bool {
				return cfg.DBPath == "./data/devdiary.db" &&
					cfg.APIPort == "9000" &&
					cfg.LogLevel == slog.LevelInfo &&
					cfg.LogFormat == "text" &&
					cfg.AuthMode == AuthModeToken &&
					!cfg.LocalSessions() &&
					cfg.AccessTokenTTL == 30*time.Minute &&
					cfg.RefreshTokenTTL == 168*time.Hour &&
					!cfg.VerifyPassword &&
					cfg.SeedDemoUser &&
					len(cfg.CORSOrigins) == 0
			},
		},
		{
			name:    "token mode requires JWT_SECRET",
			env:     map[string]string{},
			wantErr: true,
		},
		{
			name: "local mode without secret",
			env:  map[string]string{"AUTH_MODE": "LOCAL"},
			checkConfig: func(cfg *Config) bool {
				return cfg.AuthMode == AuthModeLocal && cfg.LocalSessions()
			},
		},
		{
			name:    "unknown auth mode",
			env:     map[string]string{"AUTH_MODE": "oauth"},
			wantErr: true,
		},
		{
			name: "custom values",
			env: map[string]string{
				"AUTH_MODE":            "local",
				"API_PORT":             "8080",
				"LOG_LEVEL":            "debug",
				"LOG_FORMAT":           "JSON",
				"ACCESS_TOKEN_TTL":     "5m",
				"REFRESH_TOKEN_TTL":    "24h",
				"AUTH_VERIFY_PASSWORD": "true",
				"SEED_DEMO_USER":       "false",
				"CORS_ORIGINS":         "http://a.local, ,http://b.local",
			},
			checkConfig: func(cfg *Config) bool {
				return cfg.APIPort == "8080" &&
					cfg.LogLevel == slog.LevelDebug &&
					cfg.LogFormat == "json" &&
					cfg.AccessTokenTTL == 5*time.Minute &&
					cfg.RefreshTokenTTL == 24*time.Hour &&
					cfg.VerifyPassword &&
					!cfg.SeedDemoUser &&
					slices.Equal(cfg.CORSOrigins, []string{"http://a.local", "http://b.local"})
			},
		},
		{
			name:    "invalid log level",
			env:     map[string]string{"AUTH_MODE": "local", "LOG_LEVEL": "loud"},
			wantErr: true,
		},
		{
			name:    "invalid log format",
			env:     map[string]string{"AUTH_MODE": "local", "LOG_FORMAT": "xml"},
			wantErr: true,
		},
		{
			name:    "invalid access token ttl",
			env:     map[string]string{"AUTH_MODE": "local", "ACCESS_TOKEN_TTL": "soon"},
			wantErr: true,
		},
		{
			name:    "negative refresh token ttl",
			env:     map[string]string{"AUTH_MODE": "local", "REFRESH_TOKEN_TTL": "-1h"},
			wantErr: true,
		},
		{
			name:    "invalid boolean",
			env:     map[string]string{"AUTH_MODE": "local", "SEED_DEMO_USER": "maybe"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Run from a directory without a .env file.
			chdir(t, t.TempDir())
			clearEnv(t)
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			cfg, err := Load()

			if tt.wantErr {
				if err == nil {
					t.Errorf("Load() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() unexpected error: %v", err)
			}
			if tt.checkConfig != nil && !tt.checkConfig(cfg) {
				t.Errorf("Load() config validation failed: %+v", cfg)
			}
		})
	}
}

func TestLoad_CreatesDataDirectory(t *testing.T) {
	chdir(t, t.TempDir())
	clearEnv(t)

	dbPath := filepath.Join(t.TempDir(), "test", "db.db")
	t.Setenv("AUTH_MODE", "local")
	t.Setenv("DB_PATH", dbPath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if _, err := os.Stat(filepath.Dir(dbPath)); os.IsNotExist(err) {
		t.Errorf("Load() should create data directory: %v", err)
	}
	if cfg.DBPath != dbPath {
		t.Errorf("Load() DBPath = %v, want %v", cfg.DBPath, dbPath)
	}
}

func TestLoad_ReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	clearEnv(t)

	content := "AUTH_MODE=token\nJWT_SECRET=from-file\nAPI_PORT=7000\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}
	sub := filepath.Join(dir, "nested")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	chdir(t, sub)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.JWTSecret != "from-file" || cfg.APIPort != "7000" {
		t.Errorf("Load() did not read parent .env: %+v", cfg)
	}
}

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		value        string
		set          bool
		defaultValue string
		want         string
	}{
		{name: "env var set", value: "set-value", set: true, defaultValue: "default", want: "set-value"},
		{name: "env var not set", defaultValue: "default", want: "default"},
		{name: "empty env var uses default", value: "", set: true, defaultValue: "default", want: "default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_ENV_VAR", tt.value)
			if !tt.set {
				_ = os.Unsetenv("TEST_ENV_VAR")
			}
			got := getEnv("TEST_ENV_VAR", tt.defaultValue)
			if got != tt.want {
				t.Errorf("getEnv(%q, %q) = %q, want %q", "TEST_ENV_VAR", tt.defaultValue, got, tt.want)
			}
		})
	}
}

// chdir changes the working directory for the duration of the test,
// restoring the previous one on cleanup (equivalent of testing.T.Chdir,
// which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
