package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_URL", "postgres://u:p@localhost:5432/cms")
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestLoad_Defaults(t *testing.T) {
	validEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres://u:p@localhost:5432/cms", cfg.DBURL)
	assert.Equal(t, 12, cfg.PageSize)
	assert.Equal(t, 12*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_Overrides(t *testing.T) {
	validEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("PAGE_SIZE", "20")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("MEDIA_BASE_URL", "https://cdn.example.com/media")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 20, cfg.PageSize)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "https://cdn.example.com/media", cfg.MediaBaseURL)
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("DB_URL", "")
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{DBURL: "postgres://localhost/cms", JWTSecret: "s", GinMode: "release", PageSize: 12, TokenTTL: time.Hour, Log: LogConfig{Format: "json"}}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"missing db url", func(c *Config) { c.DBURL = "" }, true},
		{"missing jwt secret", func(c *Config) { c.JWTSecret = "" }, true},
		{"page size zero", func(c *Config) { c.PageSize = 0 }, true},
		{"page size over cap", func(c *Config) { c.PageSize = 101 }, true},
		{"non-positive ttl", func(c *Config) { c.TokenTTL = 0 }, true},
		{"unknown log format", func(c *Config) { c.Log.Format = "xml" }, true},
		{"unknown gin mode", func(c *Config) { c.GinMode = "prod" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
