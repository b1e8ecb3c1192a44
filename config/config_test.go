package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
auth:
  secret: test-secret
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Listen)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "./data/cother.db", cfg.Database.Path)
	assert.Equal(t, 86400, cfg.Auth.TokenMaxAge)
	assert.Equal(t, "COTHER-AUTH", cfg.Auth.CookieName)
	assert.Equal(t, CacheTypeMemory, cfg.Cache.Type)
	assert.Equal(t, 300, cfg.Cache.TTL)
	assert.Equal(t, "https://store.steampowered.com", cfg.Steam.URL)
	assert.False(t, cfg.Gravatar.Enabled)
}

func TestLoad_Overrides(t *testing.T) {
	path := writeConfig(t, `
listen: 127.0.0.1:9000
auth:
  secret: test-secret
  token_max_age: 60
  cookie_domain: example.com
cache:
  type: redis
  redis_url: redis:6379
  ttl: 10
gravatar:
  enabled: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Listen)
	assert.Equal(t, 60, cfg.Auth.TokenMaxAge)
	assert.Equal(t, "example.com", cfg.Auth.CookieDomain)
	assert.Equal(t, CacheTypeRedis, cfg.Cache.Type)
	assert.Equal(t, "redis:6379", cfg.Cache.RedisURL)
	assert.True(t, cfg.Gravatar.Enabled)
}

func TestLoad_MissingSecret(t *testing.T) {
	path := writeConfig(t, `
listen: 127.0.0.1:9000
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "auth secret is required")
}

func TestLoad_InvalidTokenMaxAge(t *testing.T) {
	path := writeConfig(t, `
auth:
  secret: test-secret
  token_max_age: -1
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token max age")
}
