package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "NODE_ENV", "MONGODB_URI", "MONGODB_DB", "JWT_SECRET",
		"COOKIE_DOMAIN", "ALLOWED_ORIGINS", "GEMINI_API_KEY", "OPENAI_API_KEY",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Port)
	assert.Equal(t, "mongodb://127.0.0.1:27017", cfg.Database.URI)
	assert.Equal(t, "mindhaven", cfg.Database.Name)
	assert.Equal(t, "gemini", cfg.AI.Type)
	assert.Equal(t, "gemini-1.5-flash", cfg.AI.Model)
	assert.Equal(t, float32(0.7), cfg.AI.Temperature)
	assert.Equal(t, int32(1024), cfg.AI.MaxOutputTokens)
	assert.True(t, cfg.IsDev())
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := `
port: 8080
env: production
jwt_secret: supersecret
allowed_origins:
  - https://app.example.com
database:
  uri: mongodb://db:27017
  name: companion
ai:
  type: openai-compatible
  model: gpt-4o-mini
  endpoint: https://llm.internal
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	clearEnv(t)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.False(t, cfg.IsDev())
	assert.Equal(t, "supersecret", cfg.JWTSecret)
	assert.Equal(t, []string{"https://app.example.com"}, cfg.AllowedOrigins)
	assert.Equal(t, "companion", cfg.Database.Name)
	assert.Equal(t, "openai-compatible", cfg.AI.Type)
	assert.Equal(t, "https://llm.internal", cfg.AI.Endpoint)
	// generation params still default when unset
	assert.Equal(t, int32(40), cfg.AI.TopK)
}

func TestEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("MONGODB_URI", "mongodb://envhost:27017")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("GEMINI_API_KEY", "gk-123")
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:5173, https://example.com")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "mongodb://envhost:27017", cfg.Database.URI)
	assert.Equal(t, "env-secret", cfg.JWTSecret)
	assert.Equal(t, "gk-123", cfg.AI.APIKey)
	assert.Equal(t, "gemini", cfg.AI.Type)
	assert.Equal(t, []string{"http://localhost:5173", "https://example.com"}, cfg.AllowedOrigins)
}
