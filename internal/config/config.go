package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"

	defaultPort   = 5000
	defaultEnv    = "development"
	defaultDBURI  = "mongodb://127.0.0.1:27017"
	defaultDBName = "mindhaven"

	defaultAIType      = "gemini"
	defaultAIModel     = "gemini-1.5-flash"
	defaultTemperature = 0.7
	defaultTopP        = 0.8
	defaultTopK        = 40
	defaultMaxTokens   = 1024
)

// Load reads the YAML config file, fills defaults and applies environment
// overrides. A missing config file is not an error; env vars alone are enough.
func Load(path string) (*AppConfig, error) {
	cfg := &AppConfig{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// fall through to defaults + env
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnvOverrides(cfg)
	applyDefaults(cfg)
	return cfg, nil
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool {
	return strings.EqualFold(strings.TrimSpace(c.Env), "development") || c.Env == ""
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			cfg.Port = port
		}
	}
	if v := strings.TrimSpace(os.Getenv("NODE_ENV")); v != "" && cfg.Env == "" {
		cfg.Env = v
	}
	if v := strings.TrimSpace(os.Getenv("MONGODB_URI")); v != "" {
		cfg.Database.URI = v
	}
	if v := strings.TrimSpace(os.Getenv("MONGODB_DB")); v != "" {
		cfg.Database.Name = v
	}
	if v := strings.TrimSpace(os.Getenv("JWT_SECRET")); v != "" {
		cfg.JWTSecret = v
	}
	if v := strings.TrimSpace(os.Getenv("COOKIE_DOMAIN")); v != "" {
		cfg.CookieDomain = v
	}
	if v := strings.TrimSpace(os.Getenv("ALLOWED_ORIGINS")); v != "" {
		cfg.AllowedOrigins = splitAndTrim(v)
	}

	// Provider key: GEMINI_API_KEY matches the original deployment; a generic
	// OPENAI_API_KEY selects the openai-compatible path when gemini is not keyed.
	if v := strings.TrimSpace(os.Getenv("GEMINI_API_KEY")); v != "" {
		cfg.AI.APIKey = v
		if cfg.AI.Type == "" {
			cfg.AI.Type = "gemini"
		}
	} else if v := strings.TrimSpace(os.Getenv("OPENAI_API_KEY")); v != "" && cfg.AI.APIKey == "" {
		cfg.AI.APIKey = v
		if cfg.AI.Type == "" {
			cfg.AI.Type = "openai-compatible"
		}
	}
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Port <= 0 {
		cfg.Port = defaultPort
	}
	if cfg.Env == "" {
		cfg.Env = defaultEnv
	}
	if cfg.Database.URI == "" {
		cfg.Database.URI = defaultDBURI
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = defaultDBName
	}
	if cfg.AI.Type == "" {
		cfg.AI.Type = defaultAIType
	}
	if cfg.AI.Model == "" {
		cfg.AI.Model = defaultAIModel
	}
	if cfg.AI.Temperature == 0 {
		cfg.AI.Temperature = defaultTemperature
	}
	if cfg.AI.TopP == 0 {
		cfg.AI.TopP = defaultTopP
	}
	if cfg.AI.TopK == 0 {
		cfg.AI.TopK = defaultTopK
	}
	if cfg.AI.MaxOutputTokens == 0 {
		cfg.AI.MaxOutputTokens = defaultMaxTokens
	}
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
