package config

// AppConfig holds runtime startup configuration loaded from YAML.
type AppConfig struct {
	Port           int            `yaml:"port"`
	Env            string         `yaml:"env"` // "development" | "production"
	AllowedOrigins []string       `yaml:"allowed_origins"`
	JWTSecret      string         `yaml:"jwt_secret"`
	CookieDomain   string         `yaml:"cookie_domain"`
	Database       DatabaseConfig `yaml:"database"`
	AI             AIProvider     `yaml:"ai"`
}

// DatabaseConfig holds MongoDB connection settings.
type DatabaseConfig struct {
	URI  string `yaml:"uri"`
	Name string `yaml:"name"`
}

// AIProvider configures the generative-text provider.
// Generation parameters are static; there is no per-request tuning.
type AIProvider struct {
	Type            string  `yaml:"type"` // "gemini" | "openai-compatible"
	APIKey          string  `yaml:"api_key"`
	Endpoint        string  `yaml:"endpoint"`
	Model           string  `yaml:"model"`
	Temperature     float32 `yaml:"temperature"`
	TopP            float32 `yaml:"top_p"`
	TopK            int32   `yaml:"top_k"`
	MaxOutputTokens int32   `yaml:"max_output_tokens"`
}
