package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port           int    `mapstructure:"PORT"`
	Env            string `mapstructure:"APP_ENV"` // development | production
	WorkerPoolSize int    `mapstructure:"WORKER_POOL_SIZE"`

	// Remote events API
	APIBaseURL string `mapstructure:"API_BASE_URL"`

	// Redis (session records + job queues)
	RedisURL string `mapstructure:"REDIS_URL"`

	// Session
	SessionTTLHours int    `mapstructure:"SESSION_TTL_HOURS"`
	CookieNombre    string `mapstructure:"COOKIE_NOMBRE"`
	CookieSegura    bool   `mapstructure:"COOKIE_SEGURA"`

	// Registro — optional email-domain allowlist (comma-separated, empty = off).
	// A plausibility check for typos, not a security control.
	AllowedEmailDomains string `mapstructure:"ALLOWED_EMAIL_DOMAINS"`

	// SMTP (inscription receipts)
	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     int    `mapstructure:"SMTP_PORT"`
	SMTPUser     string `mapstructure:"SMTP_USER"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`

	// Comprobantes
	PDFStoragePath string `mapstructure:"PDF_STORAGE_PATH"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 8080)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("WORKER_POOL_SIZE", 3)
	viper.SetDefault("API_BASE_URL", "http://localhost:8000/api")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("SESSION_TTL_HOURS", 24)
	viper.SetDefault("COOKIE_NOMBRE", "portal_sesion")
	viper.SetDefault("COOKIE_SEGURA", false)
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("PDF_STORAGE_PATH", "/tmp/portal-eventos/comprobantes")

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DominiosPermitidos returns the parsed allowlist, nil when disabled.
func (c *Config) DominiosPermitidos() []string {
	if strings.TrimSpace(c.AllowedEmailDomains) == "" {
		return nil
	}
	partes := strings.Split(c.AllowedEmailDomains, ",")
	dominios := make([]string, 0, len(partes))
	for _, p := range partes {
		if d := strings.ToLower(strings.TrimSpace(p)); d != "" {
			dominios = append(dominios, d)
		}
	}
	return dominios
}
