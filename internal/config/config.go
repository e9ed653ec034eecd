package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// EnvDeepLAuthKey is the environment variable holding the DeepL credential.
const EnvDeepLAuthKey = "KEY_DEEPL_API"

type Config struct {
	Token           string
	DatabaseURL     string
	GuildID         string
	DeepLKey        string
	DefaultLocale   string
	DefaultLanguage string
}

// Load reads the configuration from the environment (with an optional .env
// file) and validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional when the variables come from the environment (Docker, CI, etc.).
	}

	cfg := &Config{
		Token:           os.Getenv("TOKEN"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		GuildID:         os.Getenv("GUILD_ID"),
		DeepLKey:        os.Getenv(EnvDeepLAuthKey),
		DefaultLocale:   os.Getenv("DEFAULT_LOCALE"),
		DefaultLanguage: os.Getenv("DEFAULT_TARGET_LANGUAGE"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DeepLAuthKey reads the DeepL credential from the environment, loading a
// .env file first when one is present. Returns "" when the variable is
// absent or empty.
func DeepLAuthKey() string {
	_ = godotenv.Load()
	return strings.TrimSpace(os.Getenv(EnvDeepLAuthKey))
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Token) == "" {
		return fmt.Errorf("config: TOKEN is required and cannot be empty")
	}

	if strings.TrimSpace(c.DeepLKey) == "" {
		return fmt.Errorf("config: %s is required and cannot be empty", EnvDeepLAuthKey)
	}

	if strings.TrimSpace(c.DatabaseURL) == "" {
		// Useful local default when DATABASE_URL is not provided.
		c.DatabaseURL = "postgres://localhost:5432/tradbot?sslmode=disable"
	}

	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): missing scheme or host", c.DatabaseURL)
	}

	if strings.TrimSpace(c.DefaultLocale) == "" {
		c.DefaultLocale = "en"
	}
	if strings.TrimSpace(c.DefaultLanguage) == "" {
		c.DefaultLanguage = "French"
	}

	return nil
}
