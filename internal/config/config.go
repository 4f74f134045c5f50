package config

import (
	"os"
	"strconv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Seed data
	SeedFile string // optional YAML seed file; built-in defaults used if absent

	// Presentation
	PageSize  int    // cards per page on request and directory listings
	SiteTitle string // env: SITE_TITLE, default: "SkillSwap"
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:       getEnv("ENV", "development"),
		SeedFile:  getEnv("SEED_FILE", "seed.yaml"),
		PageSize:  getEnvInt("PAGE_SIZE", 6),
		SiteTitle: getEnv("SITE_TITLE", "SkillSwap"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}
