package config

import (
	"os"
	"strconv"

	"loansight/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig
	Data      DataConfig
	Generator GeneratorConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// DataConfig holds data file paths
type DataConfig struct {
	CorpusFile string
}

// GeneratorConfig holds synthetic generation settings
type GeneratorConfig struct {
	Seed         int64
	DefaultCount int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Data: DataConfig{
			CorpusFile: os.Getenv("CORPUS_FILE"),
		},
		Generator: GeneratorConfig{
			Seed:         getEnvInt64("GENERATOR_SEED", 42),
			DefaultCount: getEnvInt("GENERATOR_DEFAULT_COUNT", 100),
		},
	}

	if cfg.Data.CorpusFile == "" {
		return nil, errors.ConfigInvalid("CORPUS_FILE is required")
	}
	if cfg.Generator.DefaultCount <= 0 {
		return nil, errors.ConfigInvalid("GENERATOR_DEFAULT_COUNT must be positive")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			return parsed
		}
	}
	return fallback
}
