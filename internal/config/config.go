package config

import (
	"errors"
	"strings"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
	"github.com/joho/godotenv"
)

// Default artifact locations, relative to the working directory.
const (
	DefaultModelPath   = "data/rta_model.yaml"
	DefaultCatalogPath = "data/unique_values.yaml"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Startup artifacts.
	ModelPath   string
	CatalogPath string

	// ExposedFields lists the form fields the user may set. Empty selects
	// the default field set.
	ExposedFields []string
}

// Load reads configuration from environment variables, applying defaults where unset.
// A .env file in the working directory is loaded first if present; variables
// already set in the environment take precedence over it.
func Load() (*Config, error) {
	_ = godotenv.Load()

	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:        sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,
		ModelPath:       sharedcfg.EnvOrDefault("MODEL_PATH", DefaultModelPath),
		CatalogPath:     sharedcfg.EnvOrDefault("CATALOG_PATH", DefaultCatalogPath),
		ExposedFields:   parseList(sharedcfg.EnvOrDefault("EXPOSED_FIELDS", "")),
	}

	if strings.TrimSpace(cfg.ModelPath) == "" {
		return nil, errors.New("MODEL_PATH is required")
	}
	if strings.TrimSpace(cfg.CatalogPath) == "" {
		return nil, errors.New("CATALOG_PATH is required")
	}
	switch strings.ToLower(cfg.LogFormat) {
	case "json", "text":
	default:
		return nil, errors.New("LOG_FORMAT must be json or text")
	}

	return cfg, nil
}

func parseList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
