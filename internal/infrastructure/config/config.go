// Package config provides centralized configuration management.
//
// Configuration can be loaded from:
//  1. YAML file (config.yaml)
//  2. Environment variables (fallback)
//
// The engine section carries the classification rule tables so operators
// can extend keyword coverage or override carbon rates without touching
// the matching code.
//
// Example usage:
//
//	cfg := config.LoadOrEnv()
//	rules := cfg.Engine.ClassifierRules()
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ecotrack/ecotrack-backend/internal/domain/category"
	"github.com/ecotrack/ecotrack-backend/internal/domain/classifier"
)

// Config represents the entire application configuration
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Storage       StorageConfig       `yaml:"storage"`
	Engine        EngineConfig        `yaml:"engine"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port           int      `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// StorageConfig holds database configuration
type StorageConfig struct {
	DatabasePath string `yaml:"database_path"`
}

// EngineConfig holds the classification and rate tables. Empty sections
// mean "use the built-in defaults".
type EngineConfig struct {
	CategoryRules       []CategoryRule     `yaml:"category_rules"`
	SustainableKeywords []string           `yaml:"sustainable_keywords"`
	RateOverrides       map[string]float64 `yaml:"rate_overrides"`
}

// CategoryRule is one entry of the ordered classification table
type CategoryRule struct {
	Category string   `yaml:"category"`
	Keywords []string `yaml:"keywords"`
}

// ObservabilityConfig holds observability settings
type ObservabilityConfig struct {
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ClassifierRules converts the configured rule table to classifier rules,
// or returns nil when the section is absent so the classifier uses its
// built-in defaults.
func (e EngineConfig) ClassifierRules() []classifier.Rule {
	if len(e.CategoryRules) == 0 {
		return nil
	}
	rules := make([]classifier.Rule, 0, len(e.CategoryRules))
	for _, r := range e.CategoryRules {
		rules = append(rules, classifier.Rule{
			Category: category.Parse(r.Category),
			Keywords: r.Keywords,
		})
	}
	return rules
}

// Rates returns the effective rate table with any configured overrides
// applied on top of the defaults.
func (e EngineConfig) Rates() category.RateTable {
	if len(e.RateOverrides) == 0 {
		return category.DefaultRates()
	}
	overrides := make(map[category.Category]float64, len(e.RateOverrides))
	for raw, rate := range e.RateOverrides {
		overrides[category.Parse(raw)] = rate
	}
	return category.DefaultRates().WithOverrides(overrides)
}

// Load reads and parses the config file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Expand environment variables (e.g., ${ECOTRACK_DB_PATH})
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// LoadFromEnv loads configuration from environment variables only
func LoadFromEnv() *Config {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvInt("ECOTRACK_PORT", 8080),
		},
		Storage: StorageConfig{
			DatabasePath: getEnv("ECOTRACK_DB_PATH", "ecotrack.db"),
		},
		Observability: ObservabilityConfig{
			Logging: LoggingConfig{
				Level:  getEnv("LOG_LEVEL", "info"),
				Format: getEnv("LOG_FORMAT", "text"),
			},
		},
	}
	cfg.applyDefaults()
	return cfg
}

// LoadOrEnv tries to load from config.yaml, falls back to environment variables
func LoadOrEnv() *Config {
	return LoadOrEnvWithPath("config.yaml")
}

// LoadOrEnvWithPath tries to load from the specified path, falls back to
// environment variables
func LoadOrEnvWithPath(path string) *Config {
	if cfg, err := Load(path); err == nil {
		return cfg
	}
	return LoadFromEnv()
}

// applyDefaults fills in anything the file or environment left unset
func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if len(c.Server.AllowedOrigins) == 0 {
		c.Server.AllowedOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	}
	if c.Storage.DatabasePath == "" {
		c.Storage.DatabasePath = "ecotrack.db"
	}
	if c.Observability.Logging.Level == "" {
		c.Observability.Logging.Level = "info"
	}
	if c.Observability.Logging.Format == "" {
		c.Observability.Logging.Format = "text"
	}
}

// getEnv retrieves an environment variable with a fallback default
func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

// getEnvInt retrieves an integer environment variable with a fallback default
func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		var result int
		if _, err := fmt.Sscanf(val, "%d", &result); err == nil {
			return result
		}
	}
	return fallback
}
