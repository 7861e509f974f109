// Package config loads the application configuration from a YAML file with
// environment variable expansion and defaults.
package config

import (
	"encoding/base64"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:nudge.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Storage struct {
		Namespace     string `yaml:"namespace" json:"namespace" jsonschema:"default=rating,description=Key namespace for rating preferences"`
		EncryptionKey string `yaml:"encryption_key" json:"encryption_key" jsonschema:"description=Optional value encryption key, 32 bytes raw or base64 (can use environment variable)"`
	} `yaml:"storage" json:"storage" jsonschema:"description=Preference storage configuration"`

	Rating struct {
		SnoozeDays int          `yaml:"snooze_days" json:"snooze_days" jsonschema:"default=180,description=Minimum days between prompt attempts"`
		MinActions int          `yaml:"min_actions" json:"min_actions" jsonschema:"default=3,description=Logged actions required before asking"`
		Primary    PromptConfig `yaml:"primary" json:"primary" jsonschema:"description=Initial rate-us prompt"`
		Secondary  PromptConfig `yaml:"secondary" json:"secondary" jsonschema:"description=Feedback prompt shown after a negative response"`
	} `yaml:"rating" json:"rating" jsonschema:"description=Rating prompt configuration"`
}

// PromptConfig holds the content of a two-button prompt, message is optional
type PromptConfig struct {
	Title    string `yaml:"title" json:"title" jsonschema:"description=Dialog title"`
	Message  string `yaml:"message" json:"message" jsonschema:"description=Optional dialog message"`
	Positive string `yaml:"positive" json:"positive" jsonschema:"description=Positive button label"`
	Negative string `yaml:"negative" json:"negative" jsonschema:"description=Negative button label"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:nudge.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// set defaults for storage
	if cfg.Storage.Namespace == "" {
		cfg.Storage.Namespace = "rating"
	}

	// set defaults for rating
	if cfg.Rating.SnoozeDays == 0 {
		cfg.Rating.SnoozeDays = 180
	}
	if cfg.Rating.MinActions == 0 {
		cfg.Rating.MinActions = 3
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Rating.SnoozeDays < 0 {
		return fmt.Errorf("rating.snooze_days can't be negative")
	}
	if cfg.Rating.MinActions < 0 {
		return fmt.Errorf("rating.min_actions can't be negative")
	}
	if cfg.Storage.EncryptionKey != "" {
		if _, err := cfg.DecodedEncryptionKey(); err != nil {
			return err
		}
	}
	return nil
}

// GetServerConfig returns listen address and timeout for the HTTP server
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// DecodedEncryptionKey returns the storage encryption key as raw bytes. The
// configured value is either a base64 encoded or a raw 32-byte key, nil
// result means encryption is off.
func (c *Config) DecodedEncryptionKey() ([]byte, error) {
	if c.Storage.EncryptionKey == "" {
		return nil, nil
	}
	key := []byte(c.Storage.EncryptionKey)
	if len(key) != 32 { // not a raw key, try base64
		if decoded, err := base64.StdEncoding.DecodeString(c.Storage.EncryptionKey); err == nil {
			key = decoded
		}
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("storage.encryption_key must be 32 bytes, got %d", len(key))
	}
	return key, nil
}
