package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is the YAML file read when --config is not given.
const DefaultConfigPath = "contactbook.yaml"

// Config holds all contactbook configuration.
type Config struct {
	// Store settings
	Store StoreConfig `yaml:"store"`

	// Export settings
	Export ExportConfig `yaml:"export"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// ExportConfig configures vCard export.
type ExportConfig struct {
	// Default target file for --vcard without a value
	VCardPath string `yaml:"vcard_path" env:"CONTACTBOOK_VCARD"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Path:   DefaultDatabasePath,
			Driver: DriverMattn,
		},
		Export: ExportConfig{
			VCardPath: DefaultVCardPath,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file, then applies environment
// overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies CONTACTBOOK_* environment variables on top of
// whatever the file provided. Unset variables leave fields untouched.
func (c *Config) applyEnvOverrides() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Store.Path == "" {
		return fmt.Errorf("database path must not be empty")
	}
	if !IsValidDriver(c.Store.Driver) {
		return fmt.Errorf("invalid database driver: %s (valid: %v)", c.Store.Driver, ValidDrivers)
	}
	if c.Export.VCardPath == "" {
		return fmt.Errorf("vcard path must not be empty")
	}
	if _, ok := ParseLevel(c.Logging.Level); !ok {
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}
	return nil
}
