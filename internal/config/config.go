package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level tillbook.yaml configuration.
type Config struct {
	Business Business    `yaml:"business"`
	Paths    PathsConfig `yaml:"paths"`
}

// Business identifies the shop; it is printed on every invoice document.
type Business struct {
	Name     string `yaml:"name"`
	Address  string `yaml:"address,omitempty"`
	Phone    string `yaml:"phone,omitempty"`
	Email    string `yaml:"email,omitempty"`
	Currency string `yaml:"currency"` // symbol used on documents and reports
}

// PathsConfig locates the database and generated files.
type PathsConfig struct {
	Database string `yaml:"database"`
	Exports  string `yaml:"exports"`
}

// Load reads a tillbook.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new shop.
func Default(businessName string) *Config {
	return &Config{
		Business: Business{
			Name:     businessName,
			Currency: "Rs.",
		},
		Paths: PathsConfig{
			Database: "billing.db",
			Exports:  "exports",
		},
	}
}
