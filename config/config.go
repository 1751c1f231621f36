package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/jakenesler/mailschema/internal/validation"
)

type Config struct {
	LogLevel           string            `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	Server             ServerConfig      `yaml:"server"`
	MetricsAddr        string            `yaml:"metrics_addr" validate:"omitempty,hostname_port"`
	MaxResponseSizeKB  int               `yaml:"max_response_size_kb" validate:"min=0"`
	AllowUnknownParams bool              `yaml:"allow_unknown_params"`
	Specs              map[string]string `yaml:"specs" validate:"dive,keys,required,slug,ne=mail,endkeys,required"`
}

type ServerConfig struct {
	Name    string `yaml:"name" validate:"required"`
	Version string `yaml:"version" validate:"required"`
}

func DefaultConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "mailschema", "config.yaml")
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{Specs: make(map[string]string)}
	cfg.applyDefaults()
	return cfg
}

// Load reads the configuration at path. An empty path means the default
// location, which may be absent.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := &Config{
		Specs: make(map[string]string),
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.applyDefaults()

	// Relative spec paths are relative to the config file.
	for name, p := range cfg.Specs {
		if p != "" && !filepath.IsAbs(p) {
			cfg.Specs[name] = filepath.Join(filepath.Dir(path), p)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.Server.Name == "" {
		c.Server.Name = DefaultServerName
	}
	if c.Server.Version == "" {
		c.Server.Version = DefaultServerVersion
	}
	// Default response size guard to 50KB if not set.
	if c.MaxResponseSizeKB <= 0 {
		c.MaxResponseSizeKB = DefaultMaxResponseSizeKB
	}
}

// Validate checks the configuration after defaults are applied.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c)
}
