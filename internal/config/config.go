package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds application configuration
type Config struct {
	// Global settings
	Format  string `mapstructure:"format" yaml:"format" json:"format"`
	Color   string `mapstructure:"color" yaml:"color" json:"color"`
	Quiet   bool   `mapstructure:"quiet" yaml:"quiet" json:"quiet"`
	Verbose bool   `mapstructure:"verbose" yaml:"verbose" json:"verbose"`

	// Default values for commands
	Defaults DefaultsConfig `mapstructure:"defaults" yaml:"defaults" json:"defaults"`
}

// DefaultsConfig holds default values for commands
type DefaultsConfig struct {
	// Log export read by the report command when no path is given
	File string `mapstructure:"file" yaml:"file" json:"file"`
}

// Default returns a Config with default values
func Default() *Config {
	return &Config{
		Format:  "text",
		Color:   "auto",
		Quiet:   false,
		Verbose: false,
		Defaults: DefaultsConfig{
			File: "logs_result.json",
		},
	}
}

// Load loads configuration from files and environment
// Config file search order (highest precedence first):
// 1. ./.reqtriage.yaml or ./.reqtriage.yml
// 2. ~/.reqtriage.yaml or ~/.reqtriage.yml
// 3. $XDG_CONFIG_HOME/reqtriage/config.yaml (or ~/.config/reqtriage/config.yaml)
// 4. /etc/reqtriage/config.yaml
func Load() (*Config, error) {
	cfg := Default()

	if configFile := findConfigFile(); configFile != "" {
		loaded, err := LoadFromFile(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// LoadFromFile loads configuration from a specific file
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	return cfg, nil
}

// findConfigFile searches for config file in standard locations
func findConfigFile() string {
	names := []string{".reqtriage.yaml", ".reqtriage.yml", "reqtriage.yaml", "reqtriage.yml"}

	var searchPaths []string
	if cwd, err := os.Getwd(); err == nil {
		searchPaths = append(searchPaths, cwd)
	}
	if home, err := os.UserHomeDir(); err == nil {
		searchPaths = append(searchPaths, home)
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		searchPaths = append(searchPaths, filepath.Join(configDir, "reqtriage"))
	}
	searchPaths = append(searchPaths, "/etc/reqtriage")

	for _, dir := range searchPaths {
		for _, name := range names {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
		// Also check for config.yaml in subdirs
		path := filepath.Join(dir, "config.yaml")
		if filepath.Base(dir) == "reqtriage" {
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}

	return ""
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("REQTRIAGE_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("REQTRIAGE_COLOR"); v != "" {
		cfg.Color = v
	}
	if v := os.Getenv("REQTRIAGE_QUIET"); v == "true" || v == "1" {
		cfg.Quiet = true
	}
	if v := os.Getenv("REQTRIAGE_VERBOSE"); v == "true" || v == "1" {
		cfg.Verbose = true
	}
	if v := os.Getenv("REQTRIAGE_FILE"); v != "" {
		cfg.Defaults.File = v
	}
}

// ConfigFile returns the path to the config file that would be loaded
func ConfigFile() string {
	return findConfigFile()
}

// Marshal renders the config as YAML
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
