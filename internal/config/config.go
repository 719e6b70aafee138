// Package config provides configuration management for the Taegis CLI tools
// with support for multiple configuration sources and a well-defined
// precedence order.
//
// Configuration sources (in precedence order, highest to lowest):
//  1. Command-line flags
//  2. Environment variables
//  3. Configuration file
//  4. Built-in defaults
//
// The package supports YAML configuration files with automatic discovery in
// standard locations, and resolves Taegis environment (region) names to API
// and auth endpoints.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment base URLs keyed by canonical region name.
var environments = map[string]string{
	"US1": "https://api.ctpx.secureworks.com",
	"US2": "https://api.delta.taegis.secureworks.com",
	"US3": "https://api.foxtrot.taegis.secureworks.com",
	"EU":  "https://api.echo.taegis.secureworks.com",
}

// Internal region code names accepted as aliases on the command line.
var environmentAliases = map[string]string{
	"charlie":    "US1",
	"production": "US1",
	"delta":      "US2",
	"foxtrot":    "US3",
	"echo":       "EU",
}

// LoadConfig loads configuration from multiple sources and applies them in
// the correct precedence order. If configPath is provided, it loads from
// that specific file. Otherwise, it searches standard locations:
//   - .taegis-tools.yaml (current directory)
//   - .taegis-tools.yml (current directory)
//   - ~/.taegis/config.yaml
//   - ~/.taegis/config.yml
//
// A .env file in the current directory is loaded best-effort first so that
// CLIENT_ID/CLIENT_SECRET can live there. Environment variables are applied
// after the config file, allowing runtime overrides.
func LoadConfig(configPath string) (*Config, error) {
	// Best-effort: credentials may be kept in a local dotenv file.
	_ = godotenv.Load()

	cfg := DefaultConfig()

	if configPath != "" {
		if err := loadConfigFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	} else {
		defaultPaths := []string{
			".taegis-tools.yaml",
			".taegis-tools.yml",
			filepath.Join(os.Getenv("HOME"), ".taegis", "config.yaml"),
			filepath.Join(os.Getenv("HOME"), ".taegis", "config.yml"),
		}

		for _, path := range defaultPaths {
			if _, err := os.Stat(path); err == nil {
				if err := loadConfigFile(path, cfg); err != nil {
					return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
				}
				break
			}
		}
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// loadConfigFile reads and parses a YAML config file
func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config) {
	if env := os.Getenv("TAEGIS_ENVIRONMENT"); env != "" {
		cfg.Taegis.Environment = env
	}
	if endpoint := os.Getenv("TAEGIS_API_ENDPOINT"); endpoint != "" {
		cfg.Taegis.APIEndpoint = endpoint
	}
	if endpoint := os.Getenv("TAEGIS_AUTH_ENDPOINT"); endpoint != "" {
		cfg.Taegis.AuthEndpoint = endpoint
	}
	if pageSize := os.Getenv("TAEGIS_PAGE_SIZE"); pageSize != "" {
		if size, err := strconv.Atoi(pageSize); err == nil && size > 0 {
			cfg.Defaults.PageSize = size
		}
	}
}

// ResolveEnvironment maps a region name or alias to its canonical name and
// base URL. Matching is case-insensitive. An unknown name returns an error
// listing the accepted values.
func ResolveEnvironment(name string) (canonical, baseURL string, err error) {
	if url, ok := environments[strings.ToUpper(name)]; ok {
		return strings.ToUpper(name), url, nil
	}
	if canon, ok := environmentAliases[strings.ToLower(name)]; ok {
		return canon, environments[canon], nil
	}

	names := make([]string, 0, len(environments)+len(environmentAliases))
	for n := range environments {
		names = append(names, n)
	}
	for n := range environmentAliases {
		names = append(names, n)
	}
	sort.Strings(names)
	return "", "", fmt.Errorf("unknown environment %q (valid: %s)", name, strings.Join(names, ", "))
}

// APIEndpoint returns the effective GraphQL endpoint: an explicit override
// if configured, otherwise the endpoint derived from the environment.
func (c *Config) APIEndpoint() (string, error) {
	if c.Taegis.APIEndpoint != "" {
		return c.Taegis.APIEndpoint, nil
	}
	_, base, err := ResolveEnvironment(c.Taegis.Environment)
	if err != nil {
		return "", err
	}
	return base + "/graphql", nil
}

// AuthEndpoint returns the effective OAuth base endpoint: an explicit
// override if configured, otherwise the environment's base URL.
func (c *Config) AuthEndpoint() (string, error) {
	if c.Taegis.AuthEndpoint != "" {
		return c.Taegis.AuthEndpoint, nil
	}
	_, base, err := ResolveEnvironment(c.Taegis.Environment)
	if err != nil {
		return "", err
	}
	return base, nil
}

// Validate checks if the configuration contains valid values. This should
// be called after loading configuration to catch invalid settings early.
func (c *Config) Validate() error {
	if c.Defaults.PageSize <= 0 {
		return fmt.Errorf("page size must be positive, got: %d", c.Defaults.PageSize)
	}
	if c.Defaults.MaxRows <= 0 {
		return fmt.Errorf("max rows must be positive, got: %d", c.Defaults.MaxRows)
	}
	if c.Taegis.Environment == "" && c.Taegis.APIEndpoint == "" {
		return fmt.Errorf("either an environment or an explicit API endpoint must be set")
	}
	if c.Taegis.Environment != "" {
		if _, _, err := ResolveEnvironment(c.Taegis.Environment); err != nil {
			return err
		}
	}
	return nil
}
