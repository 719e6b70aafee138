// Package config types define the configuration structures used by both
// CLI tools. These represent settings that can be loaded from YAML
// configuration files, environment variables, or command-line flags.
package config

// Config represents the complete configuration for the Taegis tools.
// It consolidates settings from various sources and provides a unified
// interface for accessing configuration values.
type Config struct {
	Taegis   TaegisConfig   `yaml:"taegis"`
	Defaults DefaultsConfig `yaml:"defaults"`
}

// TaegisConfig contains Taegis-specific settings: the target environment
// (region), endpoint overrides, and the names of the environment variables
// holding OAuth client credentials.
type TaegisConfig struct {
	Environment  string `yaml:"environment"`
	APIEndpoint  string `yaml:"api_endpoint"`
	AuthEndpoint string `yaml:"auth_endpoint"`
	ClientIDEnv  string `yaml:"client_id_env"`
	SecretEnv    string `yaml:"client_secret_env"`
}

// DefaultsConfig contains default settings that apply to all queries unless
// overridden by command-line flags.
type DefaultsConfig struct {
	PageSize  int    `yaml:"page_size"`
	MaxRows   int    `yaml:"max_rows"`
	TimeRange string `yaml:"time_range"`
}

// DefaultConfig returns a Config with sensible defaults. The default
// environment is US1.
func DefaultConfig() *Config {
	return &Config{
		Taegis: TaegisConfig{
			Environment: "US1",
			ClientIDEnv: "CLIENT_ID",
			SecretEnv:   "CLIENT_SECRET",
		},
		Defaults: DefaultsConfig{
			PageSize:  1000,
			MaxRows:   1000,
			TimeRange: "-1d",
		},
	}
}
