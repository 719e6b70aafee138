package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveEnvironment(t *testing.T) {
	tests := []struct {
		input         string
		wantCanonical string
		wantURL       string
		wantErr       bool
	}{
		{input: "US1", wantCanonical: "US1", wantURL: "https://api.ctpx.secureworks.com"},
		{input: "us2", wantCanonical: "US2", wantURL: "https://api.delta.taegis.secureworks.com"},
		{input: "charlie", wantCanonical: "US1", wantURL: "https://api.ctpx.secureworks.com"},
		{input: "production", wantCanonical: "US1", wantURL: "https://api.ctpx.secureworks.com"},
		{input: "DELTA", wantCanonical: "US2", wantURL: "https://api.delta.taegis.secureworks.com"},
		{input: "foxtrot", wantCanonical: "US3", wantURL: "https://api.foxtrot.taegis.secureworks.com"},
		{input: "EU", wantCanonical: "EU", wantURL: "https://api.echo.taegis.secureworks.com"},
		{input: "echo", wantCanonical: "EU", wantURL: "https://api.echo.taegis.secureworks.com"},
		{input: "mars", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		canonical, url, err := ResolveEnvironment(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ResolveEnvironment(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if tt.wantErr {
			if err != nil && !strings.Contains(err.Error(), "valid:") {
				t.Errorf("ResolveEnvironment(%q) error %q does not list valid names", tt.input, err)
			}
			continue
		}
		if canonical != tt.wantCanonical {
			t.Errorf("ResolveEnvironment(%q) canonical = %q, want %q", tt.input, canonical, tt.wantCanonical)
		}
		if url != tt.wantURL {
			t.Errorf("ResolveEnvironment(%q) url = %q, want %q", tt.input, url, tt.wantURL)
		}
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Taegis.Environment != "US1" {
		t.Errorf("Environment = %q, want US1", cfg.Taegis.Environment)
	}
	if cfg.Defaults.PageSize != 1000 {
		t.Errorf("PageSize = %d, want 1000", cfg.Defaults.PageSize)
	}
	if cfg.Taegis.ClientIDEnv != "CLIENT_ID" || cfg.Taegis.SecretEnv != "CLIENT_SECRET" {
		t.Errorf("credential env names = %q/%q", cfg.Taegis.ClientIDEnv, cfg.Taegis.SecretEnv)
	}
}

func TestLoadConfig_File(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `
taegis:
  environment: US2
  client_id_env: MY_CLIENT_ID
defaults:
  page_size: 250
  time_range: -7d
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Taegis.Environment != "US2" {
		t.Errorf("Environment = %q, want US2", cfg.Taegis.Environment)
	}
	if cfg.Taegis.ClientIDEnv != "MY_CLIENT_ID" {
		t.Errorf("ClientIDEnv = %q, want MY_CLIENT_ID", cfg.Taegis.ClientIDEnv)
	}
	if cfg.Defaults.PageSize != 250 {
		t.Errorf("PageSize = %d, want 250", cfg.Defaults.PageSize)
	}
	if cfg.Defaults.TimeRange != "-7d" {
		t.Errorf("TimeRange = %q, want -7d", cfg.Defaults.TimeRange)
	}
	// Unset fields keep their defaults.
	if cfg.Defaults.MaxRows != 1000 {
		t.Errorf("MaxRows = %d, want default 1000", cfg.Defaults.MaxRows)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TAEGIS_ENVIRONMENT", "EU")
	t.Setenv("TAEGIS_API_ENDPOINT", "https://api.example.test/graphql")
	t.Setenv("TAEGIS_PAGE_SIZE", "500")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Taegis.Environment != "EU" {
		t.Errorf("Environment = %q, want EU", cfg.Taegis.Environment)
	}
	if cfg.Taegis.APIEndpoint != "https://api.example.test/graphql" {
		t.Errorf("APIEndpoint = %q", cfg.Taegis.APIEndpoint)
	}
	if cfg.Defaults.PageSize != 500 {
		t.Errorf("PageSize = %d, want 500", cfg.Defaults.PageSize)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig("/no/such/config.yaml"); err == nil {
		t.Error("expected error for explicit missing config file, got nil")
	}
}

func TestAPIEndpoint(t *testing.T) {
	cfg := DefaultConfig()
	endpoint, err := cfg.APIEndpoint()
	if err != nil {
		t.Fatalf("APIEndpoint failed: %v", err)
	}
	if endpoint != "https://api.ctpx.secureworks.com/graphql" {
		t.Errorf("endpoint = %q", endpoint)
	}

	// Explicit override wins over the environment.
	cfg.Taegis.APIEndpoint = "https://api.example.test/graphql"
	endpoint, err = cfg.APIEndpoint()
	if err != nil {
		t.Fatalf("APIEndpoint failed: %v", err)
	}
	if endpoint != "https://api.example.test/graphql" {
		t.Errorf("endpoint = %q, want override", endpoint)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "zero page size",
			mutate:  func(c *Config) { c.Defaults.PageSize = 0 },
			wantErr: true,
		},
		{
			name:    "negative max rows",
			mutate:  func(c *Config) { c.Defaults.MaxRows = -1 },
			wantErr: true,
		},
		{
			name:    "unknown environment",
			mutate:  func(c *Config) { c.Taegis.Environment = "mars" },
			wantErr: true,
		},
		{
			name: "no environment but explicit endpoint",
			mutate: func(c *Config) {
				c.Taegis.Environment = ""
				c.Taegis.APIEndpoint = "https://api.example.test/graphql"
			},
		},
		{
			name: "no environment and no endpoint",
			mutate: func(c *Config) {
				c.Taegis.Environment = ""
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
