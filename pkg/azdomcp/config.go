// Package azdomcp holds the server configuration and the production Azure
// DevOps connection and token providers.
package azdomcp

import (
	"fmt"
	"os"
	"strings"

	koanfyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// envPrefix is stripped from environment variables before they are mapped
// onto config keys: AZDO_ORGANIZATION_URL -> organization_url.
const envPrefix = "AZDO_"

// Config holds everything the server needs to talk to Azure DevOps.
type Config struct {
	// OrganizationURL is the base URL of the organization, e.g.
	// https://dev.azure.com/myorg.
	OrganizationURL string `koanf:"organization_url"`

	// PersonalAccessToken authenticates both the core API connection and
	// raw identity-service calls.
	PersonalAccessToken string `koanf:"personal_access_token"`

	// IdentityServiceURL overrides the public vssps endpoint.
	IdentityServiceURL string `koanf:"identity_service_url"`

	LogLevel string `koanf:"log_level"`
	LogFile  string `koanf:"log_file"`
}

func defaultConfig() *Config {
	return &Config{
		IdentityServiceURL: "https://vssps.dev.azure.com",
		LogLevel:           "info",
	}
}

// LoadConfig layers configuration from struct defaults, an optional YAML
// file and AZDO_* environment variables, in increasing order of precedence.
func LoadConfig(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		if err := k.Load(file.Provider(path), koanfyaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Validate reports missing required fields.
func (c *Config) Validate() error {
	if c.OrganizationURL == "" {
		return fmt.Errorf("organization_url is required (set AZDO_ORGANIZATION_URL)")
	}
	if c.PersonalAccessToken == "" {
		return fmt.Errorf("personal_access_token is required (set AZDO_PERSONAL_ACCESS_TOKEN)")
	}
	return nil
}
