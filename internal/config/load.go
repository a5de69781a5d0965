package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/rogue-scan/rogue-setup/internal/envfile"
	"github.com/rogue-scan/rogue-setup/internal/messages"
	"github.com/rogue-scan/rogue-setup/internal/playwright"
)

var getenv = os.Getenv

// Load reads setup.toml from path and validates it. A missing file is not
// an error: defaults are returned so an unconfigured project keeps the
// stock setup behavior.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigReadFailedFmt, path, err)
	}
	return Parse(data, path)
}

// Parse parses and validates config TOML data. source is used in error
// messages.
func Parse(data []byte, source string) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidConfigFmt, source, err)
	}
	if strings.TrimSpace(cfg.Playwright.Command) == "" {
		cfg.Playwright.Command = playwright.DefaultCommand
	}
	if len(cfg.Browsers.Engines) == 0 {
		cfg.Browsers.Engines = append([]string(nil), KnownEngines...)
	}
	if err := cfg.Validate(source); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Resolve loads the project config for root and applies environment
// overrides: ROGUE_BROWSERS replaces the engine list when set.
func Resolve(root string) (*Config, error) {
	cfg, err := Load(DefaultPaths(root).ConfigPath)
	if err != nil {
		return nil, err
	}
	if raw := strings.TrimSpace(getenv(EnvBrowsers)); raw != "" {
		engines := splitEngines(raw)
		if err := ValidateEngines(engines, EnvBrowsers); err != nil {
			return nil, err
		}
		cfg.Browsers.Engines = engines
	}
	return cfg, nil
}

// LoadEnv reads the project .env into a key-value map. A missing file
// yields an empty map.
func LoadEnv(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidEnvFileFmt, path, err)
	}
	env, err := envfile.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidEnvFileFmt, path, err)
	}
	return env, nil
}

func splitEngines(raw string) []string {
	parts := strings.Split(raw, ",")
	engines := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		engines = append(engines, trimmed)
	}
	return engines
}
