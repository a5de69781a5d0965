// Package config loads the optional .rogue-setup project configuration.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rogue-scan/rogue-setup/internal/messages"
	"github.com/rogue-scan/rogue-setup/internal/playwright"
)

// ErrConfigValidation is a sentinel that wraps config validation failures
// (as opposed to TOML syntax or filesystem errors). Callers can use
// errors.Is(err, ErrConfigValidation) to distinguish the two.
var ErrConfigValidation = errors.New("config validation failed")

// EnvBrowsers overrides the engine list, comma separated, beating setup.toml.
const EnvBrowsers = "ROGUE_BROWSERS"

// KnownEngines lists the browser engines Playwright can install for the
// scanner, in canonical install order.
var KnownEngines = []string{"chromium", "firefox", "webkit"}

// Config is the parsed setup.toml.
type Config struct {
	Playwright PlaywrightConfig `toml:"playwright"`
	Browsers   BrowsersConfig   `toml:"browsers"`
}

// PlaywrightConfig configures how the Playwright CLI is invoked.
type PlaywrightConfig struct {
	Command string `toml:"command"`
}

// BrowsersConfig configures which engines `playwright install` downloads.
type BrowsersConfig struct {
	Engines  []string `toml:"engines"`
	WithDeps bool     `toml:"with_deps"`
}

// Paths holds the resolved locations of the project's setup files.
type Paths struct {
	Dir        string
	ConfigPath string
	EnvPath    string
}

// DefaultPaths returns the setup file locations under root.
func DefaultPaths(root string) Paths {
	dir := filepath.Join(root, ".rogue-setup")
	return Paths{
		Dir:        dir,
		ConfigPath: filepath.Join(dir, "setup.toml"),
		EnvPath:    filepath.Join(dir, ".env"),
	}
}

// Default returns the configuration used when no setup.toml exists: the
// stock `playwright` command and all three engines in canonical order.
func Default() *Config {
	return &Config{
		Playwright: PlaywrightConfig{Command: playwright.DefaultCommand},
		Browsers:   BrowsersConfig{Engines: append([]string(nil), KnownEngines...)},
	}
}

// Validate checks cfg against the supported schema. source identifies the
// config origin in error messages.
func (cfg *Config) Validate(source string) error {
	if strings.TrimSpace(cfg.Playwright.Command) == "" {
		return validationErrorf(messages.ConfigEmptyCommandFmt, source)
	}
	if err := ValidateEngines(cfg.Browsers.Engines, source); err != nil {
		return err
	}
	return nil
}

// ValidateEngines checks an engine list for emptiness, unknown names, and
// duplicates. source identifies the list origin in error messages.
func ValidateEngines(engines []string, source string) error {
	if len(engines) == 0 {
		return validationErrorf(messages.ConfigNoEnginesFmt, source)
	}
	seen := make(map[string]bool, len(engines))
	for _, engine := range engines {
		if !isKnownEngine(engine) {
			return validationErrorf(messages.ConfigUnknownEngineFmt, source, engine, strings.Join(KnownEngines, ", "))
		}
		if seen[engine] {
			return validationErrorf(messages.ConfigDuplicateEngineFmt, source, engine)
		}
		seen[engine] = true
	}
	return nil
}

func isKnownEngine(name string) bool {
	for _, engine := range KnownEngines {
		if engine == name {
			return true
		}
	}
	return false
}

func validationErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfigValidation, fmt.Sprintf(format, args...))
}
