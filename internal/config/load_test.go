package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, root, content string) string {
	t.Helper()
	paths := DefaultPaths(root)
	if err := os.MkdirAll(paths.Dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(paths.ConfigPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return paths.ConfigPath
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Playwright.Command != "playwright" {
		t.Fatalf("expected default command, got %q", cfg.Playwright.Command)
	}
	if strings.Join(cfg.Browsers.Engines, ",") != "chromium,firefox,webkit" {
		t.Fatalf("expected default engines, got %v", cfg.Browsers.Engines)
	}
	if cfg.Browsers.WithDeps {
		t.Fatalf("expected with_deps to default to false")
	}
}

func TestLoadFullConfig(t *testing.T) {
	root := t.TempDir()
	path := writeConfig(t, root, `
[playwright]
command = "playwright-core"

[browsers]
engines = ["webkit", "chromium"]
with_deps = true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Playwright.Command != "playwright-core" {
		t.Fatalf("expected command override, got %q", cfg.Playwright.Command)
	}
	if strings.Join(cfg.Browsers.Engines, ",") != "webkit,chromium" {
		t.Fatalf("expected configured order preserved, got %v", cfg.Browsers.Engines)
	}
	if !cfg.Browsers.WithDeps {
		t.Fatalf("expected with_deps true")
	}
}

func TestLoadUnknownEngine(t *testing.T) {
	root := t.TempDir()
	path := writeConfig(t, root, "[browsers]\nengines = [\"safari\"]\n")
	_, err := Load(path)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !errors.Is(err, ErrConfigValidation) {
		t.Fatalf("expected ErrConfigValidation, got %v", err)
	}
	if !strings.Contains(err.Error(), "safari") {
		t.Fatalf("expected engine name in error, got %v", err)
	}
}

func TestLoadDuplicateEngine(t *testing.T) {
	root := t.TempDir()
	path := writeConfig(t, root, "[browsers]\nengines = [\"chromium\", \"chromium\"]\n")
	_, err := Load(path)
	if !errors.Is(err, ErrConfigValidation) {
		t.Fatalf("expected ErrConfigValidation, got %v", err)
	}
}

func TestLoadSyntaxErrorIsNotValidation(t *testing.T) {
	root := t.TempDir()
	path := writeConfig(t, root, "not toml = = =")
	_, err := Load(path)
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if errors.Is(err, ErrConfigValidation) {
		t.Fatalf("syntax error should not wrap ErrConfigValidation: %v", err)
	}
}

func TestResolveEnvOverride(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "[browsers]\nengines = [\"chromium\"]\n")
	t.Setenv(EnvBrowsers, "webkit, firefox")

	cfg, err := Resolve(root)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if strings.Join(cfg.Browsers.Engines, ",") != "webkit,firefox" {
		t.Fatalf("expected env override to win, got %v", cfg.Browsers.Engines)
	}
}

func TestResolveEnvOverrideInvalid(t *testing.T) {
	t.Setenv(EnvBrowsers, "netscape")
	_, err := Resolve(t.TempDir())
	if !errors.Is(err, ErrConfigValidation) {
		t.Fatalf("expected ErrConfigValidation, got %v", err)
	}
}

func TestLoadEnvMissingFile(t *testing.T) {
	env, err := LoadEnv(filepath.Join(t.TempDir(), ".env"))
	if err != nil {
		t.Fatalf("LoadEnv error: %v", err)
	}
	if len(env) != 0 {
		t.Fatalf("expected empty map, got %v", env)
	}
}

func TestLoadEnvReadsValues(t *testing.T) {
	root := t.TempDir()
	paths := DefaultPaths(root)
	if err := os.MkdirAll(paths.Dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(paths.EnvPath, []byte("OPENAI_API_KEY=sk-test\n"), 0o600); err != nil {
		t.Fatalf("write env: %v", err)
	}
	env, err := LoadEnv(paths.EnvPath)
	if err != nil {
		t.Fatalf("LoadEnv error: %v", err)
	}
	if env["OPENAI_API_KEY"] != "sk-test" {
		t.Fatalf("expected key loaded, got %v", env)
	}
}
