package doctor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/rogue-scan/rogue-setup/internal/config"
)

func stubGetenv(t *testing.T, values map[string]string) {
	t.Helper()
	orig := getenvFunc
	getenvFunc = func(key string) string { return values[key] }
	t.Cleanup(func() { getenvFunc = orig })
}

func TestCheckCLIMissing(t *testing.T) {
	orig := lookPathFunc
	lookPathFunc = func(file string) (string, error) { return "", errors.New("not found") }
	t.Cleanup(func() { lookPathFunc = orig })

	results := CheckCLI("playwright")
	if len(results) != 1 || results[0].Status != StatusFail {
		t.Fatalf("expected single FAIL, got %+v", results)
	}
	if results[0].Recommendation == "" {
		t.Fatalf("expected a recommendation")
	}
}

func TestCheckCLIFound(t *testing.T) {
	orig := lookPathFunc
	lookPathFunc = func(file string) (string, error) { return "/venv/bin/" + file, nil }
	t.Cleanup(func() { lookPathFunc = orig })

	results := CheckCLI("playwright")
	if len(results) != 1 || results[0].Status != StatusOK {
		t.Fatalf("expected single OK, got %+v", results)
	}
	if !strings.Contains(results[0].Message, "/venv/bin/playwright") {
		t.Fatalf("expected resolved path in message, got %q", results[0].Message)
	}
}

func TestCheckVersion(t *testing.T) {
	orig := versionFunc
	t.Cleanup(func() { versionFunc = orig })

	versionFunc = func(ctx context.Context, command string) (string, error) {
		return "Version 1.40.0\n", nil
	}
	results := CheckVersion(context.Background(), "playwright")
	if results[0].Status != StatusOK || !strings.Contains(results[0].Message, "1.40.0") {
		t.Fatalf("expected OK with version, got %+v", results[0])
	}

	versionFunc = func(ctx context.Context, command string) (string, error) {
		return "", errors.New("spawn failed")
	}
	results = CheckVersion(context.Background(), "playwright")
	if results[0].Status != StatusWarn {
		t.Fatalf("expected WARN on query failure, got %+v", results[0])
	}

	versionFunc = func(ctx context.Context, command string) (string, error) {
		return "gibberish", nil
	}
	results = CheckVersion(context.Background(), "playwright")
	if results[0].Status != StatusWarn {
		t.Fatalf("expected WARN on unparsable output, got %+v", results[0])
	}
}

func TestCheckSecrets(t *testing.T) {
	stubGetenv(t, map[string]string{})
	results := CheckSecrets(map[string]string{})
	if results[0].Status != StatusFail {
		t.Fatalf("expected FAIL with no keys, got %+v", results[0])
	}

	stubGetenv(t, map[string]string{"OPENAI_API_KEY": "sk-test"})
	results = CheckSecrets(map[string]string{})
	if results[0].Status != StatusOK || !strings.Contains(results[0].Message, "OPENAI_API_KEY") {
		t.Fatalf("expected OK from environment, got %+v", results[0])
	}

	stubGetenv(t, map[string]string{})
	results = CheckSecrets(map[string]string{"DEEPSEEK_API_KEY": "ds-test"})
	if results[0].Status != StatusOK || !strings.Contains(results[0].Message, ".env") {
		t.Fatalf("expected OK from env file, got %+v", results[0])
	}
}

func TestCheckVirtualEnv(t *testing.T) {
	stubGetenv(t, map[string]string{"VIRTUAL_ENV": "/proj/.venv"})
	results := CheckVirtualEnv()
	if results[0].Status != StatusOK {
		t.Fatalf("expected OK when active, got %+v", results[0])
	}

	stubGetenv(t, map[string]string{})
	results = CheckVirtualEnv()
	if results[0].Status != StatusWarn {
		t.Fatalf("expected WARN when inactive, got %+v", results[0])
	}
}

func TestCheckBrowserCache(t *testing.T) {
	dir := t.TempDir()
	stubGetenv(t, map[string]string{EnvBrowsersPath: dir})
	results := CheckBrowserCache()
	if results[0].Status != StatusOK || !strings.Contains(results[0].Message, dir) {
		t.Fatalf("expected OK for existing override, got %+v", results[0])
	}

	stubGetenv(t, map[string]string{EnvBrowsersPath: filepath.Join(dir, "missing")})
	results = CheckBrowserCache()
	if results[0].Status != StatusWarn {
		t.Fatalf("expected WARN for missing cache, got %+v", results[0])
	}
}

func TestCheckBrowserCacheDefaultLocation(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("default cache path differs on this platform")
	}
	home := t.TempDir()
	cache := filepath.Join(home, ".cache", "ms-playwright")
	if err := os.MkdirAll(cache, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	origHome := homedirFunc
	homedirFunc = func() (string, error) { return home, nil }
	t.Cleanup(func() { homedirFunc = origHome })
	stubGetenv(t, map[string]string{})

	results := CheckBrowserCache()
	if results[0].Status != StatusOK {
		t.Fatalf("expected OK for default cache, got %+v", results[0])
	}
}

func TestCheckConfig(t *testing.T) {
	root := t.TempDir()
	results := CheckConfig(root)
	if results[0].Status != StatusOK || results[0].Message == "" {
		t.Fatalf("expected OK defaults message, got %+v", results[0])
	}

	paths := config.DefaultPaths(root)
	if err := os.MkdirAll(paths.Dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(paths.ConfigPath, []byte("[browsers]\nengines = [\"netscape\"]\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	results = CheckConfig(root)
	if results[0].Status != StatusFail {
		t.Fatalf("expected FAIL for invalid config, got %+v", results[0])
	}

	if err := os.WriteFile(paths.ConfigPath, []byte("[browsers]\nengines = [\"webkit\"]\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	results = CheckConfig(root)
	if results[0].Status != StatusOK {
		t.Fatalf("expected OK for valid config, got %+v", results[0])
	}
}
