package doctor

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/rogue-scan/rogue-setup/internal/config"
	"github.com/rogue-scan/rogue-setup/internal/messages"
	"github.com/rogue-scan/rogue-setup/internal/playwright"
)

// APIKeyVars lists the environment variables the scanner accepts a key
// from, in preference order.
var APIKeyVars = []string{"DEEPSEEK_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY"}

// EnvBrowsersPath overrides where Playwright keeps downloaded engines.
const EnvBrowsersPath = "PLAYWRIGHT_BROWSERS_PATH"

var (
	lookPathFunc = exec.LookPath
	getenvFunc   = os.Getenv
	statFunc     = os.Stat
	homedirFunc  = homedir.Dir
	versionFunc  = func(ctx context.Context, command string) (string, error) {
		return playwright.New(command, io.Discard, io.Discard).Version(ctx)
	}
)

// CheckCLI verifies the Playwright executable is resolvable on PATH.
func CheckCLI(command string) []Result {
	path, err := lookPathFunc(command)
	if err != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameCLI,
			Message:        fmt.Sprintf(messages.DoctorCLIMissingFmt, command),
			Recommendation: messages.DoctorCLIMissingRecommend,
		}}
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameCLI,
		Message:   fmt.Sprintf(messages.DoctorCLIFoundFmt, path),
	}}
}

// CheckVersion queries and parses the Playwright version. Failures are
// warnings: the CLI check already covers the fatal missing case.
func CheckVersion(ctx context.Context, command string) []Result {
	out, err := versionFunc(ctx, command)
	if err != nil {
		return []Result{{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameVersion,
			Message:        fmt.Sprintf(messages.DoctorVersionFailedFmt, err),
			Recommendation: messages.DoctorVersionFailedRecommend,
		}}
	}
	version := playwright.ParseVersion(out)
	if version == "" {
		return []Result{{
			Status:    StatusWarn,
			CheckName: messages.DoctorCheckNameVersion,
			Message:   fmt.Sprintf(messages.DoctorVersionUnparsableFmt, strings.TrimSpace(out)),
		}}
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameVersion,
		Message:   fmt.Sprintf(messages.DoctorVersionFmt, version),
	}}
}

// CheckSecrets verifies at least one scanner API key is configured, either
// in the process environment or in the project .env.
func CheckSecrets(fileEnv map[string]string) []Result {
	for _, key := range APIKeyVars {
		if getenvFunc(key) != "" {
			return []Result{{
				Status:    StatusOK,
				CheckName: messages.DoctorCheckNameSecrets,
				Message:   fmt.Sprintf(messages.DoctorSecretFoundEnvFmt, key),
			}}
		}
		if fileEnv[key] != "" {
			return []Result{{
				Status:    StatusOK,
				CheckName: messages.DoctorCheckNameSecrets,
				Message:   fmt.Sprintf(messages.DoctorSecretFoundEnvFileFmt, key),
			}}
		}
	}
	return []Result{{
		Status:         StatusFail,
		CheckName:      messages.DoctorCheckNameSecrets,
		Message:        messages.DoctorNoSecrets,
		Recommendation: fmt.Sprintf(messages.DoctorNoSecretsRecommendFmt, strings.Join(APIKeyVars, ", ")),
	}}
}

// CheckVirtualEnv reports whether a Python virtual environment is active.
// The scanner itself is installed into one, so an unset VIRTUAL_ENV usually
// means the operator forgot to activate it.
func CheckVirtualEnv() []Result {
	if venv := getenvFunc("VIRTUAL_ENV"); venv != "" {
		return []Result{{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameVirtualEnv,
			Message:   fmt.Sprintf(messages.DoctorVirtualEnvActiveFmt, venv),
		}}
	}
	return []Result{{
		Status:         StatusWarn,
		CheckName:      messages.DoctorCheckNameVirtualEnv,
		Message:        messages.DoctorVirtualEnvInactive,
		Recommendation: messages.DoctorVirtualEnvRecommend,
	}}
}

// CheckBrowserCache verifies the engine download location exists. A missing
// cache is a warning, not a failure: running setup creates it.
func CheckBrowserCache() []Result {
	path, err := browserCachePath()
	if err != nil {
		return []Result{{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameBrowsers,
			Message:        messages.DoctorBrowsersPathUnresolvable,
			Recommendation: messages.DoctorBrowsersPathRecommend,
		}}
	}
	if _, err := statFunc(path); err != nil {
		return []Result{{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameBrowsers,
			Message:        fmt.Sprintf(messages.DoctorBrowsersPathMissingFmt, path),
			Recommendation: messages.DoctorBrowsersPathRecommend,
		}}
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameBrowsers,
		Message:   fmt.Sprintf(messages.DoctorBrowsersPathFmt, path),
	}}
}

// CheckConfig validates the project setup.toml when present.
func CheckConfig(root string) []Result {
	paths := config.DefaultPaths(root)
	if _, err := statFunc(paths.ConfigPath); err != nil {
		return []Result{{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameConfig,
			Message:   messages.DoctorConfigDefaults,
		}}
	}
	if _, err := config.Load(paths.ConfigPath); err != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameConfig,
			Message:        fmt.Sprintf(messages.DoctorConfigLoadFailedFmt, err),
			Recommendation: messages.DoctorConfigLoadRecommend,
		}}
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameConfig,
		Message:   messages.DoctorConfigLoaded,
	}}
}

// browserCachePath resolves where Playwright stores downloaded engines:
// PLAYWRIGHT_BROWSERS_PATH when set, otherwise the platform cache default.
func browserCachePath() (string, error) {
	if override := getenvFunc(EnvBrowsersPath); override != "" {
		return override, nil
	}
	home, err := homedirFunc()
	if err != nil {
		return "", err
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Caches", "ms-playwright"), nil
	case "windows":
		if local := getenvFunc("LOCALAPPDATA"); local != "" {
			return filepath.Join(local, "ms-playwright"), nil
		}
		return filepath.Join(home, "AppData", "Local", "ms-playwright"), nil
	default:
		if xdg := getenvFunc("XDG_CACHE_HOME"); xdg != "" {
			return filepath.Join(xdg, "ms-playwright"), nil
		}
		return filepath.Join(home, ".cache", "ms-playwright"), nil
	}
}
