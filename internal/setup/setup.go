// Package setup orchestrates the scanner preparation pipeline: availability
// check, browser-engine install dispatch, version report.
package setup

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rogue-scan/rogue-setup/internal/messages"
	"github.com/rogue-scan/rogue-setup/internal/playwright"
)

// Runner is the slice of the Playwright CLI the pipeline needs.
type Runner interface {
	Resolve() (string, error)
	Install(ctx context.Context, opts playwright.InstallOptions) error
	Version(ctx context.Context) (string, error)
}

// Options configures a pipeline run.
type Options struct {
	// Command is the executable name, used only in the missing-dependency
	// diagnostic. Empty means playwright.DefaultCommand.
	Command  string
	Browsers []string
	WithDeps bool
	// Quiet suppresses the progress line on stderr. The missing-dependency
	// diagnostic is never suppressed.
	Quiet bool
}

// Run executes the three-step sequence with fail-fast semantics:
//
//  1. Resolve the executable; when missing, return the fixed diagnostic
//     without spawning anything (the caller exits 1).
//  2. Dispatch the install; a failure is returned with the tool's
//     *exec.ExitError wrapped so the caller propagates the exit status.
//  3. Relay the version output verbatim to stdout.
func Run(ctx context.Context, runner Runner, opts Options, stdout, stderr io.Writer) error {
	command := opts.Command
	if command == "" {
		command = playwright.DefaultCommand
	}

	if _, err := runner.Resolve(); err != nil {
		return fmt.Errorf(messages.SetupPlaywrightMissingFmt, command)
	}

	if !opts.Quiet {
		_, _ = fmt.Fprintf(stderr, messages.SetupInstallingFmt, strings.Join(opts.Browsers, ", "))
	}
	install := playwright.InstallOptions{Browsers: opts.Browsers, WithDeps: opts.WithDeps}
	if err := runner.Install(ctx, install); err != nil {
		return fmt.Errorf(messages.SetupInstallFailedFmt, err)
	}

	version, err := runner.Version(ctx)
	if err != nil {
		return fmt.Errorf(messages.SetupVersionFailedFmt, err)
	}
	_, _ = fmt.Fprint(stdout, version)
	return nil
}
