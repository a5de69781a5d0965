// Package playwright wraps the Playwright CLI, the external tool that owns
// browser-engine downloads and version reporting.
package playwright

import (
	"context"
	"io"
	"os"
	"os/exec"
	"regexp"
	"strings"
)

// DefaultCommand is the executable name resolved on PATH.
const DefaultCommand = "playwright"

var (
	lookPath       = exec.LookPath
	commandContext = exec.CommandContext
)

// CLI invokes a Playwright executable. Install output is streamed to Stdout
// and Stderr; the version query is captured instead.
type CLI struct {
	Command string
	Stdout  io.Writer
	Stderr  io.Writer
}

// New returns a CLI for the given executable name. An empty command falls
// back to DefaultCommand.
func New(command string, stdout, stderr io.Writer) *CLI {
	if command == "" {
		command = DefaultCommand
	}
	return &CLI{Command: command, Stdout: stdout, Stderr: stderr}
}

// Resolve searches PATH for the configured executable and returns its
// resolved location. It spawns nothing.
func (c *CLI) Resolve() (string, error) {
	return lookPath(c.Command)
}

// Available reports whether the configured executable is resolvable on PATH.
func (c *CLI) Available() bool {
	_, err := c.Resolve()
	return err == nil
}

// InstallOptions selects what `playwright install` downloads.
type InstallOptions struct {
	Browsers []string
	WithDeps bool
}

// InstallArgs returns the argument vector for `playwright install`,
// preserving browser order.
func InstallArgs(opts InstallOptions) []string {
	args := make([]string, 0, len(opts.Browsers)+2)
	args = append(args, "install")
	args = append(args, opts.Browsers...)
	if opts.WithDeps {
		args = append(args, "--with-deps")
	}
	return args
}

// Install runs the install subcommand with inherited streams. The error is
// returned unwrapped so callers can propagate the tool's exit status.
func (c *CLI) Install(ctx context.Context, opts InstallOptions) error {
	cmd := commandContext(ctx, c.Command, InstallArgs(opts)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr
	return cmd.Run()
}

// Version runs `playwright --version` and returns its stdout verbatim,
// trailing newline included.
func (c *CLI) Version(ctx context.Context) (string, error) {
	cmd := commandContext(ctx, c.Command, "--version")
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}

var versionPattern = regexp.MustCompile(`\d+\.\d+\.\d+(?:[\w.-]*)`)

// ParseVersion extracts the numeric version from `playwright --version`
// output (for example "Version 1.40.0" yields "1.40.0"). It returns the
// empty string when no version-shaped token is present.
func ParseVersion(output string) string {
	return versionPattern.FindString(strings.TrimSpace(output))
}
