package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rogue-scan/rogue-setup/internal/config"
	"github.com/rogue-scan/rogue-setup/internal/messages"
	"github.com/rogue-scan/rogue-setup/internal/playwright"
)

const flagBrowser = "browser"

func newInstallCmd() *cobra.Command {
	var (
		browsers []string
		withDeps bool
		dryRun   bool
	)
	cmd := &cobra.Command{
		Use:   messages.InstallUse,
		Short: messages.InstallShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := getwd()
			if err != nil {
				return err
			}
			cfg, err := config.Resolve(cwd)
			if err != nil {
				return err
			}
			if len(browsers) > 0 {
				if err := config.ValidateEngines(browsers, "--"+flagBrowser); err != nil {
					return err
				}
				cfg.Browsers.Engines = browsers
			}
			if cmd.Flags().Changed("with-deps") {
				cfg.Browsers.WithDeps = withDeps
			}

			opts := playwright.InstallOptions{
				Browsers: cfg.Browsers.Engines,
				WithDeps: cfg.Browsers.WithDeps,
			}
			if dryRun {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), messages.InstallDryRunFmt,
					cfg.Playwright.Command, strings.Join(playwright.InstallArgs(opts), " "))
				return nil
			}

			cli := playwright.New(cfg.Playwright.Command, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if _, err := cli.Resolve(); err != nil {
				return fmt.Errorf(messages.SetupPlaywrightMissingFmt, cfg.Playwright.Command)
			}
			if err := cli.Install(cmd.Context(), opts); err != nil {
				return fmt.Errorf(messages.SetupInstallFailedFmt, err)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&browsers, flagBrowser, nil, messages.InstallFlagBrowser)
	cmd.Flags().BoolVar(&withDeps, "with-deps", false, messages.InstallFlagWithDeps)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, messages.InstallFlagDryRun)

	return cmd
}
