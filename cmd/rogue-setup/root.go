package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rogue-scan/rogue-setup/internal/config"
	"github.com/rogue-scan/rogue-setup/internal/messages"
	"github.com/rogue-scan/rogue-setup/internal/playwright"
	"github.com/rogue-scan/rogue-setup/internal/setup"
)

var getwd = os.Getwd

func newRootCmd() *cobra.Command {
	var quiet bool
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := getwd()
			if err != nil {
				return err
			}
			cfg, err := config.Resolve(cwd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			errOut := cmd.ErrOrStderr()
			cli := playwright.New(cfg.Playwright.Command, out, errOut)
			opts := setup.Options{
				Command:  cfg.Playwright.Command,
				Browsers: cfg.Browsers.Engines,
				WithDeps: cfg.Browsers.WithDeps,
				Quiet:    quiet,
			}
			return setup.Run(cmd.Context(), cli, opts, out, errOut)
		},
	}

	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, messages.RootFlagQuiet)

	cmd.AddCommand(newInstallCmd())
	cmd.AddCommand(newDoctorCmd())
	cmd.AddCommand(newInitCmd())

	return cmd
}
