package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/rogue-scan/rogue-setup/internal/config"
	"github.com/rogue-scan/rogue-setup/internal/doctor"
	"github.com/rogue-scan/rogue-setup/internal/messages"
	"github.com/rogue-scan/rogue-setup/internal/terminal"
	"github.com/rogue-scan/rogue-setup/internal/wizard"
)

var (
	isInteractive = terminal.IsInteractive
	runWizard     = func() (wizard.Answers, error) { return wizard.Run(wizard.NewHuhUI()) }
)

func newInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   messages.InitUse,
		Short: messages.InitShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := getwd()
			if err != nil {
				return err
			}
			paths := config.DefaultPaths(cwd)

			if _, err := os.Stat(paths.ConfigPath); err == nil && !force {
				return fmt.Errorf(messages.InitAlreadyInitializedFmt, paths.ConfigPath)
			}

			answers := wizard.DefaultAnswers()
			if isInteractive() {
				answers, err = runWizard()
				if err != nil {
					return err
				}
			} else if !force {
				return fmt.Errorf(messages.InitRequiresTerminal)
			}

			out := cmd.OutOrStdout()
			if err := os.MkdirAll(paths.Dir, 0o755); err != nil {
				return err
			}

			data, err := toml.Marshal(answers.Config())
			if err != nil {
				return err
			}
			if err := os.WriteFile(paths.ConfigPath, data, 0o644); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(out, messages.InitWroteConfigFmt, paths.ConfigPath)

			if _, err := os.Stat(paths.EnvPath); err == nil && !force {
				_, _ = fmt.Fprintf(out, messages.InitEnvKeptFmt, paths.EnvPath)
			} else {
				if err := os.WriteFile(paths.EnvPath, []byte(envTemplate()), 0o600); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(out, messages.InitWroteEnvFmt, paths.EnvPath)
			}

			_, _ = fmt.Fprintln(out, messages.InitDoneHint)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, messages.InitFlagForce)

	return cmd
}

// envTemplate returns the starter .env with every accepted API key
// commented out.
func envTemplate() string {
	template := "# Scanner API keys. Uncomment and fill in at least one.\n"
	for _, key := range doctor.APIKeyVars {
		template += "# " + key + "=\n"
	}
	return template
}
