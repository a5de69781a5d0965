package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rogue-scan/rogue-setup/internal/config"
	"github.com/rogue-scan/rogue-setup/internal/doctor"
	"github.com/rogue-scan/rogue-setup/internal/messages"
)

var (
	checkCLI          = doctor.CheckCLI
	checkVersion      = doctor.CheckVersion
	checkSecrets      = doctor.CheckSecrets
	checkVirtualEnv   = doctor.CheckVirtualEnv
	checkBrowserCache = doctor.CheckBrowserCache
	checkConfig       = doctor.CheckConfig
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.DoctorUse,
		Short: messages.DoctorShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			cwd, err := getwd()
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(out, messages.DoctorHealthCheckFmt, cwd)

			paths := config.DefaultPaths(cwd)
			command := resolveCommand(cwd)

			var allResults []doctor.Result
			allResults = append(allResults, checkConfig(cwd)...)
			cliResults := checkCLI(command)
			allResults = append(allResults, cliResults...)
			if !hasFailure(cliResults) {
				allResults = append(allResults, checkVersion(cmd.Context(), command)...)
			}
			fileEnv, err := config.LoadEnv(paths.EnvPath)
			if err != nil {
				fileEnv = map[string]string{}
			}
			allResults = append(allResults, checkSecrets(fileEnv)...)
			allResults = append(allResults, checkVirtualEnv()...)
			allResults = append(allResults, checkBrowserCache()...)

			hasFail := false
			for _, r := range allResults {
				printResult(out, r)
				if r.Status == doctor.StatusFail {
					hasFail = true
				}
			}

			if hasFail {
				_, _ = fmt.Fprintln(out, color.RedString(messages.DoctorFailureSummary))
				return fmt.Errorf(messages.DoctorFailureError)
			}
			_, _ = fmt.Fprintln(out, color.GreenString(messages.DoctorSuccessSummary))
			return nil
		},
	}
}

// resolveCommand returns the configured Playwright executable name, falling
// back to the default when the config itself is broken (CheckConfig already
// reports that failure).
func resolveCommand(root string) string {
	cfg, err := config.Resolve(root)
	if err != nil {
		return config.Default().Playwright.Command
	}
	return cfg.Playwright.Command
}

func hasFailure(results []doctor.Result) bool {
	for _, r := range results {
		if r.Status == doctor.StatusFail {
			return true
		}
	}
	return false
}

func printResult(out io.Writer, r doctor.Result) {
	var status string
	switch r.Status {
	case doctor.StatusOK:
		status = color.GreenString(messages.DoctorStatusOKLabel)
	case doctor.StatusWarn:
		status = color.YellowString(messages.DoctorStatusWarnLabel)
	case doctor.StatusFail:
		status = color.RedString(messages.DoctorStatusFailLabel)
	}

	_, _ = fmt.Fprintf(out, messages.DoctorResultLineFmt, status, r.CheckName, r.Message)
	if r.Recommendation != "" {
		printRecommendation(out, r.Recommendation)
	}
}

// printRecommendation renders a multi-line recommendation with consistent indentation.
func printRecommendation(out io.Writer, recommendation string) {
	lines := strings.Split(recommendation, "\n")
	for i, line := range lines {
		if i == 0 {
			_, _ = fmt.Fprintf(out, "%s%s\n", messages.DoctorRecommendationPrefix, line)
			continue
		}
		_, _ = fmt.Fprintf(out, "%s%s\n", messages.DoctorRecommendationIndent, line)
	}
}
