package messages

// CLI messages for user-facing commands and flags.
const (
	// RootUse is the CLI command name.
	RootUse = "rogue-setup"
	// RootShort is the short description for the root command.
	RootShort = "Prepare the Rogue scanner environment (Playwright CLI + browser engines)"
	RootLong  = "Verify the Playwright CLI is installed, download the browser engines the scanner drives, and report the Playwright version."

	RootFlagQuiet = "Suppress progress output on stderr"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// InstallUse is the install command name.
	InstallUse   = "install"
	InstallShort = "Download browser engines without the version report"

	InstallFlagBrowser  = "Browser engine to install (repeatable; chromium, firefox, or webkit)"
	InstallFlagWithDeps = "Ask Playwright to install OS-level browser dependencies as well"
	InstallFlagDryRun   = "Print the Playwright invocation without running it"

	InstallDryRunFmt = "%s %s\n"

	// InitUse is the init command name.
	InitUse   = "init"
	InitShort = "Create .rogue-setup/ configuration in this project"

	InitFlagForce = "Overwrite existing .rogue-setup files without prompting"

	InitAlreadyInitializedFmt = "%s already exists; re-run with --force to overwrite"
	InitRequiresTerminal      = "init prompts require an interactive terminal; re-run with --force to write defaults"
	InitWroteConfigFmt        = "Wrote %s\n"
	InitWroteEnvFmt           = "Wrote %s\n"
	InitEnvKeptFmt            = "Kept existing %s\n"
	InitDoneHint              = "Run 'rogue-setup' to download the browser engines."
)
