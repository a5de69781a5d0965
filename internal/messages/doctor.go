package messages

// Doctor messages for the doctor command.
const (
	// DoctorUse is the doctor command name.
	DoctorUse   = "doctor"
	DoctorShort = "Check the environment the scanner depends on"

	DoctorHealthCheckFmt = "Checking scanner environment in %s...\n"

	DoctorCheckNameCLI        = "PlaywrightCLI"
	DoctorCheckNameVersion    = "PlaywrightVersion"
	DoctorCheckNameSecrets    = "APIKeys"
	DoctorCheckNameVirtualEnv = "VirtualEnv"
	DoctorCheckNameBrowsers   = "BrowserCache"
	DoctorCheckNameConfig     = "Config"

	DoctorCLIFoundFmt         = "Playwright CLI found: %s"
	DoctorCLIMissingFmt       = "Playwright CLI %q not found on PATH"
	DoctorCLIMissingRecommend = "Activate your virtual environment and run `pip install playwright`."

	DoctorVersionFmt             = "Playwright version %s"
	DoctorVersionFailedFmt       = "Failed to query Playwright version: %v"
	DoctorVersionFailedRecommend = "Run `playwright --version` manually to inspect the failure."
	DoctorVersionUnparsableFmt   = "Unrecognized version output: %q"

	DoctorSecretFoundEnvFmt     = "API key found in environment: %s"
	DoctorSecretFoundEnvFileFmt = "API key found in .rogue-setup/.env: %s"
	DoctorNoSecrets             = "No scanner API key configured"
	DoctorNoSecretsRecommendFmt = "Set one of %s in your environment or .rogue-setup/.env."

	DoctorVirtualEnvActiveFmt = "Virtual environment active: %s"
	DoctorVirtualEnvInactive  = "No virtual environment active (VIRTUAL_ENV unset)"
	DoctorVirtualEnvRecommend = "The scanner is normally installed into a project virtualenv; activate it before running setup."

	DoctorBrowsersPathFmt          = "Browser cache present: %s"
	DoctorBrowsersPathMissingFmt   = "Browser cache not found at %s"
	DoctorBrowsersPathRecommend    = "Run `rogue-setup` to download the browser engines."
	DoctorBrowsersPathUnresolvable = "Could not resolve the browser cache location"

	DoctorConfigLoaded        = "Configuration loaded successfully"
	DoctorConfigDefaults      = "No setup.toml found; defaults apply"
	DoctorConfigLoadFailedFmt = "Failed to load configuration: %v"
	DoctorConfigLoadRecommend = "Fix .rogue-setup/setup.toml or delete it to fall back to defaults."

	DoctorStatusOKLabel   = "[ OK ]"
	DoctorStatusWarnLabel = "[WARN]"
	DoctorStatusFailLabel = "[FAIL]"

	DoctorResultLineFmt        = "%s %s: %s\n"
	DoctorRecommendationPrefix = "       → "
	DoctorRecommendationIndent = "         "

	DoctorFailureSummary = "Environment checks failed."
	DoctorFailureError   = "doctor found failing checks"
	DoctorSuccessSummary = "Environment looks good."
)
