package messages

// Setup messages for the install-and-report pipeline.
const (
	// SetupPlaywrightMissingFmt is the fixed diagnostic for a missing Playwright CLI.
	// The %s is the configured executable name (normally "playwright").
	SetupPlaywrightMissingFmt = "%s executable not found on PATH; activate your virtual environment and install Playwright (pip install playwright) before running setup"

	SetupInstallingFmt    = "Installing Playwright browser engines: %s\n"
	SetupInstallFailedFmt = "playwright install: %w"
	SetupVersionFailedFmt = "playwright version query: %w"
)
