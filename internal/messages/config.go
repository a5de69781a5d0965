package messages

// Config and envfile messages.
const (
	ConfigInvalidConfigFmt = "invalid config in %s: %w"
	ConfigReadFailedFmt    = "read config %s: %w"

	ConfigNoEnginesFmt       = "%s: browsers.engines must name at least one engine"
	ConfigUnknownEngineFmt   = "%s: unknown browser engine %q (supported: %s)"
	ConfigDuplicateEngineFmt = "%s: browser engine %q listed more than once"
	ConfigEmptyCommandFmt    = "%s: playwright.command must not be blank"

	ConfigInvalidEnvFileFmt = "invalid env file %s: %w"

	EnvfileLineErrorFmt  = "line %d: %w"
	EnvfileReadFailedFmt = "read env content: %w"
	EnvfileMissingKey    = "missing key before '='"
	EnvfileMissingEquals = "expected KEY=VALUE"
	EnvfileUnterminated  = "unterminated quoted value"
)
