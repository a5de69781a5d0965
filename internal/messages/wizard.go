package messages

// Wizard messages for interactive init prompts.
const (
	WizardRequiresTerminal = "setup prompts require an interactive terminal"

	WizardEnginesTitle  = "Which browser engines should the scanner drive?"
	WizardEnginesNone   = "select at least one browser engine"
	WizardWithDepsTitle = "Install OS-level browser dependencies too (--with-deps)?"
)
