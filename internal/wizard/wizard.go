package wizard

import (
	"fmt"

	"github.com/rogue-scan/rogue-setup/internal/config"
	"github.com/rogue-scan/rogue-setup/internal/messages"
)

// Answers holds the choices collected by the init flow.
type Answers struct {
	Engines  []string
	WithDeps bool
}

// DefaultAnswers returns the choices applied when running non-interactively:
// all engines, no OS dependencies.
func DefaultAnswers() Answers {
	return Answers{Engines: append([]string(nil), config.KnownEngines...)}
}

// Run collects init choices through the given UI. Engine order is
// normalized to the canonical install order regardless of selection order.
func Run(ui UI) (Answers, error) {
	answers := DefaultAnswers()

	if err := ui.MultiSelect(messages.WizardEnginesTitle, config.KnownEngines, &answers.Engines); err != nil {
		return Answers{}, err
	}
	if len(answers.Engines) == 0 {
		return Answers{}, fmt.Errorf(messages.WizardEnginesNone)
	}
	answers.Engines = normalizeEngines(answers.Engines)

	if err := ui.Confirm(messages.WizardWithDepsTitle, &answers.WithDeps); err != nil {
		return Answers{}, err
	}

	return answers, nil
}

// Config converts the collected answers into a project configuration.
func (a Answers) Config() *config.Config {
	cfg := config.Default()
	cfg.Browsers.Engines = append([]string(nil), a.Engines...)
	cfg.Browsers.WithDeps = a.WithDeps
	return cfg
}

func normalizeEngines(selected []string) []string {
	ordered := make([]string, 0, len(selected))
	for _, engine := range config.KnownEngines {
		for _, pick := range selected {
			if pick == engine {
				ordered = append(ordered, engine)
				break
			}
		}
	}
	return ordered
}
