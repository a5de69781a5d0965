// Package wizard drives the interactive prompts behind `rogue-setup init`.
package wizard

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/rogue-scan/rogue-setup/internal/messages"
	"github.com/rogue-scan/rogue-setup/internal/terminal"
)

// UI defines the interaction methods the init flow needs.
type UI interface {
	MultiSelect(title string, options []string, selected *[]string) error
	Confirm(title string, value *bool) error
}

// HuhUI implements UI using charmbracelet/huh.
type HuhUI struct {
	isTerminal func() bool
}

var runFormFunc = func(form *huh.Form) error { return form.Run() }

// NewHuhUI creates a HuhUI using the default terminal check.
func NewHuhUI() *HuhUI {
	return &HuhUI{isTerminal: terminal.IsInteractive}
}

// ensureInteractive returns an error when the UI is invoked without a terminal.
func (ui *HuhUI) ensureInteractive() error {
	checker := ui.isTerminal
	if checker == nil {
		checker = terminal.IsInteractive
	}
	if checker() {
		return nil
	}
	return fmt.Errorf(messages.WizardRequiresTerminal)
}

// MultiSelect prompts for a subset of options, preserving option order.
func (ui *HuhUI) MultiSelect(title string, options []string, selected *[]string) error {
	if err := ui.ensureInteractive(); err != nil {
		return err
	}
	opts := make([]huh.Option[string], 0, len(options))
	for _, option := range options {
		opts = append(opts, huh.NewOption(option, option).Selected(contains(*selected, option)))
	}
	field := huh.NewMultiSelect[string]().
		Title(title).
		Options(opts...).
		Value(selected)
	return runFormFunc(huh.NewForm(huh.NewGroup(field)))
}

// Confirm prompts for a yes/no decision.
func (ui *HuhUI) Confirm(title string, value *bool) error {
	if err := ui.ensureInteractive(); err != nil {
		return err
	}
	field := huh.NewConfirm().
		Title(title).
		Value(value)
	return runFormFunc(huh.NewForm(huh.NewGroup(field)))
}

func contains(values []string, want string) bool {
	for _, value := range values {
		if value == want {
			return true
		}
	}
	return false
}
