// Package wizard implements the guided full-screen setup. It collects the
// same configuration the flag/prompt path resolves, then hands the frozen
// result to the install pipeline.
package wizard

import (
	"errors"
	"fmt"
	"io"

	"github.com/arctis-tools/chatmixctl/internal/config"
	"github.com/arctis-tools/chatmixctl/internal/messages"
)

var errWizardCancelled = errors.New("wizard cancelled")

// Run drives the wizard flow on ui and, when the user confirms, calls apply
// with the assembled configuration. Cancelling at any step exits without
// changes and without error.
func Run(ui UI, out io.Writer, apply func(cfg *config.Install) error) error {
	cfg := config.Install{
		Scope:         config.ScopeUser,
		InstallUdev:   true,
		EnableService: true,
		Interactive:   true,
	}

	err := promptFlow(ui, &cfg)
	if err == nil {
		var proceed bool
		proceed, err = confirm(ui, &cfg)
		if err == nil {
			if !proceed {
				_, _ = fmt.Fprintln(out, messages.WizardExitWithoutChanges)
				return nil
			}
			return apply(&cfg)
		}
	}
	if errors.Is(err, errWizardCancelled) {
		_, _ = fmt.Fprintln(out, messages.WizardExitWithoutChanges)
		return nil
	}
	return err
}

func promptFlow(ui UI, cfg *config.Install) error {
	validate := func(path string) error {
		if err := config.ValidateBinary(path); err != nil {
			return fmt.Errorf(messages.WizardBinaryInvalidFmt, path)
		}
		return nil
	}
	if err := ui.Input(messages.WizardTitleBinary, &cfg.BinaryPath, validate); err != nil {
		return err
	}

	scopeValue := string(cfg.Scope)
	if err := ui.Select(messages.WizardTitleScope, []string{string(config.ScopeUser), string(config.ScopeSystem)}, &scopeValue); err != nil {
		return err
	}
	cfg.Scope = config.Scope(scopeValue)

	if err := ui.Confirm(messages.WizardTitleUdev, &cfg.InstallUdev); err != nil {
		return err
	}
	if err := ui.Confirm(messages.WizardTitleService, &cfg.EnableService); err != nil {
		return err
	}
	if cfg.Scope == config.ScopeUser {
		if err := ui.Confirm(messages.WizardTitleLinger, &cfg.EnableLinger); err != nil {
			return err
		}
	}
	return nil
}

func confirm(ui UI, cfg *config.Install) (bool, error) {
	summary := fmt.Sprintf(messages.WizardSummaryFmt,
		cfg.BinaryPath, cfg.Scope, cfg.InstallUdev, cfg.EnableService, cfg.EnableLinger)
	if err := ui.Note(messages.WizardSummaryTitle, summary); err != nil {
		return false, err
	}
	proceed := true
	if err := ui.Confirm(messages.WizardTitleConfirm, &proceed); err != nil {
		return false, err
	}
	return proceed, nil
}
