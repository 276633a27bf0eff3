package wizard

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arctis-tools/chatmixctl/internal/config"
)

// scriptedUI plays back canned answers and records every step title.
type scriptedUI struct {
	t *testing.T
	// answers are applied in order; each either sets the prompt value or
	// returns an error.
	inputs   []string
	selects  []string
	confirms []bool
	titles   []string
	cancelAt string
}

func (ui *scriptedUI) step(title string) error {
	ui.titles = append(ui.titles, title)
	if ui.cancelAt != "" && title == ui.cancelAt {
		return errWizardCancelled
	}
	return nil
}

func (ui *scriptedUI) Input(title string, value *string, validate func(string) error) error {
	if err := ui.step(title); err != nil {
		return err
	}
	if len(ui.inputs) == 0 {
		ui.t.Fatalf("no scripted input for %q", title)
	}
	answer := ui.inputs[0]
	ui.inputs = ui.inputs[1:]
	if validate != nil {
		if err := validate(answer); err != nil {
			return err
		}
	}
	*value = answer
	return nil
}

func (ui *scriptedUI) Select(title string, options []string, current *string) error {
	if err := ui.step(title); err != nil {
		return err
	}
	if len(ui.selects) == 0 {
		return nil
	}
	*current = ui.selects[0]
	ui.selects = ui.selects[1:]
	return nil
}

func (ui *scriptedUI) Confirm(title string, value *bool) error {
	if err := ui.step(title); err != nil {
		return err
	}
	if len(ui.confirms) == 0 {
		return nil
	}
	*value = ui.confirms[0]
	ui.confirms = ui.confirms[1:]
	return nil
}

func (ui *scriptedUI) Note(title string, body string) error {
	return ui.step(title)
}

func fakeBinary(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "arctis-chatmix")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755))
	return path
}

func TestRunAppliesConfiguration(t *testing.T) {
	bin := fakeBinary(t)
	ui := &scriptedUI{
		t:        t,
		inputs:   []string{bin},
		selects:  []string{"user"},
		confirms: []bool{true, true, true, true}, // udev, service, linger, final confirm
	}
	var out bytes.Buffer

	var applied *config.Install
	err := Run(ui, &out, func(cfg *config.Install) error {
		applied = cfg
		return nil
	})
	require.NoError(t, err)
	require.NotNil(t, applied)
	assert.Equal(t, bin, applied.BinaryPath)
	assert.Equal(t, config.ScopeUser, applied.Scope)
	assert.True(t, applied.InstallUdev)
	assert.True(t, applied.EnableService)
	assert.True(t, applied.EnableLinger)
	assert.True(t, applied.Interactive)
}

func TestRunSystemScopeSkipsLinger(t *testing.T) {
	bin := fakeBinary(t)
	ui := &scriptedUI{
		t:        t,
		inputs:   []string{bin},
		selects:  []string{"system"},
		confirms: []bool{true, true, true}, // udev, service, final confirm
	}
	var out bytes.Buffer

	var applied *config.Install
	err := Run(ui, &out, func(cfg *config.Install) error {
		applied = cfg
		return nil
	})
	require.NoError(t, err)
	require.NotNil(t, applied)
	assert.Equal(t, config.ScopeSystem, applied.Scope)
	for _, title := range ui.titles {
		assert.NotContains(t, title, "logout", "no linger step for system scope")
	}
}

func TestRunDeclinedSummaryExitsCleanly(t *testing.T) {
	bin := fakeBinary(t)
	ui := &scriptedUI{
		t:        t,
		inputs:   []string{bin},
		selects:  []string{"user"},
		confirms: []bool{true, true, true, false}, // decline at final confirm
	}
	var out bytes.Buffer

	applied := false
	err := Run(ui, &out, func(cfg *config.Install) error {
		applied = true
		return nil
	})
	require.NoError(t, err)
	assert.False(t, applied, "declined wizard must not apply")
	assert.Contains(t, out.String(), "Exited without changes.")
}

func TestRunCancelledMidFlow(t *testing.T) {
	bin := fakeBinary(t)
	ui := &scriptedUI{
		t:        t,
		inputs:   []string{bin},
		selects:  []string{"user"},
		cancelAt: "Install the udev device rule?",
	}
	var out bytes.Buffer

	applied := false
	err := Run(ui, &out, func(cfg *config.Install) error {
		applied = true
		return nil
	})
	require.NoError(t, err)
	assert.False(t, applied)
	assert.Contains(t, out.String(), "Exited without changes.")
}

func TestRunInvalidBinarySurfacesValidation(t *testing.T) {
	ui := &scriptedUI{
		t:      t,
		inputs: []string{"/no/such/binary"},
	}
	var out bytes.Buffer

	err := Run(ui, &out, func(cfg *config.Install) error { return nil })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/no/such/binary")
}

func TestRunApplyErrorPropagates(t *testing.T) {
	bin := fakeBinary(t)
	ui := &scriptedUI{
		t:        t,
		inputs:   []string{bin},
		selects:  []string{"user"},
		confirms: []bool{true, true, true, true},
	}
	var out bytes.Buffer

	boom := errors.New("install failed")
	err := Run(ui, &out, func(cfg *config.Install) error { return boom })
	assert.ErrorIs(t, err, boom)
}
