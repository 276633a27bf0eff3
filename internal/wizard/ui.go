package wizard

import (
	"errors"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/arctis-tools/chatmixctl/internal/messages"
	"github.com/arctis-tools/chatmixctl/internal/terminal"
)

// UI defines the interaction methods the wizard flow needs.
type UI interface {
	Input(title string, value *string, validate func(string) error) error
	Select(title string, options []string, current *string) error
	Confirm(title string, value *bool) error
	Note(title string, body string) error
}

// HuhUI implements UI using charmbracelet/huh.
type HuhUI struct {
	isTerminal func() bool
}

var runFormFunc = func(form *huh.Form) error { return form.Run() }

// NewHuhUI creates a new HuhUI using the default terminal check.
func NewHuhUI() *HuhUI {
	return &HuhUI{isTerminal: terminal.IsInteractive}
}

// wizardKeyMap returns the wizard form keymap: both Esc and Ctrl+C abort,
// and list filtering is disabled since the option lists are tiny.
func wizardKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "cancel"))
	km.Select.Filter.SetEnabled(false)
	km.Select.SetFilter.SetEnabled(false)
	km.Select.ClearFilter.SetEnabled(false)
	return km
}

// formFilter converts InterruptMsg (huh's CancelCmd or an external SIGINT) to
// QuitMsg so bubbletea takes the graceful shutdown path and the renderer
// clears the form output.
func formFilter(_ tea.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.InterruptMsg); ok {
		return tea.QuitMsg{}
	}
	return msg
}

// runForm validates terminal availability and runs the provided form.
// An abort (Esc or Ctrl+C) surfaces as errWizardCancelled.
func (ui *HuhUI) runForm(form *huh.Form) error {
	checker := ui.isTerminal
	if checker == nil {
		checker = terminal.IsInteractive
	}
	if !checker() {
		return errors.New(messages.WizardRequiresTerminal)
	}

	form.WithKeyMap(wizardKeyMap())
	form.WithProgramOptions(
		tea.WithOutput(os.Stderr),
		tea.WithFilter(formFilter),
	)

	err := runFormFunc(form)
	if errors.Is(err, huh.ErrUserAborted) {
		return errWizardCancelled
	}
	return err
}

// Input renders a text input prompt with validation.
func (ui *HuhUI) Input(title string, value *string, validate func(string) error) error {
	input := huh.NewInput().Title(title).Value(value)
	if validate != nil {
		input = input.Validate(validate)
	}
	return ui.runForm(huh.NewForm(huh.NewGroup(input)))
}

// Select renders a single-choice prompt.
func (ui *HuhUI) Select(title string, options []string, current *string) error {
	opts := make([]huh.Option[string], len(options))
	for i, o := range options {
		opts[i] = huh.NewOption(o, o)
	}
	return ui.runForm(huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().Title(title).Options(opts...).Value(current),
	)))
}

// Confirm renders a yes/no prompt.
func (ui *HuhUI) Confirm(title string, value *bool) error {
	return ui.runForm(huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title(title).Value(value),
	)))
}

// Note renders an informational note screen.
func (ui *HuhUI) Note(title string, body string) error {
	return ui.runForm(huh.NewForm(huh.NewGroup(
		huh.NewNote().Title(title).Description(body),
	)))
}
