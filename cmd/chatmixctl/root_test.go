package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arctis-tools/chatmixctl/internal/config"
	"github.com/arctis-tools/chatmixctl/internal/scope"
	"github.com/arctis-tools/chatmixctl/internal/testutil"
)

// stubPipeline replaces the install pipeline and records the configuration it
// would have run with.
type stubPipeline struct {
	cfg    *config.Install
	prof   scope.Profile
	calls  int
	result error
}

func (s *stubPipeline) install(t *testing.T) {
	t.Helper()
	orig := runPipelineFunc
	t.Cleanup(func() { runPipelineFunc = orig })
	runPipelineFunc = func(cfg *config.Install, prof scope.Profile, out io.Writer) error {
		s.cfg = cfg
		s.prof = prof
		s.calls++
		return s.result
	}
}

func setInteractive(t *testing.T, interactive bool) {
	t.Helper()
	orig := isTerminal
	t.Cleanup(func() { isTerminal = orig })
	isTerminal = func() bool { return interactive }
}

func testBinary(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "arctis-chatmix")
	testutil.WriteExecutable(t, path, "payload")
	return path
}

func runRoot(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRunInstallNonInteractive(t *testing.T) {
	setInteractive(t, false)
	pipeline := &stubPipeline{}
	pipeline.install(t)
	bin := testBinary(t)

	out, err := runRoot(t, "", "--binary", bin, "--mode", "system", "--udev", "no")
	if err != nil {
		t.Fatalf("execute: %v\noutput: %s", err, out)
	}
	if pipeline.calls != 1 {
		t.Fatalf("expected pipeline run, got %d calls", pipeline.calls)
	}
	if pipeline.cfg.BinaryPath != bin {
		t.Errorf("binary = %s", pipeline.cfg.BinaryPath)
	}
	if pipeline.cfg.Scope != config.ScopeSystem {
		t.Errorf("scope = %s", pipeline.cfg.Scope)
	}
	if pipeline.cfg.InstallUdev {
		t.Error("expected udev disabled")
	}
	if pipeline.prof.UnitDir != "/etc/systemd/system" {
		t.Errorf("profile unit dir = %s", pipeline.prof.UnitDir)
	}
	// Non-interactive runs never print a confirmation plan.
	if strings.Contains(out, "About to install:") {
		t.Errorf("unexpected plan output:\n%s", out)
	}
}

func TestRunInstallNonInteractiveMissingBinary(t *testing.T) {
	setInteractive(t, false)
	pipeline := &stubPipeline{}
	pipeline.install(t)

	_, err := runRoot(t, "")
	if err == nil {
		t.Fatal("expected error")
	}
	var misuse *config.MisuseError
	if !errors.As(err, &misuse) {
		t.Fatalf("expected MisuseError, got %T: %v", err, err)
	}
	if pipeline.calls != 0 {
		t.Fatal("pipeline must not run on misuse")
	}
}

func TestRunInstallInteractiveConfirm(t *testing.T) {
	setInteractive(t, true)
	pipeline := &stubPipeline{}
	pipeline.install(t)
	bin := testBinary(t)

	// Accept every prompt default, then confirm the plan.
	stdin := bin + "\n\n\n\n\ny\n"
	out, err := runRoot(t, stdin)
	if err != nil {
		t.Fatalf("execute: %v\noutput: %s", err, out)
	}
	if pipeline.calls != 1 {
		t.Fatalf("expected pipeline run, got %d calls", pipeline.calls)
	}
	if pipeline.cfg.Scope != config.ScopeUser {
		t.Errorf("scope = %s", pipeline.cfg.Scope)
	}
	for _, want := range []string{"About to install:", bin, "Proceed with installation?"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestRunInstallInteractiveDecline(t *testing.T) {
	setInteractive(t, true)
	pipeline := &stubPipeline{}
	pipeline.install(t)
	bin := testBinary(t)

	stdin := bin + "\n\n\n\n\nn\n"
	out, err := runRoot(t, stdin)
	if err != nil {
		t.Fatalf("declining is not an error: %v", err)
	}
	if pipeline.calls != 0 {
		t.Fatal("declined confirmation must not run the pipeline")
	}
	if !strings.Contains(out, "Aborted. Nothing was changed.") {
		t.Fatalf("expected abort message, got:\n%s", out)
	}
}

func TestRunInstallInteractiveInputClosed(t *testing.T) {
	setInteractive(t, true)
	pipeline := &stubPipeline{}
	pipeline.install(t)

	_, err := runRoot(t, "")
	if !errors.Is(err, config.ErrInputClosed) {
		t.Fatalf("expected ErrInputClosed, got %v", err)
	}
	if pipeline.calls != 0 {
		t.Fatal("pipeline must not run after closed input")
	}
}

func TestRunInstallPlanShowsUnitDiff(t *testing.T) {
	setInteractive(t, true)
	pipeline := &stubPipeline{}
	pipeline.install(t)
	bin := testBinary(t)

	home := t.TempDir()
	t.Setenv("HOME", home)
	unitDir := filepath.Join(home, ".config", "systemd", "user")
	if err := os.MkdirAll(unitDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	stale := filepath.Join(unitDir, scope.UnitName)
	if err := os.WriteFile(stale, []byte("[Unit]\nDescription=old\n"), 0o644); err != nil {
		t.Fatalf("write stale unit: %v", err)
	}

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(bin + "\n\n\n\n\ny\n"))
	cmd.SetArgs(nil)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v\noutput: %s", err, out.String())
	}

	text := out.String()
	if !strings.Contains(text, "Changes to "+stale) {
		t.Fatalf("expected diff header for existing unit:\n%s", text)
	}
	if !strings.Contains(text, "-Description=old") {
		t.Fatalf("expected removed line in diff:\n%s", text)
	}
}

func TestRunInstallRejectsPositionalArgs(t *testing.T) {
	setInteractive(t, false)
	if _, err := runRoot(t, "", "extra"); err == nil {
		t.Fatal("expected error for positional arguments")
	}
}

func TestRunInstallPipelineErrorPropagates(t *testing.T) {
	setInteractive(t, false)
	pipeline := &stubPipeline{result: errors.New("copy failed")}
	pipeline.install(t)
	bin := testBinary(t)

	_, err := runRoot(t, "", "--binary", bin)
	if err == nil || !strings.Contains(err.Error(), "copy failed") {
		t.Fatalf("expected pipeline error, got %v", err)
	}
}
