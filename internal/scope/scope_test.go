package scope

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/arctis-tools/chatmixctl/internal/config"
)

func withHome(t *testing.T, home string) {
	t.Helper()
	orig := homedirFunc
	t.Cleanup(func() { homedirFunc = orig })
	homedirFunc = func() (string, error) { return home, nil }
}

func TestForUser(t *testing.T) {
	withHome(t, "/home/tester")

	prof, err := For(config.ScopeUser)
	if err != nil {
		t.Fatalf("For(user): %v", err)
	}
	if prof.BinDir != filepath.Join("/home/tester", ".local", "bin") {
		t.Errorf("BinDir = %s", prof.BinDir)
	}
	if prof.UnitDir != filepath.Join("/home/tester", ".config", "systemd", "user") {
		t.Errorf("UnitDir = %s", prof.UnitDir)
	}
	if prof.SystemctlArg != "--user" {
		t.Errorf("SystemctlArg = %s", prof.SystemctlArg)
	}
	if prof.Target != "default.target" {
		t.Errorf("Target = %s", prof.Target)
	}
}

func TestForSystem(t *testing.T) {
	prof, err := For(config.ScopeSystem)
	if err != nil {
		t.Fatalf("For(system): %v", err)
	}
	if prof.BinDir != "/usr/local/bin" {
		t.Errorf("BinDir = %s", prof.BinDir)
	}
	if prof.UnitDir != "/etc/systemd/system" {
		t.Errorf("UnitDir = %s", prof.UnitDir)
	}
	if prof.SystemctlArg != "--system" {
		t.Errorf("SystemctlArg = %s", prof.SystemctlArg)
	}
	if prof.Target != "multi-user.target" {
		t.Errorf("Target = %s", prof.Target)
	}
}

func TestForUserNoHome(t *testing.T) {
	orig := homedirFunc
	t.Cleanup(func() { homedirFunc = orig })
	homedirFunc = func() (string, error) { return "", errors.New("no home") }

	if _, err := For(config.ScopeUser); err == nil {
		t.Fatal("expected error without a home directory")
	}
}

func TestForUnknownScope(t *testing.T) {
	if _, err := For(config.Scope("global")); err == nil {
		t.Fatal("expected error for unknown scope")
	}
}

func TestProfilePaths(t *testing.T) {
	prof, err := For(config.ScopeSystem)
	if err != nil {
		t.Fatalf("For(system): %v", err)
	}
	if prof.BinaryPath() != "/usr/local/bin/arctis-chatmix" {
		t.Errorf("BinaryPath = %s", prof.BinaryPath())
	}
	if prof.UnitPath() != "/etc/systemd/system/arctis-chatmix.service" {
		t.Errorf("UnitPath = %s", prof.UnitPath())
	}
}
