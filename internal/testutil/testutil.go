// Package testutil provides helpers shared by tests across packages.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// WriteStub writes an executable shell stub that exits successfully.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStub(t *testing.T, dir string, name string) {
	t.Helper()
	WriteStubWithExit(t, dir, name, 0)
}

// WriteStubWithExit writes an executable shell stub that exits with the provided code.
func WriteStubWithExit(t *testing.T, dir string, name string, exitCode int) {
	t.Helper()
	path := filepath.Join(dir, name)
	content := []byte(fmt.Sprintf("#!/bin/sh\nexit %d\n", exitCode))
	if err := os.WriteFile(path, content, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
}

// WriteRecordingStub writes an executable shell stub that appends its
// invocation (name plus arguments) as one line to logPath and exits 0.
// Tests read logPath to assert which external commands ran and with what.
func WriteRecordingStub(t *testing.T, dir string, name string, logPath string) {
	t.Helper()
	path := filepath.Join(dir, name)
	content := []byte(fmt.Sprintf("#!/bin/sh\necho \"%s $@\" >> %q\nexit 0\n", name, logPath))
	if err := os.WriteFile(path, content, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
}

// WriteStubFailingOnArg writes an executable shell stub that records its
// invocation like WriteRecordingStub but exits 1 when failArg appears in its
// arguments.
func WriteStubFailingOnArg(t *testing.T, dir string, name string, logPath string, failArg string) {
	t.Helper()
	path := filepath.Join(dir, name)
	content := []byte(fmt.Sprintf(
		"#!/bin/sh\necho \"%s $@\" >> %q\nfor arg in \"$@\"; do\n  if [ \"$arg\" = %q ]; then exit 1; fi\ndone\nexit 0\n",
		name, logPath, failArg))
	if err := os.WriteFile(path, content, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
}

// ReadLog returns the contents of a stub log file, or "" when it does not exist.
func ReadLog(t *testing.T, logPath string) string {
	t.Helper()
	data, err := os.ReadFile(logPath)
	if err != nil {
		if os.IsNotExist(err) {
			return ""
		}
		t.Fatalf("read stub log: %v", err)
	}
	return string(data)
}

// WriteExecutable writes an executable file with the given contents, for use
// as a fake controller binary in installer tests.
func WriteExecutable(t *testing.T, path string, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o755); err != nil {
		t.Fatalf("write executable: %v", err)
	}
}
