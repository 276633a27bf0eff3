// Package config resolves the installer configuration from defaults, the
// optional defaults file, command-line flags, and interactive prompts.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/arctis-tools/chatmixctl/internal/messages"
)

// Scope is the deployment target of an installation.
type Scope string

// Supported scopes.
const (
	ScopeUser   Scope = "user"
	ScopeSystem Scope = "system"
)

// ErrInputClosed reports that the interactive input stream ended before the
// configuration was complete.
var ErrInputClosed = errors.New(messages.ConfigInputClosed)

// MisuseError reports an invalid configuration that the caller must fix
// (bad flag value, missing binary in non-interactive mode). The CLI maps it
// to exit code 2.
type MisuseError struct {
	Reason string
}

func (e *MisuseError) Error() string {
	return e.Reason
}

func misusef(format string, args ...any) error {
	return &MisuseError{Reason: fmt.Sprintf(format, args...)}
}

// Install is the resolved installer configuration. It is built once by
// Resolve and never mutated afterwards; every later component receives it
// read-only.
type Install struct {
	BinaryPath    string
	Scope         Scope
	InstallUdev   bool
	EnableService bool
	EnableLinger  bool
	Interactive   bool
}

// Flags carries the raw command-line flag values. Empty string means the flag
// was not set. Yes/no flags stay strings so an invalid value is reported as
// misuse rather than a pflag parse error.
type Flags struct {
	Binary        string
	Mode          string
	Udev          string
	EnableService string
	EnableLinger  string
}

var statFile = os.Stat

// ParseScope validates and normalizes a scope value.
func ParseScope(value string) (Scope, error) {
	switch Scope(strings.ToLower(strings.TrimSpace(value))) {
	case ScopeUser:
		return ScopeUser, nil
	case ScopeSystem:
		return ScopeSystem, nil
	}
	return "", misusef(messages.ConfigInvalidScopeFmt, value)
}

// ParseYesNo parses a yes/no value case-insensitively, accepting single-letter
// and full-word forms. flagName is used in the error message.
func ParseYesNo(value string, flagName string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	}
	return false, misusef(messages.ConfigInvalidYesNoFmt, value, flagName)
}

// ValidateBinary checks that path names an existing regular executable file.
func ValidateBinary(path string) error {
	if strings.TrimSpace(path) == "" {
		return misusef(messages.ConfigBinaryRequired)
	}
	info, err := statFile(path)
	if err != nil {
		return misusef(messages.ConfigBinaryMissingFmt, path)
	}
	if !info.Mode().IsRegular() {
		return misusef(messages.ConfigBinaryNotRegularFmt, path)
	}
	if info.Mode().Perm()&0o111 == 0 {
		return misusef(messages.ConfigBinaryNotExecFmt, path)
	}
	return nil
}
