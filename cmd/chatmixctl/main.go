package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arctis-tools/chatmixctl/internal/config"
	"github.com/arctis-tools/chatmixctl/internal/messages"
)

var executeFunc = execute

// Version, Commit, and BuildDate are overridden at build time.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Exit codes. Misuse covers bad flag values, an invalid scope, and a missing
// binary in non-interactive mode; a closed interactive input stream is its
// own code so scripts can tell the two apart.
const (
	exitFatal  = 1
	exitMisuse = 2
)

func main() {
	runMain(os.Args, os.Stdout, os.Stderr, os.Exit)
}

// SilentExitError reports an exit code without emitting error output.
type SilentExitError struct {
	Code int
}

func (e *SilentExitError) Error() string {
	return fmt.Sprintf("exit %d", e.Code)
}

// usageError marks a command-line misuse detected by flag parsing. It carries
// the failing command's usage text so runMain can print it after the error.
type usageError struct {
	err   error
	usage string
}

func (e *usageError) Error() string {
	return e.err.Error()
}

func (e *usageError) Unwrap() error {
	return e.err
}

// execute runs the CLI command with the provided args and output writers.
func execute(args []string, stdout io.Writer, stderr io.Writer) error {
	cmd := newRootCmd()
	cmd.Version = versionString()
	cmd.SetVersionTemplate(messages.VersionTemplate)
	if len(args) > 1 {
		cmd.SetArgs(args[1:])
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.Execute()
}

// runMain executes the CLI and maps error classes to exit codes.
func runMain(args []string, stdout io.Writer, stderr io.Writer, exit func(int)) {
	err := executeFunc(args, stdout, stderr)
	if err == nil {
		return
	}
	var silent *SilentExitError
	if errors.As(err, &silent) {
		exit(silent.Code)
		return
	}
	_, _ = fmt.Fprintln(stderr, err)
	var usage *usageError
	var misuse *config.MisuseError
	if errors.As(err, &usage) || errors.As(err, &misuse) {
		if usage != nil && usage.usage != "" {
			_, _ = fmt.Fprint(stderr, usage.usage)
		}
		exit(exitMisuse)
		return
	}
	// Everything else, including a closed interactive input stream
	// (config.ErrInputClosed) and fatal provisioning failures, exits 1.
	exit(exitFatal)
}

// versionString formats Version with optional commit and build date metadata.
func versionString() string {
	meta := []string{}
	if Commit != "" && Commit != "unknown" {
		meta = append(meta, fmt.Sprintf(messages.VersionCommitFmt, Commit))
	}
	if BuildDate != "" && BuildDate != "unknown" {
		meta = append(meta, fmt.Sprintf(messages.VersionBuildFmt, BuildDate))
	}
	if len(meta) == 0 {
		return Version
	}
	return fmt.Sprintf(messages.VersionFullFmt, Version, strings.Join(meta, ", "))
}
