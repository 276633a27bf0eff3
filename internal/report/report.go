// Package report collects the outcome of an installer run: the artifacts
// written and the advisory warnings raised along the way. Warnings never
// change the run's exit status; each carries the manual command that repairs
// the condition.
package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/arctis-tools/chatmixctl/internal/messages"
)

// Warning is an advisory failure with its manual remediation command.
type Warning struct {
	Message string
	Remedy  string
}

// Summary is the observable result of a run. Final state lives in the
// filesystem and the service manager; this only records what to tell the user.
type Summary struct {
	BinaryPath string
	UnitPath   string
	RulesPath  string
	Warnings   []Warning
}

// Warn records an advisory failure.
func (s *Summary) Warn(message string, remedy string) {
	s.Warnings = append(s.Warnings, Warning{Message: message, Remedy: remedy})
}

// Print writes the closing summary. systemctlArg and unitName parameterize
// the status hint for the installed scope.
func (s *Summary) Print(out io.Writer, systemctlArg string, unitName string) {
	_, _ = fmt.Fprintln(out, color.GreenString(messages.ReportHeader))
	if s.BinaryPath != "" {
		_, _ = fmt.Fprintf(out, messages.ReportBinaryFmt, s.BinaryPath)
	}
	if s.UnitPath != "" {
		_, _ = fmt.Fprintf(out, messages.ReportUnitFmt, s.UnitPath)
	}
	if s.RulesPath != "" {
		_, _ = fmt.Fprintf(out, messages.ReportRulesFmt, s.RulesPath)
	}
	if len(s.Warnings) > 0 {
		_, _ = fmt.Fprintln(out)
		_, _ = fmt.Fprintln(out, color.YellowString(messages.ReportWarningsHead))
		for _, w := range s.Warnings {
			_, _ = fmt.Fprintf(out, messages.ReportWarningFmt, w.Message)
			if w.Remedy != "" {
				_, _ = fmt.Fprintf(out, messages.ReportRemedyFmt, w.Remedy)
			}
		}
	}
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintf(out, messages.ReportStatusHintFmt+"\n", systemctlArg, unitName)
}
