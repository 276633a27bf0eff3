package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arctis-tools/chatmixctl/internal/config"
	"github.com/arctis-tools/chatmixctl/internal/doctor"
	"github.com/arctis-tools/chatmixctl/internal/messages"
	"github.com/arctis-tools/chatmixctl/internal/scope"
)

var doctorAll = doctor.All

func newDoctorCmd() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   messages.DoctorUse,
		Short: messages.DoctorShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			s, err := config.ParseScope(mode)
			if err != nil {
				return err
			}
			prof, err := scope.For(s)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(out, messages.DoctorHeaderFmt, s)

			hasFail := false
			for _, r := range doctorAll(prof) {
				printResult(out, r)
				if r.Status == doctor.StatusFail {
					hasFail = true
				}
			}
			if hasFail {
				return &SilentExitError{Code: exitFatal}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", string(config.ScopeUser), messages.RootFlagMode)

	return cmd
}

func printResult(out io.Writer, r doctor.Result) {
	var status string
	switch r.Status {
	case doctor.StatusOK:
		status = color.GreenString(messages.DoctorStatusOKLabel)
	case doctor.StatusWarn:
		status = color.YellowString(messages.DoctorStatusWarnLabel)
	case doctor.StatusFail:
		status = color.RedString(messages.DoctorStatusFailLabel)
	}

	_, _ = fmt.Fprintf(out, messages.DoctorResultLineFmt, status, r.CheckName, r.Message)
	if r.Recommendation != "" {
		printRecommendation(out, r.Recommendation)
	}
}

// printRecommendation renders a multi-line recommendation with consistent indentation.
func printRecommendation(out io.Writer, recommendation string) {
	lines := strings.Split(recommendation, "\n")
	for i, line := range lines {
		if i == 0 {
			_, _ = fmt.Fprintf(out, "%s%s\n", messages.DoctorRecommendationPrefix, line)
			continue
		}
		_, _ = fmt.Fprintf(out, "%s%s\n", messages.DoctorRecommendationIndent, line)
	}
}
