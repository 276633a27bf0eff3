package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/arctis-tools/chatmixctl/internal/config"
	"github.com/arctis-tools/chatmixctl/internal/installer"
	"github.com/arctis-tools/chatmixctl/internal/messages"
	"github.com/arctis-tools/chatmixctl/internal/privilege"
	"github.com/arctis-tools/chatmixctl/internal/provision"
	"github.com/arctis-tools/chatmixctl/internal/scope"
	"github.com/arctis-tools/chatmixctl/internal/service"
	"github.com/arctis-tools/chatmixctl/internal/terminal"
	"github.com/arctis-tools/chatmixctl/internal/udev"
)

var (
	isTerminal      = terminal.IsInteractive
	runPipelineFunc = runPipeline
)

func newRootCmd() *cobra.Command {
	var flags config.Flags

	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd, flags)
		},
	}
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return &usageError{err: err, usage: c.UsageString()}
	})

	cmd.Flags().StringVar(&flags.Binary, "binary", "", messages.RootFlagBinary)
	cmd.Flags().StringVar(&flags.Mode, "mode", "", messages.RootFlagMode)
	cmd.Flags().StringVar(&flags.Udev, "udev", "", messages.RootFlagUdev)
	cmd.Flags().StringVar(&flags.EnableService, "enable-service", "", messages.RootFlagEnableService)
	cmd.Flags().StringVar(&flags.EnableLinger, "enable-linger", "", messages.RootFlagEnableLinger)

	cmd.AddCommand(newWizardCmd())
	cmd.AddCommand(newDoctorCmd())

	return cmd
}

// runInstall resolves the configuration, confirms interactively, and runs the
// install pipeline. A declined confirmation is a clean zero-exit abort before
// any mutation.
func runInstall(cmd *cobra.Command, flags config.Flags) error {
	interactive := isTerminal()
	in := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	cfg, err := config.Resolve(config.ResolveOptions{
		Flags:       flags,
		Interactive: interactive,
		In:          in,
		Out:         out,
	})
	if err != nil {
		return err
	}

	prof, err := scope.For(cfg.Scope)
	if err != nil {
		return err
	}

	if interactive {
		if err := printPlan(out, cfg, prof); err != nil {
			return err
		}
		proceed, err := config.PromptYesNo(in, out, messages.PromptProceed, true)
		if err != nil {
			return err
		}
		if !proceed {
			_, _ = fmt.Fprintln(out, messages.InstallAborted)
			return nil
		}
	}

	return runPipelineFunc(cfg, prof, out)
}

// runPipeline wires the real provisioners and executes one run.
func runPipeline(cfg *config.Install, prof scope.Profile, out io.Writer) error {
	broker := privilege.NewBroker()
	sum, err := installer.Run(cfg, installer.Deps{
		Profile:   prof,
		Artifacts: provision.New(provision.RealSystem{}, broker),
		Devices:   udev.New(broker),
		Service:   service.New(broker),
	})
	if err != nil {
		return err
	}
	sum.Print(out, prof.SystemctlArg, scope.UnitName)
	return nil
}

// printPlan shows what the run will write, with a diff preview for any file
// the overwrite would change.
func printPlan(out io.Writer, cfg *config.Install, prof scope.Profile) error {
	if _, err := fmt.Fprintln(out, messages.ConfirmPlanHeader); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(out, messages.ConfirmPlanBinaryFmt, cfg.BinaryPath, prof.BinaryPath()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(out, messages.ConfirmPlanUnitFmt, prof.UnitPath()); err != nil {
		return err
	}
	rulesLine := messages.ConfirmPlanRulesSkip
	if cfg.InstallUdev {
		rulesLine = fmt.Sprintf(messages.ConfirmPlanRulesFmt, udev.RulesPath)
	}
	if _, err := fmt.Fprint(out, rulesLine); err != nil {
		return err
	}
	serviceLine := messages.ConfirmPlanServiceOff
	if cfg.EnableService {
		serviceLine = messages.ConfirmPlanServiceOn
	}
	if _, err := fmt.Fprint(out, serviceLine); err != nil {
		return err
	}

	unitContent, err := provision.RenderUnit(prof)
	if err != nil {
		return err
	}
	if err := printDiff(out, prof.UnitPath(), unitContent); err != nil {
		return err
	}
	if cfg.InstallUdev {
		if err := printDiff(out, udev.RulesPath, udev.RenderRules()); err != nil {
			return err
		}
	}
	return nil
}

func printDiff(out io.Writer, path string, newContent string) error {
	diff, truncated := provision.Preview(path, newContent, provision.DefaultDiffMaxLines)
	if diff == "" {
		return nil
	}
	if _, err := fmt.Fprintf(out, "\n"+messages.ConfirmDiffHeaderFmt, path); err != nil {
		return err
	}
	if _, err := fmt.Fprint(out, diff); err != nil {
		return err
	}
	if truncated {
		if _, err := fmt.Fprint(out, messages.ConfirmDiffTruncated); err != nil {
			return err
		}
	}
	return nil
}
