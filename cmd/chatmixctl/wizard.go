package main

import (
	"github.com/spf13/cobra"

	"github.com/arctis-tools/chatmixctl/internal/config"
	"github.com/arctis-tools/chatmixctl/internal/messages"
	"github.com/arctis-tools/chatmixctl/internal/scope"
	"github.com/arctis-tools/chatmixctl/internal/wizard"
)

var newWizardUI = func() wizard.UI { return wizard.NewHuhUI() }

func newWizardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.WizardUse,
		Short: messages.WizardShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			return wizard.Run(newWizardUI(), out, func(cfg *config.Install) error {
				prof, err := scope.For(cfg.Scope)
				if err != nil {
					return err
				}
				return runPipelineFunc(cfg, prof, out)
			})
		},
	}
}
