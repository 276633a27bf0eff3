package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "chatmixctl"
	// RootShort is the short description for the root command.
	RootShort = "Install the Arctis Nova 7 ChatMix service"
	// RootLong is the long description shown in help output.
	RootLong = "chatmixctl installs the Arctis Nova 7 ChatMix controller binary, its\n" +
		"systemd unit, and the udev rule granting device access, then reloads and\n" +
		"optionally starts the service."

	// VersionTemplate renders the --version output.
	VersionTemplate  = "{{.Version}}\n"
	VersionFullFmt   = "%s (%s)"
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"

	RootFlagBinary        = "Path to the arctis-chatmix controller binary to install"
	RootFlagMode          = "Install scope: user or system"
	RootFlagUdev          = "Install the udev device rule: yes or no"
	RootFlagEnableService = "Enable and start the service after installing: yes or no"
	RootFlagEnableLinger  = "Enable session linger so the user service survives logout: yes or no"

	// PromptYesDefaultFmt formats yes/no prompts with yes as default.
	PromptYesDefaultFmt = "%s [Y/n]: "
	// PromptNoDefaultFmt formats yes/no prompts with no as default.
	PromptNoDefaultFmt = "%s [y/N]: "
	PromptRetryYesNo   = "Please enter y or n."

	PromptBinaryPath    = "Path to the arctis-chatmix binary"
	PromptBinaryPathFmt = "%s [%s]: "
	PromptScopeFmt      = "Install scope (user or system) [%s]: "
	PromptRetryScope    = "Please enter user or system."
	PromptRetryBinary   = "No such file. Enter the path to an existing executable."
	PromptUdev          = "Install the udev device rule (recommended)"
	PromptEnableService = "Enable and start the service now"
	PromptEnableLinger  = "Keep the user service running after logout (linger)"
	PromptProceed       = "Proceed with installation?"

	ConfirmPlanHeader     = "About to install:"
	ConfirmPlanBinaryFmt  = "  binary     %s -> %s\n"
	ConfirmPlanUnitFmt    = "  unit       %s\n"
	ConfirmPlanRulesFmt   = "  udev rule  %s\n"
	ConfirmPlanRulesSkip  = "  udev rule  (skipped)\n"
	ConfirmPlanServiceOn  = "  service    enable and start\n"
	ConfirmPlanServiceOff = "  service    install only\n"
	ConfirmDiffHeaderFmt  = "Changes to %s:\n"
	ConfirmDiffTruncated  = "  ... diff truncated ...\n"

	InstallAborted = "Aborted. Nothing was changed."

	// WizardUse is the wizard command name.
	WizardUse                = "wizard"
	WizardShort              = "Guided interactive setup"
	WizardRequiresTerminal   = "the setup wizard requires an interactive terminal"
	WizardTitleBinary        = "Where is the arctis-chatmix binary?"
	WizardBinaryInvalidFmt   = "%s is not an existing executable file"
	WizardTitleScope         = "Install for this user or the whole system?"
	WizardTitleUdev          = "Install the udev device rule?"
	WizardTitleService       = "Enable and start the service now?"
	WizardTitleLinger        = "Keep the service running after logout?"
	WizardTitleConfirm       = "Apply this configuration?"
	WizardSummaryTitle       = "Review"
	WizardSummaryFmt         = "binary: %s\nscope: %s\nudev rule: %v\nenable service: %v\nlinger: %v"
	WizardExitWithoutChanges = "Exited without changes."

	// DoctorUse is the doctor command name.
	DoctorUse   = "doctor"
	DoctorShort = "Check the health of an existing installation"
)
