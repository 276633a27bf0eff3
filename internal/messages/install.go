package messages

// Installer and configuration messages.
const (
	ConfigInputClosed         = "input stream closed before configuration was complete"
	ConfigBinaryRequired      = "a controller binary is required; pass --binary PATH"
	ConfigBinaryMissingFmt    = "binary %s does not exist"
	ConfigBinaryNotRegularFmt = "binary %s is not a regular file"
	ConfigBinaryNotExecFmt    = "binary %s is not executable"
	ConfigInvalidScopeFmt     = "invalid scope %q (expected user or system)"
	ConfigInvalidYesNoFmt     = "invalid value %q for %s (expected yes or no)"
	ConfigDefaultsFileFmt     = "defaults file %s: %v"

	ScopeUnknownFmt     = "unknown scope %q"
	ScopeResolveHomeFmt = "resolve home directory: %w"

	ProvisionCreateDirFmt   = "create %s: %w"
	ProvisionReadBinaryFmt  = "read binary %s: %w"
	ProvisionCopyBinaryFmt  = "install binary to %s: %w"
	ProvisionRenderUnitFmt  = "render service unit: %w"
	ProvisionWriteUnitFmt   = "write service unit %s: %w"
	ProvisionElevatedCmdFmt = "%s: %v (output: %s)"
	ProvisionTempFileFmt    = "stage %s: %w"

	UdevWriteRulesFmt    = "write udev rules %s: %v"
	UdevWriteRemedy      = "re-run chatmixctl with sudo to install the device rule"
	UdevReloadFailedFmt  = "udev rule reload failed: %v"
	UdevReloadRemedy     = "run manually: sudo udevadm control --reload-rules"
	UdevTriggerFmt       = "re-evaluate attached devices for product %s failed: %v"
	UdevTriggerRemedyFmt = "run manually: sudo udevadm trigger --subsystem-match=%s --attr-match=idVendor=%s --attr-match=idProduct=%s"

	ServiceReloadFailedFmt = "systemd daemon-reload failed: %v"
	ServiceReloadRemedyFmt = "run manually: systemctl %s daemon-reload"
	ServiceEnableFailedFmt = "could not enable and start %s: %v"
	ServiceEnableRemedyFmt = "run manually: systemctl %s enable --now %s"
	ServiceLingerFailedFmt = "could not enable linger for %s: %v"
	ServiceLingerRemedyFmt = "run manually: loginctl enable-linger %s"
	ServiceResolveUserFmt  = "resolve current user: %v"

	ReportHeader        = "Installation complete."
	ReportBinaryFmt     = "  installed binary  %s\n"
	ReportUnitFmt       = "  installed unit    %s\n"
	ReportRulesFmt      = "  installed rules   %s\n"
	ReportWarningsHead  = "Warnings:"
	ReportWarningFmt    = "  - %s\n"
	ReportRemedyFmt     = "    %s\n"
	ReportStatusHintFmt = "Check the service with: systemctl %s status %s"
)
