package messages

// Doctor check names, labels, and messages.
const (
	DoctorHeaderFmt = "Checking %s installation\n\n"

	DoctorStatusOKLabel        = "[ OK ]"
	DoctorStatusWarnLabel      = "[WARN]"
	DoctorStatusFailLabel      = "[FAIL]"
	DoctorResultLineFmt        = "%s %s: %s\n"
	DoctorRecommendationPrefix = "       -> "
	DoctorRecommendationIndent = "          "

	DoctorCheckNameBinary  = "binary"
	DoctorCheckNameUnit    = "unit"
	DoctorCheckNameRules   = "udev"
	DoctorCheckNameTools   = "tools"
	DoctorCheckNameService = "service"

	DoctorBinaryInstalledFmt     = "%s is installed"
	DoctorBinaryMissingFmt       = "%s is not installed"
	DoctorBinaryMissingRecommend = "run chatmixctl to install the controller binary"
	DoctorBinaryNotExecFmt       = "%s is present but not executable"

	DoctorUnitPresentFmt       = "unit file %s is present"
	DoctorUnitMissingFmt       = "unit file %s is missing"
	DoctorUnitMissingRecommend = "run chatmixctl to install the service unit"

	DoctorRulesPresentFmt       = "udev rules %s are present"
	DoctorRulesMissingFmt       = "udev rules %s are missing"
	DoctorRulesMissingRecommend = "run chatmixctl without --udev no to install the device rule"

	DoctorToolFoundFmt            = "%s found"
	DoctorToolMissingFmt          = "%s not found on PATH"
	DoctorToolMissingRecommendFmt = "install %s with your distribution's package manager"

	DoctorServiceEnabledFmt             = "%s is enabled (%s)"
	DoctorServiceNotEnabledFmt          = "%s is not enabled (%s)"
	DoctorServiceNotEnabledRecommendFmt = "enable it with: systemctl %s enable --now %s"
	DoctorServiceQueryFailedFmt         = "could not query %s: %v"
)
