// Package doctor runs read-only health checks against an existing
// installation. It never mutates the host; the installer itself performs no
// post-activation verification, so doctor is the manual way to confirm one.
package doctor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/arctis-tools/chatmixctl/internal/messages"
	"github.com/arctis-tools/chatmixctl/internal/scope"
	"github.com/arctis-tools/chatmixctl/internal/udev"
)

// Status classifies a check outcome.
type Status int

// Check outcomes.
const (
	StatusOK Status = iota
	StatusWarn
	StatusFail
)

// Result is one check outcome with an optional remediation hint.
type Result struct {
	Status         Status
	CheckName      string
	Message        string
	Recommendation string
}

var (
	statFile   = os.Stat
	lookPath   = exec.LookPath
	runCommand = func(cmd *exec.Cmd) ([]byte, error) { return cmd.CombinedOutput() }
)

// All runs every check for the given profile in a stable order.
func All(prof scope.Profile) []Result {
	results := []Result{
		CheckBinary(prof),
		CheckUnit(prof),
		CheckRules(),
	}
	results = append(results, CheckTools()...)
	results = append(results, CheckService(prof))
	return results
}

// CheckBinary verifies the controller binary is installed and executable.
func CheckBinary(prof scope.Profile) Result {
	path := prof.BinaryPath()
	info, err := statFile(path)
	if err != nil {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameBinary,
			Message:        fmt.Sprintf(messages.DoctorBinaryMissingFmt, path),
			Recommendation: messages.DoctorBinaryMissingRecommend,
		}
	}
	if info.Mode().Perm()&0o111 == 0 {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameBinary,
			Message:        fmt.Sprintf(messages.DoctorBinaryNotExecFmt, path),
			Recommendation: messages.DoctorBinaryMissingRecommend,
		}
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameBinary,
		Message:   fmt.Sprintf(messages.DoctorBinaryInstalledFmt, path),
	}
}

// CheckUnit verifies the unit file is present for the scope.
func CheckUnit(prof scope.Profile) Result {
	path := prof.UnitPath()
	if _, err := statFile(path); err != nil {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameUnit,
			Message:        fmt.Sprintf(messages.DoctorUnitMissingFmt, path),
			Recommendation: messages.DoctorUnitMissingRecommend,
		}
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameUnit,
		Message:   fmt.Sprintf(messages.DoctorUnitPresentFmt, path),
	}
}

// CheckRules verifies the device rule file is present. Missing rules are a
// warning, not a failure: installing them is optional.
func CheckRules() Result {
	if _, err := statFile(udev.RulesPath); err != nil {
		return Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameRules,
			Message:        fmt.Sprintf(messages.DoctorRulesMissingFmt, udev.RulesPath),
			Recommendation: messages.DoctorRulesMissingRecommend,
		}
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameRules,
		Message:   fmt.Sprintf(messages.DoctorRulesPresentFmt, udev.RulesPath),
	}
}

// CheckTools verifies the external managers the installer drives are on PATH.
// systemctl is required; udevadm only matters for the optional device rule.
func CheckTools() []Result {
	var results []Result
	for _, tool := range []struct {
		name     string
		optional bool
	}{
		{name: "systemctl"},
		{name: "udevadm", optional: true},
	} {
		if _, err := lookPath(tool.name); err != nil {
			status := StatusFail
			if tool.optional {
				status = StatusWarn
			}
			results = append(results, Result{
				Status:         status,
				CheckName:      messages.DoctorCheckNameTools,
				Message:        fmt.Sprintf(messages.DoctorToolMissingFmt, tool.name),
				Recommendation: fmt.Sprintf(messages.DoctorToolMissingRecommendFmt, tool.name),
			})
			continue
		}
		results = append(results, Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameTools,
			Message:   fmt.Sprintf(messages.DoctorToolFoundFmt, tool.name),
		})
	}
	return results
}

// CheckService queries the unit's enablement state in the scope's namespace.
func CheckService(prof scope.Profile) Result {
	cmd := exec.Command("systemctl", prof.SystemctlArg, "is-enabled", scope.UnitName)
	output, err := runCommand(cmd)
	state := strings.TrimSpace(string(output))
	if err != nil {
		if state == "" {
			return Result{
				Status:    StatusWarn,
				CheckName: messages.DoctorCheckNameService,
				Message:   fmt.Sprintf(messages.DoctorServiceQueryFailedFmt, scope.UnitName, err),
			}
		}
		// is-enabled exits non-zero for disabled units but still reports the state.
		return Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameService,
			Message:        fmt.Sprintf(messages.DoctorServiceNotEnabledFmt, scope.UnitName, state),
			Recommendation: fmt.Sprintf(messages.DoctorServiceNotEnabledRecommendFmt, prof.SystemctlArg, scope.UnitName),
		}
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameService,
		Message:   fmt.Sprintf(messages.DoctorServiceEnabledFmt, scope.UnitName, state),
	}
}
