// Package installer sequences a run: provision artifacts, provision device
// access, activate the service, and collect the report. Artifact failures
// are fatal and stop the run before any service-manager interaction; device
// and activation failures are downgraded to warnings so the run always
// reaches its report.
package installer

import (
	"github.com/arctis-tools/chatmixctl/internal/config"
	"github.com/arctis-tools/chatmixctl/internal/report"
	"github.com/arctis-tools/chatmixctl/internal/scope"
)

// ArtifactProvisioner installs the controller binary and the unit file.
// Satisfied by *provision.Provisioner.
type ArtifactProvisioner interface {
	InstallBinary(src string, prof scope.Profile) (string, error)
	InstallUnit(prof scope.Profile) (string, error)
}

// DeviceProvisioner installs the device-permission rule and re-evaluates
// attached devices. Satisfied by *udev.Provisioner.
type DeviceProvisioner interface {
	Install(sum *report.Summary)
}

// ServiceActivator reloads and optionally enables the installed unit.
// Satisfied by *service.Activator.
type ServiceActivator interface {
	Activate(cfg *config.Install, prof scope.Profile, sum *report.Summary)
}

// Deps wires the three provisioning stages for one run.
type Deps struct {
	Profile   scope.Profile
	Artifacts ArtifactProvisioner
	Devices   DeviceProvisioner
	Service   ServiceActivator
}

// Run executes one installation against a frozen configuration. The returned
// summary is complete whenever err is nil, even if it carries warnings.
func Run(cfg *config.Install, deps Deps) (*report.Summary, error) {
	sum := &report.Summary{}

	binaryPath, err := deps.Artifacts.InstallBinary(cfg.BinaryPath, deps.Profile)
	if err != nil {
		return nil, err
	}
	sum.BinaryPath = binaryPath

	unitPath, err := deps.Artifacts.InstallUnit(deps.Profile)
	if err != nil {
		return nil, err
	}
	sum.UnitPath = unitPath

	if cfg.InstallUdev {
		deps.Devices.Install(sum)
	}

	deps.Service.Activate(cfg, deps.Profile, sum)

	return sum, nil
}
