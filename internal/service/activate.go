// Package service drives the host service manager for the installed unit:
// unit-index reload, enable-and-start, and session linger. Every failure here
// is advisory; the installer reports it with the manual command and keeps
// going.
package service

import (
	"fmt"
	"os/exec"
	"os/user"
	"strings"

	"github.com/arctis-tools/chatmixctl/internal/config"
	"github.com/arctis-tools/chatmixctl/internal/messages"
	"github.com/arctis-tools/chatmixctl/internal/report"
	"github.com/arctis-tools/chatmixctl/internal/scope"
)

// lingerDir is where logind records linger state; it decides whether the
// linger call needs elevation.
const lingerDir = "/var/lib/systemd/linger"

// CommandBuilder selects a direct or elevated executor per call site.
// Satisfied by *privilege.Broker.
type CommandBuilder interface {
	CanWrite(targetDir string) bool
	Command(targetDir string, name string, args ...string) *exec.Cmd
}

// Activator reloads and optionally enables the installed unit.
type Activator struct {
	broker      CommandBuilder
	runCommand  func(cmd *exec.Cmd) ([]byte, error)
	currentUser func() (string, error)
}

// New returns an Activator for the real service manager.
func New(broker CommandBuilder) *Activator {
	return &Activator{
		broker: broker,
		runCommand: func(cmd *exec.Cmd) ([]byte, error) {
			return cmd.CombinedOutput()
		},
		currentUser: func() (string, error) {
			u, err := user.Current()
			if err != nil {
				return "", err
			}
			return u.Username, nil
		},
	}
}

// Activate reloads the unit index for the scope's namespace, then, when the
// configuration asks for it, enables and starts the unit and enables session
// linger. No call here is retried; each failure is reported once with its
// manual remediation command.
func (a *Activator) Activate(cfg *config.Install, prof scope.Profile, sum *report.Summary) {
	a.reload(prof, sum)
	if cfg.EnableService {
		a.enableNow(prof, sum)
	}
	if cfg.Scope == config.ScopeUser && cfg.EnableLinger {
		a.enableLinger(sum)
	}
}

func (a *Activator) reload(prof scope.Profile, sum *report.Summary) {
	cmd := a.systemctl(prof, "daemon-reload")
	if err := a.run(cmd); err != nil {
		sum.Warn(
			fmt.Sprintf(messages.ServiceReloadFailedFmt, err),
			fmt.Sprintf(messages.ServiceReloadRemedyFmt, prof.SystemctlArg),
		)
	}
}

func (a *Activator) enableNow(prof scope.Profile, sum *report.Summary) {
	cmd := a.systemctl(prof, "enable", "--now", scope.UnitName)
	if err := a.run(cmd); err != nil {
		sum.Warn(
			fmt.Sprintf(messages.ServiceEnableFailedFmt, scope.UnitName, err),
			fmt.Sprintf(messages.ServiceEnableRemedyFmt, prof.SystemctlArg, scope.UnitName),
		)
	}
}

// enableLinger lets the user service keep running without an active login
// session. Only this call elevates when unprivileged; the per-user systemctl
// calls never do.
func (a *Activator) enableLinger(sum *report.Summary) {
	username, err := a.currentUser()
	if err != nil {
		sum.Warn(fmt.Sprintf(messages.ServiceResolveUserFmt, err), "")
		return
	}
	cmd := a.broker.Command(lingerDir, "loginctl", "enable-linger", username)
	if err := a.run(cmd); err != nil {
		sum.Warn(
			fmt.Sprintf(messages.ServiceLingerFailedFmt, username, err),
			fmt.Sprintf(messages.ServiceLingerRemedyFmt, username),
		)
	}
}

// systemctl builds a systemctl command for the profile's namespace. Per-user
// invocations must run as the invoking user, so they never go through the
// broker.
func (a *Activator) systemctl(prof scope.Profile, args ...string) *exec.Cmd {
	full := append([]string{prof.SystemctlArg}, args...)
	if prof.Scope == config.ScopeSystem {
		return a.broker.Command(prof.UnitDir, "systemctl", full...)
	}
	return exec.Command("systemctl", full...)
}

func (a *Activator) run(cmd *exec.Cmd) error {
	output, err := a.runCommand(cmd)
	if err != nil {
		return fmt.Errorf("%s: %v (output: %s)",
			strings.Join(cmd.Args, " "), err, strings.TrimSpace(string(output)))
	}
	return nil
}
