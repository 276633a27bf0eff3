package udev

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/arctis-tools/chatmixctl/internal/devices"
	"github.com/arctis-tools/chatmixctl/internal/messages"
	"github.com/arctis-tools/chatmixctl/internal/report"
)

// CommandBuilder selects a direct or elevated executor per call site.
// Satisfied by *privilege.Broker.
type CommandBuilder interface {
	CanWrite(targetDir string) bool
	Command(targetDir string, name string, args ...string) *exec.Cmd
}

// Provisioner writes the rule file and drives udevadm.
type Provisioner struct {
	broker     CommandBuilder
	rulesPath  string
	runCommand func(cmd *exec.Cmd) ([]byte, error)
}

// New returns a Provisioner targeting the fixed system rule path.
func New(broker CommandBuilder) *Provisioner {
	return &Provisioner{
		broker:    broker,
		rulesPath: RulesPath,
		runCommand: func(cmd *exec.Cmd) ([]byte, error) {
			return cmd.CombinedOutput()
		},
	}
}

// Install writes the rendered rule file (overwriting any prior content),
// reloads the device manager's rule database, and triggers re-evaluation of
// already-attached matching devices so a headset connected before
// installation gains permissions without a replug.
//
// Everything here is advisory: failures become warnings on sum and never
// abort the run. A write failure skips the reload and triggers, since they
// would apply stale rules.
func (p *Provisioner) Install(sum *report.Summary) {
	if !p.writeRules(sum) {
		return
	}
	sum.RulesPath = p.rulesPath
	p.reload(sum)
	p.trigger(sum)
}

func (p *Provisioner) writeRules(sum *report.Summary) bool {
	content := RenderRules()
	tmp, err := os.CreateTemp("", filepath.Base(p.rulesPath)+".*")
	if err != nil {
		sum.Warn(fmt.Sprintf(messages.UdevWriteRulesFmt, p.rulesPath, err), messages.UdevWriteRemedy)
		return false
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()
	if _, err := tmp.WriteString(content); err != nil {
		_ = tmp.Close()
		sum.Warn(fmt.Sprintf(messages.UdevWriteRulesFmt, p.rulesPath, err), messages.UdevWriteRemedy)
		return false
	}
	if err := tmp.Close(); err != nil {
		sum.Warn(fmt.Sprintf(messages.UdevWriteRulesFmt, p.rulesPath, err), messages.UdevWriteRemedy)
		return false
	}

	dir := filepath.Dir(p.rulesPath)
	cmd := p.broker.Command(dir, "install", "-m", "0644", tmpName, p.rulesPath)
	if err := p.run(cmd); err != nil {
		sum.Warn(fmt.Sprintf(messages.UdevWriteRulesFmt, p.rulesPath, err), messages.UdevWriteRemedy)
		return false
	}
	return true
}

func (p *Provisioner) reload(sum *report.Summary) {
	dir := filepath.Dir(p.rulesPath)
	cmd := p.broker.Command(dir, "udevadm", "control", "--reload-rules")
	if err := p.run(cmd); err != nil {
		sum.Warn(fmt.Sprintf(messages.UdevReloadFailedFmt, err), messages.UdevReloadRemedy)
	}
}

// trigger asks udevadm to re-evaluate attached devices, once per supported
// product id. Each call is best-effort: a failure is reported and the loop
// continues.
func (p *Provisioner) trigger(sum *report.Summary) {
	dir := filepath.Dir(p.rulesPath)
	for _, dev := range devices.Supported() {
		cmd := p.broker.Command(dir, "udevadm", "trigger",
			"--subsystem-match=usb",
			"--attr-match=idVendor="+devices.VendorID,
			"--attr-match=idProduct="+dev.ProductID)
		if err := p.run(cmd); err != nil {
			sum.Warn(
				fmt.Sprintf(messages.UdevTriggerFmt, dev.ProductID, err),
				fmt.Sprintf(messages.UdevTriggerRemedyFmt, "usb", devices.VendorID, dev.ProductID),
			)
		}
	}
}

func (p *Provisioner) run(cmd *exec.Cmd) error {
	output, err := p.runCommand(cmd)
	if err != nil {
		return fmt.Errorf("%s: %v (output: %s)",
			strings.Join(cmd.Args, " "), err, strings.TrimSpace(string(output)))
	}
	return nil
}
