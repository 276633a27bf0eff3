// Package provision installs the controller binary and the service unit
// descriptor for the selected scope. Every write is an overwrite; re-running
// with the same configuration reproduces the same bytes.
package provision

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/arctis-tools/chatmixctl/internal/config"
	"github.com/arctis-tools/chatmixctl/internal/messages"
	"github.com/arctis-tools/chatmixctl/internal/scope"
)

// CommandBuilder selects a direct or elevated executor per call site.
// Satisfied by *privilege.Broker.
type CommandBuilder interface {
	CanWrite(targetDir string) bool
	Command(targetDir string, name string, args ...string) *exec.Cmd
}

// Provisioner installs the binary and the unit descriptor.
type Provisioner struct {
	sys        System
	broker     CommandBuilder
	runCommand func(cmd *exec.Cmd) ([]byte, error)
}

// New returns a Provisioner using sys for direct filesystem access and broker
// for operations the process cannot perform itself.
func New(sys System, broker CommandBuilder) *Provisioner {
	return &Provisioner{
		sys:    sys,
		broker: broker,
		runCommand: func(cmd *exec.Cmd) ([]byte, error) {
			return cmd.CombinedOutput()
		},
	}
}

// writesDirect reports whether artifact writes into dir run without the
// broker. User-scope artifact writes never elevate; system scope elevates
// only when the process cannot write the target itself.
func (p *Provisioner) writesDirect(prof scope.Profile, dir string) bool {
	return prof.Scope != config.ScopeSystem || p.broker.CanWrite(dir)
}

// InstallBinary copies the resolved controller binary into the scope's bin
// directory, creating the directory if absent and preserving the source's
// permission bits. Failures are fatal to the run.
func (p *Provisioner) InstallBinary(src string, prof scope.Profile) (string, error) {
	direct := p.writesDirect(prof, prof.BinDir)
	if err := p.ensureDir(prof.BinDir, direct); err != nil {
		return "", err
	}
	info, err := p.sys.Stat(src)
	if err != nil {
		return "", fmt.Errorf(messages.ProvisionReadBinaryFmt, src, err)
	}
	mode := info.Mode().Perm()
	dst := prof.BinaryPath()

	if direct {
		data, err := p.sys.ReadFile(src)
		if err != nil {
			return "", fmt.Errorf(messages.ProvisionReadBinaryFmt, src, err)
		}
		if err := p.sys.WriteFileAtomic(dst, data, mode); err != nil {
			return "", fmt.Errorf(messages.ProvisionCopyBinaryFmt, dst, err)
		}
		return dst, nil
	}

	cmd := p.broker.Command(prof.BinDir, "install", "-m", fmt.Sprintf("%04o", mode), src, dst)
	if err := p.run(cmd); err != nil {
		return "", fmt.Errorf(messages.ProvisionCopyBinaryFmt, dst, err)
	}
	return dst, nil
}

// InstallUnit renders the service unit for the profile and writes it to the
// scope's unit directory, unconditionally overwriting any existing file. No
// backup of a prior unit is kept; the supported repair path is re-running.
func (p *Provisioner) InstallUnit(prof scope.Profile) (string, error) {
	content, err := RenderUnit(prof)
	if err != nil {
		return "", err
	}
	direct := p.writesDirect(prof, prof.UnitDir)
	if err := p.ensureDir(prof.UnitDir, direct); err != nil {
		return "", err
	}
	dst := prof.UnitPath()

	if direct {
		if err := p.sys.WriteFileAtomic(dst, []byte(content), 0o644); err != nil {
			return "", fmt.Errorf(messages.ProvisionWriteUnitFmt, dst, err)
		}
		return dst, nil
	}

	tmp, err := stageTemp(scope.UnitName, content)
	if err != nil {
		return "", fmt.Errorf(messages.ProvisionTempFileFmt, dst, err)
	}
	defer func() {
		_ = os.Remove(tmp)
	}()
	cmd := p.broker.Command(prof.UnitDir, "install", "-m", "0644", tmp, dst)
	if err := p.run(cmd); err != nil {
		return "", fmt.Errorf(messages.ProvisionWriteUnitFmt, dst, err)
	}
	return dst, nil
}

// ensureDir creates dir if absent. direct selects the in-process MkdirAll
// over the brokered mkdir.
func (p *Provisioner) ensureDir(dir string, direct bool) error {
	if direct {
		if err := p.sys.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf(messages.ProvisionCreateDirFmt, dir, err)
		}
		return nil
	}
	cmd := p.broker.Command(dir, "mkdir", "-p", dir)
	if err := p.run(cmd); err != nil {
		return fmt.Errorf(messages.ProvisionCreateDirFmt, dir, err)
	}
	return nil
}

// run executes cmd and folds a non-zero exit together with its output.
func (p *Provisioner) run(cmd *exec.Cmd) error {
	output, err := p.runCommand(cmd)
	if err != nil {
		return fmt.Errorf(messages.ProvisionElevatedCmdFmt,
			strings.Join(cmd.Args, " "), err, strings.TrimSpace(string(output)))
	}
	return nil
}

// stageTemp writes content to a temporary file readable by an elevated copy.
func stageTemp(name string, content string) (string, error) {
	tmp, err := os.CreateTemp("", name+".*")
	if err != nil {
		return "", err
	}
	if _, err := tmp.WriteString(content); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return "", err
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return "", err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}
