// Package privilege decides, per call, whether an operation on a target
// namespace runs directly or through sudo. There is no cached "already
// elevated" state: every privileged call site asks again.
package privilege

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// Broker selects a direct or elevated executor for each privileged call.
type Broker struct {
	geteuid func() int
	access  func(path string) error
}

// NewBroker returns a Broker backed by the real process credentials.
func NewBroker() *Broker {
	return &Broker{
		geteuid: os.Geteuid,
		access:  func(path string) error { return unix.Access(path, unix.W_OK) },
	}
}

// NewBrokerForTest returns a Broker with injected credential checks.
func NewBrokerForTest(geteuid func() int, access func(path string) error) *Broker {
	return &Broker{geteuid: geteuid, access: access}
}

// CanWrite reports whether the current process can write inside targetDir
// without elevation. When targetDir does not exist yet, the nearest existing
// ancestor decides: creating the directory needs write access there.
func (b *Broker) CanWrite(targetDir string) bool {
	if b.geteuid() == 0 {
		return true
	}
	dir := targetDir
	for {
		err := b.access(dir)
		if err == nil {
			return true
		}
		if !errors.Is(err, unix.ENOENT) {
			return false
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return false
		}
		dir = parent
	}
}

// Command builds the command for name/args against targetDir: the identical
// invocation, wrapped with sudo only when the process cannot write the target
// namespace directly.
func (b *Broker) Command(targetDir string, name string, args ...string) *exec.Cmd {
	if b.CanWrite(targetDir) {
		return exec.Command(name, args...)
	}
	return exec.Command("sudo", append([]string{name}, args...)...)
}
