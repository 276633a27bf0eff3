// Package scope maps a deployment scope to its filesystem and service-manager
// profile. The mapping is a static two-entry table; everything else derives
// paths from the selected profile.
package scope

import (
	"fmt"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"

	"github.com/arctis-tools/chatmixctl/internal/config"
	"github.com/arctis-tools/chatmixctl/internal/messages"
)

// Artifact names shared by both scopes.
const (
	// BinaryName is the file name the controller binary is installed under.
	BinaryName = "arctis-chatmix"
	// UnitName is the systemd unit managed by the installer.
	UnitName = "arctis-chatmix.service"
)

// Profile is the read-only filesystem and service-manager profile of a scope.
type Profile struct {
	Scope config.Scope
	// BinDir is where the controller binary is installed.
	BinDir string
	// UnitDir is where the systemd unit file is written.
	UnitDir string
	// SystemctlArg selects the systemd namespace: --user or --system.
	SystemctlArg string
	// Target is the unit's activation target.
	Target string
}

var homedirFunc = homedir.Dir

// For returns the profile of the given scope. The scope is validated by the
// parameter resolver before this point; an unknown value is a programming
// error. User-scope paths require a resolvable home directory.
func For(s config.Scope) (Profile, error) {
	switch s {
	case config.ScopeUser:
		home, err := homedirFunc()
		if err != nil {
			return Profile{}, fmt.Errorf(messages.ScopeResolveHomeFmt, err)
		}
		return Profile{
			Scope:        config.ScopeUser,
			BinDir:       filepath.Join(home, ".local", "bin"),
			UnitDir:      filepath.Join(home, ".config", "systemd", "user"),
			SystemctlArg: "--user",
			Target:       "default.target",
		}, nil
	case config.ScopeSystem:
		return Profile{
			Scope:        config.ScopeSystem,
			BinDir:       "/usr/local/bin",
			UnitDir:      "/etc/systemd/system",
			SystemctlArg: "--system",
			Target:       "multi-user.target",
		}, nil
	}
	return Profile{}, fmt.Errorf(messages.ScopeUnknownFmt, s)
}

// BinaryPath returns the absolute path the controller binary is installed at.
func (p Profile) BinaryPath() string {
	return filepath.Join(p.BinDir, BinaryName)
}

// UnitPath returns the absolute path of the managed unit file.
func (p Profile) UnitPath() string {
	return filepath.Join(p.UnitDir, UnitName)
}
