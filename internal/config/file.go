package config

import (
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/arctis-tools/chatmixctl/internal/messages"
)

// fileDefaults mirrors the optional defaults file at
// ~/.config/chatmixctl/config.toml. Every field is optional; set fields seed
// the configuration before flags are applied.
type fileDefaults struct {
	Binary        string `toml:"binary"`
	Mode          string `toml:"mode"`
	Udev          *bool  `toml:"udev"`
	EnableService *bool  `toml:"enable_service"`
	EnableLinger  *bool  `toml:"enable_linger"`
}

var homedirFunc = homedir.Dir

// DefaultsFilePath returns the path of the optional defaults file.
func DefaultsFilePath() (string, error) {
	home, err := homedirFunc()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "chatmixctl", "config.toml"), nil
}

// loadDefaultsFile reads the defaults file at path. A missing file yields an
// empty defaults struct; a malformed file is misuse.
func loadDefaultsFile(path string) (fileDefaults, error) {
	var defaults fileDefaults
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaults, nil
		}
		return defaults, misusef(messages.ConfigDefaultsFileFmt, path, err)
	}
	if err := toml.Unmarshal(data, &defaults); err != nil {
		return defaults, misusef(messages.ConfigDefaultsFileFmt, path, err)
	}
	return defaults, nil
}
