package settings

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/conn-castle/wp-proxy/internal/messages"
)

const (
	// EnvPath overrides the settings file location.
	EnvPath = "WP_PROXY_SETTINGS"
	// DirName is the per-user settings directory under the home directory.
	DirName = ".wp-proxy"
	// FileName is the settings file name.
	FileName = "config.toml"
)

var homeDir = homedir.Dir

// DefaultPath returns ~/.wp-proxy/config.toml.
func DefaultPath() (string, error) {
	home, err := homeDir()
	if err != nil {
		return "", fmt.Errorf(messages.SettingsResolveHomeFmt, err)
	}
	return filepath.Join(home, DirName, FileName), nil
}

// ResolvePath picks the settings file from the flag value, then the environment, then
// the default location. explicit reports whether the caller named the file.
func ResolvePath(flagValue string, getenv func(string) string) (string, bool, error) {
	value := strings.TrimSpace(flagValue)
	if value == "" && getenv != nil {
		value = strings.TrimSpace(getenv(EnvPath))
	}
	if value == "" {
		path, err := DefaultPath()
		return path, false, err
	}
	expanded, err := homedir.Expand(value)
	if err != nil {
		return "", true, fmt.Errorf(messages.SettingsExpandPathFmt, value, err)
	}
	return expanded, true, nil
}
