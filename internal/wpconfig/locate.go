package wpconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/conn-castle/wp-proxy/internal/messages"
)

// ErrConfigNotFound is returned when no wp-config.php can be located.
var ErrConfigNotFound = errors.New(messages.WPConfigNotFound)

// Locate searches start and its parents for wp-config.php.
// A WordPress root (a directory holding wp-settings.php) without its own
// wp-config.php may keep it one level up, as long as that parent is not a
// WordPress root itself. The search never climbs past a WordPress root.
func Locate(sys System, start string) (string, error) {
	if sys == nil {
		return "", errors.New(messages.WPConfigSystemRequired)
	}
	if strings.TrimSpace(start) == "" {
		return "", errors.New(messages.WPConfigStartRequired)
	}
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(dir, messages.WPConfigFileName)
		found, err := isFile(sys, candidate)
		if err != nil {
			return "", err
		}
		if found {
			return candidate, nil
		}

		isRoot, err := isFile(sys, filepath.Join(dir, messages.WPSettingsFileName))
		if err != nil {
			return "", err
		}
		parent := filepath.Dir(dir)
		if isRoot {
			if parent == dir {
				return "", ErrConfigNotFound
			}
			return locateAbove(sys, parent)
		}
		if parent == dir {
			return "", ErrConfigNotFound
		}
		dir = parent
	}
}

func locateAbove(sys System, dir string) (string, error) {
	nested, err := isFile(sys, filepath.Join(dir, messages.WPSettingsFileName))
	if err != nil {
		return "", err
	}
	if nested {
		return "", ErrConfigNotFound
	}
	candidate := filepath.Join(dir, messages.WPConfigFileName)
	found, err := isFile(sys, candidate)
	if err != nil {
		return "", err
	}
	if !found {
		return "", ErrConfigNotFound
	}
	return candidate, nil
}

// isFile reports whether path names a regular file. A directory in its place is an error.
func isFile(sys System, path string) (bool, error) {
	info, err := sys.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, &IOError{Op: messages.WPConfigStatOp, Path: path, Err: err}
	}
	if info.IsDir() {
		return false, &IOError{Op: messages.WPConfigStatOp, Path: path, Err: fmt.Errorf(messages.WPConfigNotAFileFmt, path)}
	}
	return true, nil
}
