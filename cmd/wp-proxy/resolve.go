package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/conn-castle/wp-proxy/internal/messages"
	"github.com/conn-castle/wp-proxy/internal/wpconfig"
)

// searchStart returns --path when set, otherwise the working directory.
func (o *rootOptions) searchStart() (string, error) {
	if start := strings.TrimSpace(o.path); start != "" {
		return start, nil
	}
	cwd, err := getwd()
	if err != nil {
		return "", fmt.Errorf(messages.RootResolveCwdFmt, err)
	}
	return cwd, nil
}

// resolveConfigPath locates wp-config.php for the current invocation.
func (o *rootOptions) resolveConfigPath() (string, error) {
	start, err := o.searchStart()
	if err != nil {
		return "", err
	}
	path, err := wpconfig.Locate(wpconfig.RealSystem{}, start)
	if errors.Is(err, wpconfig.ErrConfigNotFound) {
		return "", errors.New(messages.RootMissingWPConfig)
	}
	return path, err
}
