// Package settings loads the wp-proxy settings file.
package settings

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/wp-proxy/internal/messages"
)

// Settings is the decoded settings file.
type Settings struct {
	Proxy   ProxySettings   `toml:"proxy"`
	Install InstallSettings `toml:"install"`
	Host    HostSettings    `toml:"host"`
}

// ProxySettings describes the proxy tool and how to start it.
type ProxySettings struct {
	Command  string `toml:"command"`
	Port     string `toml:"port"`
	PortFlag string `toml:"port_flag"`
}

// InstallSettings describes how the proxy tool is installed.
type InstallSettings struct {
	PackageManager string `toml:"package_manager"`
	VersionArg     string `toml:"version_arg"`
	Package        string `toml:"package"`
	ElevateCommand string `toml:"elevate_command"`
	DocsURL        string `toml:"docs_url"`
}

// HostSettings describes the WordPress admin tool.
type HostSettings struct {
	Command string `toml:"command"`
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		Proxy: ProxySettings{
			Command:  "mitmproxy",
			Port:     "9090",
			PortFlag: "-p",
		},
		Install: InstallSettings{
			PackageManager: "pip",
			VersionArg:     "-V",
			Package:        "mitmproxy",
			ElevateCommand: "sudo",
			DocsURL:        "https://pip.pypa.io/en/stable/installation/",
		},
		Host: HostSettings{
			Command: "wp",
		},
	}
}

// Parse decodes data over the defaults and validates the result.
// Keys missing from data keep their default values; unknown keys are rejected.
func Parse(data []byte, source string) (Settings, error) {
	cfg := Defaults()
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Settings{}, fmt.Errorf(messages.SettingsUnknownKeysFmt, source, err)
		}
		return Settings{}, fmt.Errorf(messages.SettingsInvalidFmt, source, err)
	}
	if err := cfg.Validate(source); err != nil {
		return Settings{}, err
	}
	return cfg, nil
}

// Load reads settings from path. When explicit is false a missing file yields Defaults.
func Load(path string, explicit bool) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Defaults(), nil
		}
		return Settings{}, fmt.Errorf(messages.SettingsReadFailedFmt, path, err)
	}
	return Parse(data, path)
}

// Validate checks that every command is a bare program name and the port is usable.
func (s Settings) Validate(source string) error {
	commands := []struct {
		field string
		value string
	}{
		{"proxy.command", s.Proxy.Command},
		{"proxy.port_flag", s.Proxy.PortFlag},
		{"install.package_manager", s.Install.PackageManager},
		{"install.version_arg", s.Install.VersionArg},
		{"install.package", s.Install.Package},
		{"install.elevate_command", s.Install.ElevateCommand},
		{"host.command", s.Host.Command},
	}
	for _, c := range commands {
		if strings.TrimSpace(c.value) == "" {
			return fmt.Errorf(messages.SettingsFieldRequiredFmt, source, c.field)
		}
		if strings.ContainsAny(c.value, shellMetacharacters) {
			return fmt.Errorf(messages.SettingsFieldUnsafeFmt, source, c.field, c.value)
		}
	}
	if _, err := ParsePort(s.Proxy.Port); err != nil {
		return fmt.Errorf(messages.SettingsPortInvalidFmt, source, s.Proxy.Port)
	}
	return nil
}

const shellMetacharacters = " \t\r\n;&|$<>`(){}*?!~'\"\\"

// ErrInvalidPort is returned by ParsePort for values outside 1-65535.
var ErrInvalidPort = errors.New(messages.SettingsPortRange)

// ParsePort parses a TCP port in the range 1-65535.
func ParsePort(value string) (int, error) {
	port, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || port < 1 || port > 65535 {
		return 0, ErrInvalidPort
	}
	return port, nil
}
