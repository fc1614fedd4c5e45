package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/wp-proxy/internal/runner"
	"github.com/conn-castle/wp-proxy/internal/tool"
)

func TestInstallRunsPip(t *testing.T) {
	env := newCLIEnv(t)
	env.rec.Exit("mitmproxy", 1)

	stdout, _, err := env.run("install")
	require.NoError(t, err)
	assert.Equal(t, "Installing mitmproxy...\nSuccess: mitmproxy successfully installed.\n", stdout)
	assert.Equal(t, []runner.Command{
		{Name: "mitmproxy", Args: []string{"--version"}},
		{Name: "pip", Args: []string{"-V"}},
		{Name: "pip", Args: []string{"install", "mitmproxy", "--upgrade"}},
	}, env.rec.Calls())
}

func TestInstallAlreadyInstalled(t *testing.T) {
	env := newCLIEnv(t)

	stdout, _, err := env.run("install")
	require.NoError(t, err)
	assert.Equal(t, "Success: mitmproxy is already installed.\n", stdout)
	assert.Empty(t, env.rec.CallsTo("pip"))
}

func TestInstallSudo(t *testing.T) {
	env := newCLIEnv(t)
	env.rec.Exit("mitmproxy", 1)

	_, _, err := env.run("install", "--sudo")
	require.NoError(t, err)
	assert.Equal(t, []runner.Command{{Name: "sudo", Args: []string{"pip", "install", "mitmproxy", "--upgrade"}}}, env.rec.CallsTo("sudo"))
}

func TestUpgradeAliasSkipsProbe(t *testing.T) {
	env := newCLIEnv(t)

	stdout, _, err := env.run("upgrade")
	require.NoError(t, err)
	assert.Empty(t, env.rec.CallsTo("mitmproxy"))
	assert.Len(t, env.rec.CallsTo("pip"), 2)
	assert.Contains(t, stdout, "Success: mitmproxy successfully installed.")
}

func TestInstallPackageManagerMissing(t *testing.T) {
	env := newCLIEnv(t)
	env.rec.Exit("mitmproxy", 1).Fail("pip", errors.New("executable file not found"))

	_, _, err := env.run("install")
	require.Error(t, err)
	assert.True(t, tool.IsPackageManagerMissing(err))
	assert.Contains(t, err.Error(), "https://pip.pypa.io/en/stable/installation/")
}

func TestInstallFailure(t *testing.T) {
	env := newCLIEnv(t)
	env.rec.Exit("mitmproxy", 1).Exit("pip", 0).Exit("pip", 1)

	stdout, _, err := env.run("install")
	require.Error(t, err)
	assert.True(t, tool.IsInstallFailed(err))
	assert.Equal(t, "Installing mitmproxy...\n", stdout)
}

func TestInstallDebugShowsSteps(t *testing.T) {
	env := newCLIEnv(t)
	env.rec.Exit("mitmproxy", 1)

	_, stderr, err := env.run("install", "--debug")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Debug: Checking for pip...")
	assert.Contains(t, stderr, "Debug: Running pip install mitmproxy --upgrade")
}

func TestIsInstalledYes(t *testing.T) {
	env := newCLIEnv(t)

	stdout, stderr, err := env.run("is-installed")
	require.NoError(t, err)
	assert.Equal(t, "Success: mitmproxy is installed.\n", stdout)
	assert.Empty(t, stderr)
	assert.Len(t, env.rec.Calls(), 1)
}

func TestIsInstalledNoInstalls(t *testing.T) {
	env := newCLIEnv(t)
	env.rec.Exit("mitmproxy", 1)

	stdout, stderr, err := env.run("is-installed")
	require.NoError(t, err)
	assert.Equal(t, "Error: mitmproxy is NOT installed.\n", stderr)
	assert.Equal(t, "Installing mitmproxy...\nSuccess: mitmproxy successfully installed.\n", stdout)
	assert.Len(t, env.rec.CallsTo("mitmproxy"), 1, "probe runs once")
	assert.Empty(t, env.rec.CallsTo("sudo"))
}

func TestIsInstalledNoInstallFails(t *testing.T) {
	env := newCLIEnv(t)
	env.rec.Exit("mitmproxy", 1).Exit("pip", 1)

	_, stderr, err := env.run("is-installed")
	require.Error(t, err)
	assert.Contains(t, stderr, "mitmproxy is NOT installed.")
	assert.True(t, tool.IsPackageManagerMissing(err))
}

func TestInstallUsesSettings(t *testing.T) {
	env := newCLIEnv(t)
	path := writeSettings(t, "[proxy]\ncommand = \"mitmdump\"\n\n[install]\npackage_manager = \"pipx\"\nversion_arg = \"--version\"\n")
	env.rec.Exit("mitmdump", 1)

	_, _, err := env.run("install", "--settings", path)
	require.NoError(t, err)
	assert.Equal(t, []runner.Command{
		{Name: "mitmdump", Args: []string{"--version"}},
		{Name: "pipx", Args: []string{"--version"}},
		{Name: "pipx", Args: []string{"install", "mitmproxy", "--upgrade"}},
	}, env.rec.Calls())
}

func TestInstallInvalidSettings(t *testing.T) {
	env := newCLIEnv(t)
	path := writeSettings(t, "[install]\npackage_manager = \"pip && curl\"\n")

	_, _, err := env.run("install", "--settings", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "install.package_manager")
	assert.Empty(t, env.rec.Calls())
}
