package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/wp-proxy/internal/snippet"
	"github.com/conn-castle/wp-proxy/internal/wpconfig"
)

func TestConfigDumpPrintsSnippet(t *testing.T) {
	env := newCLIEnv(t)

	stdout, stderr, err := env.run("config", "--dump")
	require.NoError(t, err)
	assert.Equal(t, snippet.Build().Render(), stdout)
	assert.Empty(t, stderr)
	assert.Empty(t, env.rec.Calls())
}

func TestConfigDumpDoesNotNeedWordPress(t *testing.T) {
	env := newCLIEnv(t)
	_, _, err := env.run("config", "--dump")
	require.NoError(t, err)
	_, statErr := os.Stat(filepath.Join(env.dir, "wp-config.php"))
	assert.True(t, errors.Is(statErr, os.ErrNotExist))
}

func TestConfigPatchesWPConfig(t *testing.T) {
	env := newCLIEnv(t)
	path := env.writeConfig(t, sampleWPConfig)

	stdout, _, err := env.run("config")
	require.NoError(t, err)
	assert.Equal(t, "Success: Added proxy constants to wp-config.php.\n", stdout)

	content := readFile(t, path)
	assert.Equal(t, strings.Replace(sampleWPConfig, wpconfig.Anchor, snippet.Build().Render()+wpconfig.Anchor, 1), content)
}

func TestConfigFromSubdirectory(t *testing.T) {
	env := newCLIEnv(t)
	path := env.writeConfig(t, sampleWPConfig)
	sub := filepath.Join(env.dir, "wp-content", "themes")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	_, _, err := env.run("config", "--path", sub)
	require.NoError(t, err)
	assert.Contains(t, readFile(t, path), "define( 'WP_PROXY', true );")
}

func TestConfigMissingAnchorLeavesFile(t *testing.T) {
	env := newCLIEnv(t)
	content := "<?php\ndefine( 'DB_NAME', 'wordpress' );\n"
	path := env.writeConfig(t, content)

	_, _, err := env.run("config")
	require.Error(t, err)
	assert.True(t, errors.Is(err, wpconfig.ErrAnchorNotFound))
	assert.Equal(t, content, readFile(t, path))
}

func TestConfigOutsideWordPress(t *testing.T) {
	env := newCLIEnv(t)
	require.NoError(t, os.WriteFile(filepath.Join(env.dir, "wp-settings.php"), []byte("<?php\n"), 0o644))

	_, _, err := env.run("config")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wp-config.php not found")
}

func TestConfigDiffDoesNotWrite(t *testing.T) {
	env := newCLIEnv(t)
	path := env.writeConfig(t, sampleWPConfig)

	stdout, _, err := env.run("config", "--diff")
	require.NoError(t, err)
	assert.Contains(t, stdout, "+define( 'WP_PROXY', true );")
	assert.Equal(t, sampleWPConfig, readFile(t, path))
}

func TestConfigDumpAndDiffAreExclusive(t *testing.T) {
	env := newCLIEnv(t)
	_, _, err := env.run("config", "--dump", "--diff")
	assert.Error(t, err)
}

func TestConfigAlreadyConfiguredWithoutTerminal(t *testing.T) {
	env := newCLIEnv(t)
	path := env.writeConfig(t, sampleWPConfig)
	_, _, err := env.run("config")
	require.NoError(t, err)
	once := readFile(t, path)

	_, _, err = env.run("config")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errAlreadyConfigured))
	assert.Equal(t, once, readFile(t, path))
}

func TestConfigAlreadyConfiguredForce(t *testing.T) {
	env := newCLIEnv(t)
	path := env.writeConfig(t, sampleWPConfig)
	_, _, err := env.run("config")
	require.NoError(t, err)

	_, _, err = env.run("config", "--force")
	require.NoError(t, err)
	content := readFile(t, path)
	assert.Equal(t, 2, strings.Count(content, "define( 'WP_PROXY', true );"))
	assert.Equal(t, 1, strings.Count(content, wpconfig.Anchor))
}

func TestConfigAlreadyConfiguredPrompt(t *testing.T) {
	tests := []struct {
		name        string
		answer      bool
		wantDefines int
		wantOut     string
	}{
		{name: "declined", answer: false, wantDefines: 1, wantOut: "Left wp-config.php unchanged.\n"},
		{name: "accepted", answer: true, wantDefines: 2, wantOut: "Success: Added proxy constants to wp-config.php.\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newCLIEnv(t)
			path := env.writeConfig(t, sampleWPConfig)
			_, _, err := env.run("config")
			require.NoError(t, err)

			isTerminal = func() bool { return true }
			confirmer := &fakeConfirmer{answer: tt.answer}
			stubConfirmer(t, confirmer)

			stdout, _, err := env.run("config")
			require.NoError(t, err)
			assert.Equal(t, tt.wantOut, stdout)
			require.Len(t, confirmer.titles, 1)
			assert.Contains(t, confirmer.titles[0], "wp-config.php already defines")
			assert.Equal(t, tt.wantDefines, strings.Count(readFile(t, path), "define( 'WP_PROXY', true );"))
		})
	}
}

func TestConfigPromptError(t *testing.T) {
	env := newCLIEnv(t)
	env.writeConfig(t, sampleWPConfig)
	_, _, err := env.run("config")
	require.NoError(t, err)

	isTerminal = func() bool { return true }
	boom := errors.New("tty lost")
	stubConfirmer(t, &fakeConfirmer{err: boom})

	_, _, err = env.run("config")
	assert.ErrorIs(t, err, boom)
}

func TestConfigGetwdError(t *testing.T) {
	env := newCLIEnv(t)
	getwd = func() (string, error) { return "", errors.New("getwd failed") }

	_, _, err := env.run("config")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "getwd failed")
	assert.Empty(t, env.rec.Calls())
}
