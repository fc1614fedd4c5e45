package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"

	"github.com/conn-castle/wp-proxy/internal/prompt"
	"github.com/conn-castle/wp-proxy/internal/runner"
	"github.com/conn-castle/wp-proxy/internal/runner/runnertest"
)

const sampleWPConfig = `<?php
define( 'DB_NAME', 'wordpress' );

/* That's all, stop editing! Happy publishing. */

require_once ABSPATH . 'wp-settings.php';
`

// cliEnv isolates a command run from the host: a fake runner, a temp settings file,
// a temp working directory, and no terminal.
type cliEnv struct {
	dir string
	rec *runnertest.Recorder
}

func newCLIEnv(t *testing.T) *cliEnv {
	t.Helper()
	env := &cliEnv{dir: t.TempDir(), rec: runnertest.New()}

	origNoColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = origNoColor })

	settingsPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(settingsPath, nil, 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}

	origGetwd, origGetenv, origTerminal, origRunner := getwd, getenv, isTerminal, newRunner
	getwd = func() (string, error) { return env.dir, nil }
	getenv = func(key string) string {
		if key == "WP_PROXY_SETTINGS" {
			return settingsPath
		}
		return ""
	}
	isTerminal = func() bool { return false }
	newRunner = func(io.Reader, io.Writer, io.Writer) runner.Runner { return env.rec }
	t.Cleanup(func() {
		getwd, getenv, isTerminal, newRunner = origGetwd, origGetenv, origTerminal, origRunner
	})
	return env
}

func (e *cliEnv) writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(e.dir, "wp-config.php")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write wp-config.php: %v", err)
	}
	return path
}

func (e *cliEnv) run(args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	err := execute(append([]string{"wp-proxy"}, args...), &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

type fakeConfirmer struct {
	answer bool
	err    error
	titles []string
}

func (f *fakeConfirmer) Confirm(title string, _ bool) (bool, error) {
	f.titles = append(f.titles, title)
	return f.answer, f.err
}

func stubConfirmer(t *testing.T, c *fakeConfirmer) {
	t.Helper()
	orig := newConfirmer
	newConfirmer = func() prompt.Confirmer { return c }
	t.Cleanup(func() { newConfirmer = orig })
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	return path
}
