// Package tool checks for and installs external command-line tools.
package tool

import (
	"context"

	"github.com/conn-castle/wp-proxy/internal/runner"
)

// VersionArg is the argument used to ask a tool for its version.
const VersionArg = "--version"

// Probe reports whether name runs and exits 0 when asked for its version.
// Start failures count as "not installed"; output goes wherever r sends it.
func Probe(ctx context.Context, r runner.Runner, name string) bool {
	if r == nil || name == "" {
		return false
	}
	res, err := r.Run(ctx, runner.Command{Name: name, Args: []string{VersionArg}})
	if err != nil {
		return false
	}
	return res.Success()
}
