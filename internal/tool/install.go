package tool

import (
	"context"
	"errors"
	"strings"

	"github.com/conn-castle/wp-proxy/internal/messages"
	"github.com/conn-castle/wp-proxy/internal/runner"
)

// State is a step of the install sequence.
type State int

const (
	// StateCheckingPackageManager verifies the package manager runs.
	StateCheckingPackageManager State = iota + 1
	// StateInstalling runs the package manager install command.
	StateInstalling
	// StateDone is reached after a successful install.
	StateDone
)

func (s State) String() string {
	switch s {
	case StateCheckingPackageManager:
		return "checking-package-manager"
	case StateInstalling:
		return "installing"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// Options describes what to install and how.
type Options struct {
	// Tool is the executable probed before installing.
	Tool string
	// PackageManager is the installer executable, e.g. pip.
	PackageManager string
	// PackageManagerVersionArg is passed to PackageManager to check it runs.
	PackageManagerVersionArg string
	// Package is the package name handed to the package manager.
	Package string
	// ElevateCommand prefixes the install command when Elevate is set.
	ElevateCommand string
	Elevate        bool
	// Upgrade installs even when Tool is already present.
	Upgrade bool
	// DocsURL points at package manager install instructions.
	DocsURL string
	// OnState is called on entry to each state.
	OnState func(State)
}

// InstallResult describes a successful Install.
type InstallResult struct {
	// AlreadyInstalled is set when the probe found Tool and nothing was run.
	AlreadyInstalled bool
	// Command is the install command that ran.
	Command runner.Command
}

// Install makes sure opts.Tool is available, installing opts.Package when it is not.
// Each failure is returned as is; nothing is retried.
func Install(ctx context.Context, r runner.Runner, opts Options) (InstallResult, error) {
	if err := opts.validate(r); err != nil {
		return InstallResult{}, err
	}
	if !opts.Upgrade && Probe(ctx, r, opts.Tool) {
		return InstallResult{AlreadyInstalled: true}, nil
	}

	opts.enter(StateCheckingPackageManager)
	check := runner.Command{Name: opts.PackageManager, Args: []string{opts.versionArg()}}
	res, err := r.Run(ctx, check)
	if err != nil || !res.Success() {
		return InstallResult{}, &PackageManagerMissingError{
			PackageManager: opts.PackageManager,
			DocsURL:        opts.DocsURL,
			Err:            err,
		}
	}

	opts.enter(StateInstalling)
	install := InstallCommand(opts)
	res, err = r.Run(ctx, install)
	if err != nil {
		return InstallResult{}, &InstallFailedError{Command: install, ExitCode: res.ExitCode, Err: err}
	}
	if !res.Success() {
		return InstallResult{}, &InstallFailedError{Command: install, ExitCode: res.ExitCode}
	}

	opts.enter(StateDone)
	return InstallResult{Command: install}, nil
}

// InstallCommand returns the command Install runs in StateInstalling.
func InstallCommand(opts Options) runner.Command {
	args := []string{"install", opts.Package, "--upgrade"}
	if opts.Elevate {
		return runner.Command{Name: opts.ElevateCommand, Args: append([]string{opts.PackageManager}, args...)}
	}
	return runner.Command{Name: opts.PackageManager, Args: args}
}

func (o Options) validate(r runner.Runner) error {
	switch {
	case r == nil:
		return errors.New(messages.ToolRunnerRequired)
	case strings.TrimSpace(o.Tool) == "":
		return errors.New(messages.ToolNameRequired)
	case strings.TrimSpace(o.PackageManager) == "":
		return errors.New(messages.ToolPackageManagerRequired)
	case strings.TrimSpace(o.Package) == "":
		return errors.New(messages.ToolPackageRequired)
	case o.Elevate && strings.TrimSpace(o.ElevateCommand) == "":
		return errors.New(messages.ToolElevateCommandRequired)
	}
	return nil
}

func (o Options) versionArg() string {
	if o.PackageManagerVersionArg == "" {
		return "-V"
	}
	return o.PackageManagerVersionArg
}

func (o Options) enter(s State) {
	if o.OnState != nil {
		o.OnState(s)
	}
}
