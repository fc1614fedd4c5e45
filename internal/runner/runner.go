// Package runner launches external programs in the foreground.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/conn-castle/wp-proxy/internal/messages"
)

// Command names a program and its arguments. Arguments are passed as a list and
// never interpreted by a shell.
type Command struct {
	Name string
	Args []string
}

// String renders the command for messages.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Result is the outcome of a finished process.
type Result struct {
	// ExitCode is the process exit status, or -1 when it never ran.
	ExitCode int
}

// Success reports whether the process exited with status 0.
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// Runner executes commands and waits for them to finish.
type Runner interface {
	// Run blocks until the process exits. A non-zero exit is reported through Result
	// with a nil error. The error is set only when the process could not start.
	Run(ctx context.Context, cmd Command) (Result, error)
}

// OSRunner runs commands as child processes with stdio passed through.
// Nil streams default to the current process streams; a nil Env inherits the environment.
type OSRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Env    []string
}

// NewOSRunner returns an OSRunner attached to the given streams.
func NewOSRunner(stdin io.Reader, stdout io.Writer, stderr io.Writer) *OSRunner {
	return &OSRunner{Stdin: stdin, Stdout: stdout, Stderr: stderr}
}

// Run starts cmd and waits for it without a timeout.
func (r *OSRunner) Run(ctx context.Context, cmd Command) (Result, error) {
	if strings.TrimSpace(cmd.Name) == "" {
		return Result{ExitCode: -1}, errors.New(messages.RunnerCommandRequired)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	proc := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	proc.Stdin = r.Stdin
	proc.Stdout = r.Stdout
	proc.Stderr = r.Stderr
	if proc.Stdin == nil {
		proc.Stdin = os.Stdin
	}
	if proc.Stdout == nil {
		proc.Stdout = os.Stdout
	}
	if proc.Stderr == nil {
		proc.Stderr = os.Stderr
	}
	if r.Env != nil {
		proc.Env = r.Env
	}

	err := proc.Run()
	if err == nil {
		return Result{ExitCode: 0}, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code <= 0 {
			// Killed by a signal.
			code = 1
		}
		return Result{ExitCode: code}, nil
	}
	return Result{ExitCode: -1}, fmt.Errorf(messages.RunnerStartFailedFmt, cmd.Name, err)
}
