// Package report prints prefixed, colored status lines for commands.
package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/conn-castle/wp-proxy/internal/messages"
)

var (
	successPrefix = color.New(color.FgGreen).SprintFunc()
	warningPrefix = color.New(color.FgYellow).SprintFunc()
	errorPrefix   = color.New(color.FgRed).SprintFunc()
	debugPrefix   = color.New(color.FgCyan).SprintFunc()
)

// Reporter writes status lines to an out/err pair.
// Success and Log go to out; Warning, Error, and Debugf go to err.
type Reporter struct {
	out   io.Writer
	err   io.Writer
	debug bool
}

// New returns a Reporter. Debug lines are printed only when debug is set.
func New(out io.Writer, err io.Writer, debug bool) *Reporter {
	return &Reporter{out: out, err: err, debug: debug}
}

// Success prints a "Success: " line.
func (r *Reporter) Success(msg string) {
	_, _ = fmt.Fprintln(r.out, successPrefix(messages.ReportSuccessPrefix)+msg)
}

// Successf formats and prints a "Success: " line.
func (r *Reporter) Successf(format string, args ...any) {
	r.Success(fmt.Sprintf(format, args...))
}

// Log prints a plain line.
func (r *Reporter) Log(msg string) {
	_, _ = fmt.Fprintln(r.out, msg)
}

// Logf formats and prints a plain line.
func (r *Reporter) Logf(format string, args ...any) {
	r.Log(fmt.Sprintf(format, args...))
}

// Warning prints a "Warning: " line.
func (r *Reporter) Warning(msg string) {
	_, _ = fmt.Fprintln(r.err, warningPrefix(messages.ReportWarningPrefix)+msg)
}

// Warningf formats and prints a "Warning: " line.
func (r *Reporter) Warningf(format string, args ...any) {
	r.Warning(fmt.Sprintf(format, args...))
}

// Error prints an "Error: " line.
func (r *Reporter) Error(msg string) {
	_, _ = fmt.Fprintln(r.err, errorPrefix(messages.ReportErrorPrefix)+msg)
}

// Errorf formats and prints an "Error: " line.
func (r *Reporter) Errorf(format string, args ...any) {
	r.Error(fmt.Sprintf(format, args...))
}

// Debugf prints a "Debug: " line when debug output is enabled.
func (r *Reporter) Debugf(format string, args ...any) {
	if !r.debug {
		return
	}
	_, _ = fmt.Fprintln(r.err, debugPrefix(messages.ReportDebugPrefix)+fmt.Sprintf(format, args...))
}

// DebugEnabled reports whether Debugf prints.
func (r *Reporter) DebugEnabled() bool {
	return r.debug
}
