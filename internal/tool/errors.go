package tool

import (
	"errors"
	"fmt"

	"github.com/conn-castle/wp-proxy/internal/messages"
	"github.com/conn-castle/wp-proxy/internal/runner"
)

// PackageManagerMissingError reports that the package manager is not available.
type PackageManagerMissingError struct {
	PackageManager string
	DocsURL        string
	Err            error
}

func (e *PackageManagerMissingError) Error() string {
	return fmt.Sprintf(messages.ToolPackageManagerMissingFmt, e.PackageManager, e.DocsURL)
}

func (e *PackageManagerMissingError) Unwrap() error {
	return e.Err
}

// InstallFailedError reports a failed install command.
type InstallFailedError struct {
	Command  runner.Command
	ExitCode int
	Err      error
}

func (e *InstallFailedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(messages.ToolInstallStartFailedFmt, e.Command.String(), e.Err)
	}
	return fmt.Sprintf(messages.ToolInstallFailedFmt, e.Command.String(), e.ExitCode)
}

func (e *InstallFailedError) Unwrap() error {
	return e.Err
}

// IsPackageManagerMissing reports whether err is a PackageManagerMissingError.
func IsPackageManagerMissing(err error) bool {
	var target *PackageManagerMissingError
	return errors.As(err, &target)
}

// IsInstallFailed reports whether err is an InstallFailedError.
func IsInstallFailed(err error) bool {
	var target *InstallFailedError
	return errors.As(err, &target)
}
