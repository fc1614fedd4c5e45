package messages

// Process runner and tool installer messages.
const (
	// RunnerCommandRequired indicates a command name is required.
	RunnerCommandRequired = "command name is required"
	RunnerStartFailedFmt  = "start %s: %w"

	// ToolRunnerRequired indicates a process runner is required.
	ToolRunnerRequired           = "process runner is required"
	ToolNameRequired             = "tool name is required"
	ToolPackageManagerRequired   = "package manager is required"
	ToolPackageRequired          = "package name is required"
	ToolElevateCommandRequired   = "elevate command is required when elevation is requested"
	ToolPackageManagerMissingFmt = "%s is not available; install it first: %s"
	ToolInstallFailedFmt         = "could not install with %q (exit code %d)"
	ToolInstallStartFailedFmt    = "could not install with %q: %v"
)
