package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "wp-proxy"
	// RootShort is the short description for the root command.
	RootShort           = "Install, configure, and run mitmproxy for a WordPress site"
	RootLong            = "Install, configure, and run mitmproxy (https://mitmproxy.org) as an HTTP proxy for a WordPress installation."
	RootFlagPath        = "Path to the WordPress files (the search for wp-config.php starts here)"
	RootFlagSettings    = "Path to the wp-proxy settings file (default ~/.wp-proxy/config.toml)"
	RootFlagDebug       = "Print debug output to stderr"
	RootResolveCwdFmt   = "resolve working directory: %w"
	RootSettingsFileFmt = "Using settings file %s"
	RootRunningFmt      = "Running %s"
	RootMissingWPConfig = "this does not seem to be a WordPress installation (wp-config.php not found); pass --path to point at one"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt   = "commit %s"
	VersionBuildFmt    = "built %s"
	VersionTemplate    = "wp-proxy {{.Version}}\n"
	VersionFullFmt     = "%s (%s)"
	VersionLineFmt     = "wp-proxy %s\n"
	VersionHostLineFmt = "Platform: %s/%s (%s)\n"

	// VersionUse is the version command name.
	VersionUse          = "version"
	VersionShort        = "Print wp-proxy version information"
	VersionFlagExtra    = "Also print the proxy tool, admin tool, and platform versions"
	VersionExitCodeFmt  = "exit code %d"
	VersionExtraToolFmt = "could not read %s version: %v"

	// VersionSettingsFallbackFmt reports an unusable settings file; defaults are used instead.
	VersionSettingsFallbackFmt = "%v; using default tool names"

	// StartUse is the start command usage.
	StartUse             = "start [port]"
	StartShort           = "Launch the proxy on the given port (default 9090)"
	StartFlagFlags       = "Raw flags passed through to the proxy tool, e.g. --flags=\"-q --anticache\""
	StartInvalidPortFmt  = "invalid port %q: must be a number between 1 and 65535"
	StartLaunchingFmt    = "Starting %s on port %s..."
	StartInvalidFlagsFmt = "invalid --flags %q: %w"

	// ConfigUse is the config command name.
	ConfigUse               = "config"
	ConfigShort             = "Add proxy constants to wp-config.php"
	ConfigFlagDump          = "Print the proxy constants instead of writing them to wp-config.php"
	ConfigFlagDiff          = "Show the change that would be made to wp-config.php without writing it"
	ConfigFlagForce         = "Add the proxy constants even if wp-config.php already defines them"
	ConfigPatchedFmt        = "Added proxy constants to %s."
	ConfigAlreadyConfigured = "wp-config.php already defines the proxy constants; re-run with --force to add them again"
	ConfigAlreadyPromptFmt  = "%s already defines the proxy constants. Add them again?"
	ConfigAbortedFmt        = "Left %s unchanged."
	ConfigUsingFileFmt      = "Using config file %s"

	// InstallUse is the install command name.
	InstallUse               = "install"
	InstallUpgradeAlias      = "upgrade"
	InstallShort             = "Install or upgrade the proxy tool with the package manager"
	InstallFlagSudo          = "Run the package manager with elevated privileges"
	InstallInstallingFmt     = "Installing %s..."
	InstallCheckingPMFmt     = "Checking for %s..."
	InstallSucceededFmt      = "%s successfully installed."
	InstallAlreadyPresentFmt = "%s is already installed."

	// IsInstalledUse is the is-installed command name.
	IsInstalledUse    = "is-installed"
	IsInstalledShort  = "Check whether the proxy tool is installed, installing it if missing"
	IsInstalledYesFmt = "%s is installed."
	IsInstalledNoFmt  = "%s is NOT installed."

	PromptRequiresTerminal = "confirmation requires an interactive terminal"
	PromptAffirmative      = "Yes"
	PromptNegative         = "No"

	// ReportSuccessPrefix prefixes success lines.
	ReportSuccessPrefix = "Success: "
	ReportWarningPrefix = "Warning: "
	ReportErrorPrefix   = "Error: "
	ReportDebugPrefix   = "Debug: "
)
