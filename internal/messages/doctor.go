package messages

// Doctor messages for the doctor command.
const (
	// DoctorUse is the doctor command name.
	DoctorUse   = "doctor"
	DoctorShort = "Check the WordPress config file, the package manager, and the proxy tool"

	DoctorHealthCheckFmt = "🏥 Checking wp-proxy setup in %s...\n"

	DoctorCheckNameConfigFile     = "ConfigFile"
	DoctorCheckNameAnchor         = "Anchor"
	DoctorCheckNameWritable       = "Writable"
	DoctorCheckNameConstants      = "Constants"
	DoctorCheckNamePackageManager = "PkgManager"
	DoctorCheckNameTool           = "Tool"

	DoctorConfigFoundFmt         = "Found %s"
	DoctorConfigMissingFmt       = "Could not locate wp-config.php from %s"
	DoctorConfigMissingRecommend = "Run wp-proxy inside a WordPress installation or pass --path."
	DoctorConfigLocateFailedFmt  = "Failed to locate wp-config.php: %v"

	DoctorAnchorFound              = "Insertion anchor found exactly once"
	DoctorAnchorMissing            = "Insertion anchor \"/* That's all, stop editing!\" not found"
	DoctorAnchorMissingRecommend   = "Restore the standard \"/* That's all, stop editing! Happy publishing. */\" comment in wp-config.php."
	DoctorAnchorAmbiguous          = "Insertion anchor appears more than once"
	DoctorAnchorAmbiguousRecommend = "Keep a single \"/* That's all, stop editing!\" comment in wp-config.php."
	DoctorConfigReadFailedFmt      = "Failed to read %s: %v"

	DoctorWritableFmt          = "%s is writable"
	DoctorNotWritableFmt       = "%s is not writable: %v"
	DoctorNotWritableRecommend = "Adjust the file permissions or run wp-proxy as the file owner."

	DoctorConstantsPresentFmt       = "Proxy constants already defined (%s)"
	DoctorConstantsMissing          = "Proxy constants not defined yet"
	DoctorConstantsMissingRecommend = "Run `wp-proxy config` to add them."

	DoctorPackageManagerFoundFmt     = "%s is available"
	DoctorPackageManagerMissingFmt   = "%s is not available"
	DoctorPackageManagerRecommendFmt = "Install %s: %s"

	DoctorToolInstalledFmt     = "%s is installed"
	DoctorToolMissingFmt       = "%s is not installed"
	DoctorToolMissingRecommend = "Run `wp-proxy install` (add --sudo if the package manager needs it)."

	DoctorFailureSummary = "❌ Some checks failed. Please address the items above."
	DoctorFailureError   = "doctor checks failed"
	DoctorSuccessSummary = "✅ All systems go. The proxy is ready."

	DoctorStatusOKLabel        = "[OK]  "
	DoctorStatusWarnLabel      = "[WARN]"
	DoctorStatusFailLabel      = "[FAIL]"
	DoctorResultLineFmt        = "%s %-10s %s\n"
	DoctorRecommendationPrefix = "       💡 "
	DoctorRecommendationIndent = "         "
)
