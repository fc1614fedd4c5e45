package messages

// wp-config.php and snippet messages.
const (
	// WPConfigFileName is the platform configuration file name.
	WPConfigFileName   = "wp-config.php"
	WPSettingsFileName = "wp-settings.php"

	WPConfigAnchorNotFound  = "anchor \"/* That's all, stop editing!\" not found"
	WPConfigAmbiguousAnchor = "anchor \"/* That's all, stop editing!\" appears more than once"
	WPConfigNotFound        = "wp-config.php not found"
	WPConfigStartRequired   = "search start path is required"
	WPConfigSystemRequired  = "wpconfig system is required"
	WPConfigAnchorErrFmt    = "%s: %w"
	WPConfigIOErrorFmt      = "%s %s: %v"
	WPConfigReadOp          = "read"
	WPConfigWriteOp         = "write"
	WPConfigStatOp          = "stat"
	WPConfigNotAFileFmt     = "%s is a directory, expected a file"
	WPConfigDiffCurrentFmt  = "%s (current)"
	WPConfigDiffPatchedFmt  = "%s (patched)"

	// SnippetParseLineFmt reports an unparseable declaration line.
	SnippetParseLineFmt      = "line %d: cannot parse declaration %q"
	SnippetParseEmpty        = "no declarations found"
	SnippetParseDuplicateFmt = "line %d: %s is declared more than once"
)
