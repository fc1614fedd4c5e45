package messages

// Settings file messages.
const (
	// SettingsReadFailedFmt reports an unreadable settings file.
	SettingsReadFailedFmt    = "failed to read settings %s: %w"
	SettingsInvalidFmt       = "invalid settings %s: %w"
	SettingsUnknownKeysFmt   = "settings %s contains unrecognized keys: %w"
	SettingsResolveHomeFmt   = "resolve home dir: %w"
	SettingsExpandPathFmt    = "expand settings path %s: %w"
	SettingsFieldRequiredFmt = "%s: %s is required"
	SettingsFieldUnsafeFmt   = "%s: %s %q must be a bare executable name or path without shell metacharacters"
	SettingsPortRange        = "port must be a number between 1 and 65535"
	SettingsPortInvalidFmt   = "%s: proxy.port %q must be a number between 1 and 65535"
)
