package commands

// Error messages
const (
	ErrConfigLoaderUnavailable = "config loader unavailable"
)

// Success messages
const (
	MsgConfigurationValid       = "Configuration valid"
	MsgNoDifferencesFromDefault = "No differences from default configuration."
	MsgConfigurationReset       = "Configuration reset to defaults."
)
