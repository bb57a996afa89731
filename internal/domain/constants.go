package domain

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// SecureFilePermissions is the permission for user config files (rw-------)
	SecureFilePermissions = 0o600
)

// Display constants
const (
	// ShortestDecimals selects the shortest round-trip rendering.
	ShortestDecimals = -1
	// MaxDisplayDecimals is the largest meaningful fraction-digit count for float64.
	MaxDisplayDecimals = 17
)

// REPL constants
const (
	// DefaultPrompt is the interactive prompt string.
	DefaultPrompt = "calc> "
)
