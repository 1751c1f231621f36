package config

// Defaults applied to unset configuration fields.
const (
	DefaultLogLevel          = "info"
	DefaultServerName        = "mailschema"
	DefaultServerVersion     = "1.0.0"
	DefaultMaxResponseSizeKB = 50
)

// EnvPrefix prefixes the environment variables that override CLI flags,
// e.g. MAILSCHEMA_LOG_LEVEL.
const EnvPrefix = "MAILSCHEMA"
