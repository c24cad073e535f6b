package logger

// Log level values accepted by Config.Level
const (
	LevelDebug   = "debug"
	LevelInfo    = "info"
	LevelWarn    = "warn"
	LevelWarning = "warning"
	LevelError   = "error"
)

// Log format values accepted by Config.Format
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Defaults
const (
	DefaultServiceName = "gw2-api"
	DefaultVersion     = "dev"
)

// Attribute keys added to every record
const (
	KeyService   = "service"
	KeyVersion   = "version"
	KeyRequestID = "request_id"
)
