package logger

import (
	"log/slog"
	"strings"

	"github.com/KirkDiggler/gw2-api/internal/errors"
)

// Config represents logger configuration
type Config struct {
	Level       string // "debug", "info", "warn", "error"
	Format      string // "json", "text"
	ServiceName string
	Version     string
	AddSource   bool // Include source file/line in logs
}

// DefaultConfig returns the defaults used when no flags or environment are set
func DefaultConfig() Config {
	return Config{
		Level:       LevelInfo,
		Format:      FormatText,
		ServiceName: DefaultServiceName,
		Version:     DefaultVersion,
	}
}

// Validate rejects unknown levels and formats
func (c Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Level != "" {
		errors.ValidateEnum("Level", strings.ToLower(c.Level),
			[]string{LevelDebug, LevelInfo, LevelWarn, LevelWarning, LevelError}, vb)
	}
	if c.Format != "" {
		errors.ValidateEnum("Format", strings.ToLower(c.Format), []string{FormatJSON, FormatText}, vb)
	}

	return vb.Build()
}

// LogLevel converts string level to slog.Level
func (c Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn, LevelWarning:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// IsJSON returns true if format is JSON
func (c Config) IsJSON() bool {
	return strings.ToLower(c.Format) == FormatJSON
}

// BaseAttributes returns common attributes to add to all logs
func (c Config) BaseAttributes() []slog.Attr {
	attrs := make([]slog.Attr, 0, 2)
	if c.ServiceName != "" {
		attrs = append(attrs, slog.String(KeyService, c.ServiceName))
	}
	if c.Version != "" {
		attrs = append(attrs, slog.String(KeyVersion, c.Version))
	}
	return attrs
}
