package config

// Levels accepted by logger.log_level. critical shares slog's error level.
const (
	LogLevelDebug    = "debug"
	LogLevelInfo     = "info"
	LogLevelWarning  = "warning"
	LogLevelError    = "error"
	LogLevelCritical = "critical"
)

// Sinks accepted by logger.log_type.
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// Upper bounds for lumberjack rotation on the file sink. Each setting must be at least 1.
const (
	MaxLogFileSizeMB  = 100
	MaxLogFileBackups = 10
	MaxLogFileAgeDays = 365
)
