//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileLoggerSettings() *LoggerSettings {
	return &LoggerSettings{
		LogLevel:   LogLevelDebug,
		LogType:    LogTypeFile,
		FilePath:   "logs/rsa-lab.log",
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
	}
}

func TestLoggerSettings_Levels(t *testing.T) {
	for _, level := range []string{LogLevelDebug, LogLevelInfo, LogLevelWarning, LogLevelError, LogLevelCritical} {
		t.Run(level, func(t *testing.T) {
			s := &LoggerSettings{LogLevel: level, LogType: LogTypeConsole}
			assert.NoError(t, s.Validate())
		})
	}

	for _, level := range []string{"", "trace", "INFO", "fatal"} {
		t.Run("rejects "+level, func(t *testing.T) {
			s := &LoggerSettings{LogLevel: level, LogType: LogTypeConsole}
			assert.ErrorContains(t, s.Validate(), "LogLevel")
		})
	}
}

func TestLoggerSettings_Types(t *testing.T) {
	assert.ErrorContains(t, (&LoggerSettings{LogLevel: LogLevelInfo}).Validate(), "LogType")
	assert.ErrorContains(t, (&LoggerSettings{LogLevel: LogLevelInfo, LogType: "syslog"}).Validate(), "LogType")
}

func TestLoggerSettings_ConsoleIgnoresRotation(t *testing.T) {
	for name, s := range map[string]*LoggerSettings{
		"zero values":   {LogLevel: LogLevelInfo, LogType: LogTypeConsole},
		"out of bounds": {LogLevel: LogLevelCritical, LogType: LogTypeConsole, MaxSize: 500, MaxBackups: -1, MaxAge: 1000},
	} {
		t.Run(name, func(t *testing.T) {
			assert.NoError(t, s.Validate())
		})
	}
}

func TestLoggerSettings_FileRotationBounds(t *testing.T) {
	require.NoError(t, fileLoggerSettings().Validate())

	upper := fileLoggerSettings()
	upper.MaxSize, upper.MaxBackups, upper.MaxAge = MaxLogFileSizeMB, MaxLogFileBackups, MaxLogFileAgeDays
	require.NoError(t, upper.Validate())

	tests := []struct {
		name    string
		mutate  func(s *LoggerSettings)
		message string
	}{
		{"missing path", func(s *LoggerSettings) { s.FilePath = "" }, "file path is required"},
		{"size below", func(s *LoggerSettings) { s.MaxSize = 0 }, "max size"},
		{"size above", func(s *LoggerSettings) { s.MaxSize = MaxLogFileSizeMB + 1 }, "max size"},
		{"backups below", func(s *LoggerSettings) { s.MaxBackups = 0 }, "max backups"},
		{"backups above", func(s *LoggerSettings) { s.MaxBackups = MaxLogFileBackups + 1 }, "max backups"},
		{"age below", func(s *LoggerSettings) { s.MaxAge = 0 }, "max age"},
		{"age above", func(s *LoggerSettings) { s.MaxAge = MaxLogFileAgeDays + 1 }, "max age"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := fileLoggerSettings()
			tt.mutate(s)
			assert.ErrorContains(t, s.Validate(), tt.message)
		})
	}
}
