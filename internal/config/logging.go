package config

import (
	"strings"

	"go.uber.org/zap/zapcore"
)

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level" env:"CONTACTBOOK_LOG_LEVEL"`   // debug, info, warn, error
	Format string `yaml:"format" env:"CONTACTBOOK_LOG_FORMAT"` // json, console
	File   string `yaml:"file" env:"CONTACTBOOK_LOG_FILE"`     // empty = stderr
}

// ParseLevel maps a config level name onto a zap level.
// An empty name means the default (warn).
func ParseLevel(name string) (zapcore.Level, bool) {
	switch strings.ToLower(name) {
	case "":
		return zapcore.WarnLevel, true
	case "debug":
		return zapcore.DebugLevel, true
	case "info":
		return zapcore.InfoLevel, true
	case "warn", "warning":
		return zapcore.WarnLevel, true
	case "error":
		return zapcore.ErrorLevel, true
	default:
		return zapcore.WarnLevel, false
	}
}
