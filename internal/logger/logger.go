// Package logger builds the zap loggers used by the CLIs.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LogLevel string

type LogFormat string

const (
	DebugLevel LogLevel = "DEBUG"
	InfoLevel  LogLevel = "INFO"
	WarnLevel  LogLevel = "WARN"
	ErrorLevel LogLevel = "ERROR"

	// FormatConsole is human-readable output with colored levels.
	FormatConsole LogFormat = "CONSOLE"
	// FormatJSON is structured JSON output.
	FormatJSON LogFormat = "JSON"
	// FormatPretty is console output without timestamps or callers.
	FormatPretty LogFormat = "PRETTY"
)

const (
	// EnvLevel overrides the configured level.
	EnvLevel = "LOGGING_LEVEL"
	// EnvFormat overrides the configured format.
	EnvFormat = "LOGGING_FORMAT"
)

// Component names passed to Named.
const (
	ComponentStore      = "store"
	ComponentRunLoop    = "runloop"
	ComponentController = "tableview"
	ComponentPatterns   = "patterns"
)

// ParseLevel maps a level name to a zap level. Unknown names mean info.
func ParseLevel(level string) zapcore.Level {
	switch LogLevel(strings.ToUpper(strings.TrimSpace(level))) {
	case DebugLevel:
		return zapcore.DebugLevel
	case WarnLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// ParseFormat maps a format name to a LogFormat. Unknown names mean def.
func ParseFormat(format string, def LogFormat) LogFormat {
	switch f := LogFormat(strings.ToUpper(strings.TrimSpace(format))); f {
	case FormatConsole, FormatJSON, FormatPretty:
		return f
	default:
		return def
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func timeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("2006-01-02 15:04:05 MST"))
}

// New builds a logger writing to stderr. LOGGING_LEVEL and LOGGING_FORMAT
// take precedence over the arguments.
func New(level string, format LogFormat) *zap.Logger {
	return NewWithWriter(os.Stderr, level, format)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, level string, format LogFormat) *zap.Logger {
	lvl := ParseLevel(getEnv(EnvLevel, level))
	format = ParseFormat(getEnv(EnvFormat, string(format)), FormatConsole)

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "component",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	var encoder zapcore.Encoder
	switch format {
	case FormatPretty:
		encoderConfig.TimeKey = zapcore.OmitKey
		encoderConfig.CallerKey = zapcore.OmitKey
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoderConfig.ConsoleSeparator = "  "
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	case FormatJSON:
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	default:
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoderConfig.EncodeTime = timeEncoder
		encoderConfig.ConsoleSeparator = " | "
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(w), zap.NewAtomicLevelAt(lvl))
	return zap.New(core, zap.AddCaller())
}
