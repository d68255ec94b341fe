package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// LevelEnv names the environment variable that selects the log level.
const LevelEnv = "BLOB_LOG_LEVEL"

type ZerologAdapter struct {
	logger zerolog.Logger
}

func NewZerolog(writer io.Writer, level zerolog.Level) *ZerologAdapter {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.DurationFieldInteger = true

	logger := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()

	return &ZerologAdapter{logger: logger}
}

// NewConsoleLogger writes human-readable output to w.
func NewConsoleLogger(w io.Writer, level zerolog.Level) *ZerologAdapter {
	consoleWriter := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
	}
	return NewZerolog(consoleWriter, level)
}

// NewNop returns a logger that discards everything.
func NewNop() *ZerologAdapter {
	return &ZerologAdapter{logger: zerolog.Nop()}
}

// LevelFromEnv parses LevelEnv, falling back to info for empty or unknown values.
func LevelFromEnv() zerolog.Level {
	return ParseLevel(os.Getenv(LevelEnv))
}

// ParseLevel maps debug, info, warn and error to zerolog levels; anything
// else yields info.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func (z *ZerologAdapter) Info(component, message string, fields map[string]interface{}) {
	if !z.logger.Info().Enabled() {
		return
	}

	event := z.logger.Info().Str("component", component)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(message)
}

func (z *ZerologAdapter) Error(component string, err error, fields map[string]interface{}) {
	if !z.logger.Error().Enabled() {
		return
	}

	event := z.logger.Error().Str("component", component).Err(err)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg("operation failed")
}

func (z *ZerologAdapter) Warning(component, message string, fields map[string]interface{}) {
	if !z.logger.Warn().Enabled() {
		return
	}

	event := z.logger.Warn().Str("component", component)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(message)
}

func (z *ZerologAdapter) Debug(component, message string, fields map[string]interface{}) {
	if !z.logger.Debug().Enabled() {
		return
	}

	event := z.logger.Debug().Str("component", component)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(message)
}
