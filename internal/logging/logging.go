// Package logging adapts the teacher's free-function log API
// (pkg/common/log.go's Info/Verbose/Warning/Error, plus an optional log
// file mirror) onto a zerolog-backed console writer, grounded on
// smilemakc-mbflow's src/internal/config.go use of github.com/rs/zerolog/log.
package logging

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu             sync.Mutex
	verboseEnabled = false
	logFile        *os.File
	logger         = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}).
			With().Timestamp().Logger()
)

// SetVerbose toggles whether Verbose messages are emitted.
func SetVerbose(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	verboseEnabled = enabled
}

// SetLogFile mirrors every subsequent log line to path as well as the
// console, until the returned closer is called. Passing an empty path
// disables file mirroring.
func SetLogFile(path string) (io.Closer, error) {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	if path == "" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}).With().Timestamp().Logger()
		return io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	logFile = f
	console := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}
	logger = zerolog.New(zerolog.MultiLevelWriter(console, f)).With().Timestamp().Logger()
	return f, nil
}

// Info logs an always-shown informational message.
func Info(format string, args ...any) {
	logger.Info().Msgf(format, args...)
}

// Verbose logs a message only when verbose mode is enabled.
func Verbose(format string, args ...any) {
	mu.Lock()
	enabled := verboseEnabled
	mu.Unlock()
	if enabled {
		logger.Debug().Msgf(format, args...)
	}
}

// Warning logs a warning, always shown.
func Warning(format string, args ...any) {
	logger.Warn().Msgf(format, args...)
}

// Error logs an error, always shown.
func Error(format string, args ...any) {
	logger.Error().Msgf(format, args...)
}

// WithField returns a logger pre-populated with one structured field, for
// call sites that want e.g. the current problem name attached to every
// subsequent line without repeating it in the format string.
func WithField(key, value string) zerolog.Logger {
	return logger.With().Str(key, value).Logger()
}
