// Package logging configures the global zerolog logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const logFileRel = "travelcheck/travelcheck.log"

// logFile is the handle opened by the last SetupLogger call.
var logFile *os.File

// SetupLogger configures the global logger based on verbosity.
// Console output goes to stderr unless console is false, which the
// interactive list uses so log lines never land on the alt screen.
// The log file under XDG_STATE_HOME is always attempted.
func SetupLogger(verbosity int, console bool) {
	zerolog.SetGlobalLevel(levelFor(verbosity))

	var writers []io.Writer
	if console {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.Kitchen,
		})
	}

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	f, fileErr := openLogFile()
	if fileErr == nil {
		logFile = f
		writers = append(writers, f)
	}
	if len(writers) == 0 {
		writers = append(writers, io.Discard)
	}

	log.Logger = zerolog.New(io.MultiWriter(writers...)).With().Timestamp().Logger()
	if verbosity >= 2 {
		log.Logger = log.Logger.With().Caller().Logger()
	}
	if fileErr != nil {
		log.Warn().Err(fileErr).Msg("Failed to open log file, logging to console only")
	}
	log.Debug().Int("verbosity", verbosity).Msg("Logger initialized")
}

func levelFor(verbosity int) zerolog.Level {
	switch verbosity {
	case 0:
		return zerolog.WarnLevel
	case 1:
		return zerolog.InfoLevel
	case 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// GetLogger returns a logger tagged with the component name.
// It derives from the global logger at call time.
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// openLogFile relies on xdg.StateFile to create the parent directories.
func openLogFile() (*os.File, error) {
	p, err := xdg.StateFile(logFileRel)
	if err != nil {
		return nil, fmt.Errorf("resolve log path: %w", err)
	}
	f, err := os.OpenFile(p, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}
