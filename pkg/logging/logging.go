// Package logging configures zerolog for kifetch.
//
// Records go to stderr and are appended to kifetch.log in the XDG state
// directory (see paths.LogFile). Nothing is ever logged to stdout, which
// carries only the fetch output. The -v count picks the level: none logs
// warnings, -v info, -vv debug with caller, -vvv and up trace.
package logging

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/arthur-debert/kifetch/pkg/errors"
	"github.com/arthur-debert/kifetch/pkg/paths"
)

var levels = []zerolog.Level{
	zerolog.WarnLevel,
	zerolog.InfoLevel,
	zerolog.DebugLevel,
}

var (
	fileMu  sync.Mutex
	logFile *os.File
)

// Level maps a -v count to a log level.
func Level(verbosity int) zerolog.Level {
	if verbosity < 0 {
		verbosity = 0
	}
	if verbosity >= len(levels) {
		return zerolog.TraceLevel
	}
	return levels[verbosity]
}

// SetupLogger replaces the global logger. When the log file cannot be
// opened the logger keeps going on stderr alone and says so once.
func SetupLogger(verbosity int) {
	SetupLoggerTo(os.Stderr, verbosity)
}

// SetupLoggerTo is SetupLogger with the console side sent to console.
func SetupLoggerTo(console io.Writer, verbosity int) {
	zerolog.SetGlobalLevel(Level(verbosity))

	var out io.Writer = zerolog.ConsoleWriter{Out: console, TimeFormat: time.Kitchen}
	file, path, fileErr := openLogFile()
	if fileErr == nil {
		out = zerolog.MultiLevelWriter(out, file)
	}

	ctx := zerolog.New(out).With().Timestamp()
	if verbosity >= 2 {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()

	if fileErr != nil {
		log.Warn().Err(fileErr).Msg("Log file unavailable, logging to stderr only")
	}
	log.Debug().Int("verbosity", verbosity).Str("log_file", path).Msg("Logger ready")
}

// openLogFile opens the log file for appending, closing the one a previous
// setup left open.
func openLogFile() (*os.File, string, error) {
	fileMu.Lock()
	defer fileMu.Unlock()

	closeLogFileLocked()

	path, err := paths.LogFile()
	if err != nil {
		return nil, "", err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, path, errors.Wrapf(err, errors.ErrInternal, "failed to open log file %s", path)
	}
	logFile = f
	return f, path, nil
}

func closeLogFileLocked() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

// GetLogger returns the global logger tagged with a component name.
func GetLogger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

// LogCommand records an external program about to run.
func LogCommand(name string, args []string) {
	log.Debug().Str("program", name).Strs("args", args).Msg("Running external command")
}

// LogOperationStart logs operation at debug level and returns a func that
// logs its elapsed time.
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().Str("operation", operation).Msg("Started")
	return func() {
		logger.Debug().Str("operation", operation).Dur("elapsed", time.Since(start)).Msg("Finished")
	}
}
