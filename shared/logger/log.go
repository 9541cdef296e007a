package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	lWriter "github.com/sirupsen/logrus/hooks/writer"
	"golang.org/x/term"
)

// Setup a basic empty logger on init.
func init() {
	logger := logrus.StandardLogger()
	logger.SetOutput(io.Discard)

	Log = logger
}

// InitLogger initializes a full logging instance writing to stderr.
func InitLogger(verbose bool, debug bool) error {
	logger := logrus.StandardLogger()
	logger.Level = logrus.DebugLevel
	logger.SetOutput(io.Discard)

	// Setup the formatter.
	logger.Formatter = &logrus.TextFormatter{FullTimestamp: true, ForceColors: term.IsTerminal(int(os.Stderr.Fd()))}

	// Setup log level.
	levels := []logrus.Level{logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel, logrus.WarnLevel}
	if debug {
		levels = append(levels, logrus.InfoLevel, logrus.DebugLevel)
	} else if verbose {
		levels = append(levels, logrus.InfoLevel)
	}

	logger.AddHook(&lWriter.Hook{
		Writer:    os.Stderr,
		LogLevels: levels,
	})

	// Set the logger.
	Log = logger

	return nil
}

// Debug logs a message (with optional context) at the DEBUG log level.
func Debug(msg string, ctx ...Ctx) {
	var logCtx Ctx
	if len(ctx) > 0 {
		logCtx = ctx[0]
	}

	Log.WithFields(logrus.Fields(logCtx)).Debug(msg)
}

// Info logs a message (with optional context) at the INFO log level.
func Info(msg string, ctx ...Ctx) {
	var logCtx Ctx
	if len(ctx) > 0 {
		logCtx = ctx[0]
	}

	Log.WithFields(logrus.Fields(logCtx)).Info(msg)
}

// Warn logs a message (with optional context) at the WARNING log level.
func Warn(msg string, ctx ...Ctx) {
	var logCtx Ctx
	if len(ctx) > 0 {
		logCtx = ctx[0]
	}

	Log.WithFields(logrus.Fields(logCtx)).Warn(msg)
}

// Error logs a message (with optional context) at the ERROR log level.
func Error(msg string, ctx ...Ctx) {
	var logCtx Ctx
	if len(ctx) > 0 {
		logCtx = ctx[0]
	}

	Log.WithFields(logrus.Fields(logCtx)).Error(msg)
}

// Errorf logs at the ERROR log level using a standard printf format string.
func Errorf(format string, args ...any) {
	if Log != nil {
		Log.Error(fmt.Sprintf(format, args...))
	}
}

// Debugf logs at the DEBUG log level using a standard printf format string.
func Debugf(format string, args ...any) {
	if Log != nil {
		Log.Debug(fmt.Sprintf(format, args...))
	}
}
