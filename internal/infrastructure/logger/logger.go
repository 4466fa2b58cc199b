package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	globalLogger zerolog.Logger
	once         sync.Once
)

// GetLogger returns the global logger instance. Before New has run it
// defaults to console output at info level.
func GetLogger() zerolog.Logger {
	once.Do(func() {
		globalLogger = zerolog.New(consoleWriter()).With().Timestamp().Logger().Level(zerolog.InfoLevel)
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	})
	return globalLogger
}

// New constructs the process logger from config. The service name rides on
// every event so gateway lines are distinguishable from the DNA backend's
// own diagnostic output on the same stream.
func New(level, format, service string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Logger{}, err
	}

	writer, err := writerFor(format)
	if err != nil {
		return zerolog.Logger{}, err
	}

	log := zerolog.New(writer).With().Timestamp().Str("service", service).Logger().Level(lvl)
	zerolog.SetGlobalLevel(lvl)
	globalLogger = log

	return log, nil
}

func writerFor(format string) (io.Writer, error) {
	switch strings.ToLower(format) {
	case "json":
		return os.Stdout, nil
	case "console":
		return consoleWriter(), nil
	default:
		return nil, fmt.Errorf("unsupported log format %q", format)
	}
}

func consoleWriter() zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}
}
