// Package logging configures structured logging for a simulation run.
package logging

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Options selects the level, format and destination of log output
type Options struct {
	Level  string
	Format string
	Output io.Writer
}

// New builds a logger from opts. Format is "text" or "json".
func New(opts Options) (*log.Logger, error) {
	logger := log.New()

	level, err := log.ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	logger.SetLevel(level)

	switch opts.Format {
	case "", "text":
		logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	case "json":
		logger.SetFormatter(&log.JSONFormatter{})
	default:
		return nil, fmt.Errorf("unknown log format %q", opts.Format)
	}

	if opts.Output != nil {
		logger.SetOutput(opts.Output)
	}
	return logger, nil
}

// ForRun tags every entry with a fresh run id and the seed of the run
func ForRun(logger log.FieldLogger, seed int64) *log.Entry {
	return logger.WithFields(log.Fields{
		"run":  uuid.New().String(),
		"seed": seed,
	})
}

// Discard returns a logger that drops everything, for tests
func Discard() *log.Logger {
	logger := log.New()
	logger.SetOutput(io.Discard)
	return logger
}
