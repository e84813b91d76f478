// Package logging configures the structured logger shared by the game.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = logrus.InfoLevel

// New creates a logger writing text records at the given level to out.
// An empty level selects DefaultLevel.
func New(level string, out io.Writer) (*logrus.Logger, error) {
	lvl := DefaultLevel
	if level != "" {
		parsed, err := logrus.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		lvl = parsed
	}

	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})
	return log, nil
}

// Open creates a logger appending to path. The terminal belongs to the game
// screen, so an empty path discards all records. The returned close function
// releases the file.
func Open(level, path string) (*logrus.Logger, func() error, error) {
	if path == "" {
		log, err := New(level, io.Discard)
		return log, func() error { return nil }, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	log, err := New(level, f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return log, f.Close, nil
}

// Discard returns a logger that drops every record.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
