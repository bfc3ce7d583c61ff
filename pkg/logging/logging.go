// Package logging builds the zerolog logger injected into a comparison
// run. No package in this module logs through a global.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options selects log level, output format, and an optional rotating
// file sink.
type Options struct {
	Level  string // trace|debug|info|warn|error (default info)
	Format string // console|json (default console)
	File   string // optional log file path, rotated by size

	MaxSizeMB  int // rotation threshold, defaults to 10
	MaxBackups int // rotated files kept, defaults to 3

	// Out overrides the terminal writer; defaults to stderr.
	Out io.Writer
}

// New constructs a logger from opts.
func New(opts Options) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(opts.Level)
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		level = parsed
	}

	out := opts.Out
	if out == nil {
		out = os.Stderr
	}

	var writers []io.Writer
	switch opts.Format {
	case "", "console":
		writers = append(writers, zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339})
	case "json":
		writers = append(writers, out)
	default:
		return zerolog.Nop(), fmt.Errorf("invalid log format %q", opts.Format)
	}

	if opts.File != "" {
		maxSize := opts.MaxSizeMB
		if maxSize <= 0 {
			maxSize = 10
		}
		maxBackups := opts.MaxBackups
		if maxBackups <= 0 {
			maxBackups = 3
		}
		writers = append(writers, &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    maxSize,
			MaxBackups: maxBackups,
		})
	}

	var w io.Writer = writers[0]
	if len(writers) > 1 {
		w = zerolog.MultiLevelWriter(writers...)
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}
