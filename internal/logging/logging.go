// Package logging builds the process logger from settings and flags.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Options selects where log records go and how verbose they are.
type Options struct {
	Level  string // debug, info, warn, error
	File   string // Appended to when set
	Prefix string
}

// New creates a logger writing to w at the given level name.
func New(w io.Writer, opts Options) (*log.Logger, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		l, err := log.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		level = l
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          opts.Prefix,
	}), nil
}

// Open creates a logger for opts. Records go to opts.File when set and to
// fallback otherwise. The returned closer releases the file and is never nil.
func Open(opts Options, fallback io.Writer) (*log.Logger, io.Closer, error) {
	if opts.File == "" {
		logger, err := New(fallback, opts)
		return logger, io.NopCloser(nil), err
	}

	if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger, err := New(f, opts)
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	return logger, f, nil
}
