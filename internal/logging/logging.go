// Package logging builds the structured logger used for diagnostics.
//
// Diagnostics never go to stdout; stdout is reserved for command output.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	slogmulti "github.com/samber/slog-multi"
)

// Options configures New.
type Options struct {
	// Level is the minimum level written to the terminal handler.
	Level slog.Level

	// File, if non-empty, receives every record at debug level and above as JSON lines.
	File string
}

// New returns a logger writing text records to errOut, fanned out to a JSON
// log file when opts.File is set. The returned close function releases the
// log file and is safe to call when no file was opened.
func New(errOut io.Writer, opts Options) (*slog.Logger, func() error, error) {
	handlers := []slog.Handler{
		slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: opts.Level}),
	}

	closeFn := func() error { return nil }

	if opts.File != "" {
		file, err := openLogFile(opts.File)
		if err != nil {
			return nil, nil, err
		}

		handlers = append(handlers, slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug}))
		closeFn = file.Close
	}

	return slog.New(slogmulti.Fanout(handlers...)), closeFn, nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

func openLogFile(path string) (*os.File, error) {
	err := os.MkdirAll(filepath.Dir(path), 0o750)
	if err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	return file, nil
}
