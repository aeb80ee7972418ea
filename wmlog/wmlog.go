// Package wmlog builds the daemon's single structured logger: a
// log/slog.Logger writing to a lumberjack-rotated file, with an
// optional stderr tee for attached runs. One Logger is built in main and
// passed down explicitly; nothing here is a package-level global.
package wmlog

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the rotating file sink.
type Options struct {
	// Path is the log file location. Empty disables file logging.
	Path string
	// MaxSizeMB is the size in megabytes at which the current log file
	// is rotated.
	MaxSizeMB int
	// MaxBackups is how many rotated files are retained.
	MaxBackups int
	// MaxAgeDays is how long a rotated file is retained.
	MaxAgeDays int
	// Attached tees output to stderr in addition to the file, for a
	// foreground run started from a terminal.
	Attached bool
	// Debug lowers the minimum level to slog.LevelDebug.
	Debug bool
}

// New builds a Logger per opts. A zero Options still produces a usable
// stderr-only logger.
func New(opts Options) *slog.Logger {
	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}

	var writers []io.Writer
	if opts.Path != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   opts.Path,
			MaxSize:    nonZero(opts.MaxSizeMB, 10),
			MaxBackups: nonZero(opts.MaxBackups, 5),
			MaxAge:     nonZero(opts.MaxAgeDays, 28),
		})
	}
	if opts.Attached || len(writers) == 0 {
		writers = append(writers, os.Stderr)
	}

	var w io.Writer
	if len(writers) == 1 {
		w = writers[0]
	} else {
		w = io.MultiWriter(writers...)
	}

	// Source locations are useful noise at an interactive terminal during
	// an attached run, but just bloat the rotated file when the daemon is
	// running headless under launchd.
	addSource := opts.Attached && term.IsTerminal(int(os.Stderr.Fd()))
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level, AddSource: addSource})
	return slog.New(h)
}

func nonZero(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
