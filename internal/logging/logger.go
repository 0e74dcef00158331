// Package logging holds the process-wide structured logger.
//
// The logger discards everything until Setup is called. The CLI calls
// Setup once from the root command's PersistentPreRun, enabling debug
// output on stderr when --verbose is set.
package logging

import (
	"io"
	"log/slog"
	"sync"
	"time"
)

// Config controls how the global logger is built.
type Config struct {
	// Verbose enables debug-level output. When false the logger discards
	// all records.
	Verbose bool

	// JSON selects the JSON handler instead of the text handler.
	JSON bool

	// Writer receives log records. Typically os.Stderr, since stdout
	// carries unit output.
	Writer io.Writer
}

var (
	mu     sync.RWMutex
	global = discard()
)

// Setup replaces the global logger according to cfg and returns it.
func Setup(cfg Config) *slog.Logger {
	if !cfg.Verbose || cfg.Writer == nil {
		l := discard()
		set(l)
		return l
	}

	opts := &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	}

	var h slog.Handler
	if cfg.JSON {
		h = slog.NewJSONHandler(cfg.Writer, opts)
	} else {
		h = slog.NewTextHandler(cfg.Writer, opts)
	}

	l := slog.New(h)
	set(l)
	return l
}

// L returns the global logger.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// Reset restores the discarding logger.
func Reset() {
	set(discard())
}

func set(l *slog.Logger) {
	mu.Lock()
	global = l
	mu.Unlock()
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
