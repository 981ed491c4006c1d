package logger

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	logDir  = ".thesis/logs"
	logName = "thesis.log"
)

// Config selects where logs go. Logs always land under <Root>/.thesis/logs.
type Config struct {
	Root  string
	Debug bool
	// Stderr mirrors records to stderr as text (used by `thesis serve`).
	Stderr bool
}

type state struct {
	log  *slog.Logger
	file *os.File
	path string
}

var (
	mu  sync.RWMutex
	cur = discarded()
)

func discarded() state {
	return state{log: slog.New(slog.NewJSONHandler(io.Discard, nil))}
}

// Setup opens the workspace log file and installs it as the process logger.
// The returned cleanup closes the file and goes back to discarding.
func Setup(cfg Config) (func() error, error) {
	root := filepath.Clean(cfg.Root)
	if root == "" {
		root = "."
	}

	dir := filepath.Join(root, filepath.FromSlash(logDir))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		swap(discarded())
		return nil, err
	}

	path := filepath.Join(dir, logName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		swap(discarded())
		return nil, err
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}

	var h slog.Handler = slog.NewJSONHandler(f, &slog.HandlerOptions{
		Level:       level,
		AddSource:   cfg.Debug,
		ReplaceAttr: utcTime,
	})
	if cfg.Stderr {
		h = fanout{h, slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level, ReplaceAttr: utcTime})}
	}

	l := slog.New(h)
	swap(state{log: l, file: f, path: path})
	l.Info("logger.initialized", "path", path, "debug", cfg.Debug)

	return func() error {
		old := swap(discarded())
		if old.file == nil {
			return nil
		}
		return old.file.Close()
	}, nil
}

func swap(next state) state {
	mu.Lock()
	defer mu.Unlock()
	prev := cur
	cur = next
	return prev
}

func utcTime(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
		a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
	}
	return a
}

// L returns the process logger; it discards everything until Setup succeeds.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return cur.log
}

// Path is the active log file, or "" before Setup.
func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return cur.path
}

func IsReady() error {
	mu.RLock()
	defer mu.RUnlock()
	if cur.file == nil {
		return errors.New("logger not initialized")
	}
	return nil
}

// fanout sends every record to all handlers.
type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, l slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, l) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range f {
		if h.Enabled(ctx, r.Level) {
			errs = append(errs, h.Handle(ctx, r.Clone()))
		}
	}
	return errors.Join(errs...)
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}
	return out
}
