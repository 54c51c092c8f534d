// Package log builds the slog.Logger used by the zmkjis commands.
//
// Without a log file, records below error level go to stdout and errors go
// to stderr, so conversion progress and failures can be redirected
// separately. With a log file every record is also written to the file.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// LevelTrace is below Debug and additionally logs every unchanged line.
const LevelTrace slog.Level = -8

// Config holds the logging flags shared by all commands.
type Config struct {
	Level string `help:"Log level" enum:"trace,debug,info,warn,error" default:"info" env:"ZMKJIS_LOG_LEVEL"`
	File  string `help:"Also write logs to this file" env:"ZMKJIS_LOG_FILE"`
}

func ParseLevel(s string) slog.Level {
	switch s {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// MultiHandler fans out records to multiple handlers.
type MultiHandler struct{ hs []slog.Handler }

func (m MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.hs {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m MultiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range m.hs {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		_ = h.Handle(ctx, r.Clone())
	}
	return nil
}

func (m MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		out[i] = h.WithAttrs(attrs)
	}
	return MultiHandler{hs: out}
}

func (m MultiHandler) WithGroup(name string) slog.Handler {
	out := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		out[i] = h.WithGroup(name)
	}
	return MultiHandler{hs: out}
}

// LevelFilter passes only records whose level satisfies pass.
type LevelFilter struct {
	pass func(slog.Level) bool
	h    slog.Handler
}

func (f LevelFilter) Enabled(ctx context.Context, level slog.Level) bool {
	return f.pass(level) && f.h.Enabled(ctx, level)
}

func (f LevelFilter) Handle(ctx context.Context, r slog.Record) error {
	if !f.pass(r.Level) {
		return nil
	}
	return f.h.Handle(ctx, r)
}

func (f LevelFilter) WithAttrs(attrs []slog.Attr) slog.Handler {
	return LevelFilter{pass: f.pass, h: f.h.WithAttrs(attrs)}
}

func (f LevelFilter) WithGroup(name string) slog.Handler {
	return LevelFilter{pass: f.pass, h: f.h.WithGroup(name)}
}

// NewConsole returns a logger that splits records between stdout and
// stderr at error level.
func NewConsole(stdout, stderr io.Writer, level slog.Level) *slog.Logger {
	return slog.New(MultiHandler{hs: consoleHandlers(stdout, stderr, level)})
}

func consoleHandlers(stdout, stderr io.Writer, level slog.Level) []slog.Handler {
	opts := &slog.HandlerOptions{Level: level, ReplaceAttr: replaceLevel}
	return []slog.Handler{
		LevelFilter{
			pass: func(l slog.Level) bool { return l < slog.LevelError },
			h:    slog.NewTextHandler(stdout, opts),
		},
		LevelFilter{
			pass: func(l slog.Level) bool { return l >= slog.LevelError },
			h:    slog.NewTextHandler(stderr, opts),
		},
	}
}

// SetupLogger builds the console logger plus an optional file handler.
// The returned closers must be closed on exit.
func SetupLogger(cfg Config) (*slog.Logger, []io.Closer, error) {
	level := ParseLevel(cfg.Level)
	handlers := consoleHandlers(os.Stdout, os.Stderr, level)

	var closers []io.Closer
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, f)
		handlers = append(handlers, slog.NewTextHandler(f, &slog.HandlerOptions{Level: level, ReplaceAttr: replaceLevel}))
	}
	return slog.New(MultiHandler{hs: handlers}), closers, nil
}

func replaceLevel(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.LevelKey {
		if l, ok := a.Value.Any().(slog.Level); ok && l == LevelTrace {
			a.Value = slog.StringValue("TRACE")
		}
	}
	return a
}
