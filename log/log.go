package log

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"sync/atomic"
	"time"
)

// Logger is a [slog.Logger] backed by a [SequenceFormatter].
type Logger struct {
	*slog.Logger

	formatter *SequenceFormatter
	config    Config
}

// installed is set by the first successful call to Init.
var installed atomic.Bool

// New creates a [Logger] that writes lines formatted according to cfg to w.
// The logger is independent of the [slog] default; see [Init].
// A nil w discards output.
func New(w io.Writer, cfg Config) Logger {
	if w == nil {
		w = io.Discard
	}

	f := NewSequenceFormatter(w, cfg)

	return Logger{
		Logger:    slog.New(NewHandler(w, f, cfg)),
		formatter: f,
		config:    cfg,
	}
}

// Init creates a [Logger] like [New] and installs it as the process-wide
// [slog] default, which also routes output of the standard [log] package
// through it.
//
// Init succeeds at most once per process. Later calls return
// [ErrAlreadyInitialized] and leave the installed logger in place.
func Init(w io.Writer, cfg Config) (Logger, error) {
	if !installed.CompareAndSwap(false, true) {
		return Logger{}, ErrAlreadyInitialized
	}

	l := New(w, cfg)
	slog.SetDefault(l.Logger)

	return l, nil
}

// Config returns the configuration the logger was built with.
func (l Logger) Config() Config { return l.config }

// Level returns the minimum log level.
func (l Logger) Level() Level {
	if l.Logger == nil {
		return DefaultLevel
	}

	return l.config.Level
}

// Sequence returns the number of the most recently formatted line.
func (l Logger) Sequence() uint64 {
	if l.formatter == nil {
		return 0
	}

	return l.formatter.Sequence()
}

// Formatter returns the formatter shared by l and every logger derived
// from it.
func (l Logger) Formatter() *SequenceFormatter { return l.formatter }

// With returns a new [Logger] that includes the given attributes in each log
// message.
func (l Logger) With(attrs ...slog.Attr) Logger {
	if l.Logger == nil {
		return l
	}

	l.Logger = slog.New(l.Logger.Handler().WithAttrs(attrs))

	return l
}

// WithGroup returns a new [Logger] that qualifies subsequent attribute keys
// with name.
func (l Logger) WithGroup(name string) Logger {
	if l.Logger == nil {
		return l
	}

	l.Logger = l.Logger.WithGroup(name)

	return l
}

// TraceContext logs a message at Trace level with the provided context.
func (l Logger) TraceContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, LevelTrace, msg, attrs...)
}

// Trace logs a message at Trace level.
func (l Logger) Trace(msg string, attrs ...slog.Attr) {
	l.log(DefaultContextProvider(), LevelTrace, msg, attrs...)
}

// DebugContext logs a message at Debug level with the provided context.
func (l Logger) DebugContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, LevelDebug, msg, attrs...)
}

// Debug logs a message at Debug level.
func (l Logger) Debug(msg string, attrs ...slog.Attr) {
	l.log(DefaultContextProvider(), LevelDebug, msg, attrs...)
}

// InfoContext logs a message at Info level with the provided context.
func (l Logger) InfoContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, LevelInfo, msg, attrs...)
}

// Info logs a message at Info level.
func (l Logger) Info(msg string, attrs ...slog.Attr) {
	l.log(DefaultContextProvider(), LevelInfo, msg, attrs...)
}

// WarnContext logs a message at Warn level with the provided context.
func (l Logger) WarnContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, LevelWarn, msg, attrs...)
}

// Warn logs a message at Warn level.
func (l Logger) Warn(msg string, attrs ...slog.Attr) {
	l.log(DefaultContextProvider(), LevelWarn, msg, attrs...)
}

// ErrorContext logs a message at Error level with the provided context.
func (l Logger) ErrorContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, LevelError, msg, attrs...)
}

// Error logs a message at Error level.
func (l Logger) Error(msg string, attrs ...slog.Attr) {
	l.log(DefaultContextProvider(), LevelError, msg, attrs...)
}

// Emit logs a message at the given level and returns the handler's error,
// which the other logging methods discard as [slog] does.
func (l Logger) Emit(ctx context.Context, level Level, msg string, attrs ...slog.Attr) error {
	return l.log(ctx, level, msg, attrs...)
}

// log writes a record attributed to the caller of the exported method that
// called it.
func (l Logger) log(ctx context.Context, level Level, msg string, attrs ...slog.Attr) error {
	// Silently return for zero value loggers
	if l.Logger == nil {
		return nil
	}

	return handle(ctx, l.Handler(), level, msg, attrs)
}

// handle builds a record for the caller three frames above it and passes it
// to h if h is enabled for level.
func handle(ctx context.Context, h slog.Handler, level Level, msg string, attrs []slog.Attr) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if !h.Enabled(ctx, slog.Level(level)) {
		return nil
	}

	var pcs [1]uintptr
	// Skip runtime.Callers, handle, log (or logDefault) and the exported
	// method to land on the actual caller.
	runtime.Callers(4, pcs[:])

	r := slog.NewRecord(time.Now(), slog.Level(level), msg, pcs[0])
	r.AddAttrs(attrs...)

	return h.Handle(ctx, r)
}
