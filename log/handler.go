package log

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"unicode"
)

// Handler is a [slog.Handler] that passes each enabled record to a
// [Formatter].
//
// Records below the configured level are rejected by [Handler.Enabled] and
// never reach the formatter. Records logged outside the configured module
// are dropped by [Handler.Handle] before formatting. Attributes are not
// emitted as fields; they are appended to the message as key=value text.
type Handler struct {
	formatter Formatter
	w         *syncWriter
	level     slog.Leveler
	module    string
	source    SourceFormat

	// preformatted attrs from WithAttrs
	attrs string
	// dotted group prefix from WithGroup
	group string
}

// syncWriter serializes writes from handlers that share an output.
type syncWriter struct {
	io.Writer
	mu sync.Mutex
}

func (w *syncWriter) Write(p []byte) (n int, err error) {
	w.mu.Lock()
	n, err = w.Writer.Write(p)
	w.mu.Unlock()

	return
}

// NewHandler returns a handler writing lines rendered by f to w, filtered
// by the level and module of cfg. A nil w discards output.
func NewHandler(w io.Writer, f Formatter, cfg Config) *Handler {
	if w == nil {
		w = io.Discard
	}

	return &Handler{
		formatter: f,
		w:         &syncWriter{Writer: w},
		level:     cfg.Level,
		module:    cfg.Module,
		source:    cfg.Source,
	}
}

// Enabled implements [slog.Handler].
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle implements [slog.Handler]. It returns the formatter's error
// unchanged.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	rec := Record{Level: Level(r.Level)}

	if f, ok := frame(r.PC); ok {
		rec.File = h.source.Trim(f.File)
		rec.Line = f.Line
		rec.Module = packagePath(f.Function)
	}

	if !matchModule(rec.Module, h.module) {
		return nil
	}

	if h.attrs == "" && r.NumAttrs() == 0 {
		rec.Message = r.Message
	} else {
		var b strings.Builder

		b.WriteString(r.Message)
		b.WriteString(h.attrs)
		r.Attrs(func(a slog.Attr) bool {
			writeAttr(&b, h.group, a)

			return true
		})

		rec.Message = b.String()
	}

	return h.formatter.Format(h.w, rec)
}

// WithAttrs implements [slog.Handler].
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	var b strings.Builder

	b.WriteString(h.attrs)

	for _, a := range attrs {
		writeAttr(&b, h.group, a)
	}

	h2 := *h
	h2.attrs = b.String()

	return &h2
}

// WithGroup implements [slog.Handler].
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	h2 := *h
	h2.group = joinKey(h.group, name)

	return &h2
}

// writeAttr appends " key=value" for a to b, flattening groups into dotted
// keys.
func writeAttr(b *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		if len(attrs) == 0 {
			return
		}

		prefix := group
		if a.Key != "" {
			prefix = joinKey(group, a.Key)
		}

		for _, ga := range attrs {
			writeAttr(b, prefix, ga)
		}

		return
	}

	b.WriteByte(' ')
	b.WriteString(joinKey(group, a.Key))
	b.WriteByte('=')
	b.WriteString(quoteValue(a.Value.String()))
}

func joinKey(group, key string) string {
	if group == "" {
		return key
	}

	return group + "." + key
}

func quoteValue(s string) string {
	if s == "" {
		return `""`
	}

	needsQuote := strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '"' || r == '=' || !unicode.IsPrint(r)
	}) >= 0

	if needsQuote {
		return strconv.Quote(s)
	}

	return s
}
