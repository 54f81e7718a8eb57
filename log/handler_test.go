package log

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

// recordingFormatter captures the records it is asked to format.
type recordingFormatter struct {
	records []Record
	err     error
}

func (f *recordingFormatter) Format(_ io.Writer, r Record) error {
	f.records = append(f.records, r)

	return f.err
}

func TestHandler_Enabled(t *testing.T) {
	h := NewHandler(nil, newTestFormatter(), MakeConfig(WithLevel(LevelWarn)))

	tests := []struct {
		level slog.Level
		want  bool
	}{
		{slog.Level(LevelTrace), false},
		{slog.LevelDebug, false},
		{slog.LevelInfo, false},
		{slog.LevelWarn, true},
		{slog.LevelError, true},
	}

	for _, tt := range tests {
		if got := h.Enabled(context.Background(), tt.level); got != tt.want {
			t.Errorf("Enabled(%v) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestHandler_Handle_ExtractsCallSite(t *testing.T) {
	rf := &recordingFormatter{}
	logger := slog.New(NewHandler(io.Discard, rf, DefaultConfig()))

	_, file, line, _ := runtime.Caller(0)
	logger.Info("here")

	if len(rf.records) != 1 {
		t.Fatalf("formatted %d records, want 1", len(rf.records))
	}

	got := rf.records[0]
	want := Record{
		Level:   LevelInfo,
		Message: "here",
		File:    filepath.Base(filepath.Dir(file)) + "/" + filepath.Base(file),
		Line:    line + 1,
		Module:  "github.com/dra11y/toms-logger/log",
	}

	if got != want {
		t.Errorf("record = %+v, want %+v", got, want)
	}
}

func TestHandler_Handle_ModuleFilter(t *testing.T) {
	tests := []struct {
		module string
		want   int
	}{
		{"", 1},
		{"github.com/dra11y/toms-logger", 1},
		{"github.com/dra11y/toms-logger/log", 1},
		{"github.com/dra11y/toms-logger/cli", 0},
		{"github.com/acme/app", 0},
	}

	for _, tt := range tests {
		t.Run(tt.module, func(t *testing.T) {
			rf := &recordingFormatter{}
			logger := slog.New(NewHandler(io.Discard, rf, MakeConfig(WithModule(tt.module))))

			logger.Warn("scoped")

			if len(rf.records) != tt.want {
				t.Errorf("module %q: formatted %d records, want %d", tt.module, len(rf.records), tt.want)
			}
		})
	}
}

func TestHandler_Handle_RecordWithoutSource(t *testing.T) {
	var buf bytes.Buffer

	f := newTestFormatter(WithTimeLayout("none"))
	h := NewHandler(&buf, f, f.Config())

	r := slog.NewRecord(time.Now(), slog.LevelInfo, "no caller", 0)
	if err := h.Handle(context.Background(), r); err != nil {
		t.Fatalf("Handle: %v", err)
	}

	want := "   1 INF no caller\n     \n"
	if buf.String() != want {
		t.Errorf("Handle wrote %q, want %q", buf.String(), want)
	}
}

func TestHandler_Handle_PropagatesWriteError(t *testing.T) {
	errBroken := errors.New("broken pipe")

	f := newTestFormatter()
	h := NewHandler(failWriter{errBroken}, f, f.Config())

	r := slog.NewRecord(time.Now(), slog.LevelInfo, "lost", 0)
	if err := h.Handle(context.Background(), r); err != errBroken { //nolint:errorlint // must be returned unmodified
		t.Errorf("Handle error = %v, want %v unmodified", err, errBroken)
	}
}

func TestHandler_Attrs(t *testing.T) {
	tests := []struct {
		name  string
		build func(slog.Handler) slog.Handler
		attrs []slog.Attr
		want  string
	}{
		{
			name:  "record attrs",
			attrs: []slog.Attr{slog.String("k", "v"), slog.Int("n", 3)},
			want:  "msg k=v n=3",
		},
		{
			name:  "quoted values",
			attrs: []slog.Attr{slog.String("s", "hello world"), slog.String("e", "")},
			want:  `msg s="hello world" e=""`,
		},
		{
			name: "handler attrs precede record attrs",
			build: func(h slog.Handler) slog.Handler {
				return h.WithAttrs([]slog.Attr{slog.String("req", "42")})
			},
			attrs: []slog.Attr{slog.Bool("ok", true)},
			want:  "msg req=42 ok=true",
		},
		{
			name: "groups qualify keys",
			build: func(h slog.Handler) slog.Handler {
				return h.WithAttrs([]slog.Attr{slog.String("a", "1")}).
					WithGroup("g").
					WithAttrs([]slog.Attr{slog.String("b", "2")})
			},
			attrs: []slog.Attr{slog.Group("sub", slog.String("c", "3"))},
			want:  "msg a=1 g.b=2 g.sub.c=3",
		},
		{
			name:  "empty group and attr dropped",
			attrs: []slog.Attr{slog.Group("empty"), {}},
			want:  "msg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			f := newTestFormatter(WithTimeLayout("none"))

			var h slog.Handler = NewHandler(&buf, f, f.Config())
			if tt.build != nil {
				h = tt.build(h)
			}

			r := slog.NewRecord(time.Now(), slog.LevelInfo, "msg", 0)
			r.AddAttrs(tt.attrs...)

			if err := h.Handle(context.Background(), r); err != nil {
				t.Fatalf("Handle: %v", err)
			}

			first, _, _ := strings.Cut(buf.String(), "\n")
			if got := strings.TrimPrefix(first, "   1 INF "); got != tt.want {
				t.Errorf("message = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHandler_DerivedHandlersShareSequence(t *testing.T) {
	var buf bytes.Buffer

	f := newTestFormatter(WithTimeLayout("none"))
	h := NewHandler(&buf, f, f.Config())
	g := h.WithAttrs([]slog.Attr{slog.String("k", "v")})

	for _, hh := range []slog.Handler{h, g, h} {
		r := slog.NewRecord(time.Now(), slog.LevelInfo, "m", 0)
		if err := hh.Handle(context.Background(), r); err != nil {
			t.Fatalf("Handle: %v", err)
		}
	}

	if f.Sequence() != 3 {
		t.Errorf("Sequence() = %d, want 3", f.Sequence())
	}
}

func TestPackagePath(t *testing.T) {
	tests := []struct {
		fn   string
		want string
	}{
		{"github.com/acme/app/store.(*DB).Get", "github.com/acme/app/store"},
		{"github.com/acme/app/store.Open.func1", "github.com/acme/app/store"},
		{"main.main", "main"},
		{"log/slog.(*Logger).log", "log/slog"},
		{"nodot", "nodot"},
	}

	for _, tt := range tests {
		if got := packagePath(tt.fn); got != tt.want {
			t.Errorf("packagePath(%q) = %q, want %q", tt.fn, got, tt.want)
		}
	}
}

func TestMatchModule(t *testing.T) {
	tests := []struct {
		module, filter string
		want           bool
	}{
		{"github.com/acme/app", "", true},
		{"", "", true},
		{"github.com/acme/app", "github.com/acme/app", true},
		{"github.com/acme/app/store", "github.com/acme/app", true},
		{"github.com/acme/app/store", "github.com/acme/app/", true},
		{"github.com/acme/application", "github.com/acme/app", false},
		{"github.com/other/app", "github.com/acme/app", false},
		{"", "github.com/acme/app", false},
	}

	for _, tt := range tests {
		if got := matchModule(tt.module, tt.filter); got != tt.want {
			t.Errorf("matchModule(%q, %q) = %v, want %v", tt.module, tt.filter, got, tt.want)
		}
	}
}

func TestSourceFormat_Trim(t *testing.T) {
	const file = "/src/app/store/db.go"

	tests := []struct {
		format SourceFormat
		want   string
	}{
		{SourceShort, "store/db.go"},
		{SourceFull, file},
		{SourceBase, "db.go"},
	}

	for _, tt := range tests {
		if got := tt.format.Trim(file); got != tt.want {
			t.Errorf("%v.Trim(%q) = %q, want %q", tt.format, file, got, tt.want)
		}
	}

	if got := SourceShort.Trim("db.go"); got != "db.go" {
		t.Errorf("SourceShort.Trim(db.go) = %q", got)
	}

	if got := SourceFull.Trim(""); got != "" {
		t.Errorf("Trim of empty path = %q", got)
	}
}
