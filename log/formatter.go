package log

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Record is the data a [Formatter] renders for one log call.
type Record struct {
	Level   Level
	Message string
	// File is the call-site file path; empty if unknown.
	File string
	// Line is the call-site line number; zero if unknown.
	Line int
	// Module is the import path of the calling package; empty if unknown.
	Module string
}

// Formatter renders a record and writes it to w.
type Formatter interface {
	Format(w io.Writer, r Record) error
}

// SequenceFormatter is a [Formatter] that numbers every line it renders.
//
// Each line has the form
//
//	<number> <time> <token> <message>
//	<indent><file>:<line>
//
// where embedded newlines in the message are followed by the indent.
// A SequenceFormatter is safe for concurrent use.
type SequenceFormatter struct {
	seq atomic.Uint64

	config     Config
	formatTime FormatTime
	indent     string
	now        func() time.Time

	number, timestamp, file, line lipgloss.Style
}

// NewSequenceFormatter returns a formatter for cfg whose color profile is
// chosen for out according to cfg.Colors. The sequence starts at zero, so
// the first line is numbered 1.
func NewSequenceFormatter(out io.Writer, cfg Config) *SequenceFormatter {
	r := cfg.Colors.renderer(out)

	return &SequenceFormatter{
		config:     cfg,
		formatTime: cfg.formatTime(),
		indent:     strings.Repeat(" ", max(cfg.Indent, 0)),
		now:        time.Now,
		number:     cfg.NumberColor.style(r),
		timestamp:  cfg.TimestampColor.style(r),
		file:       cfg.FileColor.style(r),
		line:       cfg.LineColor.style(r),
	}
}

// Config returns the configuration f was built with.
func (f *SequenceFormatter) Config() Config { return f.config }

// Sequence returns the number of the most recently formatted line, or zero
// if nothing has been formatted.
func (f *SequenceFormatter) Sequence() uint64 { return f.seq.Load() }

// LineSeparator returns the text that replaces each newline embedded in a
// message so continuation lines align under the prefix.
func (f *SequenceFormatter) LineSeparator() string { return "\n" + f.indent }

// FormatPrefix renders the sequence number n (space-padded to width 4), the
// time t and the severity token of level, separated by single spaces.
// The number and time are colored; the token is not.
func (f *SequenceFormatter) FormatPrefix(level Level, n uint64, t time.Time) string {
	var b strings.Builder

	b.WriteString(paint(f.number, fmt.Sprintf("%4d", n)))

	if ts := f.formatTime(t); ts != "" {
		b.WriteByte(' ')
		b.WriteString(paint(f.timestamp, ts))
	}

	b.WriteByte(' ')
	b.WriteString(level.Token())

	return b.String()
}

var bufPool = sync.Pool{
	New: func() any { return new(bytes.Buffer) },
}

// Format implements [Formatter].
//
// The sequence number is claimed before anything is rendered and is not
// released if the write fails. The line is written with a single call to
// w.Write, and a write error is returned unchanged.
func (f *SequenceFormatter) Format(w io.Writer, r Record) error {
	n := f.seq.Add(1)

	var file, line string
	if r.File != "" {
		file = r.File

		if r.Line > 0 {
			line = ":" + strconv.Itoa(r.Line)
		}
	}

	sep := f.LineSeparator()
	prefix := f.FormatPrefix(r.Level, n, f.now())

	buf := bufPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufPool.Put(buf)
	}()

	buf.WriteString(prefix)
	buf.WriteByte(' ')
	buf.WriteString(strings.ReplaceAll(r.Message, "\n", sep))
	buf.WriteByte('\n')
	buf.WriteString(f.indent)
	buf.WriteString(paint(f.file, file))
	buf.WriteString(paint(f.line, line))
	buf.WriteByte('\n')

	written, err := w.Write(buf.Bytes())
	if err != nil {
		return err
	}

	if written < buf.Len() {
		return io.ErrShortWrite
	}

	return nil
}

// paint renders text with s. Empty text stays empty.
func paint(s lipgloss.Style, text string) string {
	if text == "" {
		return ""
	}

	return s.Render(text)
}
