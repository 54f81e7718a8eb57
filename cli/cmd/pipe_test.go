package cmd

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/dra11y/toms-logger/log"
)

func TestPipeLines(t *testing.T) {
	var buf bytes.Buffer

	p := &Pipe{Level: log.LevelInfo}

	err := p.pipe(context.Background(), newTestLogger(&buf),
		strings.NewReader("one\n\ntwo\r\n   \nthree"))
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}

	want := []string{"1 INF one", "2 INF two", "3 INF three"}
	if got := headers(buf.String()); !slices.Equal(got, want) {
		t.Errorf("logged %q, want %q", got, want)
	}
}

func TestPipeParagraphs(t *testing.T) {
	var buf bytes.Buffer

	p := &Pipe{Level: log.LevelWarn, Paragraph: true}

	err := p.pipe(context.Background(), newTestLogger(&buf),
		strings.NewReader("a\nb\n\n\nc\n"))
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}

	out := buf.String()

	if !strings.HasPrefix(out, "   1 WRN a\n     b\n     cmd/pipe.go:") {
		t.Errorf("first paragraph not logged as one entry: %q", out)
	}

	if !strings.Contains(out, "\n   2 WRN c\n     cmd/pipe.go:") {
		t.Errorf("second paragraph missing: %q", out)
	}

	if got := headers(out); len(got) != 2 {
		t.Errorf("logged %d entries, want 2: %q", len(got), got)
	}
}

func TestPipeRunReadsSourceFiles(t *testing.T) {
	dir := t.TempDir()

	file := filepath.Join(dir, "input.txt")
	if err := os.WriteFile(file, []byte("from file\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer

	ctx := WithLogger(context.Background(), newTestLogger(&buf))
	ctx = WithSourceFiles(ctx, []string{file})

	if err := (&Pipe{Level: log.LevelInfo}).Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if got := headers(buf.String()); !slices.Equal(got, []string{"1 INF from file"}) {
		t.Errorf("logged %q", got)
	}
}

func TestPipeLongLine(t *testing.T) {
	var buf bytes.Buffer

	long := strings.Repeat("x", 70000)

	p := &Pipe{Level: log.LevelInfo}

	err := p.pipe(context.Background(), newTestLogger(&buf),
		strings.NewReader("before\n"+long+"\nafter\n"))
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}

	want := []string{"1 INF before", "2 INF " + long, "3 INF after"}
	if got := headers(buf.String()); !slices.Equal(got, want) {
		t.Errorf("logged %d entries, want 3 with the long line intact", len(got))
	}
}

func TestPipeLineTooLongFlushesParagraph(t *testing.T) {
	prev := maxLineSize
	maxLineSize = 16

	t.Cleanup(func() { maxLineSize = prev })

	var buf bytes.Buffer

	p := &Pipe{Level: log.LevelInfo, Paragraph: true}

	err := p.pipe(context.Background(), newTestLogger(&buf),
		strings.NewReader("a\nb\n"+strings.Repeat("y", 64)+"\n"))
	if !errors.Is(err, ErrReadSource) || !errors.Is(err, bufio.ErrTooLong) {
		t.Errorf("pipe error = %v, want ErrReadSource wrapping bufio.ErrTooLong", err)
	}

	if !strings.HasPrefix(buf.String(), "   1 INF a\n     b\n") {
		t.Errorf("lines before the oversized one were not logged: %q", buf.String())
	}
}

func TestPipeRunMissingSource(t *testing.T) {
	var buf bytes.Buffer

	ctx := WithLogger(context.Background(), newTestLogger(&buf))
	ctx = WithSourceFiles(ctx, []string{filepath.Join(t.TempDir(), "missing.txt")})

	if err := (&Pipe{Level: log.LevelInfo}).Run(ctx); !errors.Is(err, ErrReadSource) {
		t.Errorf("Run error = %v, want ErrReadSource", err)
	}

	if buf.Len() != 0 {
		t.Errorf("logged %q", buf.String())
	}
}
