package log

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"testing"
)

// useDefault installs l as the slog default for the duration of the test.
func useDefault(t *testing.T, l Logger) {
	t.Helper()

	prev := slog.Default()
	slog.SetDefault(l.Logger)

	t.Cleanup(func() { slog.SetDefault(prev) })
}

func TestPackageFunctions(t *testing.T) {
	var buf bytes.Buffer

	l := New(&buf, plain(WithLevel(LevelDebug), WithSource(SourceBase)))
	useDefault(t, l)

	ctx := context.Background()

	Trace("dropped")
	TraceContext(ctx, "dropped")

	_, _, line, _ := runtime.Caller(0)
	Debug("d")
	InfoContext(ctx, "i", slog.String("k", "v"))
	Warn("w")
	ErrorContext(ctx, "e")

	want := fmt.Sprintf("   1 DBG d\n     pkg_test.go:%d\n", line+1) +
		fmt.Sprintf("   2 INF i k=v\n     pkg_test.go:%d\n", line+2) +
		fmt.Sprintf("   3 WRN w\n     pkg_test.go:%d\n", line+3) +
		fmt.Sprintf("   4 ERR e\n     pkg_test.go:%d\n", line+4)

	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestPackageFunctions_NilContext(t *testing.T) {
	var buf bytes.Buffer

	l := New(&buf, plain())
	useDefault(t, l)

	//nolint:staticcheck // nil context is tolerated
	InfoContext(nil, "no context")

	if l.Sequence() != 1 {
		t.Errorf("Sequence() = %d, want 1", l.Sequence())
	}
}
