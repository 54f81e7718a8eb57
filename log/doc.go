// Package log renders [log/slog] records as sequence-numbered, colorized
// lines for human eyes.
//
// Every line carries a process-wide sequence number, a timestamp, a
// three-letter severity token and the call site of the log statement:
//
//	   1 15:04:05 INF application started version=1.0.0
//	     cmd/main.go:42
//	   2 15:04:05 WRN cache miss
//	     continued on the next line
//	     cache/lru.go:118
//
// # Basic Usage
//
// Install the formatter as the process-wide [slog] default exactly once,
// typically at the top of main:
//
//	logger, err := log.Init(os.Stderr, log.DefaultConfig())
//	if err != nil {
//		panic(err)
//	}
//	logger.Info("application started", slog.String("version", "1.0.0"))
//	slog.Warn("routed through the same formatter")
//
// Use [New] for a logger that is not installed globally (for example, in
// tests or for a secondary sink).
//
// # Configuration
//
// [Config] is a plain value. Start from [DefaultConfig] and override fields
// directly, or derive one with functional options:
//
//	cfg := log.MakeConfig(
//		log.WithLevel(log.LevelDebug),
//		log.WithModule("github.com/acme/app/store"),
//		log.WithLineColor(log.ColorBrightMagenta),
//		log.WithTimeLayout("stampmilli"))
//
// A Config can also be read from YAML with [LoadConfig].
//
// # Supported Levels
//
// Five levels are supported, from most to least severe: [LevelError],
// [LevelWarn], [LevelInfo], [LevelDebug] and [LevelTrace]. They are
// [slog.Level] values, so [slog.LevelInfo] and [LevelInfo] are
// interchangeable. Records below the configured level never reach the
// formatter and never consume a sequence number.
//
// # Colors
//
// The sequence number, timestamp, file and line number are each drawn in
// their own [Color]. Colors are emitted only when the output is a
// color-capable terminal, unless overridden with [ColorMode].
//
// # Sequence Numbers
//
// The sequence number is incremented atomically once per formatted line,
// before the line is written. A failed write is not retried and its number
// is not reused, so a gap in the numbering marks a lost line.
package log
