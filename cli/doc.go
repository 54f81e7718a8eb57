// Package cli contains the command line interface for toms-logger.
//
// # Usage
//
// Every subcommand logs through a [log.Logger] configured by the --log-*
// flags and installed as the [log/slog] default:
//
//	toms-logger --log-level=debug emit --count=3 "hello"
//	toms-logger --log-time-layout=rfc3339 pipe --paragraph < notes.txt
//	toms-logger --source=app.log --source=- pipe
//	toms-logger --log-indent=2 init --stdout
//
// Log lines are written to stderr; help and the init --stdout document go
// to stdout.
//
// # Configuration File
//
// Flag defaults are read from config.yaml in the per-user configuration
// directory (for example ~/.config/toms-logger/config.yaml). Nested keys are
// joined with hyphens to form flag names:
//
//	log:
//	  level: debug
//	  number-color: "#5fafff"
//	  time-layout: kitchen
//
// The init command writes this file from the current flag values.
// Command-line flags override config file values.
//
// # Logging Options
//
//   - --log-level: minimum severity (trace, debug, info, warn, error)
//   - --log-module: only log records from this package path
//   - --log-number-color, --log-timestamp-color, --log-file-color,
//     --log-line-color: field colors (name, 0-255 or #rrggbb)
//   - --log-time-layout: Go time layout or a name such as rfc3339 or none
//   - --log-indent: continuation indent width
//   - --log-color: auto, always or never
//   - --log-source: full, short or base call-site paths
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o toms-logger .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/toms-logger/pprof)
package cli
