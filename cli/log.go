package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/dra11y/toms-logger/log"
)

// logConfig holds the --log-* flags. Each flag mirrors a field of
// [log.Config] and parses through the same text unmarshalers, so invalid
// values are rejected with a suggestion during flag parsing.
type logConfig struct {
	Level          log.Level        `default:"${logLevel}"          help:"Minimum severity (${logLevels})."`
	Module         string           `help:"Only log records from this package path or its sub-packages."`
	NumberColor    log.Color        `default:"${logNumberColor}"    help:"Color of sequence numbers."`
	TimestampColor log.Color        `default:"${logTimestampColor}" help:"Color of timestamps."`
	FileColor      log.Color        `default:"${logFileColor}"      help:"Color of call-site file paths."`
	LineColor      log.Color        `default:"${logLineColor}"      help:"Color of call-site line numbers."`
	TimeLayout     string           `default:"${logTimeLayout}"     help:"Timestamp layout: a Go time layout, one of ${logTimeLayouts}, or none."`
	Indent         int              `default:"${logIndent}"         help:"Width of the continuation indent."`
	Color          log.ColorMode    `default:"auto"                 help:"When to emit colors (auto, always, never)."`
	Source         log.SourceFormat `default:"short"                help:"Call-site path format (full, short, base)."`
}

func (*logConfig) vars() kong.Vars {
	d := log.DefaultConfig()

	return kong.Vars{
		"logLevel":          d.Level.String(),
		"logLevels":         strings.Join(slices.Collect(log.Levels()), ", "),
		"logNumberColor":    d.NumberColor.String(),
		"logTimestampColor": d.TimestampColor.String(),
		"logFileColor":      d.FileColor.String(),
		"logLineColor":      d.LineColor.String(),
		"logTimeLayout":     d.TimeLayout,
		"logTimeLayouts":    strings.Join(log.TimeLayouts(), ", "),
		"logIndent":         strconv.Itoa(d.Indent),
	}
}

func (*logConfig) group() kong.Group {
	var group kong.Group

	group.Key = "log"
	group.Title = "Logging options"

	return group
}

// config returns the logger configuration selected by the flags.
func (f *logConfig) config() log.Config {
	return log.MakeConfig(
		log.WithLevel(f.Level),
		log.WithModule(f.Module),
		log.WithNumberColor(f.NumberColor),
		log.WithTimestampColor(f.TimestampColor),
		log.WithFileColor(f.FileColor),
		log.WithLineColor(f.LineColor),
		log.WithTimeLayout(f.TimeLayout),
		log.WithIndent(f.Indent),
		log.WithColorMode(f.Color),
		log.WithSource(f.Source),
	)
}

// start builds the logger for w and installs it as the process-wide
// default. If a logger was already installed, for example by an earlier
// call to [Run] in the same process, the new logger is still returned for
// use by the commands but the default is left unchanged.
func (f *logConfig) start(ctx context.Context, w io.Writer) (log.Logger, error) {
	cfg := f.config()

	l, err := log.Init(w, cfg)
	if errors.Is(err, log.ErrAlreadyInitialized) {
		l = log.New(w, cfg)
	} else if err != nil {
		return log.Logger{}, err
	}

	l.DebugContext(ctx, "logger initialized",
		slog.String("level", f.Level.String()),
		slog.String("module", f.Module),
		slog.String("time", f.TimeLayout),
		slog.String("color", f.Color.String()),
		slog.String("source", f.Source.String()),
		slog.Bool("default", err == nil),
	)

	return l, nil
}
