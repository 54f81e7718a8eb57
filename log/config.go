package log

import (
	"errors"
	"io"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
)

// FormatTime defines a function that formats a time.Time value as a string.
type FormatTime func(time.Time) string

// DefaultTimeLayout renders wall-clock time as HH:MM:SS.
const DefaultTimeLayout = "15:04:05"

// DefaultIndent is the width of the indentation that aligns continuation
// lines and the call-site line under the sequence number.
const DefaultIndent = 5

// Default colors of the rendered fields.
const (
	DefaultNumberColor    = ColorBrightCyan
	DefaultTimestampColor = ColorBrightBlack
	DefaultFileColor      = ColorBrightBlack
	DefaultLineColor      = ColorBrightBlue
)

// Config holds the formatting parameters of a [SequenceFormatter].
//
// A Config is a plain value: it is not validated, and it is copied into the
// formatter so later changes to the caller's copy have no effect.
type Config struct {
	// Module restricts output to records logged from the named package and
	// its sub-packages (for example "github.com/acme/app/store").
	// Empty means all modules.
	Module string `yaml:"module"`
	// Level is the minimum severity emitted.
	Level Level `yaml:"level"`

	NumberColor    Color `yaml:"number-color"`
	TimestampColor Color `yaml:"timestamp-color"`
	FileColor      Color `yaml:"file-color"`
	LineColor      Color `yaml:"line-color"`

	// TimeLayout is a [time] layout or one of the named layouts accepted by
	// [WithTimeLayout]. Characters that are not part of a layout element are
	// rendered literally. Empty or "none" omits the timestamp.
	TimeLayout string `yaml:"time-layout"`
	// Indent is the number of spaces inserted after each embedded newline in
	// a message and before the call-site line.
	Indent int `yaml:"indent"`
	// Colors selects when colors are emitted.
	Colors ColorMode `yaml:"color"`
	// Source selects how the call-site file path is rendered.
	Source SourceFormat `yaml:"source"`
}

// DefaultConfig returns the baseline configuration: no module filter,
// [DefaultLevel], the default colors, [DefaultTimeLayout] and
// [DefaultIndent].
func DefaultConfig() Config {
	return Config{
		Level:          DefaultLevel,
		NumberColor:    DefaultNumberColor,
		TimestampColor: DefaultTimestampColor,
		FileColor:      DefaultFileColor,
		LineColor:      DefaultLineColor,
		TimeLayout:     DefaultTimeLayout,
		Indent:         DefaultIndent,
		Colors:         ColorAuto,
		Source:         SourceShort,
	}
}

// MakeConfig returns [DefaultConfig] with opts applied in order.
func MakeConfig(opts ...Option) Config {
	return apply(DefaultConfig(), opts...)
}

// With returns a copy of c with opts applied in order.
func (c Config) With(opts ...Option) Config {
	return apply(c, opts...)
}

// LoadConfig reads a YAML document from r on top of [DefaultConfig].
// Keys missing from the document keep their default values; an empty
// document yields the defaults.
//
//	level: debug
//	module: github.com/acme/app
//	line-color: bright-magenta
//	time-layout: stampmilli
func LoadConfig(r io.Reader) (Config, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return DefaultConfig(), ErrReadConfig.Wrap(err)
	}

	// A null document (empty, comments only or a bare "---") would zero
	// every field of the target, so only decode documents with keys.
	var keys map[string]any
	if err := yaml.Unmarshal(b, &keys); err != nil && !errors.Is(err, io.EOF) {
		return DefaultConfig(), ErrReadConfig.Wrap(err)
	}

	if len(keys) == 0 {
		return DefaultConfig(), nil
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return DefaultConfig(), ErrReadConfig.Wrap(err)
	}

	return cfg, nil
}

// Marshal encodes c as a YAML document readable by [LoadConfig].
func (c Config) Marshal() ([]byte, error) {
	b, err := yaml.Marshal(c)
	if err != nil {
		return nil, ErrWriteConfig.Wrap(err)
	}

	return b, nil
}

// formatTime returns the timestamp renderer for c.TimeLayout.
func (c Config) formatTime() FormatTime {
	return makeFormatTimeFunc(c.TimeLayout)
}

// timeLayout maps named layouts to their corresponding time.Time constants.
var timeLayout = map[string]string{
	"rfc3339":     time.RFC3339,
	"rfc3339nano": time.RFC3339Nano,
	"ansic":       time.ANSIC,
	"unixdate":    time.UnixDate,
	"rubydate":    time.RubyDate,
	"rfc822":      time.RFC822,
	"rfc822z":     time.RFC822Z,
	"rfc850":      time.RFC850,
	"kitchen":     time.Kitchen,
	"datetime":    time.DateTime,
	"clock":       DefaultTimeLayout,
	"timeonly":    time.TimeOnly,

	"stamp": time.Stamp,
	"none":  "",

	"stampmilli": time.StampMilli,
	"milli":      time.StampMilli,
	"millis":     time.StampMilli,
	"ms":         time.StampMilli,

	"stampmicro": time.StampMicro,
	"micro":      time.StampMicro,
	"micros":     time.StampMicro,
	"us":         time.StampMicro,

	"stampnano": time.StampNano,
	"nano":      time.StampNano,
	"nanos":     time.StampNano,
	"ns":        time.StampNano,
}

// TimeLayouts returns the sorted layout names accepted by [WithTimeLayout]
// in place of a Go time layout.
func TimeLayouts() []string {
	return slices.Sorted(maps.Keys(timeLayout))
}

func makeFormatTimeFunc(layout string) FormatTime {
	if strings.TrimSpace(layout) == "" {
		return func(time.Time) string { return "" }
	}

	// Strip punctuation only for lookup.
	// Custom layouts are used verbatim.
	key := strings.Map(
		func(r rune) rune {
			if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
				return r
			}

			return -1
		},
		strings.ToLower(layout),
	)

	if std, ok := timeLayout[key]; ok {
		if std == "" {
			return func(time.Time) string { return "" }
		}

		layout = std
	}

	return func(t time.Time) string { return t.Format(layout) }
}
