package log

// Option applies a configuration option to a Config.
type Option func(Config) Config

// apply applies multiple options to a config.
func apply(cfg Config, opts ...Option) Config {
	for _, opt := range opts {
		if opt != nil {
			cfg = opt(cfg)
		}
	}

	return cfg
}

// WithDefaults returns a functional option that discards every prior
// setting in favor of [DefaultConfig].
func WithDefaults() Option {
	return func(Config) Config { return DefaultConfig() }
}

// WithModule returns a functional option that restricts output to records
// logged from the named package and its sub-packages.
// An empty module removes the restriction.
func WithModule(module string) Option {
	return func(c Config) Config {
		c.Module = module

		return c
	}
}

// WithLevel returns a functional option that sets the minimum log level.
// Messages below this level are discarded.
func WithLevel(level Level) Option {
	return func(c Config) Config {
		c.Level = level

		return c
	}
}

// WithNumberColor returns a functional option that sets the color of the
// sequence number.
func WithNumberColor(color Color) Option {
	return func(c Config) Config {
		c.NumberColor = color

		return c
	}
}

// WithTimestampColor returns a functional option that sets the color of the
// timestamp.
func WithTimestampColor(color Color) Option {
	return func(c Config) Config {
		c.TimestampColor = color

		return c
	}
}

// WithFileColor returns a functional option that sets the color of the
// call-site file path.
func WithFileColor(color Color) Option {
	return func(c Config) Config {
		c.FileColor = color

		return c
	}
}

// WithLineColor returns a functional option that sets the color of the
// call-site line number.
func WithLineColor(color Color) Option {
	return func(c Config) Config {
		c.LineColor = color

		return c
	}
}

// WithTimeLayout returns a functional option that sets the layout used to
// format log timestamps.
//
// The layout string can be one of the named layouts from the [time] package
// (for example, "RFC3339", "Kitchen" or "StampMilli"), "clock" for
// HH:MM:SS, or "none" to omit timestamps. Otherwise, it is passed verbatim
// to [time.Time.Format].
func WithTimeLayout(layout string) Option {
	return func(c Config) Config {
		c.TimeLayout = layout

		return c
	}
}

// WithIndent returns a functional option that sets the continuation indent
// width. Negative widths are treated as zero.
func WithIndent(width int) Option {
	return func(c Config) Config {
		c.Indent = max(width, 0)

		return c
	}
}

// WithColorMode returns a functional option that selects when colors are
// emitted.
func WithColorMode(mode ColorMode) Option {
	return func(c Config) Config {
		c.Colors = mode

		return c
	}
}

// WithSource returns a functional option that selects how call-site file
// paths are rendered.
func WithSource(format SourceFormat) Option {
	return func(c Config) Config {
		c.Source = format

		return c
	}
}
