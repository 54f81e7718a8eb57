package log

import (
	"iter"
	"log/slog"
	"strings"
)

// Level represents the severity of a log message.
type Level slog.Level

const levelTraceMask = -8

const (
	LevelTrace Level = Level(levelTraceMask)  // trace
	LevelDebug Level = Level(slog.LevelDebug) // debug
	LevelInfo  Level = Level(slog.LevelInfo)  // info
	LevelWarn  Level = Level(slog.LevelWarn)  // warn
	LevelError Level = Level(slog.LevelError) // error
)

// DefaultLevel is the default log level.
const DefaultLevel = LevelInfo

// levels lists every defined level from least to most severe.
var levels = []Level{
	LevelTrace,
	LevelDebug,
	LevelInfo,
	LevelWarn,
	LevelError,
}

// Levels returns an iterator over the names of all defined log levels.
func Levels() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, level := range levels {
			if !yield(level.String()) {
				return
			}
		}
	}
}

// Level implements [slog.Leveler].
func (l Level) Level() slog.Level { return slog.Level(l) }

// bucket maps any level onto the nearest defined level at or below it.
func (l Level) bucket() Level {
	switch {
	case l >= LevelError:
		return LevelError
	case l >= LevelWarn:
		return LevelWarn
	case l >= LevelInfo:
		return LevelInfo
	case l >= LevelDebug:
		return LevelDebug
	default:
		return LevelTrace
	}
}

// Token returns the fixed-width, three-letter severity token for l.
func (l Level) Token() string {
	switch l.bucket() {
	case LevelError:
		return "ERR"
	case LevelWarn:
		return "WRN"
	case LevelInfo:
		return "INF"
	case LevelDebug:
		return "DBG"
	default:
		return "TRC"
	}
}

func (l Level) String() string {
	switch l.bucket() {
	case LevelError:
		return "error"
	case LevelWarn:
		return "warn"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	default:
		return "trace"
	}
}

// ParseLevel parses a level name ("error", "warn", "info", "debug",
// "trace"), its severity token ("ERR", "WRN", ...) or "warning".
// Matching ignores case and surrounding whitespace.
func ParseLevel(s string) (Level, error) {
	name := strings.ToLower(strings.TrimSpace(s))

	for _, level := range levels {
		if name == level.String() || name == strings.ToLower(level.Token()) {
			return level, nil
		}
	}

	if name == "warning" {
		return LevelWarn, nil
	}

	return DefaultLevel, invalid(ErrInvalidLevel, "level", s, levelNames())
}

// MarshalText implements [encoding.TextMarshaler].
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (l *Level) UnmarshalText(text []byte) error {
	level, err := ParseLevel(string(text))
	if err != nil {
		return err
	}

	*l = level

	return nil
}

func levelNames() []string {
	names := make([]string, 0, len(levels))
	for name := range Levels() {
		names = append(names, name)
	}

	return names
}
