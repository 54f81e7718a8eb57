package log

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/dra11y/toms-logger/pkg"
)

var (
	ErrAlreadyInitialized = pkg.NewError("logger already initialized")
	ErrInvalidLevel       = pkg.NewError("invalid level")
	ErrInvalidColor       = pkg.NewError("invalid color")
	ErrInvalidColorMode   = pkg.NewError("invalid color mode")
	ErrInvalidSource      = pkg.NewError("invalid source format")
	ErrReadConfig         = pkg.NewError("read configuration")
	ErrWriteConfig        = pkg.NewError("write configuration")
)

// invalid returns sentinel annotated with the rejected input, wrapping a
// hint that names the closest candidate when one exists.
func invalid(sentinel *pkg.Error, key, input string, candidates []string) error {
	err := sentinel.With(slog.String(key, input))

	if len(candidates) == 0 {
		return err.Wrap(fmt.Errorf("%q", input))
	}

	if best, ok := suggest(input, candidates); ok {
		return err.Wrap(fmt.Errorf("%q (did you mean %q?)", input, best))
	}

	return err.Wrap(fmt.Errorf("%q (expected one of: %s)",
		input, strings.Join(candidates, ", ")))
}

// suggest returns the best fuzzy match for input among candidates.
func suggest(input string, candidates []string) (string, bool) {
	pattern := strings.ToLower(strings.TrimSpace(input))
	if pattern == "" {
		return "", false
	}

	matches := fuzzy.Find(pattern, candidates)
	if len(matches) == 0 {
		return "", false
	}

	return matches[0].Str, true
}
