package log

import (
	"path/filepath"
	"runtime"
	"strings"
)

// SourceFormat selects how much of a call site's file path is rendered.
type SourceFormat int

const (
	SourceShort SourceFormat = iota // short
	SourceFull                      // full
	SourceBase                      // base
)

var sourceFormatNames = []string{"short", "full", "base"}

func (f SourceFormat) String() string {
	if f >= 0 && int(f) < len(sourceFormatNames) {
		return sourceFormatNames[f]
	}

	return sourceFormatNames[SourceShort]
}

// ParseSourceFormat parses "short" (parent directory and file name), "full"
// (absolute path) or "base" (file name only).
func ParseSourceFormat(s string) (SourceFormat, error) {
	name := strings.ToLower(strings.TrimSpace(s))

	for i, n := range sourceFormatNames {
		if name == n {
			return SourceFormat(i), nil
		}
	}

	return SourceShort, invalid(ErrInvalidSource, "source", s, sourceFormatNames)
}

// MarshalText implements [encoding.TextMarshaler].
func (f SourceFormat) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (f *SourceFormat) UnmarshalText(text []byte) error {
	format, err := ParseSourceFormat(string(text))
	if err != nil {
		return err
	}

	*f = format

	return nil
}

// Trim shortens file according to f.
func (f SourceFormat) Trim(file string) string {
	if file == "" {
		return ""
	}

	switch f {
	case SourceFull:
		return file
	case SourceBase:
		return filepath.Base(file)
	default:
		dir := filepath.Base(filepath.Dir(file))
		if dir == "." || dir == string(filepath.Separator) {
			return filepath.Base(file)
		}

		return dir + "/" + filepath.Base(file)
	}
}

// frame resolves the call site recorded at pc.
func frame(pc uintptr) (runtime.Frame, bool) {
	if pc == 0 {
		return runtime.Frame{}, false
	}

	fs := runtime.CallersFrames([]uintptr{pc})
	f, _ := fs.Next()

	return f, f.File != ""
}

// packagePath returns the import path of the package defining the fully
// qualified function name fn, for example "github.com/acme/app/store" for
// "github.com/acme/app/store.(*DB).Get".
func packagePath(fn string) string {
	slash := strings.LastIndexByte(fn, '/')

	dot := strings.IndexByte(fn[slash+1:], '.')
	if dot < 0 {
		return fn
	}

	return fn[:slash+1+dot]
}

// matchModule reports whether module lies within the scope named by filter.
// An empty filter matches every module, including unknown ones.
func matchModule(module, filter string) bool {
	filter = strings.TrimSuffix(filter, "/")
	if filter == "" {
		return true
	}

	return module == filter || strings.HasPrefix(module, filter+"/")
}
