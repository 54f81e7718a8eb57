package cmd

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/dra11y/toms-logger/log"
)

// ContextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

type loggerKey struct{}

// WithLogger returns a new context.Context carrying l for use by commands.
func WithLogger(ctx context.Context, l log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFrom returns the logger stored by WithLogger, or a logger built from
// the default configuration writing to stderr if none was stored.
func loggerFrom(ctx context.Context) log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(log.Logger); ok {
		return l
	}

	return log.New(os.Stderr, log.DefaultConfig())
}

type sourcesKey struct{}

// stdinSource names standard input in a source list.
const stdinSource = "-"

// WithSourceFiles returns a new context.Context carrying the source paths
// given on the command line. The files are opened by the command that reads
// them.
func WithSourceFiles(ctx context.Context, sources []string) context.Context {
	return context.WithValue(ctx, sourcesKey{}, slices.Clone(sources))
}

func sourcesFrom(ctx context.Context) []string {
	sources, _ := ctx.Value(sourcesKey{}).([]string)

	return sources
}

// sourceReader reads the opened source files in order, then stdin if it
// was named. Close closes the files but never stdin.
type sourceReader struct {
	io.Reader

	files []*os.File
}

func (s *sourceReader) Close() error {
	var errs []error

	for _, f := range s.files {
		if err := f.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// openSources opens the source files stored by WithSourceFiles as one
// reader. With no sources it reads stdin.
//
// Each file is read at most once, even when named through different paths
// or symlinks. Every "-", and any path that resolves to stdin, collapses
// into a single read of stdin after all regular files.
func openSources(ctx context.Context) (io.ReadCloser, error) {
	sources := sourcesFrom(ctx)
	if len(sources) == 0 {
		return io.NopCloser(os.Stdin), nil
	}

	var (
		src      sourceReader
		hasStdin bool
	)

	stdinInfo, _ := os.Stdin.Stat()
	stdinKey, stdinOK := makeFileKey(stdinInfo)

	seen := make(map[fileKey]struct{})

	for _, path := range sources {
		if path == stdinSource {
			hasStdin = true

			continue
		}

		file, err := openFile(path)
		if err != nil {
			_ = src.Close()

			return nil, ErrReadSource.With(slog.String("file", path)).Wrap(err)
		}

		// Files without an inode are never treated as duplicates.
		info, _ := file.Stat()
		if key, ok := makeFileKey(info); ok {
			_, dup := seen[key]
			isStdin := stdinOK && key == stdinKey

			if isStdin {
				hasStdin = true
			}

			if dup || isStdin {
				_ = file.Close()

				continue
			}

			seen[key] = struct{}{}
		}

		src.files = append(src.files, file)
	}

	readers := make([]io.Reader, 0, len(src.files)+1)
	for _, f := range src.files {
		readers = append(readers, f)
	}

	if hasStdin {
		readers = append(readers, os.Stdin)
	}

	src.Reader = io.MultiReader(readers...)

	return &src, nil
}

// fileKey identifies a file by its device and inode numbers.
type fileKey struct {
	dev uint64
	ino uint64
}

// openFile opens path with symlinks resolved.
func openFile(path string) (*os.File, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return nil, err
	}

	return os.Open(resolved)
}

// makeFileKey returns the identity of info, or false if info is nil or its
// Sys() data is not a *syscall.Stat_t.
func makeFileKey(info os.FileInfo) (key fileKey, ok bool) {
	if info == nil {
		return key, false
	}

	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return key, false
	}

	return fileKey{dev: uint64(stat.Dev), ino: stat.Ino}, true
}
