package cmd

import "github.com/dra11y/toms-logger/pkg"

var (
	ErrYAMLMarshal = pkg.NewError("marshal YAML")
	ErrWriteConfig = pkg.NewError("write configuration file")
	ErrFileExists  = pkg.NewError("file exists (use --force to overwrite)")
	ErrNoInput     = pkg.NewError("no messages given and no source to read")
	ErrReadSource  = pkg.NewError("read source")
	ErrEmit        = pkg.NewError("emit message")

	ErrInvalidCount = pkg.NewError("count must be at least 1")
)
