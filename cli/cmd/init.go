package cmd

import (
	"context"
	"encoding"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/dra11y/toms-logger/profile"
)

// configFileMode is the permission mode of a written configuration file.
const configFileMode os.FileMode = 0o600

// Init generates a configuration file with current flag values.
type Init struct {
	Force  bool `help:"Overwrite existing configuration file" short:"f"`
	Stdout bool `help:"Print the configuration instead of writing the file"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) error {
	ktx := kongContextFrom(ctx)
	if ktx == nil {
		panic("internal error: kong context undefined")
	}

	doc, err := yaml.Marshal(i.document(ktx))
	if err != nil {
		return ErrYAMLMarshal.Wrap(err)
	}

	if i.Stdout {
		_, err = ktx.Stdout.Write(doc)

		return err
	}

	confPath, ok := ktx.Model.Vars()[ConfigIdentifier]
	if !ok {
		panic("internal error: config path undefined")
	}

	// Check if file exists and force not set
	_, err = os.Stat(confPath)
	if err == nil && !i.Force {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			With(slog.Bool("exists", true)).
			Wrap(ErrFileExists)
	}

	err = os.WriteFile(confPath, doc, configFileMode)
	if err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(err)
	}

	loggerFrom(ctx).DebugContext(ctx,
		"initialized configuration file",
		slog.String("path", confPath),
	)

	return nil
}

// document maps the current value of every persistent top-level flag to
// the YAML document read back by the configuration resolver. Flags in a
// group are nested under the group key with the group prefix removed, so
// --log-level becomes log.level.
func (i *Init) document(ktx *kong.Context) map[string]any {
	doc := make(map[string]any)

	prefixIgnore := []string{"help", "version", profile.Tag}

	for _, flag := range ktx.Model.Flags {
		if flag.Hidden || slices.ContainsFunc(prefixIgnore, func(s string) bool {
			return strings.HasPrefix(flag.Name, s)
		}) {
			continue
		}

		val, ok := flagValue(ktx.FlagValue(flag))
		if !ok || (val == "" && flag.Default == "") {
			continue
		}

		key := flag.Name

		if flag.Group != nil && strings.HasPrefix(key, flag.Group.Key+"-") {
			group, ok := doc[flag.Group.Key].(map[string]any)
			if !ok {
				group = make(map[string]any)
				doc[flag.Group.Key] = group
			}

			group[strings.TrimPrefix(key, flag.Group.Key+"-")] = val

			continue
		}

		doc[key] = val
	}

	return doc
}

// flagValue converts a parsed flag value to a YAML scalar or sequence.
func flagValue(v any) (any, bool) {
	switch v := v.(type) {
	case nil:
		return nil, false

	case encoding.TextMarshaler:
		b, err := v.MarshalText()
		if err != nil {
			return nil, false
		}

		return string(b), true

	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return v, true

	case []string:
		return v, len(v) > 0

	default:
		return fmt.Sprint(v), true
	}
}
