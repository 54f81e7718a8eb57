package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/dra11y/toms-logger/log"
)

// loadYAML is a [kong.ConfigurationLoader] that parses YAML config files.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(loadYAML, "/path/to/config.yaml")
//
// Nested mappings are flattened by joining keys with hyphens, so the
// document
//
//	log:
//	  level: debug
//	  number-color: yellow
//	  indent: 2
//
// is applied to Kong flags as
//
//	--log-level=debug
//	--log-number-color=yellow
//	--log-indent=2
//
// Keys may use underscores in place of hyphens. Sequences become
// comma-separated values. Command-line flags override config file values.
func loadYAML(r io.Reader) (kong.Resolver, error) {
	var doc map[string]any

	err := yaml.NewDecoder(r).Decode(&doc)
	if err != nil {
		if errors.Is(err, io.EOF) {
			// Empty document
			return config{}, nil
		}

		return nil, log.ErrReadConfig.Wrap(err)
	}

	cfg := make(config)
	cfg.flatten("", doc)

	return cfg, nil
}

// config implements [kong.Resolver] for flattened YAML documents.
type config map[string]any

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	// Values are validated by the flag mappers during resolution
	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	// Keys were normalized to hyphens by flatten.
	if value, ok := r[flag.Name]; ok {
		return value, nil
	}

	// Not found - return nil to let Kong use defaults
	return nil, nil
}

// flatten stores every scalar of m in r under its hyphen-joined key path.
// Underscores in keys are replaced with hyphens to match Kong flag names.
func (r config) flatten(prefix string, m map[string]any) {
	for k, v := range m {
		key := strings.ReplaceAll(k, "_", "-")
		if prefix != "" {
			key = prefix + "-" + key
		}

		switch v := v.(type) {
		case nil:
			continue

		case map[string]any:
			r.flatten(key, v)

		case map[any]any:
			nested := make(map[string]any, len(v))
			for nk, nv := range v {
				nested[fmt.Sprint(nk)] = nv
			}

			r.flatten(key, nested)

		case []any:
			parts := make([]string, len(v))
			for i, e := range v {
				parts[i] = fmt.Sprint(e)
			}

			r[key] = strings.Join(parts, ",")

		case string, bool:
			r[key] = v

		default:
			// Kong requires numbers as strings for parsing
			r[key] = fmt.Sprint(v)
		}
	}
}
