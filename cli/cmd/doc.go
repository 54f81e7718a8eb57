// Package cmd implements the toms-logger subcommands.
//
// Commands receive their dependencies through the [context.Context] passed
// to Run: the parsed [kong.Context] ([WithContext]), the input sources
// ([WithSourceFiles]) and the configured logger ([WithLogger]).
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the YAML configuration file.
	ConfigIdentifier = "config"
)
