package cli

import (
	"context"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/dra11y/toms-logger/cli/cmd"
	"github.com/dra11y/toms-logger/pkg"
)

// CLI is the top-level command-line interface for toms-logger.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Version kong.VersionFlag `help:"Print version and exit" short:"V"`

	Source []string `help:"Input source file(s) or '-' for stdin" name:"source" short:"s" type:"existingfile"`

	Init cmd.Init `cmd:"" help:"Write the effective configuration file"`
	Pipe cmd.Pipe `cmd:"" help:"Log each line read from the sources"`

	Emit cmd.Emit `cmd:"" default:"withargs" help:"Log messages"`
}

// Run executes the toms-logger CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	return run(ctx, os.Stdout, os.Stderr, exit, args...)
}

// run is Run with the output streams made explicit. Help and usage go to
// stdout, log lines go to stderr.
func run(
	ctx context.Context,
	stdout, stderr io.Writer,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	err := pkg.MkdirAll()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Parse command line
	parser, err := newParser(&cli, pkg.ConfigPath(),
		kong.Exit(exit),
		kong.Writers(stdout, stderr),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger, err := cli.Log.start(ctx, stderr)
	if err != nil {
		return err
	}

	// Stuff additional context values for use by commands
	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithSourceFiles(ctx, cli.Source)
	ctx = cmd.WithLogger(ctx, logger)

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx, logger)()

	// Execute the selected command
	return ktx.Run(ctx, &cli)
}

// newParser returns the parser for cli, reading flag defaults from the YAML
// file at configFilePath if it exists.
func newParser(
	cli *CLI,
	configFilePath string,
	options ...kong.Option,
) (*kong.Kong, error) {
	vars := kong.Vars{
		"version":            pkg.Version,
		cmd.ConfigIdentifier: configFilePath,
		cmd.CacheIdentifier:  pkg.CacheDir(),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	return kong.New(cli,
		append([]kong.Option{
			kong.Name(pkg.Name),
			kong.Description(pkg.Description),
			kong.UsageOnError(),
			kong.ExplicitGroups(
				[]kong.Group{cli.Log.group(), cli.Pprof.group()},
			),
			kong.ConfigureHelp(
				kong.HelpOptions{
					Compact:             true,
					Summary:             true,
					Tree:                true,
					FlagsLast:           false,
					NoAppSummary:        false,
					NoExpandSubcommands: true,
				}),
			kong.Configuration(loadYAML, configFilePath),
			vars,
		}, options...)...,
	)
}
