// Command toms-logger writes sequence-numbered, colorized log lines.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"

	"github.com/dra11y/toms-logger/cli"
	"github.com/dra11y/toms-logger/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := cli.Run(ctx, os.Exit, os.Args[1:]...)

	stop()

	switch {
	case err == nil:
	case errors.Is(err, context.Canceled):
		os.Exit(130)
	default:
		// The error's LogValue carries its attributes.
		log.Error("run failed", slog.Any("error", err))
		os.Exit(1)
	}
}
