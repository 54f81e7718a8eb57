package cmd

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/dra11y/toms-logger/log"
)

// Emit logs each of its arguments as a message.
type Emit struct {
	Level   log.Level `default:"info" help:"Severity of the emitted messages."          short:"l"`
	Count   int       `default:"1"    help:"Number of times each message is logged."    short:"n"`
	Workers int       `default:"1"    help:"Number of goroutines logging concurrently." short:"w"`

	Messages []string `arg:"" help:"Messages to log." optional:""`
}

// Run executes the emit command.
//
// With a single worker the messages are logged in argument order, Count
// times over. With more workers the order is unspecified but every line
// still receives a distinct sequence number.
func (e *Emit) Run(ctx context.Context) error {
	if len(e.Messages) == 0 {
		return ErrNoInput
	}

	if e.Count < 1 {
		return ErrInvalidCount.With(slog.Int("count", e.Count))
	}

	return e.emit(ctx, loggerFrom(ctx))
}

func (e *Emit) emit(ctx context.Context, logger log.Logger) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(e.Workers, 1))

	for range e.Count {
		for _, msg := range e.Messages {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}

				if err := logger.Emit(ctx, e.Level, msg); err != nil {
					return ErrEmit.With(slog.String("message", msg)).Wrap(err)
				}

				return nil
			})
		}
	}

	return g.Wait()
}
