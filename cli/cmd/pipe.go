package cmd

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/dra11y/toms-logger/log"
)

// maxLineSize bounds the length of a single input line. Longer lines stop
// the command with [ErrReadSource] after everything before them is logged.
var maxLineSize = 16 << 20

// Pipe logs the text read from the source files, or stdin if none were
// given.
type Pipe struct {
	Level     log.Level `default:"info" help:"Severity of the logged lines." short:"l"`
	Paragraph bool      `help:"Log each blank-line separated paragraph as one multi-line message."`
}

// Run executes the pipe command.
func (p *Pipe) Run(ctx context.Context) error {
	src, err := openSources(ctx)
	if err != nil {
		return err
	}
	defer src.Close()

	return p.pipe(ctx, loggerFrom(ctx), src)
}

// pipe logs every non-blank line of r. In paragraph mode consecutive
// non-blank lines are joined into a single message instead.
func (p *Pipe) pipe(ctx context.Context, logger log.Logger, r io.Reader) error {
	var para []string

	flush := func() error {
		if len(para) == 0 {
			return nil
		}

		msg := strings.Join(para, "\n")
		para = para[:0]

		return logger.Emit(ctx, p.Level, msg)
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, min(bufio.MaxScanTokenSize, maxLineSize)), maxLineSize)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			if err := flush(); err != nil {
				return err
			}

			continue
		}

		para = append(para, line)

		if !p.Paragraph {
			if err := flush(); err != nil {
				return err
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return errors.Join(flush(), ErrReadSource.Wrap(err))
	}

	return flush()
}
