// Package terminal is the text front-end of the point of sale.
package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sangkips/lanchonete-pos/internal/pos"
)

// Shell reads commands and dispatches them to a pos.App.
type Shell struct {
	app   *pos.App
	lines *LineReader
	out   io.Writer
}

// NewShell creates a shell for app.
func NewShell(app *pos.App, lines *LineReader, out io.Writer) *Shell {
	return &Shell{app: app, lines: lines, out: out}
}

// Run loads the initial data and processes commands until quit, end of
// input or ctx is done.
func (s *Shell) Run(ctx context.Context) error {
	s.app.Dispatch(ctx, pos.Start{})
	fmt.Fprintln(s.out, "Digite help para ver os comandos.")

	for {
		line, ok := s.lines.ReadLine(ctx, "> ")
		if !ok {
			return ctx.Err()
		}

		cmd, err := parseCommand(line, s.app.State())
		switch {
		case errors.Is(err, errEmpty):
			continue
		case err != nil:
			fmt.Fprintln(s.out, err)
			continue
		case cmd.quit:
			return nil
		case cmd.help:
			fmt.Fprintln(s.out, Usage)
			continue
		}

		s.app.Dispatch(ctx, cmd.action)
	}
}
