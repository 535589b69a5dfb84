package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/squatter-ai/squatter/notation"
	"github.com/squatter-ai/squatter/squatter"
)

// NewCLIPlayer returns a Player that reads moves for color from in,
// prompting on out.
func NewCLIPlayer(color squatter.Color, out io.Writer, in *bufio.Reader) Player {
	return &cliPlayer{color: color, out: out, in: in}
}

type cliPlayer struct {
	color squatter.Color
	out   io.Writer
	in    *bufio.Reader
	err   error
}

// Err reports why the player stopped producing moves.
func (c *cliPlayer) Err() error {
	return c.err
}

func (c *cliPlayer) GetMove(ctx context.Context, b *squatter.Board) squatter.Move {
	for {
		if c.err != nil {
			return squatter.Move{Color: c.color, Row: -1, Col: -1}
		}
		fmt.Fprintf(c.out, "%s> ", c.color)
		line, err := c.in.ReadString('\n')
		if err != nil && line == "" {
			c.err = err
			return squatter.Move{Color: c.color, Row: -1, Col: -1}
		}
		m, err := notation.ParseMove(line)
		if err != nil {
			fmt.Fprintln(c.out, "parse error: ", err)
			continue
		}
		if m.Color == squatter.NoColor {
			m.Color = c.color
		}
		return m
	}
}
