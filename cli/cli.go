package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/squatter-ai/squatter/ai"
	"github.com/squatter-ai/squatter/notation"
	"github.com/squatter-ai/squatter/squatter"
)

type Player = ai.Player

type CLI struct {
	moves []squatter.Move
	b     *squatter.Board

	Size  int
	Out   io.Writer
	White Player
	Black Player

	// Explain prints the score table after the game.
	Explain bool
	Weights ai.Weights
}

// Play runs a game to completion, white first, and returns the final
// board. Illegal moves are reported and the same side is asked again.
func (c *CLI) Play(ctx context.Context) *squatter.Board {
	c.moves = nil
	c.b = squatter.New(c.Size)
	toMove := squatter.White
	for {
		c.render(toMove)
		if c.b.IsComplete() {
			c.gameOver()
			return c.b
		}
		if ctx.Err() != nil {
			fmt.Fprintln(c.Out, "Game abandoned:", ctx.Err())
			return c.b
		}
		p := c.White
		if toMove == squatter.Black {
			p = c.Black
		}
		m := p.GetMove(ctx, c.b)
		if q, ok := p.(interface{ Err() error }); ok && q.Err() != nil {
			fmt.Fprintln(c.Out, "Game abandoned:", q.Err())
			return c.b
		}
		if m.Color == squatter.NoColor {
			m.Color = toMove
		}
		if m.Color != toMove {
			fmt.Fprintf(c.Out, "illegal move: %s is not %s\n", notation.FormatMove(m), toMove)
			continue
		}
		if e := c.b.Apply(m); e != nil {
			fmt.Fprintln(c.Out, "illegal move:", e)
			continue
		}
		fmt.Fprintf(c.Out, "%d. %s\n", len(c.moves)+1, notation.FormatMove(m))
		c.moves = append(c.moves, m)
		toMove = toMove.Flip()
	}
}

func (c *CLI) Moves() []squatter.Move {
	return c.moves
}

func (c *CLI) gameOver() {
	ws, bs := c.b.Scores(squatter.White), c.b.Scores(squatter.Black)
	fmt.Fprintf(c.Out, "Game Over! ")
	switch r := c.b.Winner(); r {
	case squatter.Draw:
		fmt.Fprintf(c.Out, "Draw.")
	case squatter.WhiteWins, squatter.BlackWins:
		fmt.Fprintf(c.Out, "%s wins.", r)
	}
	fmt.Fprintf(c.Out, "\ncaptures: white=%d black=%d\n", ws.Capture, bs.Capture)
	if c.Explain {
		ai.ExplainScore(c.Out, c.b, c.Weights)
	}
}

func (c *CLI) render(toMove squatter.Color) {
	fmt.Fprintln(c.Out)
	if !c.b.IsComplete() {
		fmt.Fprintf(c.Out, "[%s to play]\n", toMove)
	}
	RenderBoard(c.Out, c.b)
}

// RenderBoard writes b with row and column indices.
func RenderBoard(out io.Writer, b *squatter.Board) {
	w := tabwriter.NewWriter(out, 2, 8, 1, ' ', 0)
	for col := 0; col < b.Size(); col++ {
		fmt.Fprintf(w, "\t%d", col)
	}
	fmt.Fprintf(w, "\n")
	for row := 0; row < b.Size(); row++ {
		fmt.Fprintf(w, "%d.", row)
		for col := 0; col < b.Size(); col++ {
			fmt.Fprintf(w, "\t%c", b.At(row, col).Glyph())
		}
		fmt.Fprintf(w, "\n")
	}
	w.Flush()
	ws, bs := b.Scores(squatter.White), b.Scores(squatter.Black)
	fmt.Fprintf(out, "captures: W:%d B:%d\n", ws.Capture, bs.Capture)
}
