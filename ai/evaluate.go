package ai

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/squatter-ai/squatter/squatter"
)

// Evaluate scores b for color c: positive is good for c.
func Evaluate(b *squatter.Board, c squatter.Color, w Weights) float64 {
	sign := 1.0
	if c != squatter.White {
		sign = -1.0
	}
	ws, bs := b.Scores(squatter.White), b.Scores(squatter.Black)
	v := w.Capture * float64(ws.Capture-bs.Capture)
	v += w.Side * float64(ws.Side-bs.Side)
	v += w.Potential * float64(ws.Potential-bs.Potential)
	return sign * v
}

func ExplainScore(out io.Writer, b *squatter.Board, w Weights) error {
	tw := tabwriter.NewWriter(out, 4, 8, 1, '\t', 0)
	ws, bs := b.Scores(squatter.White), b.Scores(squatter.Black)
	fmt.Fprintf(tw, "\twhite\tblack\tweight\n")
	fmt.Fprintf(tw, "capture\t%d\t%d\t%f\n", ws.Capture, bs.Capture, w.Capture)
	fmt.Fprintf(tw, "side\t%d\t%d\t%f\n", ws.Side, bs.Side, w.Side)
	fmt.Fprintf(tw, "potential\t%d\t%d\t%f\n", ws.Potential, bs.Potential, w.Potential)
	fmt.Fprintf(tw, "eval\t%+f\t%+f\n",
		Evaluate(b, squatter.White, w),
		Evaluate(b, squatter.Black, w))
	return tw.Flush()
}
