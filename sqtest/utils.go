package sqtest

import (
	"github.com/squatter-ai/squatter/notation"
	"github.com/squatter-ai/squatter/squatter"
)

func Move(s string) squatter.Move {
	m, e := notation.ParseMove(s)
	if e != nil {
		panic(e)
	}
	return m
}

func Moves(s string) []squatter.Move {
	ms, e := notation.ParseMoves(s)
	if e != nil {
		panic(e)
	}
	return ms
}

// Board plays ms on a fresh board of the given size. Moves without a
// color alternate starting with white.
func Board(size int, ms string) *squatter.Board {
	b := squatter.New(size)
	next := squatter.White
	for _, m := range Moves(ms) {
		if m.Color == squatter.NoColor {
			m.Color = next
		}
		if e := b.Apply(m); e != nil {
			panic(e)
		}
		next = m.Color.Flip()
	}
	return b
}
