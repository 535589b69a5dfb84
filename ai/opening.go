package ai

import "github.com/squatter-ai/squatter/squatter"

const openingTries = 64

// noOpponent stands in for the opponent's last move before one has
// been played.
var noOpponent = squatter.Move{Row: -5, Col: -10}

// opening picks a random cell in the central square [2, size-3],
// avoiding the diagonals through the opponent's last move. The
// rejection test is
//
//	(placed == 1 && same anti-diagonal) || same diagonal
//
// so the diagonal check applies even before the opponent has moved.
func (m *MinimaxAI) opening(b *squatter.Board) (squatter.Move, bool) {
	span := b.Size() - 4
	if span < 1 {
		span = 1
	}
	last := noOpponent
	if l, ok := b.Last(); ok && l.Color != m.cfg.Color {
		last = l
	}
	placed := b.Placed()
	for i := 0; i < openingTries; i++ {
		mv := squatter.Move{
			Color: m.cfg.Color,
			Row:   2 + m.rand.Intn(span),
			Col:   2 + m.rand.Intn(span),
		}
		if (placed == 1 && mv.Row+mv.Col == last.Row+last.Col) ||
			mv.Row-mv.Col == last.Row-last.Col {
			continue
		}
		if b.Valid(mv) != nil {
			continue
		}
		return mv, true
	}
	return squatter.Move{}, false
}
