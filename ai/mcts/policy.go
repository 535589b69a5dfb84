package mcts

import (
	"context"

	"golang.org/x/exp/rand"

	"github.com/squatter-ai/squatter/ai"
	"github.com/squatter-ai/squatter/squatter"
)

// A PolicyFunc picks the next move for toMove during a playout. The
// returned move must be legal on b.
type PolicyFunc func(ctx context.Context, r *rand.Rand, b *squatter.Board, toMove squatter.Color) squatter.Move

func RandomPolicy(_ context.Context, r *rand.Rand, b *squatter.Board, toMove squatter.Color) squatter.Move {
	moves := b.EmptyCells(toMove, nil)
	return moves[r.Intn(len(moves))]
}

// NewMinimaxPolicy plays out with a shallow minimax search for each
// side.
func NewMinimaxPolicy(cfg *MCTSConfig, depth int) PolicyFunc {
	var players [3]*ai.MinimaxAI
	for _, c := range []squatter.Color{squatter.White, squatter.Black} {
		players[c] = ai.NewMinimax(ai.MinimaxConfig{
			Size:  cfg.Size,
			Color: c,
			Depth: depth,
			Seed:  cfg.Seed,
		})
	}
	return func(ctx context.Context, r *rand.Rand, b *squatter.Board, toMove squatter.Color) squatter.Move {
		m := players[toMove].GetMove(ctx, b)
		if b.Valid(m) != nil {
			return RandomPolicy(ctx, r, b, toMove)
		}
		return m
	}
}
