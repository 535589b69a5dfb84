package ai

import (
	"context"

	"github.com/squatter-ai/squatter/squatter"
	"golang.org/x/exp/rand"
)

type RandomAI struct {
	color squatter.Color
	r     *rand.Rand
}

func (r *RandomAI) GetMove(_ context.Context, b *squatter.Board) squatter.Move {
	moves := b.EmptyCells(r.color, nil)
	if len(moves) == 0 {
		return squatter.Move{Color: r.color}
	}
	return moves[r.r.Intn(len(moves))]
}

func NewRandom(color squatter.Color, seed int64) *RandomAI {
	return &RandomAI{
		color: color,
		r:     rand.New(rand.NewSource(uint64(seed))),
	}
}
