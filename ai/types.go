package ai

import (
	"context"

	"github.com/squatter-ai/squatter/squatter"
)

// Player chooses a move for its own color on b. It must not modify b.
type Player interface {
	GetMove(ctx context.Context, b *squatter.Board) squatter.Move
}
