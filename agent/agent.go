// Package agent implements the contract a referee uses to drive a
// Squatter AI: initialise it, ask it for moves, tell it about the
// opponent's moves and query the result.
package agent

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/squatter-ai/squatter/ai"
	"github.com/squatter-ai/squatter/squatter"
)

var (
	ErrInvalidConfig = errors.New("invalid board size or color")
	ErrInvalidMove   = errors.New("invalid move")
	ErrGameOver      = errors.New("game is over")
)

type Agent struct {
	cfg   ai.MinimaxConfig
	color squatter.Color
	board *squatter.Board
	mm    *ai.MinimaxAI
}

// New returns an agent playing color on a size x size board. Search
// settings other than Size and Color are taken from cfg.
func New(size int, color squatter.Color, cfg ai.MinimaxConfig) (*Agent, error) {
	a := &Agent{cfg: cfg}
	if err := a.Init(size, color); err != nil {
		return nil, err
	}
	return a, nil
}

// Init resets the agent for a new game.
func (a *Agent) Init(size int, color squatter.Color) error {
	if size < 0 || size > squatter.MaxSize {
		return ErrInvalidConfig
	}
	if color != squatter.White && color != squatter.Black {
		return ErrInvalidConfig
	}
	a.color = color
	a.board = squatter.New(size)
	a.cfg.Size = size
	a.cfg.Color = color
	a.mm = ai.NewMinimax(a.cfg)
	return nil
}

func (a *Agent) Color() squatter.Color {
	return a.color
}

// MakeMove chooses a move and applies it to the agent's own board.
func (a *Agent) MakeMove(ctx context.Context) (squatter.Move, error) {
	if a.board.IsComplete() {
		return squatter.Move{}, ErrGameOver
	}
	m := a.mm.GetMove(ctx, a.board)
	if err := a.board.Apply(m); err != nil {
		return squatter.Move{}, fmt.Errorf("%w: %w", ErrInvalidMove, err)
	}
	return m, nil
}

// OpponentMove records a move by the other side. Moves carrying the
// agent's own color are ignored.
func (a *Agent) OpponentMove(m squatter.Move) error {
	if m.Color == a.color {
		return nil
	}
	if err := a.board.Apply(m); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMove, err)
	}
	return nil
}

func (a *Agent) Winner() squatter.Result {
	return a.board.Winner()
}

func (a *Agent) PrintBoard(w io.Writer) error {
	_, err := io.WriteString(w, a.board.String())
	return err
}

// Board returns the agent's view of the game. Callers must not modify
// it.
func (a *Agent) Board() *squatter.Board {
	return a.board
}
