package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/squatter-ai/squatter/sqtest"
	"github.com/squatter-ai/squatter/squatter"
)

func TestFirstMoveCentral(t *testing.T) {
	ctx := context.Background()
	for seed := int64(1); seed <= 200; seed++ {
		ai := NewMinimax(MinimaxConfig{Size: 8, Color: squatter.White, Seed: seed})
		m := ai.GetMove(ctx, squatter.New(8))
		assert.GreaterOrEqual(t, m.Row, 2)
		assert.LessOrEqual(t, m.Row, 5)
		assert.GreaterOrEqual(t, m.Col, 2)
		assert.LessOrEqual(t, m.Col, 5)
		assert.Equal(t, squatter.White, m.Color)
	}
}

func TestSecondMoveAvoidsDiagonals(t *testing.T) {
	ctx := context.Background()
	b := sqtest.Board(8, "W3,3")
	for seed := int64(1); seed <= 200; seed++ {
		ai := NewMinimax(MinimaxConfig{Size: 8, Color: squatter.Black, Seed: seed})
		m, _, st := ai.Analyze(ctx, b)
		require.Zero(t, st.Depth, "opening move should not search")
		assert.NotEqual(t, 6, m.Row+m.Col, "%+v on anti-diagonal", m)
		assert.NotEqual(t, 0, m.Row-m.Col, "%+v on diagonal", m)
		assert.NoError(t, b.Valid(m))
	}
}

func TestOpeningSmallBoard(t *testing.T) {
	// A 2x2 board has no central square; the search takes over.
	b := squatter.New(2)
	ai := NewMinimax(MinimaxConfig{Size: 2, Color: squatter.White, Seed: 1})
	m := ai.GetMove(context.Background(), b)
	assert.Equal(t, squatter.Move{Color: squatter.White, Row: 0, Col: 0}, m)
}
