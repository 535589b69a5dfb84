package ai

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/squatter-ai/squatter/sqtest"
	"github.com/squatter-ai/squatter/squatter"
)

func TestEvaluate(t *testing.T) {
	b := sqtest.Board(5, "W0,0 B4,4 W1,1 B2,3")
	ws, bs := b.Scores(squatter.White), b.Scores(squatter.Black)
	require.Equal(t, squatter.Scores{Side: 1, Potential: 2}, ws)
	require.Equal(t, squatter.Scores{Side: 1}, bs)

	w := Weights{Capture: 1, Side: 10, Potential: 100}
	assert.Equal(t, 200.0, Evaluate(b, squatter.White, w))
	assert.Equal(t, -200.0, Evaluate(b, squatter.Black, w))
}

func TestEvaluateAntisymmetric(t *testing.T) {
	boards := []*squatter.Board{
		squatter.New(6),
		sqtest.Board(6, "W2,2 B3,3 W2,3 B1,1"),
		sqtest.Board(5, "B1,2 B2,1 B3,2 B2,3 W0,0 W4,4"),
	}
	for i, b := range boards {
		for placed := 0; placed < 40; placed += 7 {
			w := DefaultSchedule.At(placed)
			assert.Equal(t, Evaluate(b, squatter.White, w), -Evaluate(b, squatter.Black, w), "board %d", i)
		}
	}
}

func TestScheduleAt(t *testing.T) {
	cases := []struct {
		placed int
		row    int
	}{
		{0, 0}, {15, 0}, {16, 0}, {17, 1}, {23, 7}, {30, 14}, {31, 14}, {100, 14},
	}
	for _, tc := range cases {
		assert.Equal(t, DefaultSchedule[tc.row], DefaultSchedule.At(tc.placed), "placed=%d", tc.placed)
	}
}

func TestDepthFor(t *testing.T) {
	cases := []struct {
		size, placed, depth int
	}{
		{6, 2, 3}, {6, 10, 3}, {6, 11, 4},
		{7, 2, 3}, {7, 24, 3}, {7, 25, 4},
		{5, 2, 4}, {8, 2, 4},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.depth, DepthFor(tc.size, tc.placed), "size=%d placed=%d", tc.size, tc.placed)
	}
}

func TestExplainScore(t *testing.T) {
	b := sqtest.Board(5, "B1,2 B2,1 B3,2 B2,3")
	var buf bytes.Buffer
	require.NoError(t, ExplainScore(&buf, b, Weights{Capture: 1}))
	out := buf.String()
	assert.Contains(t, out, "capture")
	assert.Contains(t, out, "potential")
	assert.Regexp(t, `capture\s+0\s+1`, out)
}

func TestRandomAI(t *testing.T) {
	b := sqtest.Board(3, "W0,0 B0,1 W0,2 B1,0 W1,1 B1,2 W2,0 B2,1")
	r := NewRandom(squatter.White, 1)
	m := r.GetMove(context.Background(), b)
	assert.Equal(t, squatter.Move{Color: squatter.White, Row: 2, Col: 2}, m)
}
