package squatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustApply(t *testing.T, b *Board, c Color, cells ...[2]int) {
	t.Helper()
	for _, rc := range cells {
		require.NoError(t, b.Apply(Move{Color: c, Row: rc[0], Col: rc[1]}), "apply %s %v", c, rc)
	}
}

func TestNewBoard(t *testing.T) {
	b := New(6)
	assert.Equal(t, 6, b.Size())
	assert.False(t, b.IsComplete())
	assert.Equal(t, InProgress, b.Winner())
	_, ok := b.Last()
	assert.False(t, ok)
	for row := 0; row < 6; row++ {
		for col := 0; col < 6; col++ {
			assert.True(t, b.At(row, col).IsEmpty())
		}
	}
}

func TestApplyRejects(t *testing.T) {
	b := New(6)
	mustApply(t, b, White, [2]int{2, 2})
	before := b.String()

	cases := []struct {
		m   Move
		err error
	}{
		{Move{Color: Black, Row: 2, Col: 2}, ErrOccupied},
		{Move{Color: White, Row: 2, Col: 2}, ErrOccupied},
		{Move{Color: Black, Row: 6, Col: 0}, ErrOutOfBounds},
		{Move{Color: Black, Row: 0, Col: -1}, ErrOutOfBounds},
		{Move{Color: NoColor, Row: 1, Col: 1}, ErrBadColor},
	}
	for _, tc := range cases {
		assert.ErrorIs(t, b.Apply(tc.m), tc.err, "%+v", tc.m)
	}
	assert.Equal(t, before, b.String())
	assert.Equal(t, 1, b.Placed())
}

func TestEnclosedRunCaptured(t *testing.T) {
	b := New(6)
	mustApply(t, b, White, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})
	mustApply(t, b, Black,
		[2]int{1, 1}, [2]int{1, 2}, [2]int{1, 3},
		[2]int{3, 1}, [2]int{3, 2}, [2]int{3, 3},
		[2]int{2, 0})
	for col := 1; col <= 3; col++ {
		require.False(t, b.At(2, col).Captured, "captured before enclosure")
	}

	mustApply(t, b, Black, [2]int{2, 4})
	for col := 1; col <= 3; col++ {
		c := b.At(2, col)
		assert.True(t, c.Captured)
		assert.Equal(t, Black, c.Owner)
		assert.Equal(t, byte(GlyphWhiteCaptured), c.Glyph())
	}
	assert.Equal(t, 3, b.Scores(Black).Capture)
	assert.Equal(t, 0, b.Scores(White).Capture)
	assert.Equal(t, "+ + + + + +\n"+
		"+ B B B + +\n"+
		"B w w w B +\n"+
		"+ B B B + +\n"+
		"+ + + + + +\n"+
		"+ + + + + +\n", b.String())
}

func TestEmptyCellCaptured(t *testing.T) {
	b := New(5)
	mustApply(t, b, Black, [2]int{1, 2}, [2]int{2, 1}, [2]int{3, 2}, [2]int{2, 3})
	c := b.At(2, 2)
	assert.Equal(t, byte(GlyphEmptyCaptured), c.Glyph())
	assert.Equal(t, Black, c.Owner)
	assert.False(t, c.IsEmpty())
	assert.ErrorIs(t, b.Apply(Move{Color: White, Row: 2, Col: 2}), ErrOccupied)
}

func TestRegionIsAtomic(t *testing.T) {
	b := New(6)
	region := [][2]int{{2, 2}, {2, 3}, {1, 3}, {0, 3}}
	mustApply(t, b, White, region...)
	mustApply(t, b, Black,
		[2]int{2, 1}, [2]int{3, 2}, [2]int{3, 3}, [2]int{2, 4},
		[2]int{1, 2}, [2]int{1, 4}, [2]int{0, 2}, [2]int{0, 4})

	require.Equal(t, 4, b.boundary(2, 2, Black), "(2,2) is enclosed on its own")
	for _, rc := range region {
		c := b.At(rc[0], rc[1])
		assert.False(t, c.Captured, "%v", rc)
		assert.Equal(t, NoColor, c.Owner, "%v", rc)
	}
	assert.Equal(t, 0, b.Scores(Black).Capture)
}

func TestSelfCapture(t *testing.T) {
	b := New(5)
	*b.cell(2, 2) = Cell{Mark: White}
	*b.cell(2, 1) = Cell{Captured: true, Owner: White}
	*b.cell(2, 3) = Cell{Mark: White}
	*b.cell(1, 2) = Cell{Mark: White}
	*b.cell(3, 2) = Cell{Mark: Black, Captured: true, Owner: White}

	b.captureSelf(White)
	c := b.At(2, 2)
	assert.True(t, c.Captured)
	assert.Equal(t, NoColor, c.Owner)
	assert.Equal(t, byte(GlyphWhiteCaptured), c.Glyph())
	assert.False(t, b.At(2, 3).Captured)
	assert.False(t, b.At(1, 2).Captured)
}

func TestSelfCaptureSpares(t *testing.T) {
	t.Run("four live neighbours", func(t *testing.T) {
		b := New(5)
		for _, rc := range [][2]int{{2, 2}, {1, 2}, {3, 2}, {2, 1}, {2, 3}} {
			*b.cell(rc[0], rc[1]) = Cell{Mark: White}
		}
		b.captureSelf(White)
		assert.False(t, b.At(2, 2).Captured)
	})
	t.Run("live opponent neighbour", func(t *testing.T) {
		b := New(5)
		*b.cell(2, 2) = Cell{Mark: White}
		*b.cell(1, 2) = Cell{Mark: Black}
		*b.cell(3, 2) = Cell{Captured: true, Owner: White}
		*b.cell(2, 1) = Cell{Captured: true, Owner: White}
		*b.cell(2, 3) = Cell{Captured: true, Owner: White}
		b.captureSelf(White)
		assert.False(t, b.At(2, 2).Captured)
	})
	t.Run("edge cell", func(t *testing.T) {
		b := New(5)
		*b.cell(0, 2) = Cell{Mark: White}
		*b.cell(0, 1) = Cell{Captured: true, Owner: White}
		*b.cell(0, 3) = Cell{Captured: true, Owner: White}
		*b.cell(1, 2) = Cell{Captured: true, Owner: White}
		b.captureSelf(White)
		assert.False(t, b.At(0, 2).Captured)
	})
}

func TestPotentialAndSide(t *testing.T) {
	b := New(5)
	mustApply(t, b, White, [2]int{0, 0}, [2]int{1, 1}, [2]int{2, 2})
	s := b.Scores(White)
	// (1,1) matches up-left then down-right: 1 + 2.
	assert.Equal(t, 1+3+1, s.Potential)
	assert.Equal(t, 1, s.Side)
	assert.Equal(t, 0, s.Capture)
	assert.Equal(t, Scores{}, b.Scores(Black))
}

func TestPotentialScanOrder(t *testing.T) {
	b := New(3)
	for _, rc := range [][2]int{{0, 0}, {0, 2}, {2, 0}, {2, 2}} {
		*b.cell(rc[0], rc[1]) = Cell{Mark: Black}
	}
	assert.Equal(t, 1+2+3+4, b.potential(1, 1, Black))
	assert.Equal(t, 0, b.potential(1, 1, White))
	*b.cell(0, 0) = Cell{Mark: Black, Captured: true}
	assert.Equal(t, 1+2+3, b.potential(1, 1, Black))
}

func TestCompleteAndWinner(t *testing.T) {
	b := New(3)
	mustApply(t, b, White, [2]int{0, 0}, [2]int{0, 1}, [2]int{0, 2})
	mustApply(t, b, Black, [2]int{1, 0}, [2]int{1, 1}, [2]int{1, 2})
	assert.False(t, b.IsComplete())
	assert.Equal(t, InProgress, b.Winner())
	mustApply(t, b, White, [2]int{2, 0}, [2]int{2, 1}, [2]int{2, 2})
	assert.True(t, b.IsComplete())
	assert.Equal(t, Draw, b.Winner())

	b = New(3)
	mustApply(t, b, Black, [2]int{0, 1}, [2]int{1, 0}, [2]int{1, 2}, [2]int{2, 1})
	mustApply(t, b, White, [2]int{0, 0}, [2]int{0, 2}, [2]int{2, 0}, [2]int{2, 2})
	require.True(t, b.At(1, 1).Captured)
	assert.True(t, b.IsComplete())
	assert.Equal(t, BlackWins, b.Winner())
}

func TestCloneIsDeep(t *testing.T) {
	b := New(4)
	mustApply(t, b, White, [2]int{1, 1})
	c := b.Clone()
	mustApply(t, c, Black, [2]int{2, 2})
	assert.True(t, b.At(2, 2).IsEmpty())
	assert.Equal(t, 1, b.Placed())
	assert.Equal(t, 2, c.Placed())

	var buf Board
	b.CopyInto(&buf)
	assert.Equal(t, b.String(), buf.String())
	c.CopyInto(&buf)
	assert.Equal(t, c.String(), buf.String())
	last, ok := buf.Last()
	assert.True(t, ok)
	assert.Equal(t, Move{Color: Black, Row: 2, Col: 2}, last)
}

func TestCaptureScoreBounded(t *testing.T) {
	b := New(5)
	color := White
	for _, m := range b.EmptyCells(White, nil) {
		m.Color = color
		if b.Apply(m) == nil {
			color = color.Flip()
		}
		w, bl := b.Scores(White).Capture, b.Scores(Black).Capture
		assert.LessOrEqual(t, w+bl, 25)
	}
	assert.True(t, b.IsComplete())
}
