package squatter

import "errors"

type Move struct {
	Color    Color
	Row, Col int
}

func (m Move) Equal(rhs Move) bool {
	return m.Color == rhs.Color && m.Row == rhs.Row && m.Col == rhs.Col
}

var (
	ErrOccupied    = errors.New("cell is occupied")
	ErrOutOfBounds = errors.New("cell is off the board")
	ErrBadColor    = errors.New("move has no color")
)

// Valid reports whether m could be applied to b, without applying it.
func (b *Board) Valid(m Move) error {
	if m.Color != White && m.Color != Black {
		return ErrBadColor
	}
	if !b.inBounds(m.Row, m.Col) {
		return ErrOutOfBounds
	}
	if !b.At(m.Row, m.Col).IsEmpty() {
		return ErrOccupied
	}
	return nil
}

// Apply places m on the board, resolves captures and recomputes
// scores. On error the board is left untouched.
func (b *Board) Apply(m Move) error {
	if err := b.Valid(m); err != nil {
		return err
	}
	c := b.cell(m.Row, m.Col)
	c.Mark = m.Color
	c.Captured = c.Owner != NoColor

	b.captureRegions(m)
	b.captureSelf(m.Color)
	b.score()

	b.placed++
	b.last = m
	b.hasLast = true
	return nil
}

// EmptyCells appends every empty cell to moves as a move by c, in
// row-major order.
func (b *Board) EmptyCells(c Color, moves []Move) []Move {
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			if b.At(row, col).IsEmpty() {
				moves = append(moves, Move{Color: c, Row: row, Col: col})
			}
		}
	}
	return moves
}
