package squatter

import "strings"

// Scores are the per-color signals recomputed after every move.
type Scores struct {
	// Capture counts cells owned by the color.
	Capture int
	// Side counts live tokens of the color on the board edge.
	Side int
	// Potential rewards live tokens with matching diagonal neighbours.
	Potential int
}

type Board struct {
	size  int
	cells []Cell

	white, black Scores

	placed  int
	last    Move
	hasLast bool
}

// MaxSize is the largest board the engine accepts from callers.
const MaxSize = 64

func New(size int) *Board {
	if size < 0 {
		size = 0
	}
	return &Board{
		size:  size,
		cells: make([]Cell, size*size),
	}
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) At(row, col int) Cell {
	return b.cells[row*b.size+col]
}

func (b *Board) cell(row, col int) *Cell {
	return &b.cells[row*b.size+col]
}

func (b *Board) inBounds(row, col int) bool {
	return row >= 0 && row < b.size && col >= 0 && col < b.size
}

func (b *Board) onEdge(row, col int) bool {
	return row == 0 || col == 0 || row == b.size-1 || col == b.size-1
}

// IsCorner reports whether (row, col) is one of the four corners.
func (b *Board) IsCorner(row, col int) bool {
	return (row == 0 || row == b.size-1) && (col == 0 || col == b.size-1)
}

// Placed returns the number of moves applied to the board.
func (b *Board) Placed() int {
	return b.placed
}

// Last returns the most recently applied move, if any.
func (b *Board) Last() (Move, bool) {
	return b.last, b.hasLast
}

func (b *Board) Scores(c Color) Scores {
	switch c {
	case White:
		return b.white
	case Black:
		return b.black
	}
	return Scores{}
}

func (b *Board) IsComplete() bool {
	for _, c := range b.cells {
		if c.IsEmpty() {
			return false
		}
	}
	return true
}

func (b *Board) Winner() Result {
	if !b.IsComplete() {
		return InProgress
	}
	switch {
	case b.white.Capture > b.black.Capture:
		return WhiteWins
	case b.white.Capture < b.black.Capture:
		return BlackWins
	default:
		return Draw
	}
}

func (b *Board) Clone() *Board {
	out := &Board{}
	b.CopyInto(out)
	return out
}

// CopyInto overwrites out with a deep copy of b, reusing out's cell
// storage when it is large enough.
func (b *Board) CopyInto(out *Board) {
	cells := out.cells
	*out = *b
	if cap(cells) < len(b.cells) {
		cells = make([]Cell, len(b.cells))
	}
	out.cells = cells[:len(b.cells)]
	copy(out.cells, b.cells)
}

func (b *Board) String() string {
	var out strings.Builder
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			if col != 0 {
				out.WriteByte(' ')
			}
			out.WriteByte(b.At(row, col).Glyph())
		}
		out.WriteByte('\n')
	}
	return out.String()
}
