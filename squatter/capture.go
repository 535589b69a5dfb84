package squatter

type point struct {
	row, col int
}

// neighbours appends the orthogonal neighbours of (row, col) that do
// not carry a live t token.
func (b *Board) neighbours(row, col int, t Color, out []point) []point {
	if col > 0 && !b.At(row, col-1).Live(t) {
		out = append(out, point{row, col - 1})
	}
	if col < b.size-1 && !b.At(row, col+1).Live(t) {
		out = append(out, point{row, col + 1})
	}
	if row > 0 && !b.At(row-1, col).Live(t) {
		out = append(out, point{row - 1, col})
	}
	if row < b.size-1 && !b.At(row+1, col).Live(t) {
		out = append(out, point{row + 1, col})
	}
	return out
}

// boundary counts the axis directions from (row, col) in which a live
// t token appears before the board edge.
func (b *Board) boundary(row, col int, t Color) int {
	n := 0
	for i := 0; i < col; i++ {
		if b.At(row, i).Live(t) {
			n++
			break
		}
	}
	for i := b.size - 1; i > col; i-- {
		if b.At(row, i).Live(t) {
			n++
			break
		}
	}
	for i := 0; i < row; i++ {
		if b.At(i, col).Live(t) {
			n++
			break
		}
	}
	for i := b.size - 1; i > row; i-- {
		if b.At(i, col).Live(t) {
			n++
			break
		}
	}
	return n
}

func (b *Board) capture(row, col int, owner Color) {
	c := b.cell(row, col)
	c.Captured = true
	c.Owner = owner
}

// captureRegions floods every connected region of non-m.Color cells
// touching the placed token. A region is captured only if every cell
// in it is enclosed on all four rays; a single open cell spares the
// whole region.
func (b *Board) captureRegions(m Move) {
	visited := make(map[point]bool)
	seeds := b.neighbours(m.Row, m.Col, m.Color, nil)
	var queue, region []point
	for _, seed := range seeds {
		queue = append(queue[:0], seed)
		region = region[:0]
		enclosed := true
		for len(queue) > 0 {
			p := queue[0]
			queue = queue[1:]
			if visited[p] {
				continue
			}
			visited[p] = true
			if b.boundary(p.row, p.col, m.Color) == 4 {
				region = append(region, p)
			} else {
				enclosed = false
			}
			queue = b.neighbours(p.row, p.col, m.Color, queue)
		}
		if enclosed {
			for _, p := range region {
				b.capture(p.row, p.col, m.Color)
			}
		}
	}
}

// captureSelf neutralises interior t tokens walled in by their own
// side's captured remnants: no neighbour is empty or a live opponent
// token, and fewer than four neighbours are live t.
func (b *Board) captureSelf(t Color) {
	op := t.Flip()
	blocked := func(c Cell) bool {
		return c.IsEmpty() || c.Live(op)
	}
	for row := 1; row < b.size-1; row++ {
		for col := 1; col < b.size-1; col++ {
			if !b.At(row, col).Live(t) {
				continue
			}
			adj := [4]Cell{
				b.At(row, col-1),
				b.At(row, col+1),
				b.At(row-1, col),
				b.At(row+1, col),
			}
			open := false
			n := 0
			for _, c := range adj {
				if blocked(c) {
					open = true
				}
				if c.Live(t) {
					n++
				}
			}
			if !open && n < 4 {
				b.capture(row, col, NoColor)
			}
		}
	}
}

// score recomputes both colors' Scores from scratch.
func (b *Board) score() {
	b.white, b.black = Scores{}, Scores{}
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			c := b.At(row, col)
			switch c.Owner {
			case White:
				b.white.Capture++
			case Black:
				b.black.Capture++
			}
			if c.Captured || c.Mark == NoColor {
				continue
			}
			s := &b.white
			if c.Mark == Black {
				s = &b.black
			}
			s.Potential += b.potential(row, col, c.Mark)
			if b.onEdge(row, col) {
				s.Side++
			}
		}
	}
}

// potential scans the diagonals up-left, up-right, down-left,
// down-right; each match earns the running counter, which then
// advances.
func (b *Board) potential(row, col int, t Color) int {
	score, num := 0, 1
	diag := [4]point{
		{row - 1, col - 1},
		{row - 1, col + 1},
		{row + 1, col - 1},
		{row + 1, col + 1},
	}
	for _, d := range diag {
		if b.inBounds(d.row, d.col) && b.At(d.row, d.col).Live(t) {
			score += num
			num++
		}
	}
	return score
}
