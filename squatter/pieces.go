package squatter

import "fmt"

type Color byte

const (
	NoColor Color = 0
	White   Color = 1
	Black   Color = 2
)

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	case NoColor:
		return "no color"
	default:
		panic(fmt.Sprintf("bad color: %x", int(c)))
	}
}

func (c Color) Flip() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	case NoColor:
		return NoColor
	default:
		panic(fmt.Sprintf("bad color: %x", int(c)))
	}
}

// Cell is a single board square. Mark is the token placed on it and
// never changes once set; Captured and Owner are only written by
// capture resolution.
type Cell struct {
	Mark     Color
	Captured bool
	Owner    Color
}

const (
	GlyphEmpty         = '+'
	GlyphWhite         = 'W'
	GlyphBlack         = 'B'
	GlyphEmptyCaptured = '-'
	GlyphWhiteCaptured = 'w'
	GlyphBlackCaptured = 'b'
)

func (c Cell) IsEmpty() bool {
	return c.Mark == NoColor && !c.Captured
}

// Live reports whether the cell carries an uncaptured token of color
// col.
func (c Cell) Live(col Color) bool {
	return c.Mark == col && !c.Captured
}

func (c Cell) Glyph() byte {
	switch {
	case c.Mark == White && c.Captured:
		return GlyphWhiteCaptured
	case c.Mark == White:
		return GlyphWhite
	case c.Mark == Black && c.Captured:
		return GlyphBlackCaptured
	case c.Mark == Black:
		return GlyphBlack
	case c.Captured:
		return GlyphEmptyCaptured
	default:
		return GlyphEmpty
	}
}

func (c Cell) String() string {
	return string(c.Glyph())
}

type Result byte

const (
	InProgress Result = iota
	WhiteWins
	BlackWins
	Draw
)

func (r Result) String() string {
	switch r {
	case InProgress:
		return "none"
	case WhiteWins:
		return "white"
	case BlackWins:
		return "black"
	case Draw:
		return "draw"
	default:
		panic(fmt.Sprintf("bad result: %x", int(r)))
	}
}
