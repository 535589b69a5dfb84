package notation

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/squatter-ai/squatter/squatter"
)

var moveRE = regexp.MustCompile(
	// [color] row (',' | ' ') col
	`^\s*([WBwb]?)\s*(\d+)\s*[,\s]\s*(\d+)\s*$`,
)

var ErrIllegalMove = errors.New("illegal move")

// ParseMove parses `W2,3`, `B 0 5` or a bare `2,3`. A bare move has
// no color; callers fill it in.
func ParseMove(move string) (squatter.Move, error) {
	groups := moveRE.FindStringSubmatch(move)
	if groups == nil {
		return squatter.Move{}, fmt.Errorf("%w: %q", ErrIllegalMove, move)
	}
	var m squatter.Move
	switch strings.ToUpper(groups[1]) {
	case "W":
		m.Color = squatter.White
	case "B":
		m.Color = squatter.Black
	}
	var err error
	if m.Row, err = strconv.Atoi(groups[2]); err != nil {
		return squatter.Move{}, fmt.Errorf("%w: row: %v", ErrIllegalMove, err)
	}
	if m.Col, err = strconv.Atoi(groups[3]); err != nil {
		return squatter.Move{}, fmt.Errorf("%w: col: %v", ErrIllegalMove, err)
	}
	return m, nil
}

func FormatMove(m squatter.Move) string {
	var out []byte
	switch m.Color {
	case squatter.White:
		out = append(out, squatter.GlyphWhite)
	case squatter.Black:
		out = append(out, squatter.GlyphBlack)
	}
	out = strconv.AppendInt(out, int64(m.Row), 10)
	out = append(out, ',')
	out = strconv.AppendInt(out, int64(m.Col), 10)
	return string(out)
}

func ParseMoves(s string) ([]squatter.Move, error) {
	var ms []squatter.Move
	for _, bit := range strings.Fields(s) {
		m, err := ParseMove(bit)
		if err != nil {
			return nil, err
		}
		ms = append(ms, m)
	}
	return ms, nil
}

func FormatMoves(ms []squatter.Move) string {
	bits := make([]string, len(ms))
	for i, m := range ms {
		bits[i] = FormatMove(m)
	}
	return strings.Join(bits, " ")
}

func ParseColor(s string) (squatter.Color, error) {
	switch strings.ToLower(s) {
	case "white", "w":
		return squatter.White, nil
	case "black", "b":
		return squatter.Black, nil
	}
	return squatter.NoColor, fmt.Errorf("bad color: %q", s)
}
