package ai

import "golang.org/x/exp/constraints"

// Weights scale the three board signals in the evaluation function.
type Weights struct {
	Capture   float64
	Side      float64
	Potential float64
}

// Schedule holds one weight triple per stage of the game. Row i
// applies when scheduleBase+i pieces are on the board; earlier and
// later stages use the first and last rows.
type Schedule [15]Weights

const scheduleBase = 16

var DefaultSchedule = Schedule{
	{0.642656, -0.025575, 0.007332},
	{0.739764, -0.035820, -0.004044},
	{0.747621, -0.022536, 0.000874},
	{0.810477, -0.015397, 0.001077},
	{0.821982, -0.003835, -0.004692},
	{0.830698, -0.010243, 0.001302},
	{0.832525, 0.004337, 0.003385},
	{0.842164, -0.001772, 0.001612},
	{0.838333, 0.007135, 0.004044},
	{0.846195, -0.002701, 0.001826},
	{0.839661, 0.007033, 0.003967},
	{0.846929, -0.002112, 0.002232},
	{0.839524, 0.008952, 0.004949},
	{0.848400, -0.002242, 0.001904},
	{0.843682, 0.007818, 0.004519},
}

func (s *Schedule) At(placed int) Weights {
	return s[clamp(placed-scheduleBase, 0, len(s)-1)]
}

// DepthFor returns the search depth for a board of the given size
// with placed pieces on it.
func DepthFor(size, placed int) int {
	if (size == 6 && placed <= 10) || (size == 7 && placed <= size*size/2) {
		return 3
	}
	return 4
}

func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
