package ai

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"

	"github.com/squatter-ai/squatter/notation"
	"github.com/squatter-ai/squatter/squatter"
)

type MinimaxConfig struct {
	Size  int
	Color squatter.Color

	// Depth overrides the stage-dependent search depth when positive.
	Depth int
	Seed  int64

	// Threads > 1 scores root candidates concurrently.
	Threads int
	NoPrune bool

	Schedule *Schedule
	Log      *zerolog.Logger
}

type Stats struct {
	Depth      int
	Candidates int
	Visited    uint64
	Evaluated  uint64
	Cutoffs    uint64
	Elapsed    time.Duration
}

func (s *Stats) merge(o *Stats) {
	s.Visited += o.Visited
	s.Evaluated += o.Evaluated
	s.Cutoffs += o.Cutoffs
}

type MinimaxAI struct {
	cfg      MinimaxConfig
	rand     *rand.Rand
	schedule *Schedule
	log      zerolog.Logger
}

func NewMinimax(cfg MinimaxConfig) *MinimaxAI {
	m := &MinimaxAI{cfg: cfg}
	m.schedule = cfg.Schedule
	if m.schedule == nil {
		m.schedule = &DefaultSchedule
	}
	if cfg.Log != nil {
		m.log = *cfg.Log
	} else {
		m.log = zerolog.Nop()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	m.rand = rand.New(rand.NewSource(uint64(seed)))
	return m
}

func (m *MinimaxAI) Color() squatter.Color {
	return m.cfg.Color
}

func (m *MinimaxAI) GetMove(ctx context.Context, b *squatter.Board) squatter.Move {
	mv, _, _ := m.Analyze(ctx, b)
	return mv
}

// Analyze picks a move for the configured color and returns it with
// its backed-up value. The board is not modified.
func (m *MinimaxAI) Analyze(ctx context.Context, b *squatter.Board) (squatter.Move, float64, Stats) {
	start := time.Now()
	placed := b.Placed()
	if placed <= 1 {
		if mv, ok := m.opening(b); ok {
			m.log.Debug().
				Int("placed", placed).
				Str("move", notation.FormatMove(mv)).
				Msg("[minimax] opening")
			return mv, 0, Stats{Elapsed: time.Since(start)}
		}
	}

	w := m.schedule.At(placed)
	depth := m.cfg.Depth
	if depth <= 0 {
		depth = DepthFor(b.Size(), placed)
	}
	cands := m.candidates(b)
	st := Stats{Depth: depth, Candidates: len(cands)}

	var best squatter.Move
	var v float64
	if len(cands) == 0 {
		best = m.corner(b)
	} else if m.cfg.Threads > 1 {
		best, v = m.searchParallel(ctx, b, cands, w, depth, &st)
	} else {
		best, v = m.searchSerial(ctx, b, cands, w, depth, &st)
	}
	st.Elapsed = time.Since(start)

	m.log.Debug().
		Int("placed", placed).
		Int("depth", depth).
		Int("candidates", st.Candidates).
		Uint64("visited", st.Visited).
		Uint64("evaluated", st.Evaluated).
		Uint64("cutoffs", st.Cutoffs).
		Float64("value", v).
		Str("move", notation.FormatMove(best)).
		Dur("elapsed", st.Elapsed).
		Msg("[minimax] search")
	return best, v, st
}

// candidates lists the root moves: every empty cell except the four
// corners.
func (m *MinimaxAI) candidates(b *squatter.Board) []squatter.Move {
	var out []squatter.Move
	for _, mv := range b.EmptyCells(m.cfg.Color, nil) {
		if !b.IsCorner(mv.Row, mv.Col) {
			out = append(out, mv)
		}
	}
	return out
}

func (m *MinimaxAI) corner(b *squatter.Board) squatter.Move {
	n := b.Size() - 1
	if n < 0 {
		return squatter.Move{Color: m.cfg.Color}
	}
	for _, rc := range [][2]int{{0, 0}, {0, n}, {n, 0}} {
		if b.At(rc[0], rc[1]).IsEmpty() {
			return squatter.Move{Color: m.cfg.Color, Row: rc[0], Col: rc[1]}
		}
	}
	return squatter.Move{Color: m.cfg.Color, Row: n, Col: n}
}

func (m *MinimaxAI) searchSerial(ctx context.Context,
	b *squatter.Board, cands []squatter.Move, w Weights, depth int,
	st *Stats) (squatter.Move, float64) {
	s := m.newSearcher(w, depth, st)
	var child squatter.Board
	best := cands[0]
	α := math.Inf(-1)
	for _, mv := range cands {
		if ctx.Err() != nil {
			break
		}
		b.CopyInto(&child)
		child.Apply(mv)
		v := s.search(&child, depth-1, α, math.Inf(1), m.cfg.Color.Flip())
		if v > α {
			α = v
			best = mv
		}
	}
	return best, α
}

// searchParallel scores each candidate with a full window on its own
// board, then picks the first strict maximum in candidate order, so
// the result matches searchSerial.
func (m *MinimaxAI) searchParallel(ctx context.Context,
	b *squatter.Board, cands []squatter.Move, w Weights, depth int,
	st *Stats) (squatter.Move, float64) {
	vals := make([]float64, len(cands))
	stats := make([]Stats, len(cands))
	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(m.cfg.Threads)
	for i, mv := range cands {
		i, mv := i, mv
		grp.Go(func() error {
			vals[i] = math.Inf(-1)
			if ctx.Err() != nil {
				return nil
			}
			s := m.newSearcher(w, depth, &stats[i])
			child := b.Clone()
			child.Apply(mv)
			vals[i] = s.search(child, depth-1, math.Inf(-1), math.Inf(1), m.cfg.Color.Flip())
			return nil
		})
	}
	grp.Wait()

	best := cands[0]
	α := math.Inf(-1)
	for i, v := range vals {
		st.merge(&stats[i])
		if v > α {
			α = v
			best = cands[i]
		}
	}
	return best, α
}

// searcher walks the tree below one root candidate. It keeps one
// board buffer per ply, so it must not be shared between goroutines.
type searcher struct {
	color squatter.Color
	w     Weights
	prune bool
	st    *Stats

	stack []struct {
		b     squatter.Board
		moves []squatter.Move
	}
}

func (m *MinimaxAI) newSearcher(w Weights, depth int, st *Stats) *searcher {
	s := &searcher{
		color: m.cfg.Color,
		w:     w,
		prune: !m.cfg.NoPrune,
		st:    st,
	}
	if depth < 1 {
		depth = 1
	}
	s.stack = make([]struct {
		b     squatter.Board
		moves []squatter.Move
	}, depth)
	return s
}

func (s *searcher) search(b *squatter.Board, depth int, α, β float64, toMove squatter.Color) float64 {
	if s.prune {
		return s.alphabeta(b, 0, depth, α, β, toMove)
	}
	return s.minimax(b, 0, depth, toMove)
}

func (s *searcher) evaluate(b *squatter.Board) float64 {
	s.st.Evaluated++
	return Evaluate(b, s.color, s.w)
}

func (s *searcher) alphabeta(b *squatter.Board, ply, depth int, α, β float64, toMove squatter.Color) float64 {
	if depth == 0 || b.IsComplete() {
		return s.evaluate(b)
	}
	s.st.Visited++
	frame := &s.stack[ply]
	frame.moves = b.EmptyCells(toMove, frame.moves[:0])
	child := &frame.b
	for _, mv := range frame.moves {
		b.CopyInto(child)
		child.Apply(mv)
		v := s.alphabeta(child, ply+1, depth-1, α, β, toMove.Flip())
		if toMove == s.color {
			α = math.Max(α, v)
		} else {
			β = math.Min(β, v)
		}
		if β <= α {
			s.st.Cutoffs++
			break
		}
	}
	if toMove == s.color {
		return α
	}
	return β
}

// minimax is alphabeta without cutoffs.
func (s *searcher) minimax(b *squatter.Board, ply, depth int, toMove squatter.Color) float64 {
	if depth == 0 || b.IsComplete() {
		return s.evaluate(b)
	}
	s.st.Visited++
	frame := &s.stack[ply]
	frame.moves = b.EmptyCells(toMove, frame.moves[:0])
	child := &frame.b
	maximize := toMove == s.color
	best := math.Inf(1)
	if maximize {
		best = math.Inf(-1)
	}
	for _, mv := range frame.moves {
		b.CopyInto(child)
		child.Apply(mv)
		v := s.minimax(child, ply+1, depth-1, toMove.Flip())
		if (maximize && v > best) || (!maximize && v < best) {
			best = v
		}
	}
	return best
}
