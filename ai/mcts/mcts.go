// Package mcts implements a Monte-Carlo tree search player, used as a
// sparring partner for the minimax engine.
package mcts

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"

	"github.com/squatter-ai/squatter/ai"
	"github.com/squatter-ai/squatter/squatter"
)

type MCTSConfig struct {
	Size  int
	Color squatter.Color

	// The search stops after Limit or Iterations playouts, whichever
	// comes first. At least one must be set.
	Limit      time.Duration
	Iterations int

	C    float64
	Seed int64

	Policy PolicyFunc
	Log    *zerolog.Logger
}

type MonteCarloAI struct {
	cfg MCTSConfig
	w   ai.Weights
	r   *rand.Rand
	log zerolog.Logger
}

type tree struct {
	board *squatter.Board
	move  squatter.Move
	// toMove is the side to play from this node.
	toMove squatter.Color

	simulations int
	// wins is scored for the side that played move; draws count half.
	wins float64

	parent   *tree
	children []*tree
}

func NewMonteCarlo(cfg MCTSConfig) *MonteCarloAI {
	mc := &MonteCarloAI{
		cfg: cfg,
		w:   ai.DefaultSchedule.At(0),
		log: zerolog.Nop(),
	}
	if cfg.Log != nil {
		mc.log = *cfg.Log
	}
	if mc.cfg.C == 0 {
		mc.cfg.C = 0.7
	}
	if mc.cfg.Seed == 0 {
		mc.cfg.Seed = time.Now().Unix()
	}
	if mc.cfg.Limit == 0 && mc.cfg.Iterations == 0 {
		mc.cfg.Iterations = 1000
	}
	if mc.cfg.Policy == nil {
		mc.cfg.Policy = RandomPolicy
	}
	mc.r = rand.New(rand.NewSource(uint64(mc.cfg.Seed)))
	return mc
}

func (mc *MonteCarloAI) GetMove(ctx context.Context, b *squatter.Board) squatter.Move {
	root := &tree{
		board:  b,
		toMove: mc.cfg.Color,
	}
	mc.populate(root)
	if len(root.children) == 0 {
		return squatter.Move{Color: mc.cfg.Color}
	}

	start := time.Now()
	var deadline time.Time
	if mc.cfg.Limit != 0 {
		deadline = start.Add(mc.cfg.Limit)
	}
	for i := 0; mc.cfg.Iterations == 0 || i < mc.cfg.Iterations; i++ {
		if ctx.Err() != nil || (!deadline.IsZero() && time.Now().After(deadline)) {
			break
		}
		node := mc.descend(root)
		mc.populate(node)
		mc.update(node, mc.playout(ctx, node))
	}

	best := root.children[0]
	n := 0
	for _, c := range root.children {
		if c.simulations > best.simulations {
			best = c
			n = 1
		} else if c.simulations == best.simulations {
			n++
			if mc.r.Intn(n) == 0 {
				best = c
			}
		}
	}
	mc.log.Debug().
		Int("simulations", root.simulations).
		Int("n", best.simulations).
		Float64("wins", best.wins).
		Dur("elapsed", time.Since(start)).
		Msg("[mcts] search")
	return best.move
}

func (mc *MonteCarloAI) populate(t *tree) {
	if t.children != nil || t.board.IsComplete() {
		return
	}
	moves := t.board.EmptyCells(t.toMove, nil)
	t.children = make([]*tree, 0, len(moves))
	for _, m := range moves {
		child := t.board.Clone()
		if child.Apply(m) != nil {
			continue
		}
		t.children = append(t.children, &tree{
			board:  child,
			move:   m,
			toMove: t.toMove.Flip(),
			parent: t,
		})
	}
}

const visitThreshold = 10

// descendPolicy picks the child the static evaluation likes best for
// the side to move, breaking ties at random.
func (mc *MonteCarloAI) descendPolicy(t *tree) *tree {
	var best *tree
	val := math.Inf(-1)
	n := 0
	for _, c := range t.children {
		v := ai.Evaluate(c.board, t.toMove, mc.w)
		if v > val {
			best = c
			val = v
			n = 1
		} else if v == val {
			n++
			if mc.r.Intn(n) == 0 {
				best = c
			}
		}
	}
	return best
}

func (mc *MonteCarloAI) descend(t *tree) *tree {
	if len(t.children) == 0 {
		return t
	}
	if t.simulations < visitThreshold {
		return mc.descendPolicy(t)
	}
	var best *tree
	val := math.Inf(-1)
	n := 0
	for _, c := range t.children {
		var s float64
		if c.simulations == 0 {
			s = 10
		} else {
			s = c.wins/float64(c.simulations) +
				mc.cfg.C*math.Sqrt(math.Log(float64(t.simulations))/float64(c.simulations))
		}
		if s > val {
			best = c
			val = s
			n = 1
		} else if s == val {
			n++
			if mc.r.Intn(n) == 0 {
				best = c
			}
		}
	}
	return mc.descend(best)
}

// playout finishes the game from t with the configured policy.
func (mc *MonteCarloAI) playout(ctx context.Context, t *tree) squatter.Result {
	if t.board.IsComplete() {
		return t.board.Winner()
	}
	b := t.board.Clone()
	toMove := t.toMove
	for !b.IsComplete() {
		if b.Apply(mc.cfg.Policy(ctx, mc.r, b, toMove)) != nil {
			break
		}
		toMove = toMove.Flip()
	}
	return b.Winner()
}

func score(r squatter.Result, c squatter.Color) float64 {
	switch {
	case r == squatter.Draw:
		return 0.5
	case r == squatter.WhiteWins && c == squatter.White,
		r == squatter.BlackWins && c == squatter.Black:
		return 1
	}
	return 0
}

func (mc *MonteCarloAI) update(t *tree, r squatter.Result) {
	for ; t != nil; t = t.parent {
		t.simulations++
		t.wins += score(r, t.toMove.Flip())
	}
}
