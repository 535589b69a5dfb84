package selfplay

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"

	"github.com/squatter-ai/squatter/agent"
	"github.com/squatter-ai/squatter/ai"
	"github.com/squatter-ai/squatter/ai/mcts"
	"github.com/squatter-ai/squatter/notation"
	"github.com/squatter-ai/squatter/squatter"
)

type Config struct {
	Size    int
	Games   int
	Threads int
	Seed    int64
	Swap    bool

	// P1 and P2 name the engines: "minimax", "mcts" or "rand".
	P1, P2 string
	Search func(size int) ai.MinimaxConfig
	// Playouts per mcts move.
	Playouts int

	Log zerolog.Logger
}

type PlayerStats struct {
	Wins      int
	WhiteWins int
	BlackWins int
	Captures  int
}

type Stats struct {
	Players      [2]PlayerStats
	White, Black int
	Ties         int

	Games []Result `json:"-"`
}

func (s *Stats) Count() int {
	return s.White + s.Black + s.Ties
}

type Result struct {
	Game    int
	P1Color squatter.Color
	Moves   []squatter.Move
	Board   *squatter.Board
	Winner  squatter.Result
}

// contestant is the referee's view of one side of a game.
type contestant interface {
	MakeMove(ctx context.Context) (squatter.Move, error)
	OpponentMove(m squatter.Move) error
}

// boardPlayer tracks the game the way an agent does and asks p for
// its moves.
type boardPlayer struct {
	b *squatter.Board
	p ai.Player
}

func (bp *boardPlayer) MakeMove(ctx context.Context) (squatter.Move, error) {
	m := bp.p.GetMove(ctx, bp.b)
	if err := bp.b.Apply(m); err != nil {
		return squatter.Move{}, fmt.Errorf("illegal move %s: %w", notation.FormatMove(m), err)
	}
	return m, nil
}

func (bp *boardPlayer) OpponentMove(m squatter.Move) error {
	return bp.b.Apply(m)
}

func (c *Config) newContestant(engine string, color squatter.Color, seed int64) (contestant, error) {
	switch engine {
	case "minimax":
		var cfg ai.MinimaxConfig
		if c.Search != nil {
			cfg = c.Search(c.Size)
		}
		cfg.Seed = seed
		return agent.New(c.Size, color, cfg)
	case "rand":
		return &boardPlayer{squatter.New(c.Size), ai.NewRandom(color, seed)}, nil
	case "mcts":
		p := mcts.NewMonteCarlo(mcts.MCTSConfig{
			Size:       c.Size,
			Color:      color,
			Iterations: c.Playouts,
			Seed:       seed,
		})
		return &boardPlayer{squatter.New(c.Size), p}, nil
	}
	return nil, fmt.Errorf("unknown engine: %q", engine)
}

// Simulate plays c.Games games (twice as many with Swap) on up to
// c.Threads goroutines and tallies the results.
func Simulate(ctx context.Context, c *Config) (Stats, error) {
	if c.Size < 0 || c.Size > squatter.MaxSize {
		return Stats{}, fmt.Errorf("bad board size: %d", c.Size)
	}
	n := c.Games
	if c.Swap {
		n *= 2
	}
	results := make([]Result, n)
	r := rand.New(rand.NewSource(uint64(c.Seed)))
	seeds := make([][2]int64, n)
	for i := range seeds {
		seeds[i] = [2]int64{r.Int63(), r.Int63()}
	}

	grp, ctx := errgroup.WithContext(ctx)
	if c.Threads > 0 {
		grp.SetLimit(c.Threads)
	}
	for g := 0; g < n; g++ {
		g := g
		grp.Go(func() error {
			p1 := squatter.White
			if c.Swap && g%2 == 1 {
				p1 = squatter.Black
			}
			res, err := c.playGame(ctx, g, p1, seeds[g])
			if err != nil {
				return fmt.Errorf("game %d: %w", g, err)
			}
			results[g] = res
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return Stats{}, err
	}

	var st Stats
	for _, r := range results {
		c.Log.Debug().
			Int("game", r.Game).
			Stringer("p1", r.P1Color).
			Stringer("winner", r.Winner).
			Int("white", r.Board.Scores(squatter.White).Capture).
			Int("black", r.Board.Scores(squatter.Black).Capture).
			Msg("[selfplay] game")
		st.add(r)
	}
	return st, nil
}

func (st *Stats) add(r Result) {
	for i, color := range [2]squatter.Color{r.P1Color, r.P1Color.Flip()} {
		st.Players[i].Captures += r.Board.Scores(color).Capture
	}
	var winner squatter.Color
	switch r.Winner {
	case squatter.WhiteWins:
		st.White++
		winner = squatter.White
	case squatter.BlackWins:
		st.Black++
		winner = squatter.Black
	default:
		st.Ties++
	}
	if winner != squatter.NoColor {
		pst := &st.Players[0]
		if winner != r.P1Color {
			pst = &st.Players[1]
		}
		pst.Wins++
		if winner == squatter.White {
			pst.WhiteWins++
		} else {
			pst.BlackWins++
		}
	}
	st.Games = append(st.Games, r)
}

func (c *Config) playGame(ctx context.Context, g int, p1 squatter.Color, seeds [2]int64) (Result, error) {
	one, err := c.newContestant(c.P1, p1, seeds[0])
	if err != nil {
		return Result{}, err
	}
	two, err := c.newContestant(c.P2, p1.Flip(), seeds[1])
	if err != nil {
		return Result{}, err
	}
	white, black := one, two
	if p1 != squatter.White {
		white, black = two, one
	}

	b := squatter.New(c.Size)
	var ms []squatter.Move
	toMove, other := white, black
	for !b.IsComplete() {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		m, err := toMove.MakeMove(ctx)
		if err != nil {
			return Result{}, err
		}
		if err := b.Apply(m); err != nil {
			return Result{}, fmt.Errorf("illegal move %s: %w", notation.FormatMove(m), err)
		}
		if err := other.OpponentMove(m); err != nil {
			return Result{}, err
		}
		ms = append(ms, m)
		toMove, other = other, toMove
	}
	return Result{
		Game:    g,
		P1Color: p1,
		Moves:   ms,
		Board:   b,
		Winner:  b.Winner(),
	}, nil
}
