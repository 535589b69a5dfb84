package play

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	"github.com/squatter-ai/squatter/ai"
	"github.com/squatter-ai/squatter/ai/mcts"
	"github.com/squatter-ai/squatter/cli"
	"github.com/squatter-ai/squatter/cmd/internal/opt"
	"github.com/squatter-ai/squatter/squatter"
)

type Command struct {
	white   string
	black   string
	size    int
	limit   time.Duration
	explain bool

	opt opt.Minimax
}

func (*Command) Name() string     { return "play" }
func (*Command) Synopsis() string { return "Play Squatter from the command line" }
func (*Command) Usage() string {
	return `play [flags]

Play Squatter on the command-line, against a human or AI. Players are
"human", "rand[:seed]", "mcts[:playouts]" or "minimax".
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.white, "white", "human", "white player")
	flags.StringVar(&c.black, "black", "minimax", "black player")
	flags.IntVar(&c.size, "size", 6, "board size")
	flags.DurationVar(&c.limit, "limit", 0, "ai time limit per move")
	flags.BoolVar(&c.explain, "explain", true, "print the score table at the end")
	c.opt.AddFlags(flags)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.size < 0 || c.size > squatter.MaxSize {
		log.Error().Int("size", c.size).Msg("-size out of range")
		return subcommands.ExitUsageError
	}
	in := bufio.NewReader(os.Stdin)
	white, err := c.parsePlayer(in, squatter.White, c.white)
	if err != nil {
		log.Error().Err(err).Msg("-white")
		return subcommands.ExitUsageError
	}
	black, err := c.parsePlayer(in, squatter.Black, c.black)
	if err != nil {
		log.Error().Err(err).Msg("-black")
		return subcommands.ExitUsageError
	}
	st := &cli.CLI{
		Size:    c.size,
		Out:     os.Stdout,
		White:   white,
		Black:   black,
		Explain: c.explain,
		Weights: ai.DefaultSchedule.At(c.size * c.size),
	}
	b := st.Play(ctx)
	if !b.IsComplete() {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type aiWrapper struct {
	limit time.Duration
	p     ai.Player
}

func (a *aiWrapper) GetMove(ctx context.Context, b *squatter.Board) squatter.Move {
	if a.limit != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.limit)
		defer cancel()
	}
	return a.p.GetMove(ctx, b)
}

func (c *Command) parsePlayer(in *bufio.Reader, color squatter.Color, s string) (cli.Player, error) {
	switch {
	case s == "human":
		return cli.NewCLIPlayer(color, os.Stdout, in), nil
	case s == "rand" || strings.HasPrefix(s, "rand:"):
		var seed int64
		if len(s) > len("rand") {
			i, err := strconv.ParseInt(s[len("rand:"):], 10, 64)
			if err != nil {
				return nil, err
			}
			seed = i
		}
		return &aiWrapper{c.limit, ai.NewRandom(color, seed)}, nil
	case s == "mcts" || strings.HasPrefix(s, "mcts:"):
		n := 1000
		if len(s) > len("mcts") {
			i, err := strconv.Atoi(s[len("mcts:"):])
			if err != nil {
				return nil, err
			}
			n = i
		}
		return &aiWrapper{c.limit, mcts.NewMonteCarlo(mcts.MCTSConfig{
			Size:       c.size,
			Color:      color,
			Iterations: n,
			Limit:      c.limit,
			Seed:       c.opt.Seed,
		})}, nil
	case s == "minimax":
		cfg, err := c.opt.BuildConfig(c.size)
		if err != nil {
			return nil, err
		}
		cfg.Color = color
		return &aiWrapper{c.limit, ai.NewMinimax(cfg)}, nil
	}
	return nil, fmt.Errorf("unparseable player: %q", s)
}
