package selfplay

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	"github.com/squatter-ai/squatter/cmd/internal/opt"
)

type Command struct {
	size     int
	p1       string
	p2       string
	seed     int64
	games    int
	swap     bool
	threads  int
	playouts int
	summary  string

	opt opt.Minimax
}

func (*Command) Name() string     { return "selfplay" }
func (*Command) Synopsis() string { return "Play two AIs against each other and report results" }
func (*Command) Usage() string {
	return `selfplay [flags]

Plays games between two engines ("minimax", "mcts" or "rand") in-process and
prints a win table. Search flags apply to every minimax player.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.size, "size", 6, "board size")
	flags.StringVar(&c.p1, "p1", "minimax", "player1 engine")
	flags.StringVar(&c.p2, "p2", "rand", "player2 engine")
	flags.Int64Var(&c.seed, "game-seed", 0, "starting random seed for games")
	flags.IntVar(&c.games, "games", 10, "number of games to play per color")
	flags.BoolVar(&c.swap, "swap", true, "swap colors each game")
	flags.IntVar(&c.threads, "parallel", 4, "number of games to play at once")
	flags.IntVar(&c.playouts, "playouts", 1000, "playouts per mcts move")
	flags.StringVar(&c.summary, "summary", "", "write summary JSON to this file (- for stdout)")
	c.opt.AddFlags(flags)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.seed == 0 {
		c.seed = time.Now().Unix()
	}
	if _, err := c.opt.BuildConfig(c.size); err != nil {
		log.Error().Err(err).Msg("selfplay")
		return subcommands.ExitUsageError
	}
	cfg := &Config{
		Size:     c.size,
		Games:    c.games,
		Threads:  c.threads,
		Seed:     c.seed,
		Swap:     c.swap,
		P1:       c.p1,
		P2:       c.p2,
		Search:   c.opt.Factory,
		Playouts: c.playouts,
		Log:      log.Logger,
	}
	st, err := Simulate(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Msg("selfplay")
		return subcommands.ExitFailure
	}

	log.Info().
		Int("games", st.Count()).
		Int64("seed", c.seed).
		Int("ties", st.Ties).
		Int("white", st.White).
		Int("black", st.Black).
		Msg("done")
	writeTable(os.Stderr, &st)

	a, b := int64(st.Players[0].Wins), int64(st.Players[1].Wins)
	if a < b {
		a, b = b, a
	}
	log.Info().Float64("p", binomTest(a, b, 0.5)).Msg("one-sided")

	if c.summary != "" {
		if err := c.writeSummary(c.summary, &st); err != nil {
			log.Error().Err(err).Msg("writing summary")
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}

func writeTable(out io.Writer, st *Stats) {
	tw := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "\twhite\tblack\tsum\tcaptures\n")
	for i, p := range st.Players {
		fmt.Fprintf(tw, "p%d\t%d\t%d\t%d\t%d\n", i+1, p.WhiteWins, p.BlackWins, p.Wins, p.Captures)
	}
	fmt.Fprintf(tw, "sum\t%d\t%d\t%d\t\n", st.White, st.Black, st.White+st.Black)
	tw.Flush()
}

type Summary struct {
	Cmdline []string
	Player1 string
	Player2 string
	Size    int
	Seed    int64
	Stats   *Stats
}

func (c *Command) writeSummary(path string, stats *Stats) error {
	summary := Summary{
		Cmdline: os.Args,
		Player1: c.p1,
		Player2: c.p2,
		Size:    c.size,
		Seed:    c.seed,
		Stats:   stats,
	}
	bs, err := json.MarshalIndent(&summary, "", "  ")
	if err != nil {
		return err
	}
	bs = append(bs, '\n')
	if path == "-" {
		_, err = os.Stdout.Write(bs)
		return err
	}
	return os.WriteFile(path, bs, 0644)
}
