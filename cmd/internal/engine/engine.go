package engine

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	"github.com/squatter-ai/squatter/cmd/internal/opt"
	"github.com/squatter-ai/squatter/sei"
)

type Command struct {
	opt opt.Minimax
}

func (*Command) Name() string     { return "engine" }
func (*Command) Synopsis() string { return "Launch Squatter in SEI engine mode" }
func (*Command) Usage() string {
	return `engine [flags]

Launch the engine in SEI mode, a UCI-like protocol on stdin/stdout
suitable for being driven by a referee or controller.
`
}

func (c *Command) SetFlags(fs *flag.FlagSet) {
	c.opt.AddFlags(fs)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if _, err := c.opt.BuildConfig(0); err != nil {
		log.Error().Err(err).Msg("engine")
		return subcommands.ExitUsageError
	}
	engine := sei.NewEngine(os.Stdin, os.Stdout)
	engine.ConfigFactory = c.opt.Factory
	engine.Log = log.Logger
	if err := engine.Run(ctx); err != nil {
		log.Error().Err(err).Msg("sei")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
