package opt

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/squatter-ai/squatter/ai"
)

type Minimax struct {
	Seed    int64
	Depth   int
	Threads int
	NoPrune bool
	Weights string
	Debug   bool
}

func (o *Minimax) AddFlags(flags *flag.FlagSet) {
	flags.Int64Var(&o.Seed, "seed", 0, "specify a seed")
	flags.IntVar(&o.Depth, "depth", 0, "minimax depth (0 uses the stage schedule)")
	flags.IntVar(&o.Threads, "threads", 1, "score root moves in parallel")
	flags.BoolVar(&o.NoPrune, "no-prune", false, "disable alpha-beta cutoffs")
	flags.StringVar(&o.Weights, "weights", "", "JSON-encoded evaluation weights, used at every stage")
	flags.BoolVar(&o.Debug, "debug", false, "log search statistics")
}

// BuildConfig returns search settings for a size x size game. Color is
// left for the caller.
func (o *Minimax) BuildConfig(size int) (ai.MinimaxConfig, error) {
	if o.Depth < 0 {
		return ai.MinimaxConfig{}, errors.New("-depth must not be negative")
	}
	cfg := ai.MinimaxConfig{
		Size:    size,
		Depth:   o.Depth,
		Seed:    o.Seed,
		Threads: o.Threads,
		NoPrune: o.NoPrune,
	}
	if o.Weights != "" {
		var w ai.Weights
		if err := json.Unmarshal([]byte(o.Weights), &w); err != nil {
			return cfg, fmt.Errorf("parse weights: %w", err)
		}
		var s ai.Schedule
		for i := range s {
			s[i] = w
		}
		cfg.Schedule = &s
	}
	l := log.Logger.Level(zerolog.InfoLevel)
	if o.Debug {
		l = log.Logger.Level(zerolog.DebugLevel)
	}
	cfg.Log = &l
	return cfg, nil
}

// Factory is BuildConfig for callers that have already validated the
// flags.
func (o *Minimax) Factory(size int) ai.MinimaxConfig {
	cfg, err := o.BuildConfig(size)
	if err != nil {
		log.Fatal().Err(err).Msg("bad search flags")
	}
	return cfg
}
