// Package sei implements a line-oriented engine protocol, in the
// spirit of UCI, that lets a referee drive an agent over a pipe.
package sei

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/squatter-ai/squatter/agent"
	"github.com/squatter-ai/squatter/ai"
	"github.com/squatter-ai/squatter/notation"
	"github.com/squatter-ai/squatter/squatter"
)

var errNoGame = errors.New("no game in progress")

type Engine struct {
	// ConfigFactory supplies search settings for each new game.
	ConfigFactory func(size int) ai.MinimaxConfig
	Log           zerolog.Logger

	in  *bufio.Reader
	out io.Writer

	agent *agent.Agent
}

func NewEngine(in io.Reader, out io.Writer) *Engine {
	return &Engine{
		in:  bufio.NewReader(in),
		out: out,
		Log: zerolog.Nop(),
	}
}

// Run serves commands until quit or end of input.
func (e *Engine) Run(ctx context.Context) error {
	for {
		line, err := e.in.ReadString('\n')
		if err == io.EOF && line == "" {
			return nil
		}
		if err != nil && err != io.EOF {
			return err
		}
		words := strings.Fields(line)
		if len(words) == 0 {
			continue
		}
		e.Log.Debug().Str("cmd", line).Msg("[sei] recv")
		switch words[0] {
		case "sei":
			fmt.Fprintln(e.out, "id name Squatter")
			fmt.Fprintln(e.out, "id author Squatter authors")
			fmt.Fprintln(e.out, "seiok")
		case "quit":
			return nil
		case "newgame":
			e.reply(e.newGame(words[1:]))
		case "opponent":
			e.reply(e.opponent(words[1:]))
		case "go":
			if e.agent == nil {
				e.reply(errNoGame)
				break
			}
			m, err := e.agent.MakeMove(ctx)
			if err != nil {
				e.reply(err)
				break
			}
			fmt.Fprintf(e.out, "bestmove %s\n", notation.FormatMove(m))
		case "winner":
			r := squatter.InProgress
			if e.agent != nil {
				r = e.agent.Winner()
			}
			fmt.Fprintf(e.out, "winner %s\n", r)
		case "board":
			if e.agent != nil {
				if err := e.agent.PrintBoard(e.out); err != nil {
					return err
				}
			}
			fmt.Fprintln(e.out, ".")
		case "isready":
			fmt.Fprintln(e.out, "readyok")
		default:
			return fmt.Errorf("Unknown command: %q", strings.TrimSpace(line))
		}
		if err == io.EOF {
			return nil
		}
	}
}

func (e *Engine) reply(err error) {
	if err != nil {
		e.Log.Warn().Err(err).Msg("[sei] command failed")
		fmt.Fprintf(e.out, "error %s\n", err)
		return
	}
	fmt.Fprintln(e.out, "ok")
}

func (e *Engine) newGame(args []string) error {
	if len(args) != 2 {
		return errors.New("usage: newgame <size> <white|black>")
	}
	size, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("bad size: %q", args[0])
	}
	color, err := notation.ParseColor(args[1])
	if err != nil {
		return err
	}
	var cfg ai.MinimaxConfig
	if e.ConfigFactory != nil {
		cfg = e.ConfigFactory(size)
	}
	a, err := agent.New(size, color, cfg)
	if err != nil {
		return err
	}
	e.agent = a
	return nil
}

func (e *Engine) opponent(args []string) error {
	if e.agent == nil {
		return errNoGame
	}
	if len(args) != 1 {
		return errors.New("usage: opponent <move>")
	}
	m, err := notation.ParseMove(args[0])
	if err != nil {
		return err
	}
	if m.Color == squatter.NoColor {
		m.Color = e.agent.Color().Flip()
	}
	return e.agent.OpponentMove(m)
}
