// app.go
//
// CLI modes wired on top of the engine packages.
// Responsibilities:
//   - Build the universe, memo and greedy strategy once per process.
//   - Pick a secret supplier from config (fixed, daily, seeded random).
//   - Drive games automatically, interactively, or over many secrets.
//   - Print histograms and boards through the render package.

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"

	"github.com/robalobadob/mastermind/internal/board"
	"github.com/robalobadob/mastermind/internal/config"
	"github.com/robalobadob/mastermind/internal/game"
	"github.com/robalobadob/mastermind/internal/memo"
	"github.com/robalobadob/mastermind/internal/outcome"
	"github.com/robalobadob/mastermind/internal/peg"
	"github.com/robalobadob/mastermind/internal/render"
	"github.com/robalobadob/mastermind/internal/secret"
	"github.com/robalobadob/mastermind/internal/strategy"
)

var errQuit = errors.New("quit")

// app bundles the shared pieces every mode needs.
type app struct {
	cfg      config.Config
	dims     peg.Dims
	universe []peg.Code
	strategy strategy.Strategy
	out      render.Printer
}

func newApp(cfg config.Config, w io.Writer) *app {
	d := cfg.Dims()
	universe := peg.Universe(d)
	st := strategy.NewGreedy(universe,
		strategy.WithWorkers(cfg.Workers),
		strategy.WithMemo(memo.NewBoundedStore(cfg.MemoLimit)),
	)
	return &app{
		cfg:      cfg,
		dims:     d,
		universe: universe,
		strategy: st,
		out:      render.Printer{W: w, Color: cfg.Color},
	}
}

// supplier picks the secret source: fixed secret, then daily, then random.
func (a *app) supplier() (secret.Supplier, error) {
	switch {
	case a.cfg.Secret != "":
		c, err := peg.Parse(a.dims, a.cfg.Secret)
		if err != nil {
			return nil, err
		}
		return secret.Fixed(c), nil
	case a.cfg.DailySalt != "":
		return secret.NewDaily(a.universe, a.cfg.DailySalt, nil)
	default:
		seed := a.cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		log.Debug().Int64("seed", seed).Msg("random secret")
		return secret.NewSeeded(a.dims, seed), nil
	}
}

func (a *app) newGame(o game.Oracle) *game.Game {
	return game.New(board.NewWithUniverse(a.dims, a.universe), a.strategy, o, a.cfg.MaxTurns)
}

// auto solves one secret and narrates every turn.
func (a *app) auto(ctx context.Context) error {
	sup, err := a.supplier()
	if err != nil {
		return err
	}
	code, err := sup.Secret()
	if err != nil {
		return err
	}

	w := a.out.W
	a.out.Legend(a.dims)
	fmt.Fprintln(w, "Starting")
	g := a.newGame(game.SecretOracle{Secret: code})
	st, err := g.Run(ctx, func(t game.Turn) {
		fmt.Fprintln(w, "Outcome distribution for selected guess:")
		a.out.Histogram(t.Outcomes, a.dims.Pegs)
		fmt.Fprintf(w, "Tried row: %s (%s)  > %s. ", a.out.Code(t.Guess), t.Guess, t.Score)
		fmt.Fprintf(w, "... %d possibilities left\n", t.Remaining)
	})
	if err != nil {
		return err
	}
	a.out.Board(g.Board())
	fmt.Fprintf(w, "Secret was: %s (%s), game %s in %d turns\n", a.out.Code(code), code, st, len(g.Turns()))
	return nil
}

// play lets a human keep the secret and type scores.
func (a *app) play(ctx context.Context, in io.Reader) error {
	w := a.out.W
	sc := bufio.NewScanner(in)
	fmt.Fprintf(w, "Think of a code of %d pegs.\n", a.dims.Pegs)
	a.out.Legend(a.dims)
	fmt.Fprintln(w, "For each guess, answer with black and white pegs, e.g. \"2 1\" or \"oow\" (\"-\" for none, q to quit).")

	oracle := game.OracleFunc(func(guess peg.Code) (peg.Score, error) {
		return askScore(w, sc, a.out.Code(guess), guess, a.dims.Pegs)
	})
	g := a.newGame(oracle)
	st, err := g.Run(ctx, func(t game.Turn) {
		fmt.Fprintf(w, "%d possibilities left\n", t.Remaining)
	})
	switch {
	case errors.Is(err, errQuit):
		fmt.Fprintln(w, "quitting")
		return nil
	case err != nil:
		return err
	}
	a.out.Board(g.Board())
	switch {
	case st == game.StateWon:
		last := g.Turns()[len(g.Turns())-1]
		fmt.Fprintf(w, "Found solution: %s (%s) in %d steps.\n", a.out.Code(last.Guess), last.Guess, last.Number)
	case g.Board().Len() == 0:
		fmt.Fprintln(w, "No code matches those scores.")
	default:
		fmt.Fprintln(w, "No solution found.")
	}
	return nil
}

// askScore prompts until the user types a score that fits pegs.
func askScore(w io.Writer, sc *bufio.Scanner, shown string, guess peg.Code, pegs int) (peg.Score, error) {
	for {
		fmt.Fprintf(w, "\nMy guess is %s (%s)\nBlack pegs, white pegs? ", shown, guess)
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return peg.Score{}, err
			}
			return peg.Score{}, errQuit
		}
		line := strings.TrimSpace(sc.Text())
		if strings.EqualFold(line, "q") {
			return peg.Score{}, errQuit
		}
		s, err := peg.ParseScore(line)
		if err != nil || !s.Valid(pegs) {
			fmt.Fprintf(w, "Invalid input %q\n", line)
			continue
		}
		return s, nil
	}
}

// evaluate solves every stride-th code of the universe.
func (a *app) evaluate(ctx context.Context, args []string) error {
	stride := 1
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return fmt.Errorf("evaluate: stride must be a positive number, got %q", args[0])
		}
		stride = n
	}
	var secrets []peg.Code
	for i := 0; i < len(a.universe); i += stride {
		secrets = append(secrets, a.universe[i])
	}

	bar := progressbar.Default(int64(len(secrets)), "evaluating")
	start := time.Now()
	stats, err := game.Evaluate(ctx, a.dims, a.universe, a.strategy, secrets, a.cfg.MaxTurns,
		func(peg.Code, game.State, int) { _ = bar.Add(1) })
	_ = bar.Finish()
	if err != nil {
		return err
	}
	log.Info().
		Int("games", stats.Games).
		Int("won", stats.Won).
		Float64("average", stats.Average()).
		Int("max_turns", stats.MaxTurns).
		Dur("took", time.Since(start)).
		Msg("evaluation complete")
	fmt.Fprint(a.out.W, stats)
	for _, c := range stats.Lost {
		fmt.Fprintf(a.out.W, "Lost! %s\n", c)
	}
	return nil
}

// outcomes prints how a guess splits the whole universe.
func (a *app) outcomes(args []string) error {
	if len(args) != 1 {
		return errors.New("outcomes: need exactly one GUESS")
	}
	guess, err := peg.Parse(a.dims, args[0])
	if err != nil {
		return err
	}
	h := outcome.Count(guess, a.universe)
	fmt.Fprintf(a.out.W, "%s (%s):\n", a.out.Code(guess), guess)
	a.out.Histogram(h, a.dims.Pegs)
	fmt.Fprintf(a.out.W, "worst case %d, %d partitions\n", h.Max(), h.Partitions())
	return nil
}
