// internal/game/engine.go
//
// Game driver for a single code-breaking session.
// Responsibilities:
//   - Ask the strategy for a guess and partition the candidates by it.
//   - Get the real score from the oracle and record it on the board.
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - The board is owned by the game; one goroutine drives it.
//   - A game is lost when MaxTurns guesses were made without completing,
//     or when the oracle's scores leave no candidate.
//   - randomID() is a compact hex identifier for correlating log lines.
package game

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/mastermind/internal/board"
	"github.com/robalobadob/mastermind/internal/outcome"
	"github.com/robalobadob/mastermind/internal/strategy"
)

const defaultMaxTurns = 10

var ErrGameFinished = errors.New("game finished")

// Game holds the state of one session.
type Game struct {
	ID       string
	MaxTurns int

	board    *board.Board
	strategy strategy.Strategy
	oracle   Oracle
	turns    []Turn
	state    State
}

// New constructs a game over b. maxTurns <= 0 selects the default of 10.
func New(b *board.Board, s strategy.Strategy, o Oracle, maxTurns int) *Game {
	if maxTurns <= 0 {
		maxTurns = defaultMaxTurns
	}
	return &Game{
		ID:       randomID(),
		MaxTurns: maxTurns,
		board:    b,
		strategy: s,
		oracle:   o,
		state:    StatePlaying,
	}
}

// Step plays one turn and returns its record.
//
// State transitions:
//   - Board complete → StateWon.
//   - No candidates left, or MaxTurns reached → StateLost.
func (g *Game) Step(ctx context.Context) (Turn, error) {
	if g.state != StatePlaying {
		return Turn{}, fmt.Errorf("%w: %s", ErrGameFinished, g.state)
	}

	start := time.Now()
	guess, err := g.strategy.Select(ctx, g.board)
	if err != nil {
		if errors.Is(err, strategy.ErrNoCandidates) {
			g.state = StateLost
		}
		return Turn{}, fmt.Errorf("select guess: %w", err)
	}
	took := time.Since(start)

	t := Turn{
		Number:   len(g.turns) + 1,
		Guess:    guess,
		Outcomes: outcome.Count(guess, g.board.Candidates()),
		Before:   g.board.Len(),
		Took:     took,
	}

	score, err := g.oracle.Score(guess)
	if err != nil {
		return Turn{}, fmt.Errorf("score guess %s: %w", guess, err)
	}
	if err := g.board.AddGuess(guess, score); err != nil {
		return Turn{}, err
	}
	t.Score = score
	t.Remaining = g.board.Len()
	g.turns = append(g.turns, t)

	done, _ := g.board.IsComplete()
	switch {
	case done:
		g.state = StateWon
	case g.board.Len() == 0 || len(g.turns) >= g.MaxTurns:
		g.state = StateLost
	}

	log.Debug().
		Str("game", g.ID).
		Int("turn", t.Number).
		Stringer("guess", guess).
		Stringer("score", score).
		Int("remaining", t.Remaining).
		Dur("took", took).
		Msg("turn")
	return t, nil
}

// Run steps until the game is over. onTurn, if set, sees every turn.
func (g *Game) Run(ctx context.Context, onTurn func(Turn)) (State, error) {
	for g.state == StatePlaying {
		t, err := g.Step(ctx)
		if err != nil {
			return g.state, err
		}
		if onTurn != nil {
			onTurn(t)
		}
	}
	log.Info().
		Str("game", g.ID).
		Str("state", string(g.state)).
		Int("turns", len(g.turns)).
		Msg("game over")
	return g.state, nil
}

// State reports the current state.
func (g *Game) State() State { return g.state }

// Turns returns a copy of the turns played so far.
func (g *Game) Turns() []Turn { return append([]Turn(nil), g.turns...) }

// Board exposes the underlying board for rendering.
func (g *Game) Board() *board.Board { return g.board }

// randomID returns a compact 16‑hex‑char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
