package game

import (
	"context"
	"errors"
	"testing"

	"github.com/robalobadob/mastermind/internal/board"
	"github.com/robalobadob/mastermind/internal/memo"
	"github.com/robalobadob/mastermind/internal/peg"
	"github.com/robalobadob/mastermind/internal/strategy"
)

var small = peg.Dims{Pegs: 3, Colors: 4}

func newGame(t *testing.T, d peg.Dims, o Oracle, maxTurns int) *Game {
	t.Helper()
	b, err := board.New(d)
	if err != nil {
		t.Fatalf("board.New: %v", err)
	}
	return New(b, strategy.NewGreedy(peg.Universe(d)), o, maxTurns)
}

func TestRun_FindsSecret(t *testing.T) {
	secret := peg.MustNew(small, 3, 0, 3)
	g := newGame(t, small, SecretOracle{Secret: secret}, 0)
	if g.MaxTurns != defaultMaxTurns {
		t.Fatalf("MaxTurns = %d, want default", g.MaxTurns)
	}
	var seen []Turn
	st, err := g.Run(context.Background(), func(tn Turn) { seen = append(seen, tn) })
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if st != StateWon || g.State() != StateWon {
		t.Fatalf("state = %s, want won", st)
	}
	turns := g.Turns()
	if len(seen) != len(turns) {
		t.Fatalf("callback saw %d turns, game has %d", len(seen), len(turns))
	}
	last := turns[len(turns)-1]
	if last.Guess != secret || last.Score != peg.Win(3) {
		t.Fatalf("last turn %+v, want the secret with all black", last)
	}
	for i, tn := range turns {
		if tn.Number != i+1 {
			t.Fatalf("turn %d numbered %d", i+1, tn.Number)
		}
		if tn.Outcomes.Total() != tn.Before {
			t.Fatalf("turn %d: histogram total %d, before %d", tn.Number, tn.Outcomes.Total(), tn.Before)
		}
		if got := tn.Outcomes.At(tn.Score, 3); got != tn.Remaining {
			t.Fatalf("turn %d: bucket of observed score %d, remaining %d", tn.Number, got, tn.Remaining)
		}
	}
}

func TestStep_AfterFinish(t *testing.T) {
	secret := peg.MustNew(small, 1, 1, 2)
	g := newGame(t, small, SecretOracle{Secret: secret}, 0)
	if _, err := g.Run(context.Background(), nil); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if _, err := g.Step(context.Background()); !errors.Is(err, ErrGameFinished) {
		t.Fatalf("expected ErrGameFinished, got %v", err)
	}
}

func TestRun_LostOnTurnLimit(t *testing.T) {
	secret := peg.MustNew(peg.Classic, 7, 6, 5, 4)
	b, _ := board.New(peg.Classic)
	g := New(b, strategy.NewGreedy(peg.Universe(peg.Classic), strategy.WithWorkers(4)), SecretOracle{Secret: secret}, 1)
	st, err := g.Run(context.Background(), nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if st != StateLost || len(g.Turns()) != 1 {
		t.Fatalf("state %s after %d turns, want lost after 1", st, len(g.Turns()))
	}
}

func TestRun_LostOnInconsistentScores(t *testing.T) {
	liar := OracleFunc(func(peg.Code) (peg.Score, error) {
		return peg.Score{Black: 2, White: 1}, nil // unreachable for 3 pegs
	})
	g := newGame(t, small, liar, 0)
	st, err := g.Run(context.Background(), nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if st != StateLost || g.Board().Len() != 0 {
		t.Fatalf("state %s with %d candidates, want lost with none", st, g.Board().Len())
	}
}

func TestStep_OracleError(t *testing.T) {
	boom := errors.New("boom")
	g := newGame(t, small, OracleFunc(func(peg.Code) (peg.Score, error) { return peg.Score{}, boom }), 0)
	if _, err := g.Step(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected oracle error, got %v", err)
	}
	if g.State() != StatePlaying || g.Board().Turns() != 0 {
		t.Fatalf("failed step changed the game")
	}
}

func TestSecretOracle_DimsMismatch(t *testing.T) {
	o := SecretOracle{Secret: peg.MustNew(small, 0, 0, 0)}
	if _, err := o.Score(peg.MustNew(peg.Classic, 0, 0, 0, 0)); !errors.Is(err, peg.ErrDimsMismatch) {
		t.Fatalf("expected ErrDimsMismatch, got %v", err)
	}
}

func TestEvaluate_AllSmallSecrets(t *testing.T) {
	universe := peg.Universe(small)
	s := strategy.NewGreedy(universe, strategy.WithMemo(memo.NewMemoryStore()), strategy.WithWorkers(2))
	calls := 0
	stats, err := Evaluate(context.Background(), small, universe, s, universe, 10,
		func(peg.Code, State, int) { calls++ })
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if stats.Games != len(universe) || calls != len(universe) {
		t.Fatalf("played %d games, %d callbacks; want %d", stats.Games, calls, len(universe))
	}
	if stats.Won != stats.Games || len(stats.Lost) != 0 {
		t.Fatalf("lost games: %v", stats.Lost)
	}
	total := 0
	for turns, n := range stats.Distribution {
		if turns > stats.MaxTurns {
			t.Fatalf("distribution has %d turns beyond max %d", turns, stats.MaxTurns)
		}
		total += n
	}
	if total != stats.Won {
		t.Fatalf("distribution covers %d games, want %d", total, stats.Won)
	}
	if avg := stats.Average(); avg < 1 || avg > float64(stats.MaxTurns) {
		t.Fatalf("average %.2f out of range", avg)
	}
	if stats.String() == "" {
		t.Fatalf("empty summary")
	}
}
