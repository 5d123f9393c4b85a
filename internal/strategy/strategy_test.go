package strategy

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/robalobadob/mastermind/internal/board"
	"github.com/robalobadob/mastermind/internal/memo"
	"github.com/robalobadob/mastermind/internal/outcome"
	"github.com/robalobadob/mastermind/internal/peg"
)

// exhaustive is the plain definition: first code with the smallest largest
// bucket, no pruning.
func exhaustive(universe, cands []peg.Code) peg.Code {
	best, bestWorst := universe[0], math.MaxInt
	for _, g := range universe {
		if w := outcome.Count(g, cands).Max(); w < bestWorst {
			best, bestWorst = g, w
		}
	}
	return best
}

func mustBoard(t *testing.T, d peg.Dims) *board.Board {
	t.Helper()
	b, err := board.New(d)
	if err != nil {
		t.Fatalf("board.New: %v", err)
	}
	return b
}

func TestGreedy_SingleCandidate(t *testing.T) {
	d := peg.Dims{Pegs: 2, Colors: 2}
	b := mustBoard(t, d)
	secret := peg.MustNew(d, 1, 0)
	for _, g := range []peg.Code{peg.MustNew(d, 0, 0), peg.MustNew(d, 0, 1)} {
		if err := b.AddGuess(g, peg.Grade(secret, g)); err != nil {
			t.Fatalf("AddGuess: %v", err)
		}
	}
	got, err := NewGreedy(peg.Universe(d)).Select(context.Background(), b)
	if err != nil || got != secret {
		t.Fatalf("Select = %s, %v; want %s", got, err, secret)
	}
}

func TestGreedy_NoCandidates(t *testing.T) {
	b := mustBoard(t, peg.Classic)
	if err := b.AddGuess(peg.MustNew(peg.Classic, 1, 2, 3, 4), peg.Score{Black: 3, White: 1}); err != nil {
		t.Fatalf("AddGuess: %v", err)
	}
	_, err := NewGreedy(peg.Universe(peg.Classic)).Select(context.Background(), b)
	if !errors.Is(err, ErrNoCandidates) {
		t.Fatalf("expected ErrNoCandidates, got %v", err)
	}
}

func TestGreedy_UniverseMismatch(t *testing.T) {
	b := mustBoard(t, peg.Classic)
	_, err := NewGreedy(peg.Universe(peg.Dims{Pegs: 3, Colors: 8})).Select(context.Background(), b)
	if !errors.Is(err, peg.ErrDimsMismatch) {
		t.Fatalf("expected ErrDimsMismatch, got %v", err)
	}
}

func TestGreedy_MatchesExhaustiveForAnyWorkerCount(t *testing.T) {
	d := peg.Dims{Pegs: 3, Colors: 5}
	universe := peg.Universe(d)
	ctx := context.Background()

	for _, secret := range []peg.Code{universe[0], universe[31], universe[77], universe[124]} {
		b := mustBoard(t, d)
		for turn := 0; turn < 3 && b.Len() > 1; turn++ {
			want := exhaustive(universe, b.Candidates())
			for _, workers := range []int{1, 2, 3, 8, 1000} {
				got, err := NewGreedy(universe, WithWorkers(workers)).Select(ctx, b)
				if err != nil {
					t.Fatalf("Select(workers=%d): %v", workers, err)
				}
				if got != want {
					t.Fatalf("secret %s turn %d workers=%d: got %s, want %s", secret, turn, workers, got, want)
				}
			}
			if err := b.AddGuess(want, peg.Grade(secret, want)); err != nil {
				t.Fatalf("AddGuess: %v", err)
			}
		}
	}
}

func TestGreedy_TieBreakIsUniverseOrder(t *testing.T) {
	// On a fresh 1x3 board every guess splits the candidates 1/2, so the
	// first code must win.
	d := peg.Dims{Pegs: 1, Colors: 3}
	universe := peg.Universe(d)
	got, err := NewGreedy(universe, WithWorkers(3)).Select(context.Background(), mustBoard(t, d))
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if got != universe[0] {
		t.Fatalf("Select = %s, want %s", got, universe[0])
	}
}

func TestGreedy_UsesMemo(t *testing.T) {
	d := peg.Dims{Pegs: 3, Colors: 4}
	st := memo.NewMemoryStore()
	g := NewGreedy(peg.Universe(d), WithMemo(st))
	ctx := context.Background()

	first, err := g.Select(ctx, mustBoard(t, d))
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if st.Len() != 1 {
		t.Fatalf("memo has %d entries, want 1", st.Len())
	}
	// A planted entry proves the second call reads the memo.
	planted := peg.MustNew(d, 3, 3, 3)
	if err := st.Save(ctx, d.String(), planted); err != nil {
		t.Fatalf("Save: %v", err)
	}
	again, err := g.Select(ctx, mustBoard(t, d))
	if err != nil || again != planted {
		t.Fatalf("Select = %s, %v; want memo entry %s (first pick %s)", again, err, planted, first)
	}
}

func TestGreedy_SolvesEverySmallSecret(t *testing.T) {
	d := peg.Dims{Pegs: 3, Colors: 4}
	universe := peg.Universe(d)
	g := NewGreedy(universe, WithMemo(memo.NewMemoryStore()), WithWorkers(4))
	for _, secret := range universe {
		turns := play(t, g, d, secret, 8)
		if turns > 8 {
			t.Fatalf("secret %s took %d turns", secret, turns)
		}
	}
}

func TestGreedy_SolvesClassicSecrets(t *testing.T) {
	if testing.Short() {
		t.Skip("classic simulation is slow")
	}
	universe := peg.Universe(peg.Classic)
	g := NewGreedy(universe, WithMemo(memo.NewMemoryStore()), WithWorkers(4))
	for i := 0; i < len(universe); i += 97 {
		play(t, g, peg.Classic, universe[i], 10)
	}
}

// play runs one game and fails the test if the secret is pruned or the game
// runs past limit turns.
func play(t *testing.T, g Strategy, d peg.Dims, secret peg.Code, limit int) int {
	t.Helper()
	ctx := context.Background()
	b := mustBoard(t, d)
	for turn := 1; turn <= limit; turn++ {
		guess, err := g.Select(ctx, b)
		if err != nil {
			t.Fatalf("secret %s turn %d: %v", secret, turn, err)
		}
		prev := b.Len()
		if err := b.AddGuess(guess, peg.Grade(secret, guess)); err != nil {
			t.Fatalf("secret %s turn %d: AddGuess: %v", secret, turn, err)
		}
		if b.Len() > prev {
			t.Fatalf("secret %s: candidates grew from %d to %d", secret, prev, b.Len())
		}
		if !b.Contains(secret) {
			t.Fatalf("secret %s pruned at turn %d", secret, turn)
		}
		if done, _ := b.IsComplete(); done {
			return turn
		}
	}
	t.Fatalf("secret %s not solved within %d turns", secret, limit)
	return limit + 1
}

func TestMinBy_FirstWins(t *testing.T) {
	got := minBy([]pick{{0, 5}, {1, 3}, {2, 3}, {3, 4}}, func(p pick) int { return p.worst })
	if got.index != 1 {
		t.Fatalf("minBy picked index %d, want 1", got.index)
	}
}
