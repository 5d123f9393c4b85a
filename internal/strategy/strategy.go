// internal/strategy/strategy.go
//
// Guess selection.
//
// Greedy is a one-ply minimax: every code of the universe is tried as the
// next guess, the candidates are partitioned by the score they would give,
// and the guess whose largest partition is smallest wins. Ties go to the
// code that comes first in universe order.
//
// The universe can be split into contiguous chunks searched by separate
// goroutines. Each chunk reports its own first-best guess and chunks are
// merged in order, so the result never depends on the worker count.
package strategy

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/mastermind/internal/board"
	"github.com/robalobadob/mastermind/internal/memo"
	"github.com/robalobadob/mastermind/internal/outcome"
	"github.com/robalobadob/mastermind/internal/peg"
)

var ErrNoCandidates = errors.New("no candidates left; scores are inconsistent")

// Strategy picks the next guess for a board.
type Strategy interface {
	Name() string
	Select(ctx context.Context, b *board.Board) (peg.Code, error)
}

// Greedy implements the worst-case minimizing strategy.
type Greedy struct {
	universe []peg.Code
	workers  int
	memo     memo.Store
}

// Option configures a Greedy.
type Option func(*Greedy)

// WithWorkers sets how many goroutines search the universe. Values below 2
// search sequentially.
func WithWorkers(n int) Option { return func(g *Greedy) { g.workers = n } }

// WithMemo makes Greedy remember its picks per board signature.
func WithMemo(st memo.Store) Option { return func(g *Greedy) { g.memo = st } }

// NewGreedy builds a Greedy over universe, which must be peg.Universe of the
// boards it will be asked about.
func NewGreedy(universe []peg.Code, opts ...Option) *Greedy {
	g := &Greedy{universe: universe, workers: 1}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Greedy) Name() string { return "greedy-minimax" }

// Select returns the next guess for b.
func (g *Greedy) Select(ctx context.Context, b *board.Board) (peg.Code, error) {
	cands := b.Candidates()
	switch len(cands) {
	case 0:
		return peg.Code{}, ErrNoCandidates
	case 1:
		return cands[0], nil
	}
	if len(g.universe) == 0 || g.universe[0].Dims() != b.Dims() {
		return peg.Code{}, fmt.Errorf("%w: strategy universe does not match board %s", peg.ErrDimsMismatch, b.Dims())
	}

	key := b.Signature()
	if g.memo != nil {
		if guess, err := g.memo.Get(ctx, key); err == nil {
			return guess, nil
		}
	}

	start := time.Now()
	best, err := g.search(ctx, cands)
	if err != nil {
		return peg.Code{}, err
	}
	guess := g.universe[best.index]
	log.Debug().
		Str("board", key).
		Int("candidates", len(cands)).
		Stringer("guess", guess).
		Int("worst", best.worst).
		Dur("took", time.Since(start)).
		Msg("greedy pick")

	if g.memo != nil {
		if err := g.memo.Save(ctx, key, guess); err != nil {
			log.Warn().Err(err).Str("board", key).Msg("memo save")
		}
	}
	return guess, nil
}

// pick is the best guess found in part of the universe.
type pick struct {
	index int
	worst int
}

func (g *Greedy) search(ctx context.Context, cands []peg.Code) (pick, error) {
	n := len(g.universe)
	// No guess can split the candidates more evenly than this.
	reachable := peg.NumScores(g.universe[0].Len()) - 1
	floor := (len(cands) + reachable - 1) / reachable

	workers := min(max(g.workers, 1), n)
	if workers == 1 {
		return g.scan(ctx, 0, n, cands, floor), ctx.Err()
	}

	size := (n + workers - 1) / workers
	var bounds [][2]int
	for lo := 0; lo < n; lo += size {
		bounds = append(bounds, [2]int{lo, min(lo+size, n)})
	}
	picks := make([]pick, len(bounds))

	var wg sync.WaitGroup
	for i, bd := range bounds {
		wg.Add(1)
		go func(i, lo, hi int) {
			defer wg.Done()
			picks[i] = g.scan(ctx, lo, hi, cands, floor)
		}(i, bd[0], bd[1])
	}
	wg.Wait()
	if err := ctx.Err(); err != nil {
		return pick{}, err
	}
	return minBy(picks, func(p pick) int { return p.worst }), nil
}

// scan returns the first guess in universe[lo:hi] with the smallest worst
// case.
func (g *Greedy) scan(ctx context.Context, lo, hi int, cands []peg.Code, floor int) pick {
	h := outcome.New(g.universe[0].Len())
	best := pick{index: lo, worst: math.MaxInt}
	for i := lo; i < hi; i++ {
		if i%256 == 0 && ctx.Err() != nil {
			break
		}
		worst := outcome.CountUntil(h, g.universe[i], cands, best.worst)
		if worst < best.worst {
			best = pick{index: i, worst: worst}
			if worst <= floor {
				break
			}
		}
	}
	return best
}
