package game

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/robalobadob/mastermind/internal/board"
	"github.com/robalobadob/mastermind/internal/peg"
	"github.com/robalobadob/mastermind/internal/strategy"
)

// Stats aggregates many automatically played games.
type Stats struct {
	Games        int
	Won          int
	Lost         []peg.Code  // secrets that were not found in time
	TotalTurns   int         // over won games
	MaxTurns     int         // longest won game
	Hardest      peg.Code    // first secret needing MaxTurns
	Distribution map[int]int // turns -> won games
}

// Average returns the mean number of turns of won games.
func (s Stats) Average() float64 {
	if s.Won == 0 {
		return 0
	}
	return float64(s.TotalTurns) / float64(s.Won)
}

func (s Stats) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "won %d of %d games, average %.3f turns, worst %d (%s)\n",
		s.Won, s.Games, s.Average(), s.MaxTurns, s.Hardest)
	keys := make([]int, 0, len(s.Distribution))
	for k := range s.Distribution {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, "%3d turns: %d\n", k, s.Distribution[k])
	}
	return b.String()
}

// Evaluate plays one game per secret against universe and collects Stats.
// onGame, if set, is called after every game.
func Evaluate(ctx context.Context, d peg.Dims, universe []peg.Code, s strategy.Strategy,
	secrets []peg.Code, maxTurns int, onGame func(secret peg.Code, st State, turns int)) (Stats, error) {
	stats := Stats{Distribution: map[int]int{}}
	for _, secret := range secrets {
		g := New(board.NewWithUniverse(d, universe), s, SecretOracle{Secret: secret}, maxTurns)
		st, err := g.Run(ctx, nil)
		if err != nil {
			return stats, fmt.Errorf("secret %s: %w", secret, err)
		}
		n := len(g.turns)
		stats.Games++
		if st == StateWon {
			stats.Won++
			stats.TotalTurns += n
			stats.Distribution[n]++
			if n > stats.MaxTurns {
				stats.MaxTurns, stats.Hardest = n, secret
			}
		} else {
			stats.Lost = append(stats.Lost, secret)
		}
		if onGame != nil {
			onGame(secret, st, n)
		}
	}
	return stats, nil
}
