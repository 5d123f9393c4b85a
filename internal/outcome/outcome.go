// Package outcome partitions a candidate set by the score each candidate
// would give against a hypothetical guess.
//
// A Histogram has one slot per score with black+white <= P, indexed by
// peg.Score.Index. The slot of the unreachable (P-1, 1) score is kept and is
// always zero, so every histogram for P pegs has the same length.
package outcome

import "github.com/robalobadob/mastermind/internal/peg"

// Histogram counts candidates per score slot.
type Histogram []int

// New returns an empty histogram for codes of length pegs.
func New(pegs int) Histogram { return make(Histogram, peg.NumScores(pegs)) }

// Count grades guess against every candidate and tallies the scores.
// The bucket total always equals len(candidates).
func Count(guess peg.Code, candidates []peg.Code) Histogram {
	h := New(guess.Len())
	h.fill(guess, candidates)
	return h
}

// CountInto is Count reusing h, which must have been made by New for the
// same code length. It returns the largest bucket.
func CountInto(h Histogram, guess peg.Code, candidates []peg.Code) int {
	clear(h)
	return h.fill(guess, candidates)
}

// CountUntil is CountInto that gives up once some bucket reaches cutoff.
// The result is exact when it is below cutoff; otherwise it is only known
// to be at least cutoff, and h is left partially filled.
func CountUntil(h Histogram, guess peg.Code, candidates []peg.Code, cutoff int) int {
	clear(h)
	pegs := guess.Len()
	worst := 0
	for _, c := range candidates {
		i := peg.Grade(guess, c).Index(pegs)
		h[i]++
		if h[i] > worst {
			worst = h[i]
			if worst >= cutoff {
				return worst
			}
		}
	}
	return worst
}

func (h Histogram) fill(guess peg.Code, candidates []peg.Code) int {
	pegs := guess.Len()
	worst := 0
	for _, c := range candidates {
		i := peg.Grade(guess, c).Index(pegs)
		h[i]++
		if h[i] > worst {
			worst = h[i]
		}
	}
	return worst
}

// At returns the count for s.
func (h Histogram) At(s peg.Score, pegs int) int { return h[s.Index(pegs)] }

// Max returns the largest bucket, the worst-case number of candidates left
// after the guess.
func (h Histogram) Max() int {
	m := 0
	for _, v := range h {
		m = max(m, v)
	}
	return m
}

// Total returns the sum of all buckets.
func (h Histogram) Total() int {
	n := 0
	for _, v := range h {
		n += v
	}
	return n
}

// Partitions returns how many buckets are non-empty.
func (h Histogram) Partitions() int {
	n := 0
	for _, v := range h {
		if v > 0 {
			n++
		}
	}
	return n
}
