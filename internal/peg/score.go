// internal/peg/score.go
//
// Scoring of one code against another.
//
// Black counts positions where both codes have the same color.
// White counts the remaining color-only matches: the size of the multiset
// intersection of both codes minus the black count.
//
// The intersection is taken from the per-color counts each Code carries,
// so scoring is O(P + C) with no allocation.
package peg

import (
	"fmt"
	"strconv"
	"strings"
)

// Score is the key-peg response to a guess.
type Score struct {
	Black int `json:"black"`
	White int `json:"white"`
}

// Grade scores a against b. Both must share the same Dims; use Compare when
// that is not already guaranteed by the caller.
//
// Grade is symmetric: Grade(a, b) == Grade(b, a).
func Grade(a, b Code) Score {
	s, err := grade(a, b)
	if err != nil {
		panic(err)
	}
	return s
}

// Compare is Grade with dimension checks; it never panics.
func Compare(a, b Code) (Score, error) {
	if a.IsZero() || b.IsZero() {
		return Score{}, fmt.Errorf("%w: zero code", ErrInvalidLength)
	}
	if a.Dims() != b.Dims() {
		return Score{}, fmt.Errorf("%w: %s vs %s", ErrDimsMismatch, a.Dims(), b.Dims())
	}
	return grade(a, b)
}

func grade(a, b Code) (Score, error) {
	exact := 0
	for i := 0; i < int(a.n); i++ {
		if a.pegs[i] == b.pegs[i] {
			exact++
		}
	}
	overlap := 0
	for v := 0; v < int(a.colors); v++ {
		overlap += int(min(a.counts[v], b.counts[v]))
	}
	// Every exact match is also a color match.
	if overlap < exact {
		return Score{}, fmt.Errorf("%w: %s vs %s (overlap %d, exact %d)", ErrArithmeticInvariant, a, b, overlap, exact)
	}
	return Score{Black: exact, White: overlap - exact}, nil
}

// Win returns the all-black score for codes of length pegs.
func Win(pegs int) Score { return Score{Black: pegs} }

// Valid reports whether s is a possible response for codes of length pegs.
// The unreachable (pegs-1, 1) score is considered valid here; it still owns
// a histogram slot.
func (s Score) Valid(pegs int) bool {
	return s.Black >= 0 && s.White >= 0 && s.Black+s.White <= pegs
}

// Index maps s to its histogram slot for codes of length pegs:
// with n = pegs - white, index = black + n(n+1)/2.
//
//	  |  0  1  2  3  4 (black)
//	--+---------------
//	 0| 10 11 12 13 14
//	 1|  6  7  8  9
//	 2|  3  4  5
//	 3|  1  2
//	 4|  0
//	(white)
func (s Score) Index(pegs int) int {
	n := pegs - s.White
	return s.Black + n*(n+1)/2
}

// NumScores returns the histogram size for codes of length pegs,
// (pegs+1)(pegs+2)/2.
func NumScores(pegs int) int { return (pegs + 1) * (pegs + 2) / 2 }

// Scores lists every score with black+white <= pegs in canonical order:
// by total pegs ascending, then white ascending.
func Scores(pegs int) []Score {
	out := make([]Score, 0, NumScores(pegs))
	for total := 0; total <= pegs; total++ {
		for w := 0; w <= total; w++ {
			out = append(out, Score{Black: total - w, White: w})
		}
	}
	return out
}

// String renders one 'o' per black peg and one 'w' per white peg,
// or "-" when there are none.
func (s Score) String() string {
	if s.Black == 0 && s.White == 0 {
		return "-"
	}
	return strings.Repeat("o", s.Black) + strings.Repeat("w", s.White)
}

// ParseScore reads a human-entered score. Accepted forms:
//
//	"2 1", "2,1"   black and white counts
//	"oow", "-"     peg notation as printed by String
func ParseScore(s string) (Score, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return Score{}, fmt.Errorf("%w: empty input", ErrInvalidScore)
	}
	if s == "-" {
		return Score{}, nil
	}
	if strings.Trim(s, "ow") == "" {
		return Score{Black: strings.Count(s, "o"), White: strings.Count(s, "w")}, nil
	}
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == ',' || r == '/' })
	if len(fields) != 2 {
		return Score{}, fmt.Errorf("%w: %q", ErrInvalidScore, s)
	}
	b, err := strconv.Atoi(fields[0])
	if err != nil {
		return Score{}, fmt.Errorf("%w: black %q", ErrInvalidScore, fields[0])
	}
	w, err := strconv.Atoi(fields[1])
	if err != nil {
		return Score{}, fmt.Errorf("%w: white %q", ErrInvalidScore, fields[1])
	}
	if b < 0 || w < 0 {
		return Score{}, fmt.Errorf("%w: negative count", ErrInvalidScore)
	}
	return Score{Black: b, White: w}, nil
}
