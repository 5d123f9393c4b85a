// internal/board/board.go
//
// Candidate board: the guess/score history of one game and the codes still
// consistent with all of it.
//
// State machine:
//   - in progress: no rows yet, or the last score is not all black, or more
//     than one candidate is left.
//   - complete: at most one candidate and the last score is all black.
//
// The board trusts the scores it is given. It checks that a score fits the
// board's dimensions but never whether it is the true score of any secret.
package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/robalobadob/mastermind/internal/peg"
)

var (
	ErrInvalidState = errors.New("invalid board state")
	ErrInvalidScore = errors.New("score does not fit the board")
)

// Row is one submitted guess with its observed score.
type Row struct {
	Guess peg.Code
	Score peg.Score
}

func (r Row) String() string { return fmt.Sprintf("%s  > %s", r.Guess, r.Score) }

// Board holds history and candidates. It is not safe for concurrent use.
type Board struct {
	dims       peg.Dims
	rows       []Row
	candidates []peg.Code
}

// New returns a board whose candidates are the whole universe for d.
func New(d peg.Dims) (*Board, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &Board{dims: d, candidates: peg.Universe(d)}, nil
}

// NewWithUniverse returns a board starting from a precomputed universe,
// which must be peg.Universe(d). The slice is never modified.
func NewWithUniverse(d peg.Dims, universe []peg.Code) *Board {
	return &Board{dims: d, candidates: universe}
}

// AddGuess records guess with its score and drops every candidate that
// would have scored differently.
func (b *Board) AddGuess(guess peg.Code, score peg.Score) error {
	if len(b.rows) > 0 && b.complete() {
		return fmt.Errorf("%w: add guess %s to a complete board", ErrInvalidState, guess)
	}
	if guess.Dims() != b.dims {
		return fmt.Errorf("%w: guess %s is %s, board is %s", peg.ErrDimsMismatch, guess, guess.Dims(), b.dims)
	}
	if !score.Valid(b.dims.Pegs) {
		return fmt.Errorf("%w: %+v for %d pegs", ErrInvalidScore, score, b.dims.Pegs)
	}

	b.rows = append(b.rows, Row{Guess: guess, Score: score})

	// Filter into a fresh slice; the previous one may be a shared universe.
	kept := make([]peg.Code, 0, len(b.candidates)/2)
	for _, c := range b.candidates {
		if peg.Grade(c, guess) == score {
			kept = append(kept, c)
		}
	}
	b.candidates = kept
	return nil
}

// IsComplete reports whether the last score was all black and at most one
// candidate remains. It fails before the first guess.
func (b *Board) IsComplete() (bool, error) {
	if len(b.rows) == 0 {
		return false, fmt.Errorf("%w: no guesses yet", ErrInvalidState)
	}
	return b.complete(), nil
}

func (b *Board) complete() bool {
	return len(b.candidates) <= 1 && b.rows[len(b.rows)-1].Score.Black == b.dims.Pegs
}

// Dims returns the board configuration.
func (b *Board) Dims() peg.Dims { return b.dims }

// Rows returns a copy of the history.
func (b *Board) Rows() []Row { return append([]Row(nil), b.rows...) }

// Turns returns the number of rows.
func (b *Board) Turns() int { return len(b.rows) }

// Candidates returns the live candidate set in universe order.
// Callers must not modify the returned slice.
func (b *Board) Candidates() []peg.Code { return b.candidates }

// Len returns the number of candidates left.
func (b *Board) Len() int { return len(b.candidates) }

// Contains reports whether c is still a candidate.
func (b *Board) Contains(c peg.Code) bool {
	for _, x := range b.candidates {
		if x == c {
			return true
		}
	}
	return false
}

// Signature identifies the board by dimensions and history, e.g.
// "4x8|1122:o|3345:ow". Boards with equal signatures have equal candidates.
func (b *Board) Signature() string {
	var s strings.Builder
	s.WriteString(b.dims.String())
	for _, r := range b.rows {
		fmt.Fprintf(&s, "|%s:%s", r.Guess, r.Score)
	}
	return s.String()
}

func (b *Board) String() string {
	var s strings.Builder
	s.WriteString("\n *** Board state ***\n")
	for _, r := range b.rows {
		s.WriteString(r.String())
		s.WriteByte('\n')
	}
	fmt.Fprintf(&s, "Remaining possible solutions: %d\n", len(b.candidates))
	return s.String()
}
