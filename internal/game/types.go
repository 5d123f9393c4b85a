// internal/game/types.go
//
// Core type definitions for the game driver.
// Defines:
//   - State: coarse game state (playing/won/lost).
//   - Turn: what happened during one step.
//   - Oracle: where real scores come from.

package game

import (
	"time"

	"github.com/robalobadob/mastermind/internal/outcome"
	"github.com/robalobadob/mastermind/internal/peg"
)

// State is the coarse state of a game.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Turn records one step of a game.
type Turn struct {
	Number    int               // 1-based turn number
	Guess     peg.Code          // code the strategy picked
	Outcomes  outcome.Histogram // guess partitioned against the candidates before scoring
	Score     peg.Score         // score reported by the oracle
	Before    int               // candidates before the guess
	Remaining int               // candidates after the guess
	Took      time.Duration     // time spent selecting the guess
}

// Oracle scores guesses against a secret it may or may not reveal.
type Oracle interface {
	Score(guess peg.Code) (peg.Score, error)
}

// OracleFunc adapts a function to Oracle.
type OracleFunc func(guess peg.Code) (peg.Score, error)

func (f OracleFunc) Score(guess peg.Code) (peg.Score, error) { return f(guess) }

// SecretOracle scores guesses against a known secret.
type SecretOracle struct {
	Secret peg.Code
}

func (o SecretOracle) Score(guess peg.Code) (peg.Score, error) {
	return peg.Compare(o.Secret, guess)
}
