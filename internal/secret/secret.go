// internal/secret/secret.go
//
// Secret suppliers. The engine never invents a secret itself; drivers pick
// one of these and score guesses against what it returns.
//
//   - Fixed:  always the same configured code.
//   - Random: one uniformly random color per peg from an injected *rand.Rand.
//   - Daily:  a deterministic code per UTC date, see daily.go.
package secret

import (
	"math/rand"

	"github.com/robalobadob/mastermind/internal/peg"
)

// Supplier hands out secrets.
type Supplier interface {
	Secret() (peg.Code, error)
}

// Func adapts a plain function to Supplier.
type Func func() (peg.Code, error)

func (f Func) Secret() (peg.Code, error) { return f() }

// Fixed returns a Supplier that always yields c.
func Fixed(c peg.Code) Supplier {
	return Func(func() (peg.Code, error) { return c, nil })
}

// Random draws codes for d from rng. The Supplier is as safe for
// concurrent use as rng is, which for *rand.Rand means not at all.
type Random struct {
	dims peg.Dims
	rng  *rand.Rand
}

// NewRandom returns a Random over d using rng.
func NewRandom(d peg.Dims, rng *rand.Rand) *Random {
	return &Random{dims: d, rng: rng}
}

// NewSeeded returns a Random with its own source seeded with seed.
func NewSeeded(d peg.Dims, seed int64) *Random {
	return NewRandom(d, rand.New(rand.NewSource(seed)))
}

func (r *Random) Secret() (peg.Code, error) {
	colors := make([]int, r.dims.Pegs)
	for i := range colors {
		colors[i] = r.rng.Intn(r.dims.Colors)
	}
	return peg.New(r.dims, colors...)
}
