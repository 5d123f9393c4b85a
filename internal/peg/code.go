// internal/peg/code.go
//
// Peg codes and their dimensions.
//
// A Code is an immutable, comparable value holding:
//   - the pegs in their original order (used for exact-position matches),
//   - a per-color occurrence count computed once at construction
//     (used for color-only matches).
//
// The count array is only ever written by the constructors in this file,
// so it is always a pure function of the pegs.
package peg

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	MaxPegs   = 8
	MaxColors = 16
)

// Dims describes a game configuration: code length and palette size.
type Dims struct {
	Pegs   int `yaml:"pegs"`
	Colors int `yaml:"colors"`
}

// Classic is the reference configuration (4 pegs, 8 colors).
var Classic = Dims{Pegs: 4, Colors: 8}

// Validate reports whether d is inside the supported range.
func (d Dims) Validate() error {
	if d.Pegs < 1 || d.Pegs > MaxPegs {
		return fmt.Errorf("%w: pegs must be 1..%d, got %d", ErrInvalidDims, MaxPegs, d.Pegs)
	}
	if d.Colors < 1 || d.Colors > MaxColors {
		return fmt.Errorf("%w: colors must be 1..%d, got %d", ErrInvalidDims, MaxColors, d.Colors)
	}
	return nil
}

// Size returns the number of codes in the universe, Colors^Pegs.
func (d Dims) Size() int {
	n := 1
	for i := 0; i < d.Pegs; i++ {
		n *= d.Colors
	}
	return n
}

func (d Dims) String() string { return fmt.Sprintf("%dx%d", d.Pegs, d.Colors) }

// Code is one sequence of colored pegs.
type Code struct {
	n      uint8
	colors uint8
	pegs   [MaxPegs]uint8
	counts [MaxColors]uint8
}

// New builds a Code for d from the given colors.
// Every color must be in [0, d.Colors) and len(colors) must equal d.Pegs.
func New(d Dims, colors ...int) (Code, error) {
	if err := d.Validate(); err != nil {
		return Code{}, err
	}
	if len(colors) != d.Pegs {
		return Code{}, fmt.Errorf("%w: want %d pegs, got %d", ErrInvalidLength, d.Pegs, len(colors))
	}
	c := Code{n: uint8(d.Pegs), colors: uint8(d.Colors)}
	for i, v := range colors {
		if v < 0 || v >= d.Colors {
			return Code{}, &CodeError{Pos: i, Value: v, Colors: d.Colors}
		}
		c.pegs[i] = uint8(v)
		c.counts[v]++
	}
	return c, nil
}

// MustNew is New for literals known to be valid; it panics otherwise.
func MustNew(d Dims, colors ...int) Code {
	c, err := New(d, colors...)
	if err != nil {
		panic(err)
	}
	return c
}

// fromPegs builds a Code from already-validated pegs.
func fromPegs(d Dims, pegs []uint8) Code {
	c := Code{n: uint8(d.Pegs), colors: uint8(d.Colors)}
	for i, v := range pegs {
		c.pegs[i] = v
		c.counts[v]++
	}
	return c
}

// Parse reads a code written as one hex digit per peg, e.g. "1234".
// Spaces and commas between digits are ignored.
func Parse(d Dims, s string) (Code, error) {
	s = strings.Map(func(r rune) rune {
		if r == ' ' || r == ',' {
			return -1
		}
		return r
	}, strings.TrimSpace(s))
	colors := make([]int, 0, len(s))
	for _, r := range s {
		v, err := strconv.ParseUint(string(r), 16, 8)
		if err != nil {
			return Code{}, fmt.Errorf("%w: %q is not a color digit", ErrInvalidColor, r)
		}
		colors = append(colors, int(v))
	}
	return New(d, colors...)
}

// Dims returns the configuration the code was built for.
func (c Code) Dims() Dims { return Dims{Pegs: int(c.n), Colors: int(c.colors)} }

// Len returns the number of pegs.
func (c Code) Len() int { return int(c.n) }

// At returns the color at position i.
func (c Code) At(i int) int { return int(c.pegs[i]) }

// Colors returns a copy of the pegs in original order.
func (c Code) Colors() []int {
	out := make([]int, c.n)
	for i := range out {
		out[i] = int(c.pegs[i])
	}
	return out
}

// Count returns how many pegs have color v.
func (c Code) Count(v int) int { return int(c.counts[v]) }

// IsZero reports whether c is the zero Code (not built by a constructor).
func (c Code) IsZero() bool { return c.n == 0 }

// String renders the pegs as hex digits, the format Parse accepts.
func (c Code) String() string {
	var b strings.Builder
	for i := 0; i < int(c.n); i++ {
		b.WriteString(strconv.FormatUint(uint64(c.pegs[i]), 16))
	}
	return b.String()
}
