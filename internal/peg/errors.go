package peg

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidColor        = errors.New("invalid color value")
	ErrInvalidLength       = errors.New("invalid code length")
	ErrInvalidDims         = errors.New("invalid dimensions")
	ErrInvalidScore        = errors.New("invalid score")
	ErrDimsMismatch        = errors.New("codes have different dimensions")
	ErrArithmeticInvariant = errors.New("color overlap smaller than exact matches")
)

// CodeError reports the peg that made a code invalid.
type CodeError struct {
	Pos    int
	Value  int
	Colors int
}

func (e *CodeError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: peg %d is %d, want 0..%d", ErrInvalidColor.Error(), e.Pos, e.Value, e.Colors-1)
}

func (e *CodeError) Unwrap() error { return ErrInvalidColor }
