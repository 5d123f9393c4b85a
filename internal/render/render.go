// Package render prints codes, boards and outcome histograms for humans.
//
// Nothing here feeds back into the engine; it only reads histograms,
// the canonical score order and board history.
package render

import (
	"fmt"
	"io"
	"math/bits"
	"strings"

	"github.com/TwiN/go-color"

	"github.com/robalobadob/mastermind/internal/board"
	"github.com/robalobadob/mastermind/internal/outcome"
	"github.com/robalobadob/mastermind/internal/peg"
)

var palette = []string{
	color.Red,
	color.Green,
	color.Blue,
	color.Yellow,
	color.Purple,
	color.Cyan,
	color.White,
	color.Gray,
}

// Printer writes human-readable output. Colors are used only when Color is
// set.
type Printer struct {
	W     io.Writer
	Color bool
}

// Code renders c as one letter per peg (A for color 0), colored when enabled.
func (p Printer) Code(c peg.Code) string {
	var b strings.Builder
	for i := 0; i < c.Len(); i++ {
		v := c.At(i)
		letter := string(rune('A' + v))
		if p.Color {
			b.WriteString(color.Ize(palette[v%len(palette)], letter))
		} else {
			b.WriteString(letter)
		}
	}
	return b.String()
}

// Histogram prints one line per score in canonical order: the score, its
// count and a bar as long as the bit length of the count.
func (p Printer) Histogram(h outcome.Histogram, pegs int) {
	for _, s := range peg.Scores(pegs) {
		ct := h.At(s, pegs)
		fmt.Fprintf(p.W, "%4s: %-4d  %s\n", s, ct, strings.Repeat("#", bits.Len(uint(ct))))
	}
}

// Row prints one board row.
func (p Printer) Row(r board.Row) {
	fmt.Fprintf(p.W, "%s (%s)  > %s\n", p.Code(r.Guess), r.Guess, r.Score)
}

// Board prints the history and the number of candidates left.
func (p Printer) Board(b *board.Board) {
	fmt.Fprintln(p.W, "\n *** Board state ***")
	for _, r := range b.Rows() {
		p.Row(r)
	}
	fmt.Fprintf(p.W, "Remaining possible solutions: %d\n", b.Len())
}

// Legend prints the color letters for d.
func (p Printer) Legend(d peg.Dims) {
	parts := make([]string, d.Colors)
	for v := 0; v < d.Colors; v++ {
		c := peg.MustNew(peg.Dims{Pegs: 1, Colors: d.Colors}, v)
		parts[v] = fmt.Sprintf("%s=%x", p.Code(c), v)
	}
	fmt.Fprintf(p.W, "colors: %s\n", strings.Join(parts, " "))
}
