package peg

// Universe returns every code for d, Colors^Pegs of them.
//
// Codes are built by expanding one position at a time from left to right,
// so the last peg varies fastest. The order is fixed; strategies rely on it
// to break ties reproducibly.
func Universe(d Dims) []Code {
	if d.Validate() != nil {
		return nil
	}
	seqs := [][]uint8{make([]uint8, d.Pegs)}
	for pos := 0; pos < d.Pegs; pos++ {
		seqs = expand(seqs, pos, d.Colors)
	}
	out := make([]Code, len(seqs))
	for i, s := range seqs {
		out[i] = fromPegs(d, s)
	}
	return out
}

// expand replaces every sequence with one copy per color at position pos.
func expand(seqs [][]uint8, pos, colors int) [][]uint8 {
	out := make([][]uint8, 0, len(seqs)*colors)
	for _, s := range seqs {
		for v := 0; v < colors; v++ {
			next := append([]uint8(nil), s...)
			next[pos] = uint8(v)
			out = append(out, next)
		}
	}
	return out
}
