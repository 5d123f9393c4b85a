package peg

import "sort"

// referenceGrade scores by sorting both codes and merging them, the slow
// algorithm Grade must agree with.
func referenceGrade(a, b Code) Score {
	exact := 0
	for i := 0; i < a.Len(); i++ {
		if a.At(i) == b.At(i) {
			exact++
		}
	}
	sa, sb := a.Colors(), b.Colors()
	sort.Ints(sa)
	sort.Ints(sb)
	overlap := 0
	for i, j := 0, 0; i < len(sa) && j < len(sb); {
		switch {
		case sa[i] == sb[j]:
			overlap++
			i++
			j++
		case sa[i] < sb[j]:
			i++
		default:
			j++
		}
	}
	return Score{Black: exact, White: overlap - exact}
}
