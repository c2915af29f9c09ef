// Package lines enumerates every arrangement of a clue sequence on a line.
package lines

import "svw.info/nonogram/internal/domain"

// Possibility is one concrete arrangement for a line: every cell is Empty or
// Filled, never Unknown.
type Possibility []domain.Cell

// Generate returns all arrangements of clues on a line of the given length:
// blocks in order, run lengths exactly as given, at least one empty cell
// between consecutive blocks.
//
// An empty clue sequence yields exactly one possibility, the all-empty line.
// If the blocks plus their mandatory gaps cannot fit, the result is nil.
func Generate(length int, clues []int) []Possibility {
	clues = dropZeros(clues)
	if len(clues) == 0 {
		p := make(Possibility, length)
		for i := range p {
			p[i] = domain.Empty
		}
		return []Possibility{p}
	}
	if minSpan(clues) > length {
		return nil
	}

	var out []Possibility
	acc := make([]domain.Cell, 0, length)

	var place func(i int)
	place = func(i int) {
		if i == len(clues) {
			p := make(Possibility, length)
			copy(p, acc)
			for j := len(acc); j < length; j++ {
				p[j] = domain.Empty
			}
			out = append(out, p)
			return
		}
		// Leading empty cells before this block, bounded so the rest
		// still fits.
		slack := length - len(acc) - minSpan(clues[i:])
		for lead := 0; lead <= slack; lead++ {
			mark := len(acc)
			for k := 0; k < lead; k++ {
				acc = append(acc, domain.Empty)
			}
			for k := 0; k < clues[i]; k++ {
				acc = append(acc, domain.Filled)
			}
			if i < len(clues)-1 {
				acc = append(acc, domain.Empty) // mandatory gap
			}
			place(i + 1)
			acc = acc[:mark]
		}
	}
	place(0)
	return out
}

// dropZeros removes zero-length runs. They place no cells, and keeping
// them would multiply identical arrangements and skew possibility counts.
func dropZeros(clues []int) []int {
	n := 0
	for _, c := range clues {
		if c == 0 {
			n++
		}
	}
	if n == 0 {
		return clues
	}
	out := make([]int, 0, len(clues)-n)
	for _, c := range clues {
		if c != 0 {
			out = append(out, c)
		}
	}
	return out
}

// minSpan is the shortest line that can hold the clues: the blocks plus one
// gap cell between each consecutive pair.
func minSpan(clues []int) int {
	n := 0
	for _, c := range clues {
		n += c
	}
	return n + len(clues) - 1
}

// Compatible reports whether a possibility agrees with a partial line.
// Unknown cells in the line match anything.
func Compatible(p Possibility, line []domain.Cell) bool {
	for i, v := range line {
		if v != domain.Unknown && v != p[i] {
			return false
		}
	}
	return true
}
