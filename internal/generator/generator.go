// Package generator derives nonogram clues from pictures, as an authoring
// aid: draw (or randomize) a grid, read back the level that produces it.
package generator

import (
	"math/rand"

	"svw.info/nonogram/internal/domain"
)

type ClueGenerator struct{}

func New() *ClueGenerator { return &ClueGenerator{} }

// FromGrid derives row and column clue sequences from a picture. A line
// with no filled cells gets the empty clue sequence.
func (g *ClueGenerator) FromGrid(cells [][]bool) domain.Level {
	rows := len(cells)
	cols := 0
	if rows > 0 {
		cols = len(cells[0])
	}
	l := domain.Level{Rows: make([][]int, rows), Cols: make([][]int, cols)}
	for r := 0; r < rows; r++ {
		l.Rows[r] = runs(func(i int) bool { return cells[r][i] }, cols)
	}
	for c := 0; c < cols; c++ {
		l.Cols[c] = runs(func(i int) bool { return cells[i][c] }, rows)
	}
	return l
}

// Random fills a rows×cols picture where each cell is set with the given
// probability, then derives its clues. The same seed reproduces the same
// level.
func (g *ClueGenerator) Random(seed int64, rows, cols int, density float64) (domain.Level, [][]bool) {
	rng := rand.New(rand.NewSource(seed))
	cells := make([][]bool, rows)
	for r := range cells {
		cells[r] = make([]bool, cols)
		for c := range cells[r] {
			cells[r][c] = rng.Float64() < density
		}
	}
	return g.FromGrid(cells), cells
}

func runs(at func(int) bool, n int) []int {
	out := []int{}
	run := 0
	for i := 0; i < n; i++ {
		if at(i) {
			run++
		} else if run > 0 {
			out = append(out, run)
			run = 0
		}
	}
	if run > 0 {
		out = append(out, run)
	}
	return out
}
