package validator

import (
	"context"

	"svw.info/nonogram/internal/domain"
)

// RunLengthValidator checks a completed board's filled runs against its
// level's clues, line by line.
type RunLengthValidator struct{}

func New() *RunLengthValidator { return &RunLengthValidator{} }

// Validate reports whether every row and column of b matches the level's
// clue sequences, returning the lines that do not. A board with Unknown
// cells never validates: incomplete lines are reported as conflicts.
func (v *RunLengthValidator) Validate(ctx context.Context, b *domain.Board, level domain.Level) (bool, []domain.LineRef, error) {
	var conf []domain.LineRef
	for r := 0; r < b.Rows; r++ {
		if !matches(b.Cells[r], clueAt(level.Rows, r)) {
			conf = append(conf, domain.LineRef{Kind: "row", Index: r})
		}
	}
	col := make([]domain.Cell, b.Rows)
	for c := 0; c < b.Cols; c++ {
		for r := 0; r < b.Rows; r++ {
			col[r] = b.Cells[r][c]
		}
		if !matches(col, clueAt(level.Cols, c)) {
			conf = append(conf, domain.LineRef{Kind: "col", Index: c})
		}
	}
	return len(conf) == 0, conf, nil
}

func clueAt(clues [][]int, i int) []int {
	if i < len(clues) {
		return clues[i]
	}
	return nil
}

// matches compares the filled runs of a line with a clue sequence.
// Zero-length runs in the clue are ignored, matching how the possibility
// generator treats them.
func matches(line []domain.Cell, clue []int) bool {
	kept := make([]int, 0, len(clue))
	for _, c := range clue {
		if c != 0 {
			kept = append(kept, c)
		}
	}
	clue = kept
	runs := make([]int, 0, len(clue))
	n := 0
	for _, v := range line {
		switch v {
		case domain.Filled:
			n++
		case domain.Empty:
			if n > 0 {
				runs = append(runs, n)
				n = 0
			}
		default:
			return false // Unknown cell, line incomplete
		}
	}
	if n > 0 {
		runs = append(runs, n)
	}
	if len(runs) != len(clue) {
		return false
	}
	for i, r := range runs {
		if r != clue[i] {
			return false
		}
	}
	return true
}
