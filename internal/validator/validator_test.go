package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/nonogram/internal/domain"
)

func board(rows []string) *domain.Board {
	b := domain.NewBoard(len(rows), len(rows[0]))
	for r, line := range rows {
		for c, ch := range line {
			switch ch {
			case '#':
				b.Cells[r][c] = domain.Filled
			case '.':
				b.Cells[r][c] = domain.Empty
			}
		}
	}
	return b
}

func TestValidateAccepts(t *testing.T) {
	b := board([]string{
		"#.#",
		"###",
		".#.",
	})
	level := domain.Level{
		Rows: [][]int{{1, 1}, {3}, {1}},
		Cols: [][]int{{2}, {2}, {2}},
	}
	ok, conf, err := New().Validate(context.Background(), b, level)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, conf)
}

func TestValidateFlagsWrongLines(t *testing.T) {
	b := board([]string{
		"##",
		"..",
	})
	level := domain.Level{
		Rows: [][]int{{1}, {}}, // row 0 has a 2-run, not 1
		Cols: [][]int{{1}, {1}},
	}
	ok, conf, err := New().Validate(context.Background(), b, level)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Contains(t, conf, domain.LineRef{Kind: "row", Index: 0})
}

func TestValidateRejectsIncomplete(t *testing.T) {
	b := domain.NewBoard(1, 2) // all unknown
	level := domain.Level{Rows: [][]int{{}}, Cols: [][]int{{}, {}}}
	ok, conf, err := New().Validate(context.Background(), b, level)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NotEmpty(t, conf)
}

func TestValidateEmptyClueLines(t *testing.T) {
	b := board([]string{".."})
	level := domain.Level{Rows: [][]int{{}}, Cols: [][]int{{}, {}}}
	ok, _, err := New().Validate(context.Background(), b, level)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestValidateIgnoresZeroRuns(t *testing.T) {
	b := board([]string{".#"})
	level := domain.Level{Rows: [][]int{{0, 1}}, Cols: [][]int{{0}, {1}}}
	ok, conf, err := New().Validate(context.Background(), b, level)
	require.NoError(t, err)
	assert.True(t, ok, "zero runs must be ignored, conflicts=%v", conf)
}
