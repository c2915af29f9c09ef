package domain

// Board is the R×C grid a solve fills in. Cells start Unknown and are
// mutated in place during a solve; the board is exclusively owned by the
// in-progress search.
type Board struct {
	Rows  int
	Cols  int
	Cells [][]Cell
}

// NewBoard returns a fully-unknown board.
func NewBoard(rows, cols int) *Board {
	cells := make([][]Cell, rows)
	for r := range cells {
		cells[r] = make([]Cell, cols)
	}
	return &Board{Rows: rows, Cols: cols, Cells: cells}
}

// Reset returns every cell to Unknown.
func (b *Board) Reset() {
	for r := range b.Cells {
		for c := range b.Cells[r] {
			b.Cells[r][c] = Unknown
		}
	}
}

// Complete reports whether no cell is Unknown.
func (b *Board) Complete() bool {
	for r := range b.Cells {
		for _, v := range b.Cells[r] {
			if v == Unknown {
				return false
			}
		}
	}
	return true
}

// Level is a persisted puzzle: one clue sequence per row and per column.
type Level struct {
	Rows [][]int `json:"rows"`
	Cols [][]int `json:"cols"`
}

// LineRef identifies one row or column for conflict reporting.
type LineRef struct {
	Kind  string `json:"kind"` // "row" or "col"
	Index int    `json:"index"`
}
