// Package solver implements a backtracking nonogram search over precomputed
// line possibilities.
package solver

import (
	"context"
	"errors"
	"sort"
	"time"

	"go.uber.org/zap"

	"svw.info/nonogram/internal/domain"
	"svw.info/nonogram/internal/lines"
	"svw.info/nonogram/internal/ports"
)

// DefaultBudget bounds a solve that was not given an explicit time budget.
const DefaultBudget = 10 * time.Second

var (
	ErrUnsatisfiable = errors.New("solver: a line admits no arrangement")
	ErrTimedOut      = errors.New("solver: time budget exceeded")
	ErrExhausted     = errors.New("solver: search exhausted without a solution")
)

// Engine solves one puzzle. Row and column possibility sets and the row
// visit order are fixed at construction; only the board mutates during a
// solve. An Engine is not safe for concurrent use.
type Engine struct {
	rows, cols int
	rowPoss    [][]lines.Possibility
	colPoss    [][]lines.Possibility
	rowOrder   []int
	board      *domain.Board

	budget time.Duration
	mode   domain.Mode
	log    *zap.Logger
	cache  *lines.Cache

	nodes   int
	started time.Time
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithBudget sets the wall-clock budget for a solve. Zero or negative
// disables the check.
func WithBudget(d time.Duration) Option { return func(e *Engine) { e.budget = d } }

// WithMode selects the degrade policy.
func WithMode(m domain.Mode) Option { return func(e *Engine) { e.mode = m } }

// WithLogger enables Debug-level search tracing.
func WithLogger(l *zap.Logger) Option { return func(e *Engine) { e.log = l } }

// WithCache substitutes the process-wide possibility memo.
func WithCache(c *lines.Cache) Option { return func(e *Engine) { e.cache = c } }

// New builds an engine for the given clues. Row and column counts are the
// lengths of the two clue collections.
func New(rowClues, colClues [][]int, opts ...Option) *Engine {
	e := &Engine{
		rows:   len(rowClues),
		cols:   len(colClues),
		budget: DefaultBudget,
		mode:   domain.ModePermissive,
		log:    zap.NewNop(),
		cache:  lines.Shared,
	}
	for _, o := range opts {
		o(e)
	}

	e.rowPoss = make([][]lines.Possibility, e.rows)
	for r, c := range rowClues {
		e.rowPoss[r] = e.cache.Generate(e.cols, c)
	}
	e.colPoss = make([][]lines.Possibility, e.cols)
	for c, cc := range colClues {
		e.colPoss[c] = e.cache.Generate(e.rows, cc)
	}
	e.board = domain.NewBoard(e.rows, e.cols)

	// Visit constrained rows first; stable so equal counts keep their
	// original order.
	e.rowOrder = make([]int, e.rows)
	for i := range e.rowOrder {
		e.rowOrder[i] = i
	}
	sort.SliceStable(e.rowOrder, func(i, j int) bool {
		return len(e.rowPoss[e.rowOrder[i]]) < len(e.rowPoss[e.rowOrder[j]])
	})
	return e
}

// Board exposes the grid for readout. On success every cell is Empty or
// Filled; after a failed solve the board is reset to all-Unknown.
func (e *Engine) Board() *domain.Board { return e.board }

// Nodes reports row-assignment decision points entered during the last
// solve.
func (e *Engine) Nodes() int { return e.nodes }

// StartedAt reports when the last solve began.
func (e *Engine) StartedAt() time.Time { return e.started }

// Solve runs the search. The error is nil exactly when a solution was
// found; Stats.Outcome classifies every ending. Context cancellation is
// polled at the same point as the budget and reported as TimedOut.
func (e *Engine) Solve(ctx context.Context) (ports.Stats, error) {
	e.started = time.Now()
	e.nodes = 0

	e.log.Debug("solve start",
		zap.Int("rows", e.rows),
		zap.Int("cols", e.cols),
		zap.Stringer("mode", e.mode),
		zap.Duration("budget", e.budget),
		zap.Ints("rowPossCounts", counts(e.rowPoss)),
		zap.Ints("colPossCounts", counts(e.colPoss)),
	)

	if e.mode == domain.ModeStrict {
		if line, ok := e.emptyLine(); ok {
			e.log.Debug("static fail", zap.String("kind", line.Kind), zap.Int("index", line.Index))
			e.board.Reset()
			return e.finish(domain.Unsatisfiable), ErrUnsatisfiable
		}
	}

	solved, cut := e.search(ctx, 0)
	switch {
	case solved:
		return e.finish(domain.Solved), nil
	case cut:
		e.board.Reset()
		return e.finish(domain.TimedOut), ErrTimedOut
	default:
		e.board.Reset()
		if _, ok := e.emptyLine(); ok {
			return e.finish(domain.Unsatisfiable), ErrUnsatisfiable
		}
		return e.finish(domain.Exhausted), ErrExhausted
	}
}

// search assigns the row at position idx of the row order. The second
// result is true when the budget or context cut the search short.
func (e *Engine) search(ctx context.Context, idx int) (bool, bool) {
	if e.budget > 0 && time.Since(e.started) > e.budget {
		e.log.Debug("budget exceeded", zap.Int("depth", idx))
		return false, true
	}
	if ctx.Err() != nil {
		return false, true
	}
	if idx == e.rows {
		return true, false
	}

	e.nodes++
	r := e.rowOrder[idx]
	row := e.board.Cells[r]

	// Rows are all-Unknown when first visited, but filtering against the
	// current row keeps the invariant checkable if callers pre-seed cells.
	tried := 0
	for _, cand := range e.rowPoss[r] {
		if !lines.Compatible(cand, row) {
			continue
		}
		tried++
		copy(row, cand)
		if e.columnsViable() {
			if ok, cut := e.search(ctx, idx+1); ok {
				return true, false
			} else if cut {
				clear(row)
				return false, true
			}
		}
		clear(row)
	}
	if tried == 0 {
		e.log.Debug("no candidates", zap.Int("row", r), zap.Int("depth", idx))
	}
	return false, false
}

// columnsViable reports whether every column still has at least one
// possibility compatible with the board, Unknown cells matching anything.
func (e *Engine) columnsViable() bool {
	for c := 0; c < e.cols; c++ {
		if !e.columnViable(c) {
			return false
		}
	}
	return true
}

func (e *Engine) columnViable(c int) bool {
next:
	for _, p := range e.colPoss[c] {
		for r := 0; r < e.rows; r++ {
			if v := e.board.Cells[r][c]; v != domain.Unknown && v != p[r] {
				continue next
			}
		}
		return true
	}
	return false
}

func (e *Engine) emptyLine() (domain.LineRef, bool) {
	for r, p := range e.rowPoss {
		if len(p) == 0 {
			return domain.LineRef{Kind: "row", Index: r}, true
		}
	}
	for c, p := range e.colPoss {
		if len(p) == 0 {
			return domain.LineRef{Kind: "col", Index: c}, true
		}
	}
	return domain.LineRef{}, false
}

func (e *Engine) finish(o domain.Outcome) ports.Stats {
	st := ports.Stats{Nodes: e.nodes, Duration: time.Since(e.started), Outcome: o}
	e.log.Debug("solve done",
		zap.Stringer("outcome", o),
		zap.Int("nodes", st.Nodes),
		zap.Duration("dur", st.Duration),
	)
	return st
}

func counts(ps [][]lines.Possibility) []int {
	out := make([]int, len(ps))
	for i, p := range ps {
		out[i] = len(p)
	}
	return out
}
