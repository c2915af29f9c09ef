package solver

import (
	"context"

	"go.uber.org/zap"

	"svw.info/nonogram/internal/domain"
	"svw.info/nonogram/internal/lines"
	"svw.info/nonogram/internal/ports"
)

// Backtracking adapts the per-puzzle Engine to the ports.Solver contract,
// building a fresh engine per call. Safe for concurrent use: each call owns
// its engine and board.
type Backtracking struct {
	Logger *zap.Logger
	Cache  *lines.Cache
}

func NewBacktracking() *Backtracking { return &Backtracking{} }

func (s *Backtracking) Solve(ctx context.Context, level domain.Level, opt ports.SolveOptions) (*domain.Board, ports.Stats, error) {
	opts := []Option{WithMode(opt.Mode)}
	if opt.Budget > 0 {
		opts = append(opts, WithBudget(opt.Budget))
	}
	if s.Logger != nil {
		opts = append(opts, WithLogger(s.Logger))
	}
	if s.Cache != nil {
		opts = append(opts, WithCache(s.Cache))
	}
	e := New(level.Rows, level.Cols, opts...)
	st, err := e.Solve(ctx)
	return e.Board(), st, err
}
