package ports

import (
	"context"
	"time"

	"svw.info/nonogram/internal/domain"
)

// Stats captures performance characteristics of a solve.
type Stats struct {
	Nodes    int
	Duration time.Duration
	Outcome  domain.Outcome
}

// SolveOptions tune one solve invocation. Zero values mean the solver's
// defaults.
type SolveOptions struct {
	Budget time.Duration
	Mode   domain.Mode
}

// Solver computes a grid satisfying a level's clues.
type Solver interface {
	Solve(ctx context.Context, level domain.Level, opt SolveOptions) (*domain.Board, Stats, error)
}

// Validator checks a completed board against a level's clues.
type Validator interface {
	Validate(ctx context.Context, b *domain.Board, level domain.Level) (ok bool, conflicts []domain.LineRef, err error)
}

// Generator derives clues from pictures, for level authoring.
type Generator interface {
	FromGrid(cells [][]bool) domain.Level
	Random(seed int64, rows, cols int, density float64) (domain.Level, [][]bool)
}

// Storage persists named levels in a single JSON document.
type Storage interface {
	Save(ctx context.Context, name string, l domain.Level) error
	Load(ctx context.Context, name string) (domain.Level, error)
	List(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, name string) error
}
