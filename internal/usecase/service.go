package usecase

import (
	"context"
	"errors"

	"svw.info/nonogram/internal/domain"
	"svw.info/nonogram/internal/ports"
)

type Service struct {
	Solver    ports.Solver
	Validator ports.Validator
	Generator ports.Generator
	Storage   ports.Storage
}

func NewService(s ports.Solver, v ports.Validator, g ports.Generator, st ports.Storage) *Service {
	return &Service{Solver: s, Validator: v, Generator: g, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Solve(ctx context.Context, level domain.Level, opt ports.SolveOptions) (*domain.Board, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, level, opt)
}

func (u *Service) Validate(ctx context.Context, b *domain.Board, level domain.Level) (bool, []domain.LineRef, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, b, level)
}

func (u *Service) Generate(seed int64, rows, cols int, density float64) (domain.Level, [][]bool, error) {
	if u.Generator == nil {
		return domain.Level{}, nil, errNotConfigured
	}
	l, cells := u.Generator.Random(seed, rows, cols, density)
	return l, cells, nil
}

func (u *Service) FromGrid(cells [][]bool) (domain.Level, error) {
	if u.Generator == nil {
		return domain.Level{}, errNotConfigured
	}
	return u.Generator.FromGrid(cells), nil
}

// Persistence
func (u *Service) Save(ctx context.Context, name string, l domain.Level) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, name, l)
}
func (u *Service) Load(ctx context.Context, name string) (domain.Level, error) {
	if u.Storage == nil {
		return domain.Level{}, errNotConfigured
	}
	return u.Storage.Load(ctx, name)
}
func (u *Service) List(ctx context.Context) ([]string, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
func (u *Service) Delete(ctx context.Context, name string) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Delete(ctx, name)
}
