package prescriptions

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("prescription not found")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Login resuelve un código de receta a su lista de medicamentos.
// Código vacío => ErrInvalidInput; receta sin filas => ErrNotFound.
func (s *Service) Login(ctx context.Context, code string) ([]Drug, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrInvalidInput
	}

	drugs, err := s.repo.ListByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("list drugs by code: %w", err)
	}
	if len(drugs) == 0 {
		return nil, ErrNotFound
	}
	return drugs, nil
}
