package patients

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Login valida que exista un paciente con ese número de identidad.
// No se valida el formato del número: el lookup decide.
func (s *Service) Login(ctx context.Context, nationalID string) (Patient, error) {
	nationalID = strings.TrimSpace(nationalID)
	if nationalID == "" {
		return Patient{}, ErrInvalidInput
	}

	p, err := s.repo.GetByNationalID(ctx, nationalID)
	if err != nil {
		if errors.Is(err, ErrRepoNotFound) {
			return Patient{}, ErrNotFound
		}
		return Patient{}, fmt.Errorf("get patient: %w", err)
	}
	return p, nil
}
