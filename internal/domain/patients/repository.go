package patients

import (
	"context"
	"errors"
)

var ErrRepoNotFound = errors.New("patient not found")

type Repository interface {
	// GetByNationalID devuelve ErrRepoNotFound si no existe.
	GetByNationalID(ctx context.Context, nationalID string) (Patient, error)
}
