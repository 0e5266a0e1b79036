package prescriptions

import "context"

type Repository interface {
	// ListByCode devuelve los medicamentos de la receta en orden de inserción.
	// Una receta inexistente devuelve slice vacío, no error.
	ListByCode(ctx context.Context, code string) ([]Drug, error)
}
