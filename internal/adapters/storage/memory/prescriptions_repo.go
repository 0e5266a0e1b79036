package memory

import (
	"context"
	"sync"

	"ilac-otomasyon/internal/domain/prescriptions"
)

type PrescriptionsRepo struct {
	mu     sync.RWMutex
	byCode map[string][]prescriptions.Drug
	nextID int64
}

// NewPrescriptionsRepo arma el repo con las filas dadas, en orden.
func NewPrescriptionsRepo(seed ...prescriptions.Drug) *PrescriptionsRepo {
	r := &PrescriptionsRepo{byCode: make(map[string][]prescriptions.Drug)}
	for _, d := range seed {
		r.Add(d)
	}
	return r
}

// Add inserta una fila y le asigna id si no trae.
func (r *PrescriptionsRepo) Add(d prescriptions.Drug) prescriptions.Drug {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	if d.ID == 0 {
		d.ID = r.nextID
	}
	r.byCode[d.PrescriptionCode] = append(r.byCode[d.PrescriptionCode], d)
	return d
}

func (r *PrescriptionsRepo) ListByCode(ctx context.Context, code string) ([]prescriptions.Drug, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]prescriptions.Drug, len(r.byCode[code]))
	copy(out, r.byCode[code])
	return out, nil
}
