package memory

import (
	"context"
	"sync"

	"ilac-otomasyon/internal/domain/patients"
)

type PatientsRepo struct {
	mu   sync.RWMutex
	byID map[string]patients.Patient
}

func NewPatientsRepo(seed ...patients.Patient) *PatientsRepo {
	r := &PatientsRepo{byID: make(map[string]patients.Patient)}
	for _, p := range seed {
		r.byID[p.NationalID] = p
	}
	return r
}

func (r *PatientsRepo) GetByNationalID(ctx context.Context, nationalID string) (patients.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[nationalID]
	if !ok {
		return patients.Patient{}, patients.ErrRepoNotFound
	}
	return p, nil
}
