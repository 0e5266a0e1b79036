package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ilac-otomasyon/internal/domain/patients"
)

type PatientsRepo struct {
	db *sql.DB
}

func NewPatientsRepo(db *sql.DB) *PatientsRepo {
	return &PatientsRepo{db: db}
}

func (r *PatientsRepo) GetByNationalID(ctx context.Context, nationalID string) (patients.Patient, error) {
	var p patients.Patient
	err := r.db.QueryRowContext(ctx, `
		SELECT national_id, full_name
		FROM patients
		WHERE national_id = $1
	`, nationalID).Scan(&p.NationalID, &p.FullName)
	if errors.Is(err, sql.ErrNoRows) {
		return patients.Patient{}, patients.ErrRepoNotFound
	}
	if err != nil {
		return patients.Patient{}, fmt.Errorf("query patient: %w", err)
	}
	return p, nil
}
