package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"ilac-otomasyon/internal/domain/patients"
	"ilac-otomasyon/internal/domain/prescriptions"
)

// Seed carga datos de demo solo si la tabla drugs está vacía.
// Devuelve false si ya había datos.
func Seed(ctx context.Context, db *sql.DB, drugs []prescriptions.Drug, pts []patients.Patient) (bool, error) {
	var n int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM drugs`).Scan(&n); err != nil {
		return false, fmt.Errorf("count drugs: %w", err)
	}
	if n > 0 {
		return false, nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin seed: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, d := range drugs {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO drugs (prescription_code, name, expiry, usage_instructions)
			VALUES ($1, $2, $3, $4)
		`, d.PrescriptionCode, d.Name, d.Expiry, d.UsageInstructions); err != nil {
			return false, fmt.Errorf("insert drug %q: %w", d.Name, err)
		}
	}
	for _, p := range pts {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO patients (national_id, full_name)
			VALUES ($1, $2)
			ON CONFLICT (national_id) DO NOTHING
		`, p.NationalID, p.FullName); err != nil {
			return false, fmt.Errorf("insert patient: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit seed: %w", err)
	}
	return true, nil
}
