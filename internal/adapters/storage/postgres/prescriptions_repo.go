package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"ilac-otomasyon/internal/domain/prescriptions"
)

type PrescriptionsRepo struct {
	db *sql.DB
}

func NewPrescriptionsRepo(db *sql.DB) *PrescriptionsRepo {
	return &PrescriptionsRepo{db: db}
}

func (r *PrescriptionsRepo) ListByCode(ctx context.Context, code string) ([]prescriptions.Drug, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, prescription_code, name, expiry, usage_instructions
		FROM drugs
		WHERE prescription_code = $1
		ORDER BY id ASC
	`, code)
	if err != nil {
		return nil, fmt.Errorf("query drugs: %w", err)
	}
	defer rows.Close()

	out := make([]prescriptions.Drug, 0)
	for rows.Next() {
		var d prescriptions.Drug
		if err := rows.Scan(&d.ID, &d.PrescriptionCode, &d.Name, &d.Expiry, &d.UsageInstructions); err != nil {
			return nil, fmt.Errorf("scan drug: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate drugs: %w", err)
	}
	return out, nil
}
