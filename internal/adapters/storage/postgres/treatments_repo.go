package postgres

import (
	"context"
	"database/sql"
	"strings"

	"medication-scheduler/internal/domain/appointments"
	"medication-scheduler/internal/domain/treatments"
)

type TreatmentsRepo struct {
	db querier
}

func NewTreatmentsRepo(db *sql.DB) *TreatmentsRepo {
	return &TreatmentsRepo{db: db}
}

func (r *TreatmentsRepo) Create(ctx context.Context, t treatments.Treatment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO treatments (
			id, owner_user_id, medication_id,
			name, dose_amount,
			start_date, end_date,
			frequency_type, interval_hours, specific_times,
			alert_type, status,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
	`,
		t.ID,
		t.OwnerUserID,
		t.MedicationID,
		t.Name,
		t.DoseAmount,
		t.StartDate,
		t.EndDate,
		string(t.Frequency.Type),
		t.Frequency.IntervalHours,
		t.Frequency.Times,
		string(t.AlertType),
		string(t.Status),
		t.CreatedAt,
		t.UpdatedAt,
	)
	return err
}

func (r *TreatmentsRepo) Update(ctx context.Context, t treatments.Treatment) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE treatments
		SET
			name = $3,
			dose_amount = $4,
			start_date = $5,
			end_date = $6,
			frequency_type = $7,
			interval_hours = $8,
			specific_times = $9,
			alert_type = $10,
			status = $11,
			updated_at = $12
		WHERE id = $1 AND owner_user_id = $2
	`,
		t.ID,
		t.OwnerUserID,
		t.Name,
		t.DoseAmount,
		t.StartDate,
		t.EndDate,
		string(t.Frequency.Type),
		t.Frequency.IntervalHours,
		t.Frequency.Times,
		string(t.AlertType),
		string(t.Status),
		t.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TreatmentsRepo) GetByID(ctx context.Context, id, ownerUserID string) (treatments.Treatment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return treatments.Treatment{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, owner_user_id, medication_id,
		       name, dose_amount,
		       start_date, end_date,
		       frequency_type, interval_hours, specific_times,
		       alert_type, status,
		       created_at, updated_at
		FROM treatments
		WHERE id = $1 AND owner_user_id = $2
	`, id, ownerUserID)

	t, err := scanTreatment(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return treatments.Treatment{}, ErrNotFound
		}
		return treatments.Treatment{}, err
	}
	return t, nil
}

func (r *TreatmentsRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]treatments.Treatment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, owner_user_id, medication_id,
		       name, dose_amount,
		       start_date, end_date,
		       frequency_type, interval_hours, specific_times,
		       alert_type, status,
		       created_at, updated_at
		FROM treatments
		WHERE owner_user_id = $1
		ORDER BY start_date, created_at
	`, ownerUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]treatments.Treatment, 0)
	for rows.Next() {
		t, err := scanTreatment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func scanTreatment(row rowScanner) (treatments.Treatment, error) {
	var t treatments.Treatment
	var freqType, alertType, status string

	if err := row.Scan(
		&t.ID,
		&t.OwnerUserID,
		&t.MedicationID,
		&t.Name,
		&t.DoseAmount,
		&t.StartDate,
		&t.EndDate,
		&freqType,
		&t.Frequency.IntervalHours,
		&t.Frequency.Times,
		&alertType,
		&status,
		&t.CreatedAt,
		&t.UpdatedAt,
	); err != nil {
		return treatments.Treatment{}, err
	}

	t.Frequency.Type = treatments.FrequencyType(freqType)
	t.AlertType = appointments.AlertType(alertType)
	t.Status = treatments.Status(status)
	return t, nil
}
