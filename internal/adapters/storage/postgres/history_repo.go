package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"medication-scheduler/internal/domain/history"
)

type HistoryRepo struct {
	db *sql.DB
}

func NewHistoryRepo(db *sql.DB) *HistoryRepo {
	return &HistoryRepo{db: db}
}

func (r *HistoryRepo) Create(ctx context.Context, rec history.Record) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO usage_history (
			id, owner_user_id, appointment_id,
			used_at, dose_taken, note,
			status,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		rec.ID,
		rec.OwnerUserID,
		toNullString(rec.AppointmentID),
		rec.UsedAt,
		rec.DoseTaken,
		rec.Note,
		string(rec.Status),
		rec.CreatedAt,
		rec.UpdatedAt,
	)
	return err
}

func (r *HistoryRepo) Update(ctx context.Context, rec history.Record) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE usage_history
		SET
			used_at = $3,
			dose_taken = $4,
			note = $5,
			status = $6,
			updated_at = $7
		WHERE id = $1 AND owner_user_id = $2
	`,
		rec.ID,
		rec.OwnerUserID,
		rec.UsedAt,
		rec.DoseTaken,
		rec.Note,
		string(rec.Status),
		rec.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *HistoryRepo) GetByID(ctx context.Context, id, ownerUserID string) (history.Record, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return history.Record{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, owner_user_id, appointment_id,
		       used_at, dose_taken, note,
		       status,
		       created_at, updated_at
		FROM usage_history
		WHERE id = $1 AND owner_user_id = $2
	`, id, ownerUserID)

	rec, err := scanRecord(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return history.Record{}, ErrNotFound
		}
		return history.Record{}, err
	}
	return rec, nil
}

func (r *HistoryRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]history.Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, owner_user_id, appointment_id,
		       used_at, dose_taken, note,
		       status,
		       created_at, updated_at
		FROM usage_history
		WHERE owner_user_id = $1 AND status = 'ACTIVE'
		ORDER BY used_at DESC
	`, ownerUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRecords(rows)
}

func (r *HistoryRepo) ListByPeriod(ctx context.Context, ownerUserID string, from, to time.Time) ([]history.Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, owner_user_id, appointment_id,
		       used_at, dose_taken, note,
		       status,
		       created_at, updated_at
		FROM usage_history
		WHERE owner_user_id = $1 AND status = 'ACTIVE'
		  AND used_at >= $2 AND used_at <= $3
		ORDER BY used_at DESC
	`, ownerUserID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRecords(rows)
}

func (r *HistoryRepo) Deactivate(ctx context.Context, id, ownerUserID string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE usage_history
		SET status = 'INACTIVE'
		WHERE id = $1 AND owner_user_id = $2
	`, id, ownerUserID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *HistoryRepo) Remove(ctx context.Context, id, ownerUserID string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM usage_history
		WHERE id = $1 AND owner_user_id = $2
	`, id, ownerUserID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func collectRecords(rows *sql.Rows) ([]history.Record, error) {
	out := make([]history.Record, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func scanRecord(row rowScanner) (history.Record, error) {
	var rec history.Record
	var status string
	var appointmentID sql.NullString

	if err := row.Scan(
		&rec.ID,
		&rec.OwnerUserID,
		&appointmentID,
		&rec.UsedAt,
		&rec.DoseTaken,
		&rec.Note,
		&status,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	); err != nil {
		return history.Record{}, err
	}

	rec.Status = history.Status(status)
	if appointmentID.Valid {
		rec.AppointmentID = appointmentID.String
	}
	return rec, nil
}
