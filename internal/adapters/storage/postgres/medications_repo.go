package postgres

import (
	"context"
	"database/sql"
	"strings"

	"medication-scheduler/internal/domain/medications"
)

type MedicationsRepo struct {
	db *sql.DB
}

func NewMedicationsRepo(db *sql.DB) *MedicationsRepo {
	return &MedicationsRepo{db: db}
}

func (r *MedicationsRepo) Create(ctx context.Context, m medications.Medication) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO medications (
			id, owner_user_id,
			name, active_ingredient, laboratory, unit,
			status,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		m.ID,
		m.OwnerUserID,
		m.Name,
		m.ActiveIngredient,
		m.Laboratory,
		string(m.Unit),
		string(m.Status),
		m.CreatedAt,
		m.UpdatedAt,
	)
	return err
}

func (r *MedicationsRepo) Update(ctx context.Context, m medications.Medication) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE medications
		SET name = $1, active_ingredient = $2, laboratory = $3, unit = $4,
		    status = $5, updated_at = $6
		WHERE id = $7 AND owner_user_id = $8
	`,
		m.Name,
		m.ActiveIngredient,
		m.Laboratory,
		string(m.Unit),
		string(m.Status),
		m.UpdatedAt,
		m.ID,
		m.OwnerUserID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MedicationsRepo) GetByID(ctx context.Context, id, ownerUserID string) (medications.Medication, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return medications.Medication{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, owner_user_id,
		       name, active_ingredient, laboratory, unit,
		       status,
		       created_at, updated_at
		FROM medications
		WHERE id = $1 AND owner_user_id = $2 AND status = 'ACTIVE'
	`, id, ownerUserID)

	m, err := scanMedication(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return medications.Medication{}, ErrNotFound
		}
		return medications.Medication{}, err
	}
	return m, nil
}

func (r *MedicationsRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]medications.Medication, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, owner_user_id,
		       name, active_ingredient, laboratory, unit,
		       status,
		       created_at, updated_at
		FROM medications
		WHERE owner_user_id = $1 AND status = 'ACTIVE'
		ORDER BY name
	`, ownerUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]medications.Medication, 0)
	for rows.Next() {
		m, err := scanMedication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *MedicationsRepo) Deactivate(ctx context.Context, id, ownerUserID string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE medications
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

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMedication(row rowScanner) (medications.Medication, error) {
	var m medications.Medication
	var unit, status string

	if err := row.Scan(
		&m.ID,
		&m.OwnerUserID,
		&m.Name,
		&m.ActiveIngredient,
		&m.Laboratory,
		&unit,
		&status,
		&m.CreatedAt,
		&m.UpdatedAt,
	); err != nil {
		return medications.Medication{}, err
	}

	m.Unit = medications.MeasureUnit(unit)
	m.Status = medications.Status(status)
	return m, nil
}
