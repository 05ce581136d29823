package postgres

import (
	"context"
	"database/sql"
	"strconv"
	"strings"

	"medication-scheduler/internal/domain/appointments"
)

type AppointmentsRepo struct {
	db querier

	// pool queda nil cuando el repo corre dentro de una transacción externa;
	// en ese caso CreateAll no abre una propia.
	pool *sql.DB
}

func NewAppointmentsRepo(db *sql.DB) *AppointmentsRepo {
	return &AppointmentsRepo{db: db, pool: db}
}

const insertAppointmentSQL = `
	INSERT INTO appointments (
		id, owner_user_id, treatment_id,
		scheduled_at, alert_type, status,
		history_id,
		created_at, updated_at
	) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
`

func (r *AppointmentsRepo) Create(ctx context.Context, a appointments.Appointment) error {
	_, err := r.db.ExecContext(ctx, insertAppointmentSQL,
		a.ID,
		a.OwnerUserID,
		a.TreatmentID,
		a.ScheduledAt,
		string(a.AlertType),
		string(a.Status),
		toNullString(a.HistoryID),
		a.CreatedAt,
		a.UpdatedAt,
	)
	return err
}

// CreateAll inserta el lote dentro de una transacción: si una fila falla no
// queda ninguna. Dentro de una transacción externa reutiliza esa misma.
func (r *AppointmentsRepo) CreateAll(ctx context.Context, items []appointments.Appointment) error {
	if len(items) == 0 {
		return nil
	}

	if r.pool == nil {
		return insertAppointments(ctx, r.db, items)
	}

	tx, err := r.pool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if err := insertAppointments(ctx, tx, items); err != nil {
		return err
	}
	return tx.Commit()
}

func insertAppointments(ctx context.Context, q querier, items []appointments.Appointment) error {
	for _, a := range items {
		if _, err := q.ExecContext(ctx, insertAppointmentSQL,
			a.ID,
			a.OwnerUserID,
			a.TreatmentID,
			a.ScheduledAt,
			string(a.AlertType),
			string(a.Status),
			toNullString(a.HistoryID),
			a.CreatedAt,
			a.UpdatedAt,
		); err != nil {
			return err
		}
	}
	return nil
}

func (r *AppointmentsRepo) Update(ctx context.Context, a appointments.Appointment) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE appointments
		SET
			scheduled_at = $3,
			alert_type = $4,
			status = $5,
			history_id = $6,
			updated_at = $7
		WHERE id = $1 AND owner_user_id = $2
	`,
		a.ID,
		a.OwnerUserID,
		a.ScheduledAt,
		string(a.AlertType),
		string(a.Status),
		toNullString(a.HistoryID),
		a.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *AppointmentsRepo) GetByID(ctx context.Context, id, ownerUserID string) (appointments.Appointment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return appointments.Appointment{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, owner_user_id, treatment_id,
		       scheduled_at, alert_type, status,
		       history_id,
		       created_at, updated_at
		FROM appointments
		WHERE id = $1 AND owner_user_id = $2
	`, id, ownerUserID)

	a, err := scanAppointment(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return appointments.Appointment{}, ErrNotFound
		}
		return appointments.Appointment{}, err
	}
	return a, nil
}

func (r *AppointmentsRepo) ListByOwner(ctx context.Context, ownerUserID string, f appointments.ListFilter) ([]appointments.Appointment, error) {
	q := `
		SELECT id, owner_user_id, treatment_id,
		       scheduled_at, alert_type, status,
		       history_id,
		       created_at, updated_at
		FROM appointments
		WHERE owner_user_id = $1
	`
	args := []any{ownerUserID}

	if !f.IncludeCancelled {
		q += ` AND status <> 'CANCELLED'`
	}
	if f.From != nil {
		args = append(args, *f.From)
		q += ` AND scheduled_at >= $` + strconv.Itoa(len(args))
	}
	// Ambos bordes inclusivos, igual que el adaptador en memoria.
	if f.To != nil {
		args = append(args, *f.To)
		q += ` AND scheduled_at <= $` + strconv.Itoa(len(args))
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}
	args = append(args, limit)
	q += ` ORDER BY scheduled_at LIMIT $` + strconv.Itoa(len(args))

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAppointments(rows)
}

func (r *AppointmentsRepo) ListByTreatment(ctx context.Context, treatmentID string) ([]appointments.Appointment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, owner_user_id, treatment_id,
		       scheduled_at, alert_type, status,
		       history_id,
		       created_at, updated_at
		FROM appointments
		WHERE treatment_id = $1
		ORDER BY scheduled_at
	`, treatmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAppointments(rows)
}

func (r *AppointmentsRepo) CountByTreatmentAndStatus(ctx context.Context, treatmentID string, st appointments.Status) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM appointments
		WHERE treatment_id = $1 AND status = $2
	`, treatmentID, string(st)).Scan(&n)
	return n, err
}

func (r *AppointmentsRepo) Cancel(ctx context.Context, id, ownerUserID string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE appointments
		SET status = 'CANCELLED'
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

func (r *AppointmentsRepo) DeleteByTreatmentAndStatus(ctx context.Context, treatmentID string, st appointments.Status) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM appointments
		WHERE treatment_id = $1 AND status = $2
	`, treatmentID, string(st))
	return err
}

func collectAppointments(rows *sql.Rows) ([]appointments.Appointment, error) {
	out := make([]appointments.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func scanAppointment(row rowScanner) (appointments.Appointment, error) {
	var a appointments.Appointment
	var alertType, status string
	var historyID sql.NullString

	if err := row.Scan(
		&a.ID,
		&a.OwnerUserID,
		&a.TreatmentID,
		&a.ScheduledAt,
		&alertType,
		&status,
		&historyID,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return appointments.Appointment{}, err
	}

	a.AlertType = appointments.AlertType(alertType)
	a.Status = appointments.Status(status)
	if historyID.Valid {
		a.HistoryID = historyID.String
	}
	return a, nil
}

func toNullString(s string) sql.NullString {
	if strings.TrimSpace(s) == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
