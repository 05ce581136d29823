package postgres

import (
	"context"
	"database/sql"

	"medication-scheduler/internal/domain/treatments"
)

// querier es lo que ambos *sql.DB y *sql.Tx saben hacer; permite que un
// repo corra igual suelto o dentro de una transacción.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// TreatmentTx implementa treatments.TxRunner sobre una transacción real:
// las escrituras del tratamiento y de sus citas se confirman juntas o se
// descartan juntas.
type TreatmentTx struct {
	db *sql.DB
}

func NewTreatmentTx(db *sql.DB) *TreatmentTx {
	return &TreatmentTx{db: db}
}

func (u *TreatmentTx) InTx(ctx context.Context, fn func(repo treatments.Repository, appts treatments.AppointmentStore) error) error {
	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(&TreatmentsRepo{db: tx}, &AppointmentsRepo{db: tx}); err != nil {
		return err
	}
	return tx.Commit()
}
