package memory

import (
	"context"

	"medication-scheduler/internal/domain/treatments"
)

// TreatmentTx satisface treatments.TxRunner delegando en los repos en
// memoria. No hay rollback real: estas operaciones validan antes de escribir
// y no fallan a mitad de secuencia.
type TreatmentTx struct {
	treats treatments.Repository
	appts  treatments.AppointmentStore
}

func NewTreatmentTx(treats treatments.Repository, appts treatments.AppointmentStore) *TreatmentTx {
	return &TreatmentTx{treats: treats, appts: appts}
}

func (u *TreatmentTx) InTx(ctx context.Context, fn func(repo treatments.Repository, appts treatments.AppointmentStore) error) error {
	return fn(u.treats, u.appts)
}
