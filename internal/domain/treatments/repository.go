package treatments

import "context"

type Repository interface {
	Create(ctx context.Context, t Treatment) error
	Update(ctx context.Context, t Treatment) error

	GetByID(ctx context.Context, id, ownerUserID string) (Treatment, error)
	ListByOwner(ctx context.Context, ownerUserID string) ([]Treatment, error)
}

// TxRunner ejecuta fn como una sola unidad de trabajo: las escrituras que fn
// haga sobre el tratamiento y sus citas se confirman todas o ninguna. Los
// repos que recibe fn operan dentro de esa unidad; los del servicio quedan
// fuera de ella.
type TxRunner interface {
	InTx(ctx context.Context, fn func(repo Repository, appts AppointmentStore) error) error
}
