package medications

import "context"

type Repository interface {
	Create(ctx context.Context, m Medication) error
	Update(ctx context.Context, m Medication) error

	// GetByID devuelve el medicamento solo si pertenece al usuario y sigue activo.
	GetByID(ctx context.Context, id, ownerUserID string) (Medication, error)
	ListByOwner(ctx context.Context, ownerUserID string) ([]Medication, error)

	// Deactivate es el borrado lógico: cambia status a INACTIVE, nunca borra la fila.
	Deactivate(ctx context.Context, id, ownerUserID string) error
}
