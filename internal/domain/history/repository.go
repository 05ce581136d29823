package history

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, rec Record) error
	Update(ctx context.Context, rec Record) error

	// GetByID devuelve el registro (activo o inactivo) si pertenece al usuario.
	GetByID(ctx context.Context, id, ownerUserID string) (Record, error)

	// ListByOwner devuelve solo registros activos.
	ListByOwner(ctx context.Context, ownerUserID string) ([]Record, error)

	// ListByPeriod devuelve registros activos con UsedAt dentro de [from, to],
	// ordenados descendente por UsedAt.
	ListByPeriod(ctx context.Context, ownerUserID string, from, to time.Time) ([]Record, error)

	// Deactivate es el borrado lógico: status a INACTIVE, la fila persiste.
	Deactivate(ctx context.Context, id, ownerUserID string) error

	// Remove elimina la fila. Solo lo usa el deshacer de un registro cuya
	// toma no se confirmó; el borrado de usuario es Deactivate.
	Remove(ctx context.Context, id, ownerUserID string) error
}
