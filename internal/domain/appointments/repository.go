package appointments

import (
	"context"
	"time"
)

// ListFilter acota el listado por rango de fechas. Por defecto las citas
// canceladas quedan fuera, salvo que se pidan explícitamente.
type ListFilter struct {
	From             *time.Time
	To               *time.Time
	IncludeCancelled bool
	Limit            int
}

type Repository interface {
	Create(ctx context.Context, a Appointment) error

	// CreateAll persiste un lote generado por el expansor como unidad atómica:
	// o se guardan todas las citas o ninguna.
	CreateAll(ctx context.Context, items []Appointment) error

	Update(ctx context.Context, a Appointment) error

	GetByID(ctx context.Context, id, ownerUserID string) (Appointment, error)
	ListByOwner(ctx context.Context, ownerUserID string, f ListFilter) ([]Appointment, error)
	ListByTreatment(ctx context.Context, treatmentID string) ([]Appointment, error)

	CountByTreatmentAndStatus(ctx context.Context, treatmentID string, st Status) (int, error)

	// Cancel es borrado lógico e idempotente sobre una fila existente.
	Cancel(ctx context.Context, id, ownerUserID string) error

	// DeleteByTreatmentAndStatus es la única eliminación física del sistema:
	// retira filas sobre las que nadie actuó (PENDING) al cancelar o
	// reprogramar un tratamiento.
	DeleteByTreatmentAndStatus(ctx context.Context, treatmentID string, st Status) error
}
