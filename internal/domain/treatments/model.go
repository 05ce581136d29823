package treatments

import (
	"time"

	"medication-scheduler/internal/domain/appointments"
)

// Treatment es un plan de dosificación: un medicamento, una dosis, un rango de
// fechas y una regla de frecuencia que el expansor materializa en citas.
// El tratamiento posee sus citas (la cancelación cascadea sobre ellas); las
// citas lo referencian solo por ID.
type Treatment struct {
	ID          string
	OwnerUserID string

	MedicationID string
	Name         string
	DoseAmount   float64

	// Rango de vigencia a nivel de día; EndDate es inclusivo.
	StartDate time.Time
	EndDate   time.Time

	Frequency Rule
	AlertType appointments.AlertType

	Status Status

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Window devuelve la ventana [inicio del día de StartDate, fin del día de
// EndDate) válida para agendar citas del tratamiento.
func (t Treatment) Window() appointments.Window {
	return appointments.Window{
		From: dayOf(t.StartDate),
		To:   dayOf(t.EndDate).AddDate(0, 0, 1),
	}
}
