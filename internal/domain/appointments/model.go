package appointments

import "time"

// Appointment es una instancia concreta de "tomar dosis a la hora T" derivada
// de un tratamiento. La referencia al tratamiento es un ID, nunca un puntero
// vivo; el tratamiento es quien posee la colección.
type Appointment struct {
	ID          string
	OwnerUserID string
	TreatmentID string

	ScheduledAt time.Time
	AlertType   AlertType
	Status      Status

	// HistoryID enlaza el registro de uso creado al concluir. Vacío mientras
	// la cita siga pendiente o haya sido cancelada.
	HistoryID string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Window es la ventana [desde, hasta) válida para agendar dentro de un
// tratamiento. La provee el caller para mantener este paquete sin dependencia
// del paquete de tratamientos.
type Window struct {
	From time.Time
	To   time.Time
}

// Contains indica si el instante cae dentro de la ventana.
func (w Window) Contains(ts time.Time) bool {
	return !ts.Before(w.From) && ts.Before(w.To)
}
