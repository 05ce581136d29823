package history

import "time"

// Status define el estado lógico del registro de uso.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

// Etiquetas de respaldo cuando la cadena cita→tratamiento→medicamento ya no existe.
// El registro de uso sobrevive al borrado físico de sus orígenes.
const (
	FallbackTreatmentLabel  = "Tratamiento eliminado"
	FallbackMedicationLabel = "Medicamento eliminado"
)

// Record es un hecho inmutable-una-vez-creado: una dosis tomada a una hora dada.
// Solo se crea al concluir una cita o al registrar una toma manual contra una
// cita existente. Nunca se borra físicamente.
type Record struct {
	ID          string
	OwnerUserID string

	// Referencia débil: puede quedar colgante si el tratamiento se borra después.
	AppointmentID string

	UsedAt    time.Time
	DoseTaken float64
	Note      string

	Status Status

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DoseContext son las etiquetas descriptivas resueltas para un registro.
// Si la cadena de referencias está rota, se sustituyen las etiquetas de respaldo.
type DoseContext struct {
	TreatmentName  string
	MedicationName string
}
