package treatments

import "strings"

// Status define el ciclo de vida del tratamiento: ACTIVE es el estado inicial;
// COMPLETED llega de forma automática al no quedar citas pendientes y
// CANCELLED solo de forma explícita. Ambos son terminales.
type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

// FrequencyType selecciona la variante de la regla de frecuencia. Exactamente
// una variante está poblada según el tipo declarado.
type FrequencyType string

const (
	FrequencyIntervalHours FrequencyType = "INTERVAL_HOURS"
	FrequencySpecificTimes FrequencyType = "SPECIFIC_TIMES"
)

// ParseFrequencyType valida el valor recibido en el borde; valores
// desconocidos se rechazan, nunca se asume un default.
func ParseFrequencyType(raw string) (FrequencyType, bool) {
	f := FrequencyType(strings.ToUpper(strings.TrimSpace(raw)))
	switch f {
	case FrequencyIntervalHours, FrequencySpecificTimes:
		return f, true
	default:
		return "", false
	}
}
