package appointments

import "strings"

// Status define el ciclo de vida de una cita: PENDING es el estado inicial;
// TAKEN y CANCELLED son terminales, sin transición de salida.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusTaken     Status = "TAKEN"
	StatusCancelled Status = "CANCELLED"
)

// AlertType etiqueta cómo quiere ser avisado el usuario. El núcleo no envía
// notificaciones; un colaborador externo consume esta etiqueta.
type AlertType string

const (
	AlertPush  AlertType = "PUSH"
	AlertEmail AlertType = "EMAIL"
	AlertAlarm AlertType = "ALARM"
	AlertNone  AlertType = "NONE"
)

// ParseAlertType valida el valor recibido en el borde; un valor desconocido
// se rechaza, nunca se asume un default silencioso.
func ParseAlertType(raw string) (AlertType, bool) {
	a := AlertType(strings.ToUpper(strings.TrimSpace(raw)))
	switch a {
	case AlertPush, AlertEmail, AlertAlarm, AlertNone:
		return a, true
	case "":
		return AlertPush, true
	default:
		return "", false
	}
}
