package appointments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"medication-scheduler/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// TreatmentWindows resuelve la ventana de agendado de un tratamiento del
// usuario. Lo implementa treatments.Service; la interfaz vive aquí para no
// invertir la dirección de dependencia entre paquetes.
type TreatmentWindows interface {
	WindowOf(ctx context.Context, treatmentID, ownerUserID string) (Window, error)
}

func RegisterRoutes(r chi.Router, svc *Service, windows TreatmentWindows) {
	r.Route("/appointments", func(ar chi.Router) {
		ar.Post("/", createAppointmentHandler(svc, windows))
		ar.Get("/", listAppointmentsHandler(svc))
		ar.Patch("/{appointmentID}", rescheduleAppointmentHandler(svc))
		ar.Delete("/{appointmentID}", cancelAppointmentHandler(svc))

		// Concluir: registra la toma y dispara la conclusión automática
		// del tratamiento.
		ar.Post("/{appointmentID}/take", takeAppointmentHandler(svc))
	})
}

type createAppointmentRequest struct {
	TreatmentID string `json:"treatment_id"`
	ScheduledAt string `json:"scheduled_at"` // RFC3339
	AlertType   string `json:"alert_type" enums:"PUSH,EMAIL,ALARM,NONE"`
}

type rescheduleAppointmentRequest struct {
	ScheduledAt string `json:"scheduled_at"` // RFC3339
}

type takeAppointmentRequest struct {
	DoseTaken float64 `json:"dose_taken"`
	UsedAt    string  `json:"used_at,omitempty"` // RFC3339; vacío = ahora
	Note      string  `json:"note,omitempty"`
}

// appointmentResponse representa una cita devuelta por la API.
type appointmentResponse struct {
	ID          string    `json:"id"`
	OwnerUserID string    `json:"owner_user_id"`
	TreatmentID string    `json:"treatment_id"`
	ScheduledAt time.Time `json:"scheduled_at"`
	AlertType   string    `json:"alert_type"`
	Status      string    `json:"status"`
	HistoryID   string    `json:"history_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// usageResponse es el registro de historial creado al concluir la cita.
type usageResponse struct {
	ID            string    `json:"id"`
	AppointmentID string    `json:"appointment_id"`
	UsedAt        time.Time `json:"used_at"`
	DoseTaken     float64   `json:"dose_taken"`
	Note          string    `json:"note"`
	Status        string    `json:"status"`
}

// createAppointmentHandler godoc
// @Summary Agendar cita puntual
// @Description Crea una cita PENDING dentro de la ventana [inicio, fin] del tratamiento. Fuera de la ventana es error de validación.
// @Tags appointments
// @Accept json
// @Produce json
// @Param payload body createAppointmentRequest true "Datos de la cita; scheduled_at en RFC3339"
// @Success 201 {object} appointmentResponse
// @Failure 400 {string} string "invalid json / fuera de la ventana del tratamiento"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "treatment not found"
// @Router /appointments [post]
func createAppointmentHandler(svc *Service, windows TreatmentWindows) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createAppointmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		ts, err := time.Parse(time.RFC3339, req.ScheduledAt)
		if err != nil {
			http.Error(w, "scheduled_at must be RFC3339", http.StatusBadRequest)
			return
		}
		alert, ok := ParseAlertType(req.AlertType)
		if !ok {
			http.Error(w, "unknown alert_type", http.StatusBadRequest)
			return
		}

		window, err := windows.WindowOf(r.Context(), req.TreatmentID, claims.UserID)
		if err != nil {
			http.Error(w, "treatment not found", http.StatusNotFound)
			return
		}

		a, err := svc.Create(r.Context(), claims.UserID, window, CreateInput{
			TreatmentID: req.TreatmentID,
			ScheduledAt: ts,
			AlertType:   alert,
		})
		if err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}
		writeJSON(w, http.StatusCreated, toAppointmentResponse(a))
	}
}

// listAppointmentsHandler godoc
// @Summary Listar citas
// @Description Lista las citas del usuario. Por defecto excluye canceladas; include_cancelled=true las incluye. Permite acotar por rango de fechas.
// @Tags appointments
// @Produce json
// @Param from query string false "Fecha/hora mínima scheduled_at (RFC3339)"
// @Param to query string false "Fecha/hora máxima scheduled_at (RFC3339)"
// @Param include_cancelled query bool false "Incluir citas canceladas"
// @Param limit query int false "Máximo de citas a devolver (1-200). Por defecto 50"
// @Success 200 {array} appointmentResponse
// @Failure 400 {string} string "Parámetros de filtro inválidos"
// @Failure 401 {string} string "unauthorized"
// @Router /appointments [get]
func listAppointmentsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		filter, err := parseListFilter(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		items, err := svc.ListByOwner(r.Context(), claims.UserID, filter)
		if err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}

		out := make([]appointmentResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAppointmentResponse(a))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// rescheduleAppointmentHandler godoc
// @Summary Reprogramar cita
// @Description Mueve el horario de una cita PENDING. Citas TAKEN o CANCELLED no se reprograman.
// @Tags appointments
// @Accept json
// @Produce json
// @Param appointmentID path string true "ID de la cita"
// @Param payload body rescheduleAppointmentRequest true "Nuevo horario en RFC3339"
// @Success 200 {object} appointmentResponse
// @Failure 400 {string} string "invalid json / horario inválido"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "appointment not found"
// @Failure 409 {string} string "cita en estado terminal"
// @Router /appointments/{appointmentID} [patch]
func rescheduleAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req rescheduleAppointmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		ts, err := time.Parse(time.RFC3339, req.ScheduledAt)
		if err != nil {
			http.Error(w, "scheduled_at must be RFC3339", http.StatusBadRequest)
			return
		}

		a, err := svc.Reschedule(r.Context(), chi.URLParam(r, "appointmentID"), claims.UserID, ts)
		if err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}
		writeJSON(w, http.StatusOK, toAppointmentResponse(a))
	}
}

// cancelAppointmentHandler godoc
// @Summary Cancelar cita
// @Description Borrado lógico: la cita queda CANCELLED, la fila persiste. Cancelar dos veces no es error.
// @Tags appointments
// @Param appointmentID path string true "ID de la cita"
// @Success 204 {string} string "sin contenido"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "appointment not found"
// @Router /appointments/{appointmentID} [delete]
func cancelAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.Cancel(r.Context(), chi.URLParam(r, "appointmentID"), claims.UserID); err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// takeAppointmentHandler godoc
// @Summary Concluir cita (tomar dosis)
// @Description PENDING → TAKEN: crea exactamente un registro de historial y re-evalúa la conclusión automática del tratamiento. Devuelve el registro creado.
// @Tags appointments
// @Accept json
// @Produce json
// @Param appointmentID path string true "ID de la cita"
// @Param payload body takeAppointmentRequest true "Dosis tomada; used_at en RFC3339 (vacío = ahora)"
// @Success 201 {object} usageResponse
// @Failure 400 {string} string "invalid json / datos inválidos"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "appointment not found"
// @Failure 409 {string} string "cita ya concluida o cancelada"
// @Router /appointments/{appointmentID}/take [post]
func takeAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req takeAppointmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var usedAt time.Time
		if strings.TrimSpace(req.UsedAt) != "" {
			t, err := time.Parse(time.RFC3339, req.UsedAt)
			if err != nil {
				http.Error(w, "used_at must be RFC3339", http.StatusBadRequest)
				return
			}
			usedAt = t
		}

		rec, err := svc.Complete(r.Context(), chi.URLParam(r, "appointmentID"), claims.UserID, UsageInput{
			DoseTaken: req.DoseTaken,
			UsedAt:    usedAt,
			Note:      req.Note,
		})
		if err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}

		writeJSON(w, http.StatusCreated, usageResponse{
			ID:            rec.ID,
			AppointmentID: rec.AppointmentID,
			UsedAt:        rec.UsedAt,
			DoseTaken:     rec.DoseTaken,
			Note:          rec.Note,
			Status:        string(rec.Status),
		})
	}
}

func parseListFilter(r *http.Request) (ListFilter, error) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}

	filter := ListFilter{Limit: limit}

	if v := strings.TrimSpace(r.URL.Query().Get("from")); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return ListFilter{}, errors.New("from must be RFC3339")
		}
		filter.From = &t
	}
	if v := strings.TrimSpace(r.URL.Query().Get("to")); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return ListFilter{}, errors.New("to must be RFC3339")
		}
		filter.To = &t
	}
	if v := strings.TrimSpace(r.URL.Query().Get("include_cancelled")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return ListFilter{}, errors.New("include_cancelled must be a bool")
		}
		filter.IncludeCancelled = b
	}

	return filter, nil
}

func toAppointmentResponse(a Appointment) appointmentResponse {
	return appointmentResponse{
		ID:          a.ID,
		OwnerUserID: a.OwnerUserID,
		TreatmentID: a.TreatmentID,
		ScheduledAt: a.ScheduledAt,
		AlertType:   string(a.AlertType),
		Status:      string(a.Status),
		HistoryID:   a.HistoryID,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrBadState):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
