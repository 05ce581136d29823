package treatments

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"medication-scheduler/internal/domain/appointments"
	"medication-scheduler/internal/middleware"

	"github.com/go-chi/chi/v5"
)

const dateLayout = "2006-01-02"

func RegisterRoutes(r chi.Router, svc *Service, apptsSvc *appointments.Service) {
	r.Route("/treatments", func(tr chi.Router) {
		tr.Post("/", createTreatmentHandler(svc))
		tr.Get("/", listTreatmentsHandler(svc))
		tr.Get("/{treatmentID}", getTreatmentHandler(svc))
		tr.Patch("/{treatmentID}", updateTreatmentHandler(svc))

		// Cancelación: borrado lógico del tratamiento + retiro de pendientes.
		tr.Delete("/{treatmentID}", cancelTreatmentHandler(svc))

		tr.Get("/{treatmentID}/appointments", listTreatmentAppointmentsHandler(svc, apptsSvc))
	})
}

// frequencyPayload transporta la regla de frecuencia en el borde HTTP.
// Exactamente una variante aplica según type.
type frequencyPayload struct {
	Type          string `json:"type" enums:"INTERVAL_HOURS,SPECIFIC_TIMES"`
	IntervalHours int    `json:"interval_hours,omitempty"`
	Times         string `json:"times,omitempty"` // "09:00, 21:00"
}

type createTreatmentRequest struct {
	MedicationID string           `json:"medication_id"`
	Name         string           `json:"name"`
	DoseAmount   float64          `json:"dose_amount"`
	StartDate    string           `json:"start_date"` // YYYY-MM-DD
	EndDate      string           `json:"end_date"`   // YYYY-MM-DD, inclusivo
	Frequency    frequencyPayload `json:"frequency"`
	AlertType    string           `json:"alert_type" enums:"PUSH,EMAIL,ALARM,NONE"`
}

type updateTreatmentRequest struct {
	// Punteros para PATCH real: nil = no tocar. Cambiar fechas o frecuencia
	// regenera las citas pendientes.
	Name       *string           `json:"name"`
	DoseAmount *float64          `json:"dose_amount"`
	StartDate  *string           `json:"start_date"`
	EndDate    *string           `json:"end_date"`
	Frequency  *frequencyPayload `json:"frequency"`
	AlertType  *string           `json:"alert_type"`
}

type treatmentResponse struct {
	ID           string           `json:"id"`
	OwnerUserID  string           `json:"owner_user_id"`
	MedicationID string           `json:"medication_id"`
	Name         string           `json:"name"`
	DoseAmount   float64          `json:"dose_amount"`
	StartDate    string           `json:"start_date"`
	EndDate      string           `json:"end_date"`
	Frequency    frequencyPayload `json:"frequency"`
	AlertType    string           `json:"alert_type"`
	Status       string           `json:"status"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

type treatmentAppointmentResponse struct {
	ID          string    `json:"id"`
	ScheduledAt time.Time `json:"scheduled_at"`
	AlertType   string    `json:"alert_type"`
	Status      string    `json:"status"`
}

type createTreatmentResponse struct {
	Treatment    treatmentResponse              `json:"treatment"`
	Appointments []treatmentAppointmentResponse `json:"appointments"`
}

// createTreatmentHandler godoc
// @Summary Crear tratamiento
// @Description Crea un tratamiento y genera sus citas PENDING según la regla de frecuencia. El medicamento debe existir y pertenecer al usuario.
// @Tags treatments
// @Accept json
// @Produce json
// @Param payload body createTreatmentRequest true "Datos del tratamiento; fechas en YYYY-MM-DD"
// @Success 201 {object} createTreatmentResponse
// @Failure 400 {string} string "invalid json / regla o fechas inválidas"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "medication not found"
// @Router /treatments [post]
func createTreatmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createTreatmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		start, err := time.Parse(dateLayout, req.StartDate)
		if err != nil {
			http.Error(w, "start_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		end, err := time.Parse(dateLayout, req.EndDate)
		if err != nil {
			http.Error(w, "end_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		rule, ok := toRule(req.Frequency)
		if !ok {
			http.Error(w, "unknown frequency type", http.StatusBadRequest)
			return
		}
		alert, ok := appointments.ParseAlertType(req.AlertType)
		if !ok {
			http.Error(w, "unknown alert_type", http.StatusBadRequest)
			return
		}

		t, generated, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			MedicationID: req.MedicationID,
			Name:         req.Name,
			DoseAmount:   req.DoseAmount,
			StartDate:    start,
			EndDate:      end,
			Frequency:    rule,
			AlertType:    alert,
		})
		if err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}

		out := createTreatmentResponse{Treatment: toTreatmentResponse(t)}
		for _, a := range generated {
			out.Appointments = append(out.Appointments, treatmentAppointmentResponse{
				ID:          a.ID,
				ScheduledAt: a.ScheduledAt,
				AlertType:   string(a.AlertType),
				Status:      string(a.Status),
			})
		}
		writeJSON(w, http.StatusCreated, out)
	}
}

// listTreatmentsHandler godoc
// @Summary Listar tratamientos
// @Tags treatments
// @Produce json
// @Success 200 {array} treatmentResponse
// @Failure 401 {string} string "unauthorized"
// @Router /treatments [get]
func listTreatmentsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByOwner(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]treatmentResponse, 0, len(items))
		for _, t := range items {
			out = append(out, toTreatmentResponse(t))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getTreatmentHandler godoc
// @Summary Obtener tratamiento
// @Tags treatments
// @Produce json
// @Param treatmentID path string true "ID del tratamiento"
// @Success 200 {object} treatmentResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "treatment not found"
// @Router /treatments/{treatmentID} [get]
func getTreatmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		t, err := svc.GetByID(r.Context(), chi.URLParam(r, "treatmentID"), claims.UserID)
		if err != nil {
			http.Error(w, "treatment not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toTreatmentResponse(t))
	}
}

// updateTreatmentHandler godoc
// @Summary Actualizar tratamiento
// @Description Actualización parcial. Cambios de fechas o frecuencia retiran las citas PENDING y generan un conjunto nuevo para la ventana restante.
// @Tags treatments
// @Accept json
// @Produce json
// @Param treatmentID path string true "ID del tratamiento"
// @Param payload body updateTreatmentRequest true "Campos a modificar"
// @Success 200 {object} treatmentResponse
// @Failure 400 {string} string "invalid json / datos inválidos"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "treatment not found"
// @Failure 409 {string} string "tratamiento en estado terminal"
// @Router /treatments/{treatmentID} [patch]
func updateTreatmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req updateTreatmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := UpdateInput{
			Name:       req.Name,
			DoseAmount: req.DoseAmount,
		}

		if req.StartDate != nil {
			start, err := time.Parse(dateLayout, *req.StartDate)
			if err != nil {
				http.Error(w, "start_date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			in.StartDate = &start
		}
		if req.EndDate != nil {
			end, err := time.Parse(dateLayout, *req.EndDate)
			if err != nil {
				http.Error(w, "end_date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			in.EndDate = &end
		}
		if req.Frequency != nil {
			rule, ok := toRule(*req.Frequency)
			if !ok {
				http.Error(w, "unknown frequency type", http.StatusBadRequest)
				return
			}
			in.Frequency = &rule
		}
		if req.AlertType != nil {
			alert, ok := appointments.ParseAlertType(*req.AlertType)
			if !ok {
				http.Error(w, "unknown alert_type", http.StatusBadRequest)
				return
			}
			in.AlertType = &alert
		}

		t, err := svc.Update(r.Context(), chi.URLParam(r, "treatmentID"), claims.UserID, in)
		if err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}
		writeJSON(w, http.StatusOK, toTreatmentResponse(t))
	}
}

// cancelTreatmentHandler godoc
// @Summary Cancelar tratamiento
// @Description Retira las citas PENDING y deja el tratamiento CANCELLED. Citas TAKEN/CANCELLED quedan intactas. Idempotente.
// @Tags treatments
// @Param treatmentID path string true "ID del tratamiento"
// @Success 204 {string} string "sin contenido"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "treatment not found"
// @Failure 409 {string} string "tratamiento ya concluido"
// @Router /treatments/{treatmentID} [delete]
func cancelTreatmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.Cancel(r.Context(), chi.URLParam(r, "treatmentID"), claims.UserID); err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// listTreatmentAppointmentsHandler godoc
// @Summary Listar citas de un tratamiento
// @Tags treatments
// @Produce json
// @Param treatmentID path string true "ID del tratamiento"
// @Success 200 {array} treatmentAppointmentResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "treatment not found"
// @Router /treatments/{treatmentID}/appointments [get]
func listTreatmentAppointmentsHandler(svc *Service, apptsSvc *appointments.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		// La propiedad se valida cargando el tratamiento primero.
		t, err := svc.GetByID(r.Context(), chi.URLParam(r, "treatmentID"), claims.UserID)
		if err != nil {
			http.Error(w, "treatment not found", http.StatusNotFound)
			return
		}

		items, err := apptsSvc.ListByTreatment(r.Context(), t.ID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]treatmentAppointmentResponse, 0, len(items))
		for _, a := range items {
			out = append(out, treatmentAppointmentResponse{
				ID:          a.ID,
				ScheduledAt: a.ScheduledAt,
				AlertType:   string(a.AlertType),
				Status:      string(a.Status),
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func toRule(p frequencyPayload) (Rule, bool) {
	ft, ok := ParseFrequencyType(p.Type)
	if !ok {
		return Rule{}, false
	}
	return Rule{
		Type:          ft,
		IntervalHours: p.IntervalHours,
		Times:         p.Times,
	}, true
}

func toTreatmentResponse(t Treatment) treatmentResponse {
	return treatmentResponse{
		ID:           t.ID,
		OwnerUserID:  t.OwnerUserID,
		MedicationID: t.MedicationID,
		Name:         t.Name,
		DoseAmount:   t.DoseAmount,
		StartDate:    t.StartDate.Format(dateLayout),
		EndDate:      t.EndDate.Format(dateLayout),
		Frequency: frequencyPayload{
			Type:          string(t.Frequency.Type),
			IntervalHours: t.Frequency.IntervalHours,
			Times:         t.Frequency.Times,
		},
		AlertType: string(t.AlertType),
		Status:    string(t.Status),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
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
