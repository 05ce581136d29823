package history

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"medication-scheduler/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// AppointmentGuard verifica que una cita exista y pertenezca al usuario antes
// de registrar una toma manual contra ella. Lo implementa appointments.Service.
type AppointmentGuard interface {
	Exists(ctx context.Context, appointmentID, ownerUserID string) error
}

// ContextResolver resuelve las etiquetas descriptivas (tratamiento y
// medicamento) de un registro. Una cadena rota produce las etiquetas de
// respaldo, nunca un error.
type ContextResolver interface {
	Describe(ctx context.Context, appointmentID, ownerUserID string) DoseContext
}

func RegisterRoutes(r chi.Router, svc *Service, guard AppointmentGuard, resolver ContextResolver) {
	r.Route("/history", func(hr chi.Router) {
		hr.Post("/", recordHistoryHandler(svc, guard))
		hr.Get("/", listHistoryHandler(svc, resolver))

		// Datos de reporte: rango explícito, por defecto el mes corriente.
		hr.Get("/report", reportHistoryHandler(svc, resolver))

		hr.Get("/{historyID}", getHistoryHandler(svc, resolver))
		hr.Patch("/{historyID}", updateHistoryHandler(svc))
		hr.Delete("/{historyID}", deleteHistoryHandler(svc))
	})
}

type recordHistoryRequest struct {
	AppointmentID string  `json:"appointment_id"`
	DoseTaken     float64 `json:"dose_taken"`
	UsedAt        string  `json:"used_at,omitempty"` // RFC3339; vacío = ahora
	Note          string  `json:"note,omitempty"`
}

type updateHistoryRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	UsedAt    *string  `json:"used_at"` // RFC3339
	DoseTaken *float64 `json:"dose_taken"`
	Note      *string  `json:"note"`
}

// historyResponse representa un registro de uso con sus etiquetas resueltas.
type historyResponse struct {
	ID             string    `json:"id"`
	AppointmentID  string    `json:"appointment_id"`
	UsedAt         time.Time `json:"used_at"`
	DoseTaken      float64   `json:"dose_taken"`
	Note           string    `json:"note"`
	Status         string    `json:"status"`
	TreatmentName  string    `json:"treatment_name,omitempty"`
	MedicationName string    `json:"medication_name,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// recordHistoryHandler godoc
// @Summary Registrar toma manual
// @Description Registra una dosis tomada contra una cita existente del usuario, sin pasar por la conclusión de la cita.
// @Tags history
// @Accept json
// @Produce json
// @Param payload body recordHistoryRequest true "Datos de la toma; used_at en RFC3339"
// @Success 201 {object} historyResponse
// @Failure 400 {string} string "invalid json / datos inválidos"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "appointment not found"
// @Router /history [post]
func recordHistoryHandler(svc *Service, guard AppointmentGuard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req recordHistoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		if err := guard.Exists(r.Context(), req.AppointmentID, claims.UserID); err != nil {
			http.Error(w, "appointment not found", http.StatusNotFound)
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

		rec, err := svc.Record(r.Context(), claims.UserID, RecordInput{
			AppointmentID: req.AppointmentID,
			DoseTaken:     req.DoseTaken,
			UsedAt:        usedAt,
			Note:          req.Note,
		})
		if err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}
		writeJSON(w, http.StatusCreated, toHistoryResponse(rec, DoseContext{}))
	}
}

// listHistoryHandler godoc
// @Summary Listar historial de tomas
// @Description Lista los registros activos del usuario con las etiquetas de tratamiento y medicamento resueltas; si la cadena de referencias ya no existe se devuelven etiquetas de respaldo.
// @Tags history
// @Produce json
// @Success 200 {array} historyResponse
// @Failure 401 {string} string "unauthorized"
// @Router /history [get]
func listHistoryHandler(svc *Service, resolver ContextResolver) http.HandlerFunc {
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

		writeJSON(w, http.StatusOK, describeAll(r.Context(), resolver, claims.UserID, items))
	}
}

// reportHistoryHandler godoc
// @Summary Datos de reporte por período
// @Description Registros del período [from, to] ordenados descendente por hora de uso. Sin parámetros se usa el mes corriente.
// @Tags history
// @Produce json
// @Param from query string false "Inicio del período (RFC3339)"
// @Param to query string false "Fin del período (RFC3339)"
// @Success 200 {array} historyResponse
// @Failure 400 {string} string "rango inválido"
// @Failure 401 {string} string "unauthorized"
// @Router /history/report [get]
func reportHistoryHandler(svc *Service, resolver ContextResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		from, to, err := parsePeriod(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		items, err := svc.ListByPeriod(r.Context(), claims.UserID, from, to)
		if err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}

		writeJSON(w, http.StatusOK, describeAll(r.Context(), resolver, claims.UserID, items))
	}
}

// getHistoryHandler godoc
// @Summary Obtener registro de uso
// @Tags history
// @Produce json
// @Param historyID path string true "ID del registro"
// @Success 200 {object} historyResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "history record not found"
// @Router /history/{historyID} [get]
func getHistoryHandler(svc *Service, resolver ContextResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		rec, err := svc.GetByID(r.Context(), chi.URLParam(r, "historyID"), claims.UserID)
		if err != nil {
			http.Error(w, "history record not found", http.StatusNotFound)
			return
		}

		dc := resolver.Describe(r.Context(), rec.AppointmentID, claims.UserID)
		writeJSON(w, http.StatusOK, toHistoryResponse(rec, dc))
	}
}

// updateHistoryHandler godoc
// @Summary Corregir registro de uso
// @Description Actualización parcial de dosis/hora/nota. Un registro inactivo no se puede editar.
// @Tags history
// @Accept json
// @Produce json
// @Param historyID path string true "ID del registro"
// @Param payload body updateHistoryRequest true "Campos a modificar"
// @Success 200 {object} historyResponse
// @Failure 400 {string} string "invalid json / datos inválidos"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "history record not found"
// @Failure 409 {string} string "registro inactivo"
// @Router /history/{historyID} [patch]
func updateHistoryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req updateHistoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := UpdateInput{
			DoseTaken: req.DoseTaken,
			Note:      req.Note,
		}
		if req.UsedAt != nil {
			t, err := time.Parse(time.RFC3339, *req.UsedAt)
			if err != nil {
				http.Error(w, "used_at must be RFC3339", http.StatusBadRequest)
				return
			}
			in.UsedAt = &t
		}

		rec, err := svc.Update(r.Context(), chi.URLParam(r, "historyID"), claims.UserID, in)
		if err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}
		writeJSON(w, http.StatusOK, toHistoryResponse(rec, DoseContext{}))
	}
}

// deleteHistoryHandler godoc
// @Summary Desactivar registro de uso
// @Description Borrado lógico: el registro queda INACTIVE, la fila persiste.
// @Tags history
// @Param historyID path string true "ID del registro"
// @Success 204 {string} string "sin contenido"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "history record not found"
// @Router /history/{historyID} [delete]
func deleteHistoryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.Delete(r.Context(), chi.URLParam(r, "historyID"), claims.UserID); err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// parsePeriod interpreta from/to; si faltan ambos, usa el mes corriente.
// El "ahora" vive solo en el borde HTTP; el servicio recibe el rango explícito.
func parsePeriod(r *http.Request) (time.Time, time.Time, error) {
	rawFrom := strings.TrimSpace(r.URL.Query().Get("from"))
	rawTo := strings.TrimSpace(r.URL.Query().Get("to"))

	if rawFrom == "" && rawTo == "" {
		now := time.Now()
		from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return from, from.AddDate(0, 1, 0).Add(-time.Nanosecond), nil
	}
	if rawFrom == "" || rawTo == "" {
		return time.Time{}, time.Time{}, errors.New("from and to must both be provided")
	}

	from, err := time.Parse(time.RFC3339, rawFrom)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("from must be RFC3339")
	}
	to, err := time.Parse(time.RFC3339, rawTo)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("to must be RFC3339")
	}
	return from, to, nil
}

func describeAll(ctx context.Context, resolver ContextResolver, ownerUserID string, items []Record) []historyResponse {
	out := make([]historyResponse, 0, len(items))
	for _, rec := range items {
		out = append(out, toHistoryResponse(rec, resolver.Describe(ctx, rec.AppointmentID, ownerUserID)))
	}
	return out
}

func toHistoryResponse(rec Record, dc DoseContext) historyResponse {
	return historyResponse{
		ID:             rec.ID,
		AppointmentID:  rec.AppointmentID,
		UsedAt:         rec.UsedAt,
		DoseTaken:      rec.DoseTaken,
		Note:           rec.Note,
		Status:         string(rec.Status),
		TreatmentName:  dc.TreatmentName,
		MedicationName: dc.MedicationName,
		CreatedAt:      rec.CreatedAt,
		UpdatedAt:      rec.UpdatedAt,
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
