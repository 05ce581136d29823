package medications

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"medication-scheduler/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/medications", func(mr chi.Router) {
		mr.Post("/", createMedicationHandler(svc))
		mr.Get("/", listMedicationsHandler(svc))
		mr.Get("/{medicationID}", getMedicationHandler(svc))
		mr.Patch("/{medicationID}", updateMedicationHandler(svc))
		mr.Delete("/{medicationID}", deleteMedicationHandler(svc))
	})
}

// createMedicationRequest es el cuerpo para registrar un medicamento.
type createMedicationRequest struct {
	Name             string `json:"name"`
	ActiveIngredient string `json:"active_ingredient"`
	Laboratory       string `json:"laboratory"`
	Unit             string `json:"unit" enums:"MG,G,ML,UI,PILL"`
}

type updateMedicationRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	Name             *string `json:"name"`
	ActiveIngredient *string `json:"active_ingredient"`
	Laboratory       *string `json:"laboratory"`
	Unit             *string `json:"unit"`
}

// medicationResponse representa un medicamento del catálogo del usuario.
type medicationResponse struct {
	ID               string    `json:"id"`
	OwnerUserID      string    `json:"owner_user_id"`
	Name             string    `json:"name"`
	ActiveIngredient string    `json:"active_ingredient"`
	Laboratory       string    `json:"laboratory"`
	Unit             string    `json:"unit"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// createMedicationHandler godoc
// @Summary Registrar medicamento
// @Description Registra un medicamento en el catálogo personal del usuario autenticado.
// @Tags medications
// @Accept json
// @Produce json
// @Param payload body createMedicationRequest true "Datos del medicamento"
// @Success 201 {object} medicationResponse
// @Failure 400 {string} string "invalid json / datos inválidos"
// @Failure 401 {string} string "unauthorized"
// @Router /medications [post]
func createMedicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createMedicationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		m, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			Name:             req.Name,
			ActiveIngredient: req.ActiveIngredient,
			Laboratory:       req.Laboratory,
			Unit:             req.Unit,
		})
		if err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}

		writeJSON(w, http.StatusCreated, toMedicationResponse(m))
	}
}

// listMedicationsHandler godoc
// @Summary Listar medicamentos
// @Description Lista los medicamentos activos del usuario autenticado.
// @Tags medications
// @Produce json
// @Success 200 {array} medicationResponse
// @Failure 401 {string} string "unauthorized"
// @Router /medications [get]
func listMedicationsHandler(svc *Service) http.HandlerFunc {
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

		out := make([]medicationResponse, 0, len(items))
		for _, m := range items {
			out = append(out, toMedicationResponse(m))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getMedicationHandler godoc
// @Summary Obtener medicamento
// @Tags medications
// @Produce json
// @Param medicationID path string true "ID del medicamento"
// @Success 200 {object} medicationResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "medication not found"
// @Router /medications/{medicationID} [get]
func getMedicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		m, err := svc.GetByID(r.Context(), chi.URLParam(r, "medicationID"), claims.UserID)
		if err != nil {
			http.Error(w, "medication not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toMedicationResponse(m))
	}
}

// updateMedicationHandler godoc
// @Summary Actualizar medicamento
// @Description Actualización parcial: solo los campos presentes se aplican.
// @Tags medications
// @Accept json
// @Produce json
// @Param medicationID path string true "ID del medicamento"
// @Param payload body updateMedicationRequest true "Campos a modificar"
// @Success 200 {object} medicationResponse
// @Failure 400 {string} string "invalid json / datos inválidos"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "medication not found"
// @Router /medications/{medicationID} [patch]
func updateMedicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req updateMedicationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		m, err := svc.Update(r.Context(), chi.URLParam(r, "medicationID"), claims.UserID, UpdateInput{
			Name:             req.Name,
			ActiveIngredient: req.ActiveIngredient,
			Laboratory:       req.Laboratory,
			Unit:             req.Unit,
		})
		if err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}
		writeJSON(w, http.StatusOK, toMedicationResponse(m))
	}
}

// deleteMedicationHandler godoc
// @Summary Desactivar medicamento
// @Description Borrado lógico: el medicamento queda INACTIVE, la fila persiste.
// @Tags medications
// @Param medicationID path string true "ID del medicamento"
// @Success 204 {string} string "sin contenido"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "medication not found"
// @Router /medications/{medicationID} [delete]
func deleteMedicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.Delete(r.Context(), chi.URLParam(r, "medicationID"), claims.UserID); err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toMedicationResponse(m Medication) medicationResponse {
	return medicationResponse{
		ID:               m.ID,
		OwnerUserID:      m.OwnerUserID,
		Name:             m.Name,
		ActiveIngredient: m.ActiveIngredient,
		Laboratory:       m.Laboratory,
		Unit:             string(m.Unit),
		Status:           string(m.Status),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
