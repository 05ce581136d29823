package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"medication-scheduler/internal/router"
)

func TestHTTP_EndToEnd_TreatmentLifecycle(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	ownerID := "owner-1"

	// 0) Sin identidad no hay acceso
	{
		st, _ := doReq(t, ts.URL, "GET", "/medications", "", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 without identity, got %d", st)
		}
	}

	// 1) Crear medicamento
	medID := createMedication(t, ts.URL, ownerID, map[string]any{
		"name":              "Ibuprofeno",
		"active_ingredient": "ibuprofen",
		"laboratory":        "Bayer",
		"unit":              "MG",
	})

	// 2) Crear tratamiento de un día cada 8h: citas a las 08:00 y 16:00
	var created struct {
		Treatment struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"treatment"`
		Appointments []struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"appointments"`
	}
	{
		st, body := doReq(t, ts.URL, "POST", "/treatments", ownerID, map[string]any{
			"medication_id": medID,
			"name":          "Ibuprofeno 400",
			"dose_amount":   1,
			"start_date":    "2026-01-10",
			"end_date":      "2026-01-10",
			"frequency": map[string]any{
				"type":           "INTERVAL_HOURS",
				"interval_hours": 8,
			},
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 creating treatment, got %d body=%s", st, string(body))
		}
		if err := json.Unmarshal(body, &created); err != nil {
			t.Fatalf("decode create treatment: %v", err)
		}
		if created.Treatment.Status != "ACTIVE" {
			t.Fatalf("expected ACTIVE treatment, got %s", created.Treatment.Status)
		}
		if len(created.Appointments) != 2 {
			t.Fatalf("expected 2 generated appointments, got %d", len(created.Appointments))
		}
	}
	treatmentID := created.Treatment.ID

	// 3) Otro usuario no ve el tratamiento
	{
		st, _ := doReq(t, ts.URL, "GET", "/treatments/"+treatmentID, "intruder-1", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 for foreign owner, got %d", st)
		}
	}

	// 4) Tomar la primera cita: crea historial y la cita queda TAKEN
	{
		st, body := doReq(t, ts.URL, "POST", "/appointments/"+created.Appointments[0].ID+"/take", ownerID, map[string]any{
			"dose_taken": 1,
			"note":       "con comida",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 taking appointment, got %d body=%s", st, string(body))
		}
	}

	// 5) Con una cita pendiente el tratamiento sigue ACTIVE
	{
		st, body := doReq(t, ts.URL, "GET", "/treatments/"+treatmentID, ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get treatment, got %d", st)
		}
		if got := fieldString(t, body, "status"); got != "ACTIVE" {
			t.Fatalf("expected ACTIVE with pending appointment, got %s", got)
		}
	}

	// 6) Tomar dos veces la misma cita es conflicto
	{
		st, _ := doReq(t, ts.URL, "POST", "/appointments/"+created.Appointments[0].ID+"/take", ownerID, map[string]any{
			"dose_taken": 1,
		})
		if st != http.StatusConflict {
			t.Fatalf("expected 409 taking twice, got %d", st)
		}
	}

	// 7) Tomar la última cita concluye el tratamiento automáticamente
	{
		st, body := doReq(t, ts.URL, "POST", "/appointments/"+created.Appointments[1].ID+"/take", ownerID, map[string]any{
			"dose_taken": 1,
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 taking last appointment, got %d body=%s", st, string(body))
		}

		st, body = doReq(t, ts.URL, "GET", "/treatments/"+treatmentID, ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get treatment, got %d", st)
		}
		if got := fieldString(t, body, "status"); got != "COMPLETED" {
			t.Fatalf("expected COMPLETED after last take, got %s", got)
		}
	}

	// 8) El historial lista ambas tomas con sus etiquetas resueltas
	{
		st, body := doReq(t, ts.URL, "GET", "/history", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 listing history, got %d body=%s", st, string(body))
		}

		var items []struct {
			TreatmentName  string `json:"treatment_name"`
			MedicationName string `json:"medication_name"`
		}
		if err := json.Unmarshal(body, &items); err != nil {
			t.Fatalf("decode history list: %v", err)
		}
		if len(items) != 2 {
			t.Fatalf("expected 2 history records, got %d", len(items))
		}
		for _, it := range items {
			if it.TreatmentName != "Ibuprofeno 400" || it.MedicationName != "Ibuprofeno" {
				t.Fatalf("expected resolved labels, got %+v", it)
			}
		}
	}

	// 9) El reporte por periodo acepta rango explícito
	{
		st, body := doReq(t, ts.URL, "GET", "/history/report?from=2026-01-01T00:00:00Z&to=2026-12-31T23:59:59Z", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 history report, got %d body=%s", st, string(body))
		}
	}
}

func TestHTTP_EndToEnd_CancelTreatmentKeepsTaken(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	ownerID := "owner-2"

	medID := createMedication(t, ts.URL, ownerID, map[string]any{"name": "Amoxicilina"})

	var created struct {
		Treatment struct {
			ID string `json:"id"`
		} `json:"treatment"`
		Appointments []struct {
			ID string `json:"id"`
		} `json:"appointments"`
	}
	{
		st, body := doReq(t, ts.URL, "POST", "/treatments", ownerID, map[string]any{
			"medication_id": medID,
			"name":          "Amoxicilina 500",
			"dose_amount":   1,
			"start_date":    "2026-01-10",
			"end_date":      "2026-01-11",
			"frequency": map[string]any{
				"type":  "SPECIFIC_TIMES",
				"times": "09:00, 21:00",
			},
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 creating treatment, got %d body=%s", st, string(body))
		}
		if err := json.Unmarshal(body, &created); err != nil {
			t.Fatalf("decode create treatment: %v", err)
		}
		if len(created.Appointments) != 4 {
			t.Fatalf("expected 4 appointments (2 días x 2 horarios), got %d", len(created.Appointments))
		}
	}

	// Una toma antes de cancelar
	{
		st, body := doReq(t, ts.URL, "POST", "/appointments/"+created.Appointments[0].ID+"/take", ownerID, map[string]any{
			"dose_taken": 1,
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 taking appointment, got %d body=%s", st, string(body))
		}
	}

	// Cancelar el tratamiento: las pendientes desaparecen, la tomada persiste
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/treatments/"+created.Treatment.ID, ownerID, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 cancelling treatment, got %d", st)
		}

		st, body := doReq(t, ts.URL, "GET", "/treatments/"+created.Treatment.ID+"/appointments", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 listing treatment appointments, got %d", st)
		}

		var items []struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		}
		if err := json.Unmarshal(body, &items); err != nil {
			t.Fatalf("decode appointments list: %v", err)
		}
		if len(items) != 1 {
			t.Fatalf("expected only the TAKEN appointment to remain, got %d", len(items))
		}
		if items[0].Status != "TAKEN" {
			t.Fatalf("expected TAKEN, got %s", items[0].Status)
		}
	}

	// El historial de la toma sobrevive a la cancelación
	{
		st, body := doReq(t, ts.URL, "GET", "/history", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 listing history, got %d", st)
		}
		var items []map[string]any
		if err := json.Unmarshal(body, &items); err != nil {
			t.Fatalf("decode history list: %v", err)
		}
		if len(items) != 1 {
			t.Fatalf("expected 1 history record after cancel, got %d", len(items))
		}
	}
}

// -------------------------
// Helpers
// -------------------------

func doReq(t *testing.T, baseURL, method, path, userID string, payload any) (int, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set("X-Debug-User-ID", userID)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, data
}

func createMedication(t *testing.T, baseURL, userID string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/medications", userID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 creating medication, got %d body=%s", st, string(body))
	}
	return fieldString(t, body, "id")
}

func fieldString(t *testing.T, body []byte, field string) string {
	t.Helper()

	var m map[string]any
	if err := json.Unmarshal(body, &m); err != nil {
		t.Fatalf("decode body %s: %v", string(body), err)
	}
	s, _ := m[field].(string)
	return s
}
