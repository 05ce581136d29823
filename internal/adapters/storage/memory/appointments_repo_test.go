package memory

import (
	"context"
	"testing"
	"time"

	"medication-scheduler/internal/domain/appointments"
)

// Ambos bordes del filtro son inclusivos; el adaptador de Postgres aplica el
// mismo contrato con >= y <=.
func TestAppointmentRepo_ListByOwner_InclusiveBounds(t *testing.T) {
	repo := NewAppointmentRepo()
	ctx := context.Background()

	from := time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 10, 20, 0, 0, 0, time.UTC)

	seed := func(id string, at time.Time) {
		t.Helper()
		err := repo.Create(ctx, appointments.Appointment{
			ID:          id,
			OwnerUserID: "owner-1",
			TreatmentID: "treat-1",
			ScheduledAt: at,
			AlertType:   appointments.AlertPush,
			Status:      appointments.StatusPending,
		})
		if err != nil {
			t.Fatalf("seed %s: %v", id, err)
		}
	}
	seed("before", from.Add(-time.Minute))
	seed("at-from", from)
	seed("at-to", to)
	seed("after", to.Add(time.Minute))

	got, err := repo.ListByOwner(ctx, "owner-1", appointments.ListFilter{From: &from, To: &to})
	if err != nil {
		t.Fatalf("ListByOwner error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 appointments within [from, to], got %d", len(got))
	}
	if got[0].ID != "at-from" || got[1].ID != "at-to" {
		t.Fatalf("expected boundary appointments included, got %s, %s", got[0].ID, got[1].ID)
	}
}
