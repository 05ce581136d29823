package treatments

import (
	"context"
	"errors"
	"testing"
	"time"

	"medication-scheduler/internal/domain/appointments"
	"medication-scheduler/internal/domain/medications"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

var errRepoNotFound = errors.New("repo: not found")

type testRepo struct {
	byID       map[string]Treatment
	failUpdate error
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Treatment{}}
}

func (r *testRepo) Create(ctx context.Context, t Treatment) error {
	if t.ID == "" {
		return errors.New("repo: id required")
	}
	r.byID[t.ID] = t
	return nil
}

func (r *testRepo) Update(ctx context.Context, t Treatment) error {
	if r.failUpdate != nil {
		return r.failUpdate
	}
	if _, ok := r.byID[t.ID]; !ok {
		return errRepoNotFound
	}
	r.byID[t.ID] = t
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id, ownerUserID string) (Treatment, error) {
	t, ok := r.byID[id]
	if !ok || t.OwnerUserID != ownerUserID {
		return Treatment{}, errRepoNotFound
	}
	return t, nil
}

func (r *testRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]Treatment, error) {
	out := make([]Treatment, 0)
	for _, t := range r.byID {
		if t.OwnerUserID == ownerUserID {
			out = append(out, t)
		}
	}
	return out, nil
}

// testApptStore simula el repo de citas: guarda lotes y cuenta por estado.
type testApptStore struct {
	items         map[string]appointments.Appointment
	batches       int
	failCreateAll error
}

func newTestApptStore() *testApptStore {
	return &testApptStore{items: map[string]appointments.Appointment{}}
}

func (s *testApptStore) CreateAll(ctx context.Context, items []appointments.Appointment) error {
	if s.failCreateAll != nil {
		return s.failCreateAll
	}
	s.batches++
	for _, a := range items {
		s.items[a.ID] = a
	}
	return nil
}

func (s *testApptStore) CountByTreatmentAndStatus(ctx context.Context, treatmentID string, st appointments.Status) (int, error) {
	n := 0
	for _, a := range s.items {
		if a.TreatmentID == treatmentID && a.Status == st {
			n++
		}
	}
	return n, nil
}

func (s *testApptStore) DeleteByTreatmentAndStatus(ctx context.Context, treatmentID string, st appointments.Status) error {
	for id, a := range s.items {
		if a.TreatmentID == treatmentID && a.Status == st {
			delete(s.items, id)
		}
	}
	return nil
}

type testMeds struct {
	known map[string]medications.Medication
}

func (m *testMeds) GetByID(ctx context.Context, id, ownerUserID string) (medications.Medication, error) {
	med, ok := m.known[id]
	if !ok || med.OwnerUserID != ownerUserID {
		return medications.Medication{}, errRepoNotFound
	}
	return med, nil
}

// testTx imita una transacción real sobre los fakes: toma una instantánea
// antes de fn y la restaura si fn falla.
type testTx struct {
	repo  *testRepo
	appts *testApptStore
}

func (u *testTx) InTx(ctx context.Context, fn func(Repository, AppointmentStore) error) error {
	treatSnap := make(map[string]Treatment, len(u.repo.byID))
	for k, v := range u.repo.byID {
		treatSnap[k] = v
	}
	apptSnap := make(map[string]appointments.Appointment, len(u.appts.items))
	for k, v := range u.appts.items {
		apptSnap[k] = v
	}
	batches := u.appts.batches

	if err := fn(u.repo, u.appts); err != nil {
		u.repo.byID = treatSnap
		u.appts.items = apptSnap
		u.appts.batches = batches
		return err
	}
	return nil
}

func newFixture() (*Service, *testRepo, *testApptStore) {
	repo := newTestRepo()
	appts := newTestApptStore()
	meds := &testMeds{known: map[string]medications.Medication{
		"med-1": {ID: "med-1", OwnerUserID: "owner-1", Name: "Ibuprofeno"},
	}}

	svc := NewService(repo, appts, meds, &testTx{repo: repo, appts: appts})
	svc.now = func() time.Time {
		return time.Date(2026, 1, 10, 7, 0, 0, 0, time.UTC)
	}
	return svc, repo, appts
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_GeneratesPendingAppointments(t *testing.T) {
	svc, _, appts := newFixture()

	tr, generated, err := svc.Create(context.Background(), "owner-1", CreateInput{
		MedicationID: "med-1",
		Name:         "Ibuprofeno 400",
		DoseAmount:   1,
		StartDate:    time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2026, 1, 11, 0, 0, 0, 0, time.UTC),
		Frequency:    Rule{Type: FrequencyIntervalHours, IntervalHours: 8},
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if tr.Status != StatusActive {
		t.Fatalf("expected ACTIVE, got %s", tr.Status)
	}

	// 8h y 16h por día, dos días.
	if len(generated) != 4 {
		t.Fatalf("expected 4 appointments, got %d", len(generated))
	}
	for _, a := range generated {
		if a.Status != appointments.StatusPending {
			t.Fatalf("expected PENDING, got %s", a.Status)
		}
		if a.TreatmentID != tr.ID {
			t.Fatalf("appointment not linked to treatment")
		}
	}
	if appts.batches != 1 {
		t.Fatalf("expected a single batch insert, got %d", appts.batches)
	}
	if tr.AlertType != appointments.AlertPush {
		t.Fatalf("expected default alert PUSH, got %s", tr.AlertType)
	}
}

func TestService_Create_UnknownMedication(t *testing.T) {
	svc, repo, appts := newFixture()

	_, _, err := svc.Create(context.Background(), "owner-1", CreateInput{
		MedicationID: "med-missing",
		Name:         "X",
		DoseAmount:   1,
		StartDate:    time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		Frequency:    Rule{Type: FrequencyIntervalHours, IntervalHours: 8},
	})
	if err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(repo.byID) != 0 || len(appts.items) != 0 {
		t.Fatalf("expected nothing persisted on failure")
	}
}

func TestService_Create_InvalidRule_WritesNothing(t *testing.T) {
	svc, repo, appts := newFixture()

	_, _, err := svc.Create(context.Background(), "owner-1", CreateInput{
		MedicationID: "med-1",
		Name:         "X",
		DoseAmount:   1,
		StartDate:    time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		Frequency:    Rule{Type: FrequencySpecificTimes, Times: "25:99"},
	})
	if err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if len(repo.byID) != 0 || len(appts.items) != 0 {
		t.Fatalf("expected nothing persisted on invalid rule")
	}
}

func TestService_Update_Descriptive_DoesNotRegenerate(t *testing.T) {
	svc, _, appts := newFixture()

	tr, generated, err := svc.Create(context.Background(), "owner-1", CreateInput{
		MedicationID: "med-1",
		Name:         "Ibuprofeno 400",
		DoseAmount:   1,
		StartDate:    time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2026, 1, 11, 0, 0, 0, 0, time.UTC),
		Frequency:    Rule{Type: FrequencyIntervalHours, IntervalHours: 8},
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	name := "Ibuprofeno 600"
	updated, err := svc.Update(context.Background(), tr.ID, "owner-1", UpdateInput{Name: &name})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Name != name {
		t.Fatalf("expected name updated, got %s", updated.Name)
	}

	// Las citas originales siguen intactas.
	if len(appts.items) != len(generated) {
		t.Fatalf("expected %d appointments untouched, got %d", len(generated), len(appts.items))
	}
	for _, a := range generated {
		if _, ok := appts.items[a.ID]; !ok {
			t.Fatalf("expected original appointment %s to survive", a.ID)
		}
	}
}

func TestService_Update_FrequencyChange_RegeneratesPendingOnly(t *testing.T) {
	svc, _, appts := newFixture()

	tr, generated, err := svc.Create(context.Background(), "owner-1", CreateInput{
		MedicationID: "med-1",
		Name:         "Ibuprofeno 400",
		DoseAmount:   1,
		StartDate:    time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2026, 1, 11, 0, 0, 0, 0, time.UTC),
		Frequency:    Rule{Type: FrequencyIntervalHours, IntervalHours: 8},
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	// Simular una toma: esa cita debe sobrevivir a la regeneración.
	taken := generated[0]
	taken.Status = appointments.StatusTaken
	appts.items[taken.ID] = taken

	rule := Rule{Type: FrequencySpecificTimes, Times: "09:00, 21:00"}
	_, err = svc.Update(context.Background(), tr.ID, "owner-1", UpdateInput{Frequency: &rule})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}

	if _, ok := appts.items[taken.ID]; !ok {
		t.Fatalf("expected TAKEN appointment to survive regeneration")
	}

	pending, _ := appts.CountByTreatmentAndStatus(context.Background(), tr.ID, appointments.StatusPending)
	// Regenera desde hoy (2026-01-10) hasta el fin (2026-01-11): 2 días x 2 horarios.
	if pending != 4 {
		t.Fatalf("expected 4 regenerated pending appointments, got %d", pending)
	}
	for _, a := range appts.items {
		if a.Status != appointments.StatusPending {
			continue
		}
		if a.ScheduledAt.Hour() != 9 && a.ScheduledAt.Hour() != 21 {
			t.Fatalf("unexpected regenerated slot %v", a.ScheduledAt)
		}
	}
}

func TestService_Create_ApptWriteFails_NothingPersisted(t *testing.T) {
	svc, repo, appts := newFixture()
	appts.failCreateAll = errors.New("storage unavailable")

	_, _, err := svc.Create(context.Background(), "owner-1", CreateInput{
		MedicationID: "med-1",
		Name:         "Ibuprofeno 400",
		DoseAmount:   1,
		StartDate:    time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2026, 1, 11, 0, 0, 0, 0, time.UTC),
		Frequency:    Rule{Type: FrequencyIntervalHours, IntervalHours: 8},
	})
	if err == nil {
		t.Fatalf("expected error")
	}
	if len(repo.byID) != 0 {
		t.Fatalf("expected no treatment row after failed batch insert, got %d", len(repo.byID))
	}
}

func TestService_Update_RowWriteFails_KeepsOldSchedule(t *testing.T) {
	svc, repo, appts := newFixture()

	tr, generated, err := svc.Create(context.Background(), "owner-1", CreateInput{
		MedicationID: "med-1",
		Name:         "Ibuprofeno 400",
		DoseAmount:   1,
		StartDate:    time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2026, 1, 11, 0, 0, 0, 0, time.UTC),
		Frequency:    Rule{Type: FrequencyIntervalHours, IntervalHours: 8},
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	repo.failUpdate = errors.New("storage unavailable")

	rule := Rule{Type: FrequencySpecificTimes, Times: "09:00, 21:00"}
	if _, err := svc.Update(context.Background(), tr.ID, "owner-1", UpdateInput{Frequency: &rule}); err == nil {
		t.Fatalf("expected error")
	}

	// La fila conserva la regla original y la agenda generada al crear sigue
	// completa: del intento fallido no persiste nada.
	if got := repo.byID[tr.ID].Frequency.Type; got != FrequencyIntervalHours {
		t.Fatalf("expected frequency INTERVAL_HOURS preserved, got %s", got)
	}
	if len(appts.items) != len(generated) {
		t.Fatalf("expected %d original appointments, got %d", len(generated), len(appts.items))
	}
	for _, a := range generated {
		got, ok := appts.items[a.ID]
		if !ok {
			t.Fatalf("expected original appointment %s to survive", a.ID)
		}
		if got.ScheduledAt.Hour() != 8 && got.ScheduledAt.Hour() != 16 {
			t.Fatalf("unexpected slot %v after rollback", got.ScheduledAt)
		}
	}
}

func TestService_Cancel_RowWriteFails_KeepsPending(t *testing.T) {
	svc, repo, appts := newFixture()

	tr, generated, err := svc.Create(context.Background(), "owner-1", CreateInput{
		MedicationID: "med-1",
		Name:         "X",
		DoseAmount:   1,
		StartDate:    time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2026, 1, 11, 0, 0, 0, 0, time.UTC),
		Frequency:    Rule{Type: FrequencyIntervalHours, IntervalHours: 8},
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	repo.failUpdate = errors.New("storage unavailable")

	if err := svc.Cancel(context.Background(), tr.ID, "owner-1"); err == nil {
		t.Fatalf("expected error")
	}
	if got := repo.byID[tr.ID].Status; got != StatusActive {
		t.Fatalf("expected treatment still ACTIVE, got %s", got)
	}
	if len(appts.items) != len(generated) {
		t.Fatalf("expected pending appointments restored, got %d of %d", len(appts.items), len(generated))
	}
}

func TestService_Update_NonActive_Rejected(t *testing.T) {
	svc, repo, _ := newFixture()

	tr, _, err := svc.Create(context.Background(), "owner-1", CreateInput{
		MedicationID: "med-1",
		Name:         "X",
		DoseAmount:   1,
		StartDate:    time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		Frequency:    Rule{Type: FrequencyIntervalHours, IntervalHours: 8},
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	tr.Status = StatusCompleted
	repo.byID[tr.ID] = tr

	name := "Y"
	if _, err := svc.Update(context.Background(), tr.ID, "owner-1", UpdateInput{Name: &name}); err != ErrBadState {
		t.Fatalf("expected ErrBadState, got %v", err)
	}
}

func TestService_Cancel_RemovesPendingKeepsTaken(t *testing.T) {
	svc, repo, appts := newFixture()

	tr, generated, err := svc.Create(context.Background(), "owner-1", CreateInput{
		MedicationID: "med-1",
		Name:         "X",
		DoseAmount:   1,
		StartDate:    time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2026, 1, 11, 0, 0, 0, 0, time.UTC),
		Frequency:    Rule{Type: FrequencyIntervalHours, IntervalHours: 8},
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	taken := generated[1]
	taken.Status = appointments.StatusTaken
	appts.items[taken.ID] = taken

	if err := svc.Cancel(context.Background(), tr.ID, "owner-1"); err != nil {
		t.Fatalf("Cancel error: %v", err)
	}

	if got := repo.byID[tr.ID].Status; got != StatusCancelled {
		t.Fatalf("expected CANCELLED, got %s", got)
	}
	if len(appts.items) != 1 {
		t.Fatalf("expected only the TAKEN appointment to remain, got %d", len(appts.items))
	}
	if _, ok := appts.items[taken.ID]; !ok {
		t.Fatalf("expected TAKEN appointment to remain")
	}

	// idempotente
	if err := svc.Cancel(context.Background(), tr.ID, "owner-1"); err != nil {
		t.Fatalf("Cancel #2 error: %v", err)
	}
}

func TestService_Cancel_Completed_Rejected(t *testing.T) {
	svc, repo, _ := newFixture()

	tr, _, err := svc.Create(context.Background(), "owner-1", CreateInput{
		MedicationID: "med-1",
		Name:         "X",
		DoseAmount:   1,
		StartDate:    time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		Frequency:    Rule{Type: FrequencyIntervalHours, IntervalHours: 8},
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	tr.Status = StatusCompleted
	repo.byID[tr.ID] = tr

	if err := svc.Cancel(context.Background(), tr.ID, "owner-1"); err != ErrBadState {
		t.Fatalf("expected ErrBadState, got %v", err)
	}
}

func TestService_CheckAndComplete(t *testing.T) {
	svc, repo, appts := newFixture()

	tr, generated, err := svc.Create(context.Background(), "owner-1", CreateInput{
		MedicationID: "med-1",
		Name:         "X",
		DoseAmount:   1,
		StartDate:    time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		Frequency:    Rule{Type: FrequencyIntervalHours, IntervalHours: 8},
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if len(generated) != 2 {
		t.Fatalf("expected 2 appointments, got %d", len(generated))
	}

	// Con pendientes: no escribe nada.
	if err := svc.CheckAndComplete(context.Background(), tr.ID, "owner-1"); err != nil {
		t.Fatalf("CheckAndComplete error: %v", err)
	}
	if got := repo.byID[tr.ID].Status; got != StatusActive {
		t.Fatalf("expected still ACTIVE, got %s", got)
	}

	// Marcar todas como tomadas.
	for id, a := range appts.items {
		a.Status = appointments.StatusTaken
		appts.items[id] = a
	}

	if err := svc.CheckAndComplete(context.Background(), tr.ID, "owner-1"); err != nil {
		t.Fatalf("CheckAndComplete #2 error: %v", err)
	}
	if got := repo.byID[tr.ID].Status; got != StatusCompleted {
		t.Fatalf("expected COMPLETED, got %s", got)
	}

	// Sobre un tratamiento no activo es no-op.
	if err := svc.CheckAndComplete(context.Background(), tr.ID, "owner-1"); err != nil {
		t.Fatalf("CheckAndComplete #3 error: %v", err)
	}
}

func TestService_WindowOf_RequiresActive(t *testing.T) {
	svc, repo, _ := newFixture()

	tr, _, err := svc.Create(context.Background(), "owner-1", CreateInput{
		MedicationID: "med-1",
		Name:         "X",
		DoseAmount:   1,
		StartDate:    time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC),
		Frequency:    Rule{Type: FrequencyIntervalHours, IntervalHours: 8},
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	w, err := svc.WindowOf(context.Background(), tr.ID, "owner-1")
	if err != nil {
		t.Fatalf("WindowOf error: %v", err)
	}
	// Ventana [inicio del primer día, inicio del día siguiente al último).
	if !w.From.Equal(time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected window start %v", w.From)
	}
	if !w.To.Equal(time.Date(2026, 1, 13, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected window end %v", w.To)
	}

	tr.Status = StatusCancelled
	repo.byID[tr.ID] = tr
	if _, err := svc.WindowOf(context.Background(), tr.ID, "owner-1"); err != ErrBadState {
		t.Fatalf("expected ErrBadState, got %v", err)
	}
}
