package appointments

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"testing"
	"time"

	"medication-scheduler/internal/domain/history"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

var errRepoNotFound = errors.New("repo: not found")

type testRepo struct {
	byID       map[string]Appointment
	failUpdate error
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Appointment{}}
}

func (r *testRepo) Create(ctx context.Context, a Appointment) error {
	if a.ID == "" {
		return errors.New("repo: id required")
	}
	r.byID[a.ID] = a
	return nil
}

func (r *testRepo) CreateAll(ctx context.Context, items []Appointment) error {
	for _, a := range items {
		r.byID[a.ID] = a
	}
	return nil
}

func (r *testRepo) Update(ctx context.Context, a Appointment) error {
	if r.failUpdate != nil {
		return r.failUpdate
	}
	if _, ok := r.byID[a.ID]; !ok {
		return errRepoNotFound
	}
	r.byID[a.ID] = a
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id, ownerUserID string) (Appointment, error) {
	a, ok := r.byID[id]
	if !ok || a.OwnerUserID != ownerUserID {
		return Appointment{}, errRepoNotFound
	}
	return a, nil
}

func (r *testRepo) ListByOwner(ctx context.Context, ownerUserID string, f ListFilter) ([]Appointment, error) {
	out := make([]Appointment, 0)
	for _, a := range r.byID {
		if a.OwnerUserID != ownerUserID {
			continue
		}
		if !f.IncludeCancelled && a.Status == StatusCancelled {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ScheduledAt.Before(out[j].ScheduledAt) })
	return out, nil
}

func (r *testRepo) ListByTreatment(ctx context.Context, treatmentID string) ([]Appointment, error) {
	out := make([]Appointment, 0)
	for _, a := range r.byID {
		if a.TreatmentID == treatmentID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *testRepo) CountByTreatmentAndStatus(ctx context.Context, treatmentID string, st Status) (int, error) {
	n := 0
	for _, a := range r.byID {
		if a.TreatmentID == treatmentID && a.Status == st {
			n++
		}
	}
	return n, nil
}

func (r *testRepo) Cancel(ctx context.Context, id, ownerUserID string) error {
	a, ok := r.byID[id]
	if !ok || a.OwnerUserID != ownerUserID {
		return errRepoNotFound
	}
	a.Status = StatusCancelled
	r.byID[id] = a
	return nil
}

func (r *testRepo) DeleteByTreatmentAndStatus(ctx context.Context, treatmentID string, st Status) error {
	for id, a := range r.byID {
		if a.TreatmentID == treatmentID && a.Status == st {
			delete(r.byID, id)
		}
	}
	return nil
}

// testRecorder acumula registros de historial y los descartes pedidos.
type testRecorder struct {
	records  []history.RecordInput
	discards []string
	nextID   int
	failWith error
}

func (r *testRecorder) Record(ctx context.Context, ownerUserID string, in history.RecordInput) (history.Record, error) {
	if r.failWith != nil {
		return history.Record{}, r.failWith
	}
	r.nextID++
	r.records = append(r.records, in)
	return history.Record{
		ID:            "rec-" + strconv.Itoa(r.nextID),
		OwnerUserID:   ownerUserID,
		AppointmentID: in.AppointmentID,
		DoseTaken:     in.DoseTaken,
		Note:          in.Note,
	}, nil
}

func (r *testRecorder) Discard(ctx context.Context, id, ownerUserID string) error {
	r.discards = append(r.discards, id)
	return nil
}

// testCompleter anota cada re-evaluación disparada.
type testCompleter struct {
	calls    []string
	failWith error
}

func (c *testCompleter) CheckAndComplete(ctx context.Context, treatmentID, ownerUserID string) error {
	if c.failWith != nil {
		return c.failWith
	}
	c.calls = append(c.calls, treatmentID)
	return nil
}

func newFixture() (*Service, *testRepo, *testRecorder, *testCompleter) {
	repo := newTestRepo()
	rec := &testRecorder{}
	comp := &testCompleter{}
	svc := NewService(repo, rec, comp)
	svc.now = func() time.Time {
		return time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	}
	return svc, repo, rec, comp
}

func testWindow() Window {
	return Window{
		From: time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, 1, 13, 0, 0, 0, 0, time.UTC),
	}
}

func seedPending(repo *testRepo, id string) Appointment {
	a := Appointment{
		ID:          id,
		OwnerUserID: "owner-1",
		TreatmentID: "treat-1",
		ScheduledAt: time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC),
		AlertType:   AlertPush,
		Status:      StatusPending,
	}
	repo.byID[id] = a
	return a
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_InsideWindow(t *testing.T) {
	svc, repo, _, _ := newFixture()

	a, err := svc.Create(context.Background(), "owner-1", testWindow(), CreateInput{
		TreatmentID: "treat-1",
		ScheduledAt: time.Date(2026, 1, 11, 9, 30, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if a.Status != StatusPending {
		t.Fatalf("expected PENDING, got %s", a.Status)
	}
	if a.AlertType != AlertPush {
		t.Fatalf("expected default alert PUSH, got %s", a.AlertType)
	}
	if _, ok := repo.byID[a.ID]; !ok {
		t.Fatalf("expected appointment persisted")
	}
}

func TestService_Create_OutsideWindow_WritesNothing(t *testing.T) {
	svc, repo, _, _ := newFixture()

	// El borde superior es exclusivo.
	_, err := svc.Create(context.Background(), "owner-1", testWindow(), CreateInput{
		TreatmentID: "treat-1",
		ScheduledAt: time.Date(2026, 1, 13, 0, 0, 0, 0, time.UTC),
	})
	if err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if len(repo.byID) != 0 {
		t.Fatalf("expected nothing persisted")
	}
}

func TestService_Complete_LinksHistoryAndTriggersCheck(t *testing.T) {
	svc, repo, rec, comp := newFixture()
	a := seedPending(repo, "appt-1")

	record, err := svc.Complete(context.Background(), a.ID, "owner-1", UsageInput{
		DoseTaken: 1,
		Note:      "con comida",
	})
	if err != nil {
		t.Fatalf("Complete error: %v", err)
	}

	got := repo.byID[a.ID]
	if got.Status != StatusTaken {
		t.Fatalf("expected TAKEN, got %s", got.Status)
	}
	if got.HistoryID != record.ID {
		t.Fatalf("expected appointment linked to history record")
	}
	if len(rec.records) != 1 {
		t.Fatalf("expected exactly one history record, got %d", len(rec.records))
	}
	if rec.records[0].AppointmentID != a.ID {
		t.Fatalf("expected history record pointing back to appointment")
	}
	if len(comp.calls) != 1 || comp.calls[0] != "treat-1" {
		t.Fatalf("expected completion check for treat-1, got %v", comp.calls)
	}
}

func TestService_Complete_Twice_Rejected(t *testing.T) {
	svc, repo, rec, _ := newFixture()
	a := seedPending(repo, "appt-1")

	if _, err := svc.Complete(context.Background(), a.ID, "owner-1", UsageInput{DoseTaken: 1}); err != nil {
		t.Fatalf("Complete error: %v", err)
	}
	if _, err := svc.Complete(context.Background(), a.ID, "owner-1", UsageInput{DoseTaken: 1}); err != ErrBadState {
		t.Fatalf("expected ErrBadState on second complete, got %v", err)
	}
	if len(rec.records) != 1 {
		t.Fatalf("expected a single history record, got %d", len(rec.records))
	}
}

func TestService_Complete_RecorderFails_NoStateChange(t *testing.T) {
	svc, repo, rec, comp := newFixture()
	a := seedPending(repo, "appt-1")
	rec.failWith = errors.New("history unavailable")

	if _, err := svc.Complete(context.Background(), a.ID, "owner-1", UsageInput{DoseTaken: 1}); err == nil {
		t.Fatalf("expected error")
	}
	if got := repo.byID[a.ID].Status; got != StatusPending {
		t.Fatalf("expected appointment still PENDING, got %s", got)
	}
	if len(comp.calls) != 0 {
		t.Fatalf("expected no completion check on failure")
	}
}

func TestService_Complete_ApptWriteFails_DiscardsRecord(t *testing.T) {
	svc, repo, rec, comp := newFixture()
	a := seedPending(repo, "appt-1")
	repo.failUpdate = errors.New("storage unavailable")

	if _, err := svc.Complete(context.Background(), a.ID, "owner-1", UsageInput{DoseTaken: 1}); err == nil {
		t.Fatalf("expected error")
	}

	// El registro creado se retira: la toma fallida no deja rastro.
	if got := repo.byID[a.ID].Status; got != StatusPending {
		t.Fatalf("expected appointment still PENDING, got %s", got)
	}
	if len(rec.discards) != 1 || rec.discards[0] != "rec-1" {
		t.Fatalf("expected record rec-1 discarded, got %v", rec.discards)
	}
	if len(comp.calls) != 0 {
		t.Fatalf("expected no completion check on failure")
	}
}

func TestService_Complete_CheckFails_RollsBackTake(t *testing.T) {
	svc, repo, rec, comp := newFixture()
	a := seedPending(repo, "appt-1")
	comp.failWith = errors.New("storage unavailable")

	if _, err := svc.Complete(context.Background(), a.ID, "owner-1", UsageInput{DoseTaken: 1}); err == nil {
		t.Fatalf("expected error")
	}

	got := repo.byID[a.ID]
	if got.Status != StatusPending {
		t.Fatalf("expected appointment back to PENDING, got %s", got.Status)
	}
	if got.HistoryID != "" {
		t.Fatalf("expected history link cleared, got %q", got.HistoryID)
	}
	if len(rec.discards) != 1 {
		t.Fatalf("expected the record discarded, got %v", rec.discards)
	}
}

func TestService_Reschedule_PendingOnly(t *testing.T) {
	svc, repo, _, _ := newFixture()
	a := seedPending(repo, "appt-1")

	newTime := time.Date(2026, 1, 11, 10, 0, 0, 0, time.UTC)
	moved, err := svc.Reschedule(context.Background(), a.ID, "owner-1", newTime)
	if err != nil {
		t.Fatalf("Reschedule error: %v", err)
	}
	if !moved.ScheduledAt.Equal(newTime) {
		t.Fatalf("expected new time %v, got %v", newTime, moved.ScheduledAt)
	}

	taken := repo.byID[a.ID]
	taken.Status = StatusTaken
	repo.byID[a.ID] = taken

	if _, err := svc.Reschedule(context.Background(), a.ID, "owner-1", newTime.Add(time.Hour)); err != ErrBadState {
		t.Fatalf("expected ErrBadState rescheduling TAKEN, got %v", err)
	}
}

func TestService_Cancel_IdempotentAndTakenRejected(t *testing.T) {
	svc, repo, _, _ := newFixture()
	a := seedPending(repo, "appt-1")

	if err := svc.Cancel(context.Background(), a.ID, "owner-1"); err != nil {
		t.Fatalf("Cancel error: %v", err)
	}
	if got := repo.byID[a.ID].Status; got != StatusCancelled {
		t.Fatalf("expected CANCELLED, got %s", got)
	}

	// idempotente
	if err := svc.Cancel(context.Background(), a.ID, "owner-1"); err != nil {
		t.Fatalf("Cancel #2 error: %v", err)
	}

	b := seedPending(repo, "appt-2")
	taken := repo.byID[b.ID]
	taken.Status = StatusTaken
	repo.byID[b.ID] = taken

	if err := svc.Cancel(context.Background(), b.ID, "owner-1"); err != ErrBadState {
		t.Fatalf("expected ErrBadState cancelling TAKEN, got %v", err)
	}
}

func TestService_Cancel_WrongOwner(t *testing.T) {
	svc, repo, _, _ := newFixture()
	a := seedPending(repo, "appt-1")

	if err := svc.Cancel(context.Background(), a.ID, "owner-2"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for foreign owner, got %v", err)
	}
}

func TestService_ListByOwner_RangeValidation(t *testing.T) {
	svc, _, _, _ := newFixture()

	from := time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC)
	to := from.Add(-time.Hour)
	if _, err := svc.ListByOwner(context.Background(), "owner-1", ListFilter{From: &from, To: &to}); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for inverted range, got %v", err)
	}
}
