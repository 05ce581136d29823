package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"medication-scheduler/internal/domain/appointments"
)

type appointmentRepo struct {
	mu   sync.RWMutex
	byID map[string]appointments.Appointment
}

func NewAppointmentRepo() appointments.Repository {
	return &appointmentRepo{
		byID: make(map[string]appointments.Appointment),
	}
}

func (r *appointmentRepo) Create(ctx context.Context, a appointments.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.createLocked(a)
}

// CreateAll aplica el lote completo bajo un solo lock: o entran todas las
// citas o ninguna.
func (r *appointmentRepo) CreateAll(ctx context.Context, items []appointments.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range items {
		if strings.TrimSpace(a.ID) == "" {
			return errors.New("appointment id required")
		}
		if _, exists := r.byID[a.ID]; exists {
			return errors.New("appointment already exists")
		}
	}
	for _, a := range items {
		r.byID[a.ID] = a
	}
	return nil
}

func (r *appointmentRepo) createLocked(a appointments.Appointment) error {
	if strings.TrimSpace(a.ID) == "" {
		return errors.New("appointment id required")
	}
	if _, exists := r.byID[a.ID]; exists {
		return errors.New("appointment already exists")
	}
	r.byID[a.ID] = a
	return nil
}

func (r *appointmentRepo) Update(ctx context.Context, a appointments.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[a.ID]; !exists {
		return ErrNotFound
	}
	r.byID[a.ID] = a
	return nil
}

func (r *appointmentRepo) GetByID(ctx context.Context, id, ownerUserID string) (appointments.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok || a.OwnerUserID != ownerUserID {
		return appointments.Appointment{}, ErrNotFound
	}
	return a, nil
}

func (r *appointmentRepo) ListByOwner(ctx context.Context, ownerUserID string, f appointments.ListFilter) ([]appointments.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}

	out := make([]appointments.Appointment, 0)
	for _, a := range r.byID {
		if a.OwnerUserID != ownerUserID {
			continue
		}
		if a.Status == appointments.StatusCancelled && !f.IncludeCancelled {
			continue
		}
		if f.From != nil && a.ScheduledAt.Before(*f.From) {
			continue
		}
		if f.To != nil && a.ScheduledAt.After(*f.To) {
			continue
		}
		out = append(out, a)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ScheduledAt.Before(out[j].ScheduledAt)
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *appointmentRepo) ListByTreatment(ctx context.Context, treatmentID string) ([]appointments.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]appointments.Appointment, 0)
	for _, a := range r.byID {
		if a.TreatmentID == treatmentID {
			out = append(out, a)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ScheduledAt.Before(out[j].ScheduledAt)
	})
	return out, nil
}

func (r *appointmentRepo) CountByTreatmentAndStatus(ctx context.Context, treatmentID string, st appointments.Status) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, a := range r.byID {
		if a.TreatmentID == treatmentID && a.Status == st {
			n++
		}
	}
	return n, nil
}

func (r *appointmentRepo) Cancel(ctx context.Context, id, ownerUserID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byID[id]
	if !ok || a.OwnerUserID != ownerUserID {
		return ErrNotFound
	}
	a.Status = appointments.StatusCancelled
	r.byID[id] = a
	return nil
}

func (r *appointmentRepo) DeleteByTreatmentAndStatus(ctx context.Context, treatmentID string, st appointments.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, a := range r.byID {
		if a.TreatmentID == treatmentID && a.Status == st {
			delete(r.byID, id)
		}
	}
	return nil
}
