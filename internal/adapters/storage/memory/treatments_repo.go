package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"medication-scheduler/internal/domain/treatments"
)

type treatmentRepo struct {
	mu   sync.RWMutex
	byID map[string]treatments.Treatment
}

func NewTreatmentRepo() treatments.Repository {
	return &treatmentRepo{
		byID: make(map[string]treatments.Treatment),
	}
}

func (r *treatmentRepo) Create(ctx context.Context, t treatments.Treatment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(t.ID) == "" {
		return errors.New("treatment id required")
	}
	if _, exists := r.byID[t.ID]; exists {
		return errors.New("treatment already exists")
	}
	r.byID[t.ID] = t
	return nil
}

func (r *treatmentRepo) Update(ctx context.Context, t treatments.Treatment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[t.ID]; !exists {
		return ErrNotFound
	}
	r.byID[t.ID] = t
	return nil
}

func (r *treatmentRepo) GetByID(ctx context.Context, id, ownerUserID string) (treatments.Treatment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.byID[id]
	if !ok || t.OwnerUserID != ownerUserID {
		return treatments.Treatment{}, ErrNotFound
	}
	return t, nil
}

func (r *treatmentRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]treatments.Treatment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]treatments.Treatment, 0)
	for _, t := range r.byID {
		if t.OwnerUserID != ownerUserID {
			continue
		}
		out = append(out, t)
	}

	// Orden por inicio ascendente; estable para tests.
	sort.Slice(out, func(i, j int) bool {
		if out[i].StartDate.Equal(out[j].StartDate) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].StartDate.Before(out[j].StartDate)
	})
	return out, nil
}
