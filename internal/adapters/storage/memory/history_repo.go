package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"medication-scheduler/internal/domain/history"
)

type historyRepo struct {
	mu   sync.RWMutex
	byID map[string]history.Record
}

func NewHistoryRepo() history.Repository {
	return &historyRepo{
		byID: make(map[string]history.Record),
	}
}

func (r *historyRepo) Create(ctx context.Context, rec history.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(rec.ID) == "" {
		return errors.New("history id required")
	}
	if _, exists := r.byID[rec.ID]; exists {
		return errors.New("history record already exists")
	}
	r.byID[rec.ID] = rec
	return nil
}

func (r *historyRepo) Update(ctx context.Context, rec history.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[rec.ID]; !exists {
		return ErrNotFound
	}
	r.byID[rec.ID] = rec
	return nil
}

func (r *historyRepo) GetByID(ctx context.Context, id, ownerUserID string) (history.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byID[id]
	if !ok || rec.OwnerUserID != ownerUserID {
		return history.Record{}, ErrNotFound
	}
	return rec, nil
}

func (r *historyRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]history.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]history.Record, 0)
	for _, rec := range r.byID {
		if rec.OwnerUserID != ownerUserID || rec.Status != history.StatusActive {
			continue
		}
		out = append(out, rec)
	}

	sortByUsedAtDesc(out)
	return out, nil
}

func (r *historyRepo) ListByPeriod(ctx context.Context, ownerUserID string, from, to time.Time) ([]history.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]history.Record, 0)
	for _, rec := range r.byID {
		if rec.OwnerUserID != ownerUserID || rec.Status != history.StatusActive {
			continue
		}
		if rec.UsedAt.Before(from) || rec.UsedAt.After(to) {
			continue
		}
		out = append(out, rec)
	}

	sortByUsedAtDesc(out)
	return out, nil
}

func (r *historyRepo) Deactivate(ctx context.Context, id, ownerUserID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.byID[id]
	if !ok || rec.OwnerUserID != ownerUserID {
		return ErrNotFound
	}
	rec.Status = history.StatusInactive
	r.byID[id] = rec
	return nil
}

func (r *historyRepo) Remove(ctx context.Context, id, ownerUserID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.byID[id]
	if !ok || rec.OwnerUserID != ownerUserID {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// Orden por hora de uso descendente (lo más reciente primero).
func sortByUsedAtDesc(items []history.Record) {
	sort.Slice(items, func(i, j int) bool {
		return items[i].UsedAt.After(items[j].UsedAt)
	})
}
