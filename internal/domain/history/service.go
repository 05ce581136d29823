package history

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrBadState     = errors.New("invalid state")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type RecordInput struct {
	AppointmentID string
	DoseTaken     float64
	UsedAt        time.Time // cero = ahora
	Note          string
}

// Record agrega una entrada al log de usos. Lo invoca el ciclo de vida de la
// cita al concluirla, o el endpoint de registro manual tras validar la cita.
func (s *Service) Record(ctx context.Context, ownerUserID string, in RecordInput) (Record, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return Record{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.AppointmentID) == "" {
		return Record{}, ErrInvalidInput
	}
	if in.DoseTaken < 0 {
		return Record{}, ErrInvalidInput
	}

	now := s.now()
	usedAt := in.UsedAt
	if usedAt.IsZero() {
		usedAt = now
	}

	rec := Record{
		ID:            uuid.NewString(),
		OwnerUserID:   ownerUserID,
		AppointmentID: strings.TrimSpace(in.AppointmentID),
		UsedAt:        usedAt,
		DoseTaken:     in.DoseTaken,
		Note:          strings.TrimSpace(in.Note),
		Status:        StatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func (s *Service) GetByID(ctx context.Context, id, ownerUserID string) (Record, error) {
	id = strings.TrimSpace(id)
	if id == "" || strings.TrimSpace(ownerUserID) == "" {
		return Record{}, ErrInvalidInput
	}

	rec, err := s.repo.GetByID(ctx, id, ownerUserID)
	if err != nil {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

type UpdateInput struct {
	// Punteros para PATCH real: nil = no tocar.
	UsedAt    *time.Time
	DoseTaken *float64
	Note      *string
}

// Update corrige dosis/hora/nota de un registro activo. Un registro inactivo
// ya no se puede editar.
func (s *Service) Update(ctx context.Context, id, ownerUserID string, in UpdateInput) (Record, error) {
	rec, err := s.GetByID(ctx, id, ownerUserID)
	if err != nil {
		return Record{}, err
	}
	if rec.Status != StatusActive {
		return Record{}, ErrBadState
	}

	if in.UsedAt != nil {
		if in.UsedAt.IsZero() {
			return Record{}, ErrInvalidInput
		}
		rec.UsedAt = *in.UsedAt
	}
	if in.DoseTaken != nil {
		if *in.DoseTaken < 0 {
			return Record{}, ErrInvalidInput
		}
		rec.DoseTaken = *in.DoseTaken
	}
	if in.Note != nil {
		rec.Note = strings.TrimSpace(*in.Note)
	}

	rec.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Delete es borrado lógico: el registro queda INACTIVE, nunca se borra la fila.
func (s *Service) Delete(ctx context.Context, id, ownerUserID string) error {
	id = strings.TrimSpace(id)
	if id == "" || strings.TrimSpace(ownerUserID) == "" {
		return ErrInvalidInput
	}
	if err := s.repo.Deactivate(ctx, id, ownerUserID); err != nil {
		return ErrNotFound
	}
	return nil
}

// Discard elimina físicamente un registro cuya toma no llegó a confirmarse.
// Es el deshacer del registro automático; el borrado que pide el usuario es
// Delete, que es lógico.
func (s *Service) Discard(ctx context.Context, id, ownerUserID string) error {
	id = strings.TrimSpace(id)
	if id == "" || strings.TrimSpace(ownerUserID) == "" {
		return ErrInvalidInput
	}
	if err := s.repo.Remove(ctx, id, ownerUserID); err != nil {
		return ErrNotFound
	}
	return nil
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]Record, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByOwner(ctx, ownerUserID)
}

// ListByPeriod recibe el rango explícito del caller; el núcleo no consulta
// el reloj de pared para derivar ventanas de reporte.
func (s *Service) ListByPeriod(ctx context.Context, ownerUserID string, from, to time.Time) ([]Record, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return nil, ErrInvalidInput
	}
	if from.IsZero() || to.IsZero() || to.Before(from) {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByPeriod(ctx, ownerUserID, from, to)
}
