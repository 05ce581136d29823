package medications

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

type CreateInput struct {
	Name             string
	ActiveIngredient string
	Laboratory       string
	Unit             string
}

func (s *Service) Create(ctx context.Context, ownerUserID string, in CreateInput) (Medication, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return Medication{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" {
		return Medication{}, ErrInvalidInput
	}

	unit, err := parseUnit(in.Unit)
	if err != nil {
		return Medication{}, err
	}

	now := s.now()
	m := Medication{
		ID:               uuid.NewString(),
		OwnerUserID:      ownerUserID,
		Name:             strings.TrimSpace(in.Name),
		ActiveIngredient: strings.TrimSpace(in.ActiveIngredient),
		Laboratory:       strings.TrimSpace(in.Laboratory),
		Unit:             unit,
		Status:           StatusActive,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return Medication{}, err
	}
	return m, nil
}

func (s *Service) GetByID(ctx context.Context, id, ownerUserID string) (Medication, error) {
	id = strings.TrimSpace(id)
	if id == "" || strings.TrimSpace(ownerUserID) == "" {
		return Medication{}, ErrInvalidInput
	}

	m, err := s.repo.GetByID(ctx, id, ownerUserID)
	if err != nil {
		return Medication{}, ErrNotFound
	}
	return m, nil
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]Medication, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByOwner(ctx, ownerUserID)
}

type UpdateInput struct {
	// Punteros para PATCH real: nil = no tocar.
	Name             *string
	ActiveIngredient *string
	Laboratory       *string
	Unit             *string
}

func (s *Service) Update(ctx context.Context, id, ownerUserID string, in UpdateInput) (Medication, error) {
	m, err := s.GetByID(ctx, id, ownerUserID)
	if err != nil {
		return Medication{}, err
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return Medication{}, ErrInvalidInput
		}
		m.Name = strings.TrimSpace(*in.Name)
	}
	if in.ActiveIngredient != nil {
		m.ActiveIngredient = strings.TrimSpace(*in.ActiveIngredient)
	}
	if in.Laboratory != nil {
		m.Laboratory = strings.TrimSpace(*in.Laboratory)
	}
	if in.Unit != nil {
		unit, err := parseUnit(*in.Unit)
		if err != nil {
			return Medication{}, err
		}
		m.Unit = unit
	}

	m.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, m); err != nil {
		return Medication{}, err
	}
	return m, nil
}

// Delete es borrado lógico: el medicamento queda INACTIVE pero la fila persiste.
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

func parseUnit(raw string) (MeasureUnit, error) {
	u := MeasureUnit(strings.ToUpper(strings.TrimSpace(raw)))
	switch u {
	case UnitMilligram, UnitGram, UnitMilliliter, UnitIU, UnitPill:
		return u, nil
	case "":
		return UnitMilligram, nil
	default:
		return "", ErrInvalidInput
	}
}
