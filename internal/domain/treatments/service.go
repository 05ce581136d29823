package treatments

import (
	"context"
	"errors"
	"strings"
	"time"

	"medication-scheduler/internal/domain/appointments"
	"medication-scheduler/internal/domain/medications"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrBadState     = errors.New("invalid state")
)

// AppointmentStore es la porción del repositorio de citas que el ciclo de vida
// del tratamiento necesita: persistir lotes generados, contar pendientes y
// retirar pendientes al cancelar o reprogramar.
type AppointmentStore interface {
	CreateAll(ctx context.Context, items []appointments.Appointment) error
	CountByTreatmentAndStatus(ctx context.Context, treatmentID string, st appointments.Status) (int, error)
	DeleteByTreatmentAndStatus(ctx context.Context, treatmentID string, st appointments.Status) error
}

// MedicationDirectory valida que el medicamento exista y pertenezca al
// usuario. Lo implementa medications.Service.
type MedicationDirectory interface {
	GetByID(ctx context.Context, id, ownerUserID string) (medications.Medication, error)
}

type Service struct {
	repo  Repository
	appts AppointmentStore
	meds  MedicationDirectory
	tx    TxRunner
	now   func() time.Time
}

func NewService(repo Repository, appts AppointmentStore, meds MedicationDirectory, tx TxRunner) *Service {
	return &Service{
		repo:  repo,
		appts: appts,
		meds:  meds,
		tx:    tx,
		now:   time.Now,
	}
}

type CreateInput struct {
	MedicationID string
	Name         string
	DoseAmount   float64
	StartDate    time.Time
	EndDate      time.Time
	Frequency    Rule
	AlertType    appointments.AlertType
}

// Create valida la entrada completa antes de escribir nada, persiste el
// tratamiento y materializa la regla de frecuencia en citas PENDING, una por
// horario producido por el expansor.
func (s *Service) Create(ctx context.Context, ownerUserID string, in CreateInput) (Treatment, []appointments.Appointment, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return Treatment{}, nil, ErrInvalidInput
	}
	if strings.TrimSpace(in.MedicationID) == "" || strings.TrimSpace(in.Name) == "" {
		return Treatment{}, nil, ErrInvalidInput
	}
	if in.DoseAmount <= 0 {
		return Treatment{}, nil, ErrInvalidInput
	}
	if err := validateRange(in.StartDate, in.EndDate); err != nil {
		return Treatment{}, nil, err
	}
	if err := in.Frequency.Validate(); err != nil {
		return Treatment{}, nil, err
	}

	if _, err := s.meds.GetByID(ctx, in.MedicationID, ownerUserID); err != nil {
		return Treatment{}, nil, ErrNotFound
	}

	alert := in.AlertType
	if alert == "" {
		alert = appointments.AlertPush
	}

	now := s.now()
	t := Treatment{
		ID:           uuid.NewString(),
		OwnerUserID:  ownerUserID,
		MedicationID: strings.TrimSpace(in.MedicationID),
		Name:         strings.TrimSpace(in.Name),
		DoseAmount:   in.DoseAmount,
		StartDate:    dayOf(in.StartDate),
		EndDate:      dayOf(in.EndDate),
		Frequency:    in.Frequency,
		AlertType:    alert,
		Status:       StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	generated := s.buildAppointments(t, t.StartDate)

	// Tratamiento y citas entran juntos o no entra nada.
	err := s.tx.InTx(ctx, func(repo Repository, appts AppointmentStore) error {
		if err := repo.Create(ctx, t); err != nil {
			return err
		}
		return appts.CreateAll(ctx, generated)
	})
	if err != nil {
		return Treatment{}, nil, err
	}

	return t, generated, nil
}

func (s *Service) GetByID(ctx context.Context, id, ownerUserID string) (Treatment, error) {
	id = strings.TrimSpace(id)
	if id == "" || strings.TrimSpace(ownerUserID) == "" {
		return Treatment{}, ErrInvalidInput
	}

	t, err := s.repo.GetByID(ctx, id, ownerUserID)
	if err != nil {
		return Treatment{}, ErrNotFound
	}
	return t, nil
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]Treatment, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByOwner(ctx, ownerUserID)
}

// WindowOf expone la ventana de agendado del tratamiento para el ciclo de
// vida de citas sin acoplar ese paquete a este.
func (s *Service) WindowOf(ctx context.Context, id, ownerUserID string) (appointments.Window, error) {
	t, err := s.GetByID(ctx, id, ownerUserID)
	if err != nil {
		return appointments.Window{}, err
	}
	if t.Status != StatusActive {
		return appointments.Window{}, ErrBadState
	}
	return t.Window(), nil
}

type UpdateInput struct {
	// Punteros para PATCH real: nil = no tocar.
	Name       *string
	DoseAmount *float64
	StartDate  *time.Time
	EndDate    *time.Time
	Frequency  *Rule
	AlertType  *appointments.AlertType
}

// Update aplica solo los campos presentes. Si el cambio toca la regla de
// frecuencia o el rango de fechas, las citas PENDING se retiran y se genera
// un conjunto nuevo para la ventana restante; las TAKEN/CANCELLED no se tocan.
// Un cambio puramente descriptivo no regenera nada.
func (s *Service) Update(ctx context.Context, id, ownerUserID string, in UpdateInput) (Treatment, error) {
	t, err := s.GetByID(ctx, id, ownerUserID)
	if err != nil {
		return Treatment{}, err
	}
	if t.Status != StatusActive {
		return Treatment{}, ErrBadState
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return Treatment{}, ErrInvalidInput
		}
		t.Name = strings.TrimSpace(*in.Name)
	}
	if in.DoseAmount != nil {
		if *in.DoseAmount <= 0 {
			return Treatment{}, ErrInvalidInput
		}
		t.DoseAmount = *in.DoseAmount
	}
	if in.AlertType != nil {
		t.AlertType = *in.AlertType
	}

	complex := in.StartDate != nil || in.EndDate != nil || in.Frequency != nil

	if in.StartDate != nil {
		t.StartDate = dayOf(*in.StartDate)
	}
	if in.EndDate != nil {
		t.EndDate = dayOf(*in.EndDate)
	}
	if in.Frequency != nil {
		t.Frequency = *in.Frequency
	}

	if err := validateRange(t.StartDate, t.EndDate); err != nil {
		return Treatment{}, err
	}
	if err := t.Frequency.Validate(); err != nil {
		return Treatment{}, err
	}

	t.UpdatedAt = s.now()

	if !complex {
		if err := s.repo.Update(ctx, t); err != nil {
			return Treatment{}, err
		}
		return t, nil
	}

	regenFrom := t.StartDate
	if today := dayOf(s.now()); today.After(regenFrom) {
		regenFrom = today
	}

	// Retiro de pendientes, regeneración y fila del tratamiento en una sola
	// unidad: un fallo en cualquier paso no deja la agenda a medio camino.
	err = s.tx.InTx(ctx, func(repo Repository, appts AppointmentStore) error {
		if err := appts.DeleteByTreatmentAndStatus(ctx, t.ID, appointments.StatusPending); err != nil {
			return err
		}
		if !regenFrom.After(t.EndDate) {
			if err := appts.CreateAll(ctx, s.buildAppointments(t, regenFrom)); err != nil {
				return err
			}
		}
		return repo.Update(ctx, t)
	})
	if err != nil {
		return Treatment{}, err
	}
	return t, nil
}

// Cancel retira las citas PENDING (eliminación física: nadie actuó sobre
// ellas) y deja el tratamiento CANCELLED. Las citas TAKEN/CANCELLED quedan
// intactas. Cancelar dos veces no es error.
func (s *Service) Cancel(ctx context.Context, id, ownerUserID string) error {
	t, err := s.GetByID(ctx, id, ownerUserID)
	if err != nil {
		return err
	}
	if t.Status == StatusCancelled {
		return nil
	}
	if t.Status == StatusCompleted {
		return ErrBadState
	}

	t.Status = StatusCancelled
	t.UpdatedAt = s.now()

	return s.tx.InTx(ctx, func(repo Repository, appts AppointmentStore) error {
		if err := appts.DeleteByTreatmentAndStatus(ctx, t.ID, appointments.StatusPending); err != nil {
			return err
		}
		return repo.Update(ctx, t)
	})
}

// CheckAndComplete concluye el tratamiento si y solo si no queda ninguna cita
// pendiente al momento de la llamada; con pendientes no escribe nada. Se
// dispara automáticamente tras cada toma.
func (s *Service) CheckAndComplete(ctx context.Context, id, ownerUserID string) error {
	t, err := s.GetByID(ctx, id, ownerUserID)
	if err != nil {
		return err
	}
	if t.Status != StatusActive {
		return nil
	}

	pending, err := s.appts.CountByTreatmentAndStatus(ctx, t.ID, appointments.StatusPending)
	if err != nil {
		return err
	}
	if pending > 0 {
		return nil
	}

	t.Status = StatusCompleted
	t.UpdatedAt = s.now()
	return s.repo.Update(ctx, t)
}

// buildAppointments materializa la regla desde `from` hasta el fin del
// tratamiento. El expansor garantiza horarios distintos por construcción.
func (s *Service) buildAppointments(t Treatment, from time.Time) []appointments.Appointment {
	now := s.now()
	slots := Expand(from, t.EndDate, t.Frequency)

	out := make([]appointments.Appointment, 0, len(slots))
	for _, ts := range slots {
		out = append(out, appointments.Appointment{
			ID:          uuid.NewString(),
			OwnerUserID: t.OwnerUserID,
			TreatmentID: t.ID,
			ScheduledAt: ts,
			AlertType:   t.AlertType,
			Status:      appointments.StatusPending,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	return out
}

func validateRange(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return ErrInvalidInput
	}
	if dayOf(end).Before(dayOf(start)) {
		return ErrInvalidInput
	}
	return nil
}
