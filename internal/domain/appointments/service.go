package appointments

import (
	"context"
	"errors"
	"strings"
	"time"

	"medication-scheduler/internal/domain/history"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrBadState     = errors.New("invalid state")
)

// UsageRecorder registra la toma en el historial y retira un registro cuya
// toma no llegó a confirmarse. Lo implementa history.Service.
type UsageRecorder interface {
	Record(ctx context.Context, ownerUserID string, in history.RecordInput) (history.Record, error)
	Discard(ctx context.Context, id, ownerUserID string) error
}

// TreatmentCompleter re-evalúa la conclusión automática del tratamiento padre
// tras cada toma. Lo implementa treatments.Service.
type TreatmentCompleter interface {
	CheckAndComplete(ctx context.Context, treatmentID, ownerUserID string) error
}

type Service struct {
	repo      Repository
	recorder  UsageRecorder
	completer TreatmentCompleter
	now       func() time.Time
}

func NewService(repo Repository, recorder UsageRecorder, completer TreatmentCompleter) *Service {
	return &Service{
		repo:      repo,
		recorder:  recorder,
		completer: completer,
		now:       time.Now,
	}
}

type CreateInput struct {
	TreatmentID string
	ScheduledAt time.Time
	AlertType   AlertType
}

// Create agenda una cita puntual dentro de la ventana del tratamiento. La
// ventana la resuelve el caller (handler o servicio de tratamientos), que ya
// validó propiedad y existencia del tratamiento.
func (s *Service) Create(ctx context.Context, ownerUserID string, w Window, in CreateInput) (Appointment, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return Appointment{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.TreatmentID) == "" {
		return Appointment{}, ErrInvalidInput
	}
	if in.ScheduledAt.IsZero() {
		return Appointment{}, ErrInvalidInput
	}
	if !w.Contains(in.ScheduledAt) {
		return Appointment{}, ErrInvalidInput
	}

	alert := in.AlertType
	if alert == "" {
		alert = AlertPush
	}

	now := s.now()
	a := Appointment{
		ID:          uuid.NewString(),
		OwnerUserID: ownerUserID,
		TreatmentID: strings.TrimSpace(in.TreatmentID),
		ScheduledAt: in.ScheduledAt,
		AlertType:   alert,
		Status:      StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Appointment{}, err
	}
	return a, nil
}

func (s *Service) GetByID(ctx context.Context, id, ownerUserID string) (Appointment, error) {
	id = strings.TrimSpace(id)
	if id == "" || strings.TrimSpace(ownerUserID) == "" {
		return Appointment{}, ErrInvalidInput
	}

	a, err := s.repo.GetByID(ctx, id, ownerUserID)
	if err != nil {
		return Appointment{}, ErrNotFound
	}
	return a, nil
}

// Exists valida existencia y propiedad sin exponer la entidad; satisface el
// guard del registro manual de historial.
func (s *Service) Exists(ctx context.Context, id, ownerUserID string) error {
	_, err := s.GetByID(ctx, id, ownerUserID)
	return err
}

type UsageInput struct {
	DoseTaken float64
	UsedAt    time.Time // cero = ahora
	Note      string
}

// Complete concluye una cita pendiente: PENDING → TAKEN, crea exactamente un
// registro de historial enlazado y dispara la re-evaluación del tratamiento.
// Concluir una cita que no está pendiente es ErrBadState.
func (s *Service) Complete(ctx context.Context, id, ownerUserID string, in UsageInput) (history.Record, error) {
	a, err := s.GetByID(ctx, id, ownerUserID)
	if err != nil {
		return history.Record{}, err
	}
	if a.Status != StatusPending {
		return history.Record{}, ErrBadState
	}

	rec, err := s.recorder.Record(ctx, ownerUserID, history.RecordInput{
		AppointmentID: a.ID,
		DoseTaken:     in.DoseTaken,
		UsedAt:        in.UsedAt,
		Note:          in.Note,
	})
	if err != nil {
		return history.Record{}, err
	}

	prev := a

	a.Status = StatusTaken
	a.HistoryID = rec.ID
	a.UpdatedAt = s.now()

	// Si un paso posterior falla se deshace lo ya escrito: la toma no queda
	// a medias entre historial, cita y tratamiento.
	if err := s.repo.Update(ctx, a); err != nil {
		_ = s.recorder.Discard(ctx, rec.ID, ownerUserID)
		return history.Record{}, err
	}

	if err := s.completer.CheckAndComplete(ctx, a.TreatmentID, ownerUserID); err != nil {
		_ = s.repo.Update(ctx, prev)
		_ = s.recorder.Discard(ctx, rec.ID, ownerUserID)
		return history.Record{}, err
	}

	return rec, nil
}

// Reschedule mueve el horario de una cita PENDING. Una cita TAKEN es un hecho
// histórico (se corrige por el historial) y una CANCELLED es terminal.
func (s *Service) Reschedule(ctx context.Context, id, ownerUserID string, newTime time.Time) (Appointment, error) {
	if newTime.IsZero() {
		return Appointment{}, ErrInvalidInput
	}

	a, err := s.GetByID(ctx, id, ownerUserID)
	if err != nil {
		return Appointment{}, err
	}
	if a.Status != StatusPending {
		return Appointment{}, ErrBadState
	}

	a.ScheduledAt = newTime
	a.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, a); err != nil {
		return Appointment{}, err
	}
	return a, nil
}

// Cancel es borrado lógico: la cita queda CANCELLED y la fila persiste.
// Cancelar una cita ya cancelada no es error; una TAKEN no se cancela, es un
// hecho consumado.
func (s *Service) Cancel(ctx context.Context, id, ownerUserID string) error {
	a, err := s.GetByID(ctx, id, ownerUserID)
	if err != nil {
		return err
	}
	if a.Status == StatusCancelled {
		return nil
	}
	if a.Status == StatusTaken {
		return ErrBadState
	}

	if err := s.repo.Cancel(ctx, id, ownerUserID); err != nil {
		return ErrNotFound
	}
	return nil
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string, f ListFilter) ([]Appointment, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return nil, ErrInvalidInput
	}
	if f.From != nil && f.To != nil && f.To.Before(*f.From) {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByOwner(ctx, ownerUserID, f)
}

// ListByTreatment asume que el caller ya validó que el tratamiento pertenece
// al usuario.
func (s *Service) ListByTreatment(ctx context.Context, treatmentID string) ([]Appointment, error) {
	treatmentID = strings.TrimSpace(treatmentID)
	if treatmentID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByTreatment(ctx, treatmentID)
}
