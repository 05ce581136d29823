package medications

import "time"

// MeasureUnit define la unidad de medida de la dosis.
// @Enum MG, G, ML, UI, PILL
type MeasureUnit string

const (
	UnitMilligram  MeasureUnit = "MG"
	UnitGram       MeasureUnit = "G"
	UnitMilliliter MeasureUnit = "ML"
	UnitIU         MeasureUnit = "UI"
	UnitPill       MeasureUnit = "PILL"
)

// Status define el estado lógico del medicamento.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

// Medication representa un medicamento del catálogo personal del usuario.
// Los tratamientos referencian medicamentos por ID; el borrado es lógico
// para no dejar históricos huérfanos.
type Medication struct {
	ID          string
	OwnerUserID string

	Name             string
	ActiveIngredient string
	Laboratory       string
	Unit             MeasureUnit

	Status Status

	CreatedAt time.Time
	UpdatedAt time.Time
}
