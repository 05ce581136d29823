package treatments

import (
	"strconv"
	"strings"
	"time"
)

// Rule es la regla de frecuencia de un tratamiento: o un intervalo fijo de
// horas o una lista explícita de horarios del día.
type Rule struct {
	Type FrequencyType

	// IntervalHours aplica con FrequencyIntervalHours (N >= 1).
	IntervalHours int

	// Times aplica con FrequencySpecificTimes: lista separada por comas,
	// p.ej. "09:00, 21:00". El orden de la lista se respeta al expandir.
	Times string
}

// Validate verifica la regla completa antes de cualquier escritura. Un token
// de horario mal formado es error de configuración, no de expansión.
func (r Rule) Validate() error {
	switch r.Type {
	case FrequencyIntervalHours:
		if r.IntervalHours < 1 {
			return ErrInvalidInput
		}
		return nil
	case FrequencySpecificTimes:
		_, err := ParseTimes(r.Times)
		return err
	default:
		return ErrInvalidInput
	}
}

// TimeOfDay es un horario del día ya validado.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimes interpreta la lista "HH:MM, HH:MM" respetando el orden dado.
func ParseTimes(raw string) ([]TimeOfDay, error) {
	parts := strings.Split(raw, ",")
	out := make([]TimeOfDay, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		hm := strings.SplitN(p, ":", 2)
		if len(hm) != 2 {
			return nil, ErrInvalidInput
		}
		h, err := strconv.Atoi(hm[0])
		if err != nil || h < 0 || h > 23 {
			return nil, ErrInvalidInput
		}
		m, err := strconv.Atoi(hm[1])
		if err != nil || m < 0 || m > 59 {
			return nil, ErrInvalidInput
		}

		out = append(out, TimeOfDay{Hour: h, Minute: m})
	}

	if len(out) == 0 {
		return nil, ErrInvalidInput
	}
	return out, nil
}

// Expand materializa la regla en la secuencia ordenada de horarios concretos
// para cada día de [start, end] inclusive. Es una función pura y determinista:
// sin reloj, sin almacenamiento, sin efectos.
//
// Con intervalo N el primer horario del día es N:00 (no 00:00) y la serie se
// corta al superar las 23h; cada día reinicia la serie, el resto de horas no
// se arrastra al día siguiente. Con horarios específicos se emite cada horario
// de la lista por día, en el orden de la lista.
//
// Asume una regla ya validada; ante una regla inválida devuelve vacío.
func Expand(start, end time.Time, r Rule) []time.Time {
	startDay := dayOf(start)
	endDay := dayOf(end)
	if endDay.Before(startDay) {
		return nil
	}

	out := make([]time.Time, 0)

	switch r.Type {
	case FrequencyIntervalHours:
		if r.IntervalHours < 1 {
			return nil
		}
		for day := startDay; !day.After(endDay); day = day.AddDate(0, 0, 1) {
			for h := r.IntervalHours; h <= 23; h += r.IntervalHours {
				out = append(out, day.Add(time.Duration(h)*time.Hour))
			}
		}

	case FrequencySpecificTimes:
		times, err := ParseTimes(r.Times)
		if err != nil {
			return nil
		}
		for day := startDay; !day.After(endDay); day = day.AddDate(0, 0, 1) {
			for _, t := range times {
				out = append(out, day.Add(time.Duration(t.Hour)*time.Hour+time.Duration(t.Minute)*time.Minute))
			}
		}
	}

	return out
}

// dayOf trunca al inicio del día conservando la zona horaria original.
func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
