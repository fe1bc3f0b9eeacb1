package schedule

import "fmt"

// ===============================
// Geração de horários candidatos
// ===============================

// GenerateStartTimes enumera os inícios possíveis de um dia, em ordem.
// O cursor anda de duration+buffer em duration+buffer; um candidato cuja
// janela termina exatamente em d.End ainda entra (limite superior inclusivo).
//
// Regra de pausa: a janela inteira [cursor, cursor+duration) não pode
// sobrepor nenhuma pausa. Um slot que começaria antes da pausa e invadiria
// a pausa é descartado.
func GenerateStartTimes(d DaySchedule, durationMinutes, bufferMinutes int) ([]TimeOfDay, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: duration %d", ErrInvalidDuration, durationMinutes)
	}
	step := durationMinutes + bufferMinutes
	if step <= 0 {
		return nil, fmt.Errorf("%w: duration %d + buffer %d", ErrInvalidDuration, durationMinutes, bufferMinutes)
	}

	var starts []TimeOfDay
	for cursor := d.Start; cursor.Add(durationMinutes) <= d.End; cursor = cursor.Add(step) {
		if windowHitsBreak(cursor, cursor.Add(durationMinutes), d.Breaks) {
			continue
		}
		starts = append(starts, cursor)
	}
	return starts, nil
}

func windowHitsBreak(start, end TimeOfDay, breaks []BreakInterval) bool {
	for _, b := range breaks {
		if Overlaps(start, end, b.Start, b.End) {
			return true
		}
	}
	return false
}
