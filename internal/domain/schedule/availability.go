package schedule

import "time"

// ===============================
// Cálculo de disponibilidade
// ===============================

// ComputeSlots combina o padrão do dia, as reservas e o "agora" do
// prestador em uma lista ordenada de slots.
//
// O instante now deve vir no fuso do prestador (time.Time com o Location
// certo); o motor nunca lê relógio nem faz conta de fuso sozinho.
//
// Dia nulo ou inativo devolve lista vazia sem erro: dia fechado não é
// configuração quebrada. Agenda ou settings malformados devolvem erro.
func ComputeSlots(date Date, day *DaySchedule, bookings []BookingRecord, st Settings, now time.Time) ([]TimeSlot, error) {
	if day == nil || !day.Active {
		return []TimeSlot{}, nil
	}
	if err := st.Validate(); err != nil {
		return nil, err
	}

	starts, err := GenerateStartTimes(*day, st.DurationMinutes, st.BufferMinutes)
	if err != nil {
		return nil, err
	}

	isToday := date.Equal(DateOf(now))
	slots := make([]TimeSlot, 0, len(starts))
	for _, start := range starts {
		end := start.Add(st.DurationMinutes)
		startsAt := date.At(start, now.Location())

		hasPassed := isToday && startsAt.Before(now)

		var overlapping []BookingRecord
		for _, b := range bookings {
			if !b.Status.CountsTowardCapacity() {
				continue
			}
			if Overlaps(b.Start, b.End, start, end) {
				overlapping = append(overlapping, b)
			}
		}

		booked := len(overlapping)
		slots = append(slots, TimeSlot{
			Start:       start,
			End:         end,
			StartsAt:    startsAt,
			Available:   !hasPassed && booked < st.MaxConcurrentBookings,
			Booked:      booked,
			Capacity:    st.MaxConcurrentBookings,
			Overlapping: overlapping,
		})
	}
	return slots, nil
}

// BuildDailyAvailability monta o pacote do dia para o calendário.
func BuildDailyAvailability(date Date, day *DaySchedule, bookings []BookingRecord, st Settings, now time.Time) (DailyAvailability, error) {
	slots, err := ComputeSlots(date, day, bookings, st, now)
	if err != nil {
		return DailyAvailability{}, err
	}

	available := false
	for _, s := range slots {
		if s.Available {
			available = true
			break
		}
	}

	return DailyAvailability{
		Date:      date,
		Weekday:   date.Weekday(),
		Available: available,
		Slots:     slots,
	}, nil
}
