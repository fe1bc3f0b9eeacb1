package schedule

import (
	"fmt"
	"time"
)

// ===============================
// Entradas do motor (valores imutáveis do chamador)
// ===============================

// BreakInterval é uma pausa semiaberta [Start, End) dentro do expediente.
type BreakInterval struct {
	Start TimeOfDay
	End   TimeOfDay
}

// DaySchedule é o padrão semanal de um dia de atendimento.
type DaySchedule struct {
	Weekday time.Weekday
	Start   TimeOfDay
	End     TimeOfDay
	Breaks  []BreakInterval
	Active  bool
}

// Validate rejeita configuração quebrada (start >= end, pausa fora do
// expediente, pausas sobrepostas). Dia inativo não é erro.
func (d DaySchedule) Validate() error {
	if !d.Start.Valid() || !d.End.Valid() {
		return fmt.Errorf("%w: hours out of range (%s-%s)", ErrInvalidSchedule, d.Start, d.End)
	}
	if d.Start >= d.End {
		return fmt.Errorf("%w: start %s not before end %s", ErrInvalidSchedule, d.Start, d.End)
	}
	for i, b := range d.Breaks {
		if b.Start >= b.End {
			return fmt.Errorf("%w: break %s-%s is empty or inverted", ErrInvalidSchedule, b.Start, b.End)
		}
		if b.Start < d.Start || b.End > d.End {
			return fmt.Errorf("%w: break %s-%s outside working hours %s-%s",
				ErrInvalidSchedule, b.Start, b.End, d.Start, d.End)
		}
		for _, prev := range d.Breaks[:i] {
			if Overlaps(b.Start, b.End, prev.Start, prev.End) {
				return fmt.Errorf("%w: breaks %s-%s and %s-%s overlap",
					ErrInvalidSchedule, prev.Start, prev.End, b.Start, b.End)
			}
		}
	}
	return nil
}

// BookingRecord é o recorte de uma reserva que o motor precisa enxergar.
type BookingRecord struct {
	ServiceID uint
	Date      Date
	Start     TimeOfDay
	End       TimeOfDay
	Status    BookingStatus
}

// Settings é a configuração de agendamento do serviço. Valor explícito e
// completo; o motor não aplica defaults implícitos.
type Settings struct {
	DurationMinutes           int
	MaxConcurrentBookings     int
	AdvanceBookingDays        int
	BufferMinutes             int
	CancellationPolicyHours   int
	RequireConfirmation       bool
	AllowCustomerCancellation bool
}

func (s Settings) Validate() error {
	if s.DurationMinutes <= 0 {
		return fmt.Errorf("%w: duration_minutes must be positive", ErrInvalidSettings)
	}
	if s.MaxConcurrentBookings < 1 {
		return fmt.Errorf("%w: max_concurrent_bookings must be at least 1", ErrInvalidSettings)
	}
	if s.AdvanceBookingDays < 0 {
		return fmt.Errorf("%w: advance_booking_days must not be negative", ErrInvalidSettings)
	}
	if s.BufferMinutes < 0 {
		return fmt.Errorf("%w: buffer_minutes must not be negative", ErrInvalidSettings)
	}
	if s.CancellationPolicyHours < 0 {
		return fmt.Errorf("%w: cancellation_policy_hours must not be negative", ErrInvalidSettings)
	}
	return nil
}

// ===============================
// Saídas do motor
// ===============================

// TimeSlot é um horário candidato do dia, com a ocupação apurada.
type TimeSlot struct {
	Start       TimeOfDay
	End         TimeOfDay
	StartsAt    time.Time
	Available   bool
	Booked      int
	Capacity    int
	Overlapping []BookingRecord
}

// DailyAvailability empacota os slots de um dia.
type DailyAvailability struct {
	Date      Date
	Weekday   time.Weekday
	Available bool
	Slots     []TimeSlot
}
