package booking

import (
	"time"

	"github.com/VittaServices/marketplace-api/internal/domain/schedule"
	"github.com/VittaServices/marketplace-api/internal/models"
)

// ===============================
// Modelos persistidos -> valores do motor
// ===============================

// DayScheduleFromModel converte o registro semanal em DaySchedule do motor.
// Formato quebrado no banco vira erro do motor (ErrInvalidTimeFormat /
// ErrInvalidSchedule), nunca um dia silenciosamente vazio.
func DayScheduleFromModel(m *models.WeeklySchedule) (*schedule.DaySchedule, error) {
	if m == nil {
		return nil, nil
	}

	start, err := schedule.ParseTimeOfDay(m.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := schedule.ParseTimeOfDay(m.EndTime)
	if err != nil {
		return nil, err
	}

	breaks := make([]schedule.BreakInterval, 0, len(m.Breaks))
	for _, b := range m.Breaks {
		bs, err := schedule.ParseTimeOfDay(b.StartTime)
		if err != nil {
			return nil, err
		}
		be, err := schedule.ParseTimeOfDay(b.EndTime)
		if err != nil {
			return nil, err
		}
		breaks = append(breaks, schedule.BreakInterval{Start: bs, End: be})
	}

	day := &schedule.DaySchedule{
		Weekday: time.Weekday(m.Weekday),
		Start:   start,
		End:     end,
		Breaks:  breaks,
		Active:  m.Active,
	}

	if day.Active {
		if err := day.Validate(); err != nil {
			return nil, err
		}
	}
	return day, nil
}

// RecordFromBooking projeta a reserva persistida no recorte do motor.
func RecordFromBooking(b models.Booking) (schedule.BookingRecord, error) {
	date, err := schedule.ParseDate(b.Date)
	if err != nil {
		return schedule.BookingRecord{}, err
	}
	start, err := schedule.ParseTimeOfDay(b.StartTime)
	if err != nil {
		return schedule.BookingRecord{}, err
	}
	end, err := schedule.ParseTimeOfDay(b.EndTime)
	if err != nil {
		return schedule.BookingRecord{}, err
	}

	return schedule.BookingRecord{
		ServiceID: b.ServiceID,
		Date:      date,
		Start:     start,
		End:       end,
		Status:    schedule.BookingStatus(b.Status),
	}, nil
}

func RecordsFromBookings(bookings []models.Booking) ([]schedule.BookingRecord, error) {
	records := make([]schedule.BookingRecord, 0, len(bookings))
	for _, b := range bookings {
		rec, err := RecordFromBooking(b)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// SettingsFromModel converte o registro de configuração em Settings do motor.
func SettingsFromModel(m *models.BookingSettings) (schedule.Settings, error) {
	st := schedule.Settings{
		DurationMinutes:           m.DurationMinutes,
		MaxConcurrentBookings:     m.MaxConcurrentBookings,
		AdvanceBookingDays:        m.AdvanceBookingDays,
		BufferMinutes:             m.BufferMinutes,
		CancellationPolicyHours:   m.CancellationPolicyHours,
		RequireConfirmation:       m.RequireConfirmation,
		AllowCustomerCancellation: m.AllowCustomerCancellation,
	}
	if err := st.Validate(); err != nil {
		return schedule.Settings{}, err
	}
	return st, nil
}
