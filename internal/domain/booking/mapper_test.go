package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VittaServices/marketplace-api/internal/domain/schedule"
	"github.com/VittaServices/marketplace-api/internal/models"
)

func TestDayScheduleFromModel(t *testing.T) {
	day, err := DayScheduleFromModel(&models.WeeklySchedule{
		Weekday:   1,
		StartTime: "09:00",
		EndTime:   "17:00",
		Active:    true,
		Breaks: []models.ScheduleBreak{
			{StartTime: "12:00", EndTime: "13:00"},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, day)

	assert.Equal(t, time.Monday, day.Weekday)
	assert.Equal(t, 9*60, day.Start.Minutes())
	assert.Equal(t, 17*60, day.End.Minutes())
	require.Len(t, day.Breaks, 1)
	assert.Equal(t, 12*60, day.Breaks[0].Start.Minutes())
}

func TestDayScheduleFromModel_Nil(t *testing.T) {
	day, err := DayScheduleFromModel(nil)
	require.NoError(t, err)
	assert.Nil(t, day)
}

func TestDayScheduleFromModel_BrokenTimeFailsLoudly(t *testing.T) {
	_, err := DayScheduleFromModel(&models.WeeklySchedule{
		StartTime: "9h00",
		EndTime:   "17:00",
		Active:    true,
	})
	assert.ErrorIs(t, err, schedule.ErrInvalidTimeFormat)
}

func TestDayScheduleFromModel_InvertedHoursWhenActive(t *testing.T) {
	_, err := DayScheduleFromModel(&models.WeeklySchedule{
		StartTime: "17:00",
		EndTime:   "09:00",
		Active:    true,
	})
	assert.ErrorIs(t, err, schedule.ErrInvalidSchedule)
}

func TestDayScheduleFromModel_InactiveSkipsConsistencyCheck(t *testing.T) {
	// dia desativado não precisa estar consistente; o motor o trata
	// como fechado de qualquer forma
	day, err := DayScheduleFromModel(&models.WeeklySchedule{
		StartTime: "17:00",
		EndTime:   "09:00",
		Active:    false,
	})
	require.NoError(t, err)
	assert.False(t, day.Active)
}

func TestRecordFromBooking(t *testing.T) {
	rec, err := RecordFromBooking(models.Booking{
		ServiceID: 2,
		Date:      "2026-03-16",
		StartTime: "10:00",
		EndTime:   "10:30",
		Status:    "confirmed",
	})
	require.NoError(t, err)

	assert.Equal(t, uint(2), rec.ServiceID)
	assert.Equal(t, "2026-03-16", rec.Date.String())
	assert.Equal(t, 10*60, rec.Start.Minutes())
	assert.Equal(t, schedule.StatusConfirmed, rec.Status)
}

func TestRecordFromBooking_BrokenDate(t *testing.T) {
	_, err := RecordFromBooking(models.Booking{
		Date:      "16/03/2026",
		StartTime: "10:00",
		EndTime:   "10:30",
	})
	assert.Error(t, err)
}

func TestSettingsFromModel(t *testing.T) {
	st, err := SettingsFromModel(&models.BookingSettings{
		DurationMinutes:       30,
		MaxConcurrentBookings: 2,
		AdvanceBookingDays:    14,
	})
	require.NoError(t, err)
	assert.Equal(t, 30, st.DurationMinutes)
	assert.Equal(t, 2, st.MaxConcurrentBookings)
}

func TestSettingsFromModel_Invalid(t *testing.T) {
	_, err := SettingsFromModel(&models.BookingSettings{
		DurationMinutes:       0,
		MaxConcurrentBookings: 1,
	})
	assert.ErrorIs(t, err, schedule.ErrInvalidSettings)
}
