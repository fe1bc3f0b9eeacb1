package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultSettings() Settings {
	return Settings{
		DurationMinutes:           30,
		MaxConcurrentBookings:     1,
		AdvanceBookingDays:        30,
		BufferMinutes:             0,
		CancellationPolicyHours:   24,
		RequireConfirmation:       false,
		AllowCustomerCancellation: true,
	}
}

func booking(t *testing.T, date, start, end string, status BookingStatus) BookingRecord {
	t.Helper()
	return BookingRecord{
		ServiceID: 1,
		Date:      mustDate(t, date),
		Start:     mustTime(t, start),
		End:       mustTime(t, end),
		Status:    status,
	}
}

func saoPaulo(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	return loc
}

func slotByStart(t *testing.T, slots []TimeSlot, start string) TimeSlot {
	t.Helper()
	want := mustTime(t, start)
	for _, s := range slots {
		if s.Start == want {
			return s
		}
	}
	t.Fatalf("slot %s não encontrado", start)
	return TimeSlot{}
}

func TestComputeSlots_InactiveDay(t *testing.T) {
	loc := saoPaulo(t)
	now := time.Date(2026, time.March, 10, 8, 0, 0, 0, loc)

	slots, err := ComputeSlots(mustDate(t, "2026-03-16"), nil, nil, defaultSettings(), now)
	require.NoError(t, err)
	assert.Empty(t, slots)

	day := workDay(t, "09:00", "17:00")
	day.Active = false
	slots, err = ComputeSlots(mustDate(t, "2026-03-16"), &day, nil, defaultSettings(), now)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestComputeSlots_InvalidSettings(t *testing.T) {
	loc := saoPaulo(t)
	now := time.Date(2026, time.March, 10, 8, 0, 0, 0, loc)
	day := workDay(t, "09:00", "17:00")

	st := defaultSettings()
	st.MaxConcurrentBookings = 0

	_, err := ComputeSlots(mustDate(t, "2026-03-16"), &day, nil, st, now)
	assert.ErrorIs(t, err, ErrInvalidSettings)
}

// Agenda quebrada falha alto; o chamador distingue de "dia fechado".
func TestComputeSlots_BrokenScheduleFailsLoudly(t *testing.T) {
	loc := saoPaulo(t)
	now := time.Date(2026, time.March, 10, 8, 0, 0, 0, loc)
	day := workDay(t, "17:00", "09:00")

	_, err := ComputeSlots(mustDate(t, "2026-03-16"), &day, nil, defaultSettings(), now)
	assert.ErrorIs(t, err, ErrInvalidSchedule)
}

// provider_now 10:05 no próprio dia: o slot 10:00 (30min) já passou,
// independente da ocupação.
func TestComputeSlots_SameDayCutoff(t *testing.T) {
	loc := saoPaulo(t)
	now := time.Date(2026, time.March, 16, 10, 5, 0, 0, loc)
	day := workDay(t, "09:00", "17:00")

	slots, err := ComputeSlots(mustDate(t, "2026-03-16"), &day, nil, defaultSettings(), now)
	require.NoError(t, err)

	assert.False(t, slotByStart(t, slots, "10:00").Available)
	assert.False(t, slotByStart(t, slots, "09:30").Available)
	assert.True(t, slotByStart(t, slots, "10:30").Available)
}

// Em outro dia o corte de "já passou" não se aplica.
func TestComputeSlots_FutureDayIgnoresCutoff(t *testing.T) {
	loc := saoPaulo(t)
	now := time.Date(2026, time.March, 16, 22, 0, 0, 0, loc)
	day := workDay(t, "09:00", "17:00")

	slots, err := ComputeSlots(mustDate(t, "2026-03-17"), &day, nil, defaultSettings(), now)
	require.NoError(t, err)

	for _, s := range slots {
		assert.True(t, s.Available, "slot %s", s.Start)
	}
}

// Capacidade 2 com duas reservas ativas sobrepondo 09:00-09:30: lotado.
// Cancelando uma e recalculando, volta a ficar disponível.
func TestComputeSlots_Capacity(t *testing.T) {
	loc := saoPaulo(t)
	now := time.Date(2026, time.March, 10, 8, 0, 0, 0, loc)
	day := workDay(t, "09:00", "17:00")

	st := defaultSettings()
	st.MaxConcurrentBookings = 2

	bookings := []BookingRecord{
		booking(t, "2026-03-16", "09:00", "09:30", StatusConfirmed),
		booking(t, "2026-03-16", "09:00", "09:30", StatusPending),
	}

	slots, err := ComputeSlots(mustDate(t, "2026-03-16"), &day, bookings, st, now)
	require.NoError(t, err)

	nine := slotByStart(t, slots, "09:00")
	assert.False(t, nine.Available)
	assert.Equal(t, 2, nine.Booked)
	assert.Equal(t, 2, nine.Capacity)
	assert.Len(t, nine.Overlapping, 2)

	// uma cancelada libera a vaga
	bookings[1].Status = StatusCancelled
	slots, err = ComputeSlots(mustDate(t, "2026-03-16"), &day, bookings, st, now)
	require.NoError(t, err)

	nine = slotByStart(t, slots, "09:00")
	assert.True(t, nine.Available)
	assert.Equal(t, 1, nine.Booked)
}

// cancelled e no_show não contam; completed conta (ocupou o slot).
func TestComputeSlots_StatusFilter(t *testing.T) {
	loc := saoPaulo(t)
	now := time.Date(2026, time.March, 10, 8, 0, 0, 0, loc)
	day := workDay(t, "09:00", "17:00")

	bookings := []BookingRecord{
		booking(t, "2026-03-16", "09:00", "09:30", StatusCancelled),
		booking(t, "2026-03-16", "09:00", "09:30", StatusNoShow),
		booking(t, "2026-03-16", "10:00", "10:30", StatusCompleted),
	}

	slots, err := ComputeSlots(mustDate(t, "2026-03-16"), &day, bookings, defaultSettings(), now)
	require.NoError(t, err)

	assert.True(t, slotByStart(t, slots, "09:00").Available)
	assert.Equal(t, 0, slotByStart(t, slots, "09:00").Booked)
	assert.False(t, slotByStart(t, slots, "10:00").Available)
}

// Reserva encostada no slot (termina quando o slot começa) não conflita.
func TestComputeSlots_TouchingBookingDoesNotBlock(t *testing.T) {
	loc := saoPaulo(t)
	now := time.Date(2026, time.March, 10, 8, 0, 0, 0, loc)
	day := workDay(t, "09:00", "17:00")

	bookings := []BookingRecord{
		booking(t, "2026-03-16", "09:00", "09:30", StatusConfirmed),
	}

	slots, err := ComputeSlots(mustDate(t, "2026-03-16"), &day, bookings, defaultSettings(), now)
	require.NoError(t, err)

	assert.True(t, slotByStart(t, slots, "09:30").Available)
	assert.False(t, slotByStart(t, slots, "09:00").Available)
}

// Determinismo: mesma entrada, mesma saída, na mesma ordem.
func TestComputeSlots_Deterministic(t *testing.T) {
	loc := saoPaulo(t)
	now := time.Date(2026, time.March, 16, 11, 17, 0, 0, loc)
	day := workDay(t, "08:30", "18:00", breakAt(t, "12:00", "13:00"))

	st := defaultSettings()
	st.MaxConcurrentBookings = 3
	st.BufferMinutes = 10

	bookings := []BookingRecord{
		booking(t, "2026-03-16", "09:10", "09:40", StatusConfirmed),
		booking(t, "2026-03-16", "14:00", "14:30", StatusPending),
		booking(t, "2026-03-16", "14:00", "14:30", StatusCompleted),
	}

	first, err := ComputeSlots(mustDate(t, "2026-03-16"), &day, bookings, st, now)
	require.NoError(t, err)
	second, err := ComputeSlots(mustDate(t, "2026-03-16"), &day, bookings, st, now)
	require.NoError(t, err)

	assert.Equal(t, first, second)

	// invariante de capacidade em todos os slots
	for _, s := range first {
		assert.GreaterOrEqual(t, s.Booked, 0)
		assert.LessOrEqual(t, s.Booked, len(bookings))
		past := mustDate(t, "2026-03-16").Equal(DateOf(now)) && s.StartsAt.Before(now)
		assert.Equal(t, !past && s.Booked < s.Capacity, s.Available, "slot %s", s.Start)
	}
}

func TestBuildDailyAvailability(t *testing.T) {
	loc := saoPaulo(t)
	now := time.Date(2026, time.March, 10, 8, 0, 0, 0, loc)
	day := workDay(t, "09:00", "10:00")

	// único slot do dia ocupado -> dia indisponível
	bookings := []BookingRecord{
		booking(t, "2026-03-16", "09:00", "10:00", StatusConfirmed),
	}

	da, err := BuildDailyAvailability(mustDate(t, "2026-03-16"), &day, bookings, defaultSettings(), now)
	require.NoError(t, err)

	assert.Equal(t, time.Monday, da.Weekday)
	assert.False(t, da.Available)
	assert.Len(t, da.Slots, 2)

	da, err = BuildDailyAvailability(mustDate(t, "2026-03-16"), &day, nil, defaultSettings(), now)
	require.NoError(t, err)
	assert.True(t, da.Available)
}
