package booking

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VittaServices/marketplace-api/internal/httperr"
	"github.com/VittaServices/marketplace-api/internal/models"
)

func createInput(date, hour string) CreateBookingInput {
	return CreateBookingInput{
		ProviderID:    1,
		ServiceID:     2,
		CustomerName:  "Ana Souza",
		CustomerPhone: "11999990000",
		CustomerEmail: "ana@example.com",
		Date:          date,
		Time:          hour,
	}
}

func TestCreateBooking_HappyPath(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateBooking(repo, nil, nil)

	b, err := uc.Execute(context.Background(), createInput(dateFromToday(1), "09:00"))
	require.NoError(t, err)

	assert.Equal(t, dateFromToday(1), b.Date)
	assert.Equal(t, "09:00", b.StartTime)
	assert.Equal(t, "10:00", b.EndTime)
	assert.Equal(t, "confirmed", b.Status, "sem require_confirmation a reserva nasce confirmada")
	assert.NotEqual(t, uuid.Nil, b.PublicID)
	assert.Equal(t, repo.customer.ID, b.CustomerID)

	require.NotNil(t, repo.created, "a escrita deve passar pela rechecagem de capacidade")
}

func TestCreateBooking_RequireConfirmationStartsPending(t *testing.T) {
	repo := newFakeRepo()
	repo.settings.RequireConfirmation = true
	uc := NewCreateBooking(repo, nil, nil)

	b, err := uc.Execute(context.Background(), createInput(dateFromToday(1), "10:00"))
	require.NoError(t, err)
	assert.Equal(t, "pending", b.Status)
}

func TestCreateBooking_OutsideBookingWindow(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateBooking(repo, nil, nil)

	// além do horizonte de antecedência
	_, err := uc.Execute(context.Background(), createInput(dateFromToday(31), "09:00"))
	assert.True(t, httperr.IsBusiness(err, "outside_booking_window"))

	// data já passada
	_, err = uc.Execute(context.Background(), createInput(dateFromToday(-1), "09:00"))
	assert.True(t, httperr.IsBusiness(err, "outside_booking_window"))
}

func TestCreateBooking_TimeNotAGeneratedSlot(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateBooking(repo, nil, nil)

	// 09:17 não é um início gerado pela grade de 60 minutos
	_, err := uc.Execute(context.Background(), createInput(dateFromToday(1), "09:17"))
	assert.True(t, httperr.IsBusiness(err, "slot_not_available"))
}

func TestCreateBooking_SlotFull(t *testing.T) {
	repo := newFakeRepo()
	repo.bookings = []models.Booking{{
		ID:         10,
		ProviderID: 1,
		ServiceID:  2,
		Date:       dateFromToday(1),
		StartTime:  "09:00",
		EndTime:    "10:00",
		Status:     "confirmed",
	}}
	uc := NewCreateBooking(repo, nil, nil)

	_, err := uc.Execute(context.Background(), createInput(dateFromToday(1), "09:00"))
	assert.True(t, httperr.IsBusiness(err, "slot_not_available"))

	// o slot seguinte continua livre
	_, err = uc.Execute(context.Background(), createInput(dateFromToday(1), "10:00"))
	assert.NoError(t, err)
}

func TestCreateBooking_ConcurrentCreateLosesAtWrite(t *testing.T) {
	// duas requisições leem o mesmo snapshot "disponível"; a concorrente
	// se insere primeiro e a segunda tem que perder na rechecagem da
	// escrita, não virar overbooking silencioso
	repo := newFakeRepo()
	repo.beforeCreate = func(f *fakeRepo) {
		f.bookings = append(f.bookings, models.Booking{
			ID:         50,
			ProviderID: 1,
			ServiceID:  2,
			Date:       dateFromToday(1),
			StartTime:  "09:00",
			EndTime:    "10:00",
			Status:     "confirmed",
		})
	}
	uc := NewCreateBooking(repo, nil, nil)

	_, err := uc.Execute(context.Background(), createInput(dateFromToday(1), "09:00"))
	assert.True(t, httperr.IsBusiness(err, "capacity_exhausted"))
	assert.Len(t, repo.bookings, 1, "só a reserva concorrente persiste")
}

func TestCreateBooking_CapacityRecheckFailureSurfaces(t *testing.T) {
	repo := newFakeRepo()
	repo.createErr = httperr.ErrBusiness("capacity_exhausted")
	uc := NewCreateBooking(repo, nil, nil)

	_, err := uc.Execute(context.Background(), createInput(dateFromToday(1), "09:00"))
	assert.True(t, httperr.IsBusiness(err, "capacity_exhausted"))
}

func TestCreateBooking_InvalidInput(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateBooking(repo, nil, nil)

	_, err := uc.Execute(context.Background(), createInput("31-12-2026", "09:00"))
	assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))

	_, err = uc.Execute(context.Background(), createInput(dateFromToday(1), "9:00"))
	assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))
}

func TestCreateBooking_UnknownProviderOrService(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateBooking(repo, nil, nil)

	in := createInput(dateFromToday(1), "09:00")
	in.ProviderID = 99
	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "provider_not_found"))

	in = createInput(dateFromToday(1), "09:00")
	in.ServiceID = 99
	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
}
