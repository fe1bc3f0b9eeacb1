package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/VittaServices/marketplace-api/internal/domain/booking"
	"github.com/VittaServices/marketplace-api/internal/domain/schedule"
)

// ===============================
// Carga compartilhada dos use cases
// ===============================

// loadDaySchedule busca o padrão do dia da semana e o converte para o
// motor. Dia sem registro devolve nil: fechado, não é erro.
func loadDaySchedule(
	ctx context.Context,
	repo domain.Repository,
	serviceID uint,
	date schedule.Date,
) (*schedule.DaySchedule, error) {

	dayModel, err := repo.GetDaySchedule(ctx, serviceID, int(date.Weekday()))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return domain.DayScheduleFromModel(dayModel)
}

// loadDayRecords projeta as reservas não deletadas do dia no recorte
// do motor. O filtro de status fica no motor, não aqui.
func loadDayRecords(
	ctx context.Context,
	repo domain.Repository,
	serviceID uint,
	date schedule.Date,
) ([]schedule.BookingRecord, error) {

	bookings, err := repo.ListBookingsForDate(ctx, serviceID, date.String())
	if err != nil {
		return nil, err
	}

	return domain.RecordsFromBookings(bookings)
}
