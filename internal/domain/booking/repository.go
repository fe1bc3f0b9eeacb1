package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/VittaServices/marketplace-api/internal/models"
)

type Repository interface {
	// -------- Provider --------
	GetProviderByID(
		ctx context.Context,
		id uint,
	) (*models.Provider, error)

	GetProviderBySlug(
		ctx context.Context,
		slug string,
	) (*models.Provider, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		providerID uint,
		serviceID uint,
	) (*models.Service, error)

	GetSettings(
		ctx context.Context,
		serviceID uint,
	) (*models.BookingSettings, error)

	// -------- Schedule --------
	GetDaySchedule(
		ctx context.Context,
		serviceID uint,
		weekday int,
	) (*models.WeeklySchedule, error)

	// -------- Customer --------
	GetOrCreateCustomer(
		ctx context.Context,
		providerID uint,
		name string,
		phone string,
		email string,
	) (*models.Customer, error)

	// -------- Booking (read) --------
	ListBookingsForDate(
		ctx context.Context,
		serviceID uint,
		date string,
	) ([]models.Booking, error)

	ListBookingsForProviderDate(
		ctx context.Context,
		providerID uint,
		date string,
	) ([]models.Booking, error)

	GetBookingForProvider(
		ctx context.Context,
		bookingID uint,
		providerID uint,
	) (*models.Booking, error)

	GetBookingByPublicID(
		ctx context.Context,
		publicID uuid.UUID,
	) (*models.Booking, error)

	// -------- Booking (write) --------

	// CreateBookingIfCapacity insere a reserva dentro de uma transação que
	// serializa as criações do serviço (trava a linha de settings) e
	// reconta as reservas ativas sobrepostas. É a rechecagem atômica de
	// capacidade: duas criações concorrentes que leram o mesmo snapshot
	// "disponível" não podem ambas passar daqui.
	CreateBookingIfCapacity(
		ctx context.Context,
		b *models.Booking,
		maxConcurrent int,
	) error

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error
}
