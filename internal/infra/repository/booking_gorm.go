package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/VittaServices/marketplace-api/internal/domain/booking"
	"github.com/VittaServices/marketplace-api/internal/domain/schedule"
	"github.com/VittaServices/marketplace-api/internal/httperr"
	"github.com/VittaServices/marketplace-api/internal/models"
)

// Status que ocupam vaga, na forma que o SQL espera.
var capacityStatuses = []string{
	string(schedule.StatusPending),
	string(schedule.StatusConfirmed),
	string(schedule.StatusCompleted),
}

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Provider
// --------------------------------------------------

func (r *BookingGormRepository) GetProviderByID(
	ctx context.Context,
	id uint,
) (*models.Provider, error) {

	var provider models.Provider
	if err := r.db.WithContext(ctx).First(&provider, id).Error; err != nil {
		return nil, err
	}
	return &provider, nil
}

func (r *BookingGormRepository) GetProviderBySlug(
	ctx context.Context,
	slug string,
) (*models.Provider, error) {

	var provider models.Provider
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&provider).Error; err != nil {
		return nil, err
	}
	return &provider, nil
}

// --------------------------------------------------
// Service / Settings
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	providerID uint,
	serviceID uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND provider_id = ?", serviceID, providerID).
		First(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *BookingGormRepository) GetSettings(
	ctx context.Context,
	serviceID uint,
) (*models.BookingSettings, error) {

	var settings models.BookingSettings
	if err := r.db.WithContext(ctx).
		Where("service_id = ?", serviceID).
		First(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

// --------------------------------------------------
// Schedule
// --------------------------------------------------

func (r *BookingGormRepository) GetDaySchedule(
	ctx context.Context,
	serviceID uint,
	weekday int,
) (*models.WeeklySchedule, error) {

	var day models.WeeklySchedule
	if err := r.db.WithContext(ctx).
		Preload("Breaks").
		Where("service_id = ? AND weekday = ?", serviceID, weekday).
		First(&day).Error; err != nil {
		return nil, err
	}
	return &day, nil
}

// --------------------------------------------------
// Customer
// --------------------------------------------------

func (r *BookingGormRepository) GetOrCreateCustomer(
	ctx context.Context,
	providerID uint,
	name string,
	phone string,
	email string,
) (*models.Customer, error) {

	var customer models.Customer
	err := r.db.WithContext(ctx).
		Where("provider_id = ? AND phone = ?", providerID, phone).
		First(&customer).Error

	if err == nil {
		return &customer, nil
	}

	customer = models.Customer{
		ProviderID: providerID,
		Name:       name,
		Phone:      phone,
		Email:      email,
	}

	if err := r.db.WithContext(ctx).Create(&customer).Error; err != nil {
		return nil, err
	}

	return &customer, nil
}

// --------------------------------------------------
// Booking (read)
// --------------------------------------------------

func (r *BookingGormRepository) ListBookingsForDate(
	ctx context.Context,
	serviceID uint,
	date string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("service_id = ? AND date = ?", serviceID, date).
		Order("start_time ASC, id ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) ListBookingsForProviderDate(
	ctx context.Context,
	providerID uint,
	date string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Service").
		Where("provider_id = ? AND date = ?", providerID, date).
		Order("start_time ASC, id ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) GetBookingForProvider(
	ctx context.Context,
	bookingID uint,
	providerID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("id = ? AND provider_id = ?", bookingID, providerID).
		First(&b).Error; err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) GetBookingByPublicID(
	ctx context.Context,
	publicID uuid.UUID,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("public_id = ?", publicID).
		First(&b).Error; err != nil {
		return nil, err
	}

	return &b, nil
}

// --------------------------------------------------
// Booking (write)
// --------------------------------------------------

// CreateBookingIfCapacity fecha a janela de overbooking que o motor de
// agenda (leitura pura) deixa aberta: dentro da transação, trava a linha
// de settings do serviço com FOR UPDATE, reconta as reservas ativas
// sobrepostas e só então insere.
//
// A trava precisa ser numa linha-mãe estável: travar só as reservas
// sobrepostas não serializa nada quando o slot está vazio (zero linhas,
// zero locks) e duas transações concorrentes passariam ambas na
// contagem. Com a linha de settings travada, a segunda transação espera
// o commit da primeira e a contagem seguinte já enxerga o insert dela.
// Strings "HH:MM" com zero à esquerda comparam na ordem certa no SQL.
func (r *BookingGormRepository) CreateBookingIfCapacity(
	ctx context.Context,
	b *models.Booking,
	maxConcurrent int,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var settings models.BookingSettings
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("service_id = ?", b.ServiceID).
			First(&settings).Error; err != nil {
			return err
		}

		var overlapping []models.Booking
		if err := tx.
			Where(
				"service_id = ? AND date = ? AND status IN ? AND start_time < ? AND end_time > ?",
				b.ServiceID, b.Date, capacityStatuses, b.EndTime, b.StartTime,
			).
			Find(&overlapping).Error; err != nil {
			return err
		}

		if len(overlapping) >= maxConcurrent {
			return httperr.ErrBusiness("capacity_exhausted")
		}

		return tx.Create(b).Error
	})
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
