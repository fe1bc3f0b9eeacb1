package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/VittaServices/marketplace-api/internal/domain/booking"
	"github.com/VittaServices/marketplace-api/internal/domain/schedule"
	"github.com/VittaServices/marketplace-api/internal/httperr"
	"github.com/VittaServices/marketplace-api/internal/models"
)

// ======================================================
// Repositório fake em memória para os testes de use case
// ======================================================

type fakeRepo struct {
	provider *models.Provider
	service  *models.Service
	settings *models.BookingSettings
	day      *models.WeeklySchedule
	bookings []models.Booking
	customer *models.Customer

	created   *models.Booking
	createErr error
	updated   *models.Booking

	// executado no início de CreateBookingIfCapacity, para simular uma
	// escrita concorrente entre o snapshot e a rechecagem
	beforeCreate func(*fakeRepo)
}

var _ domain.Repository = (*fakeRepo)(nil)

func (f *fakeRepo) GetProviderByID(ctx context.Context, id uint) (*models.Provider, error) {
	if f.provider == nil || f.provider.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return f.provider, nil
}

func (f *fakeRepo) GetProviderBySlug(ctx context.Context, slug string) (*models.Provider, error) {
	if f.provider == nil || f.provider.Slug != slug {
		return nil, gorm.ErrRecordNotFound
	}
	return f.provider, nil
}

func (f *fakeRepo) GetService(ctx context.Context, providerID uint, serviceID uint) (*models.Service, error) {
	if f.service == nil || f.service.ID != serviceID || f.service.ProviderID != providerID {
		return nil, gorm.ErrRecordNotFound
	}
	return f.service, nil
}

func (f *fakeRepo) GetSettings(ctx context.Context, serviceID uint) (*models.BookingSettings, error) {
	if f.settings == nil || f.settings.ServiceID != serviceID {
		return nil, gorm.ErrRecordNotFound
	}
	return f.settings, nil
}

func (f *fakeRepo) GetDaySchedule(ctx context.Context, serviceID uint, weekday int) (*models.WeeklySchedule, error) {
	if f.day == nil {
		return nil, gorm.ErrRecordNotFound
	}
	// o mesmo padrão vale para qualquer dia da semana nos testes
	return f.day, nil
}

func (f *fakeRepo) GetOrCreateCustomer(ctx context.Context, providerID uint, name, phone, email string) (*models.Customer, error) {
	if f.customer != nil {
		return f.customer, nil
	}
	f.customer = &models.Customer{
		ID:         7,
		ProviderID: providerID,
		Name:       name,
		Phone:      phone,
		Email:      email,
	}
	return f.customer, nil
}

func (f *fakeRepo) ListBookingsForDate(ctx context.Context, serviceID uint, date string) ([]models.Booking, error) {
	out := []models.Booking{}
	for _, b := range f.bookings {
		if b.ServiceID == serviceID && b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListBookingsForProviderDate(ctx context.Context, providerID uint, date string) ([]models.Booking, error) {
	out := []models.Booking{}
	for _, b := range f.bookings {
		if b.ProviderID == providerID && b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetBookingForProvider(ctx context.Context, bookingID uint, providerID uint) (*models.Booking, error) {
	for i := range f.bookings {
		if f.bookings[i].ID == bookingID && f.bookings[i].ProviderID == providerID {
			return &f.bookings[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) GetBookingByPublicID(ctx context.Context, publicID uuid.UUID) (*models.Booking, error) {
	for i := range f.bookings {
		if f.bookings[i].PublicID == publicID {
			return &f.bookings[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) CreateBookingIfCapacity(ctx context.Context, b *models.Booking, maxConcurrent int) error {
	if f.createErr != nil {
		return f.createErr
	}
	if f.beforeCreate != nil {
		hook := f.beforeCreate
		f.beforeCreate = nil
		hook(f)
	}

	// mesmo contrato do repositório real: a contagem acontece na
	// escrita, o snapshot lido antes pelo use case não vale aqui
	active := 0
	for _, existing := range f.bookings {
		if existing.ServiceID != b.ServiceID || existing.Date != b.Date {
			continue
		}
		if !schedule.BookingStatus(existing.Status).CountsTowardCapacity() {
			continue
		}
		if existing.StartTime < b.EndTime && b.StartTime < existing.EndTime {
			active++
		}
	}
	if active >= maxConcurrent {
		return httperr.ErrBusiness("capacity_exhausted")
	}

	b.ID = uint(len(f.bookings) + 1)
	f.created = b
	f.bookings = append(f.bookings, *b)
	return nil
}

func (f *fakeRepo) UpdateBooking(ctx context.Context, b *models.Booking) error {
	f.updated = b
	return nil
}

// ======================================================
// Cenário base
// ======================================================

// newFakeRepo monta um prestador em UTC com um serviço que atende todos
// os dias das 09:00 às 17:00, slots de 60 minutos, capacidade 1.
func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		provider: &models.Provider{
			ID:       1,
			Name:     "Estúdio Vitta",
			Slug:     "estudio-vitta",
			Timezone: "UTC",
		},
		service: &models.Service{
			ID:         2,
			ProviderID: 1,
			Name:       "Consulta",
			Active:     true,
		},
		settings: &models.BookingSettings{
			ServiceID:                 2,
			DurationMinutes:           60,
			MaxConcurrentBookings:     1,
			AdvanceBookingDays:        30,
			BufferMinutes:             0,
			CancellationPolicyHours:   24,
			RequireConfirmation:       false,
			AllowCustomerCancellation: true,
		},
		day: &models.WeeklySchedule{
			ServiceID: 2,
			StartTime: "09:00",
			EndTime:   "17:00",
			Active:    true,
		},
	}
}

// dateFromToday devolve "YYYY-MM-DD" deslocada em dias a partir de hoje
// em UTC, o fuso do prestador dos testes.
func dateFromToday(days int) string {
	return schedule.DateOf(time.Now().UTC()).AddDays(days).String()
}
