package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/VittaServices/marketplace-api/internal/audit"
	"github.com/VittaServices/marketplace-api/internal/cache"
	domain "github.com/VittaServices/marketplace-api/internal/domain/booking"
	"github.com/VittaServices/marketplace-api/internal/domain/schedule"
	"github.com/VittaServices/marketplace-api/internal/httperr"
	"github.com/VittaServices/marketplace-api/internal/models"
	"github.com/VittaServices/marketplace-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	ProviderID uint
	ServiceID  uint

	CustomerName  string
	CustomerPhone string
	CustomerEmail string

	Date  string
	Time  string
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.Availability
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache *cache.Availability,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// O fluxo é: janela de antecedência -> slot existe e está livre no
// snapshot -> rechecagem atômica de capacidade na escrita. A última
// etapa é a que vale: o snapshot pode ter envelhecido entre a leitura
// e o commit.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	provider, err := uc.repo.GetProviderByID(ctx, in.ProviderID)
	if err != nil {
		return nil, httperr.ErrBusiness("provider_not_found")
	}

	if _, err := uc.repo.GetService(ctx, in.ProviderID, in.ServiceID); err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	date, err := schedule.ParseDate(in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}
	start, err := schedule.ParseTimeOfDay(in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	settingsModel, err := uc.repo.GetSettings(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("settings_not_found")
	}
	settings, err := domain.SettingsFromModel(settingsModel)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(provider.Timezone)

	if !schedule.IsDateBookable(date, settings.AdvanceBookingDays, now) {
		return nil, httperr.ErrBusiness("outside_booking_window")
	}

	slot, err := uc.findSlot(ctx, in.ServiceID, date, start, settings, now)
	if err != nil {
		return nil, err
	}
	if !slot.Available {
		return nil, httperr.ErrBusiness("slot_not_available")
	}

	customer, err := uc.repo.GetOrCreateCustomer(
		ctx,
		in.ProviderID,
		in.CustomerName,
		in.CustomerPhone,
		in.CustomerEmail,
	)
	if err != nil {
		return nil, err
	}

	startStr, _ := slot.Start.Format()
	endStr, _ := slot.End.Format()

	b := &models.Booking{
		PublicID:   uuid.New(),
		ProviderID: in.ProviderID,
		ServiceID:  in.ServiceID,
		CustomerID: customer.ID,
		Date:       date.String(),
		StartTime:  startStr,
		EndTime:    endStr,
		Status:     string(schedule.InitialStatus(settings.RequireConfirmation)),
		Notes:      in.Notes,
	}

	if err := uc.repo.CreateBookingIfCapacity(ctx, b, settings.MaxConcurrentBookings); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, in.ServiceID, date.String())

	uc.audit.Dispatch(audit.Event{
		ProviderID: in.ProviderID,
		Action:     "booking_created",
		Entity:     "booking",
		EntityID:   &b.ID,
	})

	return b, nil
}

// findSlot recalcula o dia e localiza o candidato pedido.
// Horário que não é um início gerado não é reservável.
func (uc *CreateBooking) findSlot(
	ctx context.Context,
	serviceID uint,
	date schedule.Date,
	start schedule.TimeOfDay,
	settings schedule.Settings,
	now time.Time,
) (schedule.TimeSlot, error) {

	day, err := loadDaySchedule(ctx, uc.repo, serviceID, date)
	if err != nil {
		return schedule.TimeSlot{}, err
	}

	records, err := loadDayRecords(ctx, uc.repo, serviceID, date)
	if err != nil {
		return schedule.TimeSlot{}, err
	}

	slots, err := schedule.ComputeSlots(date, day, records, settings, now)
	if err != nil {
		return schedule.TimeSlot{}, err
	}

	for _, s := range slots {
		if s.Start == start {
			return s, nil
		}
	}
	return schedule.TimeSlot{}, httperr.ErrBusiness("slot_not_available")
}
