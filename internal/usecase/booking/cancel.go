package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/VittaServices/marketplace-api/internal/audit"
	"github.com/VittaServices/marketplace-api/internal/cache"
	domain "github.com/VittaServices/marketplace-api/internal/domain/booking"
	"github.com/VittaServices/marketplace-api/internal/domain/schedule"
	"github.com/VittaServices/marketplace-api/internal/httperr"
	"github.com/VittaServices/marketplace-api/internal/models"
	"github.com/VittaServices/marketplace-api/internal/timezone"
)

type CancelBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.Availability
}

func NewCancelBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache *cache.Availability,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

// ExecuteForProvider cancela em nome do prestador: só a máquina de
// estados vale, sem janela de prazo.
func (uc *CancelBooking) ExecuteForProvider(
	ctx context.Context,
	providerID uint,
	bookingID uint,
) (*models.Booking, error) {

	provider, err := uc.repo.GetProviderByID(ctx, providerID)
	if err != nil {
		return nil, err
	}

	b, err := uc.repo.GetBookingForProvider(ctx, bookingID, providerID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	now := timezone.NowIn(provider.Timezone)
	if err := domain.Cancel(b, now); err != nil {
		return nil, err
	}

	return uc.persist(ctx, b, "booking_cancelled")
}

// ExecuteForCustomer cancela em nome do cliente: além da máquina de
// estados, o serviço precisa permitir e o prazo da política precisa
// estar respeitado.
func (uc *CancelBooking) ExecuteForCustomer(
	ctx context.Context,
	publicID uuid.UUID,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingByPublicID(ctx, publicID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	provider, err := uc.repo.GetProviderByID(ctx, b.ProviderID)
	if err != nil {
		return nil, err
	}

	settingsModel, err := uc.repo.GetSettings(ctx, b.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("settings_not_found")
	}
	settings, err := domain.SettingsFromModel(settingsModel)
	if err != nil {
		return nil, err
	}

	if !settings.AllowCustomerCancellation {
		return nil, httperr.ErrBusiness("cancellation_not_allowed")
	}

	record, err := domain.RecordFromBooking(*b)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(provider.Timezone)
	if !schedule.CanCancel(record, settings.CancellationPolicyHours, now) {
		return nil, httperr.ErrBusiness("cancellation_window_closed")
	}

	if err := domain.Cancel(b, now); err != nil {
		return nil, err
	}

	return uc.persist(ctx, b, "booking_cancelled_by_customer")
}

func (uc *CancelBooking) persist(
	ctx context.Context,
	b *models.Booking,
	action string,
) (*models.Booking, error) {

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, b.ServiceID, b.Date)

	uc.audit.Dispatch(audit.Event{
		ProviderID: b.ProviderID,
		Action:     action,
		Entity:     "booking",
		EntityID:   &b.ID,
	})

	return b, nil
}
