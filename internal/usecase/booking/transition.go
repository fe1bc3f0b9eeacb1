package booking

import (
	"context"
	"time"

	"github.com/VittaServices/marketplace-api/internal/audit"
	"github.com/VittaServices/marketplace-api/internal/cache"
	domain "github.com/VittaServices/marketplace-api/internal/domain/booking"
	"github.com/VittaServices/marketplace-api/internal/httperr"
	"github.com/VittaServices/marketplace-api/internal/models"
	"github.com/VittaServices/marketplace-api/internal/timezone"
)

// ======================================================
// Transições simples do prestador
// ======================================================

// Confirmar, concluir e marcar falta compartilham o mesmo esqueleto:
// carregar, transicionar, salvar, invalidar cache, auditar.

type TransitionBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.Availability
}

func NewTransitionBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache *cache.Availability,
) *TransitionBooking {
	return &TransitionBooking{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

func (uc *TransitionBooking) Confirm(
	ctx context.Context,
	providerID uint,
	bookingID uint,
) (*models.Booking, error) {
	return uc.apply(ctx, providerID, bookingID, "booking_confirmed", domain.Confirm)
}

func (uc *TransitionBooking) Complete(
	ctx context.Context,
	providerID uint,
	bookingID uint,
) (*models.Booking, error) {
	return uc.apply(ctx, providerID, bookingID, "booking_completed", domain.Complete)
}

func (uc *TransitionBooking) MarkNoShow(
	ctx context.Context,
	providerID uint,
	bookingID uint,
) (*models.Booking, error) {
	return uc.apply(ctx, providerID, bookingID, "booking_no_show", domain.MarkNoShow)
}

func (uc *TransitionBooking) apply(
	ctx context.Context,
	providerID uint,
	bookingID uint,
	action string,
	transition func(*models.Booking, time.Time) error,
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
	if err := transition(b, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, b.ServiceID, b.Date)

	uc.audit.Dispatch(audit.Event{
		ProviderID: providerID,
		Action:     action,
		Entity:     "booking",
		EntityID:   &b.ID,
	})

	return b, nil
}
