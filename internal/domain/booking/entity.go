package booking

import (
	"time"

	"github.com/VittaServices/marketplace-api/internal/domain/schedule"
	"github.com/VittaServices/marketplace-api/internal/httperr"
	"github.com/VittaServices/marketplace-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Transições de status da reserva, validadas pela máquina de estados
// do motor de agenda. A política de prazo (can_cancel) é checada antes,
// no use case, quando o cancelamento parte do cliente.

func Confirm(b *models.Booking, now time.Time) error {
	if err := assertTransition(b, schedule.StatusConfirmed); err != nil {
		return err
	}
	b.Status = string(schedule.StatusConfirmed)
	b.ConfirmedAt = &now
	return nil
}

func Cancel(b *models.Booking, now time.Time) error {
	if err := assertTransition(b, schedule.StatusCancelled); err != nil {
		return err
	}
	b.Status = string(schedule.StatusCancelled)
	b.CancelledAt = &now
	return nil
}

func Complete(b *models.Booking, now time.Time) error {
	if err := assertTransition(b, schedule.StatusCompleted); err != nil {
		return err
	}
	b.Status = string(schedule.StatusCompleted)
	b.CompletedAt = &now
	return nil
}

func MarkNoShow(b *models.Booking, now time.Time) error {
	if err := assertTransition(b, schedule.StatusNoShow); err != nil {
		return err
	}
	b.Status = string(schedule.StatusNoShow)
	return nil
}

func assertTransition(b *models.Booking, to schedule.BookingStatus) error {
	if !schedule.CanTransition(schedule.BookingStatus(b.Status), to) {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}
