package booking

import (
	"context"

	domain "github.com/VittaServices/marketplace-api/internal/domain/booking"
	"github.com/VittaServices/marketplace-api/internal/domain/schedule"
	"github.com/VittaServices/marketplace-api/internal/dto"
	"github.com/VittaServices/marketplace-api/internal/httperr"
)

type ListBookingsByDate struct {
	repo domain.Repository
}

func NewListBookingsByDate(
	repo domain.Repository,
) *ListBookingsByDate {
	return &ListBookingsByDate{
		repo: repo,
	}
}

func (uc *ListBookingsByDate) Execute(
	ctx context.Context,
	providerID uint,
	dateStr string,
) ([]dto.BookingListDTO, error) {

	date, err := schedule.ParseDate(dateStr)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	bookings, err := uc.repo.ListBookingsForProviderDate(ctx, providerID, date.String())
	if err != nil {
		return nil, err
	}

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, dto.BookingListDTO{
			ID:           b.ID,
			PublicID:     b.PublicID,
			Date:         b.Date,
			StartTime:    b.StartTime,
			EndTime:      b.EndTime,
			Status:       b.Status,
			CustomerName: b.Customer.Name,
			ServiceName:  b.Service.Name,
		})
	}

	return out, nil
}
