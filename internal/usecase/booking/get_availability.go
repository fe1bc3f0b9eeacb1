package booking

import (
	"context"

	"github.com/VittaServices/marketplace-api/internal/cache"
	domain "github.com/VittaServices/marketplace-api/internal/domain/booking"
	"github.com/VittaServices/marketplace-api/internal/domain/schedule"
	"github.com/VittaServices/marketplace-api/internal/dto"
	"github.com/VittaServices/marketplace-api/internal/httperr"
	"github.com/VittaServices/marketplace-api/internal/models"
	"github.com/VittaServices/marketplace-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type GetAvailabilityInput struct {
	ProviderID uint
	ServiceID  uint
	Date       string
}

// ======================================================
// USE CASE
// ======================================================

type GetAvailability struct {
	repo  domain.Repository
	cache *cache.Availability
}

func NewGetAvailability(
	repo domain.Repository,
	cache *cache.Availability,
) *GetAvailability {
	return &GetAvailability{
		repo:  repo,
		cache: cache,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in GetAvailabilityInput,
) (*dto.DailyAvailabilityDTO, error) {

	date, err := schedule.ParseDate(in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	if cached, ok := uc.cache.Get(ctx, in.ServiceID, date.String()); ok {
		return cached, nil
	}

	provider, err := uc.repo.GetProviderByID(ctx, in.ProviderID)
	if err != nil {
		return nil, httperr.ErrBusiness("provider_not_found")
	}

	if _, err := uc.repo.GetService(ctx, in.ProviderID, in.ServiceID); err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	daily, err := uc.computeDay(ctx, provider, in.ServiceID, date)
	if err != nil {
		return nil, err
	}

	out := toDailyDTO(daily)
	uc.cache.Set(ctx, in.ServiceID, date.String(), out)
	return out, nil
}

// ExecuteRange calcula vários dias seguidos para o calendário.
func (uc *GetAvailability) ExecuteRange(
	ctx context.Context,
	in GetAvailabilityInput,
	days int,
) ([]dto.DailyAvailabilityDTO, error) {

	if days < 1 {
		days = 1
	}

	first, err := schedule.ParseDate(in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	provider, err := uc.repo.GetProviderByID(ctx, in.ProviderID)
	if err != nil {
		return nil, httperr.ErrBusiness("provider_not_found")
	}

	if _, err := uc.repo.GetService(ctx, in.ProviderID, in.ServiceID); err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	out := make([]dto.DailyAvailabilityDTO, 0, days)
	for i := 0; i < days; i++ {
		date := first.AddDays(i)

		if cached, ok := uc.cache.Get(ctx, in.ServiceID, date.String()); ok {
			out = append(out, *cached)
			continue
		}

		daily, err := uc.computeDay(ctx, provider, in.ServiceID, date)
		if err != nil {
			return nil, err
		}

		d := toDailyDTO(daily)
		uc.cache.Set(ctx, in.ServiceID, date.String(), d)
		out = append(out, *d)
	}
	return out, nil
}

// ======================================================
// HELPERS
// ======================================================

// computeDay junta agenda do dia, reservas e "agora" do prestador e
// delega o cálculo ao motor. Dia sem registro é dia fechado, não erro.
func (uc *GetAvailability) computeDay(
	ctx context.Context,
	provider *models.Provider,
	serviceID uint,
	date schedule.Date,
) (schedule.DailyAvailability, error) {

	settingsModel, err := uc.repo.GetSettings(ctx, serviceID)
	if err != nil {
		return schedule.DailyAvailability{}, httperr.ErrBusiness("settings_not_found")
	}

	settings, err := domain.SettingsFromModel(settingsModel)
	if err != nil {
		return schedule.DailyAvailability{}, err
	}

	day, err := loadDaySchedule(ctx, uc.repo, serviceID, date)
	if err != nil {
		return schedule.DailyAvailability{}, err
	}

	records, err := loadDayRecords(ctx, uc.repo, serviceID, date)
	if err != nil {
		return schedule.DailyAvailability{}, err
	}

	now := timezone.NowIn(provider.Timezone)
	return schedule.BuildDailyAvailability(date, day, records, settings, now)
}

func toDailyDTO(daily schedule.DailyAvailability) *dto.DailyAvailabilityDTO {
	slots := make([]dto.TimeSlotDTO, 0, len(daily.Slots))
	for _, s := range daily.Slots {
		start, _ := s.Start.Format()
		end, _ := s.End.Format()
		slots = append(slots, dto.TimeSlotDTO{
			Start:     start,
			End:       end,
			Datetime:  s.StartsAt,
			Available: s.Available,
			Booked:    s.Booked,
			Capacity:  s.Capacity,
		})
	}

	return &dto.DailyAvailabilityDTO{
		Date:      daily.Date.String(),
		Weekday:   int(daily.Weekday),
		Available: daily.Available,
		Slots:     slots,
	}
}
