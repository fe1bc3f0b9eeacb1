package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VittaServices/marketplace-api/internal/cache"
	domain "github.com/VittaServices/marketplace-api/internal/domain/booking"
	"github.com/VittaServices/marketplace-api/internal/httperr"
	"github.com/VittaServices/marketplace-api/internal/httpresp"
	"github.com/VittaServices/marketplace-api/internal/models"
)

// ======================================================
// Agenda semanal do serviço
// ======================================================

type ScheduleHandler struct {
	db    *gorm.DB
	cache *cache.Availability
}

func NewScheduleHandler(db *gorm.DB, cache *cache.Availability) *ScheduleHandler {
	return &ScheduleHandler{db: db, cache: cache}
}

type BreakConfig struct {
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type ScheduleDayConfig struct {
	Weekday   int           `json:"weekday" binding:"min=0,max=6"`
	Active    bool          `json:"active"`
	StartTime string        `json:"start_time"`
	EndTime   string        `json:"end_time"`
	Breaks    []BreakConfig `json:"breaks"`
}

type ScheduleUpdateRequest struct {
	Days []ScheduleDayConfig `json:"days" binding:"required"`
}

// GET /api/providers/:providerID/services/:serviceID/schedule
func (h *ScheduleHandler) Get(c *gin.Context) {
	serviceID, ok := uintParam(c, "serviceID")
	if !ok {
		return
	}

	var days []models.WeeklySchedule
	if err := h.db.
		Preload("Breaks").
		Where("service_id = ?", serviceID).
		Order("weekday ASC").
		Find(&days).Error; err != nil {

		httperr.Internal(c, "failed_to_get_schedule", "Erro ao buscar a agenda.")
		return
	}

	httpresp.OK(c, days)
}

// PUT /api/providers/:providerID/services/:serviceID/schedule
//
// Substitui o padrão semanal inteiro. Cada dia ativo passa pelo motor
// de agenda antes de salvar: formato ou consistência quebrada rejeita
// a requisição inteira, nada é persistido pela metade.
func (h *ScheduleHandler) Update(c *gin.Context) {
	serviceID, ok := uintParam(c, "serviceID")
	if !ok {
		return
	}

	var req ScheduleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	toCreate := make([]models.WeeklySchedule, 0, len(req.Days))
	for _, d := range req.Days {
		day := models.WeeklySchedule{
			ServiceID: serviceID,
			Weekday:   d.Weekday,
			Active:    d.Active,
			StartTime: d.StartTime,
			EndTime:   d.EndTime,
		}
		for _, b := range d.Breaks {
			day.Breaks = append(day.Breaks, models.ScheduleBreak{
				StartTime: b.StartTime,
				EndTime:   b.EndTime,
			})
		}

		if day.Active {
			if _, err := domain.DayScheduleFromModel(&day); err != nil {
				respondError(c, err)
				return
			}
		}

		toCreate = append(toCreate, day)
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("weekly_schedule_id IN (?)",
				tx.Model(&models.WeeklySchedule{}).
					Select("id").
					Where("service_id = ?", serviceID),
			).
			Delete(&models.ScheduleBreak{}).Error; err != nil {
			return err
		}

		if err := tx.
			Where("service_id = ?", serviceID).
			Delete(&models.WeeklySchedule{}).Error; err != nil {
			return err
		}

		if len(toCreate) > 0 {
			if err := tx.Create(&toCreate).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		httperr.Internal(c, "failed_to_save_schedule", "Erro ao salvar a agenda.")
		return
	}

	// agenda nova invalida qualquer dia já calculado do serviço
	h.cache.InvalidateService(c.Request.Context(), serviceID)

	httpresp.OK(c, gin.H{"status": "ok"})
}
