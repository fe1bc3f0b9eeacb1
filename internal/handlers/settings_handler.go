package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VittaServices/marketplace-api/internal/cache"
	domain "github.com/VittaServices/marketplace-api/internal/domain/booking"
	"github.com/VittaServices/marketplace-api/internal/httperr"
	"github.com/VittaServices/marketplace-api/internal/httpresp"
	"github.com/VittaServices/marketplace-api/internal/models"
)

// ======================================================
// Configuração de agendamento do serviço
// ======================================================

type SettingsHandler struct {
	db    *gorm.DB
	cache *cache.Availability
}

func NewSettingsHandler(db *gorm.DB, cache *cache.Availability) *SettingsHandler {
	return &SettingsHandler{db: db, cache: cache}
}

type SettingsUpdateRequest struct {
	DurationMinutes         int `json:"duration_minutes" binding:"required"`
	MaxConcurrentBookings   int `json:"max_concurrent_bookings" binding:"required"`
	AdvanceBookingDays      int `json:"advance_booking_days"`
	BufferMinutes           int `json:"buffer_minutes"`
	CancellationPolicyHours int `json:"cancellation_policy_hours"`

	RequireConfirmation       bool `json:"require_confirmation"`
	AllowCustomerCancellation bool `json:"allow_customer_cancellation"`
}

// GET /api/providers/:providerID/services/:serviceID/settings
func (h *SettingsHandler) Get(c *gin.Context) {
	serviceID, ok := uintParam(c, "serviceID")
	if !ok {
		return
	}

	var settings models.BookingSettings
	if err := h.db.
		Where("service_id = ?", serviceID).
		First(&settings).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "settings_not_found", "Serviço sem configuração de agenda.")
			return
		}
		httperr.Internal(c, "failed_to_get_settings", "Erro ao buscar configuração.")
		return
	}

	httpresp.OK(c, settings)
}

// PUT /api/providers/:providerID/services/:serviceID/settings
//
// Valor completo e explícito: o motor valida antes de salvar e não há
// defaults implícitos para campo faltante.
func (h *SettingsHandler) Update(c *gin.Context) {
	serviceID, ok := uintParam(c, "serviceID")
	if !ok {
		return
	}

	var req SettingsUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	settings := models.BookingSettings{
		ServiceID:               serviceID,
		DurationMinutes:         req.DurationMinutes,
		MaxConcurrentBookings:   req.MaxConcurrentBookings,
		AdvanceBookingDays:      req.AdvanceBookingDays,
		BufferMinutes:           req.BufferMinutes,
		CancellationPolicyHours: req.CancellationPolicyHours,

		RequireConfirmation:       req.RequireConfirmation,
		AllowCustomerCancellation: req.AllowCustomerCancellation,
	}

	if _, err := domain.SettingsFromModel(&settings); err != nil {
		respondError(c, err)
		return
	}

	var existing models.BookingSettings
	err := h.db.Where("service_id = ?", serviceID).First(&existing).Error
	switch {
	case err == nil:
		settings.ID = existing.ID
		settings.CreatedAt = existing.CreatedAt
		err = h.db.Save(&settings).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		err = h.db.Create(&settings).Error
	}
	if err != nil {
		httperr.Internal(c, "failed_to_save_settings", "Erro ao salvar configuração.")
		return
	}

	// duração/capacidade novas invalidam os dias já calculados
	h.cache.InvalidateService(c.Request.Context(), serviceID)

	httpresp.OK(c, settings)
}
