package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/VittaServices/marketplace-api/internal/httperr"
	"github.com/VittaServices/marketplace-api/internal/httpresp"
	"github.com/VittaServices/marketplace-api/internal/models"
	ucBooking "github.com/VittaServices/marketplace-api/internal/usecase/booking"
)

// ======================================================
// Superfície pública (cliente final, por slug)
// ======================================================

type PublicHandler struct {
	db              *gorm.DB
	getAvailability *ucBooking.GetAvailability
	createUC        *ucBooking.CreateBooking
	cancelUC        *ucBooking.CancelBooking
}

func NewPublicHandler(
	db *gorm.DB,
	getAvailability *ucBooking.GetAvailability,
	createUC *ucBooking.CreateBooking,
	cancelUC *ucBooking.CancelBooking,
) *PublicHandler {
	return &PublicHandler{
		db:              db,
		getAvailability: getAvailability,
		createUC:        createUC,
		cancelUC:        cancelUC,
	}
}

func (h *PublicHandler) providerBySlug(c *gin.Context) (*models.Provider, bool) {
	var provider models.Provider
	if err := h.db.
		Where("slug = ?", c.Param("slug")).
		First(&provider).Error; err != nil {
		httperr.NotFound(c, "provider_not_found", "Prestador não encontrado.")
		return nil, false
	}
	return &provider, true
}

// GET /api/public/:slug/services
func (h *PublicHandler) ListServices(c *gin.Context) {
	provider, ok := h.providerBySlug(c)
	if !ok {
		return
	}

	var services []models.Service
	if err := h.db.
		Where("provider_id = ? AND active = ?", provider.ID, true).
		Order("name ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	httpresp.List(c, services)
}

// GET /api/public/:slug/availability?service_id=&date=&days=
func (h *PublicHandler) Availability(c *gin.Context) {
	provider, ok := h.providerBySlug(c)
	if !ok {
		return
	}

	serviceID, ok := uintQuery(c, "service_id")
	if !ok {
		return
	}

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Informe a data (YYYY-MM-DD).")
		return
	}

	out, err := h.getAvailability.Execute(c.Request.Context(), ucBooking.GetAvailabilityInput{
		ProviderID: provider.ID,
		ServiceID:  serviceID,
		Date:       date,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, out)
}

// POST /api/public/:slug/bookings
func (h *PublicHandler) CreateBooking(c *gin.Context) {
	provider, ok := h.providerBySlug(c)
	if !ok {
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		ProviderID:    provider.ID,
		ServiceID:     req.ServiceID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		Date:          req.Date,
		Time:          req.Time,
		Notes:         req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.Created(c, b)
}

// PATCH /api/bookings/:publicID/cancel
// O cliente cancela pela chave pública; a política de prazo do serviço
// é aplicada no use case.
func (h *PublicHandler) CancelBooking(c *gin.Context) {
	publicID, err := uuid.Parse(c.Param("publicID"))
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Identificador inválido.")
		return
	}

	b, err := h.cancelUC.ExecuteForCustomer(c.Request.Context(), publicID)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, b)
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

func uintQuery(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Query(name), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_"+name, "Parâmetro inválido.")
		return 0, false
	}
	return uint(v), true
}
