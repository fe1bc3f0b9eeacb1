package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/VittaServices/marketplace-api/internal/httperr"
	"github.com/VittaServices/marketplace-api/internal/httpresp"
	"github.com/VittaServices/marketplace-api/internal/models"
	ucBooking "github.com/VittaServices/marketplace-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC     *ucBooking.CreateBooking
	cancelUC     *ucBooking.CancelBooking
	transitionUC *ucBooking.TransitionBooking
	listUC       *ucBooking.ListBookingsByDate
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	cancelUC *ucBooking.CancelBooking,
	transitionUC *ucBooking.TransitionBooking,
	listUC *ucBooking.ListBookingsByDate,
) *BookingHandler {
	return &BookingHandler{
		createUC:     createUC,
		cancelUC:     cancelUC,
		transitionUC: transitionUC,
		listUC:       listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	ServiceID     uint   `json:"service_id" binding:"required"`
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	CustomerEmail string `json:"customer_email"`
	Date          string `json:"date" binding:"required"`
	Time          string `json:"time" binding:"required"`
	Notes         string `json:"notes"`
}

// ======================================================
// CREATE
// ======================================================

// POST /api/providers/:providerID/bookings
func (h *BookingHandler) Create(c *gin.Context) {
	providerID, ok := uintParam(c, "providerID")
	if !ok {
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		ProviderID:    providerID,
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

// ======================================================
// LIST
// ======================================================

// GET /api/providers/:providerID/bookings?date=YYYY-MM-DD
func (h *BookingHandler) ListByDate(c *gin.Context) {
	providerID, ok := uintParam(c, "providerID")
	if !ok {
		return
	}

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Informe a data (YYYY-MM-DD).")
		return
	}

	out, err := h.listUC.Execute(c.Request.Context(), providerID, date)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, out)
}

// ======================================================
// STATE CHANGES
// ======================================================

// PATCH /api/providers/:providerID/bookings/:id/cancel
func (h *BookingHandler) Cancel(c *gin.Context) {
	h.applyState(c, h.cancelUC.ExecuteForProvider)
}

// PATCH /api/providers/:providerID/bookings/:id/confirm
func (h *BookingHandler) Confirm(c *gin.Context) {
	h.applyState(c, h.transitionUC.Confirm)
}

// PATCH /api/providers/:providerID/bookings/:id/complete
func (h *BookingHandler) Complete(c *gin.Context) {
	h.applyState(c, h.transitionUC.Complete)
}

// PATCH /api/providers/:providerID/bookings/:id/no-show
func (h *BookingHandler) MarkNoShow(c *gin.Context) {
	h.applyState(c, h.transitionUC.MarkNoShow)
}

func (h *BookingHandler) applyState(
	c *gin.Context,
	action func(ctx context.Context, providerID, bookingID uint) (*models.Booking, error),
) {
	providerID, ok := uintParam(c, "providerID")
	if !ok {
		return
	}
	bookingID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	b, err := action(c.Request.Context(), providerID, bookingID)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, b)
}
