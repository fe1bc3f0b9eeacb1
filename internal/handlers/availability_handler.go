package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/VittaServices/marketplace-api/internal/httperr"
	"github.com/VittaServices/marketplace-api/internal/httpresp"
	ucBooking "github.com/VittaServices/marketplace-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AvailabilityHandler struct {
	getAvailability *ucBooking.GetAvailability
}

func NewAvailabilityHandler(
	getAvailability *ucBooking.GetAvailability,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		getAvailability: getAvailability,
	}
}

// GET /api/providers/:providerID/services/:serviceID/availability?date=YYYY-MM-DD&days=N
func (h *AvailabilityHandler) Get(c *gin.Context) {
	providerID, ok := uintParam(c, "providerID")
	if !ok {
		return
	}
	serviceID, ok := uintParam(c, "serviceID")
	if !ok {
		return
	}

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Informe a data (YYYY-MM-DD).")
		return
	}

	in := ucBooking.GetAvailabilityInput{
		ProviderID: providerID,
		ServiceID:  serviceID,
		Date:       date,
	}

	if daysStr := c.Query("days"); daysStr != "" {
		days, err := strconv.Atoi(daysStr)
		if err != nil || days < 1 || days > 31 {
			httperr.BadRequest(c, "invalid_days", "days deve estar entre 1 e 31.")
			return
		}

		out, err := h.getAvailability.ExecuteRange(c.Request.Context(), in, days)
		if err != nil {
			respondError(c, err)
			return
		}
		httpresp.List(c, out)
		return
	}

	out, err := h.getAvailability.Execute(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, out)
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

func uintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_"+name, "Parâmetro inválido.")
		return 0, false
	}
	return uint(v), true
}
