package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VittaServices/marketplace-api/internal/domain/schedule"
	"github.com/VittaServices/marketplace-api/internal/httperr"
)

// --------------------------------------------------
// Mapeamento de erros dos use cases para HTTP
// --------------------------------------------------

var notFoundCodes = map[string]bool{
	"provider_not_found": true,
	"service_not_found":  true,
	"booking_not_found":  true,
	"settings_not_found": true,
}

var conflictCodes = map[string]bool{
	"capacity_exhausted": true,
	"invalid_state":      true,
}

func respondError(c *gin.Context, err error) {
	if code, ok := httperr.BusinessCode(err); ok {
		switch {
		case notFoundCodes[code]:
			httperr.NotFound(c, code, "Registro não encontrado.")
		case conflictCodes[code]:
			httperr.Conflict(c, code, "Operação em conflito com o estado atual.")
		default:
			httperr.BadRequest(c, code, "Requisição inválida.")
		}
		return
	}

	// Configuração quebrada (agenda/settings malformados) não é "dia
	// fechado": falha alto, com código próprio, para o chamador ver.
	if errors.Is(err, schedule.ErrInvalidSchedule) ||
		errors.Is(err, schedule.ErrInvalidSettings) ||
		errors.Is(err, schedule.ErrInvalidDuration) ||
		errors.Is(err, schedule.ErrInvalidTimeFormat) ||
		errors.Is(err, schedule.ErrMinutesOutOfRange) {
		httperr.Write(c, http.StatusUnprocessableEntity, "invalid_configuration", err.Error())
		return
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.NotFound(c, "not_found", "Registro não encontrado.")
		return
	}

	httperr.Internal(c, "internal_error", "Erro interno.")
}
