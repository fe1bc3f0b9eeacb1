package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VittaServices/marketplace-api/internal/httperr"
	"github.com/VittaServices/marketplace-api/internal/httpresp"
	"github.com/VittaServices/marketplace-api/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

// GET /api/providers/:providerID/audit-logs
func (h *AuditLogsHandler) List(c *gin.Context) {
	providerID, ok := uintParam(c, "providerID")
	if !ok {
		return
	}

	var logs []models.AuditLog
	if err := h.db.
		Where("provider_id = ?", providerID).
		Order("created_at DESC").
		Limit(200).
		Find(&logs).Error; err != nil {
		httperr.Internal(c, "failed_to_list_audit_logs", "Erro ao listar auditoria.")
		return
	}

	httpresp.List(c, logs)
}
