package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VittaServices/marketplace-api/internal/httperr"
	"github.com/VittaServices/marketplace-api/internal/httpresp"
	"github.com/VittaServices/marketplace-api/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

type ServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Active      *bool   `json:"active"`
}

// GET /api/providers/:providerID/services
func (h *ServiceHandler) List(c *gin.Context) {
	providerID, ok := uintParam(c, "providerID")
	if !ok {
		return
	}

	var services []models.Service
	if err := h.db.
		Where("provider_id = ?", providerID).
		Order("name ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	httpresp.List(c, services)
}

// POST /api/providers/:providerID/services
func (h *ServiceHandler) Create(c *gin.Context) {
	providerID, ok := uintParam(c, "providerID")
	if !ok {
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	service := models.Service{
		ProviderID:  providerID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Active:      true,
	}
	if req.Active != nil {
		service.Active = *req.Active
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Erro ao criar serviço.")
		return
	}

	httpresp.Created(c, service)
}

// PATCH /api/providers/:providerID/services/:serviceID
func (h *ServiceHandler) Update(c *gin.Context) {
	providerID, ok := uintParam(c, "providerID")
	if !ok {
		return
	}
	serviceID, ok := uintParam(c, "serviceID")
	if !ok {
		return
	}

	var service models.Service
	if err := h.db.
		Where("id = ? AND provider_id = ?", serviceID, providerID).
		First(&service).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	service.Name = req.Name
	service.Description = req.Description
	service.Price = req.Price
	service.Category = req.Category
	if req.Active != nil {
		service.Active = *req.Active
	}

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Erro ao atualizar serviço.")
		return
	}

	httpresp.OK(c, service)
}
