package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/Allirose140/SmartStackPro/internal/adapters/http/handlers"
	"github.com/Allirose140/SmartStackPro/internal/core/dto"
	"github.com/Allirose140/SmartStackPro/internal/core/service"
	"github.com/Allirose140/SmartStackPro/internal/core/serviceerrors"
)

type ConfigurationController struct {
	inventoryService *service.InventoryService
}

func NewConfigurationController(inventoryService *service.InventoryService) *ConfigurationController {
	return &ConfigurationController{inventoryService: inventoryService}
}

type ConfigurationResponse struct {
	LeadTimeDays int     `json:"lead_time_days"`
	ServiceLevel float64 `json:"service_level"`
}

// Get godoc
// @Summary     Current planning configuration
// @Tags        configuration
// @Produce     json
// @Success     200 {object} ConfigurationResponse
// @Router      /api/v1/inventory/config [get]
func (cc *ConfigurationController) Get(c *gin.Context) {
	c.JSON(http.StatusOK, ConfigurationResponse{
		LeadTimeDays: cc.inventoryService.DefaultLeadTimeDays(),
		ServiceLevel: cc.inventoryService.DefaultServiceLevel(),
	})
}

// Update godoc
// @Summary     Update planning configuration
// @Description Sets the default lead time and service level; values outside the valid range are clamped
// @Tags        configuration
// @Accept      json
// @Produce     json
// @Param       request body     dto.ConfigRequest true "Configuration"
// @Success     200     {object} ConfigurationResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Router      /api/v1/inventory/config [put]
func (cc *ConfigurationController) Update(c *gin.Context) {
	var request dto.ConfigRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}

	if request.LeadTimeDays != 0 {
		cc.inventoryService.SetDefaultLeadTimeDays(request.LeadTimeDays)
	}
	if request.ServiceLevel != 0 {
		cc.inventoryService.SetDefaultServiceLevel(request.ServiceLevel)
	}

	c.JSON(http.StatusOK, ConfigurationResponse{
		LeadTimeDays: cc.inventoryService.DefaultLeadTimeDays(),
		ServiceLevel: cc.inventoryService.DefaultServiceLevel(),
	})
}
