package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/Allirose140/SmartStackPro/internal/adapters/http/handlers"
	"github.com/Allirose140/SmartStackPro/internal/core/domain"
	"github.com/Allirose140/SmartStackPro/internal/core/service"
)

type AnalyticsController struct {
	inventoryService *service.InventoryService
	analyticsService *service.AnalyticsService
}

func NewAnalyticsController(
	inventoryService *service.InventoryService,
	analyticsService *service.AnalyticsService,
) *AnalyticsController {
	return &AnalyticsController{inventoryService: inventoryService, analyticsService: analyticsService}
}

type ReorderPredictionResponse struct {
	ProductID         int64  `json:"product_id"`
	ProductName       string `json:"product_name"`
	DaysUntilReorder  *int   `json:"days_until_reorder"`
	SuggestedQuantity int    `json:"suggested_quantity"`
	HasUsageData      bool   `json:"has_usage_data"`
}

type DashboardResponse struct {
	Statistics             *domain.InventoryStatistics `json:"statistics"`
	LowStockProducts       []ProductResponse           `json:"low_stock_products"`
	ProductsNeedingReorder []ProductResponse           `json:"products_needing_reorder"`
	RecentTransactions     []TransactionResponse       `json:"recent_transactions"`
}

// PredictReorder godoc
// @Summary     Predict days until reorder
// @Description Estimates when the product crosses its threshold and how much to order
// @Tags        analytics
// @Produce     json
// @Param       id  path     int true "Product ID"
// @Success     200 {object} ReorderPredictionResponse
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Router      /api/v1/inventory/products/{id}/predict-reorder [get]
func (ac *AnalyticsController) PredictReorder(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	product, err := ac.inventoryService.GetProduct(ctx, id)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	days, err := ac.analyticsService.PredictDaysUntilReorder(ctx, id)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	quantity, err := ac.analyticsService.SuggestReorderQuantity(ctx, id)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	response := ReorderPredictionResponse{
		ProductID:         int64(product.ID),
		ProductName:       product.Name,
		SuggestedQuantity: quantity,
		HasUsageData:      days != domain.NoUsageData,
	}
	if response.HasUsageData {
		response.DaysUntilReorder = &days
	}
	c.JSON(http.StatusOK, response)
}

// ReorderNeeded godoc
// @Summary     Products needing reorder
// @Description Lists low-stock products and those forecast to go low soon, most urgent first
// @Tags        analytics
// @Produce     json
// @Success     200 {array} ProductResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/inventory/products/reorder-needed [get]
func (ac *AnalyticsController) ReorderNeeded(c *gin.Context) {
	products, err := ac.analyticsService.ProductsNeedingReorder(c.Request.Context())
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewProductListResponse(products))
}

// Report godoc
// @Summary     Inventory health report
// @Description Full report: value by category, recent activity, turnover and slow movers
// @Tags        analytics
// @Produce     json
// @Success     200 {object} domain.InventoryReport
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/inventory/report [get]
func (ac *AnalyticsController) Report(c *gin.Context) {
	report, err := ac.analyticsService.GenerateReport(c.Request.Context())
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// Statistics godoc
// @Summary     Inventory statistics
// @Description Headline totals for the whole inventory
// @Tags        analytics
// @Produce     json
// @Success     200 {object} domain.InventoryStatistics
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/inventory/statistics [get]
func (ac *AnalyticsController) Statistics(c *gin.Context) {
	stats, err := ac.analyticsService.Statistics(c.Request.Context())
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Dashboard godoc
// @Summary     Inventory dashboard
// @Description Statistics, urgent products and the last week of activity in one call
// @Tags        analytics
// @Produce     json
// @Success     200 {object} DashboardResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/inventory/dashboard [get]
func (ac *AnalyticsController) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	stats, err := ac.analyticsService.Statistics(ctx)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	lowStock, err := ac.inventoryService.GetLowStockProducts(ctx)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	needReorder, err := ac.analyticsService.ProductsNeedingReorder(ctx)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	recent, err := ac.inventoryService.RecentTransactions(ctx, 7)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, DashboardResponse{
		Statistics:             stats,
		LowStockProducts:       NewProductListResponse(lowStock),
		ProductsNeedingReorder: NewProductListResponse(needReorder),
		RecentTransactions:     NewTransactionListResponse(recent),
	})
}
