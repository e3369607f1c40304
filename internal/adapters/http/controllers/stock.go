package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/Allirose140/SmartStackPro/internal/adapters/http/handlers"
	"github.com/Allirose140/SmartStackPro/internal/core/domain"
	"github.com/Allirose140/SmartStackPro/internal/core/dto"
	"github.com/Allirose140/SmartStackPro/internal/core/service"
	"github.com/Allirose140/SmartStackPro/internal/core/serviceerrors"
	"github.com/Allirose140/SmartStackPro/internal/core/utils"
)

type StockController struct {
	inventoryService *service.InventoryService
	idempotency      *service.IdempotencyService[dto.StockOperationResult]
}

func NewStockController(
	inventoryService *service.InventoryService,
	idempotency *service.IdempotencyService[dto.StockOperationResult],
) *StockController {
	return &StockController{inventoryService: inventoryService, idempotency: idempotency}
}

type BulkRestockResult struct {
	ProductID int64  `json:"product_id"`
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
}

// respondStockResult maps an operation outcome to the HTTP response:
// refused operations answer 422 so a replayed request sees the same
// status.
func respondStockResult(c *gin.Context, result *dto.StockOperationResult) {
	code := http.StatusOK
	if !result.Success {
		code = http.StatusUnprocessableEntity
	}
	c.JSON(code, result)
}

// runIdempotent wraps a stock mutation with the replay guard keyed by
// the Idempotency-Key header. Without the header the operation runs
// unguarded.
func (sc *StockController) runIdempotent(c *gin.Context, id domain.ID, request any, op func() (*dto.StockOperationResult, error)) {
	key := c.GetHeader("Idempotency-Key")
	if key == "" {
		result, err := op()
		if err != nil {
			handlers.HandleError(c, err)
			return
		}
		respondStockResult(c, result)
		return
	}

	hash := utils.HashJSON(map[string]any{"product_id": id, "payload": request})
	cached, err := sc.idempotency.Claim(c.Request.Context(), key, hash)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	if cached != nil {
		respondStockResult(c, cached)
		return
	}

	result, err := op()
	if err != nil {
		sc.idempotency.Release(c.Request.Context(), key)
		handlers.HandleError(c, err)
		return
	}
	sc.idempotency.Complete(c.Request.Context(), key, hash, result)
	respondStockResult(c, result)
}

// UseStock godoc
// @Summary     Consume stock
// @Description Withdraws units for internal usage; refuses when fewer units are on hand
// @Tags        stock
// @Accept      json
// @Produce     json
// @Param       Idempotency-Key header   string                   false "Idempotency key"
// @Param       id              path     int                      true  "Product ID"
// @Param       request         body     dto.StockOperationRequest true "Usage data"
// @Success     200             {object} dto.StockOperationResult
// @Failure     400             {object} handlers.ErrorResponse
// @Failure     404             {object} handlers.ErrorResponse
// @Failure     422             {object} dto.StockOperationResult
// @Failure     429             {object} handlers.ErrorResponse
// @Router      /api/v1/inventory/products/{id}/use [post]
func (sc *StockController) UseStock(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		return
	}
	var request dto.StockOperationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}

	sc.runIdempotent(c, id, request, func() (*dto.StockOperationResult, error) {
		ok, err := sc.inventoryService.UseStock(c.Request.Context(), id, request.Quantity, request.Notes, request.PerformedBy)
		if err != nil {
			return nil, err
		}
		if !ok {
			return &dto.StockOperationResult{Success: false, Message: "Insufficient stock"}, nil
		}
		return &dto.StockOperationResult{Success: true, Message: "Stock used successfully"}, nil
	})
}

// SellStock godoc
// @Summary     Sell stock
// @Description Withdraws units for a sale, recording the sale price
// @Tags        stock
// @Accept      json
// @Produce     json
// @Param       Idempotency-Key header   string          false "Idempotency key"
// @Param       id              path     int             true  "Product ID"
// @Param       request         body     dto.SaleRequest true  "Sale data"
// @Success     200             {object} dto.StockOperationResult
// @Failure     400             {object} handlers.ErrorResponse
// @Failure     404             {object} handlers.ErrorResponse
// @Failure     422             {object} dto.StockOperationResult
// @Failure     429             {object} handlers.ErrorResponse
// @Router      /api/v1/inventory/products/{id}/sell [post]
func (sc *StockController) SellStock(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		return
	}
	var request dto.SaleRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}

	sc.runIdempotent(c, id, request, func() (*dto.StockOperationResult, error) {
		ok, err := sc.inventoryService.SellStock(c.Request.Context(), id, request.Quantity, request.SalePrice, request.Notes, request.PerformedBy)
		if err != nil {
			return nil, err
		}
		if !ok {
			return &dto.StockOperationResult{Success: false, Message: "Insufficient stock"}, nil
		}
		return &dto.StockOperationResult{Success: true, Message: "Sale recorded successfully"}, nil
	})
}

// Restock godoc
// @Summary     Restock a product
// @Description Adds units, folding the purchase cost into a weighted average unit cost
// @Tags        stock
// @Accept      json
// @Produce     json
// @Param       id      path     int                true "Product ID"
// @Param       request body     dto.RestockRequest true "Restock data"
// @Success     200     {object} MessageResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     404     {object} handlers.ErrorResponse
// @Failure     429     {object} handlers.ErrorResponse
// @Router      /api/v1/inventory/products/{id}/restock [post]
func (sc *StockController) Restock(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		return
	}
	var request dto.RestockRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	if err := sc.inventoryService.RestockProduct(c.Request.Context(), id, request.Quantity, request.TotalCost, request.Notes, request.PerformedBy); err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Product restocked successfully"})
}

// Adjust godoc
// @Summary     Adjust stock to an exact count
// @Description Sets the stock level directly, e.g. after a physical count
// @Tags        stock
// @Accept      json
// @Produce     json
// @Param       id      path     int                   true "Product ID"
// @Param       request body     dto.AdjustmentRequest true "Adjustment data"
// @Success     200     {object} MessageResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     404     {object} handlers.ErrorResponse
// @Failure     429     {object} handlers.ErrorResponse
// @Router      /api/v1/inventory/products/{id}/adjust [post]
func (sc *StockController) Adjust(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		return
	}
	var request dto.AdjustmentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	if err := sc.inventoryService.AdjustStock(c.Request.Context(), id, request.NewQuantity, request.Reason, request.PerformedBy); err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Stock adjusted successfully"})
}

// BulkRestock godoc
// @Summary     Restock multiple products
// @Description Applies restocks item by item; a failed item does not stop the rest
// @Tags        stock
// @Accept      json
// @Produce     json
// @Param       request body     []dto.BulkRestockItem true "Restock items"
// @Success     200     {array}  BulkRestockResult
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     429     {object} handlers.ErrorResponse
// @Router      /api/v1/inventory/products/bulk-restock [post]
func (sc *StockController) BulkRestock(c *gin.Context) {
	var items []dto.BulkRestockItem
	if err := c.ShouldBindJSON(&items); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	if len(items) == 0 {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("at least one item is required"))
		return
	}

	results := make([]BulkRestockResult, len(items))
	for i, item := range items {
		result := BulkRestockResult{ProductID: item.ProductID, Success: true}
		err := sc.inventoryService.RestockProduct(c.Request.Context(), domain.ID(item.ProductID), item.Quantity, item.TotalCost,
			fmt.Sprintf("Bulk restock item %d of %d", i+1, len(items)), "System")
		if err != nil {
			result.Success = false
			result.Error = err.Error()
		}
		results[i] = result
	}
	c.JSON(http.StatusOK, results)
}
