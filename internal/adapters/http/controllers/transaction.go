package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/Allirose140/SmartStackPro/internal/adapters/http/handlers"
	"github.com/Allirose140/SmartStackPro/internal/core/domain"
	"github.com/Allirose140/SmartStackPro/internal/core/service"
	"github.com/Allirose140/SmartStackPro/internal/core/serviceerrors"
)

type TransactionController struct {
	inventoryService *service.InventoryService
}

func NewTransactionController(inventoryService *service.InventoryService) *TransactionController {
	return &TransactionController{inventoryService: inventoryService}
}

type TransactionResponse struct {
	ID          int64     `json:"id"`
	ProductID   int64     `json:"product_id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Quantity    int       `json:"quantity"`
	TotalCost   float64   `json:"total_cost"`
	Notes       string    `json:"notes,omitempty"`
	PerformedBy string    `json:"performed_by"`
	Timestamp   time.Time `json:"timestamp"`
}

func NewTransactionResponse(tx *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          int64(tx.ID),
		ProductID:   int64(tx.ProductID),
		Type:        string(tx.Type),
		Description: tx.Type.Description(),
		Quantity:    tx.Quantity,
		TotalCost:   tx.TotalCost,
		Notes:       tx.Notes,
		PerformedBy: tx.PerformedBy,
		Timestamp:   tx.Timestamp,
	}
}

func NewTransactionListResponse(txs []*domain.Transaction) []TransactionResponse {
	response := make([]TransactionResponse, len(txs))
	for i, tx := range txs {
		response[i] = NewTransactionResponse(tx)
	}
	return response
}

// parseDateParam accepts RFC 3339 timestamps and plain dates.
func parseDateParam(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

// History godoc
// @Summary     Product transaction history
// @Description Returns every ledger entry for a product, newest first
// @Tags        transactions
// @Produce     json
// @Param       id  path     int true "Product ID"
// @Success     200 {array}  TransactionResponse
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Router      /api/v1/inventory/products/{id}/transactions [get]
func (tc *TransactionController) History(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		return
	}
	txs, err := tc.inventoryService.TransactionHistory(c.Request.Context(), id)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewTransactionListResponse(txs))
}

// HistoryRange godoc
// @Summary     Product transaction history in a date range
// @Description Returns the ledger entries between start and end, inclusive
// @Tags        transactions
// @Produce     json
// @Param       id    path     int    true "Product ID"
// @Param       start query    string true "Range start (RFC 3339 or YYYY-MM-DD)"
// @Param       end   query    string true "Range end (RFC 3339 or YYYY-MM-DD)"
// @Success     200   {array}  TransactionResponse
// @Failure     400   {object} handlers.ErrorResponse
// @Failure     404   {object} handlers.ErrorResponse
// @Router      /api/v1/inventory/products/{id}/transactions/range [get]
func (tc *TransactionController) HistoryRange(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		return
	}
	start, err := parseDateParam(c.Query("start"))
	if err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("invalid start date"))
		return
	}
	end, err := parseDateParam(c.Query("end"))
	if err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("invalid end date"))
		return
	}

	txs, err := tc.inventoryService.TransactionHistoryRange(c.Request.Context(), id, start, end)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewTransactionListResponse(txs))
}

// All godoc
// @Summary     Full transaction ledger
// @Description Returns every ledger entry across all products, oldest first
// @Tags        transactions
// @Produce     json
// @Success     200 {array} TransactionResponse
// @Router      /api/v1/inventory/transactions [get]
func (tc *TransactionController) All(c *gin.Context) {
	txs, err := tc.inventoryService.AllTransactions(c.Request.Context())
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewTransactionListResponse(txs))
}

// Recent godoc
// @Summary     Recent transactions across all products
// @Description Returns the ledger entries from the trailing N days (default 7)
// @Tags        transactions
// @Produce     json
// @Param       days query    int false "Window in days"
// @Success     200  {array}  TransactionResponse
// @Failure     400  {object} handlers.ErrorResponse
// @Router      /api/v1/inventory/transactions/recent [get]
func (tc *TransactionController) Recent(c *gin.Context) {
	days := 7
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			handlers.HandleError(c, serviceerrors.NewInvalidRequestError("invalid days parameter"))
			return
		}
		days = parsed
	}

	txs, err := tc.inventoryService.RecentTransactions(c.Request.Context(), days)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewTransactionListResponse(txs))
}
