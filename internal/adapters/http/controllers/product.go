package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/Allirose140/SmartStackPro/internal/adapters/http/handlers"
	"github.com/Allirose140/SmartStackPro/internal/core/domain"
	"github.com/Allirose140/SmartStackPro/internal/core/dto"
	"github.com/Allirose140/SmartStackPro/internal/core/service"
	"github.com/Allirose140/SmartStackPro/internal/core/serviceerrors"
)

type ProductController struct {
	inventoryService *service.InventoryService
}

type ProductResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	CurrentStock  int       `json:"current_stock"`
	MinThreshold  int       `json:"min_threshold"`
	UnitCost      float64   `json:"unit_cost"`
	Supplier      string    `json:"supplier"`
	Status        string    `json:"status"`
	TotalValue    float64   `json:"total_value"`
	LastRestocked time.Time `json:"last_restocked"`
	CreatedAt     time.Time `json:"created_at"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func NewProductResponse(product *domain.Product) ProductResponse {
	return ProductResponse{
		ID:            int64(product.ID),
		Name:          product.Name,
		Category:      product.Category,
		CurrentStock:  product.CurrentStock,
		MinThreshold:  product.MinThreshold,
		UnitCost:      product.UnitCost,
		Supplier:      product.Supplier,
		Status:        product.StockStatus(),
		TotalValue:    product.TotalValue(),
		LastRestocked: product.LastRestocked,
		CreatedAt:     product.CreatedAt,
	}
}

func NewProductListResponse(products []*domain.Product) []ProductResponse {
	response := make([]ProductResponse, len(products))
	for i, product := range products {
		response[i] = NewProductResponse(product)
	}
	return response
}

// parseProductID resolves the :id path parameter.
func parseProductID(c *gin.Context) (domain.ID, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid product ID"))
		return 0, false
	}
	return domain.ID(id), true
}

func NewProductController(inventoryService *service.InventoryService) *ProductController {
	return &ProductController{inventoryService: inventoryService}
}

// CreateProduct godoc
// @Summary     Create a product
// @Description Registers a new product, recording any initial stock as a restock transaction
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       request body     dto.CreateProductRequest true "Product data"
// @Success     201     {object} ProductResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     500     {object} handlers.ErrorResponse
// @Router      /api/v1/inventory/products [post]
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var request dto.CreateProductRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	product, err := pc.inventoryService.AddProduct(c.Request.Context(), &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewProductResponse(product))
}

// GetAll godoc
// @Summary     List all products
// @Description Returns all registered products
// @Tags        products
// @Produce     json
// @Success     200 {array} ProductResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/inventory/products [get]
func (pc *ProductController) GetAll(c *gin.Context) {
	products, err := pc.inventoryService.GetAllProducts(c.Request.Context())
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewProductListResponse(products))
}

// GetByID godoc
// @Summary     Get product by ID
// @Description Returns a single product
// @Tags        products
// @Produce     json
// @Param       id  path     int true "Product ID"
// @Success     200 {object} ProductResponse
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Router      /api/v1/inventory/products/{id} [get]
func (pc *ProductController) GetByID(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		return
	}
	product, err := pc.inventoryService.GetProduct(c.Request.Context(), id)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewProductResponse(product))
}

// UpdateProduct godoc
// @Summary     Update a product
// @Description Replaces the product's details and records an audit entry
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       id      path     int                      true "Product ID"
// @Param       request body     dto.UpdateProductRequest true "Product data"
// @Success     200     {object} ProductResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     404     {object} handlers.ErrorResponse
// @Router      /api/v1/inventory/products/{id} [put]
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		return
	}
	var request dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}

	product, err := pc.inventoryService.GetProduct(c.Request.Context(), id)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	product.Name = request.Name
	product.Category = request.Category
	product.CurrentStock = request.CurrentStock
	product.MinThreshold = request.MinThreshold
	product.UnitCost = request.UnitCost
	product.Supplier = request.Supplier

	if err := pc.inventoryService.UpdateProduct(c.Request.Context(), product); err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewProductResponse(product))
}

// DeleteProduct godoc
// @Summary     Delete a product
// @Description Removes a product; refused while it has recent transactions
// @Tags        products
// @Produce     json
// @Param       id  path     int true "Product ID"
// @Success     200 {object} MessageResponse
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Failure     409 {object} handlers.ErrorResponse
// @Router      /api/v1/inventory/products/{id} [delete]
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		return
	}
	if err := pc.inventoryService.DeleteProduct(c.Request.Context(), id); err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Product deleted successfully"})
}

// GetByCategory godoc
// @Summary     List products by category
// @Description Returns the products in a category, matched case-insensitively
// @Tags        products
// @Produce     json
// @Param       category path  string true "Category"
// @Success     200 {array} ProductResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/inventory/products/category/{category} [get]
func (pc *ProductController) GetByCategory(c *gin.Context) {
	products, err := pc.inventoryService.GetProductsByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewProductListResponse(products))
}

// Search godoc
// @Summary     Search products by name
// @Description Case-insensitive substring search over product names
// @Tags        products
// @Produce     json
// @Param       name query    string true "Search term"
// @Success     200  {array}  ProductResponse
// @Failure     400  {object} handlers.ErrorResponse
// @Router      /api/v1/inventory/products/search [get]
func (pc *ProductController) Search(c *gin.Context) {
	term := c.Query("name")
	if term == "" {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("name query parameter is required"))
		return
	}
	products, err := pc.inventoryService.SearchProductsByName(c.Request.Context(), term)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewProductListResponse(products))
}

// GetLowStock godoc
// @Summary     List low-stock products
// @Description Returns products at or below their minimum threshold, most urgent first
// @Tags        products
// @Produce     json
// @Success     200 {array} ProductResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/inventory/products/low-stock [get]
func (pc *ProductController) GetLowStock(c *gin.Context) {
	products, err := pc.inventoryService.GetLowStockProducts(c.Request.Context())
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewProductListResponse(products))
}

// GetOutOfStock godoc
// @Summary     List out-of-stock products
// @Tags        products
// @Produce     json
// @Success     200 {array} ProductResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/inventory/products/out-of-stock [get]
func (pc *ProductController) GetOutOfStock(c *gin.Context) {
	products, err := pc.inventoryService.GetOutOfStockProducts(c.Request.Context())
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewProductListResponse(products))
}

// Categories godoc
// @Summary     List distinct categories
// @Tags        products
// @Produce     json
// @Success     200 {array} string
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/inventory/categories [get]
func (pc *ProductController) Categories(c *gin.Context) {
	categories, err := pc.inventoryService.Categories(c.Request.Context())
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// Suppliers godoc
// @Summary     List distinct suppliers
// @Tags        products
// @Produce     json
// @Success     200 {array} string
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/inventory/suppliers [get]
func (pc *ProductController) Suppliers(c *gin.Context) {
	suppliers, err := pc.inventoryService.Suppliers(c.Request.Context())
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, suppliers)
}
