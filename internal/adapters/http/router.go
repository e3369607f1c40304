package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/Allirose140/SmartStackPro/internal/adapters/config"
	"github.com/Allirose140/SmartStackPro/internal/adapters/http/controllers"
	"github.com/Allirose140/SmartStackPro/internal/adapters/http/middleware"
)

type Router struct {
	healthController        *controllers.HealthController
	productController       *controllers.ProductController
	stockController         *controllers.StockController
	transactionController   *controllers.TransactionController
	analyticsController     *controllers.AnalyticsController
	configurationController *controllers.ConfigurationController
	rateLimiter             middleware.RateLimiter
}

func NewRouter(
	healthController *controllers.HealthController,
	productController *controllers.ProductController,
	stockController *controllers.StockController,
	transactionController *controllers.TransactionController,
	analyticsController *controllers.AnalyticsController,
	configurationController *controllers.ConfigurationController,
	rateLimiter middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:        healthController,
		productController:       productController,
		stockController:         stockController,
		transactionController:   transactionController,
		analyticsController:     analyticsController,
		configurationController: configurationController,
		rateLimiter:             rateLimiter,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	rl := r.rateLimiter

	apiGroup := router.Group("/api")
	v1Group := apiGroup.Group("/v1")
	{
		v1Group.Use(middleware.LogRequest())
		v1Group.GET("/health", r.healthController.Health)

		inventory := v1Group.Group("/inventory")

		inventory.POST("/products", r.productController.CreateProduct)
		inventory.GET("/products", r.productController.GetAll)
		// Static segments before the :id wildcard.
		inventory.GET("/products/search", r.productController.Search)
		inventory.GET("/products/low-stock", r.productController.GetLowStock)
		inventory.GET("/products/out-of-stock", r.productController.GetOutOfStock)
		inventory.GET("/products/category/:category", r.productController.GetByCategory)
		inventory.GET("/products/reorder-needed", r.analyticsController.ReorderNeeded)
		inventory.POST("/products/bulk-restock", middleware.RateLimit(rl, 5, 1*time.Minute), r.stockController.BulkRestock)
		inventory.GET("/products/:id", r.productController.GetByID)
		inventory.PUT("/products/:id", r.productController.UpdateProduct)
		inventory.DELETE("/products/:id", r.productController.DeleteProduct)

		inventory.POST("/products/:id/use", middleware.RateLimit(rl, 30, 1*time.Minute), r.stockController.UseStock)
		inventory.POST("/products/:id/sell", middleware.RateLimit(rl, 30, 1*time.Minute), r.stockController.SellStock)
		inventory.POST("/products/:id/restock", middleware.RateLimit(rl, 15, 1*time.Minute), r.stockController.Restock)
		inventory.POST("/products/:id/adjust", middleware.RateLimit(rl, 15, 1*time.Minute), r.stockController.Adjust)

		inventory.GET("/products/:id/transactions", r.transactionController.History)
		inventory.GET("/products/:id/transactions/range", r.transactionController.HistoryRange)
		inventory.GET("/transactions", r.transactionController.All)
		inventory.GET("/transactions/recent", r.transactionController.Recent)

		inventory.GET("/products/:id/predict-reorder", r.analyticsController.PredictReorder)
		inventory.GET("/report", r.analyticsController.Report)
		inventory.GET("/statistics", r.analyticsController.Statistics)
		inventory.GET("/dashboard", r.analyticsController.Dashboard)

		inventory.GET("/categories", r.productController.Categories)
		inventory.GET("/suppliers", r.productController.Suppliers)

		inventory.GET("/config", r.configurationController.Get)
		inventory.PUT("/config", r.configurationController.Update)
	}
}

func (r *Router) ListenAndServe(ctx context.Context, config config.HTTPConfig) error {
	engine := gin.Default()
	r.SetupRoutes(engine)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", config.BindInterface, config.Port),
		Handler: engine,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
