package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Allirose140/SmartStackPro/internal/adapters/clock"
	"github.com/Allirose140/SmartStackPro/internal/adapters/config"
	"github.com/Allirose140/SmartStackPro/internal/adapters/http"
	"github.com/Allirose140/SmartStackPro/internal/adapters/http/controllers"
	"github.com/Allirose140/SmartStackPro/internal/adapters/memory"
	"github.com/Allirose140/SmartStackPro/internal/adapters/outbox"
	"github.com/Allirose140/SmartStackPro/internal/adapters/rabbitmq"
	"github.com/Allirose140/SmartStackPro/internal/adapters/redis"
	"github.com/Allirose140/SmartStackPro/internal/core/dto"
	"github.com/Allirose140/SmartStackPro/internal/core/logger"
	"github.com/Allirose140/SmartStackPro/internal/core/service"

	_ "github.com/Allirose140/SmartStackPro/docs"
)

// @title       SmartStackPro API
// @version     1.0
// @description Inventory ledger and predictive restocking API

// @host     localhost:8080
// @BasePath /

//go:generate swag init -d ../.. -g cmd/http/main.go -o ../../docs --parseInternal

func main() {
	// initialize config and logger
	cfg := config.NewConfig()
	if err := logger.Initialize(cfg.Logger.Endpoint, cfg.Logger.ServiceName, cfg.Logger.IsProduction); err != nil {
		// logger not available yet, fall back to stderr
		fmt.Println("failed to initialize logger: " + err.Error())
		os.Exit(1)
	}

	// cancellable context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// initialize redis connection
	redisClient, err := redis.NewConnection(cfg.Redis)
	if err != nil {
		logger.Fatal(ctx, "Failed to connect to Redis", err, nil)
	}
	defer redisClient.Close()
	logger.Info(ctx, "Connected to Redis", nil)

	// initialize rabbitmq connection
	rabbitBroker, err := rabbitmq.NewRabbitMQAdapter(cfg.RabbitMQ)
	if err != nil {
		logger.Fatal(ctx, "Failed to connect to RabbitMQ", err, nil)
	}
	defer rabbitBroker.Close()
	logger.Info(ctx, "Connected to RabbitMQ", nil)

	// in-memory registry and ledger
	systemClock := clock.System()
	productRepository := memory.NewProductRepository()
	ledgerRepository := memory.NewLedgerRepository(systemClock)
	outboxRepository := memory.NewOutboxRepository()

	// caches and rate limiter
	idempotencyCache := redis.NewCache[service.IdempotencyEntry[dto.StockOperationResult]](redisClient, "idempotency-cache")
	rateLimiter := redis.NewRateLimiter(redisClient)

	// alerts are staged in the outbox; the handler drains them to rabbitmq
	alertBroker := outbox.NewBroker(outboxRepository)
	outboxHandler := outbox.NewHandler(outboxRepository, rabbitBroker, cfg.Outbox)
	go outboxHandler.Start(ctx)
	logger.Info(ctx, "Outbox handler started", map[string]any{"interval": cfg.Outbox.Interval.String(), "batch_size": cfg.Outbox.BatchSize})

	// services
	analyticsService := service.NewAnalyticsService(productRepository, ledgerRepository, systemClock)
	inventoryService := service.NewInventoryService(
		productRepository,
		ledgerRepository,
		analyticsService,
		alertBroker,
		systemClock,
		cfg.Inventory.LeadTimeDays,
		cfg.Inventory.ServiceLevel,
	)
	idempotencyService := service.NewIdempotencyService(idempotencyCache, 15*time.Minute, 1*time.Second, 10*time.Second)

	if cfg.Inventory.SeedDemoData {
		seedDemoData(ctx, inventoryService)
	}

	// controllers
	productController := controllers.NewProductController(inventoryService)
	stockController := controllers.NewStockController(inventoryService, idempotencyService)
	transactionController := controllers.NewTransactionController(inventoryService)
	analyticsController := controllers.NewAnalyticsController(inventoryService, analyticsService)
	configurationController := controllers.NewConfigurationController(inventoryService)
	healthController := controllers.NewHealthController([]controllers.HealthChecker{
		{Name: "redis", Check: func(ctx context.Context) error { return redisClient.Ping(ctx) }},
		{Name: "rabbitmq", Check: func(ctx context.Context) error { return rabbitBroker.HealthCheck() }},
	})

	// router
	router := http.NewRouter(
		healthController,
		productController,
		stockController,
		transactionController,
		analyticsController,
		configurationController,
		rateLimiter,
	)

	// graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info(ctx, "Received shutdown signal", map[string]interface{}{"signal": sig.String()})
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := logger.Shutdown(shutdownCtx); err != nil {
			fmt.Println("logger shutdown error: " + err.Error())
		}
	}()

	logger.Info(ctx, "Starting HTTP server", map[string]any{"addr": cfg.HTTP.BindInterface + ":" + cfg.HTTP.Port})
	err = router.ListenAndServe(ctx, cfg.HTTP)
	if err != nil {
		logger.Fatal(ctx, "Failed to start HTTP server", err, nil)
	}
}
