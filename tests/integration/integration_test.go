package integration_test

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/Allirose140/SmartStackPro/internal/adapters/clock"
	adaptconfig "github.com/Allirose140/SmartStackPro/internal/adapters/config"
	"github.com/Allirose140/SmartStackPro/internal/adapters/memory"
	"github.com/Allirose140/SmartStackPro/internal/adapters/outbox"
	adaptrabbitmq "github.com/Allirose140/SmartStackPro/internal/adapters/rabbitmq"
	adaptredis "github.com/Allirose140/SmartStackPro/internal/adapters/redis"
	"github.com/Allirose140/SmartStackPro/internal/core/domain"
	"github.com/Allirose140/SmartStackPro/internal/core/dto"
	"github.com/Allirose140/SmartStackPro/internal/core/service"
	tcrabbit "github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

var (
	redisClient  *adaptredis.Client
	broker       *adaptrabbitmq.RabbitMQAdapter
	amqpEndpoint string
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	// --- Redis ---
	redisContainer, err := tcredis.Run(ctx, "redis:7-alpine")
	if err != nil {
		log.Fatalf("redis container: %v", err)
	}
	redisEndpoint, err := redisContainer.ConnectionString(ctx)
	if err != nil {
		log.Fatalf("redis connection string: %v", err)
	}
	redisClient, err = adaptredis.NewConnection(adaptconfig.RedisConfig{URL: redisEndpoint})
	if err != nil {
		log.Fatalf("redis connect: %v", err)
	}

	// --- RabbitMQ ---
	rabbitContainer, err := tcrabbit.Run(ctx, "rabbitmq:3-management-alpine")
	if err != nil {
		log.Fatalf("rabbitmq container: %v", err)
	}
	amqpEndpoint, err = rabbitContainer.AmqpURL(ctx)
	if err != nil {
		log.Fatalf("rabbitmq amqp url: %v", err)
	}
	broker, err = adaptrabbitmq.NewRabbitMQAdapter(adaptconfig.RabbitMQConfig{
		URL:        amqpEndpoint,
		MaxRetries: 2,
		RetryDelay: 100 * time.Millisecond,
		ExchangeConfigs: []adaptconfig.ExchangeConfig{
			{Name: "exchange.product", Type: "direct", Durable: true, AutoDelete: false},
		},
	})
	if err != nil {
		log.Fatalf("rabbitmq adapter: %v", err)
	}

	code := m.Run()

	_ = broker.Close()
	_ = redisClient.Close()
	_ = redisContainer.Terminate(ctx)
	_ = rabbitContainer.Terminate(ctx)

	os.Exit(code)
}

func setupConsumer(t *testing.T, routingKey string) <-chan amqp.Delivery {
	t.Helper()

	conn, err := amqp.Dial(amqpEndpoint)
	if err != nil {
		t.Fatalf("consumer dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	ch, err := conn.Channel()
	if err != nil {
		t.Fatalf("consumer channel: %v", err)
	}
	t.Cleanup(func() { ch.Close() })

	q, err := ch.QueueDeclare("", false, true, true, false, nil)
	if err != nil {
		t.Fatalf("queue declare: %v", err)
	}
	if err := ch.QueueBind(q.Name, routingKey, "exchange.product", false, nil); err != nil {
		t.Fatalf("queue bind: %v", err)
	}

	msgs, err := ch.Consume(q.Name, "", true, false, false, false, nil)
	if err != nil {
		t.Fatalf("consume: %v", err)
	}
	return msgs
}

func buildServices(t *testing.T, prefix string) (
	*service.InventoryService,
	*service.AnalyticsService,
	*service.IdempotencyService[dto.StockOperationResult],
	*outbox.Handler,
	*clock.Fixed,
) {
	t.Helper()

	clk := clock.NewFixed(time.Now())
	productRepo := memory.NewProductRepository()
	ledgerRepo := memory.NewLedgerRepository(clk)
	outboxRepo := memory.NewOutboxRepository()

	analyticsService := service.NewAnalyticsService(productRepo, ledgerRepo, clk)
	inventoryService := service.NewInventoryService(
		productRepo, ledgerRepo, analyticsService, outbox.NewBroker(outboxRepo), clk, 7, 0.95)

	idempotencyCache := adaptredis.NewCache[service.IdempotencyEntry[dto.StockOperationResult]](redisClient, prefix+"-idemp")
	idempotencyService := service.NewIdempotencyService(idempotencyCache, 5*time.Minute, 500*time.Millisecond, 10*time.Second)

	outboxHandler := outbox.NewHandler(outboxRepo, broker, adaptconfig.OutboxConfig{
		Interval:  100 * time.Millisecond,
		BatchSize: 50,
	})

	return inventoryService, analyticsService, idempotencyService, outboxHandler, clk
}

func TestIntegration_ReorderAlert_FullCycle(t *testing.T) {
	msgs := setupConsumer(t, "product.reorder_alert")

	inventorySvc, _, _, outboxHandler, clk := buildServices(t, "int_full_cycle")
	ctx := context.Background()

	handlerCtx, cancelHandler := context.WithCancel(ctx)
	defer cancelHandler()
	go outboxHandler.Start(handlerCtx)

	product, err := inventorySvc.AddProduct(ctx, &dto.CreateProductRequest{
		Name: "Integration Widget", Category: "Testing", InitialStock: 20,
		MinThreshold: 10, UnitCost: 9.99, Supplier: "Acme Corp",
	})
	if err != nil {
		t.Fatalf("create product: %v", err)
	}

	// Some usage history so the alert carries a prediction.
	clk.Advance(24 * time.Hour)
	if ok, err := inventorySvc.UseStock(ctx, product.ID, 3, "run 1", "tester"); err != nil || !ok {
		t.Fatalf("first usage: ok=%v err=%v", ok, err)
	}
	clk.Advance(24 * time.Hour)

	// 17 -> 9 crosses the threshold and stages the alert.
	if ok, err := inventorySvc.UseStock(ctx, product.ID, 8, "run 2", "tester"); err != nil || !ok {
		t.Fatalf("second usage: ok=%v err=%v", ok, err)
	}

	select {
	case msg := <-msgs:
		var event domain.ReorderAlertEvent
		if err := json.Unmarshal(msg.Body, &event); err != nil {
			t.Fatalf("unmarshal event: %v", err)
		}
		if event.ProductID != product.ID {
			t.Fatalf("event product_id: expected %d, got %d", product.ID, event.ProductID)
		}
		if event.CurrentStock != 9 {
			t.Fatalf("event current_stock: expected 9, got %d", event.CurrentStock)
		}
		if event.MinThreshold != 10 {
			t.Fatalf("event min_threshold: expected 10, got %d", event.MinThreshold)
		}
		if event.SuggestedQuantity < 10 {
			t.Fatalf("event suggested_quantity below minimum order: %d", event.SuggestedQuantity)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("timed out waiting for product.reorder_alert event")
	}
}

func TestIntegration_Idempotency_SingleExecution(t *testing.T) {
	inventorySvc, _, idempotencySvc, _, _ := buildServices(t, "int_idempotency")
	ctx := context.Background()

	product, err := inventorySvc.AddProduct(ctx, &dto.CreateProductRequest{
		Name: "Idemp Widget", Category: "Testing", InitialStock: 100,
		MinThreshold: 5, UnitCost: 2.50, Supplier: "Acme Corp",
	})
	if err != nil {
		t.Fatalf("create product: %v", err)
	}

	key := "use-stock-1"
	hash := "payload-hash"

	// First request claims and executes.
	cached, err := idempotencySvc.Claim(ctx, key, hash)
	if err != nil {
		t.Fatalf("first claim: %v", err)
	}
	if cached != nil {
		t.Fatal("first claim must not return a cached result")
	}
	ok, err := inventorySvc.UseStock(ctx, product.ID, 10, "", "tester")
	if err != nil || !ok {
		t.Fatalf("use stock: ok=%v err=%v", ok, err)
	}
	idempotencySvc.Complete(ctx, key, hash, &dto.StockOperationResult{Success: true, Message: "Stock used successfully"})

	// Replay sees the stored result and skips the operation.
	replayed, err := idempotencySvc.Claim(ctx, key, hash)
	if err != nil {
		t.Fatalf("replay claim: %v", err)
	}
	if replayed == nil || !replayed.Success {
		t.Fatalf("expected the stored result on replay, got %+v", replayed)
	}

	p, _ := inventorySvc.GetProduct(ctx, product.ID)
	if p.CurrentStock != 90 {
		t.Fatalf("expected stock 90 (single deduction), got %d", p.CurrentStock)
	}

	// A different payload under the same key is rejected.
	if _, err := idempotencySvc.Claim(ctx, key, "other-hash"); err == nil {
		t.Fatal("expected error for mismatched payload hash")
	}
}

func TestIntegration_InsufficientStock_NoAlertStaged(t *testing.T) {
	msgs := setupConsumer(t, "product.reorder_alert")

	inventorySvc, _, _, outboxHandler, _ := buildServices(t, "int_low_stock")
	ctx := context.Background()

	handlerCtx, cancelHandler := context.WithCancel(ctx)
	defer cancelHandler()
	go outboxHandler.Start(handlerCtx)

	product, err := inventorySvc.AddProduct(ctx, &dto.CreateProductRequest{
		Name: "Low Stock", Category: "Testing", InitialStock: 2,
		MinThreshold: 1, UnitCost: 5, Supplier: "Acme Corp",
	})
	if err != nil {
		t.Fatalf("create product: %v", err)
	}

	ok, err := inventorySvc.UseStock(ctx, product.ID, 5, "", "tester")
	if err != nil {
		t.Fatalf("use stock: %v", err)
	}
	if ok {
		t.Fatal("expected the operation to be refused")
	}

	unchanged, _ := inventorySvc.GetProduct(ctx, product.ID)
	if unchanged.CurrentStock != 2 {
		t.Fatalf("stock should be unchanged: expected 2, got %d", unchanged.CurrentStock)
	}

	select {
	case msg := <-msgs:
		t.Fatalf("no alert expected for a refused operation, got %s", msg.Body)
	case <-time.After(1 * time.Second):
	}
}

func TestIntegration_RateLimiter(t *testing.T) {
	limiter := adaptredis.NewRateLimiter(redisClient)
	ctx := context.Background()

	key := "int_rate:use-stock"
	limit := 5

	for i := 0; i < limit; i++ {
		allowed, err := limiter.Allow(ctx, key, limit, time.Minute)
		if err != nil {
			t.Fatalf("allow %d: %v", i, err)
		}
		if !allowed {
			t.Fatalf("request %d should be allowed", i)
		}
	}

	allowed, err := limiter.Allow(ctx, key, limit, time.Minute)
	if err != nil {
		t.Fatalf("allow over limit: %v", err)
	}
	if allowed {
		t.Fatal("request over the limit should be refused")
	}
}

func TestIntegration_AnalyticsOverLedger(t *testing.T) {
	inventorySvc, analyticsSvc, _, _, clk := buildServices(t, "int_analytics")
	ctx := context.Background()

	product, err := inventorySvc.AddProduct(ctx, &dto.CreateProductRequest{
		Name: "Analytics Widget", Category: "Testing", InitialStock: 50,
		MinThreshold: 10, UnitCost: 20, Supplier: "Acme Corp",
	})
	if err != nil {
		t.Fatalf("create product: %v", err)
	}

	base := clk.Now()
	for _, daysAhead := range []int{0, 10, 15} {
		clk.Set(base.AddDate(0, 0, daysAhead))
		if ok, err := inventorySvc.UseStock(ctx, product.ID, 5, "", "tester"); err != nil || !ok {
			t.Fatalf("use stock: ok=%v err=%v", ok, err)
		}
	}
	clk.Set(base.AddDate(0, 0, 20))

	days, err := analyticsSvc.PredictDaysUntilReorder(ctx, product.ID)
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if days != 34 {
		t.Fatalf("expected 34 days until reorder, got %d", days)
	}

	stats, err := analyticsSvc.Statistics(ctx)
	if err != nil {
		t.Fatalf("statistics: %v", err)
	}
	if stats.TotalProducts != 1 || stats.TotalStockUnits != 35 {
		t.Fatalf("unexpected statistics: %+v", stats)
	}
}
