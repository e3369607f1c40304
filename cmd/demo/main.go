// Command demo exercises the inventory engine end to end without any
// external services: in-memory storage, a stub broker and a scripted
// month of warehouse activity, with the analytics printed at the end.
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/Allirose140/SmartStackPro/internal/adapters/clock"
	"github.com/Allirose140/SmartStackPro/internal/adapters/memory"
	"github.com/Allirose140/SmartStackPro/internal/core/domain"
	"github.com/Allirose140/SmartStackPro/internal/core/dto"
	"github.com/Allirose140/SmartStackPro/internal/core/service"
	"github.com/Allirose140/SmartStackPro/internal/core/utils"
)

type printingBroker struct{}

func (printingBroker) Publish(_ context.Context, event domain.Event) error {
	if alert, ok := event.(*domain.ReorderAlertEvent); ok {
		fmt.Printf("  !! REORDER ALERT: %s (stock %d, threshold %d, suggested order %d)\n",
			alert.ProductName, alert.CurrentStock, alert.MinThreshold, alert.SuggestedQuantity)
	}
	return nil
}

func (printingBroker) PublishRaw(context.Context, string, string, []byte) error { return nil }
func (printingBroker) Close() error                                             { return nil }

func main() {
	ctx := context.Background()

	clk := clock.NewFixed(time.Now().AddDate(0, 0, -30))
	products := memory.NewProductRepository()
	ledger := memory.NewLedgerRepository(clk)
	analytics := service.NewAnalyticsService(products, ledger, clk)
	inventory := service.NewInventoryService(products, ledger, analytics, printingBroker{}, clk, 7, 0.95)
	idempotency := service.NewIdempotencyService[dto.StockOperationResult](
		memory.NewCache[service.IdempotencyEntry[dto.StockOperationResult]](clk),
		time.Hour, 50*time.Millisecond, 5*time.Second,
	)

	fmt.Println("=== Seeding catalog (30 days ago) ===")
	laptop := mustCreate(ctx, inventory, &dto.CreateProductRequest{
		Name: "MacBook Pro 14\"", Category: "Electronics", InitialStock: 25,
		MinThreshold: 5, UnitCost: 1899.99, Supplier: "TechSource Inc",
	})
	mouse := mustCreate(ctx, inventory, &dto.CreateProductRequest{
		Name: "Wireless Mouse", Category: "Electronics", InitialStock: 60,
		MinThreshold: 15, UnitCost: 24.99, Supplier: "TechSource Inc",
	})
	chair := mustCreate(ctx, inventory, &dto.CreateProductRequest{
		Name: "Office Chair", Category: "Furniture", InitialStock: 40,
		MinThreshold: 8, UnitCost: 189.50, Supplier: "ComfortSeating Co",
	})

	fmt.Println("\n=== Replaying a month of activity ===")
	for day := 1; day <= 30; day++ {
		clk.Advance(24 * time.Hour)

		if day%3 == 0 {
			use(ctx, inventory, laptop.ID, 2, "Workstation deployment")
		}
		if day%2 == 0 {
			use(ctx, inventory, mouse.ID, 3, "Desk setup")
		}
		if day%10 == 0 {
			use(ctx, inventory, chair.ID, 1, "New hire")
		}
	}

	fmt.Println("\n=== Retried restock (one delivery, two submissions) ===")
	restock := func() {
		const key = "delivery-4711"
		hash := utils.HashJSON(map[string]any{"product_id": mouse.ID, "quantity": 50})

		if cached, err := idempotency.Claim(ctx, key, hash); err != nil {
			fmt.Printf("  claim failed: %v\n", err)
			return
		} else if cached != nil {
			fmt.Printf("  replayed: %s\n", cached.Message)
			return
		}
		if err := inventory.RestockProduct(ctx, mouse.ID, 50, 1100.0, "Monthly delivery", "Demo"); err != nil {
			idempotency.Release(ctx, key)
			fmt.Printf("  restock failed: %v\n", err)
			return
		}
		idempotency.Complete(ctx, key, hash, &dto.StockOperationResult{Success: true, Message: "Stock restocked successfully"})
		fmt.Println("  restocked 50 units")
	}
	restock()
	restock()
	if p, err := inventory.GetProduct(ctx, mouse.ID); err == nil {
		fmt.Printf("  %s stock after both submissions: %d\n", p.Name, p.CurrentStock)
	}

	fmt.Println("\n=== Predictions ===")
	for _, p := range []*domain.Product{laptop, mouse, chair} {
		days, err := analytics.PredictDaysUntilReorder(ctx, p.ID)
		if err != nil {
			fmt.Printf("  %s: prediction failed: %v\n", p.Name, err)
			continue
		}
		quantity, _ := analytics.SuggestReorderQuantity(ctx, p.ID)
		if days == domain.NoUsageData {
			fmt.Printf("  %-20s no usage data\n", p.Name)
			continue
		}
		fmt.Printf("  %-20s ~%d days until reorder, suggested order %d\n", p.Name, days, quantity)
	}

	fmt.Println("\n=== Inventory report ===")
	report, err := analytics.GenerateReport(ctx)
	if err != nil {
		fmt.Printf("report failed: %v\n", err)
		return
	}
	fmt.Printf("  Products: %d, total value $%.2f\n", report.TotalProducts, report.TotalValue)
	fmt.Printf("  Low stock: %d, out of stock: %d\n", report.LowStockCount, report.OutOfStockCount)
	fmt.Printf("  Needing reorder: %d\n", len(report.ProductsNeedingReorder))
	for _, cv := range report.TopCategories {
		fmt.Printf("  Category %-15s $%.2f\n", cv.Category, cv.Value)
	}
	for description, units := range report.RecentActivity {
		fmt.Printf("  Last 7 days: %-20s %d units\n", description, units)
	}
	fmt.Printf("  Average turnover: %.1f days\n", report.AverageTurnoverDays)
}

func mustCreate(ctx context.Context, inventory *service.InventoryService, req *dto.CreateProductRequest) *domain.Product {
	product, err := inventory.AddProduct(ctx, req)
	if err != nil {
		panic(err)
	}
	fmt.Printf("  + %s (%d units from %s)\n", product.Name, product.CurrentStock, product.Supplier)
	return product
}

func use(ctx context.Context, inventory *service.InventoryService, id domain.ID, quantity int, notes string) {
	if ok, err := inventory.UseStock(ctx, id, quantity, notes, "Demo"); err != nil || !ok {
		fmt.Printf("  usage of %d units refused (product %d, err=%v)\n", quantity, id, err)
	}
}
