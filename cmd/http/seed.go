package main

import (
	"context"

	"github.com/Allirose140/SmartStackPro/internal/core/dto"
	"github.com/Allirose140/SmartStackPro/internal/core/logger"
	"github.com/Allirose140/SmartStackPro/internal/core/service"
)

// seedDemoData loads a small catalog with some activity so the
// analytics endpoints have something to chew on right after startup.
func seedDemoData(ctx context.Context, inventory *service.InventoryService) {
	products := []*dto.CreateProductRequest{
		{Name: "MacBook Pro 14\"", Category: "Electronics", InitialStock: 25, MinThreshold: 5, UnitCost: 1899.99, Supplier: "TechSource Inc"},
		{Name: "Wireless Mouse", Category: "Electronics", InitialStock: 150, MinThreshold: 30, UnitCost: 24.99, Supplier: "TechSource Inc"},
		{Name: "Office Chair", Category: "Furniture", InitialStock: 40, MinThreshold: 8, UnitCost: 189.50, Supplier: "ComfortSeating Co"},
		{Name: "Standing Desk", Category: "Furniture", InitialStock: 15, MinThreshold: 3, UnitCost: 449.00, Supplier: "ComfortSeating Co"},
		{Name: "Coffee Beans 1kg", Category: "Pantry", InitialStock: 80, MinThreshold: 20, UnitCost: 18.75, Supplier: "RoastHouse"},
		{Name: "Printer Paper A4", Category: "Office Supplies", InitialStock: 200, MinThreshold: 50, UnitCost: 4.99, Supplier: "PaperWorks Ltd"},
	}

	seeded := 0
	for _, req := range products {
		product, err := inventory.AddProduct(ctx, req)
		if err != nil {
			logger.Error(ctx, "seed: product failed", err, map[string]any{"name": req.Name})
			continue
		}
		seeded++

		// A little usage so predictions and reports are non-trivial.
		switch product.Category {
		case "Electronics":
			_, _ = inventory.UseStock(ctx, product.ID, 3, "Demo usage", "System")
			_, _ = inventory.SellStock(ctx, product.ID, 2, product.UnitCost*1.4*2, "Demo sale", "System")
		case "Pantry", "Office Supplies":
			_, _ = inventory.UseStock(ctx, product.ID, 10, "Demo usage", "System")
		}
	}

	logger.Info(ctx, "Demo data seeded", map[string]any{"products": seeded})
}
