package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Allirose140/SmartStackPro/internal/core/domain"
	"github.com/Allirose140/SmartStackPro/internal/core/dto"
	"github.com/Allirose140/SmartStackPro/internal/core/logger"
	"github.com/Allirose140/SmartStackPro/internal/core/port"
	"github.com/Allirose140/SmartStackPro/internal/core/serviceerrors"
)

const deletionQuietDays = 30

// errInsufficientStock aborts a Mutate without touching the product. It
// never escapes UseStock/SellStock: callers see (false, nil).
var errInsufficientStock = errors.New("insufficient stock")

// InventoryService owns the product registry and is the only path that
// changes stock levels. Every mutation appends its ledger entry inside
// the product's critical section, so stock and history move together.
type InventoryService struct {
	products  port.ProductPort
	ledger    port.LedgerPort
	analytics *AnalyticsService
	broker    port.BrokerPort
	clock     port.Clock

	configMu     sync.RWMutex
	leadTimeDays int
	serviceLevel float64
}

func NewInventoryService(
	products port.ProductPort,
	ledger port.LedgerPort,
	analytics *AnalyticsService,
	broker port.BrokerPort,
	clock port.Clock,
	leadTimeDays int,
	serviceLevel float64,
) *InventoryService {
	s := &InventoryService{
		products:  products,
		ledger:    ledger,
		analytics: analytics,
		broker:    broker,
		clock:     clock,
	}
	s.SetDefaultLeadTimeDays(leadTimeDays)
	s.SetDefaultServiceLevel(serviceLevel)
	return s
}

func validateProductData(name, category string, stock, threshold int, cost float64, supplier string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return serviceerrors.NewInvalidRequestError("product name cannot be empty")
	case strings.TrimSpace(category) == "":
		return serviceerrors.NewInvalidRequestError("category cannot be empty")
	case stock < 0:
		return serviceerrors.NewInvalidRequestError("stock cannot be negative")
	case threshold < 0:
		return serviceerrors.NewInvalidRequestError("minimum threshold cannot be negative")
	case cost < 0:
		return serviceerrors.NewInvalidRequestError("unit cost cannot be negative")
	case strings.TrimSpace(supplier) == "":
		return serviceerrors.NewInvalidRequestError("supplier cannot be empty")
	}
	return nil
}

func (s *InventoryService) AddProduct(ctx context.Context, request *dto.CreateProductRequest) (*domain.Product, error) {
	if err := validateProductData(request.Name, request.Category, request.InitialStock,
		request.MinThreshold, request.UnitCost, request.Supplier); err != nil {
		return nil, err
	}

	product := domain.NewProduct(request.Name, request.Category, request.InitialStock,
		request.MinThreshold, request.UnitCost, request.Supplier, s.clock.Now())
	if err := s.products.Create(ctx, product); err != nil {
		logger.Error(ctx, "product: create failed", err, map[string]any{"name": request.Name})
		return nil, err
	}

	if request.InitialStock > 0 {
		_, err := s.ledger.Append(ctx, domain.Transaction{
			ProductID:   product.ID,
			Type:        domain.TransactionRestock,
			Quantity:    request.InitialStock,
			TotalCost:   float64(request.InitialStock) * request.UnitCost,
			Notes:       "Initial stock entry",
			PerformedBy: "System",
		})
		if err != nil {
			logger.Error(ctx, "product: initial stock entry failed", err, map[string]any{"product_id": product.ID})
			return nil, err
		}
	}

	logger.Info(ctx, "Product created", map[string]any{"product_id": product.ID})
	return product, nil
}

func (s *InventoryService) GetProduct(ctx context.Context, id domain.ID) (*domain.Product, error) {
	return s.products.GetByID(ctx, id)
}

func (s *InventoryService) GetAllProducts(ctx context.Context) ([]*domain.Product, error) {
	return s.products.GetAll(ctx)
}

func (s *InventoryService) GetProductsByCategory(ctx context.Context, category string) ([]*domain.Product, error) {
	products, err := s.products.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]*domain.Product, 0)
	for _, p := range products {
		if strings.EqualFold(p.Category, category) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func (s *InventoryService) SearchProductsByName(ctx context.Context, term string) ([]*domain.Product, error) {
	products, err := s.products.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	lower := strings.ToLower(term)
	matched := make([]*domain.Product, 0)
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), lower) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func (s *InventoryService) GetLowStockProducts(ctx context.Context) ([]*domain.Product, error) {
	products, err := s.products.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	low := make([]*domain.Product, 0)
	for _, p := range products {
		if p.IsLowStock() {
			low = append(low, p)
		}
	}
	sort.SliceStable(low, func(i, j int) bool { return low[i].CurrentStock < low[j].CurrentStock })
	return low, nil
}

func (s *InventoryService) GetOutOfStockProducts(ctx context.Context) ([]*domain.Product, error) {
	products, err := s.products.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Product, 0)
	for _, p := range products {
		if p.CurrentStock == 0 {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *InventoryService) UpdateProduct(ctx context.Context, product *domain.Product) error {
	if err := validateProductData(product.Name, product.Category, product.CurrentStock,
		product.MinThreshold, product.UnitCost, product.Supplier); err != nil {
		return err
	}

	if err := s.products.Update(ctx, product); err != nil {
		return err
	}

	_, err := s.ledger.Append(ctx, domain.Transaction{
		ProductID:   product.ID,
		Type:        domain.TransactionAdjustment,
		Quantity:    0,
		Notes:       "Product information updated",
		PerformedBy: "System",
	})
	if err != nil {
		logger.Error(ctx, "product: update audit entry failed", err, map[string]any{"product_id": product.ID})
	}

	logger.Info(ctx, "Product updated", map[string]any{"product_id": product.ID})
	return nil
}

func (s *InventoryService) DeleteProduct(ctx context.Context, id domain.ID) error {
	if _, err := s.products.GetByID(ctx, id); err != nil {
		return err
	}

	history, err := s.ledger.HistoryByProduct(ctx, id)
	if err != nil {
		return err
	}
	cutoff := s.clock.Now().AddDate(0, 0, -deletionQuietDays)
	for _, tx := range history {
		if tx.Timestamp.After(cutoff) {
			return serviceerrors.NewConflictError("cannot delete product with recent transaction history")
		}
	}

	// History is retained: the ledger outlives the product.
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info(ctx, "Product deleted", map[string]any{"product_id": id})
	return nil
}

func (s *InventoryService) UseStock(ctx context.Context, id domain.ID, quantity int, notes, performedBy string) (bool, error) {
	return s.consumeStock(ctx, id, domain.TransactionUsage, quantity, 0, notes, performedBy)
}

func (s *InventoryService) SellStock(ctx context.Context, id domain.ID, quantity int, salePrice float64, notes, performedBy string) (bool, error) {
	return s.consumeStock(ctx, id, domain.TransactionSale, quantity, salePrice, notes, performedBy)
}

func (s *InventoryService) consumeStock(ctx context.Context, id domain.ID, txType domain.TransactionType, quantity int, salePrice float64, notes, performedBy string) (bool, error) {
	if quantity <= 0 {
		return false, serviceerrors.NewInvalidRequestError("quantity must be positive")
	}

	updated, err := s.products.Mutate(ctx, id, func(p *domain.Product) error {
		if p.CurrentStock < quantity {
			return errInsufficientStock
		}
		p.CurrentStock -= quantity

		totalCost := salePrice
		if txType == domain.TransactionUsage {
			totalCost = float64(quantity) * p.UnitCost
		}
		_, err := s.ledger.Append(ctx, domain.Transaction{
			ProductID:   id,
			Type:        txType,
			Quantity:    quantity,
			TotalCost:   totalCost,
			Notes:       notes,
			PerformedBy: performedBy,
		})
		return err
	})
	if errors.Is(err, errInsufficientStock) {
		logger.Warn(ctx, "stock: operation refused, insufficient stock", map[string]any{
			"product_id": id,
			"quantity":   quantity,
		})
		return false, nil
	}
	if err != nil {
		return false, err
	}

	s.checkReorderAlert(ctx, updated)
	return true, nil
}

func (s *InventoryService) RestockProduct(ctx context.Context, id domain.ID, quantity int, totalCost float64, notes, performedBy string) error {
	if quantity <= 0 {
		return serviceerrors.NewInvalidRequestError("quantity must be positive")
	}

	_, err := s.products.Mutate(ctx, id, func(p *domain.Product) error {
		oldStock := p.CurrentStock
		p.CurrentStock += quantity
		p.LastRestocked = s.clock.Now()

		if totalCost > 0 {
			// Stock-weighted average of the old and incoming unit cost.
			p.UnitCost = (float64(oldStock)*p.UnitCost + totalCost) / float64(oldStock+quantity)
		}

		_, err := s.ledger.Append(ctx, domain.Transaction{
			ProductID:   id,
			Type:        domain.TransactionRestock,
			Quantity:    quantity,
			TotalCost:   totalCost,
			Notes:       notes,
			PerformedBy: performedBy,
		})
		return err
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "Product restocked", map[string]any{"product_id": id, "quantity": quantity})
	return nil
}

func (s *InventoryService) AdjustStock(ctx context.Context, id domain.ID, newQuantity int, reason, performedBy string) error {
	if newQuantity < 0 {
		return serviceerrors.NewInvalidRequestError("stock quantity cannot be negative")
	}

	updated, err := s.products.Mutate(ctx, id, func(p *domain.Product) error {
		oldQuantity := p.CurrentStock
		difference := newQuantity - oldQuantity
		if difference < 0 {
			difference = -difference
		}
		p.CurrentStock = newQuantity

		_, err := s.ledger.Append(ctx, domain.Transaction{
			ProductID:   id,
			Type:        domain.TransactionAdjustment,
			Quantity:    difference,
			Notes:       fmt.Sprintf("Stock adjusted from %d to %d. Reason: %s", oldQuantity, newQuantity, reason),
			PerformedBy: performedBy,
		})
		return err
	})
	if err != nil {
		return err
	}

	if newQuantity <= updated.MinThreshold {
		s.checkReorderAlert(ctx, updated)
	}
	return nil
}

// checkReorderAlert emits a reorder event when the product just went low.
// The alert is observable side output, never part of the operation's
// contract: failures are logged and swallowed.
func (s *InventoryService) checkReorderAlert(ctx context.Context, product *domain.Product) {
	if !product.IsLowStock() {
		return
	}

	days, err := s.analytics.PredictDaysUntilReorder(ctx, product.ID)
	if err != nil {
		logger.Error(ctx, "alert: predict failed", err, map[string]any{"product_id": product.ID})
		return
	}
	quantity, err := s.analytics.SuggestReorderQuantity(ctx, product.ID)
	if err != nil {
		logger.Error(ctx, "alert: suggest failed", err, map[string]any{"product_id": product.ID})
		return
	}

	event := domain.NewReorderAlertEvent(product, days, quantity, s.clock.Now())
	if err := s.broker.Publish(ctx, event); err != nil {
		logger.Error(ctx, "alert: publish failed", err, map[string]any{"product_id": product.ID})
		return
	}

	logger.Warn(ctx, "Reorder alert raised", map[string]any{
		"product_id":         product.ID,
		"current_stock":      product.CurrentStock,
		"min_threshold":      product.MinThreshold,
		"days_until_reorder": days,
		"suggested_quantity": quantity,
	})
}

func (s *InventoryService) TransactionHistory(ctx context.Context, id domain.ID) ([]*domain.Transaction, error) {
	if _, err := s.products.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.ledger.HistoryByProduct(ctx, id)
}

func (s *InventoryService) TransactionHistoryRange(ctx context.Context, id domain.ID, start, end time.Time) ([]*domain.Transaction, error) {
	if end.Before(start) {
		return nil, serviceerrors.NewInvalidRequestError("end date must not precede start date")
	}
	if _, err := s.products.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.ledger.HistoryByProductRange(ctx, id, start, end)
}

// AllTransactions returns the whole ledger in insertion order.
func (s *InventoryService) AllTransactions(ctx context.Context) ([]*domain.Transaction, error) {
	return s.ledger.All(ctx)
}

func (s *InventoryService) RecentTransactions(ctx context.Context, days int) ([]*domain.Transaction, error) {
	if days <= 0 {
		return nil, serviceerrors.NewInvalidRequestError("days must be positive")
	}
	return s.ledger.Recent(ctx, days)
}

func (s *InventoryService) Categories(ctx context.Context) ([]string, error) {
	products, err := s.products.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return uniqueSorted(products, func(p *domain.Product) string { return p.Category }), nil
}

func (s *InventoryService) Suppliers(ctx context.Context) ([]string, error) {
	products, err := s.products.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return uniqueSorted(products, func(p *domain.Product) string { return p.Supplier }), nil
}

func uniqueSorted(products []*domain.Product, field func(*domain.Product) string) []string {
	seen := make(map[string]struct{}, len(products))
	values := make([]string, 0, len(products))
	for _, p := range products {
		v := field(p)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

func (s *InventoryService) SetDefaultLeadTimeDays(days int) {
	if days < 1 {
		days = 1
	}
	s.configMu.Lock()
	defer s.configMu.Unlock()
	s.leadTimeDays = days
}

func (s *InventoryService) SetDefaultServiceLevel(level float64) {
	if level < 0.5 {
		level = 0.5
	}
	if level > 0.99 {
		level = 0.99
	}
	s.configMu.Lock()
	defer s.configMu.Unlock()
	s.serviceLevel = level
}

func (s *InventoryService) DefaultLeadTimeDays() int {
	s.configMu.RLock()
	defer s.configMu.RUnlock()
	return s.leadTimeDays
}

func (s *InventoryService) DefaultServiceLevel() float64 {
	s.configMu.RLock()
	defer s.configMu.RUnlock()
	return s.serviceLevel
}
