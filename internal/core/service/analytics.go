package service

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/Allirose140/SmartStackPro/internal/core/domain"
	"github.com/Allirose140/SmartStackPro/internal/core/port"
)

const (
	reorderWindowDays = 60
	monthlyWindowDays = 30
	safetyWindowDays  = 90
	turnoverWindowDays = 90
	recentActivityDays = 7

	// Exponential decay constant for usage weighting: a transaction 30
	// days old carries weight 1/e.
	usageDecayDays = 30.0

	// Floor on the adjusted usage rate so near-zero rates do not blow
	// up the day estimate.
	minUsageRate = 0.1

	// Products predicted to cross their threshold within this many days
	// count as needing reorder even before going low.
	reorderSoonDays = 14

	trendMinSamples = 4
	trendClamp      = 0.5

	safetyMinSamples = 3
	safetyZScore     = 1.65 // 95% service level
	safetyLeadWeeks  = 1.0

	turnoverFallbackDays = 365
)

// AnalyticsService derives restocking signals from the ledger. Every
// operation is a pure read over a snapshot taken at entry; nothing here
// mutates the registry or the ledger.
type AnalyticsService struct {
	products port.ProductPort
	ledger   port.LedgerPort
	clock    port.Clock
}

func NewAnalyticsService(products port.ProductPort, ledger port.LedgerPort, clock port.Clock) *AnalyticsService {
	return &AnalyticsService{products: products, ledger: ledger, clock: clock}
}

// daysBetween counts whole elapsed days, truncating partial days.
func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

func weeksBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / (24 * 7))
}

// relevantUsage keeps the stock-reducing transactions for one product
// inside the trailing window.
func relevantUsage(txs []*domain.Transaction, productID domain.ID, windowDays int, now time.Time) []*domain.Transaction {
	cutoff := now.AddDate(0, 0, -windowDays)
	relevant := make([]*domain.Transaction, 0)
	for _, tx := range txs {
		if tx.ProductID == productID && tx.Type.ReducesStock() && tx.Timestamp.After(cutoff) {
			relevant = append(relevant, tx)
		}
	}
	return relevant
}

// weightedDailyUsage estimates units consumed per day, weighting recent
// transactions more heavily via exponential decay.
func weightedDailyUsage(txs []*domain.Transaction, now time.Time) float64 {
	if len(txs) == 0 {
		return 0
	}

	var totalWeightedUsage, totalWeight float64
	earliest := txs[0].Timestamp
	for _, tx := range txs {
		daysAgo := daysBetween(tx.Timestamp, now)
		weight := math.Exp(-float64(daysAgo) / usageDecayDays)
		totalWeightedUsage += float64(tx.Quantity) * weight
		totalWeight += weight

		if tx.Timestamp.Before(earliest) {
			earliest = tx.Timestamp
		}
	}
	if totalWeight == 0 {
		return 0
	}

	daysPeriod := daysBetween(earliest, now)
	if daysPeriod < 1 {
		daysPeriod = 1
	}
	return (totalWeightedUsage / totalWeight) * (float64(len(txs)) / float64(daysPeriod))
}

// usageTrend compares the older and newer halves of the window and
// returns the relative change in mean quantity, clamped to ±trendClamp.
func usageTrend(txs []*domain.Transaction) float64 {
	if len(txs) < trendMinSamples {
		return 0
	}

	ordered := make([]*domain.Transaction, len(txs))
	copy(ordered, txs)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Timestamp.Before(ordered[j].Timestamp)
	})

	mid := len(ordered) / 2
	firstMean := meanQuantity(ordered[:mid])
	secondMean := meanQuantity(ordered[mid:])
	if firstMean == 0 {
		return 0
	}

	trend := (secondMean - firstMean) / firstMean
	return math.Max(-trendClamp, math.Min(trendClamp, trend))
}

func meanQuantity(txs []*domain.Transaction) float64 {
	if len(txs) == 0 {
		return 0
	}
	sum := 0
	for _, tx := range txs {
		sum += tx.Quantity
	}
	return float64(sum) / float64(len(txs))
}

// predictDays is the snapshot form of PredictDaysUntilReorder; txs is
// the full ledger snapshot.
func (s *AnalyticsService) predictDays(p *domain.Product, txs []*domain.Transaction, now time.Time) int {
	relevant := relevantUsage(txs, p.ID, reorderWindowDays, now)
	if len(relevant) == 0 {
		return domain.NoUsageData
	}

	rate := weightedDailyUsage(relevant, now)
	if rate <= 0 {
		return domain.NoUsageData
	}

	adjustedRate := rate * (1 + usageTrend(relevant))
	stockAboveThreshold := p.CurrentStock - p.MinThreshold
	if stockAboveThreshold < 0 {
		stockAboveThreshold = 0
	}
	return int(math.Ceil(float64(stockAboveThreshold) / math.Max(adjustedRate, minUsageRate)))
}

func (s *AnalyticsService) PredictDaysUntilReorder(ctx context.Context, id domain.ID) (int, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	txs, err := s.ledger.All(ctx)
	if err != nil {
		return 0, err
	}
	return s.predictDays(product, txs, s.clock.Now()), nil
}

// weeklyUsage buckets quantities into whole-week bins from the earliest
// relevant transaction to now.
func weeklyUsage(txs []*domain.Transaction, now time.Time) []float64 {
	if len(txs) == 0 {
		return nil
	}

	start := txs[0].Timestamp
	for _, tx := range txs {
		if tx.Timestamp.Before(start) {
			start = tx.Timestamp
		}
	}

	bins := make([]float64, weeksBetween(start, now)+1)
	for _, tx := range txs {
		week := weeksBetween(start, tx.Timestamp)
		if week >= 0 && week < len(bins) {
			bins[week] += float64(tx.Quantity)
		}
	}
	return bins
}

// safetyStock covers demand variability over the lead time: z-score
// times the population standard deviation of weekly demand.
func safetyStock(p *domain.Product, usage []*domain.Transaction, now time.Time) float64 {
	if len(usage) < safetyMinSamples {
		return float64(p.MinThreshold) * 0.5
	}

	bins := weeklyUsage(usage, now)
	var mean float64
	for _, b := range bins {
		mean += b
	}
	mean /= float64(len(bins))

	var variance float64
	for _, b := range bins {
		variance += (b - mean) * (b - mean)
	}
	variance /= float64(len(bins))

	return safetyZScore * math.Sqrt(variance) * math.Sqrt(safetyLeadWeeks)
}

func (s *AnalyticsService) suggestQuantity(p *domain.Product, txs []*domain.Transaction, now time.Time) int {
	monthlyUsage := 0
	for _, tx := range relevantUsage(txs, p.ID, monthlyWindowDays, now) {
		monthlyUsage += tx.Quantity
	}
	safety := safetyStock(p, relevantUsage(txs, p.ID, safetyWindowDays, now), now)

	// Target two and a half months of supply on top of safety stock.
	targetStock := float64(monthlyUsage)*2.5 + safety

	minimumOrder := p.MinThreshold
	if minimumOrder < 10 {
		minimumOrder = 10
	}
	suggested := int(math.Ceil(targetStock - float64(p.CurrentStock)))
	if suggested < minimumOrder {
		return minimumOrder
	}
	return suggested
}

func (s *AnalyticsService) SuggestReorderQuantity(ctx context.Context, id domain.ID) (int, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	txs, err := s.ledger.All(ctx)
	if err != nil {
		return 0, err
	}
	return s.suggestQuantity(product, txs, s.clock.Now()), nil
}

func (s *AnalyticsService) needingReorder(products []*domain.Product, txs []*domain.Transaction, now time.Time) []*domain.Product {
	days := make(map[domain.ID]int, len(products))
	need := make([]*domain.Product, 0)
	for _, p := range products {
		days[p.ID] = s.predictDays(p, txs, now)
		if p.IsLowStock() || days[p.ID] <= reorderSoonDays {
			need = append(need, p)
		}
	}

	// Low-stock products first, then by predicted days ascending.
	sort.SliceStable(need, func(i, j int) bool {
		li, lj := need[i].IsLowStock(), need[j].IsLowStock()
		if li != lj {
			return li
		}
		return days[need[i].ID] < days[need[j].ID]
	})
	return need
}

func (s *AnalyticsService) ProductsNeedingReorder(ctx context.Context) ([]*domain.Product, error) {
	products, err := s.products.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	txs, err := s.ledger.All(ctx)
	if err != nil {
		return nil, err
	}
	return s.needingReorder(products, txs, s.clock.Now()), nil
}

func topCategoriesByValue(products []*domain.Product) []domain.CategoryValue {
	values := make(map[string]float64)
	order := make([]string, 0)
	for _, p := range products {
		if _, ok := values[p.Category]; !ok {
			order = append(order, p.Category)
		}
		values[p.Category] += p.TotalValue()
	}

	firstSeen := make(map[string]int, len(order))
	for i, c := range order {
		firstSeen[c] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		if values[order[i]] != values[order[j]] {
			return values[order[i]] > values[order[j]]
		}
		return firstSeen[order[i]] < firstSeen[order[j]]
	})

	if len(order) > 5 {
		order = order[:5]
	}
	top := make([]domain.CategoryValue, len(order))
	for i, c := range order {
		top[i] = domain.CategoryValue{Category: c, Value: values[c]}
	}
	return top
}

func recentActivity(txs []*domain.Transaction, now time.Time) map[string]int {
	cutoff := now.AddDate(0, 0, -recentActivityDays)
	activity := make(map[string]int)
	for _, tx := range txs {
		if tx.Timestamp.After(cutoff) {
			activity[tx.Type.Description()] += tx.Quantity
		}
	}
	return activity
}

func (s *AnalyticsService) averageTurnoverDays(products []*domain.Product, txs []*domain.Transaction, now time.Time) float64 {
	if len(products) == 0 {
		return turnoverFallbackDays
	}

	var total float64
	for _, p := range products {
		usage := relevantUsage(txs, p.ID, turnoverWindowDays, now)
		if len(usage) == 0 || p.CurrentStock == 0 {
			total += turnoverFallbackDays
			continue
		}
		rate := weightedDailyUsage(usage, now)
		if rate > 0 {
			total += float64(p.CurrentStock) / rate
		} else {
			total += turnoverFallbackDays
		}
	}
	return total / float64(len(products))
}

func (s *AnalyticsService) slowMovers(products []*domain.Product, txs []*domain.Transaction, now time.Time) []*domain.Product {
	slow := make([]*domain.Product, 0)
	for _, p := range products {
		used := 0
		for _, tx := range relevantUsage(txs, p.ID, turnoverWindowDays, now) {
			used += tx.Quantity
		}
		monthlyUsage := float64(used) / 3.0
		if monthlyUsage < float64(p.CurrentStock)*0.1 {
			slow = append(slow, p)
		}
	}
	return slow
}

// GenerateReport computes the full inventory health report over one
// snapshot pair; "now" is read once so the report is internally
// consistent.
func (s *AnalyticsService) GenerateReport(ctx context.Context) (*domain.InventoryReport, error) {
	products, err := s.products.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	txs, err := s.ledger.All(ctx)
	if err != nil {
		return nil, err
	}
	now := s.clock.Now()

	report := &domain.InventoryReport{
		ReportDate:    now,
		TotalProducts: len(products),
	}
	for _, p := range products {
		report.TotalValue += p.TotalValue()
		if p.IsLowStock() {
			report.LowStockCount++
		}
		if p.CurrentStock == 0 {
			report.OutOfStockCount++
		}
	}

	report.ProductsNeedingReorder = s.needingReorder(products, txs, now)
	report.TopCategories = topCategoriesByValue(products)
	report.RecentActivity = recentActivity(txs, now)
	report.AverageTurnoverDays = s.averageTurnoverDays(products, txs, now)
	report.SlowMovingProducts = s.slowMovers(products, txs, now)
	return report, nil
}

func (s *AnalyticsService) Statistics(ctx context.Context) (*domain.InventoryStatistics, error) {
	products, err := s.products.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	txs, err := s.ledger.All(ctx)
	if err != nil {
		return nil, err
	}
	now := s.clock.Now()

	stats := &domain.InventoryStatistics{TotalProducts: len(products)}
	categories := make(map[string]struct{})
	for _, p := range products {
		stats.TotalValue += p.TotalValue()
		stats.TotalStockUnits += p.CurrentStock
		if p.IsLowStock() {
			stats.LowStockCount++
		}
		if p.CurrentStock == 0 {
			stats.OutOfStockCount++
		}
		categories[p.Category] = struct{}{}
	}
	stats.CategoriesCount = len(categories)

	cutoff := now.AddDate(0, 0, -recentActivityDays)
	for _, tx := range txs {
		if tx.Timestamp.After(cutoff) {
			stats.RecentTransactionsCount++
		}
	}
	return stats, nil
}
