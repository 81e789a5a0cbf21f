package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"respresso/internal/domain/entities"
	"respresso/internal/usecase/interfaces"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var ErrInvalidDateRange = errors.New("invalid date range")

const (
	unknownProductName  = "Unknown"
	defaultCategoryName = "UNCATEGORIZED"
	defaultTrendDays    = 7
	topProductsLimit    = 5
	dayKeyFormat        = "2006-01-02"
)

// IReportUseCase exposes the reporting/aggregation engine.
//
// Every call recomputes from the record store; results are plain values,
// never cached.

type IReportUseCase interface {
	ComputeStats(ctx context.Context, from, to time.Time, staffID string) (entities.PeriodStats, error)
	ComputeTrend(ctx context.Context, days int) (entities.Analytics, error)
	DashboardStats(ctx context.Context) (entities.DashboardStats, error)
}

type ReportUseCase struct {
	orderRepo   interfaces.IOrderRepository
	sessionRepo interfaces.ISessionRepository
	debtRepo    interfaces.IDebtPaymentRepository
	invRepo     interfaces.IInventoryLogRepository
	productRepo interfaces.IProductRepository
	userRepo    interfaces.IUserRepository
	logger      *zap.Logger

	// now is swapped in tests to pin the trend window.
	now func() time.Time
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(
	orderRepo interfaces.IOrderRepository,
	sessionRepo interfaces.ISessionRepository,
	debtRepo interfaces.IDebtPaymentRepository,
	invRepo interfaces.IInventoryLogRepository,
	productRepo interfaces.IProductRepository,
	userRepo interfaces.IUserRepository,
	logger *zap.Logger,
) *ReportUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportUseCase{
		orderRepo:   orderRepo,
		sessionRepo: sessionRepo,
		debtRepo:    debtRepo,
		invRepo:     invRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		logger:      logger,
		now:         time.Now,
	}
}

// ComputeStats folds the four record streams that fall inside the inclusive
// [from, to] date range (normalized to local start/end of day) into one
// PeriodStats snapshot. Any fetch failure aborts the whole computation with
// no partial result.
//
// When staffID is set, orders and sessions are filtered by staff identity
// while debt payments and inventory logs are filtered by the client/acting
// user. The asymmetry is long-standing observed behavior and is kept as is.
func (u *ReportUseCase) ComputeStats(ctx context.Context, from, to time.Time, staffID string) (entities.PeriodStats, error) {
	if from.IsZero() || to.IsZero() || from.After(to) {
		return entities.PeriodStats{}, ErrInvalidDateRange
	}

	start := startOfDay(from)
	end := endOfDay(to)

	orders, err := u.orderRepo.ListInRange(ctx, start, end, staffID)
	if err != nil {
		u.logger.Error("failed to fetch orders for period stats", zap.Error(err), zap.Time("from", start), zap.Time("to", end))
		return entities.PeriodStats{}, fmt.Errorf("fetch orders: %w", err)
	}
	sessions, err := u.sessionRepo.ListInRange(ctx, start, end, staffID)
	if err != nil {
		u.logger.Error("failed to fetch sessions for period stats", zap.Error(err), zap.Time("from", start), zap.Time("to", end))
		return entities.PeriodStats{}, fmt.Errorf("fetch sessions: %w", err)
	}
	debtPayments, err := u.debtRepo.ListInRange(ctx, start, end, staffID)
	if err != nil {
		u.logger.Error("failed to fetch debt payments for period stats", zap.Error(err), zap.Time("from", start), zap.Time("to", end))
		return entities.PeriodStats{}, fmt.Errorf("fetch debt payments: %w", err)
	}
	logs, err := u.invRepo.ListInRange(ctx, start, end, staffID)
	if err != nil {
		u.logger.Error("failed to fetch inventory logs for period stats", zap.Error(err), zap.Time("from", start), zap.Time("to", end))
		return entities.PeriodStats{}, fmt.Errorf("fetch inventory logs: %w", err)
	}

	stats := entities.PeriodStats{
		Orders:       entities.OrderTotals{Count: len(orders)},
		Sessions:     entities.SessionTotals{Count: len(sessions)},
		DebtPayments: entities.DebtPaymentTotals{Count: len(debtPayments)},
		ProductStats: map[string]entities.ProductBreakdown{},
	}

	for _, o := range orders {
		stats.Orders.TotalAmount += o.Total
		if o.IsPaid {
			stats.Revenue.Cash += o.Total
		} else {
			stats.Revenue.Debt += o.Total
		}

		for _, item := range o.Items {
			row, ok := stats.ProductStats[item.ProductID]
			if !ok {
				row = entities.ProductBreakdown{Name: nameOrUnknown(item.ProductName)}
			}
			row.Sold += item.Quantity
			row.Revenue += float64(item.Quantity) * item.Price
			stats.ProductStats[item.ProductID] = row
		}
	}

	// Sessions are settled in cash when they close.
	for _, s := range sessions {
		var cost float64
		if s.Cost != nil {
			cost = *s.Cost
		}
		stats.Sessions.TotalCost += cost
		stats.Revenue.Cash += cost
		if s.Duration != nil {
			stats.Sessions.TotalMinutes += *s.Duration
		}
	}

	// A collected debt payment is fresh cash. Revenue.Debt is not reduced:
	// it counts debt newly incurred in the period, not an outstanding balance.
	for _, p := range debtPayments {
		stats.DebtPayments.Total += p.Amount
		stats.Revenue.Cash += p.Amount
	}

	// All fetched logs seed a product row; only RESTOCK moves totals.
	for _, l := range logs {
		if l.ProductID != "" {
			if _, ok := stats.ProductStats[l.ProductID]; !ok {
				stats.ProductStats[l.ProductID] = entities.ProductBreakdown{Name: nameOrUnknown(l.ProductName)}
			}
		}
		if l.Type != entities.InventoryLogTypeRestock {
			continue
		}
		if l.ProductID != "" {
			row := stats.ProductStats[l.ProductID]
			row.Restocked += l.Change
			stats.ProductStats[l.ProductID] = row
		}
		if l.Cost != nil {
			stats.Expenses.Total += *l.Cost
		}
	}

	stats.Revenue.Total = stats.Revenue.Cash + stats.Revenue.Debt
	return stats, nil
}

// ComputeTrend buckets the trailing `days` calendar days (ending today) of
// orders into a chronological revenue series and tallies SALE inventory
// movements into per-category and top-5 per-product rankings.
//
// On any fetch failure it returns the error together with an Analytics value
// whose three fields are present and empty, so callers can degrade instead
// of crashing.
func (u *ReportUseCase) ComputeTrend(ctx context.Context, days int) (entities.Analytics, error) {
	if days <= 0 {
		days = defaultTrendDays
	}

	now := u.now()
	windowStart := startOfDay(now.AddDate(0, 0, -days))

	var (
		orders   []entities.Order
		products []entities.Product
		logs     []entities.InventoryLog
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = u.orderRepo.ListSince(gctx, windowStart)
		return err
	})
	g.Go(func() error {
		var err error
		products, err = u.productRepo.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		logs, err = u.invRepo.ListSalesSince(gctx, windowStart)
		return err
	})
	if err := g.Wait(); err != nil {
		u.logger.Error("failed to fetch trend inputs", zap.Error(err), zap.Int("days", days))
		return entities.EmptyAnalytics(), fmt.Errorf("fetch trend inputs: %w", err)
	}

	// Buckets are seeded newest-first, then reversed so the series reads
	// oldest to newest.
	trend := make([]entities.DailyPoint, days)
	byDay := make(map[string]*entities.DailyPoint, days)
	for i := 0; i < days; i++ {
		key := now.AddDate(0, 0, -i).Format(dayKeyFormat)
		trend[i] = entities.DailyPoint{Date: key}
		byDay[key] = &trend[i]
	}

	// Orders outside the seeded buckets are dropped silently.
	for _, o := range orders {
		pt, ok := byDay[o.CreatedAt.Local().Format(dayKeyFormat)]
		if !ok {
			continue
		}
		pt.Revenue += o.Total
		if o.IsPaid {
			pt.Cash += o.Total
		} else {
			pt.Debt += o.Total
		}
	}

	for i, j := 0, len(trend)-1; i < j; i, j = i+1, j-1 {
		trend[i], trend[j] = trend[j], trend[i]
	}

	productsByID := make(map[string]entities.Product, len(products))
	for _, p := range products {
		productsByID[p.ID] = p
	}

	catTotals := map[string]float64{}
	var catOrder []string
	prodTotals := map[string]float64{}
	var prodOrder []string

	for _, l := range logs {
		if l.ProductID == "" {
			continue
		}
		prod, ok := productsByID[l.ProductID]
		if !ok {
			continue
		}
		amount := math.Abs(float64(l.Change))
		category := prod.Category
		if category == "" {
			category = defaultCategoryName
		}
		if _, seen := catTotals[category]; !seen {
			catOrder = append(catOrder, category)
		}
		catTotals[category] += amount
		if _, seen := prodTotals[prod.Name]; !seen {
			prodOrder = append(prodOrder, prod.Name)
		}
		prodTotals[prod.Name] += amount
	}

	categoryData := make([]entities.NamedValue, 0, len(catOrder))
	for _, name := range catOrder {
		categoryData = append(categoryData, entities.NamedValue{Name: name, Value: catTotals[name]})
	}

	topProducts := make([]entities.NamedValue, 0, len(prodOrder))
	for _, name := range prodOrder {
		topProducts = append(topProducts, entities.NamedValue{Name: name, Value: prodTotals[name]})
	}
	// Stable sort keeps encounter order between equal tallies.
	sort.SliceStable(topProducts, func(i, j int) bool {
		return topProducts[i].Value > topProducts[j].Value
	})
	if len(topProducts) > topProductsLimit {
		topProducts = topProducts[:topProductsLimit]
	}

	return entities.Analytics{
		Trend:        trend,
		CategoryData: categoryData,
		TopProducts:  topProducts,
	}, nil
}

// DashboardStats is the landing-page snapshot: client count, active rental
// sessions, product count, total outstanding client debt and the lowest
// stocked physical products.
func (u *ReportUseCase) DashboardStats(ctx context.Context) (entities.DashboardStats, error) {
	clients, err := u.userRepo.ListByRole(ctx, entities.UserRoleClient)
	if err != nil {
		u.logger.Error("failed to fetch clients for dashboard", zap.Error(err))
		return entities.DashboardStats{}, fmt.Errorf("fetch clients: %w", err)
	}
	active, err := u.sessionRepo.ListActive(ctx)
	if err != nil {
		u.logger.Error("failed to fetch active sessions for dashboard", zap.Error(err))
		return entities.DashboardStats{}, fmt.Errorf("fetch active sessions: %w", err)
	}
	productCount, err := u.productRepo.Count(ctx)
	if err != nil {
		u.logger.Error("failed to count products for dashboard", zap.Error(err))
		return entities.DashboardStats{}, fmt.Errorf("count products: %w", err)
	}
	lowStock, err := u.productRepo.ListLowStock(ctx, 10, 5)
	if err != nil {
		u.logger.Error("failed to fetch low-stock products for dashboard", zap.Error(err))
		return entities.DashboardStats{}, fmt.Errorf("fetch low-stock products: %w", err)
	}

	var totalDebt float64
	for _, c := range clients {
		totalDebt += c.Balance
	}

	return entities.DashboardStats{
		UserCount:      len(clients),
		ActiveSessions: len(active),
		ProductCount:   productCount,
		TotalDebt:      totalDebt,
		LowStock:       lowStock,
	}, nil
}

func nameOrUnknown(name string) string {
	if name == "" {
		return unknownProductName
	}
	return name
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}
