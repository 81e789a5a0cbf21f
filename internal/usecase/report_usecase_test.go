package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"respresso/internal/domain/entities"
	mock_interfaces "respresso/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"
)

type reportMocks struct {
	order   *mock_interfaces.MockIOrderRepository
	session *mock_interfaces.MockISessionRepository
	debt    *mock_interfaces.MockIDebtPaymentRepository
	inv     *mock_interfaces.MockIInventoryLogRepository
	product *mock_interfaces.MockIProductRepository
	user    *mock_interfaces.MockIUserRepository
}

func newReportUseCaseForTest(t *testing.T) (*ReportUseCase, reportMocks) {
	ctrl := gomock.NewController(t)
	m := reportMocks{
		order:   mock_interfaces.NewMockIOrderRepository(ctrl),
		session: mock_interfaces.NewMockISessionRepository(ctrl),
		debt:    mock_interfaces.NewMockIDebtPaymentRepository(ctrl),
		inv:     mock_interfaces.NewMockIInventoryLogRepository(ctrl),
		product: mock_interfaces.NewMockIProductRepository(ctrl),
		user:    mock_interfaces.NewMockIUserRepository(ctrl),
	}
	uc := NewReportUseCase(m.order, m.session, m.debt, m.inv, m.product, m.user, zaptest.NewLogger(t))
	return uc, m
}

func expectEmptyRange(m reportMocks) {
	m.order.EXPECT().ListInRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	m.session.EXPECT().ListInRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	m.debt.EXPECT().ListInRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	m.inv.EXPECT().ListInRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
}

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

func TestReportUseCase_ComputeStats(t *testing.T) {
	day := time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local)

	t.Run("invalid range", func(t *testing.T) {
		uc, _ := newReportUseCaseForTest(t)

		if _, err := uc.ComputeStats(context.Background(), time.Time{}, day, ""); !errors.Is(err, ErrInvalidDateRange) {
			t.Fatalf("expected ErrInvalidDateRange, got %v", err)
		}
		if _, err := uc.ComputeStats(context.Background(), day, day.AddDate(0, 0, -1), ""); !errors.Is(err, ErrInvalidDateRange) {
			t.Fatalf("expected ErrInvalidDateRange, got %v", err)
		}
	})

	t.Run("empty range yields zero stats", func(t *testing.T) {
		uc, m := newReportUseCaseForTest(t)
		expectEmptyRange(m)

		stats, err := uc.ComputeStats(context.Background(), day, day, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stats.Revenue.Total != 0 || stats.Revenue.Cash != 0 || stats.Revenue.Debt != 0 {
			t.Fatalf("expected zero revenue, got %+v", stats.Revenue)
		}
		if stats.Orders.Count != 0 || stats.Sessions.Count != 0 || stats.DebtPayments.Count != 0 {
			t.Fatalf("expected zero counts, got %+v", stats)
		}
		if stats.ProductStats == nil || len(stats.ProductStats) != 0 {
			t.Fatalf("expected empty non-nil product stats, got %v", stats.ProductStats)
		}
	})

	t.Run("normalizes range to whole days", func(t *testing.T) {
		uc, m := newReportUseCaseForTest(t)

		wantStart := time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local)
		wantEnd := time.Date(2024, 3, 10, 23, 59, 59, int(999*time.Millisecond), time.Local)
		m.order.EXPECT().ListInRange(gomock.Any(), wantStart, wantEnd, "staff-1").Return(nil, nil)
		m.session.EXPECT().ListInRange(gomock.Any(), wantStart, wantEnd, "staff-1").Return(nil, nil)
		m.debt.EXPECT().ListInRange(gomock.Any(), wantStart, wantEnd, "staff-1").Return(nil, nil)
		m.inv.EXPECT().ListInRange(gomock.Any(), wantStart, wantEnd, "staff-1").Return(nil, nil)

		if _, err := uc.ComputeStats(context.Background(), day, day, "staff-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("splits revenue into cash and debt", func(t *testing.T) {
		uc, m := newReportUseCaseForTest(t)

		orders := []entities.Order{
			{ID: "o1", Total: 100, IsPaid: true, Items: []entities.OrderItem{
				{ProductID: "p1", ProductName: "Cola", Quantity: 2, Price: 50},
			}},
			{ID: "o2", Total: 40, IsPaid: false, Items: []entities.OrderItem{
				{ProductID: "p1", ProductName: "Cola", Quantity: 1, Price: 40},
			}},
		}
		m.order.EXPECT().ListInRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(orders, nil)
		m.session.EXPECT().ListInRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		m.debt.EXPECT().ListInRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		m.inv.EXPECT().ListInRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		stats, err := uc.ComputeStats(context.Background(), day, day, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stats.Revenue.Cash != 100 || stats.Revenue.Debt != 40 || stats.Revenue.Total != 140 {
			t.Fatalf("expected 100/40/140, got %+v", stats.Revenue)
		}
		if stats.Orders.Count != 2 || stats.Orders.TotalAmount != 140 {
			t.Fatalf("unexpected order totals: %+v", stats.Orders)
		}
		row := stats.ProductStats["p1"]
		if row.Name != "Cola" || row.Sold != 3 || row.Revenue != 140 {
			t.Fatalf("unexpected product row: %+v", row)
		}
	})

	t.Run("sessions settle in cash", func(t *testing.T) {
		uc, m := newReportUseCaseForTest(t)

		sessions := []entities.Session{
			{ID: "s1", Cost: fptr(25), Duration: iptr(60)},
			{ID: "s2"},
		}
		m.order.EXPECT().ListInRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		m.session.EXPECT().ListInRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(sessions, nil)
		m.debt.EXPECT().ListInRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		m.inv.EXPECT().ListInRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		stats, err := uc.ComputeStats(context.Background(), day, day, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stats.Sessions.Count != 2 || stats.Sessions.TotalCost != 25 || stats.Sessions.TotalMinutes != 60 {
			t.Fatalf("unexpected session totals: %+v", stats.Sessions)
		}
		if stats.Revenue.Cash != 25 || stats.Revenue.Total != 25 {
			t.Fatalf("session cost should land in cash: %+v", stats.Revenue)
		}
	})

	t.Run("debt payments add cash without reducing debt", func(t *testing.T) {
		uc, m := newReportUseCaseForTest(t)

		m.order.EXPECT().ListInRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		m.session.EXPECT().ListInRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		m.debt.EXPECT().ListInRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]entities.DebtPayment{
			{ID: "dp1", UserID: "c1", Amount: 30},
		}, nil)
		m.inv.EXPECT().ListInRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		stats, err := uc.ComputeStats(context.Background(), day, day, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stats.DebtPayments.Count != 1 || stats.DebtPayments.Total != 30 {
			t.Fatalf("unexpected debt payment totals: %+v", stats.DebtPayments)
		}
		if stats.Revenue.Cash != 30 || stats.Revenue.Debt != 0 || stats.Revenue.Total != 30 {
			t.Fatalf("unexpected revenue: %+v", stats.Revenue)
		}
	})

	t.Run("only restock logs move totals", func(t *testing.T) {
		uc, m := newReportUseCaseForTest(t)

		logs := []entities.InventoryLog{
			{ID: "l1", ProductID: "p1", ProductName: "Cola", Type: entities.InventoryLogTypeRestock, Change: 24, Cost: fptr(100)},
			{ID: "l2", ProductID: "p2", Type: entities.InventoryLogTypeRestock, Change: 5},
			{ID: "l3", ProductID: "p3", ProductName: "Chips", Type: entities.InventoryLogTypeSale, Change: -2},
			{ID: "l4", Type: entities.InventoryLogTypePayment, Change: 0},
		}
		m.order.EXPECT().ListInRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		m.session.EXPECT().ListInRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		m.debt.EXPECT().ListInRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		m.inv.EXPECT().ListInRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(logs, nil)

		stats, err := uc.ComputeStats(context.Background(), day, day, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stats.Expenses.Total != 100 {
			t.Fatalf("expected expenses 100, got %v", stats.Expenses.Total)
		}
		cola := stats.ProductStats["p1"]
		if cola.Name != "Cola" || cola.Restocked != 24 {
			t.Fatalf("unexpected cola row: %+v", cola)
		}
		if row := stats.ProductStats["p2"]; row.Name != "Unknown" || row.Restocked != 5 {
			t.Fatalf("unexpected p2 row: %+v", row)
		}
		// The sale log seeds a row but moves nothing.
		if row := stats.ProductStats["p3"]; row.Name != "Chips" || row.Sold != 0 || row.Restocked != 0 {
			t.Fatalf("unexpected p3 row: %+v", row)
		}
		if _, ok := stats.ProductStats[""]; ok {
			t.Fatalf("log without product id must not seed a row")
		}
	})

	t.Run("fetch error aborts with no partial result", func(t *testing.T) {
		uc, m := newReportUseCaseForTest(t)

		m.order.EXPECT().ListInRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		stats, err := uc.ComputeStats(context.Background(), day, day, "")
		if err == nil || !strings.Contains(err.Error(), "fetch orders") {
			t.Fatalf("expected wrapped fetch error, got %v", err)
		}
		if stats.ProductStats != nil {
			t.Fatalf("expected zero-value stats, got %+v", stats)
		}
	})
}

func TestReportUseCase_ComputeTrend(t *testing.T) {
	now := time.Date(2024, 3, 10, 15, 30, 0, 0, time.Local)

	t.Run("buckets are chronological and complete", func(t *testing.T) {
		uc, m := newReportUseCaseForTest(t)
		uc.now = func() time.Time { return now }

		wantStart := time.Date(2024, 3, 7, 0, 0, 0, 0, time.Local)
		m.order.EXPECT().ListSince(gomock.Any(), wantStart).Return([]entities.Order{
			{ID: "o1", Total: 50, IsPaid: true, CreatedAt: time.Date(2024, 3, 9, 10, 0, 0, 0, time.Local)},
			{ID: "o2", Total: 20, IsPaid: false, CreatedAt: time.Date(2024, 3, 9, 18, 0, 0, 0, time.Local)},
			{ID: "o3", Total: 99, IsPaid: true, CreatedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.Local)},
		}, nil)
		m.product.EXPECT().List(gomock.Any()).Return(nil, nil)
		m.inv.EXPECT().ListSalesSince(gomock.Any(), wantStart).Return(nil, nil)

		analytics, err := uc.ComputeTrend(context.Background(), 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(analytics.Trend) != 3 {
			t.Fatalf("expected 3 buckets, got %d", len(analytics.Trend))
		}
		wantDates := []string{"2024-03-08", "2024-03-09", "2024-03-10"}
		for i, pt := range analytics.Trend {
			if pt.Date != wantDates[i] {
				t.Fatalf("bucket %d: expected %s, got %s", i, wantDates[i], pt.Date)
			}
		}
		mid := analytics.Trend[1]
		if mid.Revenue != 70 || mid.Cash != 50 || mid.Debt != 20 {
			t.Fatalf("unexpected mid bucket: %+v", mid)
		}
		// The order from February fell outside every bucket.
		if analytics.Trend[0].Revenue != 0 || analytics.Trend[2].Revenue != 0 {
			t.Fatalf("unexpected revenue in edge buckets: %+v", analytics.Trend)
		}
	})

	t.Run("defaults to seven days", func(t *testing.T) {
		uc, m := newReportUseCaseForTest(t)
		uc.now = func() time.Time { return now }

		m.order.EXPECT().ListSince(gomock.Any(), gomock.Any()).Return(nil, nil)
		m.product.EXPECT().List(gomock.Any()).Return(nil, nil)
		m.inv.EXPECT().ListSalesSince(gomock.Any(), gomock.Any()).Return(nil, nil)

		analytics, err := uc.ComputeTrend(context.Background(), 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(analytics.Trend) != 7 {
			t.Fatalf("expected 7 buckets, got %d", len(analytics.Trend))
		}
	})

	t.Run("ranks categories and top products by units moved", func(t *testing.T) {
		uc, m := newReportUseCaseForTest(t)
		uc.now = func() time.Time { return now }

		products := []entities.Product{
			{ID: "p1", Name: "Cola", Category: "Drinks"},
			{ID: "p2", Name: "Chips", Category: "Snacks"},
			{ID: "p3", Name: "Mystery"},
			{ID: "p4", Name: "Tea", Category: "Drinks"},
			{ID: "p5", Name: "Cake", Category: "Snacks"},
			{ID: "p6", Name: "Juice", Category: "Drinks"},
		}
		logs := []entities.InventoryLog{
			{ProductID: "p1", Type: entities.InventoryLogTypeSale, Change: -5},
			{ProductID: "p2", Type: entities.InventoryLogTypeSale, Change: -3},
			{ProductID: "p3", Type: entities.InventoryLogTypeSale, Change: -4},
			{ProductID: "p4", Type: entities.InventoryLogTypeSale, Change: -2},
			{ProductID: "p5", Type: entities.InventoryLogTypeSale, Change: -2},
			{ProductID: "p6", Type: entities.InventoryLogTypeSale, Change: -1},
			{ProductID: "ghost", Type: entities.InventoryLogTypeSale, Change: -10},
		}
		m.order.EXPECT().ListSince(gomock.Any(), gomock.Any()).Return(nil, nil)
		m.product.EXPECT().List(gomock.Any()).Return(products, nil)
		m.inv.EXPECT().ListSalesSince(gomock.Any(), gomock.Any()).Return(logs, nil)

		analytics, err := uc.ComputeTrend(context.Background(), 7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		wantCats := map[string]float64{"Drinks": 8, "Snacks": 5, "UNCATEGORIZED": 4}
		if len(analytics.CategoryData) != len(wantCats) {
			t.Fatalf("expected %d categories, got %+v", len(wantCats), analytics.CategoryData)
		}
		for _, nv := range analytics.CategoryData {
			if wantCats[nv.Name] != nv.Value {
				t.Fatalf("category %s: expected %v, got %v", nv.Name, wantCats[nv.Name], nv.Value)
			}
		}

		if len(analytics.TopProducts) != 5 {
			t.Fatalf("expected top 5, got %d", len(analytics.TopProducts))
		}
		wantTop := []entities.NamedValue{
			{Name: "Cola", Value: 5},
			{Name: "Mystery", Value: 4},
			{Name: "Chips", Value: 3},
			{Name: "Tea", Value: 2},
			{Name: "Cake", Value: 2},
		}
		for i, nv := range analytics.TopProducts {
			if nv != wantTop[i] {
				t.Fatalf("top product %d: expected %+v, got %+v", i, wantTop[i], nv)
			}
		}
	})

	t.Run("fetch error degrades to empty analytics", func(t *testing.T) {
		uc, m := newReportUseCaseForTest(t)
		uc.now = func() time.Time { return now }

		m.order.EXPECT().ListSince(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down")).AnyTimes()
		m.product.EXPECT().List(gomock.Any()).Return(nil, nil).AnyTimes()
		m.inv.EXPECT().ListSalesSince(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

		analytics, err := uc.ComputeTrend(context.Background(), 7)
		if err == nil {
			t.Fatalf("expected error")
		}
		if analytics.Trend == nil || analytics.CategoryData == nil || analytics.TopProducts == nil {
			t.Fatalf("expected empty non-nil analytics, got %+v", analytics)
		}
		if len(analytics.Trend) != 0 || len(analytics.CategoryData) != 0 || len(analytics.TopProducts) != 0 {
			t.Fatalf("expected empty analytics, got %+v", analytics)
		}
	})
}

func TestReportUseCase_DashboardStats(t *testing.T) {
	t.Run("aggregates snapshot", func(t *testing.T) {
		uc, m := newReportUseCaseForTest(t)

		clients := []entities.User{
			{ID: "c1", Role: entities.UserRoleClient, Balance: 12},
			{ID: "c2", Role: entities.UserRoleClient, Balance: 8},
		}
		lowStock := []entities.Product{{ID: "p1", Name: "Cola", Stock: 2}}
		m.user.EXPECT().ListByRole(gomock.Any(), entities.UserRoleClient).Return(clients, nil)
		m.session.EXPECT().ListActive(gomock.Any()).Return([]entities.Session{{ID: "s1"}}, nil)
		m.product.EXPECT().Count(gomock.Any()).Return(42, nil)
		m.product.EXPECT().ListLowStock(gomock.Any(), 10, 5).Return(lowStock, nil)

		stats, err := uc.DashboardStats(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stats.UserCount != 2 || stats.ActiveSessions != 1 || stats.ProductCount != 42 {
			t.Fatalf("unexpected counts: %+v", stats)
		}
		if stats.TotalDebt != 20 {
			t.Fatalf("expected total debt 20, got %v", stats.TotalDebt)
		}
		if len(stats.LowStock) != 1 || stats.LowStock[0].ID != "p1" {
			t.Fatalf("unexpected low stock: %+v", stats.LowStock)
		}
	})

	t.Run("client fetch error", func(t *testing.T) {
		uc, m := newReportUseCaseForTest(t)

		m.user.EXPECT().ListByRole(gomock.Any(), entities.UserRoleClient).Return(nil, errors.New("db down"))

		if _, err := uc.DashboardStats(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})
}
