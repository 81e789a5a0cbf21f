package entities

// Derived reporting values. None of these are persisted: every report
// request recomputes them from the record streams and the result is never
// mutated after construction.

// RevenueStats splits period revenue into cash received and new debt
// incurred. Total is always Cash + Debt exactly.
type RevenueStats struct {
	Total float64 `json:"total"`
	Cash  float64 `json:"cash"`
	Debt  float64 `json:"debt"`
}

// ExpenseStats aggregates restock costs.
type ExpenseStats struct {
	Total float64 `json:"total"`
}

// OrderTotals counts orders in range and sums their totals.
type OrderTotals struct {
	Count       int     `json:"count"`
	TotalAmount float64 `json:"total_amount"`
}

// SessionTotals sums rental session cost and minutes in range.
type SessionTotals struct {
	Count        int     `json:"count"`
	TotalCost    float64 `json:"total_cost"`
	TotalMinutes int     `json:"total_minutes"`
}

// DebtPaymentTotals sums collected debt payments in range.
type DebtPaymentTotals struct {
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

// ProductBreakdown is the per-product rollup inside a period report. Keyed
// by product id in PeriodStats; Name falls back to "Unknown" when the
// product reference is stale.
type ProductBreakdown struct {
	Name      string  `json:"name"`
	Sold      int     `json:"sold"`
	Revenue   float64 `json:"revenue"`
	Restocked int     `json:"restocked"`
}

// PeriodStats is the full financial/operational summary for a date range.
type PeriodStats struct {
	Revenue      RevenueStats                `json:"revenue"`
	Expenses     ExpenseStats                `json:"expenses"`
	Orders       OrderTotals                 `json:"orders"`
	Sessions     SessionTotals               `json:"sessions"`
	DebtPayments DebtPaymentTotals           `json:"debt_payments"`
	ProductStats map[string]ProductBreakdown `json:"product_stats"`
}

// DailyPoint is one calendar-day bucket of the revenue trend.
type DailyPoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	Cash    float64 `json:"cash"`
	Debt    float64 `json:"debt"`
}

// NamedValue is a {name, value} pair used for category tallies and
// top-product rankings.
type NamedValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Analytics is the trailing-window trend report: a chronological daily
// revenue series, units moved per category, and the top 5 products by
// units moved.
type Analytics struct {
	Trend        []DailyPoint `json:"trend"`
	CategoryData []NamedValue `json:"categoryData"`
	TopProducts  []NamedValue `json:"topProducts"`
}

// EmptyAnalytics is the degraded response shape returned when a trend
// fetch fails: all three fields present and empty.
func EmptyAnalytics() Analytics {
	return Analytics{
		Trend:        []DailyPoint{},
		CategoryData: []NamedValue{},
		TopProducts:  []NamedValue{},
	}
}

// DashboardStats is the at-a-glance operational snapshot.
type DashboardStats struct {
	UserCount      int       `json:"user_count"`
	ActiveSessions int       `json:"active_sessions"`
	ProductCount   int       `json:"product_count"`
	TotalDebt      float64   `json:"total_debt"`
	LowStock       []Product `json:"low_stock"`
}
