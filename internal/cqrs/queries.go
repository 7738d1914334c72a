package cqrs

// ---------- Asset / liability queries ----------

type GetAssetQuery struct {
	AssetID          string
	RequestingUserID string
}

type ListAssetsQuery struct {
	UserID string
}

type GetLiabilityQuery struct {
	LiabilityID      string
	RequestingUserID string
}

type ListLiabilitiesQuery struct {
	UserID string
}

// ---------- Expense / budget queries ----------

type GetExpenseQuery struct {
	ExpenseID        string
	RequestingUserID string
}

type ListExpensesQuery struct {
	UserID string
}

type GetBudgetQuery struct {
	BudgetID         string
	RequestingUserID string
}

// ListBudgetsQuery returns each budget decorated with its current
// spend and progress.
type ListBudgetsQuery struct {
	UserID string
}

// ---------- Bill / subscription queries ----------

type GetBillQuery struct {
	BillID           string
	RequestingUserID string
}

type ListBillsQuery struct {
	UserID string
}

type BillStatsQuery struct {
	UserID string
}

type GetSubscriptionQuery struct {
	SubscriptionID   string
	RequestingUserID string
}

type ListSubscriptionsQuery struct {
	UserID string
}

// ---------- Net worth / analytics queries ----------

type NetWorthQuery struct {
	UserID string
}

// NetWorthHistoryQuery fetches snapshots for the trailing number of months.
type NetWorthHistoryQuery struct {
	UserID string
	Months int
}

// SpendingAnalyticsQuery computes the monthly trend, category comparison
// and insights over a trailing window of 3, 6 or 12 months.
type SpendingAnalyticsQuery struct {
	UserID string
	Months int
}

// ---------- Notification / portfolio queries ----------

type ListNotificationsQuery struct {
	UserID     string
	UnreadOnly bool
}

type PortfolioQuery struct {
	UserID string
}

type ListStockTransactionsQuery struct {
	UserID string
}

type WatchlistQuery struct {
	UserID string
}
