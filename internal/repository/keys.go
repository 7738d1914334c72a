package repository

// Cache key prefixes. Every key is "<prefix><userId>"; invalidation
// uses the glob "<prefix><userId>*".
const (
	assetListKeyPrefix        = "assets:"
	liabilityListKeyPrefix    = "liabilities:"
	expenseListKeyPrefix      = "expenses:"
	budgetListKeyPrefix       = "budgets:"
	billListKeyPrefix         = "bills:"
	subscriptionListKeyPrefix = "subscriptions:"
	netWorthKeyPrefix         = "networth:"
	holdingListKeyPrefix      = "holdings:"
	watchlistKeyPrefix        = "watchlist:"
)
