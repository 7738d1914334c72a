// Package finance is the pure aggregation core: every function reduces
// already-fetched record slices into summary values. Nothing here touches
// the database, the cache, or any other I/O, and no state survives a
// call — the same inputs always produce the same outputs.
package finance

import (
	"github.com/shopspring/decimal"

	"github.com/gil10101/sokin-sub000/internal/models"
)

// NetWorthSummary is the result of aggregating one user's assets and
// liabilities. Breakdown maps are sparse: categories with no matching
// records are omitted rather than zero-filled.
type NetWorthSummary struct {
	TotalAssets        decimal.Decimal            `json:"totalAssets"`
	TotalLiabilities   decimal.Decimal            `json:"totalLiabilities"`
	NetWorth           decimal.Decimal            `json:"netWorth"`
	AssetBreakdown     map[string]decimal.Decimal `json:"assetBreakdown"`
	LiabilityBreakdown map[string]decimal.Decimal `json:"liabilityBreakdown"`
}

// ComputeNetWorth sums current asset values and liability balances for
// records already scoped to one user. NetWorth may be negative.
func ComputeNetWorth(assets []models.Asset, liabilities []models.Liability) NetWorthSummary {
	summary := NetWorthSummary{
		AssetBreakdown:     make(map[string]decimal.Decimal),
		LiabilityBreakdown: make(map[string]decimal.Decimal),
	}
	for _, a := range assets {
		summary.TotalAssets = summary.TotalAssets.Add(a.CurrentValue)
		summary.AssetBreakdown[a.Category] = summary.AssetBreakdown[a.Category].Add(a.CurrentValue)
	}
	for _, l := range liabilities {
		summary.TotalLiabilities = summary.TotalLiabilities.Add(l.CurrentBalance)
		summary.LiabilityBreakdown[l.Category] = summary.LiabilityBreakdown[l.Category].Add(l.CurrentBalance)
	}
	summary.NetWorth = summary.TotalAssets.Sub(summary.TotalLiabilities)
	return summary
}

// MonthlyChange returns the absolute and percentage change from a prior
// period's net worth. A zero previous value yields 0% rather than a
// division by zero.
func MonthlyChange(current, previous decimal.Decimal) (decimal.Decimal, float64) {
	change := current.Sub(previous)
	if previous.IsZero() {
		return change, 0
	}
	pct, _ := change.Div(previous.Abs()).Mul(decimal.NewFromInt(100)).Round(2).Float64()
	return change, pct
}
