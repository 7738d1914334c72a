package finance

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gil10101/sokin-sub000/internal/models"
)

// monthLabel is the human-readable bucket key for monthly rollups.
const monthLabel = "Jan 2006"

// MonthAmount is one bucket of the monthly spending trend.
type MonthAmount struct {
	Month  string          `json:"month"`
	Amount decimal.Decimal `json:"amount"`
}

// CategoryAmount is one row of the category comparison.
type CategoryAmount struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// Insights are simple reductions over the trend and comparison arrays.
// Empty input reports neutral placeholders instead of failing.
type Insights struct {
	HighestMonth      string          `json:"highestMonth"`
	HighestAmount     decimal.Decimal `json:"highestAmount"`
	TopCategory       string          `json:"topCategory"`
	TopCategoryAmount decimal.Decimal `json:"topCategoryAmount"`
	MonthlyAverage    decimal.Decimal `json:"monthlyAverage"`
}

// inWindow keeps expenses with a valid normalized date inside the
// trailing window of the given number of months, ending at now.
func inWindow(e models.Expense, months int, now time.Time) bool {
	if !e.Date.Valid() {
		return false
	}
	cutoff := now.AddDate(0, -months, 0)
	d := e.Date.Time
	return !d.Before(cutoff) && !d.After(now)
}

// MonthlyTrend buckets expenses in the trailing window by month label
// and returns the buckets in chronological order. Labels are not
// lexically sortable across year boundaries ("Dec 2024" vs "Jan 2025"),
// so ordering compares the parsed year and month, never the string.
func MonthlyTrend(expenses []models.Expense, months int, now time.Time) []MonthAmount {
	buckets := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		if !inWindow(e, months, now) {
			continue
		}
		key := e.Date.Time.Format(monthLabel)
		buckets[key] = buckets[key].Add(e.Amount)
	}
	trend := make([]MonthAmount, 0, len(buckets))
	for label, amount := range buckets {
		trend = append(trend, MonthAmount{Month: label, Amount: amount})
	}
	sort.Slice(trend, func(i, j int) bool {
		ti, _ := time.Parse(monthLabel, trend[i].Month)
		tj, _ := time.Parse(monthLabel, trend[j].Month)
		return ti.Before(tj)
	})
	return trend
}

// CategoryComparison sums the trailing window's expenses per category,
// sorted by amount descending. Ties break on the category name so the
// output is deterministic.
func CategoryComparison(expenses []models.Expense, months int, now time.Time) []CategoryAmount {
	sums := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		if !inWindow(e, months, now) {
			continue
		}
		sums[e.Category] = sums[e.Category].Add(e.Amount)
	}
	comparison := make([]CategoryAmount, 0, len(sums))
	for category, amount := range sums {
		comparison = append(comparison, CategoryAmount{Category: category, Amount: amount})
	}
	sort.Slice(comparison, func(i, j int) bool {
		if !comparison[i].Amount.Equal(comparison[j].Amount) {
			return comparison[i].Amount.GreaterThan(comparison[j].Amount)
		}
		return comparison[i].Category < comparison[j].Category
	})
	return comparison
}

// SpendingInsights derives the highest-spending month, top category and
// monthly average from already-computed rollups.
func SpendingInsights(monthly []MonthAmount, categories []CategoryAmount) Insights {
	var insights Insights
	total := decimal.Zero
	for _, m := range monthly {
		total = total.Add(m.Amount)
		if m.Amount.GreaterThan(insights.HighestAmount) {
			insights.HighestMonth = m.Month
			insights.HighestAmount = m.Amount
		}
	}
	if len(monthly) > 0 {
		insights.MonthlyAverage = total.Div(decimal.NewFromInt(int64(len(monthly)))).Round(2)
	}
	if len(categories) > 0 {
		// Comparison is sorted descending, so the top category is first.
		insights.TopCategory = categories[0].Category
		insights.TopCategoryAmount = categories[0].Amount
	}
	return insights
}
