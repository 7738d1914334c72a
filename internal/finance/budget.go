package finance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gil10101/sokin-sub000/internal/models"
)

// BudgetWindow resolves the effective [start, end] window for a budget.
// An explicit end date always wins; otherwise the end is derived from
// the period length. An unrecognized period, or a custom budget missing
// its end date, falls back to now as the effective end — an intentional
// default, not an error.
func BudgetWindow(b models.Budget, now time.Time) (time.Time, time.Time) {
	start := b.StartDate
	if b.EndDate != nil {
		return start, *b.EndDate
	}
	switch b.Period {
	case models.PeriodMonthly:
		return start, start.AddDate(0, 1, 0)
	case models.PeriodYearly:
		return start, start.AddDate(1, 0, 0)
	case models.PeriodWeekly:
		return start, start.AddDate(0, 0, 7)
	case models.PeriodDaily:
		return start, start.AddDate(0, 0, 1)
	default:
		return start, now
	}
}

// BudgetProgress sums the expenses that fall inside the budget's window
// (both bounds inclusive) and match its category, then expresses the
// spend as a rounded percentage of the cap. Expenses with an invalid
// normalized date are excluded. Progress may exceed 100: over-budget is
// an expected state, not an error. A zero or negative cap yields 0.
func BudgetProgress(b models.Budget, expenses []models.Expense, now time.Time) (decimal.Decimal, int) {
	start, end := BudgetWindow(b, now)
	spent := decimal.Zero
	for _, e := range expenses {
		if e.Category != b.Category {
			continue
		}
		if !e.Date.Valid() {
			continue
		}
		d := e.Date.Time
		if d.Before(start) || d.After(end) {
			continue
		}
		spent = spent.Add(e.Amount)
	}
	if !b.Amount.IsPositive() {
		return spent, 0
	}
	progress := spent.Div(b.Amount).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	return spent, int(progress)
}
