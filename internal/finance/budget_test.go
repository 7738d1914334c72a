package finance

import (
	"testing"
	"time"

	"github.com/gil10101/sokin-sub000/internal/models"
)

func expense(category, amount string, date time.Time) models.Expense {
	return models.Expense{
		Category: category,
		Amount:   dec(amount),
		Date:     models.NewFlexTime(date),
	}
}

func TestBudgetProgress(t *testing.T) {
	now := time.Date(2025, time.March, 20, 12, 0, 0, 0, time.UTC)
	monthly := models.Budget{
		Category:  "Dining",
		Amount:    dec("500"),
		Period:    models.PeriodMonthly,
		StartDate: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
	}
	expenses := []models.Expense{
		expense("Dining", "120", time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)),
		expense("Dining", "200", time.Date(2025, time.March, 18, 0, 0, 0, 0, time.UTC)),
		expense("Shopping", "50", time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)),
		expense("Dining", "75", time.Date(2025, time.May, 2, 0, 0, 0, 0, time.UTC)), // outside window
	}

	spent, progress := BudgetProgress(monthly, expenses, now)
	if !spent.Equal(dec("320")) {
		t.Errorf("spent = %s, want 320", spent)
	}
	if progress != 64 {
		t.Errorf("progress = %d, want 64", progress)
	}
}

func TestBudgetProgressNoExpenses(t *testing.T) {
	now := time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC)
	b := models.Budget{
		Category:  "Dining",
		Amount:    dec("500"),
		Period:    models.PeriodMonthly,
		StartDate: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
	}
	spent, progress := BudgetProgress(b, nil, now)
	if !spent.IsZero() || progress != 0 {
		t.Errorf("empty expenses should yield {0, 0}, got {%s, %d}", spent, progress)
	}
}

func TestBudgetProgressZeroCap(t *testing.T) {
	now := time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC)
	b := models.Budget{
		Category:  "Dining",
		Amount:    dec("0"),
		Period:    models.PeriodMonthly,
		StartDate: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
	}
	expenses := []models.Expense{
		expense("Dining", "120", time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)),
	}
	spent, progress := BudgetProgress(b, expenses, now)
	if !spent.Equal(dec("120")) {
		t.Errorf("spent = %s, want 120", spent)
	}
	if progress != 0 {
		t.Errorf("zero cap must not divide, progress = %d, want 0", progress)
	}
}

func TestBudgetProgressOverBudget(t *testing.T) {
	now := time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC)
	b := models.Budget{
		Category:  "Dining",
		Amount:    dec("100"),
		Period:    models.PeriodMonthly,
		StartDate: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
	}
	expenses := []models.Expense{
		expense("Dining", "250", time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)),
	}
	_, progress := BudgetProgress(b, expenses, now)
	if progress != 250 {
		t.Errorf("progress = %d, want 250 (over-budget is a valid state)", progress)
	}
}

func TestBudgetProgressExcludesInvalidDates(t *testing.T) {
	now := time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC)
	b := models.Budget{
		Category:  "Dining",
		Amount:    dec("500"),
		Period:    models.PeriodMonthly,
		StartDate: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
	}
	expenses := []models.Expense{
		expense("Dining", "120", time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)),
		{Category: "Dining", Amount: dec("999")}, // invalid (zero) date
	}
	spent, _ := BudgetProgress(b, expenses, now)
	if !spent.Equal(dec("120")) {
		t.Errorf("spent = %s, want 120 (invalid dates excluded)", spent)
	}
}

func TestBudgetProgressInclusiveBounds(t *testing.T) {
	start := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	now := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	b := models.Budget{Category: "Dining", Amount: dec("500"), Period: models.PeriodMonthly, StartDate: start}

	expenses := []models.Expense{
		expense("Dining", "10", start),
		expense("Dining", "20", end),
	}
	spent, _ := BudgetProgress(b, expenses, now)
	if !spent.Equal(dec("30")) {
		t.Errorf("spent = %s, want 30 (both bounds inclusive)", spent)
	}
}

func TestBudgetWindow(t *testing.T) {
	start := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
	explicitEnd := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		budget  models.Budget
		wantEnd time.Time
	}{
		{"explicit end wins", models.Budget{Period: models.PeriodMonthly, StartDate: start, EndDate: &explicitEnd}, explicitEnd},
		{"monthly", models.Budget{Period: models.PeriodMonthly, StartDate: start}, start.AddDate(0, 1, 0)},
		{"yearly", models.Budget{Period: models.PeriodYearly, StartDate: start}, start.AddDate(1, 0, 0)},
		{"weekly", models.Budget{Period: models.PeriodWeekly, StartDate: start}, start.AddDate(0, 0, 7)},
		{"daily", models.Budget{Period: models.PeriodDaily, StartDate: start}, start.AddDate(0, 0, 1)},
		{"custom without end falls back to now", models.Budget{Period: models.PeriodCustom, StartDate: start}, now},
		{"unrecognized period falls back to now", models.Budget{Period: "fortnightly", StartDate: start}, now},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotStart, gotEnd := BudgetWindow(tt.budget, now)
			if !gotStart.Equal(start) {
				t.Errorf("start = %v, want %v", gotStart, start)
			}
			if !gotEnd.Equal(tt.wantEnd) {
				t.Errorf("end = %v, want %v", gotEnd, tt.wantEnd)
			}
		})
	}
}
