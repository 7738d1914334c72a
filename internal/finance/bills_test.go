package finance

import (
	"testing"
	"time"

	"github.com/gil10101/sokin-sub000/internal/models"
)

func bill(category, amount string, due time.Time, paid bool) models.BillReminder {
	return models.BillReminder{
		Category: category,
		Amount:   dec(amount),
		DueDate:  due,
		IsPaid:   paid,
	}
}

func TestComputeBillStatsBuckets(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	nextWeek := now.AddDate(0, 0, 7)

	bills := []models.BillReminder{
		bill("utilities", "80", yesterday, false), // overdue
		bill("rent", "1200", nextWeek, false),     // upcoming
		bill("utilities", "60", yesterday, true),  // paid: neither bucket
		bill("internet", "45", now, false),        // due exactly now: neither bucket
	}

	stats := ComputeBillStats(bills, now)
	if stats.TotalBills != 4 {
		t.Errorf("TotalBills = %d, want 4", stats.TotalBills)
	}
	if stats.OverdueBills != 1 {
		t.Errorf("OverdueBills = %d, want 1", stats.OverdueBills)
	}
	if stats.UpcomingBills != 1 {
		t.Errorf("UpcomingBills = %d, want 1", stats.UpcomingBills)
	}
}

func TestComputeBillStatsMonthlyTotals(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	bills := []models.BillReminder{
		bill("rent", "1200", time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), true),
		bill("utilities", "80", time.Date(2025, time.June, 28, 0, 0, 0, 0, time.UTC), false),
		bill("rent", "1200", time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC), false),  // next month
		bill("rent", "1200", time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), false), // same month, prior year
	}

	stats := ComputeBillStats(bills, now)
	if !stats.MonthlyTotal.Equal(dec("1280")) {
		t.Errorf("MonthlyTotal = %s, want 1280", stats.MonthlyTotal)
	}
	if !stats.MonthlyPaid.Equal(dec("1200")) {
		t.Errorf("MonthlyPaid = %s, want 1200", stats.MonthlyPaid)
	}
}

func TestComputeBillStatsCategoryBreakdown(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	bills := []models.BillReminder{
		bill("utilities", "80", now.AddDate(0, 0, 3), false),
		bill("utilities", "45", now.AddDate(0, 0, 5), false),
		bill("rent", "1200", now.AddDate(0, 0, 10), false),
	}

	stats := ComputeBillStats(bills, now)
	utilities := stats.CategoryBreakdown["utilities"]
	if utilities.Count != 2 || !utilities.Amount.Equal(dec("125")) {
		t.Errorf("utilities breakdown = %+v, want count 2 amount 125", utilities)
	}
	if _, ok := stats.CategoryBreakdown["insurance"]; ok {
		t.Error("breakdown should not contain categories with no bills")
	}
}

func TestComputeBillStatsEmpty(t *testing.T) {
	stats := ComputeBillStats(nil, time.Now())
	if stats.TotalBills != 0 || stats.OverdueBills != 0 || stats.UpcomingBills != 0 {
		t.Errorf("empty input should yield zero counts, got %+v", stats)
	}
	if !stats.MonthlyTotal.IsZero() || !stats.MonthlyPaid.IsZero() {
		t.Errorf("empty input should yield zero totals, got %+v", stats)
	}
}
