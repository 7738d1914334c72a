package finance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gil10101/sokin-sub000/internal/models"
)

// CategoryStat is the per-category slice of the bill breakdown.
type CategoryStat struct {
	Amount decimal.Decimal `json:"amount"`
	Count  int             `json:"count"`
}

// BillStats summarizes one user's bill reminders against a reference time.
type BillStats struct {
	TotalBills        int                     `json:"totalBills"`
	UpcomingBills     int                     `json:"upcomingBills"`
	OverdueBills      int                     `json:"overdueBills"`
	MonthlyTotal      decimal.Decimal         `json:"monthlyTotal"`
	MonthlyPaid       decimal.Decimal         `json:"monthlyPaid"`
	CategoryBreakdown map[string]CategoryStat `json:"categoryBreakdown"`
}

// ComputeBillStats classifies bills against now. An unpaid bill is
// overdue when its due date is strictly before now and upcoming when
// strictly after; a bill due exactly at now lands in neither bucket.
// That boundary is carried over from the legacy behavior on purpose —
// do not "fix" it here without revisiting the clients that rely on it.
//
// Monthly totals cover bills due in now's calendar month: MonthlyTotal
// regardless of paid status, MonthlyPaid only the paid ones.
func ComputeBillStats(bills []models.BillReminder, now time.Time) BillStats {
	stats := BillStats{
		CategoryBreakdown: make(map[string]CategoryStat),
	}
	for _, b := range bills {
		stats.TotalBills++
		if !b.IsPaid {
			if b.DueDate.Before(now) {
				stats.OverdueBills++
			} else if b.DueDate.After(now) {
				stats.UpcomingBills++
			}
		}
		if b.DueDate.Year() == now.Year() && b.DueDate.Month() == now.Month() {
			stats.MonthlyTotal = stats.MonthlyTotal.Add(b.Amount)
			if b.IsPaid {
				stats.MonthlyPaid = stats.MonthlyPaid.Add(b.Amount)
			}
		}
		cs := stats.CategoryBreakdown[b.Category]
		cs.Amount = cs.Amount.Add(b.Amount)
		cs.Count++
		stats.CategoryBreakdown[b.Category] = cs
	}
	return stats
}
