package finance

import (
	"reflect"
	"testing"
	"time"

	"github.com/gil10101/sokin-sub000/internal/models"
)

func TestMonthlyTrendChronologicalOrder(t *testing.T) {
	now := time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC)
	expenses := []models.Expense{
		expense("Dining", "100", time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC)),
		expense("Dining", "200", time.Date(2024, time.December, 10, 0, 0, 0, 0, time.UTC)),
	}

	trend := MonthlyTrend(expenses, 3, now)
	if len(trend) != 2 {
		t.Fatalf("got %d buckets, want 2", len(trend))
	}
	// "Dec 2024" sorts after "Jan 2025" lexically; chronological order
	// must put it first.
	if trend[0].Month != "Dec 2024" || trend[1].Month != "Jan 2025" {
		t.Errorf("order = [%s, %s], want [Dec 2024, Jan 2025]", trend[0].Month, trend[1].Month)
	}
	if !trend[0].Amount.Equal(dec("200")) || !trend[1].Amount.Equal(dec("100")) {
		t.Errorf("amounts = [%s, %s], want [200, 100]", trend[0].Amount, trend[1].Amount)
	}
}

func TestMonthlyTrendAccumulatesBuckets(t *testing.T) {
	now := time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)
	expenses := []models.Expense{
		expense("Dining", "10", time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)),
		expense("Shopping", "15", time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)),
		expense("Dining", "25", time.Date(2025, time.March, 28, 0, 0, 0, 0, time.UTC)),
	}

	trend := MonthlyTrend(expenses, 3, now)
	if len(trend) != 1 {
		t.Fatalf("got %d buckets, want 1", len(trend))
	}
	if !trend[0].Amount.Equal(dec("50")) {
		t.Errorf("bucket amount = %s, want 50", trend[0].Amount)
	}
}

func TestMonthlyTrendWindowAndInvalidDates(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	expenses := []models.Expense{
		expense("Dining", "10", time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)),
		expense("Dining", "20", time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)), // before window
		expense("Dining", "30", time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)), // after now
		{Category: "Dining", Amount: dec("40")},                                      // invalid date
	}

	trend := MonthlyTrend(expenses, 3, now)
	if len(trend) != 1 || !trend[0].Amount.Equal(dec("10")) {
		t.Errorf("trend = %+v, want single Jun 2025 bucket of 10", trend)
	}
}

func TestCategoryComparisonSortedDescending(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	expenses := []models.Expense{
		expense("Dining", "50", now.AddDate(0, 0, -1)),
		expense("Rent", "900", now.AddDate(0, 0, -2)),
		expense("Dining", "30", now.AddDate(0, 0, -3)),
	}

	comparison := CategoryComparison(expenses, 3, now)
	want := []CategoryAmount{
		{Category: "Rent", Amount: dec("900")},
		{Category: "Dining", Amount: dec("80")},
	}
	if len(comparison) != len(want) {
		t.Fatalf("got %d categories, want %d", len(comparison), len(want))
	}
	for i := range want {
		if comparison[i].Category != want[i].Category || !comparison[i].Amount.Equal(want[i].Amount) {
			t.Errorf("comparison[%d] = %+v, want %+v", i, comparison[i], want[i])
		}
	}
}

func TestSpendingInsights(t *testing.T) {
	monthly := []MonthAmount{
		{Month: "Apr 2025", Amount: dec("300")},
		{Month: "May 2025", Amount: dec("500")},
		{Month: "Jun 2025", Amount: dec("100")},
	}
	categories := []CategoryAmount{
		{Category: "Rent", Amount: dec("600")},
		{Category: "Dining", Amount: dec("300")},
	}

	insights := SpendingInsights(monthly, categories)
	if insights.HighestMonth != "May 2025" || !insights.HighestAmount.Equal(dec("500")) {
		t.Errorf("highest = %s/%s, want May 2025/500", insights.HighestMonth, insights.HighestAmount)
	}
	if insights.TopCategory != "Rent" {
		t.Errorf("top category = %s, want Rent", insights.TopCategory)
	}
	if !insights.MonthlyAverage.Equal(dec("300")) {
		t.Errorf("monthly average = %s, want 300", insights.MonthlyAverage)
	}
}

func TestSpendingInsightsEmpty(t *testing.T) {
	insights := SpendingInsights(nil, nil)
	if insights.HighestMonth != "" || insights.TopCategory != "" {
		t.Errorf("empty input should yield neutral placeholders, got %+v", insights)
	}
	if !insights.MonthlyAverage.IsZero() {
		t.Errorf("empty input should yield zero average, got %s", insights.MonthlyAverage)
	}
}

func TestAnalyticsIdempotent(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	expenses := []models.Expense{
		expense("Dining", "50", now.AddDate(0, 0, -1)),
		expense("Rent", "900", now.AddDate(0, -1, 0)),
	}
	first := MonthlyTrend(expenses, 6, now)
	second := MonthlyTrend(expenses, 6, now)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("re-running on the same input changed the output: %+v vs %+v", first, second)
	}
}
