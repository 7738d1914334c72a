package worker

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gil10101/sokin-sub000/internal/events"
)

func TestDaysBetween(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)
	tests := []struct {
		name string
		due  time.Time
		want int
	}{
		{name: "same day later hour", due: time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC), want: 0},
		{name: "tomorrow early hour", due: time.Date(2025, 3, 11, 1, 0, 0, 0, time.UTC), want: 1},
		{name: "a week out", due: time.Date(2025, 3, 17, 9, 0, 0, 0, time.UTC), want: 7},
		{name: "yesterday", due: time.Date(2025, 3, 9, 23, 59, 0, 0, time.UTC), want: -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := daysBetween(now, tt.due); got != tt.want {
				t.Errorf("daysBetween = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMatchesReminder(t *testing.T) {
	days := []int{7, 3, 1}
	for _, d := range days {
		if !matchesReminder(days, d) {
			t.Errorf("expected %d to match", d)
		}
	}
	for _, d := range []int{0, 2, 14, -1} {
		if matchesReminder(days, d) {
			t.Errorf("did not expect %d to match", d)
		}
	}
}

func TestDecodeEventData(t *testing.T) {
	event := events.Event{
		Type:      events.ExpenseCreated,
		Timestamp: time.Now(),
		// After a JSON round trip through the stream, Data arrives as
		// a generic map.
		Data: map[string]any{
			"expenseId": "exp-0000000001",
			"userId":    "usr-001",
			"category":  "Dining",
			"amount":    "42.50",
		},
	}

	data, err := decodeEventData[events.ExpenseEvent](event)
	if err != nil {
		t.Fatalf("decodeEventData: %v", err)
	}
	if data.ExpenseID != "exp-0000000001" || data.UserID != "usr-001" || data.Category != "Dining" {
		t.Errorf("unexpected payload: %+v", data)
	}
	if !data.Amount.Equal(decimal.RequireFromString("42.50")) {
		t.Errorf("amount = %s, want 42.50", data.Amount)
	}
}
