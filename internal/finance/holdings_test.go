package finance

import (
	"testing"

	"github.com/gil10101/sokin-sub000/internal/models"
)

func TestApplyBuyAveragesCost(t *testing.T) {
	h := models.Holding{Symbol: "AAPL"}
	h = ApplyBuy(h, dec("10"), dec("100"))
	h = ApplyBuy(h, dec("10"), dec("200"))

	if !h.Shares.Equal(dec("20")) {
		t.Errorf("shares = %s, want 20", h.Shares)
	}
	if !h.TotalInvested.Equal(dec("3000")) {
		t.Errorf("invested = %s, want 3000", h.TotalInvested)
	}
	if !h.AveragePrice.Equal(dec("150")) {
		t.Errorf("average price = %s, want 150", h.AveragePrice)
	}
}

func TestApplySell(t *testing.T) {
	h := ApplyBuy(models.Holding{Symbol: "AAPL"}, dec("10"), dec("100"))

	partial, closed, err := ApplySell(h, dec("4"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if closed {
		t.Error("partial sell should not close the position")
	}
	if !partial.Shares.Equal(dec("6")) || !partial.TotalInvested.Equal(dec("600")) {
		t.Errorf("after partial sell: shares %s invested %s, want 6 / 600", partial.Shares, partial.TotalInvested)
	}

	_, closed, err = ApplySell(h, dec("10"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !closed {
		t.Error("selling all shares should close the position")
	}

	if _, _, err := ApplySell(h, dec("11")); err != ErrInsufficientShares {
		t.Errorf("overselling should return ErrInsufficientShares, got %v", err)
	}
}

func TestValueHoldings(t *testing.T) {
	holdings := []models.Holding{
		ApplyBuy(models.Holding{Symbol: "AAPL"}, dec("10"), dec("100")),
		ApplyBuy(models.Holding{Symbol: "MSFT"}, dec("5"), dec("200")),
		ApplyBuy(models.Holding{Symbol: "NOPE"}, dec("1"), dec("50")), // no quote
	}
	quotes := map[string]Quote{
		"AAPL": {Symbol: "AAPL", Price: dec("120")},
		"MSFT": {Symbol: "MSFT", Price: dec("180")},
	}

	summary := ValueHoldings(holdings, quotes)
	if len(summary.Holdings) != 2 {
		t.Fatalf("got %d valued holdings, want 2 (unquoted symbol skipped)", len(summary.Holdings))
	}
	if !summary.TotalValue.Equal(dec("2100")) {
		t.Errorf("total value = %s, want 2100", summary.TotalValue)
	}
	if !summary.TotalInvested.Equal(dec("2000")) {
		t.Errorf("total invested = %s, want 2000", summary.TotalInvested)
	}

	aapl := summary.Holdings[0]
	if !aapl.GainLoss.Equal(dec("200")) {
		t.Errorf("AAPL gain = %s, want 200", aapl.GainLoss)
	}
	if aapl.GainLossPercent != 20 {
		t.Errorf("AAPL gain pct = %v, want 20", aapl.GainLossPercent)
	}
}

func TestValueHoldingsZeroAveragePrice(t *testing.T) {
	holdings := []models.Holding{{Symbol: "FREE", Shares: dec("3")}}
	quotes := map[string]Quote{"FREE": {Symbol: "FREE", Price: dec("10")}}

	summary := ValueHoldings(holdings, quotes)
	if len(summary.Holdings) != 1 {
		t.Fatalf("got %d valued holdings, want 1", len(summary.Holdings))
	}
	if summary.Holdings[0].GainLossPercent != 0 {
		t.Errorf("zero average price must not divide, pct = %v", summary.Holdings[0].GainLossPercent)
	}
}
