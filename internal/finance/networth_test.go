package finance

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/gil10101/sokin-sub000/internal/models"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestComputeNetWorth(t *testing.T) {
	assets := []models.Asset{
		{Category: models.AssetBankAccounts, CurrentValue: dec("1500.50")},
		{Category: models.AssetBankAccounts, CurrentValue: dec("499.50")},
		{Category: models.AssetVehicles, CurrentValue: dec("12000")},
	}
	liabilities := []models.Liability{
		{Category: models.LiabilityCreditCards, CurrentBalance: dec("750.25")},
		{Category: models.LiabilityStudentLoans, CurrentBalance: dec("9000")},
	}

	summary := ComputeNetWorth(assets, liabilities)

	if !summary.TotalAssets.Equal(dec("14000")) {
		t.Errorf("TotalAssets = %s, want 14000", summary.TotalAssets)
	}
	if !summary.TotalLiabilities.Equal(dec("9750.25")) {
		t.Errorf("TotalLiabilities = %s, want 9750.25", summary.TotalLiabilities)
	}
	if !summary.NetWorth.Equal(dec("4249.75")) {
		t.Errorf("NetWorth = %s, want 4249.75", summary.NetWorth)
	}
	if !summary.AssetBreakdown[models.AssetBankAccounts].Equal(dec("2000")) {
		t.Errorf("bank_accounts breakdown = %s, want 2000", summary.AssetBreakdown[models.AssetBankAccounts])
	}
	if _, ok := summary.AssetBreakdown[models.AssetRealEstate]; ok {
		t.Error("breakdown should omit categories with no records, got real_estate entry")
	}
	if len(summary.LiabilityBreakdown) != 2 {
		t.Errorf("LiabilityBreakdown has %d entries, want 2", len(summary.LiabilityBreakdown))
	}
}

func TestComputeNetWorthNegative(t *testing.T) {
	assets := []models.Asset{{Category: models.AssetBankAccounts, CurrentValue: dec("100")}}
	liabilities := []models.Liability{{Category: models.LiabilityMortgages, CurrentBalance: dec("250000")}}

	summary := ComputeNetWorth(assets, liabilities)
	if !summary.NetWorth.Equal(dec("-249900")) {
		t.Errorf("NetWorth = %s, want -249900", summary.NetWorth)
	}
}

func TestComputeNetWorthEmpty(t *testing.T) {
	summary := ComputeNetWorth(nil, nil)
	if !summary.TotalAssets.IsZero() || !summary.TotalLiabilities.IsZero() || !summary.NetWorth.IsZero() {
		t.Errorf("empty input should yield all-zero totals, got %+v", summary)
	}
	if len(summary.AssetBreakdown) != 0 || len(summary.LiabilityBreakdown) != 0 {
		t.Errorf("empty input should yield empty breakdowns, got %+v", summary)
	}
}

func TestComputeNetWorthIdempotent(t *testing.T) {
	assets := []models.Asset{{Category: models.AssetOtherValuables, CurrentValue: dec("42")}}
	liabilities := []models.Liability{{Category: models.LiabilityOtherDebts, CurrentBalance: dec("7")}}

	first := ComputeNetWorth(assets, liabilities)
	second := ComputeNetWorth(assets, liabilities)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("re-running on the same input changed the output: %+v vs %+v", first, second)
	}
}

func TestMonthlyChange(t *testing.T) {
	tests := []struct {
		name       string
		current    decimal.Decimal
		previous   decimal.Decimal
		wantChange decimal.Decimal
		wantPct    float64
	}{
		{"growth", dec("1100"), dec("1000"), dec("100"), 10},
		{"decline", dec("900"), dec("1000"), dec("-100"), -10},
		{"negative previous uses absolute base", dec("-50"), dec("-100"), dec("50"), 50},
		{"zero previous guards division", dec("500"), dec("0"), dec("500"), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			change, pct := MonthlyChange(tt.current, tt.previous)
			if !change.Equal(tt.wantChange) {
				t.Errorf("change = %s, want %s", change, tt.wantChange)
			}
			if pct != tt.wantPct {
				t.Errorf("pct = %v, want %v", pct, tt.wantPct)
			}
		})
	}
}
