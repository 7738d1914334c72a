package finance

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/gil10101/sokin-sub000/internal/models"
)

// ErrInsufficientShares is returned when a sell exceeds the held shares.
var ErrInsufficientShares = errors.New("insufficient shares")

// Quote is a point-in-time price for a symbol.
type Quote struct {
	Symbol        string          `json:"symbol"`
	Price         decimal.Decimal `json:"price"`
	Change        decimal.Decimal `json:"change"`
	ChangePercent float64         `json:"changePercent"`
}

// ValuedHolding is a holding decorated with its current market value.
type ValuedHolding struct {
	models.Holding
	Price           decimal.Decimal `json:"price"`
	TotalValue      decimal.Decimal `json:"totalValue"`
	GainLoss        decimal.Decimal `json:"gainLoss"`
	GainLossPercent float64         `json:"gainLossPercent"`
}

// PortfolioSummary is the valued view of one user's holdings.
type PortfolioSummary struct {
	Holdings             []ValuedHolding `json:"holdings"`
	TotalValue           decimal.Decimal `json:"totalValue"`
	TotalInvested        decimal.Decimal `json:"totalInvested"`
	TotalGainLoss        decimal.Decimal `json:"totalGainLoss"`
	TotalGainLossPercent float64         `json:"totalGainLossPercent"`
}

// ApplyBuy folds a purchase into a holding at weighted average cost.
func ApplyBuy(h models.Holding, shares, price decimal.Decimal) models.Holding {
	h.TotalInvested = h.TotalInvested.Add(shares.Mul(price))
	h.Shares = h.Shares.Add(shares)
	if h.Shares.IsPositive() {
		h.AveragePrice = h.TotalInvested.Div(h.Shares).Round(4)
	}
	return h
}

// ApplySell reduces a holding by the sold shares at average cost; the
// sale price affects realized gains, not the remaining book value. The
// second result is true when the position is fully closed.
func ApplySell(h models.Holding, shares decimal.Decimal) (models.Holding, bool, error) {
	if shares.GreaterThan(h.Shares) {
		return h, false, ErrInsufficientShares
	}
	h.Shares = h.Shares.Sub(shares)
	if h.Shares.IsZero() {
		return h, true, nil
	}
	h.TotalInvested = h.TotalInvested.Sub(shares.Mul(h.AveragePrice))
	return h, false, nil
}

// ValueHoldings decorates holdings with current prices and computes
// portfolio totals. A holding whose symbol has no quote is skipped —
// valuation is best-effort over the records that can be priced.
func ValueHoldings(holdings []models.Holding, quotes map[string]Quote) PortfolioSummary {
	summary := PortfolioSummary{Holdings: []ValuedHolding{}}
	for _, h := range holdings {
		quote, ok := quotes[h.Symbol]
		if !ok || h.Shares.IsZero() {
			continue
		}
		v := ValuedHolding{
			Holding:    h,
			Price:      quote.Price,
			TotalValue: quote.Price.Mul(h.Shares).Round(2),
			GainLoss:   quote.Price.Sub(h.AveragePrice).Mul(h.Shares).Round(2),
		}
		if h.AveragePrice.IsPositive() {
			pct, _ := quote.Price.Sub(h.AveragePrice).Div(h.AveragePrice).Mul(decimal.NewFromInt(100)).Round(2).Float64()
			v.GainLossPercent = pct
		}
		summary.Holdings = append(summary.Holdings, v)
		summary.TotalValue = summary.TotalValue.Add(v.TotalValue)
		summary.TotalInvested = summary.TotalInvested.Add(h.TotalInvested)
		summary.TotalGainLoss = summary.TotalGainLoss.Add(v.GainLoss)
	}
	if summary.TotalInvested.IsPositive() {
		pct, _ := summary.TotalGainLoss.Div(summary.TotalInvested).Mul(decimal.NewFromInt(100)).Round(2).Float64()
		summary.TotalGainLossPercent = pct
	}
	return summary
}
