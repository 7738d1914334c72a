// Package quotes fetches market prices for portfolio valuation. The
// HTTP provider talks to a quote API configured by environment and
// caches results in Redis so valuation stays cheap under load.
package quotes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/gil10101/sokin-sub000/internal/config"
	"github.com/gil10101/sokin-sub000/internal/finance"
	sokredis "github.com/gil10101/sokin-sub000/internal/redis"
)

// Provider returns current prices for a set of symbols. Symbols the
// provider cannot price are simply absent from the result; callers
// treat missing quotes as unpriceable holdings.
type Provider interface {
	GetQuotes(ctx context.Context, symbols []string) (map[string]finance.Quote, error)
}

const cacheKeyPrefix = "quote:"

// HTTPProvider fetches quotes from a JSON endpoint, one symbol per
// request, with a per-symbol Redis cache in front.
type HTTPProvider struct {
	baseURL string
	client  *http.Client
	cache   *sokredis.ViewCache[finance.Quote]
	log     *logrus.Logger
}

func NewHTTPProvider(baseURL string, rdb *sokredis.Client) *HTTPProvider {
	return &HTTPProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
		cache:   sokredis.NewViewCache[finance.Quote](rdb.Client, sokredis.DefaultTTL),
		log:     config.Logger(),
	}
}

func (p *HTTPProvider) GetQuotes(ctx context.Context, symbols []string) (map[string]finance.Quote, error) {
	quotes := make(map[string]finance.Quote, len(symbols))
	for _, symbol := range symbols {
		symbol = strings.ToUpper(strings.TrimSpace(symbol))
		if symbol == "" {
			continue
		}
		quote, err := p.getQuote(ctx, symbol)
		if err != nil {
			// Best-effort: an unpriceable symbol must not take down
			// the whole valuation.
			p.log.WithFields(logrus.Fields{
				"symbol": symbol,
				"error":  err.Error(),
			}).Warn("failed to fetch quote")
			continue
		}
		quotes[symbol] = quote
	}
	return quotes, nil
}

func (p *HTTPProvider) getQuote(ctx context.Context, symbol string) (finance.Quote, error) {
	cacheKey := cacheKeyPrefix + symbol
	if cached, ok := p.cache.Get(ctx, cacheKey); ok {
		return *cached, nil
	}

	reqURL := fmt.Sprintf("%s/quote?symbol=%s", p.baseURL, url.QueryEscape(symbol))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return finance.Quote{}, fmt.Errorf("failed to build quote request: %w", err)
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return finance.Quote{}, fmt.Errorf("failed to fetch quote: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return finance.Quote{}, fmt.Errorf("quote endpoint returned status %d", resp.StatusCode)
	}

	var body struct {
		Symbol        string          `json:"symbol"`
		Price         decimal.Decimal `json:"price"`
		Change        decimal.Decimal `json:"change"`
		ChangePercent float64         `json:"changePercent"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return finance.Quote{}, fmt.Errorf("failed to decode quote: %w", err)
	}
	if body.Price.IsZero() {
		return finance.Quote{}, fmt.Errorf("quote endpoint returned no price for %s", symbol)
	}

	quote := finance.Quote{
		Symbol:        symbol,
		Price:         body.Price,
		Change:        body.Change,
		ChangePercent: body.ChangePercent,
	}
	p.cache.Set(ctx, cacheKey, &quote)
	return quote, nil
}

// StaticProvider serves a fixed quote table. Used in tests and as the
// fallback when no quote endpoint is configured.
type StaticProvider struct {
	Quotes map[string]finance.Quote
}

func (p *StaticProvider) GetQuotes(_ context.Context, symbols []string) (map[string]finance.Quote, error) {
	quotes := make(map[string]finance.Quote, len(symbols))
	for _, symbol := range symbols {
		symbol = strings.ToUpper(strings.TrimSpace(symbol))
		if quote, ok := p.Quotes[symbol]; ok {
			quotes[symbol] = quote
		}
	}
	return quotes, nil
}
