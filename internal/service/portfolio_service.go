package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gil10101/sokin-sub000/internal/cqrs"
	"github.com/gil10101/sokin-sub000/internal/finance"
	"github.com/gil10101/sokin-sub000/internal/models"
	"github.com/gil10101/sokin-sub000/internal/quotes"
	"github.com/gil10101/sokin-sub000/internal/repository"
	"github.com/gil10101/sokin-sub000/internal/utils"
)

const (
	TransactionBuy  = "buy"
	TransactionSell = "sell"
)

// PortfolioService maintains average-cost holdings from a buy/sell
// ledger and values them against live quotes.
type PortfolioService struct {
	holdings *repository.HoldingRepository
	quotes   quotes.Provider
}

func NewPortfolioService(holdings *repository.HoldingRepository, provider quotes.Provider) *PortfolioService {
	return &PortfolioService{holdings: holdings, quotes: provider}
}

func (s *PortfolioService) ExecuteTransaction(ctx context.Context, cmd cqrs.ExecuteStockTransactionCommand) (*models.StockTransaction, error) {
	symbol := strings.ToUpper(strings.TrimSpace(cmd.Symbol))
	if symbol == "" {
		return nil, fmt.Errorf("symbol is required")
	}
	if !cmd.Shares.IsPositive() {
		return nil, fmt.Errorf("shares must be greater than zero")
	}
	if !cmd.Price.IsPositive() {
		return nil, fmt.Errorf("price must be greater than zero")
	}

	holding, err := s.holdings.GetByUserAndSymbol(ctx, cmd.UserID, symbol)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	switch cmd.Type {
	case TransactionBuy:
		if holding == nil {
			holding = &models.Holding{
				ID:        utils.GenerateID(utils.HoldingPrefix),
				UserID:    cmd.UserID,
				Symbol:    symbol,
				CreatedAt: now,
			}
		}
		updated := finance.ApplyBuy(*holding, cmd.Shares, cmd.Price)
		updated.UpdatedAt = now
		if err := s.holdings.Upsert(ctx, &updated); err != nil {
			return nil, err
		}
	case TransactionSell:
		if holding == nil {
			return nil, fmt.Errorf("no position in %s", symbol)
		}
		updated, closed, err := finance.ApplySell(*holding, cmd.Shares)
		if err != nil {
			return nil, err
		}
		if closed {
			if err := s.holdings.Delete(ctx, cmd.UserID, symbol); err != nil {
				return nil, err
			}
		} else {
			updated.UpdatedAt = now
			if err := s.holdings.Upsert(ctx, &updated); err != nil {
				return nil, err
			}
		}
	default:
		return nil, fmt.Errorf("invalid transaction type")
	}

	tx := &models.StockTransaction{
		ID:         utils.GenerateID(utils.StockTransactionPrefix),
		UserID:     cmd.UserID,
		Symbol:     symbol,
		Type:       cmd.Type,
		Shares:     cmd.Shares,
		Price:      cmd.Price,
		TotalValue: cmd.Shares.Mul(cmd.Price).Round(2),
		CreatedAt:  now,
	}
	if err := s.holdings.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// Portfolio values the user's holdings at current prices. Holdings
// whose symbols cannot be priced are left out of the valuation.
func (s *PortfolioService) Portfolio(ctx context.Context, q cqrs.PortfolioQuery) (*finance.PortfolioSummary, error) {
	holdings, err := s.holdings.ListByUser(ctx, q.UserID)
	if err != nil {
		return nil, err
	}

	symbols := make([]string, 0, len(holdings))
	for _, h := range holdings {
		symbols = append(symbols, h.Symbol)
	}
	priced, err := s.quotes.GetQuotes(ctx, symbols)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quotes: %w", err)
	}

	summary := finance.ValueHoldings(holdings, priced)
	return &summary, nil
}

func (s *PortfolioService) ListTransactions(ctx context.Context, q cqrs.ListStockTransactionsQuery) ([]models.StockTransaction, error) {
	return s.holdings.ListTransactions(ctx, q.UserID)
}
