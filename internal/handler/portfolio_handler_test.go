package handler

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/gil10101/sokin-sub000/internal/cqrs"
	"github.com/gil10101/sokin-sub000/internal/finance"
	"github.com/gil10101/sokin-sub000/internal/models"
)

type mockPortfolioManager struct {
	executeFn   func(cqrs.ExecuteStockTransactionCommand) (*models.StockTransaction, error)
	portfolioFn func(cqrs.PortfolioQuery) (*finance.PortfolioSummary, error)
	listFn      func(cqrs.ListStockTransactionsQuery) ([]models.StockTransaction, error)
}

func (m *mockPortfolioManager) ExecuteTransaction(_ context.Context, cmd cqrs.ExecuteStockTransactionCommand) (*models.StockTransaction, error) {
	if m.executeFn != nil {
		return m.executeFn(cmd)
	}
	return nil, fmt.Errorf("not configured")
}
func (m *mockPortfolioManager) Portfolio(_ context.Context, q cqrs.PortfolioQuery) (*finance.PortfolioSummary, error) {
	if m.portfolioFn != nil {
		return m.portfolioFn(q)
	}
	return nil, fmt.Errorf("not configured")
}
func (m *mockPortfolioManager) ListTransactions(_ context.Context, q cqrs.ListStockTransactionsQuery) ([]models.StockTransaction, error) {
	if m.listFn != nil {
		return m.listFn(q)
	}
	return nil, fmt.Errorf("not configured")
}

func newPortfolioTestRouter(portfolio PortfolioManager, authUserID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(fakeAuth(authUserID))
	h := NewPortfolioHandler(portfolio)
	v1 := r.Group("/v1/portfolio")
	v1.GET("", h.Get)
	v1.POST("/transactions", h.ExecuteTransaction)
	v1.GET("/transactions", h.ListTransactions)
	return r
}

func TestExecuteStockTransaction(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		executeFn      func(cqrs.ExecuteStockTransactionCommand) (*models.StockTransaction, error)
		expectedStatus int
	}{
		{
			name: "success - buy",
			body: map[string]any{"symbol": "AAPL", "type": "buy", "shares": "10", "price": "150"},
			executeFn: func(cmd cqrs.ExecuteStockTransactionCommand) (*models.StockTransaction, error) {
				return &models.StockTransaction{
					ID: "stx-0000000001", UserID: cmd.UserID, Symbol: "AAPL", Type: "buy",
					Shares: decimal.NewFromInt(10), Price: decimal.NewFromInt(150),
					TotalValue: decimal.NewFromInt(1500),
				}, nil
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "bad request - unknown type",
			body:           map[string]any{"symbol": "AAPL", "type": "short", "shares": "10", "price": "150"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "bad request - selling more than held",
			body: map[string]any{"symbol": "AAPL", "type": "sell", "shares": "99", "price": "150"},
			executeFn: func(cmd cqrs.ExecuteStockTransactionCommand) (*models.StockTransaction, error) {
				return nil, finance.ErrInsufficientShares
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "bad request - no position",
			body: map[string]any{"symbol": "TSLA", "type": "sell", "shares": "1", "price": "100"},
			executeFn: func(cmd cqrs.ExecuteStockTransactionCommand) (*models.StockTransaction, error) {
				return nil, fmt.Errorf("no position in TSLA")
			},
			expectedStatus: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newPortfolioTestRouter(&mockPortfolioManager{executeFn: tt.executeFn}, "usr-001")
			w := doRequest(router, http.MethodPost, "/v1/portfolio/transactions", tt.body)
			if w.Code != tt.expectedStatus {
				t.Errorf("expected %d got %d; body: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestGetPortfolio(t *testing.T) {
	portfolioFn := func(q cqrs.PortfolioQuery) (*finance.PortfolioSummary, error) {
		return &finance.PortfolioSummary{
			Holdings:   []finance.ValuedHolding{},
			TotalValue: decimal.NewFromInt(15000),
		}, nil
	}
	router := newPortfolioTestRouter(&mockPortfolioManager{portfolioFn: portfolioFn}, "usr-001")
	w := doRequest(router, http.MethodGet, "/v1/portfolio", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d; body: %s", w.Code, w.Body.String())
	}
	if !decodeEnvelope(w).Success {
		t.Errorf("expected success envelope, got %s", w.Body.String())
	}
}
