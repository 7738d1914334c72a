package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/gil10101/sokin-sub000/internal/cqrs"
	"github.com/gil10101/sokin-sub000/internal/finance"
	"github.com/gil10101/sokin-sub000/internal/middleware"
	"github.com/gil10101/sokin-sub000/internal/models"
)

// PortfolioManager defines the portfolio operations used by PortfolioHandler.
type PortfolioManager interface {
	ExecuteTransaction(ctx context.Context, cmd cqrs.ExecuteStockTransactionCommand) (*models.StockTransaction, error)
	Portfolio(ctx context.Context, q cqrs.PortfolioQuery) (*finance.PortfolioSummary, error)
	ListTransactions(ctx context.Context, q cqrs.ListStockTransactionsQuery) ([]models.StockTransaction, error)
}

type PortfolioHandler struct {
	portfolio PortfolioManager
}

func NewPortfolioHandler(portfolio PortfolioManager) *PortfolioHandler {
	return &PortfolioHandler{portfolio: portfolio}
}

type StockTransactionRequest struct {
	Symbol string          `json:"symbol" validate:"required"`
	Type   string          `json:"type" validate:"required,oneof=buy sell"`
	Shares decimal.Decimal `json:"shares"`
	Price  decimal.Decimal `json:"price"`
}

func (h *PortfolioHandler) Get(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	summary, err := h.portfolio.Portfolio(c.Request.Context(), cqrs.PortfolioQuery{UserID: userID})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	middleware.RespondWithData(c, http.StatusOK, summary)
}

func (h *PortfolioHandler) ExecuteTransaction(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req StockTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	tx, err := h.portfolio.ExecuteTransaction(c.Request.Context(), cqrs.ExecuteStockTransactionCommand{
		UserID: userID,
		Symbol: req.Symbol,
		Type:   req.Type,
		Shares: req.Shares,
		Price:  req.Price,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	middleware.RespondWithData(c, http.StatusCreated, tx)
}

func (h *PortfolioHandler) ListTransactions(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	txs, err := h.portfolio.ListTransactions(c.Request.Context(), cqrs.ListStockTransactionsQuery{UserID: userID})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	middleware.RespondWithData(c, http.StatusOK, txs)
}
