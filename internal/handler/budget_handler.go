package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/gil10101/sokin-sub000/internal/cqrs"
	"github.com/gil10101/sokin-sub000/internal/middleware"
	"github.com/gil10101/sokin-sub000/internal/models"
	"github.com/gil10101/sokin-sub000/internal/service"
)

// BudgetManager defines the budget operations used by BudgetHandler.
type BudgetManager interface {
	Create(ctx context.Context, cmd cqrs.CreateBudgetCommand) (*models.Budget, error)
	Update(ctx context.Context, cmd cqrs.UpdateBudgetCommand) (*models.Budget, error)
	Delete(ctx context.Context, cmd cqrs.DeleteBudgetCommand) error
	Get(ctx context.Context, q cqrs.GetBudgetQuery) (*service.BudgetStatus, error)
	List(ctx context.Context, q cqrs.ListBudgetsQuery) ([]service.BudgetStatus, error)
}

type BudgetHandler struct {
	budgets BudgetManager
}

func NewBudgetHandler(budgets BudgetManager) *BudgetHandler {
	return &BudgetHandler{budgets: budgets}
}

type CreateBudgetRequest struct {
	Category  string          `json:"category" validate:"required"`
	Amount    decimal.Decimal `json:"amount"`
	Period    string          `json:"period" validate:"required,oneof=monthly yearly weekly daily custom"`
	StartDate time.Time       `json:"startDate"`
	EndDate   *time.Time      `json:"endDate"`
	Notes     string          `json:"notes"`
}

type UpdateBudgetRequest struct {
	Category  *string          `json:"category"`
	Amount    *decimal.Decimal `json:"amount"`
	Period    *string          `json:"period" validate:"omitempty,oneof=monthly yearly weekly daily custom"`
	StartDate *time.Time       `json:"startDate"`
	EndDate   *time.Time       `json:"endDate"`
	Notes     *string          `json:"notes"`
}

func (h *BudgetHandler) Create(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	budget, err := h.budgets.Create(c.Request.Context(), cqrs.CreateBudgetCommand{
		UserID:    userID,
		Category:  req.Category,
		Amount:    req.Amount,
		Period:    req.Period,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Notes:     req.Notes,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	middleware.RespondWithData(c, http.StatusCreated, budget)
}

func (h *BudgetHandler) List(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	budgets, err := h.budgets.List(c.Request.Context(), cqrs.ListBudgetsQuery{UserID: userID})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	middleware.RespondWithData(c, http.StatusOK, budgets)
}

func (h *BudgetHandler) Get(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	budget, err := h.budgets.Get(c.Request.Context(), cqrs.GetBudgetQuery{
		BudgetID:         c.Param("budgetId"),
		RequestingUserID: userID,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	middleware.RespondWithData(c, http.StatusOK, budget)
}

func (h *BudgetHandler) Update(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	budget, err := h.budgets.Update(c.Request.Context(), cqrs.UpdateBudgetCommand{
		BudgetID:         c.Param("budgetId"),
		RequestingUserID: userID,
		Category:         req.Category,
		Amount:           req.Amount,
		Period:           req.Period,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		Notes:            req.Notes,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	middleware.RespondWithData(c, http.StatusOK, budget)
}

func (h *BudgetHandler) Delete(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	err := h.budgets.Delete(c.Request.Context(), cqrs.DeleteBudgetCommand{
		BudgetID:         c.Param("budgetId"),
		RequestingUserID: userID,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	middleware.RespondWithMessage(c, http.StatusOK, nil, "Budget deleted")
}
