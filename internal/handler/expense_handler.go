package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/gil10101/sokin-sub000/internal/cqrs"
	"github.com/gil10101/sokin-sub000/internal/middleware"
	"github.com/gil10101/sokin-sub000/internal/models"
)

// ExpenseManager defines the expense operations used by ExpenseHandler.
type ExpenseManager interface {
	Create(ctx context.Context, cmd cqrs.CreateExpenseCommand) (*models.Expense, error)
	Update(ctx context.Context, cmd cqrs.UpdateExpenseCommand) (*models.Expense, error)
	Delete(ctx context.Context, cmd cqrs.DeleteExpenseCommand) error
	Get(ctx context.Context, q cqrs.GetExpenseQuery) (*models.Expense, error)
	List(ctx context.Context, q cqrs.ListExpensesQuery) ([]models.Expense, error)
}

type ExpenseHandler struct {
	expenses ExpenseManager
}

func NewExpenseHandler(expenses ExpenseManager) *ExpenseHandler {
	return &ExpenseHandler{expenses: expenses}
}

// Date is a FlexTime: ISO strings, epoch millis and timestamp wrapper
// objects all bind; an unparseable value stays invalid rather than
// rejecting the request.
type CreateExpenseRequest struct {
	Name        string          `json:"name" validate:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category" validate:"required"`
	Date        models.FlexTime `json:"date"`
	Description string          `json:"description"`
}

type UpdateExpenseRequest struct {
	Name        *string          `json:"name"`
	Amount      *decimal.Decimal `json:"amount"`
	Category    *string          `json:"category"`
	Date        *models.FlexTime `json:"date"`
	Description *string          `json:"description"`
}

func (h *ExpenseHandler) Create(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	expense, err := h.expenses.Create(c.Request.Context(), cqrs.CreateExpenseCommand{
		UserID:      userID,
		Name:        req.Name,
		Amount:      req.Amount,
		Category:    req.Category,
		Date:        req.Date,
		Description: req.Description,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	middleware.RespondWithData(c, http.StatusCreated, expense)
}

func (h *ExpenseHandler) List(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	expenses, err := h.expenses.List(c.Request.Context(), cqrs.ListExpensesQuery{UserID: userID})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	middleware.RespondWithData(c, http.StatusOK, expenses)
}

func (h *ExpenseHandler) Get(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	expense, err := h.expenses.Get(c.Request.Context(), cqrs.GetExpenseQuery{
		ExpenseID:        c.Param("expenseId"),
		RequestingUserID: userID,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	middleware.RespondWithData(c, http.StatusOK, expense)
}

func (h *ExpenseHandler) Update(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	expense, err := h.expenses.Update(c.Request.Context(), cqrs.UpdateExpenseCommand{
		ExpenseID:        c.Param("expenseId"),
		RequestingUserID: userID,
		Name:             req.Name,
		Amount:           req.Amount,
		Category:         req.Category,
		Date:             req.Date,
		Description:      req.Description,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	middleware.RespondWithData(c, http.StatusOK, expense)
}

func (h *ExpenseHandler) Delete(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	err := h.expenses.Delete(c.Request.Context(), cqrs.DeleteExpenseCommand{
		ExpenseID:        c.Param("expenseId"),
		RequestingUserID: userID,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	middleware.RespondWithMessage(c, http.StatusOK, nil, "Expense deleted")
}
