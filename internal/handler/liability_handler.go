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
)

// LiabilityManager defines the liability operations used by LiabilityHandler.
type LiabilityManager interface {
	Create(ctx context.Context, cmd cqrs.CreateLiabilityCommand) (*models.Liability, error)
	Update(ctx context.Context, cmd cqrs.UpdateLiabilityCommand) (*models.Liability, error)
	Delete(ctx context.Context, cmd cqrs.DeleteLiabilityCommand) error
	Get(ctx context.Context, q cqrs.GetLiabilityQuery) (*models.Liability, error)
	List(ctx context.Context, q cqrs.ListLiabilitiesQuery) ([]models.Liability, error)
}

type LiabilityHandler struct {
	liabilities LiabilityManager
}

func NewLiabilityHandler(liabilities LiabilityManager) *LiabilityHandler {
	return &LiabilityHandler{liabilities: liabilities}
}

type CreateLiabilityRequest struct {
	Category       string          `json:"category" validate:"required,oneof=credit_cards mortgages student_loans auto_loans personal_loans other_debts"`
	Type           string          `json:"type" validate:"required"`
	Name           string          `json:"name" validate:"required"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	OriginalAmount decimal.Decimal `json:"originalAmount"`
	InterestRate   decimal.Decimal `json:"interestRate"`
	MinimumPayment decimal.Decimal `json:"minimumPayment"`
	DueDate        *time.Time      `json:"dueDate"`
}

type UpdateLiabilityRequest struct {
	Category       *string          `json:"category" validate:"omitempty,oneof=credit_cards mortgages student_loans auto_loans personal_loans other_debts"`
	Type           *string          `json:"type"`
	Name           *string          `json:"name"`
	CurrentBalance *decimal.Decimal `json:"currentBalance"`
	InterestRate   *decimal.Decimal `json:"interestRate"`
	MinimumPayment *decimal.Decimal `json:"minimumPayment"`
	DueDate        *time.Time       `json:"dueDate"`
}

func (h *LiabilityHandler) Create(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req CreateLiabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	liability, err := h.liabilities.Create(c.Request.Context(), cqrs.CreateLiabilityCommand{
		UserID:         userID,
		Category:       req.Category,
		Type:           req.Type,
		Name:           req.Name,
		CurrentBalance: req.CurrentBalance,
		OriginalAmount: req.OriginalAmount,
		InterestRate:   req.InterestRate,
		MinimumPayment: req.MinimumPayment,
		DueDate:        req.DueDate,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	middleware.RespondWithData(c, http.StatusCreated, liability)
}

func (h *LiabilityHandler) List(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	liabilities, err := h.liabilities.List(c.Request.Context(), cqrs.ListLiabilitiesQuery{UserID: userID})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	middleware.RespondWithData(c, http.StatusOK, liabilities)
}

func (h *LiabilityHandler) Get(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	liability, err := h.liabilities.Get(c.Request.Context(), cqrs.GetLiabilityQuery{
		LiabilityID:      c.Param("liabilityId"),
		RequestingUserID: userID,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	middleware.RespondWithData(c, http.StatusOK, liability)
}

func (h *LiabilityHandler) Update(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req UpdateLiabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	liability, err := h.liabilities.Update(c.Request.Context(), cqrs.UpdateLiabilityCommand{
		LiabilityID:      c.Param("liabilityId"),
		RequestingUserID: userID,
		Category:         req.Category,
		Type:             req.Type,
		Name:             req.Name,
		CurrentBalance:   req.CurrentBalance,
		InterestRate:     req.InterestRate,
		MinimumPayment:   req.MinimumPayment,
		DueDate:          req.DueDate,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	middleware.RespondWithData(c, http.StatusOK, liability)
}

func (h *LiabilityHandler) Delete(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	err := h.liabilities.Delete(c.Request.Context(), cqrs.DeleteLiabilityCommand{
		LiabilityID:      c.Param("liabilityId"),
		RequestingUserID: userID,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	middleware.RespondWithMessage(c, http.StatusOK, nil, "Liability deleted")
}
