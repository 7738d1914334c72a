package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/gil10101/sokin-sub000/internal/cqrs"
	"github.com/gil10101/sokin-sub000/internal/finance"
	"github.com/gil10101/sokin-sub000/internal/middleware"
	"github.com/gil10101/sokin-sub000/internal/models"
)

// BillManager defines the bill operations used by BillHandler.
type BillManager interface {
	Create(ctx context.Context, cmd cqrs.CreateBillCommand) (*models.BillReminder, error)
	Update(ctx context.Context, cmd cqrs.UpdateBillCommand) (*models.BillReminder, error)
	Pay(ctx context.Context, cmd cqrs.PayBillCommand) (*models.BillReminder, error)
	Delete(ctx context.Context, cmd cqrs.DeleteBillCommand) error
	Get(ctx context.Context, q cqrs.GetBillQuery) (*models.BillReminder, error)
	List(ctx context.Context, q cqrs.ListBillsQuery) ([]models.BillReminder, error)
	Stats(ctx context.Context, q cqrs.BillStatsQuery) (finance.BillStats, error)
}

type BillHandler struct {
	bills BillManager
}

func NewBillHandler(bills BillManager) *BillHandler {
	return &BillHandler{bills: bills}
}

type CreateBillRequest struct {
	Name           string          `json:"name" validate:"required"`
	Amount         decimal.Decimal `json:"amount"`
	DueDate        time.Time       `json:"dueDate" validate:"required"`
	Frequency      string          `json:"frequency" validate:"required,oneof=weekly monthly quarterly yearly one-time"`
	Category       string          `json:"category"`
	ReminderDays   []int           `json:"reminderDays"`
	AutoPayEnabled bool            `json:"autoPayEnabled"`
}

type UpdateBillRequest struct {
	Name           *string          `json:"name"`
	Amount         *decimal.Decimal `json:"amount"`
	DueDate        *time.Time       `json:"dueDate"`
	Frequency      *string          `json:"frequency" validate:"omitempty,oneof=weekly monthly quarterly yearly one-time"`
	Category       *string          `json:"category"`
	ReminderDays   []int            `json:"reminderDays"`
	AutoPayEnabled *bool            `json:"autoPayEnabled"`
}

type PayBillRequest struct {
	PaidDate *time.Time `json:"paidDate"`
}

func (h *BillHandler) Create(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	bill, err := h.bills.Create(c.Request.Context(), cqrs.CreateBillCommand{
		UserID:         userID,
		Name:           req.Name,
		Amount:         req.Amount,
		DueDate:        req.DueDate,
		Frequency:      req.Frequency,
		Category:       req.Category,
		ReminderDays:   req.ReminderDays,
		AutoPayEnabled: req.AutoPayEnabled,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	middleware.RespondWithData(c, http.StatusCreated, bill)
}

func (h *BillHandler) List(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	bills, err := h.bills.List(c.Request.Context(), cqrs.ListBillsQuery{UserID: userID})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	middleware.RespondWithData(c, http.StatusOK, bills)
}

func (h *BillHandler) Stats(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	stats, err := h.bills.Stats(c.Request.Context(), cqrs.BillStatsQuery{UserID: userID})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	middleware.RespondWithData(c, http.StatusOK, stats)
}

func (h *BillHandler) Get(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	bill, err := h.bills.Get(c.Request.Context(), cqrs.GetBillQuery{
		BillID:           c.Param("billId"),
		RequestingUserID: userID,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	middleware.RespondWithData(c, http.StatusOK, bill)
}

func (h *BillHandler) Update(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req UpdateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	bill, err := h.bills.Update(c.Request.Context(), cqrs.UpdateBillCommand{
		BillID:           c.Param("billId"),
		RequestingUserID: userID,
		Name:             req.Name,
		Amount:           req.Amount,
		DueDate:          req.DueDate,
		Frequency:        req.Frequency,
		Category:         req.Category,
		ReminderDays:     req.ReminderDays,
		AutoPayEnabled:   req.AutoPayEnabled,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	middleware.RespondWithData(c, http.StatusOK, bill)
}

func (h *BillHandler) Pay(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	// An empty body means "paid now".
	var req PayBillRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	cmd := cqrs.PayBillCommand{
		BillID:           c.Param("billId"),
		RequestingUserID: userID,
	}
	if req.PaidDate != nil {
		cmd.PaidDate = *req.PaidDate
	}

	bill, err := h.bills.Pay(c.Request.Context(), cmd)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	middleware.RespondWithData(c, http.StatusOK, bill)
}

func (h *BillHandler) Delete(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	err := h.bills.Delete(c.Request.Context(), cqrs.DeleteBillCommand{
		BillID:           c.Param("billId"),
		RequestingUserID: userID,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	middleware.RespondWithMessage(c, http.StatusOK, nil, "Bill deleted")
}
