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

// SubscriptionManager defines the subscription operations used by
// SubscriptionHandler.
type SubscriptionManager interface {
	Create(ctx context.Context, cmd cqrs.CreateSubscriptionCommand) (*models.Subscription, error)
	Update(ctx context.Context, cmd cqrs.UpdateSubscriptionCommand) (*models.Subscription, error)
	Delete(ctx context.Context, cmd cqrs.DeleteSubscriptionCommand) error
	Get(ctx context.Context, q cqrs.GetSubscriptionQuery) (*models.Subscription, error)
	List(ctx context.Context, q cqrs.ListSubscriptionsQuery) ([]models.Subscription, error)
}

type SubscriptionHandler struct {
	subscriptions SubscriptionManager
}

func NewSubscriptionHandler(subscriptions SubscriptionManager) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptions: subscriptions}
}

type CreateSubscriptionRequest struct {
	Name            string          `json:"name" validate:"required"`
	Amount          decimal.Decimal `json:"amount"`
	BillingCycle    string          `json:"billingCycle" validate:"required,oneof=weekly monthly quarterly yearly"`
	NextBillingDate time.Time       `json:"nextBillingDate" validate:"required"`
	Category        string          `json:"category"`
}

type UpdateSubscriptionRequest struct {
	Name            *string          `json:"name"`
	Amount          *decimal.Decimal `json:"amount"`
	BillingCycle    *string          `json:"billingCycle" validate:"omitempty,oneof=weekly monthly quarterly yearly"`
	NextBillingDate *time.Time       `json:"nextBillingDate"`
	Category        *string          `json:"category"`
	IsActive        *bool            `json:"isActive"`
}

func (h *SubscriptionHandler) Create(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	sub, err := h.subscriptions.Create(c.Request.Context(), cqrs.CreateSubscriptionCommand{
		UserID:          userID,
		Name:            req.Name,
		Amount:          req.Amount,
		BillingCycle:    req.BillingCycle,
		NextBillingDate: req.NextBillingDate,
		Category:        req.Category,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	middleware.RespondWithData(c, http.StatusCreated, sub)
}

func (h *SubscriptionHandler) List(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	subs, err := h.subscriptions.List(c.Request.Context(), cqrs.ListSubscriptionsQuery{UserID: userID})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	middleware.RespondWithData(c, http.StatusOK, subs)
}

func (h *SubscriptionHandler) Get(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	sub, err := h.subscriptions.Get(c.Request.Context(), cqrs.GetSubscriptionQuery{
		SubscriptionID:   c.Param("subscriptionId"),
		RequestingUserID: userID,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	middleware.RespondWithData(c, http.StatusOK, sub)
}

func (h *SubscriptionHandler) Update(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req UpdateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	sub, err := h.subscriptions.Update(c.Request.Context(), cqrs.UpdateSubscriptionCommand{
		SubscriptionID:   c.Param("subscriptionId"),
		RequestingUserID: userID,
		Name:             req.Name,
		Amount:           req.Amount,
		BillingCycle:     req.BillingCycle,
		NextBillingDate:  req.NextBillingDate,
		Category:         req.Category,
		IsActive:         req.IsActive,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	middleware.RespondWithData(c, http.StatusOK, sub)
}

func (h *SubscriptionHandler) Delete(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	err := h.subscriptions.Delete(c.Request.Context(), cqrs.DeleteSubscriptionCommand{
		SubscriptionID:   c.Param("subscriptionId"),
		RequestingUserID: userID,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	middleware.RespondWithMessage(c, http.StatusOK, nil, "Subscription deleted")
}
