package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gil10101/sokin-sub000/internal/cqrs"
	"github.com/gil10101/sokin-sub000/internal/middleware"
	"github.com/gil10101/sokin-sub000/internal/service"
)

// SpendingAnalyzer defines the analytics operations used by AnalyticsHandler.
type SpendingAnalyzer interface {
	Spending(ctx context.Context, q cqrs.SpendingAnalyticsQuery) (*service.SpendingReport, error)
}

type AnalyticsHandler struct {
	analytics SpendingAnalyzer
}

func NewAnalyticsHandler(analytics SpendingAnalyzer) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

func (h *AnalyticsHandler) Spending(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	months := 6
	if raw := c.Query("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			middleware.RespondWithError(c, http.StatusBadRequest, "months must be 3, 6 or 12")
			return
		}
		months = parsed
	}

	report, err := h.analytics.Spending(c.Request.Context(), cqrs.SpendingAnalyticsQuery{
		UserID: userID,
		Months: months,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	middleware.RespondWithData(c, http.StatusOK, report)
}
