package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gil10101/sokin-sub000/internal/cqrs"
	"github.com/gil10101/sokin-sub000/internal/middleware"
	"github.com/gil10101/sokin-sub000/internal/models"
	"github.com/gil10101/sokin-sub000/internal/service"
)

// NetWorthReader defines the net worth operations used by NetWorthHandler.
type NetWorthReader interface {
	Overview(ctx context.Context, q cqrs.NetWorthQuery) (*service.NetWorthOverview, error)
	History(ctx context.Context, q cqrs.NetWorthHistoryQuery) ([]models.NetWorthSnapshot, error)
	CreateSnapshot(ctx context.Context, cmd cqrs.CreateSnapshotCommand) (*models.NetWorthSnapshot, error)
}

type NetWorthHandler struct {
	networth NetWorthReader
}

func NewNetWorthHandler(networth NetWorthReader) *NetWorthHandler {
	return &NetWorthHandler{networth: networth}
}

func (h *NetWorthHandler) Overview(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	overview, err := h.networth.Overview(c.Request.Context(), cqrs.NetWorthQuery{UserID: userID})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	middleware.RespondWithData(c, http.StatusOK, overview)
}

func (h *NetWorthHandler) History(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	months := 12
	if raw := c.Query("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			middleware.RespondWithError(c, http.StatusBadRequest, "months must be a positive integer")
			return
		}
		months = parsed
	}

	snapshots, err := h.networth.History(c.Request.Context(), cqrs.NetWorthHistoryQuery{
		UserID: userID,
		Months: months,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	middleware.RespondWithData(c, http.StatusOK, snapshots)
}

func (h *NetWorthHandler) CreateSnapshot(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	snap, err := h.networth.CreateSnapshot(c.Request.Context(), cqrs.CreateSnapshotCommand{UserID: userID})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	middleware.RespondWithData(c, http.StatusCreated, snap)
}
