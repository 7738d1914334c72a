package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gil10101/sokin-sub000/internal/cqrs"
	"github.com/gil10101/sokin-sub000/internal/middleware"
	"github.com/gil10101/sokin-sub000/internal/models"
)

// WatchlistManager defines the watchlist operations used by
// WatchlistHandler.
type WatchlistManager interface {
	Get(ctx context.Context, q cqrs.WatchlistQuery) (*models.Watchlist, error)
	Replace(ctx context.Context, cmd cqrs.ReplaceWatchlistCommand) (*models.Watchlist, error)
}

type WatchlistHandler struct {
	watchlists WatchlistManager
}

func NewWatchlistHandler(watchlists WatchlistManager) *WatchlistHandler {
	return &WatchlistHandler{watchlists: watchlists}
}

// ReplaceWatchlistRequest carries the full symbol list; omitting it
// clears the watchlist.
type ReplaceWatchlistRequest struct {
	Symbols []string `json:"symbols"`
}

func (h *WatchlistHandler) Get(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	watchlist, err := h.watchlists.Get(c.Request.Context(), cqrs.WatchlistQuery{UserID: userID})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	middleware.RespondWithData(c, http.StatusOK, watchlist)
}

func (h *WatchlistHandler) Replace(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req ReplaceWatchlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	watchlist, err := h.watchlists.Replace(c.Request.Context(), cqrs.ReplaceWatchlistCommand{
		UserID:  userID,
		Symbols: req.Symbols,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	middleware.RespondWithData(c, http.StatusOK, watchlist)
}
