package handler

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gil10101/sokin-sub000/internal/cqrs"
	"github.com/gil10101/sokin-sub000/internal/models"
)

type mockWatchlistManager struct {
	getFn     func(cqrs.WatchlistQuery) (*models.Watchlist, error)
	replaceFn func(cqrs.ReplaceWatchlistCommand) (*models.Watchlist, error)
}

func (m *mockWatchlistManager) Get(_ context.Context, q cqrs.WatchlistQuery) (*models.Watchlist, error) {
	if m.getFn != nil {
		return m.getFn(q)
	}
	return nil, fmt.Errorf("not configured")
}
func (m *mockWatchlistManager) Replace(_ context.Context, cmd cqrs.ReplaceWatchlistCommand) (*models.Watchlist, error) {
	if m.replaceFn != nil {
		return m.replaceFn(cmd)
	}
	return nil, fmt.Errorf("not configured")
}

func newWatchlistTestRouter(watchlists WatchlistManager, authUserID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(fakeAuth(authUserID))
	h := NewWatchlistHandler(watchlists)
	r.GET("/v1/watchlist", h.Get)
	r.PUT("/v1/watchlist", h.Replace)
	return r
}

func TestGetWatchlist(t *testing.T) {
	tests := []struct {
		name           string
		getFn          func(cqrs.WatchlistQuery) (*models.Watchlist, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success",
			getFn: func(q cqrs.WatchlistQuery) (*models.Watchlist, error) {
				return &models.Watchlist{
					ID: "wch-0000000001", UserID: q.UserID,
					Symbols: []string{"AAPL", "MSFT"}, CreatedAt: time.Now(), UpdatedAt: time.Now(),
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"symbols":["AAPL","MSFT"]`,
		},
		{
			name: "success - never saved returns empty list",
			getFn: func(q cqrs.WatchlistQuery) (*models.Watchlist, error) {
				return &models.Watchlist{UserID: q.UserID, Symbols: []string{}}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"symbols":[]`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newWatchlistTestRouter(&mockWatchlistManager{getFn: tt.getFn}, "usr-001")
			w := doRequest(router, http.MethodGet, "/v1/watchlist", nil)
			if w.Code != tt.expectedStatus {
				t.Fatalf("expected %d got %d; body: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
			if !strings.Contains(w.Body.String(), tt.expectedBody) {
				t.Errorf("expected %s in response, got %s", tt.expectedBody, w.Body.String())
			}
		})
	}
}

func TestReplaceWatchlist(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		replaceFn      func(cqrs.ReplaceWatchlistCommand) (*models.Watchlist, error)
		expectedStatus int
	}{
		{
			name: "success",
			body: map[string]any{"symbols": []string{"AAPL", "TSLA"}},
			replaceFn: func(cmd cqrs.ReplaceWatchlistCommand) (*models.Watchlist, error) {
				if len(cmd.Symbols) != 2 {
					t.Errorf("expected 2 symbols forwarded, got %d", len(cmd.Symbols))
				}
				return &models.Watchlist{ID: "wch-0000000001", UserID: cmd.UserID, Symbols: cmd.Symbols}, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "success - empty body clears the list",
			body: map[string]any{},
			replaceFn: func(cmd cqrs.ReplaceWatchlistCommand) (*models.Watchlist, error) {
				if len(cmd.Symbols) != 0 {
					t.Errorf("expected no symbols forwarded, got %d", len(cmd.Symbols))
				}
				return &models.Watchlist{ID: "wch-0000000001", UserID: cmd.UserID, Symbols: []string{}}, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "bad request - malformed body",
			body:           "aapl",
			expectedStatus: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newWatchlistTestRouter(&mockWatchlistManager{replaceFn: tt.replaceFn}, "usr-001")
			w := doRequest(router, http.MethodPut, "/v1/watchlist", tt.body)
			if w.Code != tt.expectedStatus {
				t.Errorf("expected %d got %d; body: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}
