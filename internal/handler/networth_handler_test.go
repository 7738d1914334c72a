package handler

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/gil10101/sokin-sub000/internal/cqrs"
	"github.com/gil10101/sokin-sub000/internal/finance"
	"github.com/gil10101/sokin-sub000/internal/models"
	"github.com/gil10101/sokin-sub000/internal/service"
)

type mockNetWorthReader struct {
	overviewFn func(cqrs.NetWorthQuery) (*service.NetWorthOverview, error)
	historyFn  func(cqrs.NetWorthHistoryQuery) ([]models.NetWorthSnapshot, error)
	snapshotFn func(cqrs.CreateSnapshotCommand) (*models.NetWorthSnapshot, error)
}

func (m *mockNetWorthReader) Overview(_ context.Context, q cqrs.NetWorthQuery) (*service.NetWorthOverview, error) {
	if m.overviewFn != nil {
		return m.overviewFn(q)
	}
	return nil, fmt.Errorf("not configured")
}
func (m *mockNetWorthReader) History(_ context.Context, q cqrs.NetWorthHistoryQuery) ([]models.NetWorthSnapshot, error) {
	if m.historyFn != nil {
		return m.historyFn(q)
	}
	return nil, fmt.Errorf("not configured")
}
func (m *mockNetWorthReader) CreateSnapshot(_ context.Context, cmd cqrs.CreateSnapshotCommand) (*models.NetWorthSnapshot, error) {
	if m.snapshotFn != nil {
		return m.snapshotFn(cmd)
	}
	return nil, fmt.Errorf("not configured")
}

func newNetWorthTestRouter(networth NetWorthReader, authUserID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(fakeAuth(authUserID))
	h := NewNetWorthHandler(networth)
	v1 := r.Group("/v1/networth")
	v1.GET("", h.Overview)
	v1.GET("/history", h.History)
	v1.POST("/snapshots", h.CreateSnapshot)
	return r
}

func TestNetWorthOverview(t *testing.T) {
	overviewFn := func(q cqrs.NetWorthQuery) (*service.NetWorthOverview, error) {
		return &service.NetWorthOverview{
			NetWorthSummary: finance.NetWorthSummary{
				TotalAssets:      decimal.NewFromInt(10000),
				TotalLiabilities: decimal.NewFromInt(4000),
				NetWorth:         decimal.NewFromInt(6000),
			},
			MonthlyChange:        decimal.NewFromInt(500),
			MonthlyChangePercent: 9.09,
		}, nil
	}
	router := newNetWorthTestRouter(&mockNetWorthReader{overviewFn: overviewFn}, "usr-001")
	w := doRequest(router, http.MethodGet, "/v1/networth", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d; body: %s", w.Code, w.Body.String())
	}
	if !decodeEnvelope(w).Success {
		t.Errorf("expected success envelope, got %s", w.Body.String())
	}
}

func TestNetWorthHistoryMonths(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		expectedStatus int
		expectedMonths int
	}{
		{name: "default window", url: "/v1/networth/history", expectedStatus: http.StatusOK, expectedMonths: 12},
		{name: "explicit window", url: "/v1/networth/history?months=6", expectedStatus: http.StatusOK, expectedMonths: 6},
		{name: "bad months", url: "/v1/networth/history?months=abc", expectedStatus: http.StatusBadRequest},
		{name: "negative months", url: "/v1/networth/history?months=-3", expectedStatus: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			historyFn := func(q cqrs.NetWorthHistoryQuery) ([]models.NetWorthSnapshot, error) {
				if q.Months != tt.expectedMonths {
					t.Errorf("expected months %d, got %d", tt.expectedMonths, q.Months)
				}
				return []models.NetWorthSnapshot{}, nil
			}
			router := newNetWorthTestRouter(&mockNetWorthReader{historyFn: historyFn}, "usr-001")
			w := doRequest(router, http.MethodGet, tt.url, nil)
			if w.Code != tt.expectedStatus {
				t.Errorf("expected %d got %d; body: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestCreateSnapshot(t *testing.T) {
	snapshotFn := func(cmd cqrs.CreateSnapshotCommand) (*models.NetWorthSnapshot, error) {
		return &models.NetWorthSnapshot{
			ID: "nws-0000000001", UserID: cmd.UserID, Date: time.Now(),
			NetWorth: decimal.NewFromInt(6000), TotalAssets: decimal.NewFromInt(10000),
			TotalLiabilities: decimal.NewFromInt(4000),
		}, nil
	}
	router := newNetWorthTestRouter(&mockNetWorthReader{snapshotFn: snapshotFn}, "usr-001")
	w := doRequest(router, http.MethodPost, "/v1/networth/snapshots", nil)
	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d; body: %s", w.Code, w.Body.String())
	}
}
