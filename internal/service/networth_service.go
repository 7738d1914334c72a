package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gil10101/sokin-sub000/internal/cqrs"
	"github.com/gil10101/sokin-sub000/internal/finance"
	"github.com/gil10101/sokin-sub000/internal/models"
	"github.com/gil10101/sokin-sub000/internal/repository"
	"github.com/gil10101/sokin-sub000/internal/utils"
)

// NetWorthOverview is the live balance-sheet summary plus the
// month-over-month movement against the latest snapshot.
type NetWorthOverview struct {
	finance.NetWorthSummary
	MonthlyChange        decimal.Decimal `json:"monthlyChange"`
	MonthlyChangePercent float64         `json:"monthlyChangePercent"`
}

// NetWorthService computes live summaries and maintains the snapshot
// history behind the trend chart.
type NetWorthService struct {
	assets      *repository.AssetRepository
	liabilities *repository.LiabilityRepository
	snapshots   *repository.SnapshotRepository
}

func NewNetWorthService(
	assets *repository.AssetRepository,
	liabilities *repository.LiabilityRepository,
	snapshots *repository.SnapshotRepository,
) *NetWorthService {
	return &NetWorthService{assets: assets, liabilities: liabilities, snapshots: snapshots}
}

func (s *NetWorthService) Overview(ctx context.Context, q cqrs.NetWorthQuery) (*NetWorthOverview, error) {
	summary, err := s.liveSummary(ctx, q.UserID)
	if err != nil {
		return nil, err
	}

	overview := &NetWorthOverview{NetWorthSummary: summary}
	latest, err := s.snapshots.GetLatest(ctx, q.UserID)
	if err != nil {
		return nil, err
	}
	if latest != nil {
		overview.MonthlyChange, overview.MonthlyChangePercent =
			finance.MonthlyChange(summary.NetWorth, latest.NetWorth)
	}
	return overview, nil
}

// History returns snapshots over the trailing months, oldest first.
func (s *NetWorthService) History(ctx context.Context, q cqrs.NetWorthHistoryQuery) ([]models.NetWorthSnapshot, error) {
	months := q.Months
	if months <= 0 {
		months = 12
	}
	since := time.Now().UTC().AddDate(0, -months, 0)
	return s.snapshots.ListByUserSince(ctx, q.UserID, since)
}

// CreateSnapshot appends a point-in-time record of the live summary.
func (s *NetWorthService) CreateSnapshot(ctx context.Context, cmd cqrs.CreateSnapshotCommand) (*models.NetWorthSnapshot, error) {
	summary, err := s.liveSummary(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	snap := &models.NetWorthSnapshot{
		ID:                 utils.GenerateID(utils.SnapshotPrefix),
		UserID:             cmd.UserID,
		Date:               time.Now().UTC(),
		NetWorth:           summary.NetWorth,
		TotalAssets:        summary.TotalAssets,
		TotalLiabilities:   summary.TotalLiabilities,
		AssetBreakdown:     summary.AssetBreakdown,
		LiabilityBreakdown: summary.LiabilityBreakdown,
	}
	if err := s.snapshots.Create(ctx, snap); err != nil {
		return nil, err
	}
	return snap, nil
}

func (s *NetWorthService) liveSummary(ctx context.Context, userID string) (finance.NetWorthSummary, error) {
	assets, err := s.assets.ListByUser(ctx, userID)
	if err != nil {
		return finance.NetWorthSummary{}, err
	}
	liabilities, err := s.liabilities.ListByUser(ctx, userID)
	if err != nil {
		return finance.NetWorthSummary{}, err
	}
	return finance.ComputeNetWorth(assets, liabilities), nil
}
