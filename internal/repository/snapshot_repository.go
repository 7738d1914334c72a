package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gil10101/sokin-sub000/internal/models"
)

// SnapshotRepository persists net worth snapshots. Snapshots are
// append-only so there is no update path and no list cache; reads are
// already cheap range scans on (user_id, date).
type SnapshotRepository struct {
	db *sql.DB
}

func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

func (r *SnapshotRepository) Create(ctx context.Context, snap *models.NetWorthSnapshot) error {
	assetJSON, err := json.Marshal(snap.AssetBreakdown)
	if err != nil {
		return fmt.Errorf("failed to encode asset breakdown: %w", err)
	}
	liabilityJSON, err := json.Marshal(snap.LiabilityBreakdown)
	if err != nil {
		return fmt.Errorf("failed to encode liability breakdown: %w", err)
	}

	query := `
		INSERT INTO net_worth_snapshots (id, user_id, date, net_worth, total_assets, total_liabilities, asset_breakdown, liability_breakdown)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = r.db.ExecContext(ctx, query,
		snap.ID, snap.UserID, snap.Date, snap.NetWorth,
		snap.TotalAssets, snap.TotalLiabilities, assetJSON, liabilityJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to create snapshot: %w", err)
	}
	return nil
}

// GetLatest returns the user's most recent snapshot, or (nil, nil)
// when the user has none yet.
func (r *SnapshotRepository) GetLatest(ctx context.Context, userID string) (*models.NetWorthSnapshot, error) {
	query := `
		SELECT id, user_id, date, net_worth, total_assets, total_liabilities, asset_breakdown, liability_breakdown
		FROM net_worth_snapshots
		WHERE user_id = $1
		ORDER BY date DESC
		LIMIT 1
	`
	snap, err := scanSnapshot(r.db.QueryRowContext(ctx, query, userID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest snapshot: %w", err)
	}
	return snap, nil
}

// ListByUserSince returns snapshots on or after since, oldest first.
func (r *SnapshotRepository) ListByUserSince(ctx context.Context, userID string, since time.Time) ([]models.NetWorthSnapshot, error) {
	query := `
		SELECT id, user_id, date, net_worth, total_assets, total_liabilities, asset_breakdown, liability_breakdown
		FROM net_worth_snapshots
		WHERE user_id = $1 AND date >= $2
		ORDER BY date ASC
	`
	rows, err := r.db.QueryContext(ctx, query, userID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer rows.Close()

	snaps := []models.NetWorthSnapshot{}
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		snaps = append(snaps, *snap)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	return snaps, nil
}

func scanSnapshot(row rowScanner) (*models.NetWorthSnapshot, error) {
	var (
		snap          models.NetWorthSnapshot
		assetJSON     []byte
		liabilityJSON []byte
	)
	err := row.Scan(
		&snap.ID, &snap.UserID, &snap.Date, &snap.NetWorth,
		&snap.TotalAssets, &snap.TotalLiabilities, &assetJSON, &liabilityJSON,
	)
	if err != nil {
		return nil, err
	}
	snap.AssetBreakdown = map[string]decimal.Decimal{}
	snap.LiabilityBreakdown = map[string]decimal.Decimal{}
	if err := json.Unmarshal(assetJSON, &snap.AssetBreakdown); err != nil {
		return nil, fmt.Errorf("failed to decode asset breakdown: %w", err)
	}
	if err := json.Unmarshal(liabilityJSON, &snap.LiabilityBreakdown); err != nil {
		return nil, fmt.Errorf("failed to decode liability breakdown: %w", err)
	}
	return &snap, nil
}
