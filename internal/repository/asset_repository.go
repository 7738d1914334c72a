package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gil10101/sokin-sub000/internal/models"
	sokredis "github.com/gil10101/sokin-sub000/internal/redis"
)

// AssetRepository persists assets in Postgres with a Redis read-through
// cache on the per-user list. Every mutation invalidates the user's
// cached entries so the next read falls back to the source of truth.
type AssetRepository struct {
	db    *sql.DB
	rdb   *sokredis.Client
	cache *sokredis.ViewCache[[]models.Asset]
}

func NewAssetRepository(db *sql.DB, rdb *sokredis.Client) *AssetRepository {
	return &AssetRepository{
		db:    db,
		rdb:   rdb,
		cache: sokredis.NewViewCache[[]models.Asset](rdb.Client, sokredis.DefaultTTL),
	}
}

func (r *AssetRepository) Create(ctx context.Context, asset *models.Asset) error {
	query := `
		INSERT INTO assets (id, user_id, category, type, name, current_value, last_updated, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		asset.ID, asset.UserID, asset.Category, asset.Type,
		asset.Name, asset.CurrentValue, asset.LastUpdated, asset.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create asset: %w", err)
	}
	r.invalidate(ctx, asset.UserID)
	return nil
}

func (r *AssetRepository) Update(ctx context.Context, asset *models.Asset) error {
	query := `
		UPDATE assets
		SET category = $1, type = $2, name = $3, current_value = $4, last_updated = $5
		WHERE id = $6
	`
	_, err := r.db.ExecContext(ctx, query,
		asset.Category, asset.Type, asset.Name,
		asset.CurrentValue, asset.LastUpdated, asset.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update asset: %w", err)
	}
	r.invalidate(ctx, asset.UserID)
	return nil
}

func (r *AssetRepository) Delete(ctx context.Context, id, userID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM assets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	r.invalidate(ctx, userID)
	return nil
}

func (r *AssetRepository) GetByID(ctx context.Context, id string) (*models.Asset, error) {
	query := `
		SELECT id, user_id, category, type, name, current_value, last_updated, created_at
		FROM assets
		WHERE id = $1
	`
	var asset models.Asset
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&asset.ID, &asset.UserID, &asset.Category, &asset.Type,
		&asset.Name, &asset.CurrentValue, &asset.LastUpdated, &asset.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("asset not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}
	return &asset, nil
}

// ListByUser returns the user's assets, Redis first with a Postgres
// fallback that warms the cache.
func (r *AssetRepository) ListByUser(ctx context.Context, userID string) ([]models.Asset, error) {
	cacheKey := assetListKeyPrefix + userID
	if cached, ok := r.cache.Get(ctx, cacheKey); ok {
		return *cached, nil
	}

	query := `
		SELECT id, user_id, category, type, name, current_value, last_updated, created_at
		FROM assets
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	defer rows.Close()

	assets := []models.Asset{}
	for rows.Next() {
		var asset models.Asset
		if err := rows.Scan(
			&asset.ID, &asset.UserID, &asset.Category, &asset.Type,
			&asset.Name, &asset.CurrentValue, &asset.LastUpdated, &asset.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan asset: %w", err)
		}
		assets = append(assets, asset)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}

	r.cache.Set(ctx, cacheKey, &assets)
	return assets, nil
}

func (r *AssetRepository) invalidate(ctx context.Context, userID string) {
	r.rdb.InvalidatePattern(ctx, assetListKeyPrefix+userID+"*")
	r.rdb.InvalidatePattern(ctx, netWorthKeyPrefix+userID+"*")
}
