package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/gil10101/sokin-sub000/internal/models"
	sokredis "github.com/gil10101/sokin-sub000/internal/redis"
)

// WatchlistRepository persists the one-row-per-user symbol watchlist.
type WatchlistRepository struct {
	db    *sql.DB
	rdb   *sokredis.Client
	cache *sokredis.ViewCache[models.Watchlist]
}

func NewWatchlistRepository(db *sql.DB, rdb *sokredis.Client) *WatchlistRepository {
	return &WatchlistRepository{
		db:    db,
		rdb:   rdb,
		cache: sokredis.NewViewCache[models.Watchlist](rdb.Client, sokredis.DefaultTTL),
	}
}

// GetByUser returns the user's watchlist, or (nil, nil) when none has
// been saved yet.
func (r *WatchlistRepository) GetByUser(ctx context.Context, userID string) (*models.Watchlist, error) {
	cacheKey := watchlistKeyPrefix + userID
	if cached, ok := r.cache.Get(ctx, cacheKey); ok {
		return cached, nil
	}

	query := `
		SELECT id, user_id, symbols, created_at, updated_at
		FROM watchlists
		WHERE user_id = $1
	`
	var w models.Watchlist
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&w.ID, &w.UserID, pq.Array(&w.Symbols), &w.CreatedAt, &w.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get watchlist: %w", err)
	}

	r.cache.Set(ctx, cacheKey, &w)
	return &w, nil
}

// Upsert writes the watchlist, replacing the symbol list on conflict.
func (r *WatchlistRepository) Upsert(ctx context.Context, w *models.Watchlist) error {
	query := `
		INSERT INTO watchlists (id, user_id, symbols, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE
		SET symbols = EXCLUDED.symbols,
		    updated_at = EXCLUDED.updated_at
	`
	_, err := r.db.ExecContext(ctx, query,
		w.ID, w.UserID, pq.Array(w.Symbols), w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert watchlist: %w", err)
	}
	r.rdb.InvalidatePattern(ctx, watchlistKeyPrefix+w.UserID+"*")
	return nil
}
