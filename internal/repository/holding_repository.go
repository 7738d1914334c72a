package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gil10101/sokin-sub000/internal/models"
	sokredis "github.com/gil10101/sokin-sub000/internal/redis"
)

// HoldingRepository persists portfolio holdings and their backing
// buy/sell ledger. Holdings are keyed by (user_id, symbol); the ledger
// is append-only.
type HoldingRepository struct {
	db    *sql.DB
	rdb   *sokredis.Client
	cache *sokredis.ViewCache[[]models.Holding]
}

func NewHoldingRepository(db *sql.DB, rdb *sokredis.Client) *HoldingRepository {
	return &HoldingRepository{
		db:    db,
		rdb:   rdb,
		cache: sokredis.NewViewCache[[]models.Holding](rdb.Client, sokredis.DefaultTTL),
	}
}

// GetByUserAndSymbol returns the position for symbol, or (nil, nil)
// when the user holds none.
func (r *HoldingRepository) GetByUserAndSymbol(ctx context.Context, userID, symbol string) (*models.Holding, error) {
	query := `
		SELECT id, user_id, symbol, shares, average_price, total_invested, created_at, updated_at
		FROM holdings
		WHERE user_id = $1 AND symbol = $2
	`
	var h models.Holding
	err := r.db.QueryRowContext(ctx, query, userID, symbol).Scan(
		&h.ID, &h.UserID, &h.Symbol, &h.Shares,
		&h.AveragePrice, &h.TotalInvested, &h.CreatedAt, &h.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get holding: %w", err)
	}
	return &h, nil
}

// Upsert writes the position, inserting on first buy and replacing the
// position fields on subsequent trades.
func (r *HoldingRepository) Upsert(ctx context.Context, h *models.Holding) error {
	query := `
		INSERT INTO holdings (id, user_id, symbol, shares, average_price, total_invested, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id, symbol) DO UPDATE
		SET shares = EXCLUDED.shares,
		    average_price = EXCLUDED.average_price,
		    total_invested = EXCLUDED.total_invested,
		    updated_at = EXCLUDED.updated_at
	`
	_, err := r.db.ExecContext(ctx, query,
		h.ID, h.UserID, h.Symbol, h.Shares,
		h.AveragePrice, h.TotalInvested, h.CreatedAt, h.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert holding: %w", err)
	}
	r.invalidate(ctx, h.UserID)
	return nil
}

// Delete removes a fully sold out position.
func (r *HoldingRepository) Delete(ctx context.Context, userID, symbol string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM holdings WHERE user_id = $1 AND symbol = $2`, userID, symbol)
	if err != nil {
		return fmt.Errorf("failed to delete holding: %w", err)
	}
	r.invalidate(ctx, userID)
	return nil
}

func (r *HoldingRepository) ListByUser(ctx context.Context, userID string) ([]models.Holding, error) {
	cacheKey := holdingListKeyPrefix + userID
	if cached, ok := r.cache.Get(ctx, cacheKey); ok {
		return *cached, nil
	}

	query := `
		SELECT id, user_id, symbol, shares, average_price, total_invested, created_at, updated_at
		FROM holdings
		WHERE user_id = $1
		ORDER BY symbol ASC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list holdings: %w", err)
	}
	defer rows.Close()

	holdings := []models.Holding{}
	for rows.Next() {
		var h models.Holding
		if err := rows.Scan(
			&h.ID, &h.UserID, &h.Symbol, &h.Shares,
			&h.AveragePrice, &h.TotalInvested, &h.CreatedAt, &h.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan holding: %w", err)
		}
		holdings = append(holdings, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list holdings: %w", err)
	}

	r.cache.Set(ctx, cacheKey, &holdings)
	return holdings, nil
}

// CreateTransaction appends to the buy/sell ledger.
func (r *HoldingRepository) CreateTransaction(ctx context.Context, tx *models.StockTransaction) error {
	query := `
		INSERT INTO stock_transactions (id, user_id, symbol, type, shares, price, total_value, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		tx.ID, tx.UserID, tx.Symbol, tx.Type,
		tx.Shares, tx.Price, tx.TotalValue, tx.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create stock transaction: %w", err)
	}
	return nil
}

func (r *HoldingRepository) ListTransactions(ctx context.Context, userID string) ([]models.StockTransaction, error) {
	query := `
		SELECT id, user_id, symbol, type, shares, price, total_value, created_at
		FROM stock_transactions
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock transactions: %w", err)
	}
	defer rows.Close()

	txs := []models.StockTransaction{}
	for rows.Next() {
		var tx models.StockTransaction
		if err := rows.Scan(
			&tx.ID, &tx.UserID, &tx.Symbol, &tx.Type,
			&tx.Shares, &tx.Price, &tx.TotalValue, &tx.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan stock transaction: %w", err)
		}
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list stock transactions: %w", err)
	}
	return txs, nil
}

func (r *HoldingRepository) invalidate(ctx context.Context, userID string) {
	r.rdb.InvalidatePattern(ctx, holdingListKeyPrefix+userID+"*")
}
