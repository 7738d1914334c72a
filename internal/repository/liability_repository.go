package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gil10101/sokin-sub000/internal/models"
	sokredis "github.com/gil10101/sokin-sub000/internal/redis"
)

type LiabilityRepository struct {
	db    *sql.DB
	rdb   *sokredis.Client
	cache *sokredis.ViewCache[[]models.Liability]
}

func NewLiabilityRepository(db *sql.DB, rdb *sokredis.Client) *LiabilityRepository {
	return &LiabilityRepository{
		db:    db,
		rdb:   rdb,
		cache: sokredis.NewViewCache[[]models.Liability](rdb.Client, sokredis.DefaultTTL),
	}
}

func (r *LiabilityRepository) Create(ctx context.Context, liability *models.Liability) error {
	query := `
		INSERT INTO liabilities (id, user_id, category, type, name, current_balance,
			original_amount, interest_rate, minimum_payment, due_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.ExecContext(ctx, query,
		liability.ID, liability.UserID, liability.Category, liability.Type,
		liability.Name, liability.CurrentBalance, liability.OriginalAmount,
		liability.InterestRate, liability.MinimumPayment, liability.DueDate,
		liability.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create liability: %w", err)
	}
	r.invalidate(ctx, liability.UserID)
	return nil
}

func (r *LiabilityRepository) Update(ctx context.Context, liability *models.Liability) error {
	query := `
		UPDATE liabilities
		SET category = $1, type = $2, name = $3, current_balance = $4,
			interest_rate = $5, minimum_payment = $6, due_date = $7
		WHERE id = $8
	`
	_, err := r.db.ExecContext(ctx, query,
		liability.Category, liability.Type, liability.Name,
		liability.CurrentBalance, liability.InterestRate,
		liability.MinimumPayment, liability.DueDate, liability.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update liability: %w", err)
	}
	r.invalidate(ctx, liability.UserID)
	return nil
}

func (r *LiabilityRepository) Delete(ctx context.Context, id, userID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM liabilities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete liability: %w", err)
	}
	r.invalidate(ctx, userID)
	return nil
}

func (r *LiabilityRepository) GetByID(ctx context.Context, id string) (*models.Liability, error) {
	query := `
		SELECT id, user_id, category, type, name, current_balance,
			original_amount, interest_rate, minimum_payment, due_date, created_at
		FROM liabilities
		WHERE id = $1
	`
	var liability models.Liability
	var dueDate sql.NullTime
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&liability.ID, &liability.UserID, &liability.Category, &liability.Type,
		&liability.Name, &liability.CurrentBalance, &liability.OriginalAmount,
		&liability.InterestRate, &liability.MinimumPayment, &dueDate,
		&liability.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("liability not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get liability: %w", err)
	}
	if dueDate.Valid {
		liability.DueDate = &dueDate.Time
	}
	return &liability, nil
}

func (r *LiabilityRepository) ListByUser(ctx context.Context, userID string) ([]models.Liability, error) {
	cacheKey := liabilityListKeyPrefix + userID
	if cached, ok := r.cache.Get(ctx, cacheKey); ok {
		return *cached, nil
	}

	query := `
		SELECT id, user_id, category, type, name, current_balance,
			original_amount, interest_rate, minimum_payment, due_date, created_at
		FROM liabilities
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list liabilities: %w", err)
	}
	defer rows.Close()

	liabilities := []models.Liability{}
	for rows.Next() {
		var liability models.Liability
		var dueDate sql.NullTime
		if err := rows.Scan(
			&liability.ID, &liability.UserID, &liability.Category, &liability.Type,
			&liability.Name, &liability.CurrentBalance, &liability.OriginalAmount,
			&liability.InterestRate, &liability.MinimumPayment, &dueDate,
			&liability.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan liability: %w", err)
		}
		if dueDate.Valid {
			liability.DueDate = &dueDate.Time
		}
		liabilities = append(liabilities, liability)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list liabilities: %w", err)
	}

	r.cache.Set(ctx, cacheKey, &liabilities)
	return liabilities, nil
}

func (r *LiabilityRepository) invalidate(ctx context.Context, userID string) {
	r.rdb.InvalidatePattern(ctx, liabilityListKeyPrefix+userID+"*")
	r.rdb.InvalidatePattern(ctx, netWorthKeyPrefix+userID+"*")
}
