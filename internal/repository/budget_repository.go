package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gil10101/sokin-sub000/internal/models"
	sokredis "github.com/gil10101/sokin-sub000/internal/redis"
)

type BudgetRepository struct {
	db    *sql.DB
	rdb   *sokredis.Client
	cache *sokredis.ViewCache[[]models.Budget]
}

func NewBudgetRepository(db *sql.DB, rdb *sokredis.Client) *BudgetRepository {
	return &BudgetRepository{
		db:    db,
		rdb:   rdb,
		cache: sokredis.NewViewCache[[]models.Budget](rdb.Client, sokredis.DefaultTTL),
	}
}

func (r *BudgetRepository) Create(ctx context.Context, budget *models.Budget) error {
	query := `
		INSERT INTO budgets (id, user_id, category, amount, period, start_date, end_date, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		budget.ID, budget.UserID, budget.Category, budget.Amount,
		budget.Period, budget.StartDate, budget.EndDate, budget.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to create budget: %w", err)
	}
	r.invalidate(ctx, budget.UserID)
	return nil
}

func (r *BudgetRepository) Update(ctx context.Context, budget *models.Budget) error {
	query := `
		UPDATE budgets
		SET category = $1, amount = $2, period = $3, start_date = $4, end_date = $5, notes = $6
		WHERE id = $7
	`
	_, err := r.db.ExecContext(ctx, query,
		budget.Category, budget.Amount, budget.Period,
		budget.StartDate, budget.EndDate, budget.Notes, budget.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update budget: %w", err)
	}
	r.invalidate(ctx, budget.UserID)
	return nil
}

func (r *BudgetRepository) Delete(ctx context.Context, id, userID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM budgets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}
	r.invalidate(ctx, userID)
	return nil
}

func (r *BudgetRepository) GetByID(ctx context.Context, id string) (*models.Budget, error) {
	query := `
		SELECT id, user_id, category, amount, period, start_date, end_date, notes
		FROM budgets
		WHERE id = $1
	`
	var budget models.Budget
	var endDate sql.NullTime
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&budget.ID, &budget.UserID, &budget.Category, &budget.Amount,
		&budget.Period, &budget.StartDate, &endDate, &budget.Notes,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("budget not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	if endDate.Valid {
		budget.EndDate = &endDate.Time
	}
	return &budget, nil
}

func (r *BudgetRepository) ListByUser(ctx context.Context, userID string) ([]models.Budget, error) {
	cacheKey := budgetListKeyPrefix + userID
	if cached, ok := r.cache.Get(ctx, cacheKey); ok {
		return *cached, nil
	}

	query := `
		SELECT id, user_id, category, amount, period, start_date, end_date, notes
		FROM budgets
		WHERE user_id = $1
		ORDER BY start_date DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	defer rows.Close()

	budgets := []models.Budget{}
	for rows.Next() {
		var budget models.Budget
		var endDate sql.NullTime
		if err := rows.Scan(
			&budget.ID, &budget.UserID, &budget.Category, &budget.Amount,
			&budget.Period, &budget.StartDate, &endDate, &budget.Notes,
		); err != nil {
			return nil, fmt.Errorf("failed to scan budget: %w", err)
		}
		if endDate.Valid {
			budget.EndDate = &endDate.Time
		}
		budgets = append(budgets, budget)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	r.cache.Set(ctx, cacheKey, &budgets)
	return budgets, nil
}

// ListByUserAndCategory serves the worker's budget re-evaluation after an
// expense mutation. It reuses the cached user list when present.
func (r *BudgetRepository) ListByUserAndCategory(ctx context.Context, userID, category string) ([]models.Budget, error) {
	budgets, err := r.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	matched := []models.Budget{}
	for _, b := range budgets {
		if b.Category == category {
			matched = append(matched, b)
		}
	}
	return matched, nil
}

func (r *BudgetRepository) invalidate(ctx context.Context, userID string) {
	r.rdb.InvalidatePattern(ctx, budgetListKeyPrefix+userID+"*")
}
