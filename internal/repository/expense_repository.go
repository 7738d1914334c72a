package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gil10101/sokin-sub000/internal/models"
	sokredis "github.com/gil10101/sokin-sub000/internal/redis"
)

type ExpenseRepository struct {
	db    *sql.DB
	rdb   *sokredis.Client
	cache *sokredis.ViewCache[[]models.Expense]
}

func NewExpenseRepository(db *sql.DB, rdb *sokredis.Client) *ExpenseRepository {
	return &ExpenseRepository{
		db:    db,
		rdb:   rdb,
		cache: sokredis.NewViewCache[[]models.Expense](rdb.Client, sokredis.DefaultTTL),
	}
}

func (r *ExpenseRepository) Create(ctx context.Context, expense *models.Expense) error {
	query := `
		INSERT INTO expenses (id, user_id, name, amount, category, date, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		expense.ID, expense.UserID, expense.Name, expense.Amount,
		expense.Category, expense.Date, expense.Description, expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	r.invalidate(ctx, expense.UserID)
	return nil
}

func (r *ExpenseRepository) Update(ctx context.Context, expense *models.Expense) error {
	query := `
		UPDATE expenses
		SET name = $1, amount = $2, category = $3, date = $4, description = $5
		WHERE id = $6
	`
	_, err := r.db.ExecContext(ctx, query,
		expense.Name, expense.Amount, expense.Category,
		expense.Date, expense.Description, expense.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	r.invalidate(ctx, expense.UserID)
	return nil
}

func (r *ExpenseRepository) Delete(ctx context.Context, id, userID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	r.invalidate(ctx, userID)
	return nil
}

func (r *ExpenseRepository) GetByID(ctx context.Context, id string) (*models.Expense, error) {
	query := `
		SELECT id, user_id, name, amount, category, date, description, created_at
		FROM expenses
		WHERE id = $1
	`
	var expense models.Expense
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&expense.ID, &expense.UserID, &expense.Name, &expense.Amount,
		&expense.Category, &expense.Date, &expense.Description, &expense.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("expense not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	return &expense, nil
}

func (r *ExpenseRepository) ListByUser(ctx context.Context, userID string) ([]models.Expense, error) {
	cacheKey := expenseListKeyPrefix + userID
	if cached, ok := r.cache.Get(ctx, cacheKey); ok {
		return *cached, nil
	}

	query := `
		SELECT id, user_id, name, amount, category, date, description, created_at
		FROM expenses
		WHERE user_id = $1
		ORDER BY date DESC NULLS LAST
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	expenses := []models.Expense{}
	for rows.Next() {
		var expense models.Expense
		if err := rows.Scan(
			&expense.ID, &expense.UserID, &expense.Name, &expense.Amount,
			&expense.Category, &expense.Date, &expense.Description, &expense.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	r.cache.Set(ctx, cacheKey, &expenses)
	return expenses, nil
}

func (r *ExpenseRepository) invalidate(ctx context.Context, userID string) {
	r.rdb.InvalidatePattern(ctx, expenseListKeyPrefix+userID+"*")
	// Budget progress is derived from expenses, so its cache is stale too.
	r.rdb.InvalidatePattern(ctx, budgetListKeyPrefix+userID+"*")
}
