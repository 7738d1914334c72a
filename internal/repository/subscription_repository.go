package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gil10101/sokin-sub000/internal/models"
	sokredis "github.com/gil10101/sokin-sub000/internal/redis"
)

type SubscriptionRepository struct {
	db    *sql.DB
	rdb   *sokredis.Client
	cache *sokredis.ViewCache[[]models.Subscription]
}

func NewSubscriptionRepository(db *sql.DB, rdb *sokredis.Client) *SubscriptionRepository {
	return &SubscriptionRepository{
		db:    db,
		rdb:   rdb,
		cache: sokredis.NewViewCache[[]models.Subscription](rdb.Client, sokredis.DefaultTTL),
	}
}

func (r *SubscriptionRepository) Create(ctx context.Context, sub *models.Subscription) error {
	query := `
		INSERT INTO subscriptions (id, user_id, name, amount, billing_cycle, next_billing_date, category, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		sub.ID, sub.UserID, sub.Name, sub.Amount, sub.BillingCycle,
		sub.NextBillingDate, sub.Category, sub.IsActive, sub.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	r.invalidate(ctx, sub.UserID)
	return nil
}

func (r *SubscriptionRepository) Update(ctx context.Context, sub *models.Subscription) error {
	query := `
		UPDATE subscriptions
		SET name = $1, amount = $2, billing_cycle = $3, next_billing_date = $4, category = $5, is_active = $6
		WHERE id = $7
	`
	_, err := r.db.ExecContext(ctx, query,
		sub.Name, sub.Amount, sub.BillingCycle, sub.NextBillingDate,
		sub.Category, sub.IsActive, sub.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update subscription: %w", err)
	}
	r.invalidate(ctx, sub.UserID)
	return nil
}

func (r *SubscriptionRepository) Delete(ctx context.Context, id, userID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM subscriptions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete subscription: %w", err)
	}
	r.invalidate(ctx, userID)
	return nil
}

func (r *SubscriptionRepository) GetByID(ctx context.Context, id string) (*models.Subscription, error) {
	query := `
		SELECT id, user_id, name, amount, billing_cycle, next_billing_date, category, is_active, created_at
		FROM subscriptions
		WHERE id = $1
	`
	var sub models.Subscription
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&sub.ID, &sub.UserID, &sub.Name, &sub.Amount, &sub.BillingCycle,
		&sub.NextBillingDate, &sub.Category, &sub.IsActive, &sub.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("subscription not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	return &sub, nil
}

func (r *SubscriptionRepository) ListByUser(ctx context.Context, userID string) ([]models.Subscription, error) {
	cacheKey := subscriptionListKeyPrefix + userID
	if cached, ok := r.cache.Get(ctx, cacheKey); ok {
		return *cached, nil
	}

	query := `
		SELECT id, user_id, name, amount, billing_cycle, next_billing_date, category, is_active, created_at
		FROM subscriptions
		WHERE user_id = $1
		ORDER BY next_billing_date ASC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	defer rows.Close()

	subs := []models.Subscription{}
	for rows.Next() {
		var sub models.Subscription
		if err := rows.Scan(
			&sub.ID, &sub.UserID, &sub.Name, &sub.Amount, &sub.BillingCycle,
			&sub.NextBillingDate, &sub.Category, &sub.IsActive, &sub.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan subscription: %w", err)
		}
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	r.cache.Set(ctx, cacheKey, &subs)
	return subs, nil
}

func (r *SubscriptionRepository) invalidate(ctx context.Context, userID string) {
	r.rdb.InvalidatePattern(ctx, subscriptionListKeyPrefix+userID+"*")
}
