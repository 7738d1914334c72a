package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/gil10101/sokin-sub000/internal/models"
	sokredis "github.com/gil10101/sokin-sub000/internal/redis"
)

type BillRepository struct {
	db    *sql.DB
	rdb   *sokredis.Client
	cache *sokredis.ViewCache[[]models.BillReminder]
}

func NewBillRepository(db *sql.DB, rdb *sokredis.Client) *BillRepository {
	return &BillRepository{
		db:    db,
		rdb:   rdb,
		cache: sokredis.NewViewCache[[]models.BillReminder](rdb.Client, sokredis.DefaultTTL),
	}
}

func (r *BillRepository) Create(ctx context.Context, bill *models.BillReminder) error {
	query := `
		INSERT INTO bill_reminders (id, user_id, name, amount, due_date, frequency,
			category, is_paid, paid_date, reminder_days, auto_pay_enabled, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.ExecContext(ctx, query,
		bill.ID, bill.UserID, bill.Name, bill.Amount, bill.DueDate,
		bill.Frequency, bill.Category, bill.IsPaid, bill.PaidDate,
		pq.Array(reminderDays64(bill.ReminderDays)), bill.AutoPayEnabled, bill.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create bill: %w", err)
	}
	r.invalidate(ctx, bill.UserID)
	return nil
}

func (r *BillRepository) Update(ctx context.Context, bill *models.BillReminder) error {
	query := `
		UPDATE bill_reminders
		SET name = $1, amount = $2, due_date = $3, frequency = $4, category = $5,
			is_paid = $6, paid_date = $7, reminder_days = $8, auto_pay_enabled = $9
		WHERE id = $10
	`
	_, err := r.db.ExecContext(ctx, query,
		bill.Name, bill.Amount, bill.DueDate, bill.Frequency, bill.Category,
		bill.IsPaid, bill.PaidDate, pq.Array(reminderDays64(bill.ReminderDays)),
		bill.AutoPayEnabled, bill.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update bill: %w", err)
	}
	r.invalidate(ctx, bill.UserID)
	return nil
}

func (r *BillRepository) Delete(ctx context.Context, id, userID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM bill_reminders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete bill: %w", err)
	}
	r.invalidate(ctx, userID)
	return nil
}

func (r *BillRepository) GetByID(ctx context.Context, id string) (*models.BillReminder, error) {
	query := `
		SELECT id, user_id, name, amount, due_date, frequency, category,
			is_paid, paid_date, reminder_days, auto_pay_enabled, created_at
		FROM bill_reminders
		WHERE id = $1
	`
	bill, err := scanBill(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("bill not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bill: %w", err)
	}
	return bill, nil
}

func (r *BillRepository) ListByUser(ctx context.Context, userID string) ([]models.BillReminder, error) {
	cacheKey := billListKeyPrefix + userID
	if cached, ok := r.cache.Get(ctx, cacheKey); ok {
		return *cached, nil
	}

	query := `
		SELECT id, user_id, name, amount, due_date, frequency, category,
			is_paid, paid_date, reminder_days, auto_pay_enabled, created_at
		FROM bill_reminders
		WHERE user_id = $1
		ORDER BY due_date ASC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	defer rows.Close()

	bills, err := collectBills(rows)
	if err != nil {
		return nil, err
	}

	r.cache.Set(ctx, cacheKey, &bills)
	return bills, nil
}

// ListUnpaidDueBefore returns every unpaid bill across all users with a
// due date before the horizon. The reminder scanner walks this set.
func (r *BillRepository) ListUnpaidDueBefore(ctx context.Context, horizon time.Time) ([]models.BillReminder, error) {
	query := `
		SELECT id, user_id, name, amount, due_date, frequency, category,
			is_paid, paid_date, reminder_days, auto_pay_enabled, created_at
		FROM bill_reminders
		WHERE is_paid = FALSE AND due_date <= $1
		ORDER BY due_date ASC
	`
	rows, err := r.db.QueryContext(ctx, query, horizon)
	if err != nil {
		return nil, fmt.Errorf("failed to list unpaid bills: %w", err)
	}
	defer rows.Close()

	return collectBills(rows)
}

// pq.Array understands []int64, not []int.
func reminderDays64(days []int) []int64 {
	out := make([]int64, 0, len(days))
	for _, d := range days {
		out = append(out, int64(d))
	}
	return out
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBill(row rowScanner) (*models.BillReminder, error) {
	var bill models.BillReminder
	var paidDate sql.NullTime
	var reminderDays pq.Int64Array
	if err := row.Scan(
		&bill.ID, &bill.UserID, &bill.Name, &bill.Amount, &bill.DueDate,
		&bill.Frequency, &bill.Category, &bill.IsPaid, &paidDate,
		&reminderDays, &bill.AutoPayEnabled, &bill.CreatedAt,
	); err != nil {
		return nil, err
	}
	if paidDate.Valid {
		bill.PaidDate = &paidDate.Time
	}
	bill.ReminderDays = make([]int, 0, len(reminderDays))
	for _, d := range reminderDays {
		bill.ReminderDays = append(bill.ReminderDays, int(d))
	}
	return &bill, nil
}

func collectBills(rows *sql.Rows) ([]models.BillReminder, error) {
	bills := []models.BillReminder{}
	for rows.Next() {
		bill, err := scanBill(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bill: %w", err)
		}
		bills = append(bills, *bill)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	return bills, nil
}

func (r *BillRepository) invalidate(ctx context.Context, userID string) {
	r.rdb.InvalidatePattern(ctx, billListKeyPrefix+userID+"*")
}
