// Package worker holds the background jobs: budget threshold checks
// driven by expense events, the bill reminder scanner and the daily
// net worth snapshot job.
package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/gil10101/sokin-sub000/internal/config"
	"github.com/gil10101/sokin-sub000/internal/cqrs"
	"github.com/gil10101/sokin-sub000/internal/events"
	"github.com/gil10101/sokin-sub000/internal/finance"
	"github.com/gil10101/sokin-sub000/internal/models"
	"github.com/gil10101/sokin-sub000/internal/repository"
	"github.com/gil10101/sokin-sub000/internal/service"
)

// decodeEventData re-marshals the untyped event payload into its
// concrete type. Event.Data is any after JSON decoding, so a round
// trip is the simplest faithful conversion.
func decodeEventData[T any](event events.Event) (T, error) {
	var out T
	raw, err := json.Marshal(event.Data)
	if err != nil {
		return out, fmt.Errorf("failed to encode event data: %w", err)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("failed to decode event data: %w", err)
	}
	return out, nil
}

// BudgetMonitor reacts to expense and budget events by re-evaluating
// budget progress and notifying on threshold crossings.
type BudgetMonitor struct {
	budgets       *repository.BudgetRepository
	expenses      *repository.ExpenseRepository
	notifications *service.NotificationService
	log           *logrus.Logger
}

func NewBudgetMonitor(
	budgets *repository.BudgetRepository,
	expenses *repository.ExpenseRepository,
	notifications *service.NotificationService,
) *BudgetMonitor {
	return &BudgetMonitor{
		budgets:       budgets,
		expenses:      expenses,
		notifications: notifications,
		log:           config.Logger(),
	}
}

// HandleExpenseEvent re-checks every budget matching the expense's
// category and notifies at 90% and 100% of the cap.
func (m *BudgetMonitor) HandleExpenseEvent(ctx context.Context, event events.Event) error {
	data, err := decodeEventData[events.ExpenseEvent](event)
	if err != nil {
		return err
	}

	budgets, err := m.budgets.ListByUserAndCategory(ctx, data.UserID, data.Category)
	if err != nil {
		return err
	}
	if len(budgets) == 0 {
		return nil
	}

	expenses, err := m.expenses.ListByUser(ctx, data.UserID)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	for _, budget := range budgets {
		spent, progress := finance.BudgetProgress(budget, expenses, now)
		switch {
		case progress >= 100:
			m.notify(ctx, data.UserID, models.NotificationWarning, "Over budget",
				fmt.Sprintf("You have spent %s of your %s %s budget (%d%%)",
					spent.StringFixed(2), budget.Amount.StringFixed(2), budget.Category, progress))
		case progress >= 90:
			m.notify(ctx, data.UserID, models.NotificationBudget, "Budget almost reached",
				fmt.Sprintf("You have spent %s of your %s %s budget (%d%%)",
					spent.StringFixed(2), budget.Amount.StringFixed(2), budget.Category, progress))
		}
	}
	return nil
}

// HandleBudgetEvent records an informational notification when a
// budget is created or updated.
func (m *BudgetMonitor) HandleBudgetEvent(ctx context.Context, event events.Event) error {
	if event.Type != events.BudgetCreated && event.Type != events.BudgetUpdated {
		return nil
	}
	data, err := decodeEventData[events.BudgetEvent](event)
	if err != nil {
		return err
	}

	action := "created"
	if event.Type == events.BudgetUpdated {
		action = "updated"
	}
	m.notify(ctx, data.UserID, models.NotificationBudget, "Budget "+action,
		fmt.Sprintf("Your %s budget of %s (%s) was %s",
			data.Category, data.Amount.StringFixed(2), data.Period, action))
	return nil
}

func (m *BudgetMonitor) notify(ctx context.Context, userID, notifType, title, message string) {
	if _, err := m.notifications.Notify(ctx, userID, notifType, title, message); err != nil {
		m.log.WithFields(logrus.Fields{
			"userId": userID,
			"error":  err.Error(),
		}).Warn("failed to create notification")
	}
}

// BillScanner periodically walks unpaid bills and raises reminder and
// overdue notifications. Notifications are deduplicated per bill per
// day in memory; a worker restart at worst repeats one day's notice.
type BillScanner struct {
	bills         *repository.BillRepository
	notifications *service.NotificationService
	notified      map[string]string // bill ID -> last notified day (2006-01-02)
	log           *logrus.Logger
}

func NewBillScanner(bills *repository.BillRepository, notifications *service.NotificationService) *BillScanner {
	return &BillScanner{
		bills:         bills,
		notifications: notifications,
		notified:      make(map[string]string),
		log:           config.Logger(),
	}
}

// Run scans on the given interval until ctx is cancelled.
func (s *BillScanner) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.Scan(ctx, time.Now().UTC())
	for {
		select {
		case <-ctx.Done():
			s.log.Info("bill scanner stopping")
			return
		case <-ticker.C:
			s.Scan(ctx, time.Now().UTC())
		}
	}
}

// Scan runs one pass over unpaid bills due within the reminder horizon.
func (s *BillScanner) Scan(ctx context.Context, now time.Time) {
	// 60 days comfortably covers any sensible reminder offset.
	horizon := now.AddDate(0, 0, 60)
	bills, err := s.bills.ListUnpaidDueBefore(ctx, horizon)
	if err != nil {
		s.log.Warnf("bill scan failed: %v", err)
		return
	}

	today := now.Format("2006-01-02")
	for _, bill := range bills {
		if s.notified[bill.ID] == today {
			continue
		}

		daysUntil := daysBetween(now, bill.DueDate)
		switch {
		case bill.DueDate.Before(now):
			s.notify(ctx, bill.UserID, models.NotificationError, "Bill overdue",
				fmt.Sprintf("%s (%s) was due on %s",
					bill.Name, bill.Amount.StringFixed(2), bill.DueDate.Format("Jan 2, 2006")))
			s.notified[bill.ID] = today
		case matchesReminder(bill.ReminderDays, daysUntil):
			s.notify(ctx, bill.UserID, models.NotificationWarning, "Bill due soon",
				fmt.Sprintf("%s (%s) is due in %d day(s)",
					bill.Name, bill.Amount.StringFixed(2), daysUntil))
			s.notified[bill.ID] = today
		}
	}
}

// daysBetween counts whole calendar days from now to due.
func daysBetween(now, due time.Time) int {
	nowDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	dueDay := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, time.UTC)
	return int(dueDay.Sub(nowDay).Hours() / 24)
}

func matchesReminder(reminderDays []int, daysUntil int) bool {
	for _, d := range reminderDays {
		if d == daysUntil {
			return true
		}
	}
	return false
}

func (s *BillScanner) notify(ctx context.Context, userID, notifType, title, message string) {
	if _, err := s.notifications.Notify(ctx, userID, notifType, title, message); err != nil {
		s.log.WithFields(logrus.Fields{
			"userId": userID,
			"error":  err.Error(),
		}).Warn("failed to create notification")
	}
}

// SnapshotJob appends a daily net worth snapshot for every user who has
// balance sheet records.
type SnapshotJob struct {
	users       *repository.UserRepository
	assets      *repository.AssetRepository
	liabilities *repository.LiabilityRepository
	networth    *service.NetWorthService
	log         *logrus.Logger
}

func NewSnapshotJob(
	users *repository.UserRepository,
	assets *repository.AssetRepository,
	liabilities *repository.LiabilityRepository,
	networth *service.NetWorthService,
) *SnapshotJob {
	return &SnapshotJob{
		users:       users,
		assets:      assets,
		liabilities: liabilities,
		networth:    networth,
		log:         config.Logger(),
	}
}

// Run takes a snapshot pass on the given interval until ctx is cancelled.
func (j *SnapshotJob) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			j.log.Info("snapshot job stopping")
			return
		case <-ticker.C:
			j.Snapshot(ctx)
		}
	}
}

// Snapshot runs one pass over all users.
func (j *SnapshotJob) Snapshot(ctx context.Context) {
	userIDs, err := j.users.ListIDs(ctx)
	if err != nil {
		j.log.Warnf("snapshot pass failed: %v", err)
		return
	}

	for _, userID := range userIDs {
		assets, err := j.assets.ListByUser(ctx, userID)
		if err != nil {
			j.log.Warnf("snapshot skipped for %s: %v", userID, err)
			continue
		}
		liabilities, err := j.liabilities.ListByUser(ctx, userID)
		if err != nil {
			j.log.Warnf("snapshot skipped for %s: %v", userID, err)
			continue
		}
		if len(assets) == 0 && len(liabilities) == 0 {
			continue
		}
		if _, err := j.networth.CreateSnapshot(ctx, cqrs.CreateSnapshotCommand{UserID: userID}); err != nil {
			j.log.Warnf("snapshot failed for %s: %v", userID, err)
		}
	}
}
