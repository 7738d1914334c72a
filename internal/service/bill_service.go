package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/gil10101/sokin-sub000/internal/config"
	"github.com/gil10101/sokin-sub000/internal/cqrs"
	"github.com/gil10101/sokin-sub000/internal/events"
	"github.com/gil10101/sokin-sub000/internal/finance"
	"github.com/gil10101/sokin-sub000/internal/models"
	"github.com/gil10101/sokin-sub000/internal/repository"
	"github.com/gil10101/sokin-sub000/internal/utils"
)

type BillService struct {
	bills     *repository.BillRepository
	publisher *events.Publisher
}

func NewBillService(bills *repository.BillRepository, publisher *events.Publisher) *BillService {
	return &BillService{bills: bills, publisher: publisher}
}

func validBillFrequency(f string) bool {
	switch f {
	case models.FrequencyWeekly, models.FrequencyMonthly, models.FrequencyQuarterly,
		models.FrequencyYearly, models.FrequencyOneTime:
		return true
	}
	return false
}

// normalizeReminderDays sorts descending (furthest-out reminder first)
// and drops duplicates and non-positive offsets.
func normalizeReminderDays(days []int) []int {
	seen := map[int]bool{}
	out := []int{}
	for _, d := range days {
		if d > 0 && !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}

func (s *BillService) Create(ctx context.Context, cmd cqrs.CreateBillCommand) (*models.BillReminder, error) {
	if !cmd.Amount.IsPositive() {
		return nil, fmt.Errorf("amount must be greater than zero")
	}
	if !validBillFrequency(cmd.Frequency) {
		return nil, fmt.Errorf("invalid bill frequency")
	}

	bill := &models.BillReminder{
		ID:             utils.GenerateID(utils.BillPrefix),
		UserID:         cmd.UserID,
		Name:           cmd.Name,
		Amount:         cmd.Amount,
		DueDate:        cmd.DueDate,
		Frequency:      cmd.Frequency,
		Category:       cmd.Category,
		ReminderDays:   normalizeReminderDays(cmd.ReminderDays),
		AutoPayEnabled: cmd.AutoPayEnabled,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.bills.Create(ctx, bill); err != nil {
		return nil, err
	}
	s.publish(ctx, events.BillCreated, bill)
	return bill, nil
}

func (s *BillService) Update(ctx context.Context, cmd cqrs.UpdateBillCommand) (*models.BillReminder, error) {
	bill, err := s.bills.GetByID(ctx, cmd.BillID)
	if err != nil {
		return nil, err
	}
	if bill.UserID != cmd.RequestingUserID {
		return nil, fmt.Errorf("forbidden")
	}

	if cmd.Name != nil {
		bill.Name = *cmd.Name
	}
	if cmd.Amount != nil {
		if !cmd.Amount.IsPositive() {
			return nil, fmt.Errorf("amount must be greater than zero")
		}
		bill.Amount = *cmd.Amount
	}
	if cmd.DueDate != nil {
		bill.DueDate = *cmd.DueDate
	}
	if cmd.Frequency != nil {
		if !validBillFrequency(*cmd.Frequency) {
			return nil, fmt.Errorf("invalid bill frequency")
		}
		bill.Frequency = *cmd.Frequency
	}
	if cmd.Category != nil {
		bill.Category = *cmd.Category
	}
	if cmd.ReminderDays != nil {
		bill.ReminderDays = normalizeReminderDays(cmd.ReminderDays)
	}
	if cmd.AutoPayEnabled != nil {
		bill.AutoPayEnabled = *cmd.AutoPayEnabled
	}

	if err := s.bills.Update(ctx, bill); err != nil {
		return nil, err
	}
	return bill, nil
}

// Pay marks the bill paid. Recurring bills are not rolled forward here;
// clients create the next occurrence when they want one, so a payment
// stays visible in the month it was due.
func (s *BillService) Pay(ctx context.Context, cmd cqrs.PayBillCommand) (*models.BillReminder, error) {
	bill, err := s.bills.GetByID(ctx, cmd.BillID)
	if err != nil {
		return nil, err
	}
	if bill.UserID != cmd.RequestingUserID {
		return nil, fmt.Errorf("forbidden")
	}
	if bill.IsPaid {
		return nil, fmt.Errorf("bill already paid")
	}

	paidDate := cmd.PaidDate
	if paidDate.IsZero() {
		paidDate = time.Now().UTC()
	}
	bill.IsPaid = true
	bill.PaidDate = &paidDate

	if err := s.bills.Update(ctx, bill); err != nil {
		return nil, err
	}
	s.publish(ctx, events.BillPaid, bill)
	return bill, nil
}

func (s *BillService) Delete(ctx context.Context, cmd cqrs.DeleteBillCommand) error {
	bill, err := s.bills.GetByID(ctx, cmd.BillID)
	if err != nil {
		return err
	}
	if bill.UserID != cmd.RequestingUserID {
		return fmt.Errorf("forbidden")
	}
	return s.bills.Delete(ctx, bill.ID, bill.UserID)
}

func (s *BillService) Get(ctx context.Context, q cqrs.GetBillQuery) (*models.BillReminder, error) {
	bill, err := s.bills.GetByID(ctx, q.BillID)
	if err != nil {
		return nil, err
	}
	if bill.UserID != q.RequestingUserID {
		return nil, fmt.Errorf("forbidden")
	}
	return bill, nil
}

func (s *BillService) List(ctx context.Context, q cqrs.ListBillsQuery) ([]models.BillReminder, error) {
	return s.bills.ListByUser(ctx, q.UserID)
}

func (s *BillService) Stats(ctx context.Context, q cqrs.BillStatsQuery) (finance.BillStats, error) {
	bills, err := s.bills.ListByUser(ctx, q.UserID)
	if err != nil {
		return finance.BillStats{}, err
	}
	return finance.ComputeBillStats(bills, time.Now().UTC()), nil
}

func (s *BillService) publish(ctx context.Context, eventType string, bill *models.BillReminder) {
	err := s.publisher.Publish(ctx, events.BillEventsStream, eventType, events.BillEvent{
		BillID:  bill.ID,
		UserID:  bill.UserID,
		Name:    bill.Name,
		Amount:  bill.Amount,
		DueDate: bill.DueDate,
	})
	if err != nil {
		config.Logger().WithFields(logrus.Fields{
			"billId": bill.ID,
			"type":   eventType,
			"error":  err.Error(),
		}).Warn("failed to publish bill event")
	}
}
