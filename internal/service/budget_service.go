package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/gil10101/sokin-sub000/internal/config"
	"github.com/gil10101/sokin-sub000/internal/cqrs"
	"github.com/gil10101/sokin-sub000/internal/events"
	"github.com/gil10101/sokin-sub000/internal/finance"
	"github.com/gil10101/sokin-sub000/internal/models"
	"github.com/gil10101/sokin-sub000/internal/repository"
	"github.com/gil10101/sokin-sub000/internal/utils"
)

// BudgetStatus is a budget decorated with its spend inside the active
// window.
type BudgetStatus struct {
	models.Budget
	Spent    decimal.Decimal `json:"spent"`
	Progress int             `json:"progress"`
}

type BudgetService struct {
	budgets   *repository.BudgetRepository
	expenses  *repository.ExpenseRepository
	publisher *events.Publisher
}

func NewBudgetService(budgets *repository.BudgetRepository, expenses *repository.ExpenseRepository, publisher *events.Publisher) *BudgetService {
	return &BudgetService{budgets: budgets, expenses: expenses, publisher: publisher}
}

func validBudgetPeriod(p string) bool {
	switch p {
	case models.PeriodMonthly, models.PeriodYearly, models.PeriodWeekly, models.PeriodDaily, models.PeriodCustom:
		return true
	}
	return false
}

func (s *BudgetService) Create(ctx context.Context, cmd cqrs.CreateBudgetCommand) (*models.Budget, error) {
	if !cmd.Amount.IsPositive() {
		return nil, fmt.Errorf("amount must be greater than zero")
	}
	if !validBudgetPeriod(cmd.Period) {
		return nil, fmt.Errorf("invalid budget period")
	}
	if cmd.Period == models.PeriodCustom && cmd.EndDate == nil {
		return nil, fmt.Errorf("custom period requires an end date")
	}

	budget := &models.Budget{
		ID:        utils.GenerateID(utils.BudgetPrefix),
		UserID:    cmd.UserID,
		Category:  cmd.Category,
		Amount:    cmd.Amount,
		Period:    cmd.Period,
		StartDate: cmd.StartDate,
		EndDate:   cmd.EndDate,
		Notes:     cmd.Notes,
	}
	if budget.StartDate.IsZero() {
		budget.StartDate = time.Now().UTC()
	}
	if err := s.budgets.Create(ctx, budget); err != nil {
		return nil, err
	}
	s.publish(ctx, events.BudgetCreated, budget)
	return budget, nil
}

func (s *BudgetService) Update(ctx context.Context, cmd cqrs.UpdateBudgetCommand) (*models.Budget, error) {
	budget, err := s.budgets.GetByID(ctx, cmd.BudgetID)
	if err != nil {
		return nil, err
	}
	if budget.UserID != cmd.RequestingUserID {
		return nil, fmt.Errorf("forbidden")
	}

	if cmd.Category != nil {
		budget.Category = *cmd.Category
	}
	if cmd.Amount != nil {
		if !cmd.Amount.IsPositive() {
			return nil, fmt.Errorf("amount must be greater than zero")
		}
		budget.Amount = *cmd.Amount
	}
	if cmd.Period != nil {
		if !validBudgetPeriod(*cmd.Period) {
			return nil, fmt.Errorf("invalid budget period")
		}
		budget.Period = *cmd.Period
	}
	if cmd.StartDate != nil {
		budget.StartDate = *cmd.StartDate
	}
	if cmd.EndDate != nil {
		budget.EndDate = cmd.EndDate
	}
	if cmd.Notes != nil {
		budget.Notes = *cmd.Notes
	}
	if budget.Period == models.PeriodCustom && budget.EndDate == nil {
		return nil, fmt.Errorf("custom period requires an end date")
	}

	if err := s.budgets.Update(ctx, budget); err != nil {
		return nil, err
	}
	s.publish(ctx, events.BudgetUpdated, budget)
	return budget, nil
}

func (s *BudgetService) Delete(ctx context.Context, cmd cqrs.DeleteBudgetCommand) error {
	budget, err := s.budgets.GetByID(ctx, cmd.BudgetID)
	if err != nil {
		return err
	}
	if budget.UserID != cmd.RequestingUserID {
		return fmt.Errorf("forbidden")
	}
	if err := s.budgets.Delete(ctx, budget.ID, budget.UserID); err != nil {
		return err
	}
	s.publish(ctx, events.BudgetDeleted, budget)
	return nil
}

// Get returns one budget with its current spend and progress.
func (s *BudgetService) Get(ctx context.Context, q cqrs.GetBudgetQuery) (*BudgetStatus, error) {
	budget, err := s.budgets.GetByID(ctx, q.BudgetID)
	if err != nil {
		return nil, err
	}
	if budget.UserID != q.RequestingUserID {
		return nil, fmt.Errorf("forbidden")
	}
	expenses, err := s.expenses.ListByUser(ctx, budget.UserID)
	if err != nil {
		return nil, err
	}
	spent, progress := finance.BudgetProgress(*budget, expenses, time.Now().UTC())
	return &BudgetStatus{Budget: *budget, Spent: spent, Progress: progress}, nil
}

// List returns the user's budgets, each decorated with spend and
// progress over the same expense snapshot.
func (s *BudgetService) List(ctx context.Context, q cqrs.ListBudgetsQuery) ([]BudgetStatus, error) {
	budgets, err := s.budgets.ListByUser(ctx, q.UserID)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenses.ListByUser(ctx, q.UserID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	statuses := make([]BudgetStatus, 0, len(budgets))
	for _, budget := range budgets {
		spent, progress := finance.BudgetProgress(budget, expenses, now)
		statuses = append(statuses, BudgetStatus{Budget: budget, Spent: spent, Progress: progress})
	}
	return statuses, nil
}

func (s *BudgetService) publish(ctx context.Context, eventType string, budget *models.Budget) {
	err := s.publisher.Publish(ctx, events.BudgetEventsStream, eventType, events.BudgetEvent{
		BudgetID: budget.ID,
		UserID:   budget.UserID,
		Category: budget.Category,
		Amount:   budget.Amount,
		Period:   budget.Period,
	})
	if err != nil {
		config.Logger().WithFields(logrus.Fields{
			"budgetId": budget.ID,
			"type":     eventType,
			"error":    err.Error(),
		}).Warn("failed to publish budget event")
	}
}
