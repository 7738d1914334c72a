package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/gil10101/sokin-sub000/internal/config"
	"github.com/gil10101/sokin-sub000/internal/cqrs"
	"github.com/gil10101/sokin-sub000/internal/events"
	"github.com/gil10101/sokin-sub000/internal/models"
	"github.com/gil10101/sokin-sub000/internal/repository"
	"github.com/gil10101/sokin-sub000/internal/utils"
)

// ExpenseService records spending. Mutations publish expense events so
// the worker can re-check budget thresholds for the category.
type ExpenseService struct {
	expenses  *repository.ExpenseRepository
	publisher *events.Publisher
}

func NewExpenseService(expenses *repository.ExpenseRepository, publisher *events.Publisher) *ExpenseService {
	return &ExpenseService{expenses: expenses, publisher: publisher}
}

func (s *ExpenseService) Create(ctx context.Context, cmd cqrs.CreateExpenseCommand) (*models.Expense, error) {
	if !cmd.Amount.IsPositive() {
		return nil, fmt.Errorf("amount must be greater than zero")
	}

	expense := &models.Expense{
		ID:          utils.GenerateID(utils.ExpensePrefix),
		UserID:      cmd.UserID,
		Name:        cmd.Name,
		Amount:      cmd.Amount,
		Category:    cmd.Category,
		Date:        cmd.Date,
		Description: cmd.Description,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.expenses.Create(ctx, expense); err != nil {
		return nil, err
	}
	s.publish(ctx, events.ExpenseCreated, expense)
	return expense, nil
}

func (s *ExpenseService) Update(ctx context.Context, cmd cqrs.UpdateExpenseCommand) (*models.Expense, error) {
	expense, err := s.expenses.GetByID(ctx, cmd.ExpenseID)
	if err != nil {
		return nil, err
	}
	if expense.UserID != cmd.RequestingUserID {
		return nil, fmt.Errorf("forbidden")
	}

	if cmd.Name != nil {
		expense.Name = *cmd.Name
	}
	if cmd.Amount != nil {
		if !cmd.Amount.IsPositive() {
			return nil, fmt.Errorf("amount must be greater than zero")
		}
		expense.Amount = *cmd.Amount
	}
	if cmd.Category != nil {
		expense.Category = *cmd.Category
	}
	if cmd.Date != nil {
		expense.Date = *cmd.Date
	}
	if cmd.Description != nil {
		expense.Description = *cmd.Description
	}

	if err := s.expenses.Update(ctx, expense); err != nil {
		return nil, err
	}
	s.publish(ctx, events.ExpenseUpdated, expense)
	return expense, nil
}

func (s *ExpenseService) Delete(ctx context.Context, cmd cqrs.DeleteExpenseCommand) error {
	expense, err := s.expenses.GetByID(ctx, cmd.ExpenseID)
	if err != nil {
		return err
	}
	if expense.UserID != cmd.RequestingUserID {
		return fmt.Errorf("forbidden")
	}
	if err := s.expenses.Delete(ctx, expense.ID, expense.UserID); err != nil {
		return err
	}
	s.publish(ctx, events.ExpenseDeleted, expense)
	return nil
}

func (s *ExpenseService) Get(ctx context.Context, q cqrs.GetExpenseQuery) (*models.Expense, error) {
	expense, err := s.expenses.GetByID(ctx, q.ExpenseID)
	if err != nil {
		return nil, err
	}
	if expense.UserID != q.RequestingUserID {
		return nil, fmt.Errorf("forbidden")
	}
	return expense, nil
}

func (s *ExpenseService) List(ctx context.Context, q cqrs.ListExpensesQuery) ([]models.Expense, error) {
	return s.expenses.ListByUser(ctx, q.UserID)
}

func (s *ExpenseService) publish(ctx context.Context, eventType string, expense *models.Expense) {
	err := s.publisher.Publish(ctx, events.ExpenseEventsStream, eventType, events.ExpenseEvent{
		ExpenseID: expense.ID,
		UserID:    expense.UserID,
		Category:  expense.Category,
		Amount:    expense.Amount,
	})
	if err != nil {
		config.Logger().WithFields(logrus.Fields{
			"expenseId": expense.ID,
			"type":      eventType,
			"error":     err.Error(),
		}).Warn("failed to publish expense event")
	}
}
