package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gil10101/sokin-sub000/internal/cqrs"
	"github.com/gil10101/sokin-sub000/internal/models"
	"github.com/gil10101/sokin-sub000/internal/repository"
	"github.com/gil10101/sokin-sub000/internal/utils"
)

type SubscriptionService struct {
	subscriptions *repository.SubscriptionRepository
}

func NewSubscriptionService(subscriptions *repository.SubscriptionRepository) *SubscriptionService {
	return &SubscriptionService{subscriptions: subscriptions}
}

func validBillingCycle(c string) bool {
	switch c {
	case models.FrequencyWeekly, models.FrequencyMonthly, models.FrequencyQuarterly, models.FrequencyYearly:
		return true
	}
	return false
}

func (s *SubscriptionService) Create(ctx context.Context, cmd cqrs.CreateSubscriptionCommand) (*models.Subscription, error) {
	if !cmd.Amount.IsPositive() {
		return nil, fmt.Errorf("amount must be greater than zero")
	}
	if !validBillingCycle(cmd.BillingCycle) {
		return nil, fmt.Errorf("invalid billing cycle")
	}

	sub := &models.Subscription{
		ID:              utils.GenerateID(utils.SubscriptionPrefix),
		UserID:          cmd.UserID,
		Name:            cmd.Name,
		Amount:          cmd.Amount,
		BillingCycle:    cmd.BillingCycle,
		NextBillingDate: cmd.NextBillingDate,
		Category:        cmd.Category,
		IsActive:        true,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.subscriptions.Create(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *SubscriptionService) Update(ctx context.Context, cmd cqrs.UpdateSubscriptionCommand) (*models.Subscription, error) {
	sub, err := s.subscriptions.GetByID(ctx, cmd.SubscriptionID)
	if err != nil {
		return nil, err
	}
	if sub.UserID != cmd.RequestingUserID {
		return nil, fmt.Errorf("forbidden")
	}

	if cmd.Name != nil {
		sub.Name = *cmd.Name
	}
	if cmd.Amount != nil {
		if !cmd.Amount.IsPositive() {
			return nil, fmt.Errorf("amount must be greater than zero")
		}
		sub.Amount = *cmd.Amount
	}
	if cmd.BillingCycle != nil {
		if !validBillingCycle(*cmd.BillingCycle) {
			return nil, fmt.Errorf("invalid billing cycle")
		}
		sub.BillingCycle = *cmd.BillingCycle
	}
	if cmd.NextBillingDate != nil {
		sub.NextBillingDate = *cmd.NextBillingDate
	}
	if cmd.Category != nil {
		sub.Category = *cmd.Category
	}
	if cmd.IsActive != nil {
		sub.IsActive = *cmd.IsActive
	}

	if err := s.subscriptions.Update(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *SubscriptionService) Delete(ctx context.Context, cmd cqrs.DeleteSubscriptionCommand) error {
	sub, err := s.subscriptions.GetByID(ctx, cmd.SubscriptionID)
	if err != nil {
		return err
	}
	if sub.UserID != cmd.RequestingUserID {
		return fmt.Errorf("forbidden")
	}
	return s.subscriptions.Delete(ctx, sub.ID, sub.UserID)
}

func (s *SubscriptionService) Get(ctx context.Context, q cqrs.GetSubscriptionQuery) (*models.Subscription, error) {
	sub, err := s.subscriptions.GetByID(ctx, q.SubscriptionID)
	if err != nil {
		return nil, err
	}
	if sub.UserID != q.RequestingUserID {
		return nil, fmt.Errorf("forbidden")
	}
	return sub, nil
}

func (s *SubscriptionService) List(ctx context.Context, q cqrs.ListSubscriptionsQuery) ([]models.Subscription, error) {
	return s.subscriptions.ListByUser(ctx, q.UserID)
}
