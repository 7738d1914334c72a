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

type LiabilityService struct {
	liabilities *repository.LiabilityRepository
	publisher   *events.Publisher
}

func NewLiabilityService(liabilities *repository.LiabilityRepository, publisher *events.Publisher) *LiabilityService {
	return &LiabilityService{liabilities: liabilities, publisher: publisher}
}

func (s *LiabilityService) Create(ctx context.Context, cmd cqrs.CreateLiabilityCommand) (*models.Liability, error) {
	if !models.ValidLiabilityCategory(cmd.Category) {
		return nil, fmt.Errorf("invalid liability category")
	}
	if cmd.CurrentBalance.IsNegative() {
		return nil, fmt.Errorf("current balance cannot be negative")
	}

	liability := &models.Liability{
		ID:             utils.GenerateID(utils.LiabilityPrefix),
		UserID:         cmd.UserID,
		Category:       cmd.Category,
		Type:           cmd.Type,
		Name:           cmd.Name,
		CurrentBalance: cmd.CurrentBalance,
		OriginalAmount: cmd.OriginalAmount,
		InterestRate:   cmd.InterestRate,
		MinimumPayment: cmd.MinimumPayment,
		DueDate:        cmd.DueDate,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.liabilities.Create(ctx, liability); err != nil {
		return nil, err
	}
	s.publishChange(ctx, cmd.UserID)
	return liability, nil
}

func (s *LiabilityService) Update(ctx context.Context, cmd cqrs.UpdateLiabilityCommand) (*models.Liability, error) {
	liability, err := s.liabilities.GetByID(ctx, cmd.LiabilityID)
	if err != nil {
		return nil, err
	}
	if liability.UserID != cmd.RequestingUserID {
		return nil, fmt.Errorf("forbidden")
	}

	if cmd.Category != nil {
		if !models.ValidLiabilityCategory(*cmd.Category) {
			return nil, fmt.Errorf("invalid liability category")
		}
		liability.Category = *cmd.Category
	}
	if cmd.Type != nil {
		liability.Type = *cmd.Type
	}
	if cmd.Name != nil {
		liability.Name = *cmd.Name
	}
	if cmd.CurrentBalance != nil {
		if cmd.CurrentBalance.IsNegative() {
			return nil, fmt.Errorf("current balance cannot be negative")
		}
		liability.CurrentBalance = *cmd.CurrentBalance
	}
	if cmd.InterestRate != nil {
		liability.InterestRate = *cmd.InterestRate
	}
	if cmd.MinimumPayment != nil {
		liability.MinimumPayment = *cmd.MinimumPayment
	}
	if cmd.DueDate != nil {
		liability.DueDate = cmd.DueDate
	}

	if err := s.liabilities.Update(ctx, liability); err != nil {
		return nil, err
	}
	s.publishChange(ctx, liability.UserID)
	return liability, nil
}

func (s *LiabilityService) Delete(ctx context.Context, cmd cqrs.DeleteLiabilityCommand) error {
	liability, err := s.liabilities.GetByID(ctx, cmd.LiabilityID)
	if err != nil {
		return err
	}
	if liability.UserID != cmd.RequestingUserID {
		return fmt.Errorf("forbidden")
	}
	if err := s.liabilities.Delete(ctx, liability.ID, liability.UserID); err != nil {
		return err
	}
	s.publishChange(ctx, liability.UserID)
	return nil
}

func (s *LiabilityService) Get(ctx context.Context, q cqrs.GetLiabilityQuery) (*models.Liability, error) {
	liability, err := s.liabilities.GetByID(ctx, q.LiabilityID)
	if err != nil {
		return nil, err
	}
	if liability.UserID != q.RequestingUserID {
		return nil, fmt.Errorf("forbidden")
	}
	return liability, nil
}

func (s *LiabilityService) List(ctx context.Context, q cqrs.ListLiabilitiesQuery) ([]models.Liability, error) {
	return s.liabilities.ListByUser(ctx, q.UserID)
}

func (s *LiabilityService) publishChange(ctx context.Context, userID string) {
	err := s.publisher.Publish(ctx, events.NetWorthEventsStream, events.LiabilityChanged,
		events.BalanceSheetEvent{UserID: userID})
	if err != nil {
		config.Logger().WithFields(logrus.Fields{
			"userId": userID,
			"error":  err.Error(),
		}).Warn("failed to publish liability.changed event")
	}
}
