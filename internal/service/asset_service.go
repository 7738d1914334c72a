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

// AssetService owns the asset side of the balance sheet. Every mutation
// publishes a change event so the worker can refresh derived views.
type AssetService struct {
	assets    *repository.AssetRepository
	publisher *events.Publisher
}

func NewAssetService(assets *repository.AssetRepository, publisher *events.Publisher) *AssetService {
	return &AssetService{assets: assets, publisher: publisher}
}

func (s *AssetService) Create(ctx context.Context, cmd cqrs.CreateAssetCommand) (*models.Asset, error) {
	if !models.ValidAssetCategory(cmd.Category) {
		return nil, fmt.Errorf("invalid asset category")
	}
	if cmd.CurrentValue.IsNegative() {
		return nil, fmt.Errorf("current value cannot be negative")
	}

	now := time.Now().UTC()
	asset := &models.Asset{
		ID:           utils.GenerateID(utils.AssetPrefix),
		UserID:       cmd.UserID,
		Category:     cmd.Category,
		Type:         cmd.Type,
		Name:         cmd.Name,
		CurrentValue: cmd.CurrentValue,
		LastUpdated:  now,
		CreatedAt:    now,
	}
	if err := s.assets.Create(ctx, asset); err != nil {
		return nil, err
	}
	s.publishChange(ctx, cmd.UserID)
	return asset, nil
}

func (s *AssetService) Update(ctx context.Context, cmd cqrs.UpdateAssetCommand) (*models.Asset, error) {
	asset, err := s.assets.GetByID(ctx, cmd.AssetID)
	if err != nil {
		return nil, err
	}
	if asset.UserID != cmd.RequestingUserID {
		return nil, fmt.Errorf("forbidden")
	}

	if cmd.Category != nil {
		if !models.ValidAssetCategory(*cmd.Category) {
			return nil, fmt.Errorf("invalid asset category")
		}
		asset.Category = *cmd.Category
	}
	if cmd.Type != nil {
		asset.Type = *cmd.Type
	}
	if cmd.Name != nil {
		asset.Name = *cmd.Name
	}
	if cmd.CurrentValue != nil {
		if cmd.CurrentValue.IsNegative() {
			return nil, fmt.Errorf("current value cannot be negative")
		}
		asset.CurrentValue = *cmd.CurrentValue
	}
	asset.LastUpdated = time.Now().UTC()

	if err := s.assets.Update(ctx, asset); err != nil {
		return nil, err
	}
	s.publishChange(ctx, asset.UserID)
	return asset, nil
}

func (s *AssetService) Delete(ctx context.Context, cmd cqrs.DeleteAssetCommand) error {
	asset, err := s.assets.GetByID(ctx, cmd.AssetID)
	if err != nil {
		return err
	}
	if asset.UserID != cmd.RequestingUserID {
		return fmt.Errorf("forbidden")
	}
	if err := s.assets.Delete(ctx, asset.ID, asset.UserID); err != nil {
		return err
	}
	s.publishChange(ctx, asset.UserID)
	return nil
}

func (s *AssetService) Get(ctx context.Context, q cqrs.GetAssetQuery) (*models.Asset, error) {
	asset, err := s.assets.GetByID(ctx, q.AssetID)
	if err != nil {
		return nil, err
	}
	if asset.UserID != q.RequestingUserID {
		return nil, fmt.Errorf("forbidden")
	}
	return asset, nil
}

func (s *AssetService) List(ctx context.Context, q cqrs.ListAssetsQuery) ([]models.Asset, error) {
	return s.assets.ListByUser(ctx, q.UserID)
}

func (s *AssetService) publishChange(ctx context.Context, userID string) {
	err := s.publisher.Publish(ctx, events.NetWorthEventsStream, events.AssetChanged,
		events.BalanceSheetEvent{UserID: userID})
	if err != nil {
		config.Logger().WithFields(logrus.Fields{
			"userId": userID,
			"error":  err.Error(),
		}).Warn("failed to publish asset.changed event")
	}
}
