package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/gil10101/sokin-sub000/internal/cqrs"
	"github.com/gil10101/sokin-sub000/internal/middleware"
	"github.com/gil10101/sokin-sub000/internal/models"
)

// AssetManager defines the asset operations used by AssetHandler.
type AssetManager interface {
	Create(ctx context.Context, cmd cqrs.CreateAssetCommand) (*models.Asset, error)
	Update(ctx context.Context, cmd cqrs.UpdateAssetCommand) (*models.Asset, error)
	Delete(ctx context.Context, cmd cqrs.DeleteAssetCommand) error
	Get(ctx context.Context, q cqrs.GetAssetQuery) (*models.Asset, error)
	List(ctx context.Context, q cqrs.ListAssetsQuery) ([]models.Asset, error)
}

type AssetHandler struct {
	assets AssetManager
}

func NewAssetHandler(assets AssetManager) *AssetHandler {
	return &AssetHandler{assets: assets}
}

type CreateAssetRequest struct {
	Category     string          `json:"category" validate:"required,oneof=bank_accounts investment_accounts real_estate vehicles other_valuables"`
	Type         string          `json:"type" validate:"required"`
	Name         string          `json:"name" validate:"required"`
	CurrentValue decimal.Decimal `json:"currentValue"`
}

type UpdateAssetRequest struct {
	Category     *string          `json:"category" validate:"omitempty,oneof=bank_accounts investment_accounts real_estate vehicles other_valuables"`
	Type         *string          `json:"type"`
	Name         *string          `json:"name"`
	CurrentValue *decimal.Decimal `json:"currentValue"`
}

func (h *AssetHandler) Create(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	asset, err := h.assets.Create(c.Request.Context(), cqrs.CreateAssetCommand{
		UserID:       userID,
		Category:     req.Category,
		Type:         req.Type,
		Name:         req.Name,
		CurrentValue: req.CurrentValue,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	middleware.RespondWithData(c, http.StatusCreated, asset)
}

func (h *AssetHandler) List(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	assets, err := h.assets.List(c.Request.Context(), cqrs.ListAssetsQuery{UserID: userID})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	middleware.RespondWithData(c, http.StatusOK, assets)
}

func (h *AssetHandler) Get(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	asset, err := h.assets.Get(c.Request.Context(), cqrs.GetAssetQuery{
		AssetID:          c.Param("assetId"),
		RequestingUserID: userID,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	middleware.RespondWithData(c, http.StatusOK, asset)
}

func (h *AssetHandler) Update(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	asset, err := h.assets.Update(c.Request.Context(), cqrs.UpdateAssetCommand{
		AssetID:          c.Param("assetId"),
		RequestingUserID: userID,
		Category:         req.Category,
		Type:             req.Type,
		Name:             req.Name,
		CurrentValue:     req.CurrentValue,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	middleware.RespondWithData(c, http.StatusOK, asset)
}

func (h *AssetHandler) Delete(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	err := h.assets.Delete(c.Request.Context(), cqrs.DeleteAssetCommand{
		AssetID:          c.Param("assetId"),
		RequestingUserID: userID,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	middleware.RespondWithMessage(c, http.StatusOK, nil, "Asset deleted")
}
