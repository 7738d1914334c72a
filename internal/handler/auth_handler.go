package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gil10101/sokin-sub000/internal/cqrs"
	"github.com/gil10101/sokin-sub000/internal/middleware"
	"github.com/gil10101/sokin-sub000/internal/models"
)

// Authenticator defines the auth operations used by AuthHandler.
type Authenticator interface {
	Register(ctx context.Context, cmd cqrs.RegisterUserCommand) (*models.User, string, error)
	Login(ctx context.Context, cmd cqrs.LoginCommand) (string, error)
	RefreshToken(ctx context.Context, cmd cqrs.RefreshTokenCommand) (string, error)
}

type AuthHandler struct {
	auth Authenticator
}

func NewAuthHandler(auth Authenticator) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	Token string `json:"token" validate:"required"`
}

type TokenResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user,omitempty"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	user, token, err := h.auth.Register(c.Request.Context(), cqrs.RegisterUserCommand{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	middleware.RespondWithData(c, http.StatusCreated, TokenResponse{Token: token, User: user})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	token, err := h.auth.Login(c.Request.Context(), cqrs.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	middleware.RespondWithData(c, http.StatusOK, TokenResponse{Token: token})
}

func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	token, err := h.auth.RefreshToken(c.Request.Context(), cqrs.RefreshTokenCommand{Token: req.Token})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	middleware.RespondWithData(c, http.StatusOK, TokenResponse{Token: token})
}
