package handler

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/gil10101/sokin-sub000/internal/cqrs"
	"github.com/gil10101/sokin-sub000/internal/models"
)

type mockAuthenticator struct {
	registerFn func(cqrs.RegisterUserCommand) (*models.User, string, error)
	loginFn    func(cqrs.LoginCommand) (string, error)
	refreshFn  func(cqrs.RefreshTokenCommand) (string, error)
}

func (m *mockAuthenticator) Register(_ context.Context, cmd cqrs.RegisterUserCommand) (*models.User, string, error) {
	if m.registerFn != nil {
		return m.registerFn(cmd)
	}
	return nil, "", fmt.Errorf("not configured")
}
func (m *mockAuthenticator) Login(_ context.Context, cmd cqrs.LoginCommand) (string, error) {
	if m.loginFn != nil {
		return m.loginFn(cmd)
	}
	return "", fmt.Errorf("not configured")
}
func (m *mockAuthenticator) RefreshToken(_ context.Context, cmd cqrs.RefreshTokenCommand) (string, error) {
	if m.refreshFn != nil {
		return m.refreshFn(cmd)
	}
	return "", fmt.Errorf("not configured")
}

func newAuthTestRouter(auth Authenticator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAuthHandler(auth)
	v1 := r.Group("/v1/auth")
	v1.POST("/register", h.Register)
	v1.POST("/login", h.Login)
	v1.POST("/refresh", h.RefreshToken)
	return r
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		registerFn     func(cqrs.RegisterUserCommand) (*models.User, string, error)
		expectedStatus int
	}{
		{
			name: "success",
			body: map[string]any{"name": "Ada", "email": "ada@example.com", "password": "correct-horse"},
			registerFn: func(cmd cqrs.RegisterUserCommand) (*models.User, string, error) {
				return &models.User{ID: "usr-001", Name: cmd.Name, Email: cmd.Email}, "token", nil
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "bad request - short password",
			body:           map[string]any{"name": "Ada", "email": "ada@example.com", "password": "short"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad request - invalid email",
			body:           map[string]any{"name": "Ada", "email": "not-an-email", "password": "correct-horse"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "conflict - email taken",
			body: map[string]any{"name": "Ada", "email": "ada@example.com", "password": "correct-horse"},
			registerFn: func(cmd cqrs.RegisterUserCommand) (*models.User, string, error) {
				return nil, "", fmt.Errorf("email already registered")
			},
			expectedStatus: http.StatusConflict,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newAuthTestRouter(&mockAuthenticator{registerFn: tt.registerFn})
			w := doRequest(router, http.MethodPost, "/v1/auth/register", tt.body)
			if w.Code != tt.expectedStatus {
				t.Errorf("expected %d got %d; body: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		loginFn        func(cqrs.LoginCommand) (string, error)
		expectedStatus int
	}{
		{
			name:           "success",
			body:           map[string]any{"email": "ada@example.com", "password": "correct-horse"},
			loginFn:        func(cmd cqrs.LoginCommand) (string, error) { return "token", nil },
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unauthorized - wrong password",
			body:           map[string]any{"email": "ada@example.com", "password": "wrong"},
			loginFn:        func(cmd cqrs.LoginCommand) (string, error) { return "", fmt.Errorf("invalid credentials") },
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "bad request - missing password",
			body:           map[string]any{"email": "ada@example.com"},
			expectedStatus: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newAuthTestRouter(&mockAuthenticator{loginFn: tt.loginFn})
			w := doRequest(router, http.MethodPost, "/v1/auth/login", tt.body)
			if w.Code != tt.expectedStatus {
				t.Errorf("expected %d got %d; body: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestRefreshToken(t *testing.T) {
	tests := []struct {
		name           string
		refreshFn      func(cqrs.RefreshTokenCommand) (string, error)
		expectedStatus int
	}{
		{
			name:           "success",
			refreshFn:      func(cmd cqrs.RefreshTokenCommand) (string, error) { return "fresh-token", nil },
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unauthorized - expired token",
			refreshFn:      func(cmd cqrs.RefreshTokenCommand) (string, error) { return "", fmt.Errorf("invalid token") },
			expectedStatus: http.StatusUnauthorized,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newAuthTestRouter(&mockAuthenticator{refreshFn: tt.refreshFn})
			w := doRequest(router, http.MethodPost, "/v1/auth/refresh", map[string]any{"token": "old-token"})
			if w.Code != tt.expectedStatus {
				t.Errorf("expected %d got %d; body: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}
