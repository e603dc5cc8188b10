package rest

import (
	"context"
	"errors"
	"net/http"

	"tenantpulse/business/auth"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	AuthHandler struct {
		validate    *validator.Validate
		authService AuthService
	}

	AuthService interface {
		Login(ctx context.Context, email, password string) (auth.LoginResult, error)
		Logout(ctx context.Context, userID uint, token string) error
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}
)

func NewAuthHandler(svc AuthService) *AuthHandler {
	return &AuthHandler{
		validate:    validator.New(),
		authService: svc,
	}
}

// POST /api/v1/auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, ResponseError{Message: "invalid email or password"})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(result))
}

// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}
	token, _ := c.Get("token").(string)

	if err := h.authService.Logout(c.Request().Context(), userID, token); err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("logged out"))
}
