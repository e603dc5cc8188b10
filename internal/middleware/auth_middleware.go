package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"tenantpulse/pkg/logger"
	"tenantpulse/pkg/utils"

	jsonres "tenantpulse/pkg/response"

	"github.com/labstack/echo/v4"
)

// SessionValidator checks that a token was issued here and not revoked since.
type SessionValidator interface {
	ValidateSession(ctx context.Context, userID uint, token string) (bool, error)
}

// AuthMiddleware validates the bearer JWT and loads its identity into the
// echo context.
func AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, jsonres.Error(
					"UNAUTHORIZED", "Missing authorization header", nil,
				))
			}

			tokenParts := strings.Split(authHeader, " ")
			if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
				return c.JSON(http.StatusUnauthorized, jsonres.Error(
					"UNAUTHORIZED", "Invalid authorization format", nil,
				))
			}

			tokenString := tokenParts[1]

			claims, err := utils.ParseJWT(tokenString)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, jsonres.Error(
					"UNAUTHORIZED", "Invalid token", nil,
				))
			}

			expAt, err := claims.GetExpirationTime()
			if err != nil || time.Now().After(expAt.Time) {
				return c.JSON(http.StatusForbidden, jsonres.Error(
					"FORBIDDEN", "Status Forbidden", nil,
				))
			}

			userIDUint, err := strconv.ParseUint(claims.UserID, 10, 64)
			if err != nil {
				logger.Error("Invalid user ID in token", err)
				return c.JSON(http.StatusForbidden, jsonres.Error(
					"FORBIDDEN", "Invalid user ID in token", nil,
				))
			}

			c.Set("user_id", uint(userIDUint))
			c.Set("role", claims.Role)
			c.Set("token", tokenString)

			return next(c)
		}
	}
}

// AuthMiddlewareWithSession additionally requires a live session entry, so
// revoked tokens are rejected before their JWT expiry.
func AuthMiddlewareWithSession(validator SessionValidator) echo.MiddlewareFunc {
	base := AuthMiddleware()
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return base(func(c echo.Context) error {
			userID, _ := c.Get("user_id").(uint)
			tokenString, _ := c.Get("token").(string)

			live, err := validator.ValidateSession(c.Request().Context(), userID, tokenString)
			if err != nil {
				logger.Error("Failed to validate session", err)
				return c.JSON(http.StatusUnauthorized, jsonres.Error(
					"UNAUTHORIZED", "Session validation failed", nil,
				))
			}
			if !live {
				return c.JSON(http.StatusUnauthorized, jsonres.Error(
					"UNAUTHORIZED", "Session expired or revoked", nil,
				))
			}

			return next(c)
		})
	}
}

// RequireRole guards a route group to one role. Run after an auth middleware.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			current, _ := c.Get("role").(string)
			if current != role {
				return c.JSON(http.StatusForbidden, jsonres.Error(
					"FORBIDDEN", "Insufficient role", nil,
				))
			}
			return next(c)
		}
	}
}
