package middleware

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/mkhalid11/openblog/backend/internal/apperr"
	"github.com/mkhalid11/openblog/backend/internal/models"
)

const callerContextKey = "caller"

// ResolveCaller resolves the Authorization header into a models.Caller and
// stores it in the request context. A missing header yields the anonymous
// caller and the request proceeds; controllers decide where authentication
// is required, so a nested 404 can take precedence over a 401. A present
// but invalid token is a bad credential and is rejected outright.
func ResolveCaller(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				c.Set(callerContextKey, models.Caller{})
				return next(c)
			}

			// Expecting "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				return apperr.Unauthenticated("invalid Authorization header format")
			}

			claims := &models.JwtCustomClaims{}
			token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !token.Valid {
				return apperr.Unauthenticated("invalid or expired token")
			}

			c.Set(callerContextKey, models.Caller{
				ID:       claims.UserID,
				Username: claims.Username,
			})
			return next(c)
		}
	}
}

// CallerFrom extracts the resolved caller from the request context; the
// anonymous caller when nothing was resolved.
func CallerFrom(c echo.Context) models.Caller {
	if caller, ok := c.Get(callerContextKey).(models.Caller); ok {
		return caller
	}
	return models.Caller{}
}
