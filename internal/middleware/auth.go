package middleware

import (
	"Meal-Planner-Backend/domain"
	"Meal-Planner-Backend/internal/api/presenters"
	"Meal-Planner-Backend/pkg/jwt"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// tokenFromRequest prefers the session cookie and falls back to a bearer
// Authorization header.
func tokenFromRequest(c *fiber.Ctx) string {
	if token := c.Cookies(domain.SessionCookieName); token != "" {
		return token
	}
	header := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return ""
}

func (m *middleware) AuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := tokenFromRequest(c)
		if token == "" {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, domain.ErrTokenNotFound)
		}

		username, err := jwtService.GetUsernameByToken(token)
		if err != nil {
			if errors.Is(err, domain.ErrTokenExpired) {
				return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, err)
			}
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, domain.ErrTokenInvalid)
		}

		c.Locals(domain.LocalsUserID, username)
		return c.Next()
	}
}

// OptionalAuthMiddleware always continues. The user_id local is the session
// username, or empty for anonymous callers.
func (m *middleware) OptionalAuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		username := ""
		if token := tokenFromRequest(c); token != "" {
			if name, err := jwtService.GetUsernameByToken(token); err == nil {
				username = name
			}
		}
		c.Locals(domain.LocalsUserID, username)
		return c.Next()
	}
}
