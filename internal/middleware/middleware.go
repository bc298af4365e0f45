package middleware

import (
	"Meal-Planner-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		AuthMiddleware(jwtService jwt.JWTService) fiber.Handler
		OptionalAuthMiddleware(jwtService jwt.JWTService) fiber.Handler
	}

	middleware struct {
		allowOrigins string
	}
)

// NewMiddleware takes a comma separated list of origins allowed to send
// credentialed requests.
func NewMiddleware(allowOrigins string) Middleware {
	return &middleware{allowOrigins: allowOrigins}
}
