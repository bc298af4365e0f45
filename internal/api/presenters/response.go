package presenters

import (
	"github.com/gofiber/fiber/v2"
)

// SuccessResponse writes {"success": true, "message": ..., ...fields}.
// An empty message is left out.
func SuccessResponse(c *fiber.Ctx, fields fiber.Map, statusCode int, message string) error {
	body := fiber.Map{"success": true}
	if message != "" {
		body["message"] = message
	}
	for k, v := range fields {
		body[k] = v
	}
	return c.Status(statusCode).JSON(body)
}

// ErrorResponse writes {"success": false, "error": message, "details": err}.
func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	body := fiber.Map{
		"success": false,
		"error":   message,
	}
	if err != nil {
		body["details"] = err.Error()
	}
	return c.Status(statusCode).JSON(body)
}

// PlainErrorResponse writes {"error": message, "details": err} for routes whose
// clients never look at a success flag.
func PlainErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	body := fiber.Map{"error": message}
	if err != nil {
		body["details"] = err.Error()
	}
	return c.Status(statusCode).JSON(body)
}

// JSONResponse relays a payload unchanged, including pre-encoded JSON.
func JSONResponse(c *fiber.Ctx, statusCode int, payload any) error {
	return c.Status(statusCode).JSON(payload)
}
