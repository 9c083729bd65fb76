package middleware

import (
	"strings"

	"storefront/internal/services"

	"github.com/gofiber/fiber/v2"
)

// UserIDKey is the fiber.Ctx locals key holding the authenticated user's ID.
const UserIDKey = "user_id"

// AuthRequired is a Fiber middleware that verifies the bearer token and
// stores the user ID in the request locals. Missing, malformed and expired
// tokens all answer 401 without distinguishing the cause.
func AuthRequired(tokens *services.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Access denied. No token provided.",
			})
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authorization header format must be 'Bearer <token>'",
			})
		}

		userID, ok := tokens.Verify(parts[1])
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		c.Locals(UserIDKey, userID)
		return c.Next()
	}
}

// UserID reads the authenticated user's ID placed by AuthRequired.
func UserID(c *fiber.Ctx) uint {
	id, _ := c.Locals(UserIDKey).(uint)
	return id
}
