package middleware

import (
	"strings"

	"smart-sales-api/internal/repository"
	"smart-sales-api/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Context keys set by RequireAuth
const (
	LocalUserID   = "user_id"
	LocalUsername = "username"
	LocalIsStaff  = "is_staff"
)

// RequireAuth is middleware that validates the bearer access token and sets user info in context
func RequireAuth(userRepo repository.UserRepository, tokens *jwt.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Get Authorization header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Authentication credentials were not provided"})
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid authorization format. Use: Bearer <token>"})
		}

		// Only access tokens authenticate requests
		claims, err := tokens.Parse(parts[1], jwt.AccessToken)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		user, err := userRepo.FindByID(c.UserContext(), claims.UserID)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "User not found"})
		}
		if !user.IsActive {
			return c.Status(401).JSON(fiber.Map{"error": "Account is disabled"})
		}

		c.Locals(LocalUserID, user.ID)
		c.Locals(LocalUsername, user.Username)
		c.Locals(LocalIsStaff, user.IsStaff)

		return c.Next()
	}
}

// UserID returns the authenticated user's id, or uuid.Nil outside RequireAuth.
func UserID(c *fiber.Ctx) uuid.UUID {
	id, ok := c.Locals(LocalUserID).(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}
