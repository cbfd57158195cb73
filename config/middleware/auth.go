package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/parlacomsolucoes-sys/escala-parlacom-sub000/pkg/paseto"
)

// AuthMiddleware gates mutation routes: requests without a valid bearer
// token are rejected. Verified claims are stored in c.Locals("user").
func AuthMiddleware(maker *paseto.Maker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authorization header is required"})
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authorization header format must be Bearer <token>"})
		}

		claims, err := maker.ValidateToken(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or expired token"})
		}

		c.Locals("user", claims)
		return c.Next()
	}
}
