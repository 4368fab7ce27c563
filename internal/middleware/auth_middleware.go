package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/alexdelx20/WeddingDream/internal/models"
	jwtPkg "github.com/alexdelx20/WeddingDream/pkg/jwt"
)

// AuthMiddleware rejects requests without a valid bearer token and stores
// the authenticated user's id and email in the request locals. Everything
// behind it can assume "userID" is present.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Authorization header is required"))
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid authorization header format"))
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := jwtPkg.ValidateToken(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid token"))
		}

		userIDFloat, ok := claims["user_id"].(float64)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid user ID in token"))
		}

		userEmail, ok := claims["email"].(string)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid email in token"))
		}

		c.Locals("userID", uint(userIDFloat))
		c.Locals("userEmail", userEmail)

		return c.Next()
	}
}
