package handlers

import (
	"strings"

	"filmio-backend/internal/models"
	"filmio-backend/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired verifies the bearer token, resolves its subject to a full
// user record and stores it in the request locals. Every mutating route
// runs behind it.
func AuthRequired(tokens *services.TokenService, users *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var token string
		authHeader := c.Get(fiber.HeaderAuthorization)
		if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
			token = authHeader[7:]
		}
		if token == "" {
			return unauthorized(c, "Not authenticated")
		}

		username, err := tokens.Verify(token)
		if err != nil {
			return unauthorized(c, "Could not validate credentials")
		}

		user, err := users.GetByUsername(c.Context(), username)
		if err != nil {
			return unauthorized(c, "Could not validate credentials")
		}

		c.Locals("user", user)
		return c.Next()
	}
}

// unauthorized writes a 401 with the bearer challenge header.
func unauthorized(c *fiber.Ctx, detail string) error {
	c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": detail})
}

// currentUser fetches the user stored by AuthRequired.
func currentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals("user").(*models.User)
	return user
}
