package handlers

import (
	"filmio-backend/internal/models"
	"filmio-backend/internal/services"

	"github.com/gofiber/fiber/v2"
)

// TokenHandler exchanges username+password form fields for a bearer token.
func TokenHandler(users *services.UserService, tokens *services.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		username := c.FormValue("username")
		password := c.FormValue("password")

		user, err := users.Authenticate(c.Context(), username, password)
		if err != nil {
			return errorResponse(c, err)
		}

		token, err := tokens.Issue(user.Username)
		if err != nil {
			return errorResponse(c, err)
		}

		return c.JSON(fiber.Map{
			"access_token": token,
			"token_type":   "bearer",
		})
	}
}

// RegisterHandler creates a new account.
func RegisterHandler(users *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.RegisterRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
		}

		user, err := users.Register(c.Context(), req)
		if err != nil {
			return errorResponse(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(user.Own())
	}
}

// MeHandler returns the authenticated user's own profile, email included.
func MeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(currentUser(c).Own())
	}
}

// GetUserHandler returns the public profile for any username.
func GetUserHandler(users *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := users.GetByUsername(c.Context(), c.Params("username"))
		if err != nil {
			return errorResponse(c, err)
		}
		return c.JSON(user.Public())
	}
}
