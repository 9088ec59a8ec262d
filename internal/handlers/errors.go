package handlers

import (
	"errors"

	"filmio-backend/internal/common"
	"filmio-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errorResponse maps service errors onto HTTP statuses with a JSON detail
// body, so individual handlers don't repeat the taxonomy.
func errorResponse(c *fiber.Ctx, err error) error {
	var vErr *models.ValidationError
	switch {
	case errors.As(err, &vErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": vErr.Error()})
	case errors.Is(err, common.ErrUnauthorized):
		return unauthorized(c, "Incorrect username or password")
	case errors.Is(err, common.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You are not the author of the post"})
	case errors.Is(err, common.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	case errors.Is(err, common.ErrUserExists):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "username already exists"})
	case errors.Is(err, common.ErrQuotaExceeded):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Too much posts"})
	case errors.Is(err, common.ErrUnsupportedMedia):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown file type"})
	case errors.Is(err, common.ErrImmutableField):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "You can't change the photo of a post"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}
