package handlers

import (
	"filmio-backend/internal/models"
	"filmio-backend/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CreatePostHandler stores a new post for the authenticated user.
func CreatePostHandler(posts *services.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.PostRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
		}

		post, err := posts.Create(c.Context(), req, currentUser(c).Username)
		if err != nil {
			return errorResponse(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(post)
	}
}

// GetPostHandler returns one post by id.
func GetPostHandler(posts *services.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		post, err := posts.Get(c.Context(), c.Params("id"))
		if err != nil {
			return errorResponse(c, err)
		}
		return c.JSON(post)
	}
}

// RandomPostHandler returns a uniformly sampled post.
func RandomPostHandler(posts *services.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		post, err := posts.Random(c.Context())
		if err != nil {
			return errorResponse(c, err)
		}
		return c.JSON(post)
	}
}

// UpdatePostHandler rewrites a post's mutable fields; author only.
func UpdatePostHandler(posts *services.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.PostRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
		}

		post, err := posts.Update(c.Context(), c.Params("id"), req, currentUser(c))
		if err != nil {
			return errorResponse(c, err)
		}
		return c.JSON(post)
	}
}

// DeletePostHandler deletes a post and returns the removed record; author only.
func DeletePostHandler(posts *services.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		post, err := posts.Delete(c.Context(), c.Params("id"), currentUser(c))
		if err != nil {
			return errorResponse(c, err)
		}
		return c.JSON(post)
	}
}

// ListUserPostsHandler returns a user's posts, newest first.
func ListUserPostsHandler(posts *services.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := posts.ListByAuthor(c.Context(), c.Params("username"))
		if err != nil {
			return errorResponse(c, err)
		}
		if list == nil {
			list = []models.Post{}
		}
		return c.JSON(list)
	}
}

// CountUserPostsHandler returns how many posts a user has.
func CountUserPostsHandler(posts *services.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		count, err := posts.CountByAuthor(c.Context(), c.Params("username"))
		if err != nil {
			return errorResponse(c, err)
		}
		return c.JSON(count)
	}
}

// PostsByLocationHandler returns the posts tagged with a place.
func PostsByLocationHandler(posts *services.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := posts.ListByLocation(c.Context(), c.Params("place"))
		if err != nil {
			return errorResponse(c, err)
		}
		if list == nil {
			list = []models.Post{}
		}
		return c.JSON(list)
	}
}
