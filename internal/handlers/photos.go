package handlers

import (
	"filmio-backend/internal/services"

	"github.com/gofiber/fiber/v2"
)

// mimeByExtension maps a stored extension back to the response content type.
var mimeByExtension = map[string]string{
	"jpg": "image/jpeg",
	"png": "image/png",
}

// UploadPhotoHandler ingests a multipart photo upload (field name: "file").
// Re-uploading identical bytes returns the existing record.
func UploadPhotoHandler(photos *services.PhotoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file is required"})
		}

		f, err := fileHeader.Open()
		if err != nil {
			return errorResponse(c, err)
		}
		defer f.Close()

		photo, err := photos.Ingest(c.Context(), f, fileHeader.Header.Get(fiber.HeaderContentType))
		if err != nil {
			return errorResponse(c, err)
		}
		return c.JSON(photo)
	}
}

// PhotoContentHandler streams the raw photo bytes.
func PhotoContentHandler(photos *services.PhotoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rc, photo, err := photos.GetFile(c.Context(), c.Params("hash"))
		if err != nil {
			return errorResponse(c, err)
		}
		if mime, ok := mimeByExtension[photo.OriginalExtension]; ok {
			c.Set(fiber.HeaderContentType, mime)
		}
		// fasthttp closes the stream when it implements io.Closer
		return c.SendStream(rc)
	}
}

// PhotoInfoHandler returns the photo metadata.
func PhotoInfoHandler(photos *services.PhotoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		photo, err := photos.GetInfo(c.Context(), c.Params("hash"))
		if err != nil {
			return errorResponse(c, err)
		}
		return c.JSON(photo)
	}
}
