package api

import (
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/eczema-tracker/internal/photos"
	"github.com/terraincognita07/eczema-tracker/internal/services"
)

func (handler *Handler) UploadPhoto(c *fiber.Ctx) error {
	day, err := parseDayParam(c.Params("day"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid day")
	}

	header, err := c.FormFile("photo")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "photo is required")
	}
	file, err := header.Open()
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "photo is required")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "photo is required")
	}
	if len(data) == 0 {
		return apiError(c, fiber.StatusBadRequest, "photo is required")
	}

	detected := mimetype.Detect(data)
	if !strings.HasPrefix(detected.String(), "image/") {
		return apiError(c, fiber.StatusBadRequest, "unsupported photo type")
	}

	filename, err := handler.journal.AddPhoto(c.UserContext(), day, data, photoExtension(header.Filename, detected), detected.String())
	if err != nil {
		return journalError(c, err, "failed to save photo")
	}
	return c.JSON(fiber.Map{"filename": filename})
}

func (handler *Handler) DeletePhoto(c *fiber.Ctx) error {
	day, err := parseDayParam(c.Params("day"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid day")
	}
	filename := c.Params("filename")
	if err := services.ValidatePhotoFilename(filename); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid filename")
	}

	if err := handler.journal.DeletePhoto(c.UserContext(), day, filename); err != nil {
		return journalError(c, err, "failed to delete photo")
	}
	return apiOK(c)
}

func (handler *Handler) ServePhoto(c *fiber.Ctx) error {
	filename := c.Params("filename")
	if err := services.ValidatePhotoFilename(filename); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid filename")
	}

	data, err := handler.journal.ReadPhoto(c.UserContext(), filename)
	if errors.Is(err, photos.ErrNotFound) {
		return handler.NotFound(c)
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to read photo")
	}

	c.Set(fiber.HeaderContentType, mimetype.Detect(data).String())
	return c.Send(data)
}

// photoExtension keeps the uploaded file's extension and falls back to the
// sniffed type's canonical one.
func photoExtension(originalName string, detected *mimetype.MIME) string {
	if ext := services.NormalizePhotoExtension(filepath.Ext(originalName)); ext != "" {
		return ext
	}
	return detected.Extension()
}
