package api

import (
	"github.com/bloomcycle/bloom/internal/models"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetPreferences(c *fiber.Ctx) error {
	preferences, err := handler.tracker.Preferences()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load preferences")
	}
	return c.JSON(preferences)
}

func (handler *Handler) UpdatePreferences(c *fiber.Ctx) error {
	payload := models.Preferences{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	preferences, err := handler.tracker.UpdatePreferences(payload)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update preferences")
	}
	return c.JSON(preferences)
}
