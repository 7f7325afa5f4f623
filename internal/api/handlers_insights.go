package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) GetInsights(c *fiber.Ctx) error {
	overview, err := handler.tracker.Insights(handler.now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build insights")
	}
	return c.JSON(overview)
}
