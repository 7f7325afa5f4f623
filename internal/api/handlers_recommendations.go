package api

import (
	"github.com/bloomcycle/bloom/internal/models"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetCatalog(c *fiber.Ctx) error {
	return c.JSON(handler.recommender.Catalog())
}

func (handler *Handler) GetRecommendationsByMood(c *fiber.Ctx) error {
	mood, ok := models.ParseMoodType(c.Params("mood"))
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid mood")
	}
	return c.JSON(handler.recommender.ByMood(mood))
}

func (handler *Handler) GetRecommendationsByPhase(c *fiber.Ctx) error {
	phase, ok := models.ParseCyclePhase(c.Params("phase"))
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid phase")
	}
	return c.JSON(handler.recommender.ByPhase(phase))
}

// GetPersonalizedRecommendations filters by today's mood and phase.
// Query parameters override the derived context; with neither context
// available the list is empty by design.
func (handler *Handler) GetPersonalizedRecommendations(c *fiber.Ctx) error {
	var mood *models.MoodType
	var phase *models.CyclePhase

	if raw := c.Query("mood"); raw != "" {
		parsed, ok := models.ParseMoodType(raw)
		if !ok {
			return apiError(c, fiber.StatusBadRequest, "invalid mood")
		}
		mood = &parsed
	}
	if raw := c.Query("phase"); raw != "" {
		parsed, ok := models.ParseCyclePhase(raw)
		if !ok {
			return apiError(c, fiber.StatusBadRequest, "invalid phase")
		}
		phase = &parsed
	}

	if mood == nil || phase == nil {
		snapshot, err := handler.tracker.Snapshot(handler.now())
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to load tracking state")
		}
		if mood == nil {
			mood = snapshot.CurrentMood
		}
		if phase == nil {
			phase = snapshot.CurrentPhase
		}
	}

	return c.JSON(handler.recommender.Personalized(mood, phase))
}
