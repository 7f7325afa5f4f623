package api

import (
	"time"

	"github.com/bloomcycle/bloom/internal/models"
	"github.com/bloomcycle/bloom/internal/services"
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	tracker     *services.TrackerService
	recommender *services.RecommendationService
	exporter    *services.ExportService
	location    *time.Location
	now         func() time.Time
}

func NewHandler(store services.UserDataRepository, location *time.Location) *Handler {
	if location == nil {
		location = time.UTC
	}
	return &Handler{
		tracker:     services.NewTrackerService(store, location),
		recommender: services.NewRecommendationService(models.DefaultFoodCatalog()),
		exporter:    services.NewExportService(store, location),
		location:    location,
		now:         time.Now,
	}
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func parseDayParam(raw string, location *time.Location) (time.Time, error) {
	return services.ParseDay(raw, location)
}
