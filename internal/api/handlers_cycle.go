package api

import (
	"errors"
	"time"

	"github.com/bloomcycle/bloom/internal/services"
	"github.com/gofiber/fiber/v2"
)

type startCycleInput struct {
	StartDate string `json:"start_date"`
}

type cycleSettingsInput struct {
	CycleLength  int `json:"cycle_length"`
	PeriodLength int `json:"period_length"`
}

// GetCycle reports the current tracking state. Absence of a cycle is a
// normal answer, not an error.
func (handler *Handler) GetCycle(c *fiber.Ctx) error {
	snapshot, err := handler.tracker.Snapshot(handler.now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load cycle")
	}

	response := fiber.Map{
		"tracking":      snapshot.Data.CurrentCycle != nil,
		"current_phase": snapshot.CurrentPhase,
		"current_mood":  snapshot.CurrentMood,
		"today":         snapshot.TodayRecord,
	}
	if cycle := snapshot.Data.CurrentCycle; cycle != nil {
		response["cycle"] = cycle
	}
	return c.JSON(response)
}

func (handler *Handler) StartCycle(c *fiber.Ctx) error {
	payload := startCycleInput{}
	if err := c.BodyParser(&payload); err != nil && !errors.Is(err, fiber.ErrUnprocessableEntity) {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	var startDate *time.Time
	if payload.StartDate != "" {
		parsed, err := parseDayParam(payload.StartDate, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid start date")
		}
		startDate = &parsed
	}

	cycle, err := handler.tracker.StartCycle(startDate, handler.now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to start cycle")
	}
	return c.Status(fiber.StatusCreated).JSON(cycle)
}

func (handler *Handler) UpdateCycleSettings(c *fiber.Ctx) error {
	payload := cycleSettingsInput{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	data, err := handler.tracker.UpdateCycleSettings(payload.CycleLength, payload.PeriodLength)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCycleSpan) {
			return apiError(c, fiber.StatusBadRequest, "invalid cycle settings")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to update settings")
	}

	return c.JSON(fiber.Map{
		"average_cycle_length":  data.AverageCycleLength,
		"average_period_length": data.AveragePeriodLength,
		"cycle":                 data.CurrentCycle,
	})
}
