package api

import (
	"errors"

	"github.com/bloomcycle/bloom/internal/models"
	"github.com/bloomcycle/bloom/internal/services"
	"github.com/gofiber/fiber/v2"
)

// MaxDaysRangeSpan bounds the calendar view to a year's worth of days
// so an open-ended query cannot materialize an unbounded response.
const MaxDaysRangeSpan = 366

type moodInput struct {
	Mood string `json:"mood"`
}

type noteInput struct {
	Notes string `json:"notes"`
}

type symptomInput struct {
	Symptom string `json:"symptom"`
}

type periodInput struct {
	Period bool `json:"period"`
}

func (handler *Handler) GetDays(c *fiber.Ctx) error {
	from, err := parseDayParam(c.Query("from"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid from date")
	}
	to, err := parseDayParam(c.Query("to"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid to date")
	}
	if to.Before(from) {
		return apiError(c, fiber.StatusBadRequest, "invalid range")
	}
	if services.WholeDaysBetween(to, from, handler.location) >= MaxDaysRangeSpan {
		return apiError(c, fiber.StatusBadRequest, "range too large")
	}

	views, err := handler.tracker.DaysRange(from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch days")
	}
	return c.JSON(views)
}

// GetDay returns the logged record for one date. Unlogged dates come
// back as an empty record with found=false so the client can render a
// blank day without special-casing a 404.
func (handler *Handler) GetDay(c *fiber.Ctx) error {
	day, err := parseDayParam(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	record, found, err := handler.tracker.DayRecord(day)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch day")
	}
	if !found {
		record = models.CycleDay{Date: day}
	}
	return c.JSON(fiber.Map{"found": found, "record": record})
}

func (handler *Handler) LogMood(c *fiber.Ctx) error {
	day, err := parseDayParam(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	payload := moodInput{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	mood, ok := models.ParseMoodType(payload.Mood)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid mood")
	}

	record, err := handler.tracker.LogMood(day, mood)
	if err != nil {
		return handler.dayMutationError(c, err)
	}
	return c.JSON(record)
}

func (handler *Handler) AddNote(c *fiber.Ctx) error {
	day, err := parseDayParam(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	payload := noteInput{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	record, err := handler.tracker.AddNote(day, payload.Notes)
	if err != nil {
		return handler.dayMutationError(c, err)
	}
	return c.JSON(record)
}

func (handler *Handler) AddSymptom(c *fiber.Ctx) error {
	day, err := parseDayParam(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	payload := symptomInput{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if payload.Symptom == "" {
		return apiError(c, fiber.StatusBadRequest, "symptom is required")
	}

	record, err := handler.tracker.AddSymptom(day, payload.Symptom)
	if err != nil {
		return handler.dayMutationError(c, err)
	}
	return c.JSON(record)
}

func (handler *Handler) SetPeriod(c *fiber.Ctx) error {
	day, err := parseDayParam(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	payload := periodInput{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	record, err := handler.tracker.SetPeriodDay(day, payload.Period)
	if err != nil {
		return handler.dayMutationError(c, err)
	}
	return c.JSON(record)
}

func (handler *Handler) dayMutationError(c *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrNoActiveCycle) {
		return apiError(c, fiber.StatusConflict, "no active cycle")
	}
	if errors.Is(err, services.ErrNoteTooLong) {
		return apiError(c, fiber.StatusBadRequest, "note is too long")
	}
	return apiError(c, fiber.StatusInternalServerError, "failed to update day")
}
