package api

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/bloomcycle/bloom/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ExportJSON(c *fiber.Ctx) error {
	entries, err := handler.exporter.BuildEntries()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	c.Set(fiber.HeaderContentDisposition, handler.attachmentName("json"))
	return c.JSON(entries)
}

func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	entries, err := handler.exporter.BuildEntries()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	var output bytes.Buffer
	writer := csv.NewWriter(&output)
	if err := writer.Write(services.ExportCSVHeaders); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to write export")
	}
	for _, row := range services.CSVRows(entries) {
		if err := writer.Write(row); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to write export")
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to write export")
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, handler.attachmentName("csv"))
	return c.Send(output.Bytes())
}

func (handler *Handler) attachmentName(extension string) string {
	stamp := handler.now().In(handler.location).Format("2006-01-02")
	return fmt.Sprintf(`attachment; filename="bloom-export-%s.%s"`, stamp, extension)
}
