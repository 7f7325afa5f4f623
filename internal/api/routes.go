package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	cycle := api.Group("/cycle")
	cycle.Get("", handler.GetCycle)
	cycle.Post("/start", handler.StartCycle)
	cycle.Put("/settings", handler.UpdateCycleSettings)

	days := api.Group("/days")
	days.Get("", handler.GetDays)
	days.Get("/:date", handler.GetDay)
	days.Post("/:date/mood", handler.LogMood)
	days.Post("/:date/note", handler.AddNote)
	days.Post("/:date/symptom", handler.AddSymptom)
	days.Post("/:date/period", handler.SetPeriod)

	recommendations := api.Group("/recommendations")
	recommendations.Get("", handler.GetCatalog)
	recommendations.Get("/personalized", handler.GetPersonalizedRecommendations)
	recommendations.Get("/mood/:mood", handler.GetRecommendationsByMood)
	recommendations.Get("/phase/:phase", handler.GetRecommendationsByPhase)

	api.Get("/insights", handler.GetInsights)

	preferences := api.Group("/preferences")
	preferences.Get("", handler.GetPreferences)
	preferences.Put("", handler.UpdatePreferences)

	export := api.Group("/export")
	export.Get("/json", handler.ExportJSON)
	export.Get("/csv", handler.ExportCSV)
}
