package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/arlen/habitledger-api/internal/config"
	"github.com/arlen/habitledger-api/internal/handlers"
	"github.com/arlen/habitledger-api/internal/middleware"
)

func Setup(app *fiber.App, h *handlers.Handler, cfg *config.Config) {
	api := app.Group("/api", middleware.RateLimit(cfg.RateLimitPerMinute))

	auth := api.Group("/auth")
	auth.Post("/register", h.Register)
	auth.Post("/login", h.Login)

	protected := api.Group("/", middleware.Protected(cfg.JWTSecret))

	protected.Get("/me", h.GetMe)

	habits := protected.Group("/habits")
	habits.Get("/", h.GetHabits)
	habits.Post("/", h.CreateHabit)
	habits.Patch("/:id", h.UpdateHabit)
	habits.Delete("/:id", h.DeleteHabit)

	completions := protected.Group("/completions")
	completions.Get("/", h.GetCompletions)
	completions.Post("/toggle", h.ToggleCompletion)

	protected.Get("/stats", h.GetStats)
}
