package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/arlen/habitledger-api/internal/logger"
	"github.com/arlen/habitledger-api/internal/middleware"
	"github.com/arlen/habitledger-api/internal/models"
)

func (h *Handler) GetCompletions(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	completions, err := h.svc.Store().ListCompletions(c.Context(), userID)
	if err != nil {
		return domainError(c, err)
	}

	return c.JSON(completions)
}

// ToggleCompletion flips today's completion for the given habit. Responds
// with {action: "added", completion} or {action: "removed", completion: null}.
func (h *Handler) ToggleCompletion(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req models.ToggleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	result, err := h.svc.Toggle(c.Context(), req.HabitID, userID)
	if err != nil {
		return domainError(c, err)
	}

	logger.Sugar.Debugw("completion toggled",
		"userId", userID, "habitId", req.HabitID, "action", result.Action)

	return c.JSON(models.ToggleResponse{
		Action:     result.Action,
		Completion: result.Completion,
	})
}
