package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/arlen/habitledger-api/internal/ledger"
	"github.com/arlen/habitledger-api/internal/middleware"
	"github.com/arlen/habitledger-api/internal/models"
)

func (h *Handler) GetHabits(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	habits, err := h.svc.Store().ListHabits(c.Context(), userID, true)
	if err != nil {
		return domainError(c, err)
	}

	return c.JSON(habits)
}

func (h *Handler) CreateHabit(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req models.CreateHabitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Habit name is required",
		})
	}

	habit := models.Habit{
		UserID:   userID,
		Name:     name,
		IsActive: true,
	}
	if err := h.svc.Store().CreateHabit(c.Context(), &habit); err != nil {
		return domainError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(habit)
}

func (h *Handler) UpdateHabit(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	habitID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid habit ID",
		})
	}

	habit, err := h.svc.Store().FindHabit(c.Context(), habitID, userID)
	if err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Habit not found",
			})
		}
		return domainError(c, err)
	}

	var req models.UpdateHabitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		habit.Name = strings.TrimSpace(*req.Name)
	}
	if req.IsActive != nil {
		habit.IsActive = *req.IsActive
	}

	if err := h.svc.Store().UpdateHabit(c.Context(), habit); err != nil {
		return domainError(c, err)
	}

	return c.JSON(habit)
}

// DeleteHabit deactivates instead of removing so historical completions keep
// counting toward streaks and consistency.
func (h *Handler) DeleteHabit(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	habitID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid habit ID",
		})
	}

	habit, err := h.svc.Store().FindHabit(c.Context(), habitID, userID)
	if err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Habit not found",
			})
		}
		return domainError(c, err)
	}

	habit.IsActive = false
	if err := h.svc.Store().UpdateHabit(c.Context(), habit); err != nil {
		return domainError(c, err)
	}

	return c.JSON(fiber.Map{"success": true})
}
