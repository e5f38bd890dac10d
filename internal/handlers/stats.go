package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/arlen/habitledger-api/internal/habitstats"
	"github.com/arlen/habitledger-api/internal/middleware"
	"github.com/arlen/habitledger-api/internal/models"
)

type statsResponse struct {
	Streak  int                       `json:"streak"`
	Monthly *habitstats.WindowMetrics `json:"monthly"`
	Yearly  *habitstats.WindowMetrics `json:"yearly"`
	Rewards *habitstats.Achievements  `json:"rewards"`
}

// GetStats runs the analytics over a snapshot of the caller's ledger. The
// streak is global across habits by default; ?habitId= narrows the snapshot
// to a single habit.
func (h *Handler) GetStats(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var (
		completions []models.Completion
		err         error
	)
	if raw := c.Query("habitId"); raw != "" {
		habitID, parseErr := uuid.Parse(raw)
		if parseErr != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid habit ID",
			})
		}
		completions, err = h.svc.Store().ListCompletionsForHabit(c.Context(), habitID, userID)
	} else {
		completions, err = h.svc.Store().ListCompletions(c.Context(), userID)
	}
	if err != nil {
		return domainError(c, err)
	}

	dates := make([]string, 0, len(completions))
	for _, comp := range completions {
		dates = append(dates, comp.Date)
	}

	// One snapshot, one "now": every calculation below sees the same day.
	now := h.svc.Now()

	streak, err := habitstats.Streak(dates, now)
	if err != nil {
		return domainError(c, err)
	}
	monthly, err := habitstats.Metrics(dates, habitstats.WindowMonth, now)
	if err != nil {
		return domainError(c, err)
	}
	yearly, err := habitstats.Metrics(dates, habitstats.WindowYear, now)
	if err != nil {
		return domainError(c, err)
	}

	consistency30, err := strconv.ParseFloat(monthly.Consistency, 64)
	if err != nil {
		return domainError(c, err)
	}

	return c.JSON(statsResponse{
		Streak:  streak,
		Monthly: monthly,
		Yearly:  yearly,
		Rewards: habitstats.Evaluate(streak, consistency30),
	})
}
