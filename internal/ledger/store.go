package ledger

import (
	"context"

	"github.com/google/uuid"

	"github.com/arlen/habitledger-api/internal/models"
)

// Store is the durable keyed storage for habits and completions. Every query
// is scoped by user so one user can never observe or mutate another's rows.
//
// CreateCompletion returns ErrConflict when the (habit, date) uniqueness
// invariant would be violated; callers decide whether that is fatal.
type Store interface {
	FindHabit(ctx context.Context, habitID, userID uuid.UUID) (*models.Habit, error)
	ListHabits(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]models.Habit, error)
	CreateHabit(ctx context.Context, habit *models.Habit) error
	UpdateHabit(ctx context.Context, habit *models.Habit) error

	FindCompletion(ctx context.Context, habitID, userID uuid.UUID, date string) (*models.Completion, error)
	CreateCompletion(ctx context.Context, habitID, userID uuid.UUID, date string) (*models.Completion, error)
	DeleteCompletion(ctx context.Context, completionID uuid.UUID) error
	ListCompletions(ctx context.Context, userID uuid.UUID) ([]models.Completion, error)
	ListCompletionsForHabit(ctx context.Context, habitID, userID uuid.UUID) ([]models.Completion, error)
}
