package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Completion records that a habit was done on a calendar day. Date is a
// YYYY-MM-DD string with no time component; the composite unique index
// enforces at most one completion per habit per day. UserID is denormalized
// so ownership checks never need a join through Habit.
type Completion struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	HabitID   uuid.UUID `json:"habitId" gorm:"type:uuid;not null;uniqueIndex:idx_completions_habit_date"`
	UserID    uuid.UUID `json:"userId" gorm:"type:uuid;index;not null"`
	Date      string    `json:"date" gorm:"not null;uniqueIndex:idx_completions_habit_date"`
	CreatedAt time.Time `json:"createdAt"`
}

func (c *Completion) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

type ToggleRequest struct {
	HabitID uuid.UUID `json:"habitId" validate:"required"`
}

type ToggleResponse struct {
	Action     string      `json:"action"` // added, removed
	Completion *Completion `json:"completion"`
}
