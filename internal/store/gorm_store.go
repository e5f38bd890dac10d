// Package store implements the ledger's storage contract on GORM, backed by
// SQLite or PostgreSQL depending on the configured URL.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/arlen/habitledger-api/internal/ledger"
	"github.com/arlen/habitledger-api/internal/models"
)

type GormStore struct {
	db *gorm.DB
}

func New(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

var _ ledger.Store = (*GormStore)(nil)

func (s *GormStore) FindHabit(ctx context.Context, habitID, userID uuid.UUID) (*models.Habit, error) {
	var habit models.Habit
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", habitID, userID).
		First(&habit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ledger.ErrNotFound
		}
		return nil, err
	}
	return &habit, nil
}

func (s *GormStore) ListHabits(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]models.Habit, error) {
	q := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var habits []models.Habit
	if err := q.Order("created_at asc").Find(&habits).Error; err != nil {
		return nil, err
	}
	return habits, nil
}

func (s *GormStore) CreateHabit(ctx context.Context, habit *models.Habit) error {
	return s.db.WithContext(ctx).Create(habit).Error
}

func (s *GormStore) UpdateHabit(ctx context.Context, habit *models.Habit) error {
	return s.db.WithContext(ctx).Save(habit).Error
}

func (s *GormStore) FindCompletion(ctx context.Context, habitID, userID uuid.UUID, date string) (*models.Completion, error) {
	var completion models.Completion
	err := s.db.WithContext(ctx).
		Where("habit_id = ? AND user_id = ? AND date = ?", habitID, userID, date).
		First(&completion).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ledger.ErrNotFound
		}
		return nil, err
	}
	return &completion, nil
}

func (s *GormStore) CreateCompletion(ctx context.Context, habitID, userID uuid.UUID, date string) (*models.Completion, error) {
	completion := models.Completion{
		HabitID: habitID,
		UserID:  userID,
		Date:    date,
	}
	if err := s.db.WithContext(ctx).Create(&completion).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: completion exists for %s", ledger.ErrConflict, date)
		}
		return nil, err
	}
	return &completion, nil
}

func (s *GormStore) DeleteCompletion(ctx context.Context, completionID uuid.UUID) error {
	return s.db.WithContext(ctx).Delete(&models.Completion{}, "id = ?", completionID).Error
}

func (s *GormStore) ListCompletions(ctx context.Context, userID uuid.UUID) ([]models.Completion, error) {
	var completions []models.Completion
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date desc").
		Find(&completions).Error
	if err != nil {
		return nil, err
	}
	return completions, nil
}

func (s *GormStore) ListCompletionsForHabit(ctx context.Context, habitID, userID uuid.UUID) ([]models.Completion, error) {
	var completions []models.Completion
	err := s.db.WithContext(ctx).
		Where("habit_id = ? AND user_id = ?", habitID, userID).
		Order("date desc").
		Find(&completions).Error
	if err != nil {
		return nil, err
	}
	return completions, nil
}
