package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/arlen/habitledger-api/internal/models"
)

const (
	ActionAdded   = "added"
	ActionRemoved = "removed"
)

// DayFormat is the canonical calendar-day representation exchanged with
// callers: YYYY-MM-DD, no time component.
const DayFormat = "2006-01-02"

// Service applies the ledger's mutation rule. It is the only writer of
// completion rows; analytics read the ledger and never touch it.
type Service struct {
	store Store
	now   func() time.Time
}

// NewService wires the service to a store. now is injectable so tests can pin
// the current day; pass nil for the wall clock.
func NewService(store Store, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{store: store, now: now}
}

func (s *Service) Store() Store { return s.store }

// Now exposes the service clock so analytics run against the same "now" the
// toggle uses.
func (s *Service) Now() time.Time { return s.now() }

// Today returns the current day string. It is computed once per operation so
// a request straddling midnight stays on a single day.
func (s *Service) Today() string {
	return s.now().Format(DayFormat)
}

// ToggleResult reports what a toggle did to the ledger.
type ToggleResult struct {
	Action     string
	Completion *models.Completion
}

// Toggle flips completion existence for (habitID, today). If no completion
// exists one is created and the result is "added"; if one exists it is
// deleted and the result is "removed". Two toggles in a row restore the
// original ledger state.
//
// A concurrent toggle racing on the same day can make the create hit the
// uniqueness index; the loser re-reads the winning row and reports "added"
// instead of failing.
func (s *Service) Toggle(ctx context.Context, habitID, userID uuid.UUID) (*ToggleResult, error) {
	if habitID == uuid.Nil {
		return nil, fmt.Errorf("%w: habit id is required", ErrInvalidInput)
	}

	if _, err := s.store.FindHabit(ctx, habitID, userID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: habit", ErrNotFound)
		}
		return nil, err
	}

	today := s.Today()

	existing, err := s.store.FindCompletion(ctx, habitID, userID, today)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	if existing != nil {
		if err := s.store.DeleteCompletion(ctx, existing.ID); err != nil {
			return nil, err
		}
		return &ToggleResult{Action: ActionRemoved}, nil
	}

	completion, err := s.store.CreateCompletion(ctx, habitID, userID, today)
	if err != nil {
		if errors.Is(err, ErrConflict) {
			// Lost a create race: the row exists now, which is the state we
			// were trying to reach anyway.
			winner, findErr := s.store.FindCompletion(ctx, habitID, userID, today)
			if findErr != nil {
				return nil, findErr
			}
			return &ToggleResult{Action: ActionAdded, Completion: winner}, nil
		}
		return nil, err
	}

	return &ToggleResult{Action: ActionAdded, Completion: completion}, nil
}
