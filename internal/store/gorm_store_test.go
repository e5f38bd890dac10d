package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/arlen/habitledger-api/internal/ledger"
	"github.com/arlen/habitledger-api/internal/models"
)

func newTestStore(t *testing.T) *GormStore {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Habit{}, &models.Completion{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return New(db)
}

func seedHabit(t *testing.T, s *GormStore, userID uuid.UUID, name string) *models.Habit {
	t.Helper()
	habit := &models.Habit{UserID: userID, Name: name, IsActive: true}
	if err := s.CreateHabit(context.Background(), habit); err != nil {
		t.Fatalf("create habit: %v", err)
	}
	return habit
}

func TestFindHabitScopedByUser(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	owner := uuid.New()
	habit := seedHabit(t, s, owner, "journal")

	if _, err := s.FindHabit(ctx, habit.ID, owner); err != nil {
		t.Fatalf("owner lookup: %v", err)
	}

	_, err := s.FindHabit(ctx, habit.ID, uuid.New())
	if !errors.Is(err, ledger.ErrNotFound) {
		t.Fatalf("foreign lookup error=%v, want ErrNotFound", err)
	}
}

func TestCreateCompletionConflict(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	userID := uuid.New()
	habit := seedHabit(t, s, userID, "stretch")

	if _, err := s.CreateCompletion(ctx, habit.ID, userID, "2026-08-31"); err != nil {
		t.Fatalf("first create: %v", err)
	}

	_, err := s.CreateCompletion(ctx, habit.ID, userID, "2026-08-31")
	if !errors.Is(err, ledger.ErrConflict) {
		t.Fatalf("duplicate create error=%v, want ErrConflict", err)
	}

	// Same habit, different day is fine.
	if _, err := s.CreateCompletion(ctx, habit.ID, userID, "2026-08-30"); err != nil {
		t.Fatalf("different day: %v", err)
	}
}

func TestDeleteCompletion(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	userID := uuid.New()
	habit := seedHabit(t, s, userID, "walk")

	c, err := s.CreateCompletion(ctx, habit.ID, userID, "2026-08-31")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := s.DeleteCompletion(ctx, c.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	_, err = s.FindCompletion(ctx, habit.ID, userID, "2026-08-31")
	if !errors.Is(err, ledger.ErrNotFound) {
		t.Fatalf("find after delete=%v, want ErrNotFound", err)
	}

	// The day is free again.
	if _, err := s.CreateCompletion(ctx, habit.ID, userID, "2026-08-31"); err != nil {
		t.Fatalf("re-create after delete: %v", err)
	}
}

func TestListCompletionsOrderAndScope(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()
	habitA := seedHabit(t, s, alice, "read")
	habitB := seedHabit(t, s, bob, "read")

	for _, date := range []string{"2026-08-29", "2026-08-31", "2026-08-30"} {
		if _, err := s.CreateCompletion(ctx, habitA.ID, alice, date); err != nil {
			t.Fatalf("seed alice %s: %v", date, err)
		}
	}
	if _, err := s.CreateCompletion(ctx, habitB.ID, bob, "2026-08-31"); err != nil {
		t.Fatalf("seed bob: %v", err)
	}

	got, err := s.ListCompletions(ctx, alice)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("alice sees %d completions, want 3", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].Date < got[i].Date {
			t.Fatalf("completions not ordered date desc: %s before %s", got[i-1].Date, got[i].Date)
		}
	}
	for _, c := range got {
		if c.UserID != alice {
			t.Fatalf("alice's listing leaked user %s", c.UserID)
		}
	}
}

func TestListHabitsActiveFilter(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	userID := uuid.New()
	seedHabit(t, s, userID, "active one")
	inactive := seedHabit(t, s, userID, "retired")
	inactive.IsActive = false
	if err := s.UpdateHabit(ctx, inactive); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	active, err := s.ListHabits(ctx, userID, true)
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(active) != 1 || active[0].Name != "active one" {
		t.Fatalf("active habits=%+v, want only the active one", active)
	}

	all, err := s.ListHabits(ctx, userID, false)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("all habits=%d, want 2 (deactivation keeps the row)", len(all))
	}
}
