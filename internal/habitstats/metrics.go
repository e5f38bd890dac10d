package habitstats

import (
	"fmt"
	"strconv"
	"time"

	"github.com/arlen/habitledger-api/internal/ledger"
)

// Standard trailing windows exposed by the API.
const (
	WindowMonth = 30
	WindowYear  = 365
)

// WindowMetrics summarizes activity over a trailing window of days.
type WindowMetrics struct {
	ActiveDays  int    `json:"activeDays"`
	WindowDays  int    `json:"windowDays"`
	Consistency string `json:"consistency"` // percentage, one decimal digit
}

// Metrics counts the distinct active days falling within
// [today-windowDays, today] and derives the consistency percentage.
// ActiveDays can never exceed the window, so consistency stays in [0, 100].
func Metrics(dates []string, windowDays int, today time.Time) (*WindowMetrics, error) {
	if windowDays <= 0 {
		return nil, fmt.Errorf("%w: window must be positive, got %d", ledger.ErrInvalidInput, windowDays)
	}

	distinct, err := distinctSortedDesc(dates)
	if err != nil {
		return nil, err
	}

	// Canonical day strings order lexicographically, so the window filter is
	// a plain string range check. The window holds exactly windowDays days
	// ending today, which keeps activeDays <= windowDays and consistency
	// within [0, 100].
	end := today.Format(ledger.DayFormat)
	start := today.AddDate(0, 0, -windowDays).Format(ledger.DayFormat)

	active := 0
	for _, d := range distinct {
		if d > start && d <= end {
			active++
		}
	}

	consistency := float64(active) / float64(windowDays) * 100

	return &WindowMetrics{
		ActiveDays:  active,
		WindowDays:  windowDays,
		Consistency: strconv.FormatFloat(consistency, 'f', 1, 64),
	}, nil
}
