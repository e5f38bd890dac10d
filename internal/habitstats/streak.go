// Package habitstats derives streaks, consistency metrics, and achievement
// state from a completion-date snapshot. Everything here is a pure function
// of its inputs: the current time is always passed in, nothing is persisted,
// and the ledger is never mutated.
package habitstats

import (
	"fmt"
	"sort"
	"time"

	"github.com/arlen/habitledger-api/internal/ledger"
)

// Streak returns the number of consecutive calendar days, ending today, on
// which at least one completion was recorded. Dates may contain duplicates
// (several habits completed the same day count once). If today is absent the
// streak is 0 no matter how long the run ending yesterday was.
func Streak(dates []string, today time.Time) (int, error) {
	distinct, err := distinctSortedDesc(dates)
	if err != nil {
		return 0, err
	}

	streak := 0
	for i, date := range distinct {
		expected := today.AddDate(0, 0, -i).Format(ledger.DayFormat)
		if date != expected {
			break
		}
		streak++
	}
	return streak, nil
}

// distinctSortedDesc validates, dedupes, and sorts day strings newest first.
func distinctSortedDesc(dates []string) ([]string, error) {
	seen := make(map[string]struct{}, len(dates))
	distinct := make([]string, 0, len(dates))
	for _, d := range dates {
		if _, err := time.Parse(ledger.DayFormat, d); err != nil {
			return nil, fmt.Errorf("%w: malformed date %q", ledger.ErrInvalidInput, d)
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		distinct = append(distinct, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(distinct)))
	return distinct, nil
}
