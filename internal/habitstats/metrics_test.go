package habitstats

import (
	"errors"
	"testing"

	"github.com/arlen/habitledger-api/internal/ledger"
)

func TestMetricsHalfConsistency(t *testing.T) {
	// Exactly 15 distinct active days in a 30-day window -> "50.0".
	var dates []string
	for i := 0; i < 15; i++ {
		dates = append(dates, day(i*2))
	}
	m, err := Metrics(dates, WindowMonth, testToday)
	if err != nil {
		t.Fatalf("Metrics: %v", err)
	}
	if m.ActiveDays != 15 {
		t.Fatalf("ActiveDays=%d, want 15", m.ActiveDays)
	}
	if m.WindowDays != 30 {
		t.Fatalf("WindowDays=%d, want 30", m.WindowDays)
	}
	if m.Consistency != "50.0" {
		t.Fatalf("Consistency=%q, want \"50.0\"", m.Consistency)
	}
}

func TestMetricsEmpty(t *testing.T) {
	m, err := Metrics(nil, WindowMonth, testToday)
	if err != nil {
		t.Fatalf("Metrics: %v", err)
	}
	if m.ActiveDays != 0 || m.Consistency != "0.0" {
		t.Fatalf("got activeDays=%d consistency=%q, want 0 / \"0.0\"", m.ActiveDays, m.Consistency)
	}
}

func TestMetricsDeduplicatesDays(t *testing.T) {
	// Three habits done the same day is one active day.
	dates := []string{day(0), day(0), day(0)}
	m, err := Metrics(dates, WindowMonth, testToday)
	if err != nil {
		t.Fatalf("Metrics: %v", err)
	}
	if m.ActiveDays != 1 {
		t.Fatalf("ActiveDays=%d, want 1", m.ActiveDays)
	}
}

func TestMetricsExcludesOutsideWindow(t *testing.T) {
	dates := []string{day(0), day(31), day(400)}
	m, err := Metrics(dates, WindowMonth, testToday)
	if err != nil {
		t.Fatalf("Metrics: %v", err)
	}
	if m.ActiveDays != 1 {
		t.Fatalf("ActiveDays=%d, want 1 (only today inside the window)", m.ActiveDays)
	}

	y, err := Metrics(dates, WindowYear, testToday)
	if err != nil {
		t.Fatalf("Metrics: %v", err)
	}
	if y.ActiveDays != 2 {
		t.Fatalf("yearly ActiveDays=%d, want 2", y.ActiveDays)
	}
}

func TestMetricsBounded(t *testing.T) {
	// Every day filled: activeDays never exceeds the window and consistency
	// never exceeds 100.
	var dates []string
	for i := 0; i < 60; i++ {
		dates = append(dates, day(i))
	}
	m, err := Metrics(dates, WindowMonth, testToday)
	if err != nil {
		t.Fatalf("Metrics: %v", err)
	}
	if m.ActiveDays != WindowMonth {
		t.Fatalf("ActiveDays=%d, want %d (saturated window)", m.ActiveDays, WindowMonth)
	}
	if m.Consistency != "100.0" {
		t.Fatalf("Consistency=%q, want \"100.0\"", m.Consistency)
	}
}

func TestMetricsRejectsBadWindow(t *testing.T) {
	for _, w := range []int{0, -5} {
		_, err := Metrics([]string{day(0)}, w, testToday)
		if !errors.Is(err, ledger.ErrInvalidInput) {
			t.Fatalf("window %d: error=%v, want ErrInvalidInput", w, err)
		}
	}
}

func TestMetricsRejectsMalformedDate(t *testing.T) {
	_, err := Metrics([]string{"2026-13-99"}, WindowMonth, testToday)
	if !errors.Is(err, ledger.ErrInvalidInput) {
		t.Fatalf("error=%v, want ErrInvalidInput", err)
	}
}
