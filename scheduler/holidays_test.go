package scheduler

import (
	"testing"
	"time"

	"github.com/parlacomsolucoes-sys/escala-parlacom-sub000/models"
)

func TestHolidayIndexIgnoresYear(t *testing.T) {
	idx := NewHolidayIndex([]models.Holiday{
		{ID: "h1", Name: "Labor Day", Date: "05-01"},
		{ID: "h2", Name: "Christmas", Date: "12-25"},
	})

	for _, year := range []int{2020, 2025, 2031} {
		date := time.Date(year, time.May, 1, 0, 0, 0, 0, time.UTC)
		h, ok := idx.Lookup(date)
		if !ok || h.Name != "Labor Day" {
			t.Errorf("May 1 %d should match Labor Day, got %v %v", year, h, ok)
		}
	}

	if _, ok := idx.Lookup(time.Date(2025, time.May, 2, 0, 0, 0, 0, time.UTC)); ok {
		t.Error("May 2 must not match any holiday")
	}
}

func TestResolveHolidaysForYear(t *testing.T) {
	holidays := []models.Holiday{
		{ID: "h1", Name: "Christmas", Date: "12-25"},
		{ID: "h2", Name: "Leap Fest", Date: "02-29"},
		{ID: "h3", Name: "New Year", Date: "01-01"},
	}

	resolved, err := ResolveHolidaysForYear(holidays, 2025)
	if err != nil {
		t.Fatal(err)
	}
	// Feb 29 has no occurrence in 2025.
	if len(resolved) != 2 {
		t.Fatalf("expected 2 resolved holidays in 2025, got %v", resolved)
	}
	if resolved[0].Date != "2025-01-01" || resolved[1].Date != "2025-12-25" {
		t.Errorf("resolved dates must be sorted concrete dates, got %v", resolved)
	}

	resolved, err = ResolveHolidaysForYear(holidays, 2024)
	if err != nil {
		t.Fatal(err)
	}
	if len(resolved) != 3 {
		t.Fatalf("expected 3 resolved holidays in leap year 2024, got %v", resolved)
	}
	if resolved[1].Date != "2024-02-29" {
		t.Errorf("expected 2024-02-29 in the middle, got %v", resolved)
	}
}
