package dateutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/parlacomsolucoes-sys/escala-parlacom-sub000/pkg/apperror"
)

const DateLayout = "2006-01-02"

// WeekdayNames maps Go weekdays to the lowercase English names used in
// employee work-day sets and custom schedule keys.
var WeekdayNames = map[time.Weekday]string{
	time.Sunday:    "sunday",
	time.Monday:    "monday",
	time.Tuesday:   "tuesday",
	time.Wednesday: "wednesday",
	time.Thursday:  "thursday",
	time.Friday:    "friday",
	time.Saturday:  "saturday",
}

// WeekdayName returns the lowercase English weekday name for a date.
func WeekdayName(date time.Time) string {
	return WeekdayNames[date.Weekday()]
}

// FormatDate formats a date as YYYY-MM-DD.
func FormatDate(date time.Time) string {
	return date.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, apperror.Validationf("date", "invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

// MonthDays enumerates every day of a month in order.
func MonthDays(year int, month time.Month) []time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	days := make([]time.Time, 0, 31)
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// IsWeekend returns true if the date is Saturday or Sunday.
func IsWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// ISOWeek returns the ISO 8601 week number for the given date.
func ISOWeek(date time.Time) (year int, week int) {
	return date.ISOWeek()
}

// WeekendPair is one weekend of a month. Saturday belongs to the same
// weekend as the following Sunday; a member is nil when that day falls
// outside the target month.
type WeekendPair struct {
	Saturday *time.Time
	Sunday   *time.Time
}

// WeekendPairs groups the weekend days of a month into ordered
// Saturday/Sunday pairs. A Sunday whose Saturday belongs to the
// previous month opens the list as a half pair, and a trailing
// Saturday whose Sunday spills into the next month closes it.
func WeekendPairs(year int, month time.Month) []WeekendPair {
	var pairs []WeekendPair
	for _, day := range MonthDays(year, month) {
		switch day.Weekday() {
		case time.Saturday:
			d := day
			pairs = append(pairs, WeekendPair{Saturday: &d})
		case time.Sunday:
			d := day
			if n := len(pairs); n > 0 && pairs[n-1].Sunday == nil && pairs[n-1].Saturday != nil {
				pairs[n-1].Sunday = &d
			} else {
				pairs = append(pairs, WeekendPair{Sunday: &d})
			}
		}
	}
	return pairs
}

// NormalizeTime normalizes a clock time to zero-padded "HH:MM".
// Normalizing an already-normalized time returns it unchanged.
func NormalizeTime(s string) (string, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return "", apperror.Validationf("time", "invalid time %q, expected HH:MM", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return "", apperror.Validationf("time", "invalid hour in %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return "", apperror.Validationf("time", "invalid minute in %q", s)
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}

// NormalizeMonthDay accepts "MM-DD" or a full "YYYY-MM-DD" date and
// returns the zero-padded recurring form "MM-DD".
func NormalizeMonthDay(s string) (string, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) == 3 {
		parts = parts[1:]
	}
	if len(parts) != 2 {
		return "", apperror.Validationf("date", "invalid recurring date %q, expected MM-DD or YYYY-MM-DD", s)
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return "", apperror.Validationf("date", "invalid month in %q", s)
	}
	day, err := strconv.Atoi(parts[1])
	if err != nil || day < 1 || day > 31 {
		return "", apperror.Validationf("date", "invalid day in %q", s)
	}
	return fmt.Sprintf("%02d-%02d", month, day), nil
}

// MonthDay extracts the recurring "MM-DD" key from a date.
func MonthDay(date time.Time) string {
	return date.Format("01-02")
}

// MonthKey formats (year, month) as "YYYY-MM".
func MonthKey(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

// PrevMonth returns the month preceding (year, month).
func PrevMonth(year int, month time.Month) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	return t.Year(), t.Month()
}
