package scheduler

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/parlacomsolucoes-sys/escala-parlacom-sub000/models"
	"github.com/parlacomsolucoes-sys/escala-parlacom-sub000/pkg/dateutil"
)

// HolidayIndex answers "is this date a holiday" by month-day only; the
// year never participates in the match.
type HolidayIndex struct {
	byMonthDay map[string]models.Holiday
}

func NewHolidayIndex(holidays []models.Holiday) *HolidayIndex {
	idx := &HolidayIndex{byMonthDay: make(map[string]models.Holiday, len(holidays))}
	for _, h := range holidays {
		idx.byMonthDay[h.Date] = h
	}
	return idx
}

// Lookup matches a date against the recurring holiday set.
func (idx *HolidayIndex) Lookup(date time.Time) (models.Holiday, bool) {
	h, ok := idx.byMonthDay[dateutil.MonthDay(date)]
	return h, ok
}

// ResolveHolidaysForYear expands the recurring month-day set into the
// concrete dates of one year. A recurrence with no occurrence in that
// year (Feb 29 outside leap years) is simply absent from the result.
func ResolveHolidaysForYear(holidays []models.Holiday, year int) ([]models.ResolvedHoliday, error) {
	resolved := make([]models.ResolvedHoliday, 0, len(holidays))
	for _, h := range holidays {
		parts := strings.SplitN(h.Date, "-", 2)
		if len(parts) != 2 {
			continue
		}
		month, err := strconv.Atoi(parts[0])
		if err != nil {
			continue
		}
		day, err := strconv.Atoi(parts[1])
		if err != nil {
			continue
		}

		rule, err := rrule.NewRRule(rrule.ROption{
			Freq:       rrule.YEARLY,
			Bymonth:    []int{month},
			Bymonthday: []int{day},
			Dtstart:    time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
			Until:      time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC),
		})
		if err != nil {
			return nil, err
		}
		for _, occ := range rule.All() {
			resolved = append(resolved, models.ResolvedHoliday{
				ID:          h.ID,
				Name:        h.Name,
				Date:        dateutil.FormatDate(occ),
				Description: h.Description,
			})
		}
	}
	sort.Slice(resolved, func(i, j int) bool { return resolved[i].Date < resolved[j].Date })
	return resolved, nil
}
