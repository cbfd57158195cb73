package scheduler

import (
	"time"

	"github.com/parlacomsolucoes-sys/escala-parlacom-sub000/models"
	"github.com/parlacomsolucoes-sys/escala-parlacom-sub000/pkg/apperror"
	"github.com/parlacomsolucoes-sys/escala-parlacom-sub000/pkg/dateutil"
)

// ValidateVacationRange enforces the range invariants: parseable dates,
// start ≤ end, and both ends inside the same calendar year. A period
// spanning a year boundary must be split into two records by the caller.
func ValidateVacationRange(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := dateutil.ParseDate(startDate)
	if err != nil {
		return time.Time{}, time.Time{}, apperror.Validationf("startDate", "invalid start date %q, expected YYYY-MM-DD", startDate)
	}
	end, err := dateutil.ParseDate(endDate)
	if err != nil {
		return time.Time{}, time.Time{}, apperror.Validationf("endDate", "invalid end date %q, expected YYYY-MM-DD", endDate)
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, apperror.Validationf("endDate", "start date %s is after end date %s", startDate, endDate)
	}
	if start.Year() != end.Year() {
		return time.Time{}, time.Time{}, apperror.Validationf("endDate", "vacation must not cross a calendar-year boundary; split it into one record per year")
	}
	return start, end, nil
}

// CheckOverlap rejects a period that overlaps any existing vacation of
// the same employee. Ranges are inclusive, so sharing a single day is a
// conflict; excludeID skips the record being updated.
func CheckOverlap(existing []models.Vacation, startDate, endDate, excludeID string) error {
	for _, v := range existing {
		if v.ID == excludeID {
			continue
		}
		// ISO dates compare correctly as strings.
		if startDate <= v.EndDate && endDate >= v.StartDate {
			return apperror.Newf(apperror.CodeConflict,
				"vacation %s..%s overlaps existing vacation %s..%s for %s",
				startDate, endDate, v.StartDate, v.EndDate, v.EmployeeName)
		}
	}
	return nil
}

// VacationIndex answers per-day availability lookups during generation.
type VacationIndex struct {
	byEmployee map[string][]models.Vacation
}

func NewVacationIndex(vacations []models.Vacation) *VacationIndex {
	idx := &VacationIndex{byEmployee: make(map[string][]models.Vacation)}
	for _, v := range vacations {
		idx.byEmployee[v.EmployeeID] = append(idx.byEmployee[v.EmployeeID], v)
	}
	return idx
}

// IsOnVacation reports whether the employee is unavailable on the date
// (YYYY-MM-DD), ranges inclusive on both ends.
func (idx *VacationIndex) IsOnVacation(employeeID, date string) bool {
	for _, v := range idx.byEmployee[employeeID] {
		if date >= v.StartDate && date <= v.EndDate {
			return true
		}
	}
	return false
}

// MonthRef identifies one schedule month.
type MonthRef struct {
	Year  int
	Month time.Month
}

// AffectedMonths collects every month a vacation mutation can touch:
// the span of the old period and of the new one. These months must be
// regenerated so the roster stays consistent with approvals.
func AffectedMonths(old, updated *models.Vacation) []MonthRef {
	seen := make(map[MonthRef]bool)
	var refs []MonthRef
	for _, v := range []*models.Vacation{old, updated} {
		if v == nil {
			continue
		}
		start, err := dateutil.ParseDate(v.StartDate)
		if err != nil {
			continue
		}
		end, err := dateutil.ParseDate(v.EndDate)
		if err != nil {
			continue
		}
		for m := start.Month(); m <= end.Month(); m++ {
			ref := MonthRef{Year: start.Year(), Month: m}
			if !seen[ref] {
				seen[ref] = true
				refs = append(refs, ref)
			}
		}
	}
	return refs
}
