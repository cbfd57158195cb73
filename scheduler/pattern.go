package scheduler

import (
	"time"

	"github.com/parlacomsolucoes-sys/escala-parlacom-sub000/models"
	"github.com/parlacomsolucoes-sys/escala-parlacom-sub000/pkg/dateutil"
)

// WorksOn reports whether the employee's weekly pattern covers the
// date's weekday.
func WorksOn(emp *models.Employee, date time.Time) bool {
	return emp.WorksOnDay(dateutil.WeekdayName(date))
}

// TimesFor resolves the start/end times an employee follows on a given
// date: the per-weekday override when present, the defaults otherwise.
// Output is always normalized "HH:MM".
func TimesFor(emp *models.Employee, date time.Time) (string, string) {
	start, end := emp.DefaultStartTime, emp.DefaultEndTime
	if tr, ok := emp.CustomSchedule[dateutil.WeekdayName(date)]; ok {
		start, end = tr.StartTime, tr.EndTime
	}
	return normalizeOrKeep(start), normalizeOrKeep(end)
}

// Times are normalized on every write path already; normalizing again
// on read keeps legacy records consistent.
func normalizeOrKeep(t string) string {
	if normalized, err := dateutil.NormalizeTime(t); err == nil {
		return normalized
	}
	return t
}
