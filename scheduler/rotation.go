package scheduler

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/parlacomsolucoes-sys/escala-parlacom-sub000/models"
	"github.com/parlacomsolucoes-sys/escala-parlacom-sub000/pkg/dateutil"
)

// Qualitative rotation patterns by eligible-employee count.
const (
	PatternNone     = "none"
	PatternSingle   = "single"
	PatternPair     = "pair"
	PatternMultiple = "multiple"
)

func RotationPattern(eligibleCount int) string {
	switch {
	case eligibleCount == 0:
		return PatternNone
	case eligibleCount == 1:
		return PatternSingle
	case eligibleCount == 2:
		return PatternPair
	default:
		return PatternMultiple
	}
}

// PairAssignment is the planned coverage for one weekend pair. A day
// pointer is nil when that day falls outside the target month.
type PairAssignment struct {
	Pair     dateutil.WeekendPair
	Saturday *models.Employee
	Sunday   *models.Employee
}

// PlanPairs deterministically assigns eligible employees to each
// weekend pair, starting from the given checkpoint, and returns the
// advanced checkpoint. Saturday takes eligible[index], Sunday takes the
// next employee, swapped when parity is set; index advances by two and
// parity flips after every pair. With a single employee both halves
// collapse onto them; with zero employees the plan is empty and the
// checkpoint unchanged.
func PlanPairs(eligible []models.Employee, pairs []dateutil.WeekendPair, meta models.RotationMeta) ([]PairAssignment, models.RotationMeta) {
	n := len(eligible)
	if n == 0 {
		return nil, meta
	}

	index := meta.RotationIndex % n
	parity := meta.SwapParity & 1

	plan := make([]PairAssignment, 0, len(pairs))
	for _, pair := range pairs {
		sat := &eligible[index%n]
		sun := &eligible[(index+1)%n]
		if parity == 1 {
			sat, sun = sun, sat
		}
		plan = append(plan, PairAssignment{Pair: pair, Saturday: sat, Sunday: sun})

		index = (index + 2) % n
		parity ^= 1
	}

	meta.RotationIndex = index
	meta.SwapParity = parity
	return plan, meta
}

// SortEligible orders rotation-eligible employees by name with the id
// as tie-break, so planning is deterministic across runs.
func SortEligible(employees []models.Employee) []models.Employee {
	eligible := make([]models.Employee, 0, len(employees))
	for _, e := range employees {
		if e.IsActive && e.WeekendRotation {
			eligible = append(eligible, e)
		}
	}
	sort.Slice(eligible, func(i, j int) bool {
		if eligible[i].Name != eligible[j].Name {
			return eligible[i].Name < eligible[j].Name
		}
		return eligible[i].ID < eligible[j].ID
	})
	return eligible
}

// startingMeta reads the previous month's checkpoint, the starting
// state for this month's run. A missing checkpoint means a fresh start.
func (s *Service) startingMeta(ctx context.Context, year int, month time.Month) (models.RotationMeta, error) {
	prevYear, prevMonth := dateutil.PrevMonth(year, month)
	meta, err := s.rotationMeta.Find(ctx, models.RotationMetaID(prevYear, prevMonth))
	if err != nil {
		return models.RotationMeta{}, err
	}
	if meta == nil {
		return models.RotationMeta{}, nil
	}
	return *meta, nil
}

// RunWeekendRotation incrementally applies weekend coverage for one
// month. Concurrent runs for the same month are not safe; callers must
// serialize them (one administrative action at a time).
func (s *Service) RunWeekendRotation(ctx context.Context, year int, month time.Month, force bool) (*models.WeekendRotationResult, error) {
	employees, err := s.employees.List(ctx)
	if err != nil {
		return nil, err
	}
	eligible := SortEligible(employees)

	result := &models.WeekendRotationResult{
		Year:            year,
		Month:           int(month),
		Pattern:         RotationPattern(len(eligible)),
		SkippedHolidays: []string{},
		EmployeesUsed:   []string{},
	}
	if len(eligible) == 0 {
		return result, nil
	}

	holidayList, err := s.holidays.List(ctx)
	if err != nil {
		return nil, err
	}
	holidayIdx := NewHolidayIndex(holidayList)

	vacationList, err := s.vacations.List(ctx, year, "")
	if err != nil {
		return nil, err
	}
	vacationIdx := NewVacationIndex(vacationList)

	startMeta, err := s.startingMeta(ctx, year, month)
	if err != nil {
		return nil, err
	}

	eligibleIDs := make(map[string]bool, len(eligible))
	for _, e := range eligible {
		eligibleIDs[e.ID] = true
	}

	plan, nextMeta := PlanPairs(eligible, dateutil.WeekendPairs(year, month), startMeta)

	used := make(map[string]bool)
	for _, pa := range plan {
		halves := []struct {
			day *time.Time
			emp *models.Employee
		}{
			{pa.Pair.Saturday, pa.Saturday},
			{pa.Pair.Sunday, pa.Sunday},
		}
		for _, half := range halves {
			if half.day == nil {
				continue
			}
			result.ProcessedDays++
			date := dateutil.FormatDate(*half.day)

			if _, isHoliday := holidayIdx.Lookup(*half.day); isHoliday {
				result.SkippedHolidays = append(result.SkippedHolidays, date)
				continue
			}

			// Vacation beats rotation; the pair pointer still advances so
			// the cycle stays fair for everyone else.
			if vacationIdx.IsOnVacation(half.emp.ID, date) {
				continue
			}

			changed, err := s.applyWeekendDay(ctx, date, *half.day, half.emp, eligibleIDs, force)
			if err != nil {
				return nil, err
			}
			if changed {
				result.ChangedDays++
			}
			if !used[half.emp.Name] {
				used[half.emp.Name] = true
				result.EmployeesUsed = append(result.EmployeesUsed, half.emp.Name)
			}
		}
	}

	nextMeta.ID = models.RotationMetaID(year, month)
	nextMeta.LastProcessed = s.now()
	if err := s.rotationMeta.Save(ctx, &nextMeta); err != nil {
		return nil, err
	}

	s.cache.Invalidate(CacheKey{Year: year, Month: month})
	s.logger.Info("weekend rotation run finished",
		zap.String("month", dateutil.MonthKey(year, month)),
		zap.String("pattern", result.Pattern),
		zap.Int("processed", result.ProcessedDays),
		zap.Int("changed", result.ChangedDays))
	return result, nil
}

// applyWeekendDay upserts the rotation-selected assignment for one
// weekend day. Stale assignments of other rotation-eligible employees
// are removed; when the selected employee already holds the correct
// assignment and force is false the day is left untouched.
func (s *Service) applyWeekendDay(ctx context.Context, date string, day time.Time, emp *models.Employee, eligibleIDs map[string]bool, force bool) (bool, error) {
	entry, err := s.schedule.FindByDate(ctx, date)
	if err != nil {
		return false, err
	}
	now := s.now()
	if entry == nil {
		entry = &models.ScheduleEntry{ID: date, Date: date, Assignments: []models.Assignment{}, CreatedAt: now}
	}

	start, end := TimesFor(emp, day)
	want := models.Assignment{
		ID:           models.AssignmentID(emp.ID, date),
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		StartTime:    start,
		EndTime:      end,
	}

	kept := make([]models.Assignment, 0, len(entry.Assignments))
	alreadyCorrect := false
	removedStale := false
	for _, a := range entry.Assignments {
		if a.EmployeeID == emp.ID {
			if a == want {
				alreadyCorrect = true
			}
			continue
		}
		if eligibleIDs[a.EmployeeID] {
			removedStale = true
			continue
		}
		kept = append(kept, a)
	}

	if alreadyCorrect && !removedStale && !force {
		return false, nil
	}

	entry.Assignments = append(kept, want)
	entry.UpdatedAt = now
	if err := s.schedule.Save(ctx, entry); err != nil {
		return false, err
	}
	return true, nil
}
