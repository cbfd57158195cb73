package scheduler

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/parlacomsolucoes-sys/escala-parlacom-sub000/models"
	"github.com/parlacomsolucoes-sys/escala-parlacom-sub000/pkg/apperror"
	"github.com/parlacomsolucoes-sys/escala-parlacom-sub000/pkg/dateutil"
)

// GenerateMonth builds the full per-day roster for one month and writes
// it as a single atomic batch, fully replacing whatever the month held
// before. Weekend coverage for rotation-eligible employees follows the
// same checkpoint plan the incremental weekend run uses, so the two
// paths always agree.
func (s *Service) GenerateMonth(ctx context.Context, year int, month time.Month) ([]models.ScheduleEntry, error) {
	employees, err := s.employees.List(ctx)
	if err != nil {
		return nil, err
	}
	holidayList, err := s.holidays.List(ctx)
	if err != nil {
		return nil, err
	}
	vacationList, err := s.vacations.List(ctx, year, "")
	if err != nil {
		return nil, err
	}

	holidayIdx := NewHolidayIndex(holidayList)
	vacationIdx := NewVacationIndex(vacationList)
	eligible := SortEligible(employees)

	startMeta, err := s.startingMeta(ctx, year, month)
	if err != nil {
		return nil, err
	}
	plan, nextMeta := PlanPairs(eligible, dateutil.WeekendPairs(year, month), startMeta)

	// date -> rotation-selected employee id for weekend days.
	weekendPick := make(map[string]string)
	for _, pa := range plan {
		if pa.Pair.Saturday != nil {
			weekendPick[dateutil.FormatDate(*pa.Pair.Saturday)] = pa.Saturday.ID
		}
		if pa.Pair.Sunday != nil {
			weekendPick[dateutil.FormatDate(*pa.Pair.Sunday)] = pa.Sunday.ID
		}
	}

	now := s.now()
	days := dateutil.MonthDays(year, month)
	entries := make([]models.ScheduleEntry, 0, len(days))
	for _, day := range days {
		date := dateutil.FormatDate(day)
		entry := models.ScheduleEntry{
			ID:          date,
			Date:        date,
			Assignments: []models.Assignment{},
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		if _, isHoliday := holidayIdx.Lookup(day); isHoliday {
			entries = append(entries, entry)
			continue
		}

		weekend := dateutil.IsWeekend(day)
		for i := range employees {
			emp := &employees[i]
			if !emp.IsActive {
				continue
			}
			// Vacation takes precedence over any inclusion rule,
			// weekend rotation included.
			if vacationIdx.IsOnVacation(emp.ID, date) {
				continue
			}
			if weekend && emp.WeekendRotation {
				if weekendPick[date] != emp.ID {
					continue
				}
			} else if !WorksOn(emp, day) {
				continue
			}

			start, end := TimesFor(emp, day)
			entry.Assignments = append(entry.Assignments, models.Assignment{
				ID:           models.AssignmentID(emp.ID, date),
				EmployeeID:   emp.ID,
				EmployeeName: emp.Name,
				StartTime:    start,
				EndTime:      end,
			})
		}

		sortAssignments(entry.Assignments)
		entries = append(entries, entry)
	}

	if err := s.schedule.ReplaceMonth(ctx, year, month, entries); err != nil {
		return nil, err
	}

	if len(eligible) > 0 {
		nextMeta.ID = models.RotationMetaID(year, month)
		nextMeta.LastProcessed = now
		if err := s.rotationMeta.Save(ctx, &nextMeta); err != nil {
			return nil, err
		}
	}

	s.cache.Invalidate(CacheKey{Year: year, Month: month})
	s.logger.Info("month schedule generated",
		zap.String("month", dateutil.MonthKey(year, month)),
		zap.Int("days", len(entries)))
	return entries, nil
}

// UpdateDay replaces the full assignment list of a single date. The
// incoming list is validated and normalized; it is a replacement, never
// a merge.
func (s *Service) UpdateDay(ctx context.Context, date string, payload []models.AssignmentPayload) (*models.ScheduleEntry, error) {
	day, err := dateutil.ParseDate(date)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(payload))
	assignments := make([]models.Assignment, 0, len(payload))
	for _, p := range payload {
		if seen[p.EmployeeID] {
			return nil, apperror.Validationf("assignments", "employee %s appears more than once for %s", p.EmployeeID, date)
		}
		seen[p.EmployeeID] = true

		emp, err := s.employees.FindByID(ctx, p.EmployeeID)
		if err != nil {
			return nil, err
		}
		start, err := dateutil.NormalizeTime(p.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := dateutil.NormalizeTime(p.EndTime)
		if err != nil {
			return nil, err
		}

		assignments = append(assignments, models.Assignment{
			ID:           models.AssignmentID(emp.ID, date),
			EmployeeID:   emp.ID,
			EmployeeName: emp.Name,
			StartTime:    start,
			EndTime:      end,
		})
	}
	sortAssignments(assignments)

	now := s.now()
	entry, err := s.schedule.FindByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		entry = &models.ScheduleEntry{ID: date, Date: date, CreatedAt: now}
	}
	entry.Assignments = assignments
	entry.UpdatedAt = now

	if err := s.schedule.Save(ctx, entry); err != nil {
		return nil, err
	}

	s.cache.Invalidate(CacheKey{Year: day.Year(), Month: day.Month()})
	return entry, nil
}

// Display order is by employee name; tie-break by id keeps the order
// total.
func sortAssignments(assignments []models.Assignment) {
	sort.Slice(assignments, func(i, j int) bool {
		if assignments[i].EmployeeName != assignments[j].EmployeeName {
			return assignments[i].EmployeeName < assignments[j].EmployeeName
		}
		return assignments[i].EmployeeID < assignments[j].EmployeeID
	})
}
