package scheduler

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/parlacomsolucoes-sys/escala-parlacom-sub000/models"
	"github.com/parlacomsolucoes-sys/escala-parlacom-sub000/pkg/apperror"
	"github.com/parlacomsolucoes-sys/escala-parlacom-sub000/pkg/dateutil"
)

// In-memory repositories backing the scheduler tests.

type memEmployeeRepo struct {
	employees []models.Employee
}

func (r *memEmployeeRepo) List(ctx context.Context) ([]models.Employee, error) {
	out := make([]models.Employee, len(r.employees))
	copy(out, r.employees)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memEmployeeRepo) FindByID(ctx context.Context, id string) (*models.Employee, error) {
	for i := range r.employees {
		if r.employees[i].ID == id {
			emp := r.employees[i]
			return &emp, nil
		}
	}
	return nil, apperror.Newf(apperror.CodeNotFound, "employee %s not found", id)
}

func (r *memEmployeeRepo) Create(ctx context.Context, emp *models.Employee) error {
	r.employees = append(r.employees, *emp)
	return nil
}

func (r *memEmployeeRepo) Update(ctx context.Context, emp *models.Employee) error {
	for i := range r.employees {
		if r.employees[i].ID == emp.ID {
			r.employees[i] = *emp
			return nil
		}
	}
	return apperror.Newf(apperror.CodeNotFound, "employee %s not found", emp.ID)
}

func (r *memEmployeeRepo) Delete(ctx context.Context, id string) error {
	for i := range r.employees {
		if r.employees[i].ID == id {
			r.employees = append(r.employees[:i], r.employees[i+1:]...)
			return nil
		}
	}
	return apperror.Newf(apperror.CodeNotFound, "employee %s not found", id)
}

type memHolidayRepo struct {
	holidays []models.Holiday
}

func (r *memHolidayRepo) List(ctx context.Context) ([]models.Holiday, error) {
	out := make([]models.Holiday, len(r.holidays))
	copy(out, r.holidays)
	return out, nil
}

func (r *memHolidayRepo) FindByID(ctx context.Context, id string) (*models.Holiday, error) {
	for i := range r.holidays {
		if r.holidays[i].ID == id {
			h := r.holidays[i]
			return &h, nil
		}
	}
	return nil, apperror.Newf(apperror.CodeNotFound, "holiday %s not found", id)
}

func (r *memHolidayRepo) Create(ctx context.Context, h *models.Holiday) error {
	r.holidays = append(r.holidays, *h)
	return nil
}

func (r *memHolidayRepo) Update(ctx context.Context, h *models.Holiday) error {
	for i := range r.holidays {
		if r.holidays[i].ID == h.ID {
			r.holidays[i] = *h
			return nil
		}
	}
	return apperror.Newf(apperror.CodeNotFound, "holiday %s not found", h.ID)
}

func (r *memHolidayRepo) Delete(ctx context.Context, id string) error {
	for i := range r.holidays {
		if r.holidays[i].ID == id {
			r.holidays = append(r.holidays[:i], r.holidays[i+1:]...)
			return nil
		}
	}
	return apperror.Newf(apperror.CodeNotFound, "holiday %s not found", id)
}

type memVacationRepo struct {
	vacations []models.Vacation
}

func (r *memVacationRepo) List(ctx context.Context, year int, employeeID string) ([]models.Vacation, error) {
	var out []models.Vacation
	for _, v := range r.vacations {
		if year != 0 && v.Year != year {
			continue
		}
		if employeeID != "" && v.EmployeeID != employeeID {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

func (r *memVacationRepo) FindByID(ctx context.Context, id string) (*models.Vacation, error) {
	for i := range r.vacations {
		if r.vacations[i].ID == id {
			v := r.vacations[i]
			return &v, nil
		}
	}
	return nil, apperror.Newf(apperror.CodeNotFound, "vacation %s not found", id)
}

func (r *memVacationRepo) FindByEmployee(ctx context.Context, employeeID string) ([]models.Vacation, error) {
	return r.List(ctx, 0, employeeID)
}

func (r *memVacationRepo) Create(ctx context.Context, v *models.Vacation) error {
	r.vacations = append(r.vacations, *v)
	return nil
}

func (r *memVacationRepo) Update(ctx context.Context, v *models.Vacation) error {
	for i := range r.vacations {
		if r.vacations[i].ID == v.ID {
			r.vacations[i] = *v
			return nil
		}
	}
	return apperror.Newf(apperror.CodeNotFound, "vacation %s not found", v.ID)
}

func (r *memVacationRepo) Delete(ctx context.Context, id string) error {
	for i := range r.vacations {
		if r.vacations[i].ID == id {
			r.vacations = append(r.vacations[:i], r.vacations[i+1:]...)
			return nil
		}
	}
	return apperror.Newf(apperror.CodeNotFound, "vacation %s not found", id)
}

type memScheduleRepo struct {
	entries      map[string]models.ScheduleEntry
	saveCount    int
	replaceCount int
}

func newMemScheduleRepo() *memScheduleRepo {
	return &memScheduleRepo{entries: make(map[string]models.ScheduleEntry)}
}

func (r *memScheduleRepo) FindByDate(ctx context.Context, date string) (*models.ScheduleEntry, error) {
	if entry, ok := r.entries[date]; ok {
		return &entry, nil
	}
	return nil, nil
}

func (r *memScheduleRepo) FindMonth(ctx context.Context, year int, month time.Month) ([]models.ScheduleEntry, error) {
	prefix := dateutil.MonthKey(year, month)
	var out []models.ScheduleEntry
	for date, entry := range r.entries {
		if strings.HasPrefix(date, prefix) {
			out = append(out, entry)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (r *memScheduleRepo) Save(ctx context.Context, entry *models.ScheduleEntry) error {
	r.saveCount++
	r.entries[entry.ID] = *entry
	return nil
}

func (r *memScheduleRepo) ReplaceMonth(ctx context.Context, year int, month time.Month, entries []models.ScheduleEntry) error {
	r.replaceCount++
	prefix := dateutil.MonthKey(year, month)
	for date := range r.entries {
		if strings.HasPrefix(date, prefix) {
			delete(r.entries, date)
		}
	}
	for _, entry := range entries {
		r.entries[entry.ID] = entry
	}
	return nil
}

type memRotationRepo struct {
	metas     map[string]models.RotationMeta
	saveCount int
}

func newMemRotationRepo() *memRotationRepo {
	return &memRotationRepo{metas: make(map[string]models.RotationMeta)}
}

func (r *memRotationRepo) Find(ctx context.Context, id string) (*models.RotationMeta, error) {
	if meta, ok := r.metas[id]; ok {
		return &meta, nil
	}
	return nil, nil
}

func (r *memRotationRepo) Save(ctx context.Context, meta *models.RotationMeta) error {
	r.saveCount++
	r.metas[meta.ID] = *meta
	return nil
}

type testEnv struct {
	svc       *Service
	employees *memEmployeeRepo
	holidays  *memHolidayRepo
	vacations *memVacationRepo
	schedule  *memScheduleRepo
	rotation  *memRotationRepo
	clock     *time.Time
}

func newTestEnv(employees []models.Employee, holidays []models.Holiday, vacations []models.Vacation) *testEnv {
	env := &testEnv{
		employees: &memEmployeeRepo{employees: employees},
		holidays:  &memHolidayRepo{holidays: holidays},
		vacations: &memVacationRepo{vacations: vacations},
		schedule:  newMemScheduleRepo(),
		rotation:  newMemRotationRepo(),
	}
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	env.clock = &now

	env.svc = NewService(env.employees, env.holidays, env.vacations, env.schedule, env.rotation, zap.NewNop())
	env.svc.now = func() time.Time { return *env.clock }

	ids := 0
	env.svc.newID = func() string {
		ids++
		return fmt.Sprintf("test-id-%d", ids)
	}
	return env
}

func (env *testEnv) advance(d time.Duration) {
	*env.clock = env.clock.Add(d)
}

func testEmployee(id, name string, rotation bool, workDays ...string) models.Employee {
	if len(workDays) == 0 {
		workDays = []string{"monday", "tuesday", "wednesday", "thursday", "friday"}
	}
	return models.Employee{
		ID:               id,
		Name:             name,
		WorkDays:         workDays,
		DefaultStartTime: "08:00",
		DefaultEndTime:   "18:00",
		IsActive:         true,
		WeekendRotation:  rotation,
	}
}
