package repository

import (
	"context"
	"time"

	"github.com/parlacomsolucoes-sys/escala-parlacom-sub000/models"
)

// The repositories abstract the document store behind a small port so
// the scheduling core never touches driver types. Storage is always the
// authority; caches layered above are advisory.

type EmployeeRepository interface {
	List(ctx context.Context) ([]models.Employee, error)
	FindByID(ctx context.Context, id string) (*models.Employee, error)
	Create(ctx context.Context, emp *models.Employee) error
	Update(ctx context.Context, emp *models.Employee) error
	Delete(ctx context.Context, id string) error
}

type HolidayRepository interface {
	List(ctx context.Context) ([]models.Holiday, error)
	FindByID(ctx context.Context, id string) (*models.Holiday, error)
	Create(ctx context.Context, holiday *models.Holiday) error
	Update(ctx context.Context, holiday *models.Holiday) error
	Delete(ctx context.Context, id string) error
}

type VacationRepository interface {
	// List filters by year (0 means any) and employee id ("" means any).
	List(ctx context.Context, year int, employeeID string) ([]models.Vacation, error)
	FindByID(ctx context.Context, id string) (*models.Vacation, error)
	FindByEmployee(ctx context.Context, employeeID string) ([]models.Vacation, error)
	Create(ctx context.Context, vacation *models.Vacation) error
	Update(ctx context.Context, vacation *models.Vacation) error
	Delete(ctx context.Context, id string) error
}

type ScheduleRepository interface {
	// FindByDate returns (nil, nil) when no entry exists for the date.
	FindByDate(ctx context.Context, date string) (*models.ScheduleEntry, error)
	FindMonth(ctx context.Context, year int, month time.Month) ([]models.ScheduleEntry, error)
	// Save upserts a single day entry.
	Save(ctx context.Context, entry *models.ScheduleEntry) error
	// ReplaceMonth atomically swaps every entry of a month for the given
	// set; a concurrent reader never observes a half-written month.
	ReplaceMonth(ctx context.Context, year int, month time.Month, entries []models.ScheduleEntry) error
}

type RotationMetaRepository interface {
	// Find returns (nil, nil) when no checkpoint exists for the id.
	Find(ctx context.Context, id string) (*models.RotationMeta, error)
	Save(ctx context.Context, meta *models.RotationMeta) error
}
