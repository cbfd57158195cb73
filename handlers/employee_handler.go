package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/parlacomsolucoes-sys/escala-parlacom-sub000/models"
	"github.com/parlacomsolucoes-sys/escala-parlacom-sub000/pkg/dateutil"
	"github.com/parlacomsolucoes-sys/escala-parlacom-sub000/pkg/validation"
	"github.com/parlacomsolucoes-sys/escala-parlacom-sub000/repository"
	"github.com/parlacomsolucoes-sys/escala-parlacom-sub000/scheduler"
)

type EmployeeHandler struct {
	employeeRepo repository.EmployeeRepository
	scheduler    *scheduler.Service
	logger       *zap.Logger
}

func NewEmployeeHandler(repo repository.EmployeeRepository, sched *scheduler.Service, logger *zap.Logger) *EmployeeHandler {
	return &EmployeeHandler{employeeRepo: repo, scheduler: sched, logger: logger}
}

func (h *EmployeeHandler) GetAllEmployees(c *fiber.Ctx) error {
	employees, err := h.employeeRepo.List(c.Context())
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(fiber.Map{"employees": employees, "total": len(employees)})
}

func (h *EmployeeHandler) CreateEmployee(c *fiber.Ctx) error {
	var payload models.EmployeeCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}
	if errs := validation.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	start, err := dateutil.NormalizeTime(payload.DefaultStartTime)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	end, err := dateutil.NormalizeTime(payload.DefaultEndTime)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	custom, err := normalizeCustomSchedule(payload.CustomSchedule)
	if err != nil {
		return writeError(c, h.logger, err)
	}

	isActive := true
	if payload.IsActive != nil {
		isActive = *payload.IsActive
	}

	now := nowUTC()
	emp := &models.Employee{
		ID:               uuid.NewString(),
		Name:             payload.Name,
		WorkDays:         payload.WorkDays,
		DefaultStartTime: start,
		DefaultEndTime:   end,
		IsActive:         isActive,
		WeekendRotation:  payload.WeekendRotation,
		CustomSchedule:   custom,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := h.employeeRepo.Create(c.Context(), emp); err != nil {
		return writeError(c, h.logger, err)
	}

	// Auto-scheduling is best effort: a partial failure is logged inside
	// the scheduler and must not fail the create itself.
	h.scheduler.OnEmployeeChanged(c.Context())

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "employee created", "employee": emp})
}

func (h *EmployeeHandler) UpdateEmployee(c *fiber.Ctx) error {
	id := c.Params("id")

	var payload models.EmployeeUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}
	if errs := validation.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	emp, err := h.employeeRepo.FindByID(c.Context(), id)
	if err != nil {
		return writeError(c, h.logger, err)
	}

	if payload.Name != nil {
		emp.Name = *payload.Name
	}
	if payload.WorkDays != nil {
		emp.WorkDays = *payload.WorkDays
	}
	if payload.DefaultStartTime != nil {
		start, err := dateutil.NormalizeTime(*payload.DefaultStartTime)
		if err != nil {
			return writeError(c, h.logger, err)
		}
		emp.DefaultStartTime = start
	}
	if payload.DefaultEndTime != nil {
		end, err := dateutil.NormalizeTime(*payload.DefaultEndTime)
		if err != nil {
			return writeError(c, h.logger, err)
		}
		emp.DefaultEndTime = end
	}
	if payload.IsActive != nil {
		emp.IsActive = *payload.IsActive
	}
	if payload.WeekendRotation != nil {
		emp.WeekendRotation = *payload.WeekendRotation
	}
	if payload.CustomSchedule != nil {
		custom, err := normalizeCustomSchedule(*payload.CustomSchedule)
		if err != nil {
			return writeError(c, h.logger, err)
		}
		emp.CustomSchedule = custom
	}
	emp.UpdatedAt = nowUTC()

	if err := h.employeeRepo.Update(c.Context(), emp); err != nil {
		return writeError(c, h.logger, err)
	}

	h.scheduler.OnEmployeeChanged(c.Context())

	return c.JSON(fiber.Map{"message": "employee updated", "employee": emp})
}

// DeleteEmployee removes the employee immediately. Already-generated
// schedule entries keep their assignments until the next regeneration.
func (h *EmployeeHandler) DeleteEmployee(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.employeeRepo.Delete(c.Context(), id); err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(fiber.Map{"message": "employee deleted", "id": id})
}

func normalizeCustomSchedule(custom map[string]models.TimeRange) (map[string]models.TimeRange, error) {
	if custom == nil {
		return nil, nil
	}
	normalized := make(map[string]models.TimeRange, len(custom))
	for day, tr := range custom {
		start, err := dateutil.NormalizeTime(tr.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := dateutil.NormalizeTime(tr.EndTime)
		if err != nil {
			return nil, err
		}
		normalized[day] = models.TimeRange{StartTime: start, EndTime: end}
	}
	return normalized, nil
}
