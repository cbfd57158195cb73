package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/parlacomsolucoes-sys/escala-parlacom-sub000/models"
	"github.com/parlacomsolucoes-sys/escala-parlacom-sub000/pkg/dateutil"
	"github.com/parlacomsolucoes-sys/escala-parlacom-sub000/pkg/validation"
	"github.com/parlacomsolucoes-sys/escala-parlacom-sub000/repository"
	"github.com/parlacomsolucoes-sys/escala-parlacom-sub000/scheduler"
)

type HolidayHandler struct {
	holidayRepo repository.HolidayRepository
	scheduler   *scheduler.Service
	logger      *zap.Logger
}

func NewHolidayHandler(repo repository.HolidayRepository, sched *scheduler.Service, logger *zap.Logger) *HolidayHandler {
	return &HolidayHandler{holidayRepo: repo, scheduler: sched, logger: logger}
}

// GetAllHolidays lists the recurring set; with ?year= the recurrences
// are resolved to concrete dates of that year.
func (h *HolidayHandler) GetAllHolidays(c *fiber.Ctx) error {
	if yearStr := c.Query("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid year"})
		}
		resolved, err := h.scheduler.ResolveHolidays(c.Context(), year)
		if err != nil {
			return writeError(c, h.logger, err)
		}
		return c.JSON(fiber.Map{"holidays": resolved, "year": year})
	}

	holidays, err := h.holidayRepo.List(c.Context())
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(fiber.Map{"holidays": holidays, "total": len(holidays)})
}

func (h *HolidayHandler) CreateHoliday(c *fiber.Ctx) error {
	var payload models.HolidayCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}
	if errs := validation.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	// Accepts MM-DD or a full date; stored as MM-DD either way.
	monthDay, err := dateutil.NormalizeMonthDay(payload.Date)
	if err != nil {
		return writeError(c, h.logger, err)
	}

	now := nowUTC()
	holiday := &models.Holiday{
		ID:          uuid.NewString(),
		Name:        payload.Name,
		Date:        monthDay,
		Description: payload.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := h.holidayRepo.Create(c.Context(), holiday); err != nil {
		return writeError(c, h.logger, err)
	}

	h.scheduler.OnHolidayChanged(c.Context())

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "holiday created", "holiday": holiday})
}

func (h *HolidayHandler) UpdateHoliday(c *fiber.Ctx) error {
	id := c.Params("id")

	var payload models.HolidayUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}
	if errs := validation.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	holiday, err := h.holidayRepo.FindByID(c.Context(), id)
	if err != nil {
		return writeError(c, h.logger, err)
	}

	if payload.Name != nil {
		holiday.Name = *payload.Name
	}
	if payload.Date != nil {
		monthDay, err := dateutil.NormalizeMonthDay(*payload.Date)
		if err != nil {
			return writeError(c, h.logger, err)
		}
		holiday.Date = monthDay
	}
	if payload.Description != nil {
		holiday.Description = *payload.Description
	}
	holiday.UpdatedAt = nowUTC()

	if err := h.holidayRepo.Update(c.Context(), holiday); err != nil {
		return writeError(c, h.logger, err)
	}

	h.scheduler.OnHolidayChanged(c.Context())

	return c.JSON(fiber.Map{"message": "holiday updated", "holiday": holiday})
}

func (h *HolidayHandler) DeleteHoliday(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.holidayRepo.Delete(c.Context(), id); err != nil {
		return writeError(c, h.logger, err)
	}

	h.scheduler.OnHolidayChanged(c.Context())

	return c.JSON(fiber.Map{"message": "holiday deleted", "id": id})
}
