package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/parlacomsolucoes-sys/escala-parlacom-sub000/models"
	"github.com/parlacomsolucoes-sys/escala-parlacom-sub000/pkg/apperror"
	"github.com/parlacomsolucoes-sys/escala-parlacom-sub000/pkg/validation"
	"github.com/parlacomsolucoes-sys/escala-parlacom-sub000/scheduler"
)

type ScheduleHandler struct {
	scheduler *scheduler.Service
	logger    *zap.Logger
}

func NewScheduleHandler(sched *scheduler.Service, logger *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{scheduler: sched, logger: logger}
}

func parseYearMonth(c *fiber.Ctx) (int, time.Month, error) {
	year, err := strconv.Atoi(c.Params("year"))
	if err != nil || year < 2000 || year > 2200 {
		return 0, 0, fiber.NewError(fiber.StatusBadRequest, "invalid year")
	}
	month, err := strconv.Atoi(c.Params("month"))
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fiber.NewError(fiber.StatusBadRequest, "invalid month")
	}
	return year, time.Month(month), nil
}

// GetMonthSchedule answers a month read. If-None-Match carries the
// caller's fingerprint; ?force=true bypasses the cache and regenerates.
func (h *ScheduleHandler) GetMonthSchedule(c *fiber.Ctx) error {
	year, month, err := parseYearMonth(c)
	if err != nil {
		return err
	}

	ifNoneMatch := c.Get("If-None-Match")
	force := c.Query("force") == "true"

	result, err := h.scheduler.GetMonthSchedule(c.Context(), year, month, ifNoneMatch, force)
	if err != nil {
		// A fingerprint match means the caller's validator is current;
		// the 304 echoes it back.
		if apperror.Is(err, apperror.CodeNotModified) {
			c.Set("ETag", ifNoneMatch)
		}
		return writeError(c, h.logger, err)
	}

	c.Set("ETag", result.ETag)
	return c.JSON(result)
}

func (h *ScheduleHandler) GenerateMonthSchedule(c *fiber.Ctx) error {
	year, month, err := parseYearMonth(c)
	if err != nil {
		return err
	}

	entries, err := h.scheduler.GenerateMonth(c.Context(), year, month)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(fiber.Map{"message": "month schedule generated", "days": len(entries), "entries": entries})
}

// GenerateWeekendSchedule runs the incremental weekend rotation for the
// month. Runs for the same month must not execute concurrently; the
// admin UI serializes them.
func (h *ScheduleHandler) GenerateWeekendSchedule(c *fiber.Ctx) error {
	year, month, err := parseYearMonth(c)
	if err != nil {
		return err
	}
	force := c.Query("force") == "true"

	result, err := h.scheduler.RunWeekendRotation(c.Context(), year, month, force)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(result)
}

// UpdateDay replaces the full assignment list of one date.
func (h *ScheduleHandler) UpdateDay(c *fiber.Ctx) error {
	date := c.Params("date")

	var payload models.DayPatchPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}
	if errs := validation.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	entry, err := h.scheduler.UpdateDay(c.Context(), date, payload.Assignments)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(fiber.Map{"message": "day updated", "entry": entry})
}
