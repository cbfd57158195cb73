package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/parlacomsolucoes-sys/escala-parlacom-sub000/models"
	"github.com/parlacomsolucoes-sys/escala-parlacom-sub000/pkg/validation"
	"github.com/parlacomsolucoes-sys/escala-parlacom-sub000/scheduler"
)

type VacationHandler struct {
	scheduler *scheduler.Service
	logger    *zap.Logger
}

func NewVacationHandler(sched *scheduler.Service, logger *zap.Logger) *VacationHandler {
	return &VacationHandler{scheduler: sched, logger: logger}
}

func (h *VacationHandler) GetAllVacations(c *fiber.Ctx) error {
	year := 0
	if yearStr := c.Query("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid year"})
		}
		year = parsed
	}
	employeeID := c.Query("employeeId")

	vacations, err := h.scheduler.ListVacations(c.Context(), year, employeeID)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(fiber.Map{"vacations": vacations, "total": len(vacations)})
}

func (h *VacationHandler) CreateVacation(c *fiber.Ctx) error {
	var payload models.VacationCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}
	if errs := validation.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	vacation, err := h.scheduler.CreateVacation(c.Context(), &payload)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "vacation created", "vacation": vacation})
}

func (h *VacationHandler) UpdateVacation(c *fiber.Ctx) error {
	id := c.Params("id")

	var payload models.VacationUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}
	if errs := validation.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	vacation, err := h.scheduler.UpdateVacation(c.Context(), id, &payload)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(fiber.Map{"message": "vacation updated", "vacation": vacation})
}

func (h *VacationHandler) DeleteVacation(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.scheduler.DeleteVacation(c.Context(), id); err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(fiber.Map{"message": "vacation deleted", "id": id})
}
