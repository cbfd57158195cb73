package router

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/parlacomsolucoes-sys/escala-parlacom-sub000/config"
	"github.com/parlacomsolucoes-sys/escala-parlacom-sub000/config/middleware"
	"github.com/parlacomsolucoes-sys/escala-parlacom-sub000/handlers"
	"github.com/parlacomsolucoes-sys/escala-parlacom-sub000/pkg/paseto"
	"github.com/parlacomsolucoes-sys/escala-parlacom-sub000/repository"
	"github.com/parlacomsolucoes-sys/escala-parlacom-sub000/scheduler"
)

// SetupRoutes wires repositories, the scheduling service and handlers
// onto the Fiber app. Reads are public; every mutation goes through the
// bearer-token middleware.
func SetupRoutes(app *fiber.App, cfg *config.AppConfig, db *mongo.Database, maker *paseto.Maker, logger *zap.Logger) {
	employeeRepo := repository.NewEmployeeRepository(db)
	holidayRepo := repository.NewHolidayRepository(db)
	vacationRepo := repository.NewVacationRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	rotationRepo := repository.NewRotationMetaRepository(db)

	schedService := scheduler.NewService(employeeRepo, holidayRepo, vacationRepo, scheduleRepo, rotationRepo, logger)

	authHandler := handlers.NewAuthHandler(cfg, maker, logger)
	employeeHandler := handlers.NewEmployeeHandler(employeeRepo, schedService, logger)
	holidayHandler := handlers.NewHolidayHandler(holidayRepo, schedService, logger)
	vacationHandler := handlers.NewVacationHandler(schedService, logger)
	scheduleHandler := handlers.NewScheduleHandler(schedService, logger)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")
	auth := middleware.AuthMiddleware(maker)

	api.Post("/auth/login", authHandler.Login)

	api.Get("/employees", employeeHandler.GetAllEmployees)
	api.Post("/employees", auth, employeeHandler.CreateEmployee)
	api.Put("/employees/:id", auth, employeeHandler.UpdateEmployee)
	api.Delete("/employees/:id", auth, employeeHandler.DeleteEmployee)

	api.Get("/holidays", holidayHandler.GetAllHolidays)
	api.Post("/holidays", auth, holidayHandler.CreateHoliday)
	api.Put("/holidays/:id", auth, holidayHandler.UpdateHoliday)
	api.Delete("/holidays/:id", auth, holidayHandler.DeleteHoliday)

	api.Get("/vacations", vacationHandler.GetAllVacations)
	api.Post("/vacations", auth, vacationHandler.CreateVacation)
	api.Put("/vacations/:id", auth, vacationHandler.UpdateVacation)
	api.Delete("/vacations/:id", auth, vacationHandler.DeleteVacation)

	api.Get("/schedule/:year/:month", scheduleHandler.GetMonthSchedule)
	api.Post("/schedule/generate/:year/:month", auth, scheduleHandler.GenerateMonthSchedule)
	api.Post("/schedule/weekend/:year/:month", auth, scheduleHandler.GenerateWeekendSchedule)
	api.Patch("/schedule/day/:date", auth, scheduleHandler.UpdateDay)
}
