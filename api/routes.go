package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"fcfs-scheduler/internal/logger"
)

const requestIDKey = "requestid"

// NewApp builds the fiber app with middleware and every route registered.
func NewApp(handler SchedulerHandler, log *logger.Logger) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator:  uuid.NewString,
		ContextKey: requestIDKey,
	}))
	app.Use(requestLogger(log))

	app.Get("/health", handler.Health)

	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Get("/jobs", handler.ListJobs)
		v1.Post("/jobs", handler.AddJob)
		v1.Delete("/jobs", handler.ClearJobs)
		v1.Post("/run", handler.RunBoard)
		v1.Get("/schedule", handler.LastSchedule)
		v1.Put("/mode", handler.SetMode)
	}

	return app
}

func requestLogger(log *logger.Logger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		started := time.Now()
		err := ctx.Next()

		l := log
		if requestID, ok := ctx.Locals(requestIDKey).(string); ok {
			l = log.WithRequestID(requestID)
		}
		l.LogRequest(ctx.Method(), ctx.Path(), ctx.Response().StatusCode(), time.Since(started), err)
		return err
	}
}
