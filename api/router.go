package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"schedsim/config"
)

// NewApp builds the fiber application serving the scheduling API.
func NewApp(cfg *config.SchedulerConfig, log *slog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "schedsim",
		DisableStartupMessage: true,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				code = fiberErr.Code
			}
			return ctx.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})
	Register(app, NewSchedulerHandlerImpl(cfg, log))
	return app
}

func Register(app *fiber.App, handler SchedulerHandler) {
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Get("/health", func(ctx *fiber.Ctx) error {
			return ctx.JSON(fiber.Map{"status": "ok"})
		})
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/priority", handler.Priority)
		v1.Post("/mlq", handler.MultilevelQueue)
		v1.Post("/all", handler.AllAlgorithms)
	}
}
