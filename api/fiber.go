package api

import (
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/scoutsheirbrug/attest-api/api/handler"
	"github.com/scoutsheirbrug/attest-api/api/middleware"
	"github.com/scoutsheirbrug/attest-api/api/routes"
	"github.com/scoutsheirbrug/attest-api/common"
)

func InitFiber() {
	cfg := fiber.Config{
		AppName:       "attest api",
		ErrorHandler:  handler.HandleError,
		Prefork:       false,
		StrictRouting: true,
		Network:       fiber.NetworkTCP,
		BodyLimit:     32 * 1024 * 1024, // signatures and bulk files arrive inline as base64
	}
	app := fiber.New(cfg)

	app.Use(logger.New())
	app.Use(middleware.Recover())
	app.Use(middleware.Cors())

	routes.Init(app)

	app.Use(handler.HandleNotFound)

	slog.Info("Starting server", "port", *common.Config.Port)
	err := app.Listen(*common.Config.Port)

	if err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
