package server

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/heartwire/heartwire/internal/config"
)

// New builds the fiber app and attaches all provided services.
func New(cfg *config.Config, registrars ...Registrar) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "heartwire",
	})

	app.Use(cors.New(cors.Config{
		AllowHeaders:  "Origin, Content-Type, Accept, " + SessionHeader + ", " + AdminHeader,
		ExposeHeaders: SessionHeader,
	}))
	app.Use(SessionMiddleware())

	// register all services
	for _, r := range registrars {
		r.Register(app)
	}

	return app
}

// Start listens on the configured address and serves until shutdown.
func Start(app *fiber.App, cfg *config.Config) error {
	addr := fmt.Sprintf("%s:%s", cfg.HTTP.Host, cfg.HTTP.Port)
	return app.Listen(addr)
}
