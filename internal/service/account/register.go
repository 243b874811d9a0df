package account

import (
	"github.com/gofiber/fiber/v2"

	"github.com/heartwire/heartwire/internal/app"
	"github.com/heartwire/heartwire/internal/db"
	"github.com/heartwire/heartwire/internal/eventlog"
)

// Registrar ties the account service into the HTTP server
type Registrar struct {
	appCtx        *app.AppContext
	registrations *eventlog.Log[db.Registration]
}

// NewRegistrar creates a new Registrar for the account service
func NewRegistrar(appCtx *app.AppContext, registrations *eventlog.Log[db.Registration]) *Registrar {
	return &Registrar{appCtx: appCtx, registrations: registrations}
}

// Register attaches the account routes to the fiber app
func (r *Registrar) Register(app *fiber.App) {
	service := NewService(r.appCtx, r.registrations)

	app.Post("/register", service.Register)
	app.Post("/login", service.Login)
}
