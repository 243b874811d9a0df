package insights

import (
	"github.com/gofiber/fiber/v2"

	"github.com/heartwire/heartwire/internal/app"
	"github.com/heartwire/heartwire/internal/db"
	"github.com/heartwire/heartwire/internal/eventlog"
	"github.com/heartwire/heartwire/internal/server"
)

// Registrar ties the insights service into the HTTP server
type Registrar struct {
	appCtx        *app.AppContext
	calculations  *eventlog.Log[db.AnalyticsCalculation]
	registrations *eventlog.Log[db.Registration]
	adminSecret   string
}

// NewRegistrar creates a new Registrar for the insights service
func NewRegistrar(
	appCtx *app.AppContext,
	calculations *eventlog.Log[db.AnalyticsCalculation],
	registrations *eventlog.Log[db.Registration],
	adminSecret string,
) *Registrar {
	return &Registrar{
		appCtx:        appCtx,
		calculations:  calculations,
		registrations: registrations,
		adminSecret:   adminSecret,
	}
}

// Register attaches the operator-only analytics routes to the fiber app
func (r *Registrar) Register(app *fiber.App) {
	service := NewService(r.appCtx, r.calculations, r.registrations)

	grp := app.Group("/analytics", server.AdminOnly(r.adminSecret))
	grp.Get("/summary", service.Summary)
	grp.Get("/export", service.Export)
	grp.Post("/clear", service.Clear)
}
