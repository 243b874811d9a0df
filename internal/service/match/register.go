package match

import (
	"github.com/gofiber/fiber/v2"

	"github.com/heartwire/heartwire/internal/app"
	"github.com/heartwire/heartwire/internal/db"
	"github.com/heartwire/heartwire/internal/eventlog"
	"github.com/heartwire/heartwire/internal/scoring"
)

// Registrar ties the match service into the HTTP server
type Registrar struct {
	appCtx    *app.AppContext
	engine    *scoring.Engine
	history   *eventlog.Log[db.Calculation]
	analytics *eventlog.Log[db.AnalyticsCalculation]
}

// NewRegistrar creates a new Registrar for the match service
func NewRegistrar(
	appCtx *app.AppContext,
	engine *scoring.Engine,
	history *eventlog.Log[db.Calculation],
	analyticsLog *eventlog.Log[db.AnalyticsCalculation],
) *Registrar {
	return &Registrar{appCtx: appCtx, engine: engine, history: history, analytics: analyticsLog}
}

// Register attaches the match routes to the fiber app
func (r *Registrar) Register(app *fiber.App) {
	service := NewService(r.appCtx, r.engine, r.history, r.analytics)

	app.Post("/score", service.Calculate)
	app.Get("/history", service.History)
	app.Get("/history/stats", service.Stats)
}
