package insights

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/heartwire/heartwire/internal/analytics"
	"github.com/heartwire/heartwire/internal/app"
	"github.com/heartwire/heartwire/internal/db"
	svcErr "github.com/heartwire/heartwire/internal/errors"
	"github.com/heartwire/heartwire/internal/eventlog"
)

// Service exposes the operator analytics: summary, export and clear over
// the analytics and registration logs.
type Service struct {
	appCtx        *app.AppContext
	calculations  *eventlog.Log[db.AnalyticsCalculation]
	registrations *eventlog.Log[db.Registration]
}

// NewService wires the insights service.
func NewService(
	appCtx *app.AppContext,
	calculations *eventlog.Log[db.AnalyticsCalculation],
	registrations *eventlog.Log[db.Registration],
) *Service {
	return &Service{
		appCtx:        appCtx,
		calculations:  calculations,
		registrations: registrations,
	}
}

// Summary returns the aggregate analytics view.
// Cache-first strategy:
//  1. Attempts to read the serialized summary from Redis.
//  2. On a miss, recomputes from full log snapshots.
//  3. Caches the result with a short TTL; caching failures are ignored.
func (s *Service) Summary(c *fiber.Ctx) error {
	if cached, err := s.appCtx.RedisCache.GetSummary(c.Context()); err == nil && cached != "" {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(cached)
	}

	summary, err := s.computeSummary(c)
	if err != nil {
		s.appCtx.Logger.Error("summary computation failed", "err", err)
		return svcErr.Respond(c, err)
	}

	if payload, err := json.Marshal(summary); err == nil {
		_ = s.appCtx.RedisCache.SetSummary(c.Context(), string(payload))
	}

	return c.JSON(summary)
}

type exportDocument struct {
	Calculations  []db.AnalyticsCalculation `json:"calculations"`
	Registrations []db.Registration         `json:"registrations"`
	Summary       analytics.Summary         `json:"summary"`
	ExportedAt    time.Time                 `json:"exported_at"`
}

// Export serializes both operator logs plus the summary into a single
// document.
func (s *Service) Export(c *fiber.Ctx) error {
	calcs, err := s.calculations.All(c.Context())
	if err != nil {
		return svcErr.Respond(c, err)
	}
	regs, err := s.registrations.All(c.Context())
	if err != nil {
		return svcErr.Respond(c, err)
	}

	doc := exportDocument{
		Calculations:  calcs,
		Registrations: regs,
		Summary:       analytics.Summarize(calcs, regs, time.Now()),
		ExportedAt:    time.Now(),
	}

	c.Set(fiber.HeaderContentDisposition, `attachment; filename="heartwire-analytics.json"`)
	return c.JSON(doc)
}

// Clear empties both operator logs and drops the cached summary.
func (s *Service) Clear(c *fiber.Ctx) error {
	if err := s.calculations.Clear(c.Context()); err != nil {
		return svcErr.Respond(c, err)
	}
	if err := s.registrations.Clear(c.Context()); err != nil {
		return svcErr.Respond(c, err)
	}
	_ = s.appCtx.RedisCache.Del(c.Context(), s.appCtx.RedisCache.KeyForSummary())

	s.appCtx.Logger.Info("operator analytics cleared")
	return c.JSON(fiber.Map{"message": "Analytics data cleared"})
}

func (s *Service) computeSummary(c *fiber.Ctx) (analytics.Summary, error) {
	calcs, err := s.calculations.All(c.Context())
	if err != nil {
		return analytics.Summary{}, err
	}
	regs, err := s.registrations.All(c.Context())
	if err != nil {
		return analytics.Summary{}, err
	}
	return analytics.Summarize(calcs, regs, time.Now()), nil
}
