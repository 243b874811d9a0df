package match

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/heartwire/heartwire/internal/analytics"
	"github.com/heartwire/heartwire/internal/app"
	"github.com/heartwire/heartwire/internal/db"
	svcErr "github.com/heartwire/heartwire/internal/errors"
	"github.com/heartwire/heartwire/internal/eventlog"
	"github.com/heartwire/heartwire/internal/repository"
	"github.com/heartwire/heartwire/internal/scoring"
	"github.com/heartwire/heartwire/internal/server"
	"github.com/heartwire/heartwire/internal/utils/pagination"
)

// Service implements the scoring and history API.
// It runs the scoring engine, appends the result to the user-facing
// history log and, best-effort, to the operator analytics log.
type Service struct {
	appCtx    *app.AppContext
	engine    *scoring.Engine
	users     *repository.UserRepository
	history   *eventlog.Log[db.Calculation]
	analytics *eventlog.Log[db.AnalyticsCalculation]
}

// NewService wires the match service.
// Dependencies include:
//   - the scoring engine (with its random source)
//   - the history and analytics event logs
//   - DB connection (via UserRepository, for resolving actor emails)
func NewService(
	appCtx *app.AppContext,
	engine *scoring.Engine,
	history *eventlog.Log[db.Calculation],
	analyticsLog *eventlog.Log[db.AnalyticsCalculation],
) *Service {
	return &Service{
		appCtx:    appCtx,
		engine:    engine,
		users:     repository.NewUserRepository(appCtx.DB),
		history:   history,
		analytics: analyticsLog,
	}
}

type calculateRequest struct {
	Name1       string  `json:"name1"`
	Name2       string  `json:"name2"`
	ActorID     *uint64 `json:"actorId"`
	ZodiacSign1 string  `json:"zodiacSign1"`
	ZodiacSign2 string  `json:"zodiacSign2"`
}

type calculateResponse struct {
	Score    int              `json:"score"`
	Message  string           `json:"message"`
	Factors  scoring.Factors  `json:"factors"`
	Analysis scoring.Analysis `json:"analysis"`
	RecordID *uint64          `json:"recordId,omitempty"`
}

// Calculate scores a pair of names.
//
// Behavior:
//   - Rejects blank names with a validation error.
//   - Appends the result to the history log; a storage failure there is
//     logged and the response simply omits recordId.
//   - Appends the richer analytics record best-effort: it must never fail
//     the scoring request.
func (s *Service) Calculate(c *fiber.Ctx) error {
	var req calculateRequest
	if err := c.BodyParser(&req); err != nil {
		return svcErr.Respond(c, svcErr.Validation("invalid request body"))
	}

	if strings.TrimSpace(req.Name1) == "" || strings.TrimSpace(req.Name2) == "" {
		return svcErr.Respond(c, svcErr.Validation("both names are required"))
	}

	sessionID := server.SessionID(c)
	s.appCtx.Logger.Debug("Calculate called", "session_id", sessionID, "actor_id", req.ActorID)

	result := s.engine.Compute(scoring.Input{
		Name1:       req.Name1,
		Name2:       req.Name2,
		ZodiacSign1: req.ZodiacSign1,
		ZodiacSign2: req.ZodiacSign2,
	})

	resp := calculateResponse{
		Score:    result.Score,
		Message:  result.Message,
		Factors:  result.Factors,
		Analysis: result.Analysis,
	}

	record := db.Calculation{
		UserID:    req.ActorID,
		SessionID: sessionID,
		Name1:     req.Name1,
		Name2:     req.Name2,
		Score:     result.Score,
		Factors:   result.Factors,
		Message:   result.Message,
	}
	if err := s.history.Append(c.Context(), &record); err != nil {
		s.appCtx.Logger.Error("history append failed", "err", err)
	} else {
		resp.RecordID = &record.ID
	}

	s.recordAnalytics(c, req, result, sessionID)

	return c.JSON(resp)
}

// recordAnalytics appends the operator-facing record. Always best-effort.
func (s *Service) recordAnalytics(c *fiber.Ctx, req calculateRequest, result scoring.Result, sessionID string) {
	var email *string
	if req.ActorID != nil {
		if user, err := s.users.FindByID(c.Context(), *req.ActorID); err == nil {
			email = &user.Email
		}
	}

	rec := db.AnalyticsCalculation{
		UserID:      req.ActorID,
		UserEmail:   email,
		SessionID:   sessionID,
		Name1:       req.Name1,
		Name2:       req.Name2,
		Score:       result.Score,
		Factors:     result.Factors,
		Message:     result.Message,
		ZodiacSign1: optional(req.ZodiacSign1),
		ZodiacSign2: optional(req.ZodiacSign2),
		UserAgent:   c.Get("User-Agent"),
	}
	if err := s.analytics.Append(c.Context(), &rec); err != nil {
		s.appCtx.Logger.Warn("analytics append failed", "err", err)
	}
}

type historyResponse struct {
	Calculations []db.Calculation `json:"calculations"`
	TotalCount   int              `json:"totalCount"`
	HasMore      bool             `json:"hasMore"`
}

// History returns a page of the caller's past calculations.
//
// Behavior:
//   - actorId query selects the actor partition; without it the current
//     session partition is used, so anonymous callers see their own slice.
//   - limit/offset are applied after the full partition filter, not at
//     the store layer.
func (s *Service) History(c *fiber.Ctx) error {
	records, err := s.partition(c)
	if err != nil {
		s.appCtx.Logger.Error("history query failed", "err", err)
		return svcErr.Respond(c, err)
	}

	page := pagination.Apply(records, c.QueryInt("limit", pagination.DefaultLimit), c.QueryInt("offset", 0))

	return c.JSON(historyResponse{
		Calculations: page.Items,
		TotalCount:   page.TotalCount,
		HasMore:      page.HasMore,
	})
}

// Stats returns the per-partition summary over the history log.
func (s *Service) Stats(c *fiber.Ctx) error {
	records, err := s.partition(c)
	if err != nil {
		s.appCtx.Logger.Error("stats query failed", "err", err)
		return svcErr.Respond(c, err)
	}
	return c.JSON(analytics.SummarizeUser(records, time.Now()))
}

// partition loads the full history slice visible to the caller.
func (s *Service) partition(c *fiber.Ctx) ([]db.Calculation, error) {
	if actorID := c.QueryInt("actorId", 0); actorID > 0 {
		return s.history.Query(c.Context(), "user_id = ?", uint64(actorID))
	}
	return s.history.Query(c.Context(), "session_id = ?", server.SessionID(c))
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
