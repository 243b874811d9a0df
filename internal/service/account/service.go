package account

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/heartwire/heartwire/internal/app"
	"github.com/heartwire/heartwire/internal/db"
	svcErr "github.com/heartwire/heartwire/internal/errors"
	"github.com/heartwire/heartwire/internal/eventlog"
	"github.com/heartwire/heartwire/internal/repository"
	"github.com/heartwire/heartwire/internal/server"
)

const birthDateLayout = "2006-01-02"

// Service implements registration and login on top of the actor
// directory. Auth here is a non-goal: passwords are hashed at rest but
// never verified (see repository.UserRepository.Login).
type Service struct {
	appCtx        *app.AppContext
	users         *repository.UserRepository
	registrations *eventlog.Log[db.Registration]
}

// NewService wires the account service.
func NewService(appCtx *app.AppContext, registrations *eventlog.Log[db.Registration]) *Service {
	return &Service{
		appCtx:        appCtx,
		users:         repository.NewUserRepository(appCtx.DB),
		registrations: registrations,
	}
}

type registerRequest struct {
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	FullName  string  `json:"fullName"`
	Username  *string `json:"username"`
	BirthDate string  `json:"birthDate"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new actor and makes it the current actor for the
// caller's session.
func (s *Service) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return svcErr.Respond(c, svcErr.Validation("invalid request body"))
	}

	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return svcErr.Respond(c, svcErr.Validation("email and password are required"))
	}

	var birthDate *time.Time
	if req.BirthDate != "" {
		d, err := time.Parse(birthDateLayout, req.BirthDate)
		if err != nil {
			return svcErr.Respond(c, svcErr.Validation("birthDate must be YYYY-MM-DD"))
		}
		birthDate = &d
	}

	user, err := s.users.Register(c.Context(), req.Email, req.Password, req.FullName, req.Username, birthDate)
	if err != nil {
		s.appCtx.Logger.Error("register failed", "email", req.Email, "err", err)
		return svcErr.Respond(c, err)
	}

	// current-actor pointer is must-have session state; failures propagate
	sessionID := server.SessionID(c)
	if err := s.appCtx.RedisCache.SetSessionActor(c.Context(), sessionID, user.ID); err != nil {
		s.appCtx.Logger.Error("session actor update failed", "session_id", sessionID, "err", err)
		return svcErr.Respond(c, err)
	}

	s.recordRegistration(c, user)

	s.appCtx.Logger.Info("actor registered", "user_id", user.ID)
	return c.JSON(fiber.Map{
		"message": "User created successfully",
		"user":    user,
	})
}

// Login resolves an actor and makes it the current actor for the session.
func (s *Service) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return svcErr.Respond(c, svcErr.Validation("invalid request body"))
	}

	if strings.TrimSpace(req.Email) == "" {
		return svcErr.Respond(c, svcErr.Validation("email and password are required"))
	}

	user, err := s.users.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return svcErr.Respond(c, err)
	}

	sessionID := server.SessionID(c)
	if err := s.appCtx.RedisCache.SetSessionActor(c.Context(), sessionID, user.ID); err != nil {
		s.appCtx.Logger.Error("session actor update failed", "session_id", sessionID, "err", err)
		return svcErr.Respond(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user":    user,
	})
}

// recordRegistration appends the operator-facing signup event. Always
// best-effort; never fails the signup.
func (s *Service) recordRegistration(c *fiber.Ctx, user *db.User) {
	rec := db.Registration{
		Email:      user.Email,
		FullName:   user.FullName,
		Username:   user.Username,
		BirthDate:  user.BirthDate,
		ZodiacSign: user.ZodiacSign,
		UserAgent:  c.Get("User-Agent"),
	}
	if err := s.registrations.Append(c.Context(), &rec); err != nil {
		s.appCtx.Logger.Warn("registration analytics append failed", "err", err)
	}
}
