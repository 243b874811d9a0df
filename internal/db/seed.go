package db

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/heartwire/heartwire/internal/config"
	"github.com/heartwire/heartwire/internal/eventlog"
	"github.com/heartwire/heartwire/internal/scoring"
)

// SeedTestData resets the database and populates it with demo users and
// scored pairs.
//
// Behavior:
//  1. Clears users, calculations and both operator logs.
//  2. Creates 8 users with hashed passwords and derived zodiac signs.
//  3. Pushes ~60 name pairs through the real scoring engine into the
//     history and analytics logs, so the retention caps are exercised.
//
// Compatible with both SQLite and MySQL.
func SeedTestData(database *gorm.DB, cfg *config.Config) error {
	ctx := context.Background()
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	// --- Fresh start ---
	for _, table := range []string{"analytics_calculations", "registrations", "calculations", "users"} {
		if err := database.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	switch database.Dialector.Name() {
	case "mysql":
		database.Exec("ALTER TABLE users AUTO_INCREMENT = 1")
		database.Exec("ALTER TABLE calculations AUTO_INCREMENT = 1")
	case "sqlite":
		database.Exec("DELETE FROM sqlite_sequence WHERE name IN ('users', 'calculations', 'analytics_calculations', 'registrations')")
	}

	log.Println("Cleared existing data")

	// --- Seed users ---
	names := []string{"Alice", "Bob", "Charlotte", "Dmitri", "Elena", "Farid", "Grace", "Hector"}
	for i, name := range names {
		hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		birth := time.Date(1985+i, time.Month(1+(i*3)%12), 1+i*3, 0, 0, 0, 0, time.UTC)
		sign := scoring.SignForDate(birth)

		user := User{
			Email:        fmt.Sprintf("user%d@example.com", i+1),
			FullName:     name,
			PasswordHash: string(hash),
			BirthDate:    &birth,
			ZodiacSign:   &sign,
		}
		if err := database.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to seed user: %w", err)
		}
	}
	log.Printf("Seeded %d users.", len(names))

	// --- Seed calculations through the real engine and logs ---
	historyLog := eventlog.New[Calculation](database, cfg.Retention.HistoryCap)
	analyticsLog := eventlog.New[AnalyticsCalculation](database, cfg.Retention.AnalyticsCap)
	engine := scoring.NewEngine(scoring.NewSource())

	var users []User
	if err := database.Find(&users).Error; err != nil {
		return err
	}

	sessionID := uuid.NewString()
	for i := 0; i < 60; i++ {
		u1 := users[r.Intn(len(users))]
		u2 := users[r.Intn(len(users))]
		if u1.ID == u2.ID {
			continue
		}

		result := engine.Compute(scoring.Input{
			Name1:       u1.FullName,
			Name2:       u2.FullName,
			ZodiacSign1: *u1.ZodiacSign,
			ZodiacSign2: *u2.ZodiacSign,
		})

		rec := Calculation{
			UserID:    &u1.ID,
			SessionID: sessionID,
			Name1:     u1.FullName,
			Name2:     u2.FullName,
			Score:     result.Score,
			Factors:   result.Factors,
			Message:   result.Message,
		}
		if err := historyLog.Append(ctx, &rec); err != nil {
			return fmt.Errorf("failed to seed calculation: %w", err)
		}

		analytic := AnalyticsCalculation{
			UserID:      &u1.ID,
			UserEmail:   &u1.Email,
			SessionID:   sessionID,
			Name1:       u1.FullName,
			Name2:       u2.FullName,
			Score:       result.Score,
			Factors:     result.Factors,
			Message:     result.Message,
			ZodiacSign1: u1.ZodiacSign,
			ZodiacSign2: u2.ZodiacSign,
			UserAgent:   "seed",
		}
		if err := analyticsLog.Append(ctx, &analytic); err != nil {
			return fmt.Errorf("failed to seed analytics: %w", err)
		}
	}

	return nil
}
