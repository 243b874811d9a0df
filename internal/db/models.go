package db

import (
	"time"

	"github.com/heartwire/heartwire/internal/scoring"
)

// User is a registered actor. The zodiac sign is derived once at
// registration from the birth date and never recomputed. PasswordHash is
// stored at rest but deliberately never checked on login; see
// repository.UserRepository.Login.
type User struct {
	ID           uint64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string  `gorm:"uniqueIndex;size:128;not null" json:"email"`
	FullName     string  `gorm:"size:128;not null" json:"fullName"`
	Username     *string `gorm:"size:64" json:"username"`
	PasswordHash string  `gorm:"size:255;not null" json:"-"`
	BirthDate    *time.Time `json:"birthDate"`
	ZodiacSign   *string    `gorm:"size:16" json:"zodiacSign"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"createdAt"`
}

// Calculation is one completed scoring event in the user-facing history
// log. UserID is nil for anonymous callers; SessionID is always present so
// pre-login history stays reachable after the actor signs in. Rows are
// immutable: appended, eventually evicted, never updated.
type Calculation struct {
	ID        uint64          `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    *uint64         `gorm:"index" json:"userId"`
	SessionID string          `gorm:"size:64;not null;index" json:"sessionId"`
	Name1     string          `gorm:"size:128;not null" json:"name1"`
	Name2     string          `gorm:"size:128;not null" json:"name2"`
	Score     int             `gorm:"not null" json:"score"`
	Factors   scoring.Factors `gorm:"embedded" json:"factors"`
	Message   string          `gorm:"size:255" json:"message"`
	CreatedAt time.Time       `gorm:"autoCreateTime;index" json:"createdAt"`
}

// AnalyticsCalculation is the operator-facing variant of a scoring event.
// It additionally carries the request user agent, the resolved actor email
// and the zodiac signs that went into the score.
type AnalyticsCalculation struct {
	ID          uint64          `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      *uint64         `gorm:"index" json:"userId"`
	UserEmail   *string         `gorm:"size:128" json:"userEmail"`
	SessionID   string          `gorm:"size:64;not null;index" json:"sessionId"`
	Name1       string          `gorm:"size:128;not null" json:"name1"`
	Name2       string          `gorm:"size:128;not null" json:"name2"`
	Score       int             `gorm:"not null" json:"score"`
	Factors     scoring.Factors `gorm:"embedded" json:"factors"`
	Message     string          `gorm:"size:255" json:"message"`
	ZodiacSign1 *string         `gorm:"size:16" json:"zodiacSign1"`
	ZodiacSign2 *string         `gorm:"size:16" json:"zodiacSign2"`
	UserAgent   string          `gorm:"size:255" json:"userAgent"`
	CreatedAt   time.Time       `gorm:"autoCreateTime;index" json:"createdAt"`
}

// Registration is an operator-facing record of a completed signup.
type Registration struct {
	ID         uint64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Email      string     `gorm:"size:128;not null" json:"email"`
	FullName   string     `gorm:"size:128" json:"fullName"`
	Username   *string    `gorm:"size:64" json:"username"`
	BirthDate  *time.Time `json:"birthDate"`
	ZodiacSign *string    `gorm:"size:16" json:"zodiacSign"`
	UserAgent  string     `gorm:"size:255" json:"userAgent"`
	CreatedAt  time.Time  `gorm:"autoCreateTime;index" json:"createdAt"`
}
