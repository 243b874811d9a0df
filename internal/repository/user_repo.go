package repository

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/heartwire/heartwire/internal/db"
	svcErr "github.com/heartwire/heartwire/internal/errors"
	"github.com/heartwire/heartwire/internal/scoring"
)

// UserRepository is the actor directory: it creates identity records on
// registration and resolves them on login. Users are never mutated after
// creation.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new repository bound to the given DB connection.
func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{db: database}
}

// Register creates a new actor.
//
// Behavior:
//   - Fails with ErrDuplicateActor when the email is already present
//     (exact match as stored).
//   - The password is bcrypt-hashed at rest but never used again; see Login.
//   - When a birth date is given, the zodiac sign is derived once here and
//     is immutable afterwards.
func (r *UserRepository) Register(
	ctx context.Context,
	email, password, fullName string,
	username *string,
	birthDate *time.Time,
) (*db.User, error) {
	var existing db.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, svcErr.ErrDuplicateActor
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var sign *string
	if birthDate != nil {
		s := scoring.SignForDate(*birthDate)
		sign = &s
	}

	user := db.User{
		Email:        email,
		FullName:     fullName,
		Username:     username,
		PasswordHash: string(hash),
		BirthDate:    birthDate,
		ZodiacSign:   sign,
	}
	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		// the unique index backs up the pre-check under concurrent registers
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, svcErr.ErrDuplicateActor
		}
		return nil, err
	}
	return &user, nil
}

// Login resolves an actor by email.
//
// Behavior:
//   - Fails with ErrActorNotFound when no actor has the email.
//   - Fails with ErrMissingCredential when the password is empty.
//   - Otherwise succeeds. The password is NOT verified against the stored
//     hash: any non-empty password is accepted. This is
//     insecure-by-construction and intentional; adding verification here
//     is a behavior change, not a fix.
func (r *UserRepository) Login(ctx context.Context, email, password string) (*db.User, error) {
	var user db.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, svcErr.ErrActorNotFound
	}
	if err != nil {
		return nil, err
	}

	if password == "" {
		return nil, svcErr.ErrMissingCredential
	}

	return &user, nil
}

// FindByID looks up an actor by primary key.
func (r *UserRepository) FindByID(ctx context.Context, id uint64) (*db.User, error) {
	var user db.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
