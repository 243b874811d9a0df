package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/heartwire/heartwire/internal/db"
	svcErr "github.com/heartwire/heartwire/internal/errors"
	"github.com/heartwire/heartwire/internal/repository"
)

// setup in-memory DB
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dbName := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	database, err := gorm.Open(sqlite.Open(dbName), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	})
	require.NoError(t, err)

	sqlDB, err := database.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(&db.User{}))
	return database
}

func TestRegister_DerivesZodiacSign(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewUserRepository(setupTestDB(t))

	// July 20 falls in cancer's range, not leo's
	birth := time.Date(1990, 7, 20, 0, 0, 0, 0, time.UTC)
	user, err := repo.Register(ctx, "amira@example.com", "secret", "Amira", nil, &birth)
	require.NoError(t, err)

	require.NotNil(t, user.ZodiacSign)
	assert.Equal(t, "cancer", *user.ZodiacSign)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "secret", user.PasswordHash, "password is hashed at rest")
}

func TestRegister_NoBirthDate(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewUserRepository(setupTestDB(t))

	user, err := repo.Register(ctx, "bo@example.com", "secret", "Bo", nil, nil)
	require.NoError(t, err)
	assert.Nil(t, user.ZodiacSign)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewUserRepository(setupTestDB(t))

	first, err := repo.Register(ctx, "dup@example.com", "one", "First", nil, nil)
	require.NoError(t, err)

	_, err = repo.Register(ctx, "dup@example.com", "two", "Second", nil, nil)
	assert.ErrorIs(t, err, svcErr.ErrDuplicateActor)

	// first actor is unaffected
	again, err := repo.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "First", again.FullName)
}

func TestLogin_UnknownEmail(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewUserRepository(setupTestDB(t))

	_, err := repo.Login(ctx, "ghost@example.com", "whatever")
	assert.ErrorIs(t, err, svcErr.ErrActorNotFound)
}

func TestLogin_EmptyPassword(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewUserRepository(setupTestDB(t))

	_, err := repo.Register(ctx, "eva@example.com", "secret", "Eva", nil, nil)
	require.NoError(t, err)

	_, err = repo.Login(ctx, "eva@example.com", "")
	assert.ErrorIs(t, err, svcErr.ErrMissingCredential)
}

func TestLogin_DoesNotVerifyPassword(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewUserRepository(setupTestDB(t))

	_, err := repo.Register(ctx, "eva@example.com", "secret", "Eva", nil, nil)
	require.NoError(t, err)

	// any non-empty password succeeds; this pins the documented
	// insecure-by-construction behavior so it cannot change silently
	user, err := repo.Login(ctx, "eva@example.com", "not-the-password")
	require.NoError(t, err)
	assert.Equal(t, "Eva", user.FullName)
}
