package repositories_test

import (
	"fmt"
	"testing"

	"storefront/internal/models"
	"storefront/internal/repositories"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupDB opens a per-test in-memory sqlite database.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Auth{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, repo *repositories.GORMUserRepository, email string) *models.User {
	t.Helper()
	user := &models.User{FirstName: "Jane", LastName: "Doe", Email: email}
	if err := repo.Create(user); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func TestGORMAuthRepository_RemoveOwned(t *testing.T) {
	db := setupDB(t)
	userRepo := repositories.NewGORMUserRepository(db)
	authRepo := repositories.NewGORMAuthRepository(db)

	user := seedUser(t, userRepo, "jane@example.com")
	other := seedUser(t, userRepo, "other@example.com")

	google := &models.Auth{Provider: "google", ProviderID: "g-1", UserID: user.ID}
	assert.NoError(t, authRepo.Create(google))

	// The only method cannot be removed.
	err := authRepo.RemoveOwned(google.ID, user.ID)
	assert.ErrorIs(t, err, models.ErrLastAuthMethod)
	remaining, err := authRepo.ListByUser(user.ID)
	assert.NoError(t, err)
	assert.Len(t, remaining, 1)

	// Someone else's row looks like it does not exist.
	err = authRepo.RemoveOwned(google.ID, other.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)

	// With a second method the removal succeeds and drops exactly one row.
	github := &models.Auth{Provider: "github", ProviderID: "gh-1", UserID: user.ID}
	assert.NoError(t, authRepo.Create(github))
	assert.NoError(t, authRepo.RemoveOwned(google.ID, user.ID))

	remaining, err = authRepo.ListByUser(user.ID)
	assert.NoError(t, err)
	if assert.Len(t, remaining, 1) {
		assert.Equal(t, "github", remaining[0].Provider)
	}
}

func TestGORMAuthRepository_TouchBackfillsAvatarOnce(t *testing.T) {
	db := setupDB(t)
	userRepo := repositories.NewGORMUserRepository(db)
	authRepo := repositories.NewGORMAuthRepository(db)

	user := seedUser(t, userRepo, "jane@example.com")
	auth := &models.Auth{Provider: "google", ProviderID: "g-1", UserID: user.ID}
	assert.NoError(t, authRepo.Create(auth))

	first := "http://img/first.png"
	assert.NoError(t, authRepo.Touch(auth.ID, &first))

	got, err := authRepo.GetByProviderID("google", "g-1")
	assert.NoError(t, err)
	if assert.NotNil(t, got.Avatar) {
		assert.Equal(t, first, *got.Avatar)
	}
	assert.False(t, got.LastUsedAt.Before(auth.LastUsedAt))

	// A later avatar does not overwrite the stored one.
	second := "http://img/second.png"
	assert.NoError(t, authRepo.Touch(auth.ID, &second))
	got, err = authRepo.GetByProviderID("google", "g-1")
	assert.NoError(t, err)
	assert.Equal(t, first, *got.Avatar)
}

func TestGORMAuthRepository_GetByProviderID_Missing(t *testing.T) {
	db := setupDB(t)
	authRepo := repositories.NewGORMAuthRepository(db)

	got, err := authRepo.GetByProviderID("google", "nope")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestGORMUserRepository_CreateWithAuth_DuplicateEmail(t *testing.T) {
	db := setupDB(t)
	userRepo := repositories.NewGORMUserRepository(db)

	first := &models.User{FirstName: "Jane", LastName: "Doe", Email: "dup@example.com"}
	firstAuth := &models.Auth{Provider: "google", ProviderID: "g-1"}
	assert.NoError(t, userRepo.CreateWithAuth(first, firstAuth))
	assert.Equal(t, first.ID, firstAuth.UserID)

	// A concurrent callback racing on the same email hits the unique index.
	second := &models.User{FirstName: "Jane", LastName: "Doe", Email: "Dup@Example.com"}
	secondAuth := &models.Auth{Provider: "github", ProviderID: "gh-1"}
	err := userRepo.CreateWithAuth(second, secondAuth)
	assert.ErrorIs(t, err, models.ErrEmailTaken)

	// The failed transaction left no orphan auth row.
	var count int64
	assert.NoError(t, db.Model(&models.Auth{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGORMUserRepository_GetByEmail_CaseInsensitive(t *testing.T) {
	db := setupDB(t)
	userRepo := repositories.NewGORMUserRepository(db)

	seedUser(t, userRepo, "Jane@Example.com")

	user, err := userRepo.GetByEmail("jane@EXAMPLE.com")
	assert.NoError(t, err)
	// Stored lower-cased at creation.
	assert.Equal(t, "jane@example.com", user.Email)

	_, err = userRepo.GetByEmail("missing@example.com")
	assert.ErrorIs(t, err, models.ErrNotFound)
}
