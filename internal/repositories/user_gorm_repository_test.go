package repositories_test

import (
	"fmt"
	"testing"
	"time"

	"contactform/internal/models"
	"contactform/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRepo(t *testing.T) *repositories.GORMUserRepository {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	return repositories.NewGORMUserRepository(db)
}

func TestGORMUserRepository_CreateAssignsIDAndTimestamps(t *testing.T) {
	repo := setupRepo(t)

	user := &models.User{Name: "Jane Doe", Email: "jane@example.com"}
	require.NoError(t, repo.Create(user))

	assert.NotZero(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestGORMUserRepository_CreateDuplicateEmail(t *testing.T) {
	repo := setupRepo(t)

	require.NoError(t, repo.Create(&models.User{Name: "Jane", Email: "jane@example.com"}))

	err := repo.Create(&models.User{Name: "Other Jane", Email: "jane@example.com"})
	assert.ErrorIs(t, err, repositories.ErrDuplicateEmail,
		"constraint violation must surface as the domain error, not a driver error")
}

func TestGORMUserRepository_FindByEmail(t *testing.T) {
	repo := setupRepo(t)

	require.NoError(t, repo.Create(&models.User{Name: "Jane", Email: "jane@example.com"}))

	found, err := repo.FindByEmail("jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Jane", found.Name)

	_, err = repo.FindByEmail("nobody@example.com")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestGORMUserRepository_GetByID(t *testing.T) {
	repo := setupRepo(t)

	user := &models.User{Name: "Jane", Email: "jane@example.com"}
	require.NoError(t, repo.Create(user))

	found, err := repo.GetByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, found.Email)

	_, err = repo.GetByID(9999)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestGORMUserRepository_ListAllNewestFirst(t *testing.T) {
	repo := setupRepo(t)

	base := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, repo.Create(&models.User{Name: "Old", Email: "old@example.com", CreatedAt: base.Add(-time.Hour)}))
	require.NoError(t, repo.Create(&models.User{Name: "New", Email: "new@example.com", CreatedAt: base}))

	users, err := repo.ListAll()
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "New", users[0].Name)
	assert.Equal(t, "Old", users[1].Name)
}
