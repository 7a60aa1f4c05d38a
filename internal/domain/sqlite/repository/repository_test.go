package repository

import (
	"path/filepath"
	"testing"

	"quicknotes/internal/domain/entity"
	"quicknotes/internal/domain/sqlite"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := sqlite.Init(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return db
}

func TestUserRepository_FindByEmail(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	// Not found is nil, nil
	user, err := repo.FindByEmail("nobody@x.com")
	require.NoError(t, err)
	require.Nil(t, user)

	saved := &entity.User{ID: 1, Email: "a@x.com", Name: "A", OTP: "123456", CreatedAt: 1, UpdatedAt: 1}
	require.NoError(t, repo.Save(saved))

	user, err = repo.FindByEmail("a@x.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	require.Equal(t, "123456", user.OTP)
}

func TestUserRepository_SaveOverwritesOTP(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	user := &entity.User{ID: 1, Email: "a@x.com", Name: "A", OTP: "111111", CreatedAt: 1, UpdatedAt: 1}
	require.NoError(t, repo.Save(user))

	user.OTP = "222222"
	require.NoError(t, repo.Save(user))

	got, err := repo.FindByEmail("a@x.com")
	require.NoError(t, err)
	require.Equal(t, "222222", got.OTP)
}

func TestUserRepository_FindByID(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	got, err := repo.FindByID(42)
	require.NoError(t, err)
	require.Nil(t, got)

	require.NoError(t, repo.Save(&entity.User{ID: 42, Email: "a@x.com", Name: "A", CreatedAt: 1, UpdatedAt: 1}))

	got, err = repo.FindByID(42)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "a@x.com", got.Email)
}

func TestNoteRepository_OwnerScoping(t *testing.T) {
	repo := NewNoteRepository(newTestDB(t))

	require.NoError(t, repo.Save(&entity.Note{ID: 1, Content: "mine", OwnerID: 10, CreatedAt: 1, UpdatedAt: 1}))
	require.NoError(t, repo.Save(&entity.Note{ID: 2, Content: "theirs", OwnerID: 20, CreatedAt: 1, UpdatedAt: 1}))

	notes, err := repo.FindAllByOwner(10)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	require.Equal(t, "mine", notes[0].Content)
}

func TestNoteRepository_DeleteByIDAndOwner(t *testing.T) {
	repo := NewNoteRepository(newTestDB(t))

	require.NoError(t, repo.Save(&entity.Note{ID: 1, Content: "keep", OwnerID: 10, CreatedAt: 1, UpdatedAt: 1}))

	// Foreign owner: no-op, no error
	require.NoError(t, repo.DeleteByIDAndOwner(1, 99))
	notes, err := repo.FindAllByOwner(10)
	require.NoError(t, err)
	require.Len(t, notes, 1)

	// Missing id: no-op, no error
	require.NoError(t, repo.DeleteByIDAndOwner(12345, 10))

	require.NoError(t, repo.DeleteByIDAndOwner(1, 10))
	notes, err = repo.FindAllByOwner(10)
	require.NoError(t, err)
	require.Empty(t, notes)
}
