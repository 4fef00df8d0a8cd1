package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "telegram_id", "username", "first_name", "last_name",
		"language", "created_at", "updated_at",
	}).AddRow(1, int64(42), "durov", "Pavel", nil, "ru", time.Now(), time.Now())
}

func TestRepository_Upsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	params := UpsertParams{
		TelegramID: 42,
		Username:   strPtr("durov"),
		FirstName:  strPtr("Pavel"),
		Language:   "ru",
	}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users").
			WithArgs(params.TelegramID, params.Username, params.FirstName, params.LastName, params.Language).
			WillReturnRows(userRows())

		u, err := repo.Upsert(context.Background(), params)
		assert.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, int64(42), u.TelegramID)
		assert.Equal(t, "ru", u.Language)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users").
			WillReturnError(errors.New("db error"))

		_, err := repo.Upsert(context.Background(), params)
		assert.Error(t, err)
	})
}

func TestRepository_GetByTelegramID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM users").
			WithArgs(int64(42)).
			WillReturnRows(userRows())

		u, err := repo.GetByTelegramID(context.Background(), 42)
		assert.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, uint(1), u.ID)
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM users").
			WithArgs(int64(43)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetByTelegramID(context.Background(), 43)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestRepository_UpdateLanguage(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE users").
			WithArgs("en", int64(42)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdateLanguage(context.Background(), 42, "en"))
	})

	t.Run("Unknown user", func(t *testing.T) {
		mock.ExpectExec("UPDATE users").
			WithArgs("en", int64(43)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateLanguage(context.Background(), 43, "en")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
