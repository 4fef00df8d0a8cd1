package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_CreateOrdersTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	groupID := uuid.New()
	lines := []NewLine{
		{ProductName: "a-name (x2)", Price: 20},
		{ProductName: "b-name (x1)", Price: 5},
	}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO orders").
			WithArgs(uint(7), groupID, "a-name (x2)", 20.0).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(101))
		mock.ExpectQuery("INSERT INTO orders").
			WithArgs(uint(7), groupID, "b-name (x1)", 5.0).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(102))
		mock.ExpectCommit()

		ids, err := repo.CreateOrdersTx(context.Background(), 7, groupID, lines)
		assert.NoError(t, err)
		assert.Equal(t, []uint{101, 102}, ids)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Second insert fails rolls back everything", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO orders").
			WithArgs(uint(7), groupID, "a-name (x2)", 20.0).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(101))
		mock.ExpectQuery("INSERT INTO orders").
			WithArgs(uint(7), groupID, "b-name (x1)", 5.0).
			WillReturnError(errors.New("db error"))
		mock.ExpectRollback()

		ids, err := repo.CreateOrdersTx(context.Background(), 7, groupID, lines)
		assert.Error(t, err)
		assert.Nil(t, ids)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty line set", func(t *testing.T) {
		_, err := repo.CreateOrdersTx(context.Background(), 7, groupID, nil)
		assert.ErrorIs(t, err, ErrNoLines)
	})
}

func TestRepository_ListWithUsers(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	groupID := uuid.New()

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "order_group_id", "product_name", "price", "status", "created_at",
		"telegram_id", "username", "first_name", "last_name", "language",
	}).
		AddRow(2, 7, groupID, "b-name (x1)", 5.0, "pending", time.Now(), int64(42), "durov", nil, nil, "ru").
		AddRow(1, 7, groupID, "a-name (x2)", 20.0, "pending", time.Now(), int64(42), "durov", nil, nil, "ru")

	mock.ExpectQuery("SELECT(.|\n)+FROM orders o(.|\n)+JOIN users u").
		WillReturnRows(rows)

	orders, err := repo.ListWithUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, uint(2), orders[0].ID)
	assert.Equal(t, int64(42), orders[0].User.TelegramID)
	assert.Equal(t, groupID, orders[1].GroupID)
}

func TestRepository_ListByTelegramID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "order_group_id", "product_name", "price", "status", "created_at",
	}).AddRow(1, 7, uuid.New(), "a-name (x2)", 20.0, "completed", time.Now())

	mock.ExpectQuery("SELECT(.|\n)+FROM orders o(.|\n)+WHERE u.telegram_id").
		WithArgs(int64(42)).
		WillReturnRows(rows)

	orders, err := repo.ListByTelegramID(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, StatusCompleted, orders[0].Status)
}

func TestRepository_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE orders").
			WithArgs(StatusProcessing, uint(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdateStatus(context.Background(), 1, StatusProcessing))
	})

	t.Run("Unknown order leaves store unchanged", func(t *testing.T) {
		mock.ExpectExec("UPDATE orders").
			WithArgs(StatusProcessing, uint(999)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(context.Background(), 999, StatusProcessing)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}
