package order

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateOrdersTx(ctx context.Context, userID uint, groupID uuid.UUID, lines []NewLine) ([]uint, error) {
	args := m.Called(ctx, userID, groupID, lines)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

func (m *MockRepository) ListWithUsers(ctx context.Context) ([]*OrderWithUser, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*OrderWithUser), args.Error(1)
}

func (m *MockRepository) ListByTelegramID(ctx context.Context, telegramID int64) ([]*Order, error) {
	args := m.Called(ctx, telegramID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Order), args.Error(1)
}

func (m *MockRepository) UpdateStatus(ctx context.Context, orderID uint, status Status) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusPending))
	assert.True(t, ValidStatus(StatusProcessing))
	assert.True(t, ValidStatus(StatusCompleted))
	assert.True(t, ValidStatus(StatusCancelled))
	assert.False(t, ValidStatus("shipped"))
	assert.False(t, ValidStatus(""))
}

func TestService_UpdateStatus(t *testing.T) {
	t.Run("Valid status delegates to repository", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("UpdateStatus", mock.Anything, uint(1), StatusCompleted).Return(nil)

		assert.NoError(t, svc.UpdateStatus(context.Background(), 1, StatusCompleted))
		repo.AssertExpectations(t)
	})

	t.Run("Invalid status never reaches repository", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		err := svc.UpdateStatus(context.Background(), 1, "shipped")
		assert.ErrorIs(t, err, ErrInvalidStatus)
		repo.AssertNotCalled(t, "UpdateStatus")
	})

	t.Run("Not found propagates", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("UpdateStatus", mock.Anything, uint(999), StatusPending).Return(ErrOrderNotFound)

		err := svc.UpdateStatus(context.Background(), 999, StatusPending)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}

func TestService_Listing(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	repo.On("ListWithUsers", mock.Anything).
		Return([]*OrderWithUser{{Order: Order{ID: 1}}}, nil)
	repo.On("ListByTelegramID", mock.Anything, int64(42)).
		Return([]*Order{{ID: 1}, {ID: 2}}, nil)

	withUsers, err := svc.ListWithUsers(context.Background())
	assert.NoError(t, err)
	assert.Len(t, withUsers, 1)

	mine, err := svc.ListByTelegramID(context.Background(), 42)
	assert.NoError(t, err)
	assert.Len(t, mine, 2)
}
