package category

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"accstore-be/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListCategories(ctx context.Context) ([]*Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Category), args.Error(1)
}

func (m *MockRepository) GetCategory(ctx context.Context, id string) (*Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Category), args.Error(1)
}

func (m *MockRepository) CreateCategory(ctx context.Context, params CategoryParams) (*Category, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Category), args.Error(1)
}

func (m *MockRepository) UpdateCategory(ctx context.Context, params CategoryParams) (*Category, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Category), args.Error(1)
}

func (m *MockRepository) DeleteCategory(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) ListSubcategories(ctx context.Context, categoryID string) ([]*Subcategory, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Subcategory), args.Error(1)
}

func (m *MockRepository) GetSubcategory(ctx context.Context, id string) (*Subcategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Subcategory), args.Error(1)
}

func (m *MockRepository) CreateSubcategory(ctx context.Context, params SubcategoryParams) (*Subcategory, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Subcategory), args.Error(1)
}

func (m *MockRepository) UpdateSubcategory(ctx context.Context, params SubcategoryParams) (*Subcategory, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Subcategory), args.Error(1)
}

func (m *MockRepository) DeleteSubcategory(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// fakeImageStore counts uploads and remembers deletions.
type fakeImageStore struct {
	uploads   int
	deleted   []string
	deleteErr error
}

func (f *fakeImageStore) Upload(_ context.Context, filename string, _ io.Reader) (string, error) {
	f.uploads++
	return fmt.Sprintf("/api/images/upload-%d-%s", f.uploads, filename), nil
}

func (f *fakeImageStore) Delete(_ context.Context, url string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, url)
	return nil
}

func upload(name string) *storage.Upload {
	return &storage.Upload{Filename: name, Reader: strings.NewReader("bytes")}
}

func TestService_CreateCategory(t *testing.T) {
	t.Run("Stores the image and records its url", func(t *testing.T) {
		repo := new(MockRepository)
		images := &fakeImageStore{}
		svc := NewService(repo, images)

		repo.On("CreateCategory", mock.Anything, CategoryParams{
			ID:      "accounts",
			LabelRU: "Аккаунты",
			Img:     "/api/images/upload-1-a.png",
		}).Return(&Category{ID: "accounts", Img: "/api/images/upload-1-a.png"}, nil)

		c, err := svc.CreateCategory(context.Background(),
			CategoryParams{ID: "accounts", LabelRU: "Аккаунты"}, upload("a.png"))
		require.NoError(t, err)
		assert.Equal(t, "/api/images/upload-1-a.png", c.Img)
		repo.AssertExpectations(t)
	})

	t.Run("Validation runs before any storage call", func(t *testing.T) {
		repo := new(MockRepository)
		images := &fakeImageStore{}
		svc := NewService(repo, images)

		_, err := svc.CreateCategory(context.Background(), CategoryParams{ID: "x"}, upload("a.png"))
		assert.ErrorIs(t, err, ErrEmptyLabel)
		assert.Zero(t, images.uploads)
		repo.AssertNotCalled(t, "CreateCategory")
	})

	t.Run("Failed insert cleans up the orphaned upload", func(t *testing.T) {
		repo := new(MockRepository)
		images := &fakeImageStore{}
		svc := NewService(repo, images)

		repo.On("CreateCategory", mock.Anything, mock.Anything).
			Return(nil, errors.New("db error"))

		_, err := svc.CreateCategory(context.Background(),
			CategoryParams{ID: "accounts", LabelEN: "Accounts"}, upload("a.png"))
		assert.Error(t, err)
		assert.Equal(t, []string{"/api/images/upload-1-a.png"}, images.deleted)
	})
}

func TestService_UpdateCategory(t *testing.T) {
	t.Run("Old image removed only after the row references the new one", func(t *testing.T) {
		repo := new(MockRepository)
		images := &fakeImageStore{}
		svc := NewService(repo, images)

		repo.On("GetCategory", mock.Anything, "accounts").
			Return(&Category{ID: "accounts", LabelEN: "Accounts", Img: "/api/images/old.png"}, nil)
		repo.On("UpdateCategory", mock.Anything, CategoryParams{
			ID:      "accounts",
			LabelEN: "Accounts",
			Img:     "/api/images/upload-1-new.png",
		}).Return(&Category{ID: "accounts", Img: "/api/images/upload-1-new.png"}, nil)

		_, err := svc.UpdateCategory(context.Background(),
			CategoryParams{ID: "accounts", LabelEN: "Accounts"}, upload("new.png"))
		require.NoError(t, err)
		assert.Equal(t, []string{"/api/images/old.png"}, images.deleted)
	})

	t.Run("No new image keeps the existing one", func(t *testing.T) {
		repo := new(MockRepository)
		images := &fakeImageStore{}
		svc := NewService(repo, images)

		repo.On("GetCategory", mock.Anything, "accounts").
			Return(&Category{ID: "accounts", LabelEN: "Accounts", Img: "/api/images/old.png"}, nil)
		repo.On("UpdateCategory", mock.Anything, CategoryParams{
			ID:      "accounts",
			LabelEN: "Renamed",
			Img:     "/api/images/old.png",
		}).Return(&Category{ID: "accounts", Img: "/api/images/old.png"}, nil)

		_, err := svc.UpdateCategory(context.Background(),
			CategoryParams{ID: "accounts", LabelEN: "Renamed"}, nil)
		require.NoError(t, err)
		assert.Zero(t, images.uploads)
		assert.Empty(t, images.deleted)
	})

	t.Run("Unknown category", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, &fakeImageStore{})

		repo.On("GetCategory", mock.Anything, "missing").
			Return(nil, ErrCategoryNotFound)

		_, err := svc.UpdateCategory(context.Background(),
			CategoryParams{ID: "missing", LabelEN: "x"}, nil)
		assert.ErrorIs(t, err, ErrCategoryNotFound)
	})
}

func TestService_DeleteCategory(t *testing.T) {
	t.Run("Image removal failure does not block deletion", func(t *testing.T) {
		repo := new(MockRepository)
		images := &fakeImageStore{deleteErr: errors.New("storage down")}
		svc := NewService(repo, images)

		repo.On("GetCategory", mock.Anything, "accounts").
			Return(&Category{ID: "accounts", Img: "/api/images/a.png"}, nil)
		repo.On("DeleteCategory", mock.Anything, "accounts").Return(nil)

		assert.NoError(t, svc.DeleteCategory(context.Background(), "accounts"))
		repo.AssertExpectations(t)
	})
}

func TestService_Subcategories(t *testing.T) {
	t.Run("Create requires a parent category id", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, &fakeImageStore{})

		_, err := svc.CreateSubcategory(context.Background(),
			SubcategoryParams{ID: "tg", LabelEN: "Telegram"}, nil)
		assert.ErrorIs(t, err, ErrEmptyCategoryID)
		repo.AssertNotCalled(t, "CreateSubcategory")
	})

	t.Run("Delete removes the image first", func(t *testing.T) {
		repo := new(MockRepository)
		images := &fakeImageStore{}
		svc := NewService(repo, images)

		repo.On("GetSubcategory", mock.Anything, "tg").
			Return(&Subcategory{ID: "tg", CategoryID: "accounts", Img: "/api/images/tg.png"}, nil)
		repo.On("DeleteSubcategory", mock.Anything, "tg").Return(nil)

		require.NoError(t, svc.DeleteSubcategory(context.Background(), "tg"))
		assert.Equal(t, []string{"/api/images/tg.png"}, images.deleted)
	})
}
