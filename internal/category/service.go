package category

import (
	"context"

	"accstore-be/internal/logger"
	"accstore-be/internal/storage"

	"go.uber.org/zap"
)

type Service interface {
	ListCategories(ctx context.Context) ([]*Category, error)
	GetCategory(ctx context.Context, id string) (*Category, error)
	CreateCategory(ctx context.Context, params CategoryParams, image *storage.Upload) (*Category, error)
	UpdateCategory(ctx context.Context, params CategoryParams, image *storage.Upload) (*Category, error)
	DeleteCategory(ctx context.Context, id string) error

	ListSubcategories(ctx context.Context, categoryID string) ([]*Subcategory, error)
	CreateSubcategory(ctx context.Context, params SubcategoryParams, image *storage.Upload) (*Subcategory, error)
	UpdateSubcategory(ctx context.Context, params SubcategoryParams, image *storage.Upload) (*Subcategory, error)
	DeleteSubcategory(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	images storage.Store
}

func NewService(repo Repository, images storage.Store) Service {
	return &service{repo: repo, images: images}
}

func (s *service) ListCategories(ctx context.Context) ([]*Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *service) GetCategory(ctx context.Context, id string) (*Category, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	return s.repo.GetCategory(ctx, id)
}

func (s *service) CreateCategory(ctx context.Context, params CategoryParams, image *storage.Upload) (*Category, error) {
	if err := validateCategory(params); err != nil {
		return nil, err
	}

	if image != nil {
		url, err := s.images.Upload(ctx, image.Filename, image.Reader)
		if err != nil {
			return nil, err
		}
		params.Img = url
	}

	created, err := s.repo.CreateCategory(ctx, params)
	if err != nil {
		// The row never landed, so the upload is orphaned.
		s.removeImage(ctx, params.Img)
		return nil, err
	}

	return created, nil
}

// UpdateCategory persists the new image before touching the row and only
// removes the replaced file once the row references the new one.
func (s *service) UpdateCategory(ctx context.Context, params CategoryParams, image *storage.Upload) (*Category, error) {
	if err := validateCategory(params); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetCategory(ctx, params.ID)
	if err != nil {
		return nil, err
	}

	params.Img = existing.Img
	if image != nil {
		url, err := s.images.Upload(ctx, image.Filename, image.Reader)
		if err != nil {
			return nil, err
		}
		params.Img = url
	}

	updated, err := s.repo.UpdateCategory(ctx, params)
	if err != nil {
		if image != nil {
			s.removeImage(ctx, params.Img)
		}
		return nil, err
	}

	if image != nil && existing.Img != "" && existing.Img != updated.Img {
		s.removeImage(ctx, existing.Img)
	}

	return updated, nil
}

func (s *service) DeleteCategory(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyID
	}

	existing, err := s.repo.GetCategory(ctx, id)
	if err != nil {
		return err
	}

	s.removeImage(ctx, existing.Img)
	return s.repo.DeleteCategory(ctx, id)
}

func (s *service) ListSubcategories(ctx context.Context, categoryID string) ([]*Subcategory, error) {
	return s.repo.ListSubcategories(ctx, categoryID)
}

func (s *service) CreateSubcategory(ctx context.Context, params SubcategoryParams, image *storage.Upload) (*Subcategory, error) {
	if err := validateSubcategory(params); err != nil {
		return nil, err
	}

	if image != nil {
		url, err := s.images.Upload(ctx, image.Filename, image.Reader)
		if err != nil {
			return nil, err
		}
		params.Img = url
	}

	created, err := s.repo.CreateSubcategory(ctx, params)
	if err != nil {
		s.removeImage(ctx, params.Img)
		return nil, err
	}

	return created, nil
}

func (s *service) UpdateSubcategory(ctx context.Context, params SubcategoryParams, image *storage.Upload) (*Subcategory, error) {
	if err := validateSubcategory(params); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetSubcategory(ctx, params.ID)
	if err != nil {
		return nil, err
	}

	params.Img = existing.Img
	if image != nil {
		url, err := s.images.Upload(ctx, image.Filename, image.Reader)
		if err != nil {
			return nil, err
		}
		params.Img = url
	}

	updated, err := s.repo.UpdateSubcategory(ctx, params)
	if err != nil {
		if image != nil {
			s.removeImage(ctx, params.Img)
		}
		return nil, err
	}

	if image != nil && existing.Img != "" && existing.Img != updated.Img {
		s.removeImage(ctx, existing.Img)
	}

	return updated, nil
}

func (s *service) DeleteSubcategory(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyID
	}

	existing, err := s.repo.GetSubcategory(ctx, id)
	if err != nil {
		return err
	}

	s.removeImage(ctx, existing.Img)
	return s.repo.DeleteSubcategory(ctx, id)
}

// removeImage is best-effort: a stale file must never fail a catalog write.
func (s *service) removeImage(ctx context.Context, url string) {
	if url == "" {
		return
	}
	if err := s.images.Delete(ctx, url); err != nil {
		logger.FromCtx(ctx).Warn("failed to remove image",
			zap.String("url", url),
			zap.Error(err),
		)
	}
}

func validateCategory(params CategoryParams) error {
	if params.ID == "" {
		return ErrEmptyID
	}
	if params.LabelRU == "" && params.LabelEN == "" {
		return ErrEmptyLabel
	}
	return nil
}

func validateSubcategory(params SubcategoryParams) error {
	if params.ID == "" {
		return ErrEmptyID
	}
	if params.CategoryID == "" {
		return ErrEmptyCategoryID
	}
	if params.LabelRU == "" && params.LabelEN == "" {
		return ErrEmptyLabel
	}
	return nil
}
