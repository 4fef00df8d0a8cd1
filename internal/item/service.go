package item

import (
	"context"

	"accstore-be/internal/logger"
	"accstore-be/internal/storage"

	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context, filter Filter) ([]*Item, error)
	Get(ctx context.Context, id string) (*Item, error)
	Create(ctx context.Context, params Params, image *storage.Upload) (*Item, error)
	Update(ctx context.Context, params Params, image *storage.Upload) (*Item, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	images storage.Store
}

func NewService(repo Repository, images storage.Store) Service {
	return &service{repo: repo, images: images}
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Item, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Get(ctx context.Context, id string) (*Item, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	return s.repo.Get(ctx, id)
}

func (s *service) Create(ctx context.Context, params Params, image *storage.Upload) (*Item, error) {
	if err := validate(params); err != nil {
		return nil, err
	}

	if image != nil {
		url, err := s.images.Upload(ctx, image.Filename, image.Reader)
		if err != nil {
			return nil, err
		}
		params.Img = url
	}

	created, err := s.repo.Create(ctx, params)
	if err != nil {
		s.removeImage(ctx, params.Img)
		return nil, err
	}

	return created, nil
}

func (s *service) Update(ctx context.Context, params Params, image *storage.Upload) (*Item, error) {
	if err := validate(params); err != nil {
		return nil, err
	}

	existing, err := s.repo.Get(ctx, params.ID)
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

	updated, err := s.repo.Update(ctx, params)
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

func (s *service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyID
	}

	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	s.removeImage(ctx, existing.Img)
	return s.repo.Delete(ctx, id)
}

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

func validate(params Params) error {
	if params.ID == "" {
		return ErrEmptyID
	}
	if params.Name == "" {
		return ErrEmptyName
	}
	if params.Price < 0 {
		return ErrInvalidPrice
	}
	return nil
}
