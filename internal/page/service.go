package page

import (
	"context"
	"encoding/json"
)

type Service interface {
	List(ctx context.Context) ([]*Page, error)
	Get(ctx context.Context, id string) (*Page, error)
	Create(ctx context.Context, params Params) (*Page, error)
	Update(ctx context.Context, params Params) (*Page, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]*Page, error) {
	return s.repo.List(ctx)
}

func (s *service) Get(ctx context.Context, id string) (*Page, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	return s.repo.Get(ctx, id)
}

func (s *service) Create(ctx context.Context, params Params) (*Page, error) {
	if err := validate(params); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, params)
}

func (s *service) Update(ctx context.Context, params Params) (*Page, error) {
	if err := validate(params); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, params)
}

func (s *service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyID
	}
	return s.repo.Delete(ctx, id)
}

// validate rejects malformed faq bodies before they reach the store, so
// reads never have to deal with unparseable columns.
func validate(params Params) error {
	if params.ID == "" {
		return ErrEmptyID
	}
	if params.TitleRU == "" && params.TitleEN == "" {
		return ErrEmptyTitle
	}
	if !ValidContentType(params.ContentType) {
		return ErrInvalidContentType
	}

	if params.ContentType == ContentFAQ {
		for _, raw := range []string{params.ContentRU, params.ContentEN} {
			if raw == "" {
				continue
			}
			var faq []QA
			if err := json.Unmarshal([]byte(raw), &faq); err != nil {
				return ErrInvalidFAQ
			}
		}
	}

	return nil
}
