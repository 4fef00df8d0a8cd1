package user

import (
	"context"

	"accstore-be/internal/logger"

	"go.uber.org/zap"
)

var supportedLanguages = map[string]bool{
	"ru": true,
	"en": true,
}

// Service defines the registration contract the bot front-end calls into.
type Service interface {
	Register(ctx context.Context, params UpsertParams) (*User, error)
	GetByTelegramID(ctx context.Context, telegramID int64) (*User, error)
	SetLanguage(ctx context.Context, telegramID int64, language string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, params UpsertParams) (*User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Register"),
		zap.Int64("telegram_id", params.TelegramID),
	)

	if params.Language == "" {
		params.Language = "ru"
	}
	if !supportedLanguages[params.Language] {
		return nil, ErrInvalidLanguage
	}

	u, err := s.repo.Upsert(ctx, params)
	if err != nil {
		log.Error("failed to register user", zap.Error(err))
		return nil, err
	}

	log.Info("user registered", zap.Uint("user_id", u.ID))
	return u, nil
}

func (s *service) GetByTelegramID(ctx context.Context, telegramID int64) (*User, error) {
	return s.repo.GetByTelegramID(ctx, telegramID)
}

func (s *service) SetLanguage(ctx context.Context, telegramID int64, language string) error {
	if !supportedLanguages[language] {
		return ErrInvalidLanguage
	}
	return s.repo.UpdateLanguage(ctx, telegramID, language)
}
