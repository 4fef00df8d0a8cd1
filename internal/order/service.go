package order

import (
	"context"

	"accstore-be/internal/logger"

	"go.uber.org/zap"
)

// Service is the admin/bot read-and-update surface over persisted orders.
// Creation happens through the checkout flow, not here.
type Service interface {
	ListWithUsers(ctx context.Context) ([]*OrderWithUser, error)
	ListByTelegramID(ctx context.Context, telegramID int64) ([]*Order, error)
	UpdateStatus(ctx context.Context, orderID uint, status Status) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListWithUsers(ctx context.Context) ([]*OrderWithUser, error) {
	return s.repo.ListWithUsers(ctx)
}

func (s *service) ListByTelegramID(ctx context.Context, telegramID int64) ([]*Order, error) {
	return s.repo.ListByTelegramID(ctx, telegramID)
}

func (s *service) UpdateStatus(ctx context.Context, orderID uint, status Status) error {
	if !ValidStatus(status) {
		return ErrInvalidStatus
	}

	if err := s.repo.UpdateStatus(ctx, orderID, status); err != nil {
		return err
	}

	logger.FromCtx(ctx).Info("order status updated",
		zap.Uint("order_id", orderID),
		zap.String("status", string(status)),
	)
	return nil
}
