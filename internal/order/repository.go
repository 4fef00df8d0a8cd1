package order

import (
	"context"
	"database/sql"

	"accstore-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	CreateOrdersTx(ctx context.Context, userID uint, groupID uuid.UUID, lines []NewLine) ([]uint, error)
	ListWithUsers(ctx context.Context) ([]*OrderWithUser, error)
	ListByTelegramID(ctx context.Context, telegramID int64) ([]*Order, error)
	UpdateStatus(ctx context.Context, orderID uint, status Status) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// CreateOrdersTx inserts one row per line inside a single transaction, in
// the given order. Either every row lands or none does.
func (r *repository) CreateOrdersTx(
	ctx context.Context,
	userID uint,
	groupID uuid.UUID,
	lines []NewLine,
) ([]uint, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateOrdersTx"),
		zap.Uint("user_id", userID),
		zap.String("order_group_id", groupID.String()),
		zap.Int("line_count", len(lines)),
	)

	if len(lines) == 0 {
		return nil, ErrNoLines
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	ids := make([]uint, 0, len(lines))
	for _, line := range lines {
		var id uint
		err := tx.QueryRowContext(ctx, `
			INSERT INTO orders (user_id, order_group_id, product_name, price, status)
			VALUES ($1, $2, $3, $4, 'pending')
			RETURNING id
		`, userID, groupID, line.ProductName, line.Price).Scan(&id)
		if err != nil {
			log.Error("failed to insert order row",
				zap.String("product_name", line.ProductName),
				zap.Error(err),
			)
			return nil, err
		}
		ids = append(ids, id)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	log.Info("orders created", zap.Uints("order_ids", ids))
	return ids, nil
}

func (r *repository) ListWithUsers(ctx context.Context) ([]*OrderWithUser, error) {
	query := `
	SELECT
		o.id, o.user_id, o.order_group_id, o.product_name, o.price, o.status, o.created_at,
		u.telegram_id, u.username, u.first_name, u.last_name, u.language
	FROM orders o
	JOIN users u ON o.user_id = u.id
	ORDER BY o.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []*OrderWithUser{}
	for rows.Next() {
		var o OrderWithUser
		if err := rows.Scan(
			&o.ID,
			&o.UserID,
			&o.GroupID,
			&o.ProductName,
			&o.Price,
			&o.Status,
			&o.CreatedAt,
			&o.User.TelegramID,
			&o.User.Username,
			&o.User.FirstName,
			&o.User.LastName,
			&o.User.Language,
		); err != nil {
			return nil, err
		}
		orders = append(orders, &o)
	}

	return orders, rows.Err()
}

func (r *repository) ListByTelegramID(ctx context.Context, telegramID int64) ([]*Order, error) {
	query := `
	SELECT o.id, o.user_id, o.order_group_id, o.product_name, o.price, o.status, o.created_at
	FROM orders o
	JOIN users u ON o.user_id = u.id
	WHERE u.telegram_id = $1
	ORDER BY o.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, telegramID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []*Order{}
	for rows.Next() {
		var o Order
		if err := rows.Scan(
			&o.ID,
			&o.UserID,
			&o.GroupID,
			&o.ProductName,
			&o.Price,
			&o.Status,
			&o.CreatedAt,
		); err != nil {
			return nil, err
		}
		orders = append(orders, &o)
	}

	return orders, rows.Err()
}

func (r *repository) UpdateStatus(ctx context.Context, orderID uint, status Status) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE orders
		SET status = $1
		WHERE id = $2
	`, status, orderID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOrderNotFound
	}

	return nil
}
