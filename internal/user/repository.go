package user

import (
	"context"
	"database/sql"

	"accstore-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Upsert(ctx context.Context, params UpsertParams) (*User, error)
	GetByTelegramID(ctx context.Context, telegramID int64) (*User, error)
	UpdateLanguage(ctx context.Context, telegramID int64, language string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// Upsert registers a Telegram user, updating the mutable fields when the
// telegram_id already exists.
func (r *repository) Upsert(ctx context.Context, params UpsertParams) (*User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Upsert"),
		zap.Int64("telegram_id", params.TelegramID),
	)

	query := `
	INSERT INTO users (telegram_id, username, first_name, last_name, language, updated_at)
	VALUES ($1, $2, $3, $4, $5, NOW())
	ON CONFLICT (telegram_id) DO UPDATE SET
		username = EXCLUDED.username,
		first_name = EXCLUDED.first_name,
		last_name = EXCLUDED.last_name,
		language = EXCLUDED.language,
		updated_at = NOW()
	RETURNING id, telegram_id, username, first_name, last_name, language, created_at, updated_at
	`

	var u User
	err := r.db.QueryRowContext(ctx, query,
		params.TelegramID,
		params.Username,
		params.FirstName,
		params.LastName,
		params.Language,
	).Scan(
		&u.ID,
		&u.TelegramID,
		&u.Username,
		&u.FirstName,
		&u.LastName,
		&u.Language,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to upsert user", zap.Error(err))
		return nil, err
	}

	return &u, nil
}

func (r *repository) GetByTelegramID(ctx context.Context, telegramID int64) (*User, error) {
	query := `
	SELECT id, telegram_id, username, first_name, last_name, language, created_at, updated_at
	FROM users
	WHERE telegram_id = $1
	`

	var u User
	err := r.db.QueryRowContext(ctx, query, telegramID).Scan(
		&u.ID,
		&u.TelegramID,
		&u.Username,
		&u.FirstName,
		&u.LastName,
		&u.Language,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *repository) UpdateLanguage(ctx context.Context, telegramID int64, language string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET language = $1, updated_at = NOW()
		WHERE telegram_id = $2
	`, language, telegramID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}
