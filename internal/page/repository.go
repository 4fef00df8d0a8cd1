package page

import (
	"context"
	"database/sql"

	"accstore-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context) ([]*Page, error)
	Get(ctx context.Context, id string) (*Page, error)
	Create(ctx context.Context, params Params) (*Page, error)
	Update(ctx context.Context, params Params) (*Page, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// scanPage decodes the raw content columns into the tagged union so the
// rest of the app never sees JSON-in-a-string.
func scanPage(row interface{ Scan(...interface{}) error }) (*Page, error) {
	var (
		p                    Page
		contentRU, contentEN string
	)
	err := row.Scan(&p.ID, &p.TitleRU, &p.TitleEN, &contentRU, &contentEN, &p.ContentType, &p.CreatedAt)
	if err != nil {
		return nil, err
	}

	if p.ContentRU, err = decodeContent(p.ContentType, contentRU); err != nil {
		return nil, err
	}
	if p.ContentEN, err = decodeContent(p.ContentType, contentEN); err != nil {
		return nil, err
	}
	return &p, nil
}

const pageColumns = `id, title_ru, title_en, content_ru, content_en, content_type, created_at`

func (r *repository) List(ctx context.Context) ([]*Page, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+pageColumns+` FROM pages ORDER BY created_at ASC`)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to list pages", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	pages := []*Page{}
	for rows.Next() {
		p, err := scanPage(rows)
		if err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}

	return pages, rows.Err()
}

func (r *repository) Get(ctx context.Context, id string) (*Page, error) {
	p, err := scanPage(r.db.QueryRowContext(ctx,
		`SELECT `+pageColumns+` FROM pages WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, ErrPageNotFound
	}
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (r *repository) Create(ctx context.Context, params Params) (*Page, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
		zap.String("page_id", params.ID),
	)

	query := `
	INSERT INTO pages (id, title_ru, title_en, content_ru, content_en, content_type)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING ` + pageColumns

	p, err := scanPage(r.db.QueryRowContext(ctx, query,
		params.ID,
		params.TitleRU,
		params.TitleEN,
		params.ContentRU,
		params.ContentEN,
		params.ContentType,
	))
	if err != nil {
		log.Error("failed to create page", zap.Error(err))
		return nil, err
	}

	return p, nil
}

func (r *repository) Update(ctx context.Context, params Params) (*Page, error) {
	query := `
	UPDATE pages
	SET title_ru = $2, title_en = $3, content_ru = $4, content_en = $5, content_type = $6
	WHERE id = $1
	RETURNING ` + pageColumns

	p, err := scanPage(r.db.QueryRowContext(ctx, query,
		params.ID,
		params.TitleRU,
		params.TitleEN,
		params.ContentRU,
		params.ContentEN,
		params.ContentType,
	))
	if err == sql.ErrNoRows {
		return nil, ErrPageNotFound
	}
	if err != nil {
		logger.FromCtx(ctx).Error("failed to update page", zap.Error(err))
		return nil, err
	}

	return p, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pages WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrPageNotFound
	}

	return nil
}
