package category

import (
	"context"
	"database/sql"

	"accstore-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	ListCategories(ctx context.Context) ([]*Category, error)
	GetCategory(ctx context.Context, id string) (*Category, error)
	CreateCategory(ctx context.Context, params CategoryParams) (*Category, error)
	UpdateCategory(ctx context.Context, params CategoryParams) (*Category, error)
	DeleteCategory(ctx context.Context, id string) error

	ListSubcategories(ctx context.Context, categoryID string) ([]*Subcategory, error)
	GetSubcategory(ctx context.Context, id string) (*Subcategory, error)
	CreateSubcategory(ctx context.Context, params SubcategoryParams) (*Subcategory, error)
	UpdateSubcategory(ctx context.Context, params SubcategoryParams) (*Subcategory, error)
	DeleteSubcategory(ctx context.Context, id string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListCategories(ctx context.Context) ([]*Category, error) {
	query := `
	SELECT id, label_ru, label_en, img, created_at
	FROM categories
	ORDER BY created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to list categories", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	categories := []*Category{}
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.LabelRU, &c.LabelEN, &c.Img, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, &c)
	}

	return categories, rows.Err()
}

func (r *repository) GetCategory(ctx context.Context, id string) (*Category, error) {
	query := `
	SELECT id, label_ru, label_en, img, created_at
	FROM categories
	WHERE id = $1
	`

	var c Category
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&c.ID, &c.LabelRU, &c.LabelEN, &c.Img, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}

	return &c, nil
}

func (r *repository) CreateCategory(ctx context.Context, params CategoryParams) (*Category, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateCategory"),
		zap.String("category_id", params.ID),
	)

	query := `
	INSERT INTO categories (id, label_ru, label_en, img)
	VALUES ($1, $2, $3, $4)
	RETURNING id, label_ru, label_en, img, created_at
	`

	var c Category
	err := r.db.QueryRowContext(ctx, query,
		params.ID,
		params.LabelRU,
		params.LabelEN,
		params.Img,
	).Scan(&c.ID, &c.LabelRU, &c.LabelEN, &c.Img, &c.CreatedAt)
	if err != nil {
		log.Error("failed to create category", zap.Error(err))
		return nil, err
	}

	return &c, nil
}

func (r *repository) UpdateCategory(ctx context.Context, params CategoryParams) (*Category, error) {
	query := `
	UPDATE categories
	SET label_ru = $2, label_en = $3, img = $4
	WHERE id = $1
	RETURNING id, label_ru, label_en, img, created_at
	`

	var c Category
	err := r.db.QueryRowContext(ctx, query,
		params.ID,
		params.LabelRU,
		params.LabelEN,
		params.Img,
	).Scan(&c.ID, &c.LabelRU, &c.LabelEN, &c.Img, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		logger.FromCtx(ctx).Error("failed to update category", zap.Error(err))
		return nil, err
	}

	return &c, nil
}

// DeleteCategory removes the row; subcategories and items follow through
// the store's ON DELETE CASCADE.
func (r *repository) DeleteCategory(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCategoryNotFound
	}

	return nil
}

func (r *repository) ListSubcategories(ctx context.Context, categoryID string) ([]*Subcategory, error) {
	query := `
	SELECT id, category_id, label_ru, label_en, img, created_at
	FROM subcategories
	`
	args := []interface{}{}

	if categoryID != "" {
		query += ` WHERE category_id = $1`
		args = append(args, categoryID)
	}
	query += ` ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to list subcategories", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	subcategories := []*Subcategory{}
	for rows.Next() {
		var s Subcategory
		if err := rows.Scan(&s.ID, &s.CategoryID, &s.LabelRU, &s.LabelEN, &s.Img, &s.CreatedAt); err != nil {
			return nil, err
		}
		subcategories = append(subcategories, &s)
	}

	return subcategories, rows.Err()
}

func (r *repository) GetSubcategory(ctx context.Context, id string) (*Subcategory, error) {
	query := `
	SELECT id, category_id, label_ru, label_en, img, created_at
	FROM subcategories
	WHERE id = $1
	`

	var s Subcategory
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&s.ID, &s.CategoryID, &s.LabelRU, &s.LabelEN, &s.Img, &s.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrSubcategoryNotFound
	}
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *repository) CreateSubcategory(ctx context.Context, params SubcategoryParams) (*Subcategory, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateSubcategory"),
		zap.String("subcategory_id", params.ID),
		zap.String("category_id", params.CategoryID),
	)

	query := `
	INSERT INTO subcategories (id, category_id, label_ru, label_en, img)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id, category_id, label_ru, label_en, img, created_at
	`

	var s Subcategory
	err := r.db.QueryRowContext(ctx, query,
		params.ID,
		params.CategoryID,
		params.LabelRU,
		params.LabelEN,
		params.Img,
	).Scan(&s.ID, &s.CategoryID, &s.LabelRU, &s.LabelEN, &s.Img, &s.CreatedAt)
	if err != nil {
		log.Error("failed to create subcategory", zap.Error(err))
		return nil, err
	}

	return &s, nil
}

func (r *repository) UpdateSubcategory(ctx context.Context, params SubcategoryParams) (*Subcategory, error) {
	query := `
	UPDATE subcategories
	SET category_id = $2, label_ru = $3, label_en = $4, img = $5
	WHERE id = $1
	RETURNING id, category_id, label_ru, label_en, img, created_at
	`

	var s Subcategory
	err := r.db.QueryRowContext(ctx, query,
		params.ID,
		params.CategoryID,
		params.LabelRU,
		params.LabelEN,
		params.Img,
	).Scan(&s.ID, &s.CategoryID, &s.LabelRU, &s.LabelEN, &s.Img, &s.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrSubcategoryNotFound
	}
	if err != nil {
		logger.FromCtx(ctx).Error("failed to update subcategory", zap.Error(err))
		return nil, err
	}

	return &s, nil
}

func (r *repository) DeleteSubcategory(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM subcategories WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrSubcategoryNotFound
	}

	return nil
}
