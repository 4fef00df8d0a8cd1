package item

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"accstore-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context, filter Filter) ([]*Item, error)
	Get(ctx context.Context, id string) (*Item, error)
	Create(ctx context.Context, params Params) (*Item, error)
	Update(ctx context.Context, params Params) (*Item, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const itemColumns = `id, category_id, subcategory_id, name, price, description_ru, description_en, img, created_at`

// subcategory_id is nullable; an empty SubcategoryID maps to NULL on write
// and back to "" on read.
func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func scanItem(row interface{ Scan(...interface{}) error }) (*Item, error) {
	var (
		it            Item
		subcategoryID sql.NullString
	)
	err := row.Scan(
		&it.ID,
		&it.CategoryID,
		&subcategoryID,
		&it.Name,
		&it.Price,
		&it.DescriptionRU,
		&it.DescriptionEN,
		&it.Img,
		&it.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	it.SubcategoryID = subcategoryID.String
	return &it, nil
}

// List returns items newest first, optionally narrowed to a category or
// subcategory.
func (r *repository) List(ctx context.Context, filter Filter) ([]*Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items`

	where := []string{}
	args := []interface{}{}

	if filter.CategoryID != "" {
		where = append(where, fmt.Sprintf("category_id = $%d", len(args)+1))
		args = append(args, filter.CategoryID)
	}
	if filter.SubcategoryID != "" {
		where = append(where, fmt.Sprintf("subcategory_id = $%d", len(args)+1))
		args = append(args, filter.SubcategoryID)
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to list items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	items := []*Item{}
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}

	return items, rows.Err()
}

func (r *repository) Get(ctx context.Context, id string) (*Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`

	it, err := scanItem(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}

	return it, nil
}

func (r *repository) Create(ctx context.Context, params Params) (*Item, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
		zap.String("item_id", params.ID),
	)

	query := `
	INSERT INTO items (id, category_id, subcategory_id, name, price, description_ru, description_en, img)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING ` + itemColumns

	it, err := scanItem(r.db.QueryRowContext(ctx, query,
		params.ID,
		params.CategoryID,
		nullString(params.SubcategoryID),
		params.Name,
		params.Price,
		params.DescriptionRU,
		params.DescriptionEN,
		params.Img,
	))
	if err != nil {
		log.Error("failed to create item", zap.Error(err))
		return nil, err
	}

	return it, nil
}

func (r *repository) Update(ctx context.Context, params Params) (*Item, error) {
	query := `
	UPDATE items
	SET category_id = $2, subcategory_id = $3, name = $4, price = $5,
		description_ru = $6, description_en = $7, img = $8
	WHERE id = $1
	RETURNING ` + itemColumns

	it, err := scanItem(r.db.QueryRowContext(ctx, query,
		params.ID,
		params.CategoryID,
		nullString(params.SubcategoryID),
		params.Name,
		params.Price,
		params.DescriptionRU,
		params.DescriptionEN,
		params.Img,
	))
	if err == sql.ErrNoRows {
		return nil, ErrItemNotFound
	}
	if err != nil {
		logger.FromCtx(ctx).Error("failed to update item", zap.Error(err))
		return nil, err
	}

	return it, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrItemNotFound
	}

	return nil
}
