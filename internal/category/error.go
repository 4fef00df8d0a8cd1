package category

import "errors"

var (
	ErrCategoryNotFound    = errors.New("category not found")
	ErrSubcategoryNotFound = errors.New("subcategory not found")
	ErrEmptyID             = errors.New("id cannot be empty")
	ErrEmptyLabel          = errors.New("label cannot be empty")
	ErrEmptyCategoryID     = errors.New("categoryId cannot be empty")
)
