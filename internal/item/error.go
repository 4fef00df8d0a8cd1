package item

import "errors"

var (
	ErrItemNotFound = errors.New("item not found")
	ErrEmptyID      = errors.New("id cannot be empty")
	ErrEmptyName    = errors.New("name cannot be empty")
	ErrInvalidPrice = errors.New("price must not be negative")
)
