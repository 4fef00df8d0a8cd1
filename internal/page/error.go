package page

import "errors"

var (
	ErrPageNotFound       = errors.New("page not found")
	ErrEmptyID            = errors.New("id cannot be empty")
	ErrEmptyTitle         = errors.New("title cannot be empty")
	ErrInvalidContentType = errors.New("content type must be text or faq")
	ErrInvalidFAQ         = errors.New("faq content must be a JSON array of question/answer pairs")
)
