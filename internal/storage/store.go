package storage

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyFilename = errors.New("filename is empty")
	ErrFileNotFound  = errors.New("stored file not found")
)

// Upload is an incoming file as handed over by the HTTP layer.
type Upload struct {
	Filename string
	Reader   io.Reader
}

// Store persists uploaded images and removes them when the owning entity
// goes away. Upload returns the public URL the catalog records.
type Store interface {
	Upload(ctx context.Context, originalFilename string, r io.Reader) (string, error)
	Delete(ctx context.Context, url string) error
}

// newObjectName keeps the original extension (lowercased) so the serving
// layer can infer a content type, and replaces the rest with a uuid.
func newObjectName(originalFilename string) string {
	ext := strings.ToLower(filepath.Ext(originalFilename))
	return uuid.New().String() + ext
}
