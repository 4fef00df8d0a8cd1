package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"accstore-be/internal/logger"

	"go.uber.org/zap"
)

// ImagePathPrefix is where the HTTP layer serves local uploads from.
const ImagePathPrefix = "/api/images/"

type localStore struct {
	dir string
}

// NewLocalStore writes uploads under dir, creating it if needed.
func NewLocalStore(dir string) (Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &localStore{dir: dir}, nil
}

func (s *localStore) Upload(ctx context.Context, originalFilename string, r io.Reader) (string, error) {
	if originalFilename == "" {
		return "", ErrEmptyFilename
	}

	name := newObjectName(originalFilename)
	dst := filepath.Join(s.dir, name)

	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(dst)
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	logger.FromCtx(ctx).Debug("stored image",
		zap.String("layer", "storage"),
		zap.String("file", name),
	)
	return ImagePathPrefix + name, nil
}

func (s *localStore) Delete(ctx context.Context, url string) error {
	name, err := s.fileFor(url)
	if err != nil {
		return err
	}

	if err := os.Remove(filepath.Join(s.dir, name)); err != nil {
		if os.IsNotExist(err) {
			return ErrFileNotFound
		}
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// Resolve maps a public image URL back to the on-disk path for serving.
func (s *localStore) Resolve(url string) (string, error) {
	name, err := s.fileFor(url)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.dir, name), nil
}

// fileFor strips the serving prefix and rejects anything that could walk
// out of the upload directory.
func (s *localStore) fileFor(url string) (string, error) {
	name := strings.TrimPrefix(url, ImagePathPrefix)
	if name == "" || name != path.Base(name) {
		return "", ErrEmptyFilename
	}
	return name, nil
}
