package cart

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"accstore-be/internal/logger"

	"go.uber.org/zap"
)

// StorageKey is the fixed key the carts live under, one list per session.
const StorageKey = "cartItems"

// Store persists cart lines between process runs.
type Store interface {
	Load() (map[string][]Line, error)
	Save(session string, lines []Line) error
	Delete(session string) error
}

type fileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore persists carts as a single JSON document on local disk.
func NewFileStore(path string) Store {
	return &fileStore{path: path}
}

func (s *fileStore) Load() (map[string][]Line, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(), nil
}

// load never fails: a missing or corrupt file resets to an empty state.
func (s *fileStore) load() map[string][]Line {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.L().Warn("cart store unreadable, starting empty",
				zap.String("path", s.path),
				zap.Error(err),
			)
		}
		return map[string][]Line{}
	}

	var doc map[string]map[string][]Line
	if err := json.Unmarshal(data, &doc); err != nil {
		logger.L().Warn("cart store corrupt, starting empty",
			zap.String("path", s.path),
			zap.Error(err),
		)
		return map[string][]Line{}
	}

	carts := doc[StorageKey]
	if carts == nil {
		carts = map[string][]Line{}
	}
	return carts
}

func (s *fileStore) write(carts map[string][]Line) error {
	doc := map[string]map[string][]Line{StorageKey: carts}
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *fileStore) Save(session string, lines []Line) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	carts := s.load()
	carts[session] = lines
	return s.write(carts)
}

func (s *fileStore) Delete(session string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	carts := s.load()
	delete(carts, session)
	return s.write(carts)
}
