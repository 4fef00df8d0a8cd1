package cart

import "sync"

type memoryStore struct {
	mu    sync.Mutex
	carts map[string][]Line
}

// NewMemoryStore keeps carts in memory only. Used in tests and when no
// persistence path is configured.
func NewMemoryStore() Store {
	return &memoryStore{carts: map[string][]Line{}}
}

func (s *memoryStore) Load() (map[string][]Line, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string][]Line, len(s.carts))
	for k, v := range s.carts {
		out[k] = append([]Line(nil), v...)
	}
	return out, nil
}

func (s *memoryStore) Save(session string, lines []Line) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[session] = append([]Line(nil), lines...)
	return nil
}

func (s *memoryStore) Delete(session string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, session)
	return nil
}
