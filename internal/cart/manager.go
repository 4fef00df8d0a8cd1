package cart

import (
	"sync"

	"accstore-be/internal/logger"

	"go.uber.org/zap"
)

// Manager holds every session's cart and keeps the persistent store in sync
// after each mutation. Lines keep their insertion order; a stored line always
// has quantity >= 1.
type Manager struct {
	mu    sync.Mutex
	store Store
	carts map[string][]Line
}

func NewManager(store Store) *Manager {
	carts, err := store.Load()
	if err != nil {
		logger.L().Warn("failed to load persisted carts, starting empty", zap.Error(err))
		carts = map[string][]Line{}
	}
	return &Manager{store: store, carts: carts}
}

// AddOrIncrement inserts a new line with the requested quantity, or bumps an
// existing line's quantity by exactly one. The supplied quantity is ignored
// when the line already exists; the storefront's "+" button relies on that.
func (m *Manager) AddOrIncrement(session string, line Line) []Line {
	m.mu.Lock()
	defer m.mu.Unlock()

	lines := m.carts[session]
	for i := range lines {
		if lines[i].ID == line.ID {
			lines[i].Quantity++
			m.persist(session, lines)
			return m.snapshot(lines)
		}
	}

	if line.Quantity <= 0 {
		line.Quantity = 1
	}
	lines = append(lines, line)
	m.carts[session] = lines
	m.persist(session, lines)
	return m.snapshot(lines)
}

// Decrement lowers a line's quantity by one, removing the line when it would
// drop below one. Unknown ids are ignored.
func (m *Manager) Decrement(session, id string) []Line {
	m.mu.Lock()
	defer m.mu.Unlock()

	lines := m.carts[session]
	for i := range lines {
		if lines[i].ID != id {
			continue
		}
		if lines[i].Quantity <= 1 {
			lines = append(lines[:i], lines[i+1:]...)
		} else {
			lines[i].Quantity--
		}
		m.carts[session] = lines
		m.persist(session, lines)
		break
	}
	return m.snapshot(m.carts[session])
}

// Remove deletes a line regardless of its quantity.
func (m *Manager) Remove(session, id string) []Line {
	m.mu.Lock()
	defer m.mu.Unlock()

	lines := m.carts[session]
	for i := range lines {
		if lines[i].ID == id {
			lines = append(lines[:i], lines[i+1:]...)
			m.carts[session] = lines
			m.persist(session, lines)
			break
		}
	}
	return m.snapshot(m.carts[session])
}

// Clear empties the session's cart and erases its persisted state.
func (m *Manager) Clear(session string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.carts, session)
	if err := m.store.Delete(session); err != nil {
		logger.L().Error("failed to erase persisted cart",
			zap.String("session", session),
			zap.Error(err),
		)
	}
}

// Lines returns a copy of the session's cart in insertion order.
func (m *Manager) Lines(session string) []Line {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshot(m.carts[session])
}

// Total is the sum of unit price times quantity over all lines.
func (m *Manager) Total(session string) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	var total float64
	for _, l := range m.carts[session] {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

func (m *Manager) persist(session string, lines []Line) {
	if err := m.store.Save(session, lines); err != nil {
		logger.L().Error("failed to persist cart",
			zap.String("session", session),
			zap.Error(err),
		)
	}
}

func (m *Manager) snapshot(lines []Line) []Line {
	if len(lines) == 0 {
		return []Line{}
	}
	return append([]Line(nil), lines...)
}
