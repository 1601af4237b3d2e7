package activity

import "sync"

// Manager hands out one Feed per property, hydrated from the store on first
// access.
type Manager struct {
	mu    sync.Mutex
	feeds map[string]*Feed
	store NoteStore
}

func NewManager(store NoteStore) *Manager {
	return &Manager{
		feeds: make(map[string]*Feed),
		store: store,
	}
}

func (m *Manager) Feed(propertyID string) (*Feed, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if f, ok := m.feeds[propertyID]; ok {
		return f, nil
	}
	notes, err := m.store.LoadNotes(propertyID)
	if err != nil {
		return nil, err
	}
	f := NewFeed(propertyID, notes, m.store)
	m.feeds[propertyID] = f
	return f, nil
}
