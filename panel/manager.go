package panel

import "sync"

// Manager hands out one Board per property, hydrating it from the store on
// first access and keeping it for the life of the process.
type Manager struct {
	mu     sync.Mutex
	boards map[string]*Board
	store  Store
}

func NewManager(store Store) *Manager {
	return &Manager{
		boards: make(map[string]*Board),
		store:  store,
	}
}

// Board returns the live board for a property, loading the full contact
// collection when the property is seen for the first time.
func (m *Manager) Board(propertyID string) (*Board, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if b, ok := m.boards[propertyID]; ok {
		return b, nil
	}
	contacts, err := m.store.LoadContacts(propertyID)
	if err != nil {
		return nil, err
	}
	b := NewBoard(propertyID, contacts, m.store)
	m.boards[propertyID] = b
	return b, nil
}
