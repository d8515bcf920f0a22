package prompt

import "context"

// MemoryStore implements Store with an in-memory slice, suitable for tests
// and local development without a database.
type MemoryStore struct {
	items []Record
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied records.
func NewMemoryStore(items []Record) *MemoryStore {
	return &MemoryStore{items: append([]Record(nil), items...)}
}

// Active returns the first active record matching the scope and, for room
// scope, the room identifier.
func (s *MemoryStore) Active(_ context.Context, scope Scope, roomID string) (Record, bool, error) {
	for _, item := range s.items {
		if !item.Active || item.Scope != scope {
			continue
		}
		if scope == ScopeRoom && item.RoomID != roomID {
			continue
		}
		return item, true, nil
	}
	return Record{}, false, nil
}
