package tabs

// PreferenceStore is the durable key/value mapping the resolver persists
// the active tab to. Implementations are free to back it with anything
// offering get-or-default and set semantics; no transactions are needed
// since writes are synchronous and last-writer-wins.
type PreferenceStore interface {
	// Get returns the stored value for key, or "" when unset.
	Get(key string) (string, error)
	// Set stores value under key, replacing any previous value.
	Set(key, value string) error
}

// MemoryStore is an in-memory PreferenceStore for tests and for running
// without durable state.
type MemoryStore struct {
	values map[string]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get returns the stored value for key, or "" when unset.
func (s *MemoryStore) Get(key string) (string, error) {
	return s.values[key], nil
}

// Set stores value under key.
func (s *MemoryStore) Set(key, value string) error {
	s.values[key] = value
	return nil
}
