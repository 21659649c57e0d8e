// Package envstore abstracts the external key-value storage behind
// environment variables, so the registration logic can run against the
// user's persisted environment, the process environment, or an in-memory
// fake in tests.
package envstore

// Store reads and writes named environment values.
type Store interface {
	// Get returns the current value of name. ok is false when the
	// variable is unset, which callers treat as an empty value.
	Get(name string) (value string, ok bool)

	// Set persists a new value for name.
	Set(name, value string) error
}

// Memory is an in-memory Store for tests.
type Memory struct {
	values map[string]string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// Get implements Store.
func (m *Memory) Get(name string) (string, bool) {
	v, ok := m.values[name]
	return v, ok
}

// Set implements Store.
func (m *Memory) Set(name, value string) error {
	m.values[name] = value
	return nil
}
