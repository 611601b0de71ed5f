package property

import "sync"

// Change describes a property transition.
type Change struct {
	ID       ID
	Previous Value
	Current  Value
}

// Listener is notified of property changes. Listeners run synchronously
// on the goroutine that applied the change and must not block.
type Listener func(Change)

// Update is a single inbound value in a batch.
type Update struct {
	ID    ID
	Value Value
}

// Store holds the latest known value of every property.
type Store struct {
	mu       sync.RWMutex
	values   map[ID]Value
	watchers map[ID][]Listener
	global   []Listener
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		values:   make(map[ID]Value),
		watchers: make(map[ID][]Listener),
	}
}

// AddListener registers a listener for one property. In a session listeners
// run while the device mirror is locked, so they must not issue commands
// synchronously.
func (s *Store) AddListener(id ID, l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watchers[id] = append(s.watchers[id], l)
}

// AddGlobalListener registers a listener for every property.
func (s *Store) AddGlobalListener(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.global = append(s.global, l)
}

// Get returns the current value of a property.
func (s *Store) Get(id ID) (Value, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[id]
	return v, ok
}

// Value returns the current value of a property, or None.
func (s *Store) Value(id ID) Value {
	v, _ := s.Get(id)
	return v
}

// Int returns the property as an integer.
func (s *Store) Int(id ID) (int64, bool) {
	return s.Value(id).AsInt()
}

// IntOr returns the property as an integer, or def if absent.
func (s *Store) IntOr(id ID, def int64) int64 {
	if n, ok := s.Int(id); ok {
		return n
	}
	return def
}

// Bool returns the property as a boolean.
func (s *Store) Bool(id ID) (bool, bool) {
	return s.Value(id).AsBool()
}

// Str returns the property as a string.
func (s *Store) Str(id ID) (string, bool) {
	return s.Value(id).AsString()
}

// Has reports whether the property has a value.
func (s *Store) Has(id ID) bool {
	_, ok := s.Get(id)
	return ok
}

// Apply sets a single property and notifies listeners when it changed.
// Applying None removes the property.
func (s *Store) Apply(id ID, v Value) (Change, bool) {
	c, changed := s.set(id, v)
	if changed {
		s.Fire([]Change{c})
	}
	return c, changed
}

// Remove deletes a property and notifies listeners if it was present.
func (s *Store) Remove(id ID) (Change, bool) {
	return s.Apply(id, None())
}

// ApplyBatch sets several properties without notifying listeners and
// returns the effective changes in batch order. Callers pass the result
// to Fire once they are ready to publish it.
func (s *Store) ApplyBatch(updates []Update) []Change {
	var changes []Change
	for _, u := range updates {
		if c, changed := s.set(u.ID, u.Value); changed {
			changes = append(changes, c)
		}
	}
	return changes
}

// Fire notifies listeners of previously applied changes.
func (s *Store) Fire(changes []Change) {
	if len(changes) == 0 {
		return
	}
	s.mu.RLock()
	global := append([]Listener(nil), s.global...)
	perID := make([][]Listener, len(changes))
	for i, c := range changes {
		perID[i] = append([]Listener(nil), s.watchers[c.ID]...)
	}
	s.mu.RUnlock()

	for i, c := range changes {
		for _, l := range perID[i] {
			l(c)
		}
		for _, l := range global {
			l(c)
		}
	}
}

// Snapshot returns a copy of all current values.
func (s *Store) Snapshot() map[ID]Value {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[ID]Value, len(s.values))
	for id, v := range s.values {
		out[id] = v
	}
	return out
}

// Len returns the number of properties with a value.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}

func (s *Store) set(id ID, v Value) (Change, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, had := s.values[id]
	if v.IsNone() {
		if !had {
			return Change{}, false
		}
		delete(s.values, id)
		return Change{ID: id, Previous: prev, Current: v}, true
	}
	if had && prev.Equal(v) {
		return Change{}, false
	}
	s.values[id] = v
	return Change{ID: id, Previous: prev, Current: v}, true
}
