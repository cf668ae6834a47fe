package session

import (
	"sync"

	"github.com/openkraft/plugval/internal/domain"
)

// DataStore is a thread-safe in-memory implementation of domain.SessionData.
type DataStore struct {
	mu     sync.Mutex
	values map[string]any
}

// NewDataStore returns an empty store.
func NewDataStore() *DataStore {
	return &DataStore{values: make(map[string]any)}
}

// ComputeIfAbsent returns the value under key, storing create() first if
// the key is missing. create runs under the store lock and must not call
// back into the store.
func (d *DataStore) ComputeIfAbsent(key string, create func() any) any {
	d.mu.Lock()
	defer d.mu.Unlock()
	if v, ok := d.values[key]; ok {
		return v
	}
	v := create()
	d.values[key] = v
	return v
}

// Get returns the value under key.
func (d *DataStore) Get(key string) (any, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	v, ok := d.values[key]
	return v, ok
}

// MemorySession is an in-memory build session. Its data store and
// properties live exactly as long as the session value.
type MemorySession struct {
	id    string
	props map[string]string
	data  *DataStore

	mu        sync.Mutex
	listeners []domain.SessionEndListener
	ended     bool
}

// New creates a session with a private copy of properties.
func New(id string, properties map[string]string) *MemorySession {
	props := make(map[string]string, len(properties))
	for k, v := range properties {
		props[k] = v
	}
	return &MemorySession{id: id, props: props, data: NewDataStore()}
}

// ID returns the session identifier.
func (s *MemorySession) ID() string { return s.id }

// Data returns the session-scoped key-value store.
func (s *MemorySession) Data() domain.SessionData { return s.data }

// Property looks up a session configuration property.
func (s *MemorySession) Property(key string) (string, bool) {
	v, ok := s.props[key]
	return v, ok
}

// Subscribe registers l for the end signal. Listeners subscribed after the
// session ended are never called.
func (s *MemorySession) Subscribe(l domain.SessionEndListener) {
	if l == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ended {
		return
	}
	s.listeners = append(s.listeners, l)
}

// End fires the end signal to all listeners in subscription order. Only
// the first call has any effect.
func (s *MemorySession) End() {
	s.mu.Lock()
	if s.ended {
		s.mu.Unlock()
		return
	}
	s.ended = true
	listeners := s.listeners
	s.listeners = nil
	s.mu.Unlock()

	for _, l := range listeners {
		l.SessionEnded(s)
	}
}

// Ended reports whether End has been called.
func (s *MemorySession) Ended() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ended
}
