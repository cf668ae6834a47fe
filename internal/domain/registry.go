package domain

import "sync"

// registryKey is the session data key the registry is stored under.
const registryKey = "plugval.validation.issues"

// IssueRegistry maps plugin keys to their IssueSet for one build session.
// Keys iterate in first-insertion order.
type IssueRegistry struct {
	mu    sync.RWMutex
	order []string
	sets  map[string]*IssueSet
}

// NewIssueRegistry returns an empty registry.
func NewIssueRegistry() *IssueRegistry {
	return &IssueRegistry{sets: make(map[string]*IssueSet)}
}

// GetOrCreate returns the IssueSet for pluginKey, creating it on first use.
func (r *IssueRegistry) GetOrCreate(pluginKey string) *IssueSet {
	r.mu.RLock()
	set, ok := r.sets[pluginKey]
	r.mu.RUnlock()
	if ok {
		return set
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if set, ok := r.sets[pluginKey]; ok {
		return set
	}
	set = NewIssueSet()
	r.sets[pluginKey] = set
	r.order = append(r.order, pluginKey)
	return set
}

// Get returns the IssueSet for pluginKey if one exists.
func (r *IssueRegistry) Get(pluginKey string) (*IssueSet, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	set, ok := r.sets[pluginKey]
	return set, ok
}

// Len returns the number of plugins with at least one report.
func (r *IssueRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Keys returns the plugin keys in first-insertion order.
func (r *IssueRegistry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Snapshot copies every IssueSet, each under its own lock. Reports that
// race with the snapshot may or may not be included.
func (r *IssueRegistry) Snapshot() []IssueSetSnapshot {
	keys := r.Keys()
	out := make([]IssueSetSnapshot, 0, len(keys))
	for _, k := range keys {
		set, ok := r.Get(k)
		if !ok {
			continue
		}
		out = append(out, set.Snapshot(k))
	}
	return out
}

// RegistryFor returns the session's registry, attaching a new one to the
// session data on first use. It returns nil when the session or its data
// store is unavailable, or when the key holds something else.
func RegistryFor(s Session) *IssueRegistry {
	if s == nil {
		return nil
	}
	data := s.Data()
	if data == nil {
		return nil
	}
	v := data.ComputeIfAbsent(registryKey, func() any { return NewIssueRegistry() })
	reg, _ := v.(*IssueRegistry)
	return reg
}
