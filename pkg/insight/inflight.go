package insight

import "sync"

// InFlight tracks which goals currently have a generation request
// running, keyed by goal id so concurrent requests for different goals
// stay independent.
type InFlight struct {
	mu     sync.Mutex
	active map[string]struct{}
}

// NewInFlight returns an empty tracker.
func NewInFlight() *InFlight {
	return &InFlight{active: map[string]struct{}{}}
}

// Begin marks id as in flight. It reports false when a request for the
// same id is already running.
func (f *InFlight) Begin(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, running := f.active[id]; running {
		return false
	}
	f.active[id] = struct{}{}
	return true
}

// End clears the in-flight mark for id.
func (f *InFlight) End(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.active, id)
}

// Active reports whether a request for id is currently running.
func (f *InFlight) Active(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, running := f.active[id]
	return running
}
