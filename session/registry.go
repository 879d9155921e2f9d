package session

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// entry pairs a session's state with the time it was last touched, so the
// reaper can expire abandoned sessions.
type entry struct {
	state    State
	lastSeen time.Time
}

// Registry holds the live sessions, keyed by an opaque session ID. It is the
// one piece of in-process shared state, so all access goes through the
// mutex; individual State values are still immutable copies.
type Registry struct {
	mu          sync.RWMutex
	sessions    map[string]*entry
	idleTimeout time.Duration
}

// NewRegistry creates an empty registry. Sessions untouched for longer than
// idleTimeout become eligible for reaping.
func NewRegistry(idleTimeout time.Duration) *Registry {
	return &Registry{
		sessions:    make(map[string]*entry),
		idleTimeout: idleTimeout,
	}
}

// Create registers a new authenticated session for username and returns its
// ID together with the initial logged-in state.
func (r *Registry) Create(username string) (string, State) {
	id := uuid.NewString()
	state := NewState().LoginSucceeded(username)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[id] = &entry{state: state, lastSeen: time.Now()}
	return id, state
}

// Get returns the state of the session with the given ID and refreshes its
// idle timer. The second result is false when no such session exists (never
// created, logged out, or reaped).
func (r *Registry) Get(id string) (State, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.sessions[id]
	if !ok {
		return State{}, false
	}
	e.lastSeen = time.Now()
	return e.state, true
}

// Update replaces the state of an existing session. It reports false when
// the session no longer exists, in which case nothing is stored.
func (r *Registry) Update(id string, state State) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.sessions[id]
	if !ok {
		return false
	}
	e.state = state
	e.lastSeen = time.Now()
	return true
}

// Delete removes a session. Used by logout so bearer tokens die server-side
// immediately rather than lingering until expiry.
func (r *Registry) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// reap removes sessions idle past the timeout, relative to now. Split out
// from the ticker loop so tests can drive it directly.
func (r *Registry) reap(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, e := range r.sessions {
		if now.Sub(e.lastSeen) > r.idleTimeout {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// StartReaper launches a background goroutine that periodically expires idle
// sessions. Closing stop shuts it down; the returned WaitGroup lets the
// caller wait for the goroutine to finish during graceful shutdown.
func (r *Registry) StartReaper(interval time.Duration, stop <-chan struct{}) *sync.WaitGroup {
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				log.Println("Session reaper stopping")
				return
			case now := <-ticker.C:
				if removed := r.reap(now); removed > 0 {
					log.Printf("Session reaper expired %d idle session(s)", removed)
				}
			}
		}
	}()
	return &wg
}
