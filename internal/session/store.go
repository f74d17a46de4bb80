// Package session keeps gate sessions in memory for the secret-page flow.
//
// Sessions are process-lifetime only and never persisted. A background
// reaper evicts sessions idle past a TTL so abandoned visitors don't grow
// the map without bound; eviction stands in for the browser's
// "state lost on reload" behavior.
package session

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/alfredjeanlab/bdayd/internal/gate"
	"github.com/alfredjeanlab/bdayd/internal/idgen"
)

// ErrNotFound is returned for unknown or already-evicted session IDs.
var ErrNotFound = errors.New("session not found")

// DefaultTTL is how long an idle session survives before eviction.
const DefaultTTL = 30 * time.Minute

// DefaultSweepInterval is how often the reaper scans for idle sessions.
const DefaultSweepInterval = time.Minute

// Store is an in-memory map of gate sessions keyed by session ID.
type Store struct {
	secrets gate.Secrets
	ttl     time.Duration

	mu       sync.RWMutex
	sessions map[string]*entry

	reaperStop chan struct{}
	reaperDone chan struct{}
}

type entry struct {
	sess     gate.Session
	lastSeen time.Time
}

// New creates a store validating against the given secrets. ttl <= 0 uses
// DefaultTTL.
func New(secrets gate.Secrets, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		secrets:  secrets,
		ttl:      ttl,
		sessions: make(map[string]*entry),
	}
}

// Create starts a fresh session at the first gate and returns its ID.
func (s *Store) Create() (string, gate.Session, error) {
	id, err := idgen.Session()
	if err != nil {
		return "", gate.Session{}, err
	}

	sess := gate.New()
	s.mu.Lock()
	s.sessions[id] = &entry{sess: sess, lastSeen: time.Now()}
	s.mu.Unlock()
	return id, sess, nil
}

// Get returns the current state of a session.
func (s *Store) Get(id string) (gate.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.sessions[id]
	if !ok {
		return gate.Session{}, ErrNotFound
	}
	return e.sess, nil
}

// Apply runs one gate event against a session atomically. The stored
// session advances even when the event returns a validation error, because
// a quiz mismatch both errors and moves state (back to Q1 or to Failed).
func (s *Store) Apply(id string, ev gate.Event) (gate.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[id]
	if !ok {
		return gate.Session{}, ErrNotFound
	}

	next, err := gate.Apply(s.secrets, e.sess, ev)
	e.sess = next
	e.lastSeen = time.Now()
	return next, err
}

// Delete removes a session.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// StartReaper launches a background goroutine that evicts idle sessions.
// Call Stop to shut it down.
func (s *Store) StartReaper(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	s.reaperStop = make(chan struct{})
	s.reaperDone = make(chan struct{})

	go s.reapLoop(interval)
	slog.Info("session reaper started", "ttl", s.ttl, "sweep_interval", interval)
}

// Stop shuts down the reaper goroutine.
func (s *Store) Stop() {
	if s.reaperStop != nil {
		close(s.reaperStop)
		<-s.reaperDone
		s.reaperStop = nil
		s.reaperDone = nil
	}
}

func (s *Store) reapLoop(interval time.Duration) {
	defer close(s.reaperDone)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.reaperStop:
			return
		case <-ticker.C:
			s.sweep(time.Now())
		}
	}
}

func (s *Store) sweep(now time.Time) {
	var evicted int
	s.mu.Lock()
	for id, e := range s.sessions {
		if now.Sub(e.lastSeen) > s.ttl {
			delete(s.sessions, id)
			evicted++
		}
	}
	s.mu.Unlock()

	if evicted > 0 {
		slog.Info("session reaper evicted idle sessions", "count", evicted)
	}
}
