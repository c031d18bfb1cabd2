package flight

import (
	"context"
	"sync"
	"time"

	"flightfinder/pkg/idgen"
	"flightfinder/pkg/logger"
)

// DefaultSessionIdle is how long an untouched session is kept.
const DefaultSessionIdle = 30 * time.Minute

type sessionEntry struct {
	session  *Session
	lastSeen time.Time
}

// SessionStore keeps sessions in memory only.
type SessionStore struct {
	newSession func() *Session
	ids        idgen.Generator
	idle       time.Duration
	logger     logger.Logger
	now        func() time.Time

	mu       sync.Mutex
	sessions map[string]*sessionEntry
}

func NewSessionStore(newSession func() *Session, ids idgen.Generator, idle time.Duration, log logger.Logger) *SessionStore {
	if idle <= 0 {
		idle = DefaultSessionIdle
	}
	return &SessionStore{
		newSession: newSession,
		ids:        ids,
		idle:       idle,
		logger:     log,
		now:        time.Now,
		sessions:   make(map[string]*sessionEntry),
	}
}

// Get returns the session for id and marks it as used.
func (st *SessionStore) Get(id string) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	entry, ok := st.sessions[id]
	if !ok {
		return nil, false
	}
	entry.lastSeen = st.now()
	return entry.session, true
}

func (st *SessionStore) Create() (string, *Session) {
	id := st.ids.GenerateString()
	session := st.newSession()

	st.mu.Lock()
	st.sessions[id] = &sessionEntry{session: session, lastSeen: st.now()}
	st.mu.Unlock()

	return id, session
}

// GetOrCreate returns the session for id, or a fresh one when id is unknown.
func (st *SessionStore) GetOrCreate(id string) (string, *Session) {
	if id != "" {
		if session, ok := st.Get(id); ok {
			return id, session
		}
	}
	return st.Create()
}

func (st *SessionStore) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// Prune closes and drops sessions idle for longer than the configured window.
func (st *SessionStore) Prune() int {
	cutoff := st.now().Add(-st.idle)

	st.mu.Lock()
	var expired []*Session
	for id, entry := range st.sessions {
		if entry.lastSeen.Before(cutoff) {
			expired = append(expired, entry.session)
			delete(st.sessions, id)
		}
	}
	st.mu.Unlock()

	for _, session := range expired {
		session.Close()
	}
	if len(expired) > 0 {
		st.logger.Debug("pruned idle sessions", logger.Field{Key: "count", Value: len(expired)})
	}
	return len(expired)
}

// Run prunes on every tick until ctx is done.
func (st *SessionStore) Run(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			st.Prune()
		}
	}
}
