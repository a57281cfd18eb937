package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps sessions in process memory. Sessions idle for longer
// than the TTL are dropped the next time any session is opened; a TTL of zero
// keeps sessions forever.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*memorySession
	ttl      time.Duration
	now      func() time.Time
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*memorySession),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Open implements Store.
func (s *MemoryStore) Open(_ context.Context, id string) (Session, error) {
	if id == "" {
		return nil, ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweep(now)

	sess, ok := s.sessions[id]
	if !ok {
		sess = &memorySession{id: id, values: make(map[string]string)}
		s.sessions[id] = sess
	}
	sess.lastSeen = now
	return sess, nil
}

// Len returns the number of live sessions.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Close implements Store.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = make(map[string]*memorySession)
	return nil
}

// sweep must be called with s.mu held.
func (s *MemoryStore) sweep(now time.Time) {
	if s.ttl <= 0 {
		return
	}
	for id, sess := range s.sessions {
		if now.Sub(sess.lastSeen) > s.ttl {
			delete(s.sessions, id)
		}
	}
}

type memorySession struct {
	id       string
	lastSeen time.Time // guarded by MemoryStore.mu

	mu     sync.Mutex
	values map[string]string
}

func (m *memorySession) ID() string { return m.id }

func (m *memorySession) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.get(key)
}

func (m *memorySession) get(key string) (string, error) {
	v, ok := m.values[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return v, nil
}

func (m *memorySession) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *memorySession) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// Atomic holds the session lock for the whole of fn, so concurrent sections
// on the same session run one after another.
func (m *memorySession) Atomic(ctx context.Context, fn func(Values) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	b := NewBatch(func(_ context.Context, key string) (string, error) {
		return m.get(key)
	})
	if err := fn(b); err != nil {
		return err
	}
	for k, v := range b.Writes() {
		m.values[k] = v
	}
	for _, k := range b.Deletes() {
		delete(m.values, k)
	}
	return nil
}
