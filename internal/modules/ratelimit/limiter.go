// README: Fixed-window request rate limiting.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Limiter admits or rejects one request for a client key.
type Limiter interface {
	Allow(ctx context.Context, key string) bool
}

type clientWindow struct {
	count   int
	resetAt time.Time
}

// Memory is a process-local fixed-window limiter. State is non-durable and
// per-instance: a redeploy resets it, and a multi-instance deployment splits
// the budget across instances. Single-instance deployments only; use Redis
// otherwise.
type Memory struct {
	mu      sync.Mutex
	max     int
	window  time.Duration
	clients map[string]*clientWindow

	now func() time.Time
}

func NewMemory(max int, windowLen time.Duration) *Memory {
	return &Memory{
		max:     max,
		window:  windowLen,
		clients: make(map[string]*clientWindow),
		now:     time.Now,
	}
}

// Allow increments the key's counter and reports whether the request fits in
// the current window. The first call for a key, or any call after the window
// elapsed, resets the count to 1 and starts a fresh window. Increments are
// serialized under the mutex so concurrent requests from one client never
// undercount.
func (m *Memory) Allow(_ context.Context, key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	w, ok := m.clients[key]
	if !ok || now.After(w.resetAt) {
		m.clients[key] = &clientWindow{count: 1, resetAt: now.Add(m.window)}
		return true
	}
	w.count++
	return w.count <= m.max
}
