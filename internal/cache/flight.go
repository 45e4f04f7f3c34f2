package cache

import (
	"sync"

	"prezo/internal/core/domain"
)

// Guard rejects duplicate write submissions. Each write action claims a
// (resource, action) key before issuing its request and releases it
// when the request resolves; a second submission for the same key while
// the first is pending fails with domain.ErrDuplicateAction instead of
// producing a second request.
type Guard struct {
	mu     sync.Mutex
	active map[string]struct{}
}

// NewGuard builds an empty guard.
func NewGuard() *Guard {
	return &Guard{active: make(map[string]struct{})}
}

// Begin claims the key. The returned release must be called exactly
// once, success or failure, so the action can be re-invoked afterwards.
func (g *Guard) Begin(key string) (release func(), err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.active[key]; busy {
		return nil, domain.ErrDuplicateAction
	}
	g.active[key] = struct{}{}
	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.active, key)
			g.mu.Unlock()
		})
	}, nil
}

// InFlight reports whether the key is currently claimed.
func (g *Guard) InFlight(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, busy := g.active[key]
	return busy
}
