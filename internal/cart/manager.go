package cart

import (
	"context"
	"io"
	"log"
	"sync"

	"ravio-storefront/internal/cartstore"
	"golang.org/x/sync/singleflight"
)

const keyPrefix = "cart:"

// Manager hands out one Engine per session. The first access for a session
// hydrates it from the snapshot store; concurrent first accesses are collapsed
// with singleflight so a session is hydrated at most once.
type Manager struct {
	store  cartstore.Store
	logger *log.Logger
	sfg    singleflight.Group

	mu      sync.Mutex
	engines map[string]*Engine
}

func NewManager(store cartstore.Store, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Manager{
		store:   store,
		logger:  logger,
		engines: make(map[string]*Engine),
	}
}

// Cart returns the engine for the session, hydrating it on first use.
func (m *Manager) Cart(ctx context.Context, sessionID string) *Engine {
	m.mu.Lock()
	if eng, ok := m.engines[sessionID]; ok {
		m.mu.Unlock()
		return eng
	}
	m.mu.Unlock()

	v, _, _ := m.sfg.Do(sessionID, func() (interface{}, error) {
		eng := NewEngine(keyPrefix+sessionID, m.store, m.logger)
		eng.Hydrate(ctx)
		m.mu.Lock()
		m.engines[sessionID] = eng
		m.mu.Unlock()
		return eng, nil
	})
	return v.(*Engine)
}

// Evict drops the session's engine from memory; the next access hydrates it
// again. Called after checkout so completed sessions do not pile up.
func (m *Manager) Evict(sessionID string) {
	m.mu.Lock()
	delete(m.engines, sessionID)
	m.mu.Unlock()
}
