package session

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/cart"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/catalog"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/checkout"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/notify"
)

const (
	DefaultIdleTimeout = 30 * time.Minute
	minSweepInterval   = time.Second
)

type Deps struct {
	Catalog catalog.Lister
	Orders  checkout.OrderSubmitter
	Events  checkout.EventPublisher // optional
	Logger  *log.Logger

	PageSize      int
	ToastLifetime time.Duration
	RedirectDelay time.Duration
	IdleTimeout   time.Duration

	// OnEvict is called with the id of every session dropped for idleness.
	OnEvict func(id string)
}

// Manager keeps sessions in memory, keyed by session id. Nothing is
// persisted; an evicted or restarted session starts with an empty cart.
type Manager struct {
	deps Deps
	now  func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager(deps Deps) *Manager {
	if deps.IdleTimeout <= 0 {
		deps.IdleTimeout = DefaultIdleTimeout
	}
	if deps.Logger == nil {
		deps.Logger = log.Default()
	}
	return &Manager{
		deps:     deps,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

// Resolve returns the session for id, creating it when unknown, and marks
// it as used.
func (m *Manager) Resolve(id string) *Session {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		s = m.newSession(id)
		m.sessions[id] = s
	}
	s.touch(now)
	return s
}

func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	return s, ok
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep evicts sessions idle for longer than the idle timeout and reports
// how many were dropped. A session with an open toast stream counts as in
// use.
func (m *Manager) Sweep() int {
	now := m.now()
	cutoff := now.Add(-m.deps.IdleTimeout)

	m.mu.Lock()
	var evicted []*Session
	for id, s := range m.sessions {
		if s.toasts.Subscribers() > 0 {
			s.touch(now)
			continue
		}
		if s.LastSeen().Before(cutoff) {
			evicted = append(evicted, s)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, s := range evicted {
		s.close()
		if m.deps.OnEvict != nil {
			m.deps.OnEvict(s.ID)
		}
	}
	return len(evicted)
}

// Run sweeps periodically until ctx is done, then closes every session.
func (m *Manager) Run(ctx context.Context) {
	interval := max(m.deps.IdleTimeout/4, minSweepInterval)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.closeAll()
			return
		case <-ticker.C:
			if n := m.Sweep(); n > 0 {
				m.deps.Logger.Printf("session sweep: evicted=%d active=%d", n, m.Len())
			}
		}
	}
}

func (m *Manager) closeAll() {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	for _, s := range sessions {
		s.close()
	}
}

func (m *Manager) newSession(id string) *Session {
	store := cart.NewStore()
	toasts := notify.NewSink(m.deps.ToastLifetime)

	return &Session{
		ID:      id,
		cart:    store,
		toasts:  toasts,
		browser: catalog.NewBrowser(m.deps.Catalog, m.deps.PageSize),
		checkout: checkout.NewWorkflow(checkout.Deps{
			Cart:          store,
			Orders:        m.deps.Orders,
			Notifier:      toasts,
			Events:        m.deps.Events,
			Logger:        m.deps.Logger,
			SessionID:     id,
			RedirectDelay: m.deps.RedirectDelay,
		}),
	}
}
