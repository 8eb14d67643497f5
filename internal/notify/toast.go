package notify

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindWarning Kind = "warning"
	KindInfo    Kind = "info"
)

const DefaultLifetime = 5 * time.Second

type Toast struct {
	ID        string        `json:"id"`
	Kind      Kind          `json:"kind"`
	Message   string        `json:"message"`
	Lifetime  time.Duration `json:"-"`
	CreatedAt time.Time     `json:"createdAt"`
}

// Sink holds the transient notifications of one session. Each toast is
// dismissed automatically once its lifetime elapses.
type Sink struct {
	lifetime time.Duration
	now      func() time.Time

	mu     sync.Mutex
	toasts []Toast
	timers map[string]*time.Timer
	subs   map[uint64]func([]Toast)
	nextID uint64
	closed bool
	done   chan struct{}
}

func NewSink(lifetime time.Duration) *Sink {
	if lifetime <= 0 {
		lifetime = DefaultLifetime
	}
	return &Sink{
		lifetime: lifetime,
		now:      time.Now,
		toasts:   []Toast{},
		timers:   make(map[string]*time.Timer),
		subs:     make(map[uint64]func([]Toast)),
		done:     make(chan struct{}),
	}
}

func (s *Sink) Post(kind Kind, message string) Toast {
	t := Toast{
		ID:        uuid.NewString(),
		Kind:      kind,
		Message:   message,
		Lifetime:  s.lifetime,
		CreatedAt: s.now(),
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return t
	}
	s.toasts = append(s.toasts, t)
	s.timers[t.ID] = time.AfterFunc(s.lifetime, func() { s.expire(t.ID) })
	snapshot, subs := s.snapshotLocked()
	s.mu.Unlock()

	notifyAll(subs, snapshot)
	return t
}

func (s *Sink) Success(message string) Toast { return s.Post(KindSuccess, message) }
func (s *Sink) Error(message string) Toast   { return s.Post(KindError, message) }

// Dismiss removes the toast with id. It reports whether a toast was removed;
// dismissing twice is harmless.
func (s *Sink) Dismiss(id string) bool {
	s.mu.Lock()
	i := slices.IndexFunc(s.toasts, func(t Toast) bool { return t.ID == id })
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	s.toasts = slices.Delete(s.toasts, i, i+1)
	if timer, ok := s.timers[id]; ok {
		timer.Stop()
		delete(s.timers, id)
	}
	snapshot, subs := s.snapshotLocked()
	s.mu.Unlock()

	notifyAll(subs, snapshot)
	return true
}

func (s *Sink) expire(id string) {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if !closed {
		s.Dismiss(id)
	}
}

func (s *Sink) List() []Toast {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Toast, len(s.toasts))
	copy(out, s.toasts)
	return out
}

// Subscribe registers fn to receive the full toast list after every change.
// fn runs outside the sink's lock and must not block for long.
func (s *Sink) Subscribe(fn func([]Toast)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

// Subscribers reports how many subscriptions are open.
func (s *Sink) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

// Done is closed by Close. Subscribers receive no further updates after it.
func (s *Sink) Done() <-chan struct{} { return s.done }

// Close stops all pending dismissal timers. Posts after Close are dropped.
func (s *Sink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	close(s.done)
	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
	clear(s.subs)
}

func (s *Sink) snapshotLocked() ([]Toast, []func([]Toast)) {
	subs := make([]func([]Toast), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	toasts := make([]Toast, len(s.toasts))
	copy(toasts, s.toasts)
	return toasts, subs
}

func notifyAll(subs []func([]Toast), toasts []Toast) {
	for _, fn := range subs {
		fn(append([]Toast{}, toasts...))
	}
}
