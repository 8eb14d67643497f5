package events

import "sync"

// Sequencer hands out increasing sequence numbers per partition key. It is
// process-local; numbering restarts with the process.
type Sequencer struct {
	mu   sync.Mutex
	next map[string]int64
}

func NewSequencer() *Sequencer {
	return &Sequencer{next: make(map[string]int64)}
}

func (s *Sequencer) NextSequence(partitionKey string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.next[partitionKey]++
	return s.next[partitionKey]
}

// Forget drops the counter of a partition that will not publish again.
func (s *Sequencer) Forget(partitionKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.next, partitionKey)
}
