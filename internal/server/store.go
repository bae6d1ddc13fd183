package server

import "sync"

// store keeps the most recent accepted batches.
type store struct {
	mu    sync.Mutex
	keep  int
	items []Received
}

func newStore(keep int) *store {
	return &store{keep: keep}
}

func (s *store) add(r Received) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append(s.items, r)
	if over := len(s.items) - s.keep; over > 0 {
		s.items = append(s.items[:0:0], s.items[over:]...)
	}
}

// list returns the kept batches, newest first.
func (s *store) list() []Received {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Received, 0, len(s.items))
	for i := len(s.items) - 1; i >= 0; i-- {
		out = append(out, s.items[i])
	}
	return out
}
