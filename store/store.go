package store

import (
	"sync"
	"time"
)

// Event describes a completed dispatch. Subscribers receive one per action;
// the counts let consumers decide whether to refetch without holding state.
type Event struct {
	Action    ActionType `json:"action"`
	Teachers  int        `json:"teachers"`
	Proposals int        `json:"proposals"`
	At        time.Time  `json:"at"`
}

// Store owns the state exclusively. All mutation goes through Dispatch and
// all reads go through Snapshot, which hands out deep copies.
type Store struct {
	mu    sync.RWMutex
	state State
	subs  map[chan Event]struct{}
}

func New(initial State) *Store {
	return &Store{
		state: initial.Clone(),
		subs:  make(map[chan Event]struct{}),
	}
}

// Dispatch applies the reducer and notifies subscribers. It returns the
// resulting state as a copy.
func (s *Store) Dispatch(action Action) State {
	s.mu.Lock()
	s.state = Reduce(s.state, action)
	next := s.state.Clone()
	event := Event{
		Action:    action.Type,
		Teachers:  len(s.state.Teachers),
		Proposals: len(s.state.Proposals),
		At:        time.Now(),
	}
	for ch := range s.subs {
		select {
		case ch <- event:
		default:
			// Subscriber is not keeping up; dropping beats blocking dispatch.
		}
	}
	s.mu.Unlock()
	return next
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Subscribe registers a change-event channel. The returned function
// unsubscribes and closes it.
func (s *Store) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, 16)
	s.mu.Lock()
	s.subs[ch] = struct{}{}
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		if _, ok := s.subs[ch]; ok {
			delete(s.subs, ch)
			close(ch)
		}
		s.mu.Unlock()
	}
	return ch, cancel
}
