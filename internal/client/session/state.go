package session

import "sync"

// State broadcasts the authenticated flag to any number of subscribers. New
// subscribers immediately receive the current value; later changes are pushed
// to every live subscription. Channels are conflated: a slow subscriber only
// ever sees the most recent value.
type State struct {
	mu            sync.Mutex
	authenticated bool
	subscribers   map[chan bool]struct{}
}

func NewState(authenticated bool) *State {
	return &State{
		authenticated: authenticated,
		subscribers:   make(map[chan bool]struct{}),
	}
}

// Authenticated returns the current value.
func (s *State) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

// Subscribe registers a new subscriber. The returned channel carries the
// current value right away, then every subsequent change.
func (s *State) Subscribe() <-chan bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch := make(chan bool, 1)
	ch <- s.authenticated
	s.subscribers[ch] = struct{}{}
	return ch
}

// Unsubscribe removes a subscription and closes its channel.
func (s *State) Unsubscribe(ch <-chan bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for sub := range s.subscribers {
		if sub == ch {
			delete(s.subscribers, sub)
			close(sub)
			return
		}
	}
}

// Set stores the new value and pushes it to all subscribers.
func (s *State) Set(authenticated bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authenticated = authenticated
	for sub := range s.subscribers {
		// Drop the stale value if the subscriber has not drained it yet.
		select {
		case <-sub:
		default:
		}
		sub <- authenticated
	}
}
