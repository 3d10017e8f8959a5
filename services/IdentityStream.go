package services

import (
	"sync"

	"inkwell/models"
)

// identityStream broadcasts identity changes to subscribers. A new
// subscriber immediately receives the current identity, which may be nil
// when nobody is signed in.
type identityStream struct {
	mu      sync.Mutex
	current *models.User
	subs    map[chan *models.User]struct{}
}

func newIdentityStream() *identityStream {
	return &identityStream{subs: make(map[chan *models.User]struct{})}
}

// Subscribe returns a channel that yields the current identity followed by
// every subsequent change. A subscriber that stops draining its channel
// misses events rather than blocking the emitter.
func (s *identityStream) Subscribe() <-chan *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan *models.User, 16)
	ch <- s.current
	s.subs[ch] = struct{}{}
	return ch
}

// Unsubscribe closes the channel; the stream is not restartable.
func (s *identityStream) Unsubscribe(ch <-chan *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for sub := range s.subs {
		if sub == ch {
			delete(s.subs, sub)
			close(sub)
			return
		}
	}
}

func (s *identityStream) Set(user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = user
	for sub := range s.subs {
		select {
		case sub <- user:
		default:
		}
	}
}

func (s *identityStream) Current() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}
