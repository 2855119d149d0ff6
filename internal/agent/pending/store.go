// Package pending holds proposed destructive actions awaiting explicit user
// confirmation. Entries live until consumed, evicted by capacity, or expired
// by TTL; a consumed token can never be confirmed a second time.
package pending

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"movi-agent/internal/model"
)

// Defaults bound the store when config leaves them unset.
const (
	DefaultTTL      = 15 * time.Minute
	DefaultCapacity = 512
)

// Store is the pending-action table. Take is atomic check-and-delete: under
// concurrent confirms for the same token, at most one caller receives the
// action.
type Store interface {
	Create(kind model.ActionKind, details model.PendingDetails) model.PendingAction
	Get(token string) (model.PendingAction, bool)
	Take(token string) (model.PendingAction, bool)
	Restore(p model.PendingAction)
}

type lruStore struct {
	mu    sync.Mutex
	cache *expirable.LRU[string, model.PendingAction]
}

// New creates a Store backed by a TTL-expiring LRU.
func New(ttl time.Duration, capacity int) Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &lruStore{
		cache: expirable.NewLRU[string, model.PendingAction](capacity, nil, ttl),
	}
}

func (s *lruStore) Create(kind model.ActionKind, details model.PendingDetails) model.PendingAction {
	p := model.PendingAction{
		Token:     newToken(),
		Kind:      kind,
		Details:   details,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.cache.Add(p.Token, p)
	s.mu.Unlock()

	return p
}

func (s *lruStore) Get(token string) (model.PendingAction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Get(token)
}

// Take removes and returns the action under one lock, so two concurrent
// confirms cannot both observe the entry.
func (s *lruStore) Take(token string) (model.PendingAction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.cache.Get(token)
	if !ok {
		return model.PendingAction{}, false
	}
	s.cache.Remove(token)
	return p, true
}

// Restore puts a taken action back under its original token, used when the
// backend call failed and the user should be able to retry. The TTL restarts.
func (s *lruStore) Restore(p model.PendingAction) {
	s.mu.Lock()
	s.cache.Add(p.Token, p)
	s.mu.Unlock()
}
