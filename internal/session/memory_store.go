package session

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

// MemoryStore keeps session markers in process. Used when no Redis is
// reachable; markers do not survive a restart, which only shortens the
// window in which logout has an observable effect.
type MemoryStore struct {
	cache *cache.Cache
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	// Purge expired markers every 10 minutes
	return &MemoryStore{
		cache: cache.New(ttl, 10*time.Minute),
	}
}

func (s *MemoryStore) Save(_ context.Context, session *Session) error {
	s.cache.Set(sessionKey(session.UserID), session, cache.DefaultExpiration)
	return nil
}

func (s *MemoryStore) Get(_ context.Context, userID string) (*Session, bool, error) {
	if x, found := s.cache.Get(sessionKey(userID)); found {
		return x.(*Session), true, nil
	}
	return nil, false, nil
}

func (s *MemoryStore) Delete(_ context.Context, userID string) error {
	s.cache.Delete(sessionKey(userID))
	return nil
}
