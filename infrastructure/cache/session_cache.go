package cache

import (
	"sync"

	"turnify/models"
)

// UserSessionCache stores portal sessions by token. Expired entries are
// evicted on lookup, so a stale token always misses and falls through to
// the database.
type UserSessionCache struct {
	mu       sync.Mutex
	sessions map[string]models.Session
}

func NewUserSessionCache() *UserSessionCache {
	return &UserSessionCache{sessions: make(map[string]models.Session)}
}

func (c *UserSessionCache) AddSession(s models.Session) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessions[s.ID] = s
}

func (c *UserSessionCache) FindSessionBySessionToken(token string) (models.Session, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.sessions[token]
	if !ok {
		return models.Session{}, false
	}
	if s.Expired() {
		delete(c.sessions, token)
		return models.Session{}, false
	}
	return s, true
}

func (c *UserSessionCache) DeleteSessionBySessionToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sessions, token)
}
