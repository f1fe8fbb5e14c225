package memory

import (
	"time"

	"phonefinder-be/internal/entity"
	"phonefinder-be/pkg/advisor/conversation"

	"github.com/patrickmn/go-cache"
)

const (
	resultKey  = "search:current"
	sessionKey = "chat:current"
)

// ResultRepository holds the latest recommendation snapshot and the chat
// session scoped to it. Both live in memory only: a new search replaces the
// snapshot and the session together, and nothing here is ever persisted.
type ResultRepository struct {
	cache *cache.Cache
}

func NewResultRepository() *ResultRepository {
	// Results idle for a day are stale anyway; let the cache reap them.
	c := cache.New(24*time.Hour, 1*time.Hour)
	return &ResultRepository{
		cache: c,
	}
}

func (r *ResultRepository) SaveResult(result *entity.SearchResult) {
	r.cache.Set(resultKey, result, cache.DefaultExpiration)
}

func (r *ResultRepository) GetResult() (*entity.SearchResult, bool) {
	if x, found := r.cache.Get(resultKey); found {
		return x.(*entity.SearchResult), true
	}
	return nil, false
}

func (r *ResultRepository) SaveSession(session *conversation.Session) {
	r.cache.Set(sessionKey, session, cache.DefaultExpiration)
}

func (r *ResultRepository) GetSession() (*conversation.Session, bool) {
	if x, found := r.cache.Get(sessionKey); found {
		return x.(*conversation.Session), true
	}
	return nil, false
}

// Clear drops the snapshot and its session together.
func (r *ResultRepository) Clear() {
	r.cache.Delete(resultKey)
	r.cache.Delete(sessionKey)
}
