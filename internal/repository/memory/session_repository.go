package memory

import (
	"time"

	"afrimigrate-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

type SessionRepository struct {
	cache *cache.Cache
}

// NewSessionRepository keeps sessions for ttl after their last Save and
// purges expired ones every ttl/6. onEvict, when set, runs for every
// session that expires or is deleted.
func NewSessionRepository(ttl time.Duration, onEvict func(*store.AssistantSession)) *SessionRepository {
	c := cache.New(ttl, ttl/6)
	if onEvict != nil {
		c.OnEvicted(func(_ string, v interface{}) {
			onEvict(v.(*store.AssistantSession))
		})
	}
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(session *store.AssistantSession) {
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionID string) (*store.AssistantSession, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.AssistantSession), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}

func (r *SessionRepository) Count() int {
	return r.cache.ItemCount()
}
