package session

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

// Store keeps sessions in memory, expiring those untouched for ttl.
type Store struct {
	mu    sync.Mutex
	cache *cache.Cache
}

func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Store{cache: cache.New(ttl, 2*ttl)}
}

func (s *Store) Get(id string) (State, bool) {
	if id == "" {
		return State{}, false
	}
	v, found := s.cache.Get(id)
	if !found {
		return State{}, false
	}
	return v.(State), true
}

// Load returns the session for id, or a fresh one when id is unknown or
// expired. The bool reports whether a new session was created.
func (s *Store) Load(id string, now time.Time) (State, bool) {
	if st, ok := s.Get(id); ok {
		return st, false
	}
	st := New(now)
	s.Put(st)
	return st, true
}

// Put saves st and resets its expiry.
func (s *Store) Put(st State) {
	s.cache.Set(st.ID, st, cache.DefaultExpiration)
}

// Update applies fn to the session for id and saves the result. Updates are
// serialized so two requests of one visitor cannot both pass a check made on
// the same old state. On error the stored session is left untouched and the
// unchanged state is returned.
func (s *Store) Update(id string, fn func(State) (State, error)) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.Get(id)
	if !ok {
		st = State{ID: id}
	}
	next, err := fn(st)
	if err != nil {
		return st, err
	}
	next.ID = id
	s.Put(next)
	return next, nil
}

func (s *Store) Delete(id string) {
	s.cache.Delete(id)
}

func (s *Store) Count() int {
	return s.cache.ItemCount()
}
