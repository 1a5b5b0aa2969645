// pkg/memcache/ttl_store.go
package mem

import (
	"sync"
	"time"
)

type StringStore interface {
	Set(key string, value string, ttl time.Duration)

	// Get returns the value for key if present and not expired.
	Get(key string) (string, bool)

	Delete(key string)
}

type entry struct {
	value     string
	expiresAt time.Time
}

type TTLStore struct {
	mu   sync.RWMutex
	data map[string]entry
	now  func() time.Time
}

func NewTTLStore() *TTLStore {
	return &TTLStore{
		data: make(map[string]entry),
		now:  time.Now,
	}
}

func (s *TTLStore) Set(key string, value string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = entry{
		value:     value,
		expiresAt: s.now().Add(ttl),
	}
}

func (s *TTLStore) Get(key string) (string, bool) {
	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return "", false
	}
	now := s.now()
	if !now.After(e.expiresAt) {
		return e.value, true
	}

	// A Set may have landed between the two locks.
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok = s.data[key]
	if !ok {
		return "", false
	}
	if now.After(e.expiresAt) {
		delete(s.data, key)
		return "", false
	}
	return e.value, true
}

func (s *TTLStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
}

// Purge drops every expired entry and reports how many were removed.
func (s *TTLStore) Purge() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for k, e := range s.data {
		if now.After(e.expiresAt) {
			delete(s.data, k)
			removed++
		}
	}
	return removed
}

// StartJanitor purges expired entries every interval until stop is called.
func (s *TTLStore) StartJanitor(interval time.Duration) (stop func()) {
	done := make(chan struct{})
	var once sync.Once
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.Purge()
			case <-done:
				return
			}
		}
	}()
	return func() { once.Do(func() { close(done) }) }
}
