package offline

import (
	"io"
	"net/http"
	"sync"
)

// CachedResponse is a full HTTP response snapshot, keyed by request URL
type CachedResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Snapshot copies resp into a cacheable form, leaving resp.Body readable
func Snapshot(resp *http.Response) (*CachedResponse, error) {
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, err
	}
	return &CachedResponse{
		StatusCode: resp.StatusCode,
		Header:     resp.Header.Clone(),
		Body:       body,
	}, nil
}

// WriteTo replays the snapshot onto a live response
func (cr *CachedResponse) WriteTo(w http.ResponseWriter) {
	for k, vs := range cr.Header {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	w.WriteHeader(cr.StatusCode)
	w.Write(cr.Body)
}

// Cache is one named response store
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*CachedResponse
}

func newCache() *Cache {
	return &Cache{entries: make(map[string]*CachedResponse)}
}

func (c *Cache) Get(key string) (*CachedResponse, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cr, ok := c.entries[key]
	return cr, ok
}

func (c *Cache) Put(key string, cr *CachedResponse) {
	c.mu.Lock()
	c.entries[key] = cr
	c.mu.Unlock()
}

func (c *Cache) Delete(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// Keys returns a snapshot of the cached request URLs
func (c *Cache) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	return keys
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Storage holds the named caches. Activation deletes every cache whose
// name is not among the current versioned names.
type Storage struct {
	mu     sync.Mutex
	caches map[string]*Cache
}

func NewStorage() *Storage {
	return &Storage{caches: make(map[string]*Cache)}
}

// Open returns the cache with the given name, creating it if needed
func (s *Storage) Open(name string) *Cache {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.caches[name]; ok {
		return c
	}
	c := newCache()
	s.caches[name] = c
	return c
}

func (s *Storage) DeleteCache(name string) {
	s.mu.Lock()
	delete(s.caches, name)
	s.mu.Unlock()
}

func (s *Storage) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.caches))
	for n := range s.caches {
		names = append(names, n)
	}
	return names
}
