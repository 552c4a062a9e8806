package cache

import (
	"sync"
)

// Cache is a concurrency-safe key-value store.
type Cache struct {
	mutex sync.RWMutex
	data  map[string]interface{}
}

// New creates a new cache.
func New() *Cache {
	return &Cache{
		data: make(map[string]interface{}),
	}
}

// Set adds an item to the cache with a specified key and value.
func (c *Cache) Set(key string, value interface{}) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data[key] = value
}

// Get retrieves the value associated with a key from the cache.
// Returns false if the key does not exist.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	value, exists := c.data[key]
	return value, exists
}

// Delete removes an item from the cache.
func (c *Cache) Delete(key string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.data, key)
}

// Len returns the number of items.
func (c *Cache) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return len(c.data)
}
