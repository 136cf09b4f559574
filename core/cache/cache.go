package cache

import (
	"sync"
	"time"
)

// TagSnapshot groups every cached canonical-table view. Deleting the tag
// after a pipeline run invalidates all memoized reads in one call.
const TagSnapshot = "snapshot"

// Cache memoizes canonical tables (and views derived from them) for one
// rendering session. It is an explicit handle: callers hold a *Cache and
// invalidate it deliberately, there is no ambient expiry of snapshot data
// beyond the optional TTL.
type Cache struct {
	m sync.Map
	// tagIndex maps tag string to the set of keys carrying it
	tagIndex sync.Map // map[string]*sync.Map
}

var (
	once     sync.Once
	instance *Cache
)

// GetInstance returns the process-wide session cache.
func GetInstance() *Cache {
	once.Do(func() {
		instance = NewCache()
	})
	return instance
}

// NewCache creates a new Cache instance.
func NewCache() *Cache {
	return &Cache{}
}

// cacheItem holds a value and its expiration time.
type cacheItem struct {
	Value     interface{}
	ExpiresAt int64 // Unix nanoseconds; 0 means no expiration
}

// Set stores a value with an optional TTL in seconds (0 = no expiry) and
// optional tags for grouped invalidation.
func (c *Cache) Set(key string, value interface{}, ttl int64, tags []string) {
	var expiresAt int64
	if ttl > 0 {
		expiresAt = time.Now().Add(time.Duration(ttl) * time.Second).UnixNano()
	}
	c.m.Store(key, cacheItem{Value: value, ExpiresAt: expiresAt})
	if len(tags) > 0 {
		c.TagKey(key, tags)
	}
}

// Get retrieves a value. Returns (value, true) if found and not expired.
func (c *Cache) Get(key string) (interface{}, bool) {
	v, ok := c.m.Load(key)
	if !ok {
		return nil, false
	}
	item := v.(cacheItem)
	if item.ExpiresAt > 0 && time.Now().UnixNano() > item.ExpiresAt {
		c.m.Delete(key)
		return nil, false
	}
	return item.Value, true
}

// GetOrDefault returns the cached value or def when missing/expired.
func (c *Cache) GetOrDefault(key string, def interface{}) interface{} {
	if v, ok := c.Get(key); ok {
		return v
	}
	return def
}

// Delete removes a key from the cache and from every tag set.
func (c *Cache) Delete(key string) {
	c.m.Delete(key)
	c.tagIndex.Range(func(_, val interface{}) bool {
		val.(*sync.Map).Delete(key)
		return true
	})
}

// DeleteMany removes multiple keys from the cache.
func (c *Cache) DeleteMany(keys ...string) {
	for _, key := range keys {
		c.Delete(key)
	}
}

// TagKey assigns one or more tags to a cache key.
func (c *Cache) TagKey(key string, tags []string) {
	for _, tag := range tags {
		val, _ := c.tagIndex.LoadOrStore(tag, &sync.Map{})
		val.(*sync.Map).Store(key, struct{}{})
	}
}

// GetKeysByTag returns all keys assigned to a tag.
func (c *Cache) GetKeysByTag(tag string) []string {
	var keys []string
	if val, ok := c.tagIndex.Load(tag); ok {
		val.(*sync.Map).Range(func(key, _ interface{}) bool {
			keys = append(keys, key.(string))
			return true
		})
	}
	return keys
}

// DeleteByTag deletes every cache entry assigned to a tag. This is the
// snapshot invalidation hook: the pipeline calls it after publishing new
// canonical tables.
func (c *Cache) DeleteByTag(tag string) {
	if val, ok := c.tagIndex.Load(tag); ok {
		km := val.(*sync.Map)
		km.Range(func(key, _ interface{}) bool {
			c.m.Delete(key)
			km.Delete(key)
			return true
		})
		c.tagIndex.Delete(tag)
	}
}
