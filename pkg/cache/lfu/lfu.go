/*
 *     Copyright 2024 The Dragonfly Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

//go:generate mockgen -destination mocks/lfu_mock.go -source lfu.go -package mocks

// Package lfu implements a fixed capacity cache which evicts the least
// frequently used key.
package lfu

import (
	"fmt"
	"sync"

	"go.uber.org/atomic"

	"d7y.io/popularity/internal/dferrors"
	"d7y.io/popularity/pkg/container/frequency"
)

// EvictListener is notified when a key is evicted to make room for another.
type EvictListener interface {
	OnEvicted(key string, value any)
}

// Stats counts cache lookups and evictions.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// Option is a functional option for configuring the cache.
type Option func(c *Cache)

// WithEvictListener sets the listener notified on eviction.
func WithEvictListener(l EvictListener) Option {
	return func(c *Cache) {
		c.listener = l
	}
}

// Cache is safe for concurrent use.
type Cache struct {
	mu       *sync.Mutex
	capacity int
	items    map[string]any

	// tracker counts the accesses of every cached key.
	tracker  frequency.Tracker[string]
	listener EvictListener

	hits      *atomic.Uint64
	misses    *atomic.Uint64
	evictions *atomic.Uint64
}

// New returns a cache holding at most capacity keys.
func New(capacity int, options ...Option) (*Cache, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("capacity %d: %w", capacity, dferrors.ErrInvalidArgument)
	}

	c := &Cache{
		mu:        &sync.Mutex{},
		capacity:  capacity,
		items:     make(map[string]any, capacity),
		tracker:   frequency.New[string](),
		hits:      atomic.NewUint64(0),
		misses:    atomic.NewUint64(0),
		evictions: atomic.NewUint64(0),
	}

	for _, opt := range options {
		opt(c)
	}

	return c, nil
}

// Get returns the value of key and counts the access.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	value, ok := c.items[key]
	if !ok {
		c.misses.Inc()
		return nil, false
	}

	c.tracker.Increase(key)
	c.hits.Inc()
	return value, true
}

// Set stores value under key and counts the access. Adding a new key to a
// full cache evicts one of the least frequently used keys first.
func (c *Cache) Set(key string, value any) {
	c.mu.Lock()
	if _, ok := c.items[key]; ok {
		c.items[key] = value
		c.tracker.Increase(key)
		c.mu.Unlock()
		return
	}

	var (
		evicted      bool
		evictedKey   string
		evictedValue any
	)
	if len(c.items) >= c.capacity {
		evictedKey, evicted = c.tracker.LeastFrequent()
		if evicted {
			evictedValue = c.items[evictedKey]
			delete(c.items, evictedKey)
			c.tracker.Delete(evictedKey)
			c.evictions.Inc()
		}
	}

	c.items[key] = value
	c.tracker.Increase(key)
	c.mu.Unlock()

	// Notify outside the lock so the listener may call back into the cache.
	if evicted && c.listener != nil {
		c.listener.OnEvicted(evictedKey, evictedValue)
	}
}

// Delete removes key and reports whether it was cached.
func (c *Cache) Delete(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[key]; !ok {
		return false
	}

	delete(c.items, key)
	c.tracker.Delete(key)
	return true
}

// Frequency returns the number of accesses counted for key.
func (c *Cache) Frequency(key string) (uint, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tracker.Count(key)
}

// Keys returns the cached keys from the most to the least frequently used.
func (c *Cache) Keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]string, 0, len(c.items))
	c.tracker.ReverseRange(func(key string, _ uint) bool {
		keys = append(keys, key)
		return true
	})

	return keys
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *Cache) Stats() Stats {
	return Stats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}
