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

package lfu

import (
	"errors"
	"runtime"
	"strconv"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"d7y.io/popularity/internal/dferrors"
	"d7y.io/popularity/pkg/cache/lfu/mocks"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		expect   func(t *testing.T, c *Cache, err error)
	}{
		{
			name:     "new cache",
			capacity: 2,
			expect: func(t *testing.T, c *Cache, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(0, c.Len())
				assert.Equal(Stats{}, c.Stats())
			},
		},
		{
			name:     "zero capacity",
			capacity: 0,
			expect: func(t *testing.T, c *Cache, err error) {
				assert := assert.New(t)
				assert.True(errors.Is(err, dferrors.ErrInvalidArgument))
				assert.Nil(c)
			},
		},
		{
			name:     "negative capacity",
			capacity: -1,
			expect: func(t *testing.T, c *Cache, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "capacity -1: invalid argument")
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, err := New(tc.capacity)
			tc.expect(t, c, err)
		})
	}
}

func TestCacheGetSet(t *testing.T) {
	tests := []struct {
		name   string
		mock   func(m *mocks.MockEvictListenerMockRecorder)
		expect func(t *testing.T, c *Cache)
	}{
		{
			name: "get missing key",
			mock: func(m *mocks.MockEvictListenerMockRecorder) {},
			expect: func(t *testing.T, c *Cache) {
				assert := assert.New(t)
				_, ok := c.Get("foo")
				assert.False(ok)
				assert.Equal(Stats{Misses: 1}, c.Stats())
			},
		},
		{
			name: "set and get",
			mock: func(m *mocks.MockEvictListenerMockRecorder) {},
			expect: func(t *testing.T, c *Cache) {
				assert := assert.New(t)
				c.Set("foo", 1)
				value, ok := c.Get("foo")
				assert.True(ok)
				assert.Equal(1, value)

				count, ok := c.Frequency("foo")
				assert.True(ok)
				assert.Equal(uint(2), count)
				assert.Equal(Stats{Hits: 1}, c.Stats())
			},
		},
		{
			name: "overwrite value",
			mock: func(m *mocks.MockEvictListenerMockRecorder) {},
			expect: func(t *testing.T, c *Cache) {
				assert := assert.New(t)
				c.Set("foo", 1)
				c.Set("bar", 2)
				c.Set("foo", 3)
				value, _ := c.Get("foo")
				assert.Equal(3, value)
				assert.Equal(2, c.Len())
				assert.Equal(uint64(0), c.Stats().Evictions)
			},
		},
		{
			name: "evict least frequently used key",
			mock: func(m *mocks.MockEvictListenerMockRecorder) {
				m.OnEvicted("bar", 2).Times(1)
			},
			expect: func(t *testing.T, c *Cache) {
				assert := assert.New(t)
				c.Set("foo", 1)
				c.Set("bar", 2)
				c.Get("foo")
				c.Set("baz", 3)

				_, ok := c.Get("bar")
				assert.False(ok)
				assert.ElementsMatch([]string{"foo", "baz"}, c.Keys())
				assert.Equal(uint64(1), c.Stats().Evictions)
			},
		},
		{
			name: "evicted key is forgotten",
			mock: func(m *mocks.MockEvictListenerMockRecorder) {
				gomock.InOrder(
					m.OnEvicted("bar", 2).Times(1),
					m.OnEvicted("baz", 3).Times(1),
				)
			},
			expect: func(t *testing.T, c *Cache) {
				assert := assert.New(t)
				c.Set("foo", 1)
				c.Get("foo")
				c.Get("foo")
				c.Set("bar", 2)
				c.Set("baz", 3)
				c.Set("bar", 4)

				_, ok := c.Frequency("baz")
				assert.False(ok)
				count, ok := c.Frequency("bar")
				assert.True(ok)
				assert.Equal(uint(1), count)
			},
		},
		{
			name: "delete does not notify",
			mock: func(m *mocks.MockEvictListenerMockRecorder) {},
			expect: func(t *testing.T, c *Cache) {
				assert := assert.New(t)
				c.Set("foo", 1)
				assert.True(c.Delete("foo"))
				assert.False(c.Delete("foo"))
				assert.Equal(0, c.Len())
				_, ok := c.Frequency("foo")
				assert.False(ok)
			},
		},
		{
			name: "keys by frequency",
			mock: func(m *mocks.MockEvictListenerMockRecorder) {},
			expect: func(t *testing.T, c *Cache) {
				assert := assert.New(t)
				c.Set("foo", 1)
				c.Set("bar", 2)
				c.Get("bar")
				assert.Equal([]string{"bar", "foo"}, c.Keys())
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()

			listener := mocks.NewMockEvictListener(ctl)
			tc.mock(listener.EXPECT())
			c, err := New(2, WithEvictListener(listener))
			if err != nil {
				t.Fatal(err)
			}

			tc.expect(t, c)
		})
	}
}

type reentrantListener struct {
	cache   *Cache
	evicted []string
}

func (l *reentrantListener) OnEvicted(key string, _ any) {
	l.evicted = append(l.evicted, key)
	l.cache.Len()
}

func TestCacheReentrantListener(t *testing.T) {
	assert := assert.New(t)
	l := &reentrantListener{}
	c, err := New(1, WithEvictListener(l))
	assert.NoError(err)
	l.cache = c

	c.Set("foo", 1)
	c.Set("bar", 2)
	assert.Equal([]string{"foo"}, l.evicted)
}

func TestCache_Concurrent(t *testing.T) {
	runtime.GOMAXPROCS(2)

	c, err := New(16)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	wg.Add(1000)
	for i := 0; i < 1000; i++ {
		go func(i int) {
			defer wg.Done()
			key := strconv.Itoa(i % 64)
			if _, ok := c.Get(key); !ok {
				c.Set(key, i)
			}
		}(i)
	}

	wg.Wait()
	assert := assert.New(t)
	assert.LessOrEqual(c.Len(), 16)
	assert.Len(c.Keys(), c.Len())

	stats := c.Stats()
	assert.Equal(uint64(1000), stats.Hits+stats.Misses)
}
