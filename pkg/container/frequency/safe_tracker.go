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

package frequency

import (
	"sync"
)

// SafeTracker is a Tracker whose operations each run as one critical section.
type SafeTracker[T comparable] interface {
	Tracker[T]
}

type safeTracker[T comparable] struct {
	mu   *sync.RWMutex
	data Tracker[T]
}

// NewSafe returns an empty tracker which is safe for concurrent use. The
// bucket chain and the item index are guarded by a single lock, since every
// update touches at least two buckets and the index.
func NewSafe[T comparable]() SafeTracker[T] {
	return &safeTracker[T]{
		mu:   &sync.RWMutex{},
		data: New[T](),
	}
}

func (s *safeTracker[T]) Increase(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Increase(item)
}

func (s *safeTracker[T]) Decrease(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Decrease(item)
}

func (s *safeTracker[T]) MostFrequent() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.MostFrequent()
}

func (s *safeTracker[T]) LeastFrequent() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.LeastFrequent()
}

func (s *safeTracker[T]) Count(item T) (uint, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Count(item)
}

func (s *safeTracker[T]) Contains(item T) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Contains(item)
}

func (s *safeTracker[T]) Delete(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Delete(item)
}

func (s *safeTracker[T]) Len() uint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Len()
}

// Range holds the read lock for the whole walk.
func (s *safeTracker[T]) Range(fn func(item T, count uint) bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.data.Range(fn)
}

// ReverseRange holds the read lock for the whole walk.
func (s *safeTracker[T]) ReverseRange(fn func(item T, count uint) bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.data.ReverseRange(fn)
}

func (s *safeTracker[T]) TopK(k int) []Entry[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.TopK(k)
}

func (s *safeTracker[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Clear()
}
