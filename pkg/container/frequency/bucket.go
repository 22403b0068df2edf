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
	"d7y.io/popularity/pkg/container/set"
)

const (
	// head is the low sentinel, it sorts below every count.
	head = 0

	// tail is the high sentinel, it sorts above every count.
	tail = 1

	// unlinked marks the links of a recycled bucket.
	unlinked = -1
)

// bucket holds the members sharing one count. Links are indices into chain.buckets.
type bucket[T comparable] struct {
	count   uint
	members set.Set[T]
	prev    int
	next    int
}

// chain is a doubly linked list of buckets, ascending by count and bounded by
// the head and tail sentinels. Buckets live in an arena and are addressed by
// index, so links stay valid when the arena grows.
type chain[T comparable] struct {
	buckets []bucket[T]
	free    []int
}

func newChain[T comparable]() *chain[T] {
	c := &chain[T]{}
	c.reset()
	return c
}

// reset drops every non-sentinel bucket.
func (c *chain[T]) reset() {
	c.buckets = []bucket[T]{
		head: {prev: unlinked, next: tail},
		tail: {prev: head, next: unlinked},
	}
	c.free = nil
}

func (c *chain[T]) next(i int) int {
	return c.buckets[i].next
}

func (c *chain[T]) prev(i int) int {
	return c.buckets[i].prev
}

func (c *chain[T]) count(i int) uint {
	return c.buckets[i].count
}

func (c *chain[T]) members(i int) set.Set[T] {
	return c.buckets[i].members
}

func isSentinel(i int) bool {
	return i == head || i == tail
}

// insertAfter allocates a bucket for count and splices it right after anchor.
// The caller guarantees that count sorts strictly between anchor and its
// successor.
func (c *chain[T]) insertAfter(anchor int, count uint) int {
	i := c.alloc(count)
	next := c.buckets[anchor].next

	c.buckets[i].prev = anchor
	c.buckets[i].next = next
	c.buckets[anchor].next = i
	c.buckets[next].prev = i
	return i
}

// removeIfEmpty unlinks bucket i when it has no members. Sentinels are never
// removed, and calling it on a non-empty bucket does nothing.
func (c *chain[T]) removeIfEmpty(i int) {
	if isSentinel(i) || c.buckets[i].members.Len() > 0 {
		return
	}

	// Already recycled.
	if c.buckets[i].prev == unlinked {
		return
	}

	prev, next := c.buckets[i].prev, c.buckets[i].next
	c.buckets[prev].next = next
	c.buckets[next].prev = prev

	c.buckets[i].prev = unlinked
	c.buckets[i].next = unlinked
	c.free = append(c.free, i)
}

// alloc returns the index of an unlinked bucket with an empty member set,
// reusing recycled slots first.
func (c *chain[T]) alloc(count uint) int {
	if n := len(c.free); n > 0 {
		i := c.free[n-1]
		c.free = c.free[:n-1]
		c.buckets[i].count = count
		return i
	}

	c.buckets = append(c.buckets, bucket[T]{
		count:   count,
		members: set.New[T](),
		prev:    unlinked,
		next:    unlinked,
	})
	return len(c.buckets) - 1
}

// len returns the number of linked non-sentinel buckets.
func (c *chain[T]) len() int {
	return len(c.buckets) - len(c.free) - 2
}
