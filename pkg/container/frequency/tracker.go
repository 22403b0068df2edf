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

// Package frequency tracks a count per item and answers which item is the
// most or least frequent in constant time.
//
// Items sharing a count are grouped into one bucket, and buckets form a chain
// sorted by count. An increment or decrement moves an item to the adjacent
// bucket, creating it when missing and dropping the old one when it empties.
package frequency

// Entry is an item together with its count.
type Entry[T comparable] struct {
	Item  T    `json:"item" yaml:"item"`
	Count uint `json:"count" yaml:"count"`
}

// Tracker counts items. It is not safe for concurrent use, see NewSafe.
type Tracker[T comparable] interface {
	// Increase adds one to the count of item, tracking it at 1 when absent.
	Increase(T)

	// Decrease subtracts one from the count of item. An item at count 1 is
	// dropped, and an absent item is ignored.
	Decrease(T)

	// MostFrequent returns an arbitrary item holding the highest count.
	MostFrequent() (T, bool)

	// LeastFrequent returns an arbitrary item holding the lowest count.
	LeastFrequent() (T, bool)

	// Count returns the count of item.
	Count(T) (uint, bool)

	Contains(T) bool

	// Delete drops item regardless of its count.
	Delete(T)

	// Len returns the number of tracked items.
	Len() uint

	// Range walks items in ascending count order until fn returns false.
	// Order among equal counts is arbitrary, and fn must not modify the tracker.
	Range(fn func(item T, count uint) bool)

	// ReverseRange is Range in descending count order.
	ReverseRange(fn func(item T, count uint) bool)

	// TopK returns at most k entries with the highest counts, descending.
	TopK(k int) []Entry[T]

	Clear()
}

type tracker[T comparable] struct {
	chain *chain[T]

	// index maps each tracked item to the bucket holding it.
	index map[T]int
}

// New returns an empty tracker.
func New[T comparable]() Tracker[T] {
	return &tracker[T]{
		chain: newChain[T](),
		index: make(map[T]int),
	}
}

func (t *tracker[T]) Increase(item T) {
	cur, ok := t.index[item]
	if !ok {
		first := t.chain.next(head)
		if first == tail || t.chain.count(first) != 1 {
			first = t.chain.insertAfter(head, 1)
		}

		t.chain.members(first).Add(item)
		t.index[item] = first
		return
	}

	count := t.chain.count(cur)
	next := t.chain.next(cur)
	if next == tail || t.chain.count(next) != count+1 {
		next = t.chain.insertAfter(cur, count+1)
	}

	t.move(item, cur, next)
}

func (t *tracker[T]) Decrease(item T) {
	cur, ok := t.index[item]
	if !ok {
		return
	}

	count := t.chain.count(cur)
	if count == 1 {
		t.drop(item, cur)
		return
	}

	prev := t.chain.prev(cur)
	if prev == head || t.chain.count(prev) != count-1 {
		prev = t.chain.insertAfter(prev, count-1)
	}

	t.move(item, cur, prev)
}

// move relocates item between adjacent buckets and drops the source bucket
// once it is empty.
func (t *tracker[T]) move(item T, from, to int) {
	t.chain.members(from).Delete(item)
	t.chain.members(to).Add(item)
	t.index[item] = to
	t.chain.removeIfEmpty(from)
}

func (t *tracker[T]) drop(item T, from int) {
	t.chain.members(from).Delete(item)
	delete(t.index, item)
	t.chain.removeIfEmpty(from)
}

func (t *tracker[T]) MostFrequent() (T, bool) {
	return t.pick(t.chain.prev(tail))
}

func (t *tracker[T]) LeastFrequent() (T, bool) {
	return t.pick(t.chain.next(head))
}

func (t *tracker[T]) pick(i int) (T, bool) {
	if isSentinel(i) {
		var zero T
		return zero, false
	}

	return t.chain.members(i).Any()
}

func (t *tracker[T]) Count(item T) (uint, bool) {
	i, ok := t.index[item]
	if !ok {
		return 0, false
	}

	return t.chain.count(i), true
}

func (t *tracker[T]) Contains(item T) bool {
	_, ok := t.index[item]
	return ok
}

func (t *tracker[T]) Delete(item T) {
	if i, ok := t.index[item]; ok {
		t.drop(item, i)
	}
}

func (t *tracker[T]) Len() uint {
	return uint(len(t.index))
}

func (t *tracker[T]) Range(fn func(item T, count uint) bool) {
	for i := t.chain.next(head); i != tail; i = t.chain.next(i) {
		if !t.rangeBucket(i, fn) {
			return
		}
	}
}

func (t *tracker[T]) ReverseRange(fn func(item T, count uint) bool) {
	for i := t.chain.prev(tail); i != head; i = t.chain.prev(i) {
		if !t.rangeBucket(i, fn) {
			return
		}
	}
}

// rangeBucket calls fn for each member of bucket i and reports whether the
// walk should go on.
func (t *tracker[T]) rangeBucket(i int, fn func(item T, count uint) bool) bool {
	count := t.chain.count(i)
	next := true
	t.chain.members(i).Range(func(item T) bool {
		next = fn(item, count)
		return next
	})

	return next
}

func (t *tracker[T]) TopK(k int) []Entry[T] {
	if k <= 0 || len(t.index) == 0 {
		return nil
	}

	entries := make([]Entry[T], 0, min(k, len(t.index)))
	t.ReverseRange(func(item T, count uint) bool {
		entries = append(entries, Entry[T]{Item: item, Count: count})
		return len(entries) < k
	})

	return entries
}

func (t *tracker[T]) Clear() {
	t.chain.reset()
	t.index = make(map[T]int)
}
