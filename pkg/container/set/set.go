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

package set

// Set is an unordered collection of unique members.
type Set[T comparable] interface {
	Values() []T
	Add(T) bool
	Delete(T)
	Contains(...T) bool
	Len() uint
	Range(func(T) bool)
	Any() (T, bool)
	Clear()
}

type set[T comparable] map[T]struct{}

// New returns an empty set, it is not safe for concurrent use.
func New[T comparable]() Set[T] {
	return &set[T]{}
}

// Values returns all members in arbitrary order.
func (s *set[T]) Values() []T {
	var result []T
	s.Range(func(v T) bool {
		result = append(result, v)
		return true
	})

	return result
}

// Add inserts v and reports whether it was absent.
func (s *set[T]) Add(v T) bool {
	if _, found := (*s)[v]; found {
		return false
	}

	(*s)[v] = struct{}{}
	return true
}

func (s *set[T]) Delete(v T) {
	delete(*s, v)
}

// Contains reports whether every value in vals is a member.
func (s *set[T]) Contains(vals ...T) bool {
	for _, v := range vals {
		if _, ok := (*s)[v]; !ok {
			return false
		}
	}

	return true
}

func (s *set[T]) Len() uint {
	return uint(len(*s))
}

// Range calls fn for each member until fn returns false.
func (s *set[T]) Range(fn func(T) bool) {
	for v := range *s {
		if !fn(v) {
			break
		}
	}
}

// Any returns an arbitrary member, false if the set is empty.
func (s *set[T]) Any() (T, bool) {
	for v := range *s {
		return v, true
	}

	var zero T
	return zero, false
}

func (s *set[T]) Clear() {
	*s = set[T]{}
}
