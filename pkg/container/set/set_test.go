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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetAdd(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		expect func(t *testing.T, s Set[string], added []bool)
	}{
		{
			name:   "add single member",
			values: []string{"foo"},
			expect: func(t *testing.T, s Set[string], added []bool) {
				assert := assert.New(t)
				assert.Equal([]bool{true}, added)
				assert.Equal([]string{"foo"}, s.Values())
			},
		},
		{
			name:   "add duplicate member",
			values: []string{"foo", "foo"},
			expect: func(t *testing.T, s Set[string], added []bool) {
				assert := assert.New(t)
				assert.Equal([]bool{true, false}, added)
				assert.Equal(uint(1), s.Len())
			},
		},
		{
			name:   "add distinct members",
			values: []string{"foo", "bar"},
			expect: func(t *testing.T, s Set[string], added []bool) {
				assert := assert.New(t)
				assert.Equal([]bool{true, true}, added)
				assert.ElementsMatch([]string{"foo", "bar"}, s.Values())
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := New[string]()
			var added []bool
			for _, v := range tc.values {
				added = append(added, s.Add(v))
			}
			tc.expect(t, s, added)
		})
	}
}

func TestSetDeleteAndContains(t *testing.T) {
	tests := []struct {
		name   string
		delete string
		expect func(t *testing.T, s Set[string])
	}{
		{
			name:   "delete member",
			delete: "foo",
			expect: func(t *testing.T, s Set[string]) {
				assert := assert.New(t)
				assert.False(s.Contains("foo"))
				assert.True(s.Contains("bar"))
				assert.Equal(uint(1), s.Len())
			},
		},
		{
			name:   "delete missing member",
			delete: "baz",
			expect: func(t *testing.T, s Set[string]) {
				assert := assert.New(t)
				assert.True(s.Contains("foo", "bar"))
				assert.False(s.Contains("foo", "baz"))
				assert.Equal(uint(2), s.Len())
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := New[string]()
			s.Add("foo")
			s.Add("bar")
			s.Delete(tc.delete)
			tc.expect(t, s)
		})
	}
}

func TestSetAny(t *testing.T) {
	assert := assert.New(t)
	s := New[int]()

	_, ok := s.Any()
	assert.False(ok)

	s.Add(1)
	s.Add(2)
	v, ok := s.Any()
	assert.True(ok)
	assert.True(s.Contains(v))

	s.Clear()
	_, ok = s.Any()
	assert.False(ok)
	assert.Equal([]int(nil), s.Values())
}

func TestSetRange(t *testing.T) {
	assert := assert.New(t)
	s := New[int]()
	for i := 0; i < 10; i++ {
		s.Add(i)
	}

	var visited int
	s.Range(func(int) bool {
		visited++
		return visited < 3
	})
	assert.Equal(3, visited)
}
