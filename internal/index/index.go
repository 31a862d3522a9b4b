// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package index implements an in-memory sorted lookup table.
package index

import (
	"fmt"
	"slices"
	"sort"
)

// Index is a read-only table of values sorted by their String keys.
type Index[V fmt.Stringer] struct {
	values []V
	cmp    func(string, string) int
}

// New creates an index over a copy of values. cmp(a, b) should return a
// negative number when a < b, a positive number when a > b and zero when
// a and b are equivalent keys.
func New[V fmt.Stringer](values []V, cmp func(string, string) int) *Index[V] {
	sorted := slices.Clone(values)
	slices.SortStableFunc(sorted, func(a, b V) int {
		return cmp(a.String(), b.String())
	})

	return &Index[V]{
		values: sorted,
		cmp:    cmp,
	}
}

// Search returns all values whose key is equivalent to key.
func (idx *Index[V]) Search(key string) []V {
	i, found := sort.Find(len(idx.values), func(i int) int {
		return idx.cmp(key, idx.values[i].String())
	})
	if !found {
		return nil
	}

	j := i + 1
	for j < len(idx.values) && idx.cmp(key, idx.values[j].String()) == 0 {
		j++
	}
	return idx.values[i:j]
}

// Get returns the first value whose key is equivalent to key.
func (idx *Index[V]) Get(key string) (V, bool) {
	var zero V
	m := idx.Search(key)
	if len(m) == 0 {
		return zero, false
	}
	return m[0], true
}

// Len returns the number of values in the index.
func (idx *Index[V]) Len() int {
	return len(idx.values)
}
