// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package interval provides an index over intervals that nest strictly, such
// as the byte ranges of the nodes of a syntax tree.
package interval

import (
	"fmt"
	"iter"

	"github.com/tidwall/btree"
	"golang.org/x/exp/constraints" //nolint:exptostd // Tries to replace w/ cmp.
)

// Endpoint is a type that may be used as an interval endpoint.
type Endpoint = constraints.Integer

// Entry is an interval in a [Nested], together with its value. Both
// endpoints are inclusive.
type Entry[K Endpoint, V any] struct {
	Start, End K
	Value      V
}

// Contains returns whether an entry contains a given point.
func (e Entry[K, V]) Contains(point K) bool {
	return e.Start <= point && point <= e.End
}

// Nested is a collection of intervals, each inserted with a nesting depth,
// such that intervals at the same depth never overlap and every interval at
// depth n+1 lies within some interval at depth n.
//
// Looking up the intervals containing a point is O(d log n), where d is the
// depth of the deepest interval containing it.
//
// A zero value is ready to use.
type Nested[K Endpoint, V any] struct {
	// Keys in each tree are the ends of the intervals at that depth.
	levels []*btree.Map[K, Entry[K, V]]
}

// Insert adds a new interval at the given depth.
//
// Panics if start > end, or if the interval overlaps another interval at the
// same depth.
func (n *Nested[K, V]) Insert(depth int, start, end K, value V) {
	if start > end {
		panic(fmt.Sprintf("interval: start (%#v) > end (%#v)", start, end))
	}
	for len(n.levels) <= depth {
		n.levels = append(n.levels, new(btree.Map[K, Entry[K, V]]))
	}

	level := n.levels[depth]
	iter := level.Iter()
	if iter.Seek(start) && iter.Value().Start <= end {
		panic(fmt.Sprintf("interval: [%#v, %#v] overlaps [%#v, %#v] at depth %d",
			start, end, iter.Value().Start, iter.Value().End, depth))
	}

	level.Set(end, Entry[K, V]{Start: start, End: end, Value: value})
}

// Get returns an iterator over the intervals which contain point, from the
// shallowest to the deepest.
func (n *Nested[K, V]) Get(point K) iter.Seq[Entry[K, V]] {
	return func(yield func(Entry[K, V]) bool) {
		for _, level := range n.levels {
			// The first interval ending at or after point is the only one at
			// this depth that could contain it.
			iter := level.Iter()
			if !iter.Seek(point) || !iter.Value().Contains(point) {
				// Nothing deeper can contain point either.
				return
			}
			if !yield(iter.Value()) {
				return
			}
		}
	}
}

// Len returns the number of intervals in this collection.
func (n *Nested[K, V]) Len() int {
	var total int
	for _, level := range n.levels {
		total += level.Len()
	}
	return total
}

// Format implements [fmt.Formatter].
func (n *Nested[K, V]) Format(s fmt.State, v rune) {
	fmt.Fprint(s, "{")
	for depth, level := range n.levels {
		if depth > 0 {
			fmt.Fprint(s, "; ")
		}
		first := true
		level.Scan(func(end K, entry Entry[K, V]) bool {
			if !first {
				fmt.Fprint(s, ", ")
			}
			first = false

			fmt.Fprintf(s, "[%#v, %#v]: ", entry.Start, end)
			fmt.Fprintf(s, fmt.FormatString(s, v), entry.Value)
			return true
		})
	}
	fmt.Fprint(s, "}")
}
