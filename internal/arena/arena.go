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


// Package arena defines an Arena type with compressed pointers.
//
// Syntax trees store their nodes in an Arena: nodes refer to each other by
// four-byte [Pointer]s rather than by *T, which keeps trees compact and
// cheap for the GC to scan, and makes it impossible to mutate a node without
// access to the arena that owns it.
package arena

import (
	"fmt"
	"math/bits"
	"strings"
)

// pointersMinLenShift is the log2 of the size of the smallest slice in
// an Arena.
const (
	pointersMinLenShift = 4
	pointersMinLen      = 1 << pointersMinLenShift
)

// A compressed arena pointer.
//
// Cannot be dereferenced directly; see [Pointer.In].
//
// The pointer value of a particular pointer in an arena is equal to one
// plus the number of elements allocated before it. The zero value is nil.
type Pointer[T any] uint32

// Nil returns whether this pointer is nil.
func (p Pointer[T]) Nil() bool {
	return p == 0
}

// In looks up this pointer in the given arena.
//
// arena must be the arena that allocated this pointer, otherwise this will
// either return an arbitrary pointer or panic. If p is nil, this panics.
func (p Pointer[T]) In(arena *Arena[T]) *T {
	return arena.at(p)
}

// Arena is a slice of T that guarantees the Ts will never be moved once
// allocated.
//
// It does this by maintaining a table of logarithmically-growing slices that
// mimic the resizing behavior of an ordinary slice. Lookup time remains O(1),
// at the cost of two pointer loads instead of one.
//
// A zero Arena[T] is empty and ready to use.
type Arena[T any] struct {
	// Invariants:
	// 1. cap(table[0]) == 1<<pointersMinLenShift.
	// 2. cap(table[n]) == 2*cap(table[n-1]).
	// 3. cap(table[n]) == len(table[n]) for n < len(table)-1.
	//
	// These invariants are needed for lookup to be O(1).
	table [][]T
}

// New allocates a new value on the arena.
func (a *Arena[T]) New(value T) Pointer[T] {
	if a.table == nil {
		a.table = [][]T{make([]T, 0, pointersMinLen)}
	}

	last := &a.table[len(a.table)-1]
	if len(*last) == cap(*last) {
		// If the last slice is full, grow by doubling the size
		// of the next slice.
		a.table = append(a.table, make([]T, 0, 2*cap(*last)))
		last = &a.table[len(a.table)-1]
	}

	*last = append(*last, value)
	return Pointer[T](a.Len())
}

// Len returns the number of values allocated in this arena.
func (a *Arena[T]) Len() int {
	if len(a.table) == 0 {
		return 0
	}

	// Only the last slice will be not-fully-filled.
	return lenOfFirstNSlices(len(a.table)-1) + len(a.table[len(a.table)-1])
}

// String implements [fmt.Stringer].
func (a *Arena[T]) String() string {
	var b strings.Builder
	b.WriteRune('[')
	// Show off the boundaries of the subarrays.
	for i, slice := range a.table {
		if i != 0 {
			b.WriteRune('|')
		}
		for i, v := range slice {
			if i != 0 {
				b.WriteRune(' ')
			}
			fmt.Fprint(&b, v)
		}
	}
	b.WriteRune(']')
	return b.String()
}

func (a *Arena[T]) at(p Pointer[T]) *T {
	if p.Nil() {
		panic("arena: dereferenced nil pointer")
	}
	slice, idx := a.coordinates(int(p) - 1)
	return &a.table[slice][idx]
}

// coordinates calculates the coordinates of the given index in table. It
// also performs a bounds check.
func (a *Arena[T]) coordinates(idx int) (int, int) {
	if idx >= a.Len() || idx < 0 {
		panic(fmt.Sprintf("arena: pointer out of range: %#x", idx))
	}

	// Given pointersMinLenShift == n, the cumulative starting index of each
	// slice is 0b0 << n, 0b1 << n, 0b11 << n, 0b111 << n, ...
	//
	// Adding 1 << n maps these to 0b1 << n, 0b10 << n, 0b100 << n, ..., whose
	// one-indexed high order bits are 1+n, 2+n, 3+n. Subtracting n+1 gives the
	// slice index.
	slice := bits.UintSize - bits.LeadingZeros(uint(idx)+pointersMinLen)
	slice -= pointersMinLenShift + 1

	return slice, idx - lenOfFirstNSlices(slice)
}

// lenOfFirstNSlices returns the total length of the first n slices, even if
// they aren't allocated yet.
func lenOfFirstNSlices(n int) int {
	// 2^m + 2^(m+1) + ... + 2^(n-1) = 2^n - 2^m
	return max(0, pointersMinLen<<n-pointersMinLen)
}
