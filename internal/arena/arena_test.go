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


package arena_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/filterexpr/internal/arena"
)

func TestPointers(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var a arena.Arena[int]
	assert.Zero(a.Len())

	p1 := a.New(5)
	p2 := p1.In(&a)
	assert.Equal(5, *p2)
	assert.Equal(1, a.Len())

	var ptrs []arena.Pointer[int]
	for i := range 48 {
		ptrs = append(ptrs, a.New(i+6))
	}
	assert.Equal(49, a.Len())
	for i, p := range ptrs {
		assert.Equal(i+6, *p.In(&a))
	}

	// Growing the arena must not move earlier values.
	assert.Same(p1.In(&a), p2)

	assert.Equal("[5 6 7 8 9 10 11 12 13 14 15 16 17 18 19 20|21 22 23 24 25 26 27 28 29 30 31 32 33 34 35 36 37 38 39 40 41 42 43 44 45 46 47 48 49 50 51 52|53]", a.String())
}

func TestBadPointers(t *testing.T) {
	t.Parallel()

	var a arena.Arena[string]
	a.New("x")

	var nilPtr arena.Pointer[string]
	assert.True(t, nilPtr.Nil())
	assert.Panics(t, func() { nilPtr.In(&a) })
	assert.Panics(t, func() { arena.Pointer[string](2).In(&a) })
}
