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


package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/filterexpr/source"
)

func TestLocation(t *testing.T) {
	t.Parallel()

	file := source.NewFile("test", "a = b\nlevel >= ünfo\n\nx")
	tests := []struct {
		offset       int
		line, column int
	}{
		{0, 1, 1},
		{4, 1, 5},
		{5, 1, 6},
		{6, 2, 1},
		{15, 2, 10},
		{17, 2, 11}, // ü is two bytes but one column.
		{21, 3, 1},
		{22, 4, 1},
		{23, 4, 2},
	}
	for _, tt := range tests {
		loc := file.Location(tt.offset)
		assert.Equal(t, tt.offset, loc.Offset)
		assert.Equal(t, tt.line, loc.Line, "offset %d", tt.offset)
		assert.Equal(t, tt.column, loc.Column, "offset %d", tt.offset)
	}

	assert.Equal(t, "level >= ünfo", file.Line(2))
	assert.Equal(t, "", file.Line(3))
	assert.Equal(t, "x", file.Line(4))
}

func TestSpan(t *testing.T) {
	t.Parallel()

	file := source.NewFile("f", "target = foo")
	a := file.Span(0, 6)
	b := file.Span(9, 12)

	assert.Equal(t, "target", a.Text())
	assert.Equal(t, "foo", b.Text())
	assert.Equal(t, 6, a.Len())
	assert.True(t, a.Contains(5))
	assert.False(t, a.Contains(6))
	assert.Equal(t, `"f":1:10[9:12]`, b.String())

	joined := source.Join(b, source.Span{}, a)
	assert.Equal(t, "target = foo", joined.Text())
	assert.True(t, source.Join().IsZero())

	eof := file.EOF()
	assert.Equal(t, 12, eof.Start)
	assert.Equal(t, 0, eof.Len())

	other := source.NewFile("g", "x")
	assert.Panics(t, func() { source.Join(a, other.Span(0, 1)) })

	var nilFile *source.File
	assert.True(t, nilFile.Span(0, 0).IsZero())
	assert.Equal(t, "", nilFile.Text())
}
