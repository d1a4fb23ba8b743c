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


// Package source provides positions within filter text: files, byte spans,
// and user-displayable line/column locations.
package source

import (
	"slices"
	"strings"
	"sync"
	"unicode/utf8"
)

// File is the text of a filter, together with the book-keeping needed to
// turn byte offsets into line and column numbers.
//
// Files are immutable once created, and safe for concurrent use. A nil *File
// behaves like an empty file with the path name "".
type File struct {
	path, text string

	once sync.Once
	// A prefix sum of the line lengths of text. Given a byte offset, it is possible
	// to recover which line that offset is on by performing a binary search on this
	// list.
	//
	// Alternatively, this slice can be interpreted as the index after each \n in the
	// original file.
	lineIndex []int
}

// NewFile constructs a new source file.
func NewFile(path, text string) *File {
	return &File{path: path, text: text}
}

// Path returns the name this file was created with. It is used only to
// label diagnostics.
func (f *File) Path() string {
	if f == nil {
		return ""
	}

	return f.path
}

// Text returns this file's textual contents.
func (f *File) Text() string {
	if f == nil {
		return ""
	}

	return f.text
}

// Span is a shorthand for creating a new Span.
func (f *File) Span(start, end int) Span {
	if f == nil {
		return Span{}
	}

	return Span{f, start, end}
}

// EOF returns an empty Span positioned at the end of the file.
func (f *File) EOF() Span {
	return f.Span(len(f.Text()), len(f.Text()))
}

// Location searches this file's line index to build full Location information
// for the given byte offset. Columns are measured in runes.
//
// This operation is O(log n).
func (f *File) Location(offset int) Location {
	if f == nil || offset == 0 {
		return Location{Offset: 0, Line: 1, Column: 1}
	}

	lines := f.lines()

	// Find the smallest index in lines such that lines[line] <= offset.
	line, exact := slices.BinarySearch(lines, offset)
	if !exact {
		line--
	}

	return Location{
		Offset: offset,
		Line:   line + 1,
		Column: utf8.RuneCountInString(f.text[lines[line]:offset]) + 1,
	}
}

// Line returns the given 1-indexed line, without its trailing newline.
func (f *File) Line(line int) string {
	start, end := f.LineOffsets(line)
	return strings.TrimRight(f.Text()[start:end], "\r\n")
}

// LineOffsets returns the offsets for the given 1-indexed line, including its
// trailing newline.
func (f *File) LineOffsets(line int) (start, end int) {
	lines := f.lines()
	if len(lines) == line {
		return lines[line-1], len(f.Text())
	}
	return lines[line-1], lines[line]
}

func (f *File) lines() []int {
	if f == nil {
		return nil
	}

	// Compute the prefix sum on-demand.
	f.once.Do(func() {
		var next int

		// We add 1 to the return value of IndexByte because we want to work
		// with the index immediately *after* the newline byte.
		text := f.Text()
		for {
			newline := strings.IndexByte(text, '\n') + 1
			if newline == 0 {
				break
			}

			text = text[newline:]

			f.lineIndex = append(f.lineIndex, next)
			next += newline
		}

		f.lineIndex = append(f.lineIndex, next)
	})
	return f.lineIndex
}
