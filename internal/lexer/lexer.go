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


// Package lexer classifies filter text into tokens.
package lexer

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/bufbuild/filterexpr/source"
	"github.com/bufbuild/filterexpr/syntax"
)

// Token is a single classified token. Its text is always a substring of the
// lexed file; see [source.Span.Text].
type Token struct {
	Kind syntax.Kind
	Span source.Span
}

// Text returns the source text of this token.
func (t Token) Text() string {
	return t.Span.Text()
}

// Lexer produces tokens from a [source.File] one at a time, in source order.
//
// A zero Lexer is not usable; construct one with [New].
type Lexer struct {
	file   *source.File
	cursor int
}

// New returns a lexer positioned at the start of file.
func New(file *source.File) *Lexer {
	return &Lexer{file: file}
}

// Lex classifies all of file at once.
func Lex(file *source.File) []Token {
	var tokens []Token
	l := New(file)
	for {
		tok, ok := l.Next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

// Offset returns the byte offset of the first byte the lexer has not yet
// classified.
func (l *Lexer) Offset() int {
	return l.cursor
}

// Next classifies the next token and advances past it. Returns false once
// the input is exhausted.
//
// Runs of tabs, newlines, and form feeds are consumed without producing a
// token. Spaces are not: each space is its own [syntax.Whitespace] token.
func (l *Lexer) Next() (Token, bool) {
	_ = l.takeWhile(isSkippedBlank)
	rest := l.rest()
	if rest == "" {
		return Token{}, false
	}

	var (
		kind   syntax.Kind
		length int
	)
	switch {
	case strings.HasPrefix(rest, ">="):
		kind, length = syntax.GreaterThanOrEqualTo, 2
	case strings.HasPrefix(rest, "<="):
		kind, length = syntax.LessThanOrEqualTo, 2
	default:
		if k, ok := punct[rest[0]]; ok {
			kind, length = k, 1
			break
		}

		if ident := l.takeWhile(isASCIILetter); ident != "" {
			return l.push(syntax.Ident, l.cursor-len(ident)), true
		}

		// Anything else is garbage. We take a whole grapheme cluster so that
		// a character made of several runes is reported as a single token.
		cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(rest, -1)
		kind, length = syntax.Error, len(cluster)
	}

	start := l.cursor
	l.cursor += length
	return l.push(kind, start), true
}

// punct maps every single-byte token to its kind.
var punct = map[byte]syntax.Kind{
	'(': syntax.OpenParen,
	')': syntax.CloseParen,
	'&': syntax.And,
	'|': syntax.Or,
	'=': syntax.Equals,
	'>': syntax.GreaterThan,
	'<': syntax.LessThan,
	' ': syntax.Whitespace,
}

// push creates a token spanning from start to the cursor.
func (l *Lexer) push(kind syntax.Kind, start int) Token {
	return Token{Kind: kind, Span: l.file.Span(start, l.cursor)}
}

// rest returns the remaining unlexed text.
func (l *Lexer) rest() string {
	return l.file.Text()[l.cursor:]
}

// takeWhile returns the longest prefix of the remaining text whose bytes all
// match f, advancing the cursor past it.
func (l *Lexer) takeWhile(f func(byte) bool) string {
	rest := l.rest()
	n := 0
	for n < len(rest) && f(rest[n]) {
		n++
	}
	l.cursor += n
	return rest[:n]
}

func isASCIILetter(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

func isSkippedBlank(b byte) bool {
	return b == '\t' || b == '\n' || b == '\f'
}
