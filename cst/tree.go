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


// Package cst provides a lossless concrete syntax tree for filter
// expressions.
//
// A [Tree] holds every token the parser consumed, including spaces, so the
// source text can be reconstructed exactly from it. Trees are built with a
// [Builder] and are immutable once built: they have no exported fields and
// no mutating methods, so a finished tree may be shared freely between
// goroutines.
//
// Nodes, tokens and elements are small value types that refer back into
// their tree. Their zero values are "nil" and report [syntax.Unknown] as
// their kind.
package cst

import (
	"iter"
	"strings"

	"github.com/bufbuild/filterexpr/internal/arena"
	"github.com/bufbuild/filterexpr/source"
	"github.com/bufbuild/filterexpr/syntax"
)

// Tree is a finished syntax tree.
type Tree struct {
	file   *source.File
	nodes  arena.Arena[rawNode]
	tokens []rawToken
	root   arena.Pointer[rawNode]
}

type rawToken struct {
	kind       syntax.Kind
	start, end int
}

type rawNode struct {
	kind       syntax.Kind
	start, end int
	children   []rawElement
}

// rawElement is a compressed reference to a child: positive values are node
// pointers, negative values are ^index into Tree.tokens.
type rawElement int32

func (e rawElement) isToken() bool { return e < 0 }

// File returns the file this tree was parsed from.
func (t *Tree) File() *source.File {
	return t.file
}

// Root returns the root node of this tree.
func (t *Tree) Root() Node {
	return Node{t, t.root}
}

// NumTokens returns the number of tokens in this tree.
func (t *Tree) NumTokens() int {
	return len(t.tokens)
}

// Node is a non-terminal in a [Tree].
type Node struct {
	tree *Tree
	ptr  arena.Pointer[rawNode]
}

// IsZero returns whether this is the nil node.
func (n Node) IsZero() bool {
	return n.tree == nil
}

// Kind returns this node's kind, or [syntax.Unknown] for the nil node.
func (n Node) Kind() syntax.Kind {
	if n.IsZero() {
		return syntax.Unknown
	}
	return n.raw().kind
}

// Span implements [source.Spanner].
//
// A node spans from the start of its first token to the end of its last. A
// node with no tokens has an empty span at the point where it was closed.
// The root spans the whole file.
func (n Node) Span() source.Span {
	if n.IsZero() {
		return source.Span{}
	}
	raw := n.raw()
	return n.tree.file.Span(raw.start, raw.end)
}

// Len returns the number of direct children of this node.
func (n Node) Len() int {
	if n.IsZero() {
		return 0
	}
	return len(n.raw().children)
}

// Child returns the ith direct child of this node.
//
// Panics if i is out of bounds.
func (n Node) Child(i int) Element {
	return Element{n.tree, n.raw().children[i]}
}

// Children returns an iterator over the direct children of this node.
func (n Node) Children() iter.Seq[Element] {
	return func(yield func(Element) bool) {
		for i := range n.Len() {
			if !yield(n.Child(i)) {
				return
			}
		}
	}
}

// Tokens returns an iterator over every token under this node, depth-first
// and left to right. This is the order they appeared in the source.
func (n Node) Tokens() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		n.walkTokens(yield)
	}
}

func (n Node) walkTokens(yield func(Token) bool) bool {
	for child := range n.Children() {
		if tok := child.AsToken(); !tok.IsZero() {
			if !yield(tok) {
				return false
			}
			continue
		}
		if !child.AsNode().walkTokens(yield) {
			return false
		}
	}
	return true
}

// Nodes returns an iterator over this node and every node beneath it, in
// preorder, along with each node's depth relative to this one.
func (n Node) Nodes() iter.Seq2[int, Node] {
	return func(yield func(int, Node) bool) {
		if !n.IsZero() {
			n.walkNodes(0, yield)
		}
	}
}

func (n Node) walkNodes(depth int, yield func(int, Node) bool) bool {
	if !yield(depth, n) {
		return false
	}
	for child := range n.Children() {
		if node := child.AsNode(); !node.IsZero() && !node.walkNodes(depth+1, yield) {
			return false
		}
	}
	return true
}

// Text reconstructs the source text of this node by concatenating the text
// of its tokens.
func (n Node) Text() string {
	var b strings.Builder
	for tok := range n.Tokens() {
		b.WriteString(tok.Text())
	}
	return b.String()
}

func (n Node) raw() *rawNode {
	return n.ptr.In(&n.tree.nodes)
}

// Token is a terminal in a [Tree].
type Token struct {
	tree *Tree
	idx  int
}

// IsZero returns whether this is the nil token.
func (t Token) IsZero() bool {
	return t.tree == nil
}

// Kind returns this token's kind, or [syntax.Unknown] for the nil token.
func (t Token) Kind() syntax.Kind {
	if t.IsZero() {
		return syntax.Unknown
	}
	return t.tree.tokens[t.idx].kind
}

// Span implements [source.Spanner].
func (t Token) Span() source.Span {
	if t.IsZero() {
		return source.Span{}
	}
	raw := t.tree.tokens[t.idx]
	return t.tree.file.Span(raw.start, raw.end)
}

// Text returns the source text of this token. Returns "" for the nil token.
func (t Token) Text() string {
	if t.IsZero() {
		return ""
	}
	return t.Span().Text()
}

// Element is a child of a [Node]: either a [Node] or a [Token].
type Element struct {
	tree *Tree
	raw  rawElement
}

// IsZero returns whether this is the nil element.
func (e Element) IsZero() bool {
	return e.tree == nil
}

// AsNode returns this element as a node, or the nil node if it is a token.
func (e Element) AsNode() Node {
	if e.IsZero() || e.raw.isToken() {
		return Node{}
	}
	return Node{e.tree, arena.Pointer[rawNode](e.raw)}
}

// AsToken returns this element as a token, or the nil token if it is a node.
func (e Element) AsToken() Token {
	if e.IsZero() || !e.raw.isToken() {
		return Token{}
	}
	return Token{e.tree, int(^e.raw)}
}

// Kind returns this element's kind.
func (e Element) Kind() syntax.Kind {
	if tok := e.AsToken(); !tok.IsZero() {
		return tok.Kind()
	}
	return e.AsNode().Kind()
}

// Span implements [source.Spanner].
func (e Element) Span() source.Span {
	if tok := e.AsToken(); !tok.IsZero() {
		return tok.Span()
	}
	return e.AsNode().Span()
}
