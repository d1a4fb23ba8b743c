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


package cst

import (
	"fmt"
	"slices"

	"github.com/bufbuild/filterexpr/internal/arena"
	"github.com/bufbuild/filterexpr/source"
	"github.com/bufbuild/filterexpr/syntax"
)

// Builder assembles a [Tree] from a sequence of events: opening and closing
// nodes, and appending tokens to whichever node is open.
//
// Besides ordinary nesting, a Builder can open a node around children that
// were already appended to the enclosing node, using a [Checkpoint] taken
// before those children were added. This is what lets a parser build
// left-associative binary expressions in a single pass: it parses the left
// operand, sees the operator, and only then wraps the operand in a new node.
//
// Misusing a Builder (closing more nodes than were opened, using a stale
// checkpoint, using it after [Builder.Finish]) is a programming error and
// panics.
type Builder struct {
	tree *Tree

	// Children appended so far that have not yet been moved into a node.
	// Each entry in parents owns the suffix of this slice starting at its
	// first index.
	children []rawElement
	parents  []parent

	// The end of the most recent token; new tokens may not start before it.
	offset int
}

type parent struct {
	kind  syntax.Kind
	first int
}

// Checkpoint is a position in a [Builder]'s list of pending children.
// See [Builder.OpenAt].
type Checkpoint struct {
	index int
}

// NewBuilder returns a builder for a tree whose tokens come from file.
func NewBuilder(file *source.File) *Builder {
	return &Builder{tree: &Tree{file: file}}
}

// Open opens a new node, which becomes the node that subsequent tokens and
// nodes are appended to until the matching [Builder.Close].
func (b *Builder) Open(kind syntax.Kind) {
	b.OpenAt(b.Checkpoint(), kind)
}

// Checkpoint returns the current position in the list of pending children of
// the open node.
func (b *Builder) Checkpoint() Checkpoint {
	b.checkLive()
	return Checkpoint{len(b.children)}
}

// OpenAt opens a new node, like [Builder.Open], except that every child
// appended since checkpoint was taken is moved into the new node.
//
// checkpoint must have been taken while the currently open node was open,
// and no node opened after it may have been closed since.
func (b *Builder) OpenAt(checkpoint Checkpoint, kind syntax.Kind) {
	b.checkLive()
	if kind.IsTerminal() || kind == syntax.Unknown {
		panic(fmt.Sprintf("cst: cannot open node of token kind %v", kind))
	}
	if checkpoint.index > len(b.children) {
		panic("cst: checkpoint no longer valid, was Close called early?")
	}
	if len(b.parents) > 0 && checkpoint.index < b.parents[len(b.parents)-1].first {
		panic("cst: checkpoint no longer valid, it was taken outside of the open node")
	}

	b.parents = append(b.parents, parent{kind: kind, first: checkpoint.index})
}

// Close closes the most recently opened node and appends it to its parent.
func (b *Builder) Close() {
	b.checkLive()
	if len(b.parents) == 0 {
		panic("cst: Close called with no open node")
	}

	top := b.parents[len(b.parents)-1]
	b.parents = b.parents[:len(b.parents)-1]

	node := rawNode{
		kind:     top.kind,
		start:    b.offset,
		end:      b.offset,
		children: slices.Clone(b.children[top.first:]),
	}
	b.children = b.children[:top.first]

	if n := len(node.children); n > 0 {
		node.start = b.elementSpan(node.children[0]).Start
		node.end = b.elementSpan(node.children[n-1]).End
	}

	ptr := b.tree.nodes.New(node)
	b.children = append(b.children, rawElement(ptr))
}

// Token appends a token to the open node. span must be part of the file the
// builder was created with, and must not start before the previous token
// ends.
func (b *Builder) Token(kind syntax.Kind, span source.Span) {
	b.checkLive()
	switch {
	case !kind.IsTerminal():
		panic(fmt.Sprintf("cst: cannot append token of node kind %v", kind))
	case len(b.parents) == 0:
		panic("cst: Token called with no open node")
	case span.File != b.tree.file:
		panic(fmt.Sprintf("cst: token span %v is not from %q", span, b.tree.file.Path()))
	case span.Start < b.offset || span.End < span.Start:
		panic(fmt.Sprintf("cst: token span %v is out of order", span))
	}

	b.tree.tokens = append(b.tree.tokens, rawToken{kind, span.Start, span.End})
	b.children = append(b.children, ^rawElement(len(b.tree.tokens)-1))
	b.offset = span.End
}

// Finish seals the tree and returns it. Exactly one node must have been
// opened and closed at the top level.
//
// The builder may not be used again afterwards.
func (b *Builder) Finish() *Tree {
	b.checkLive()
	switch {
	case len(b.parents) != 0:
		panic(fmt.Sprintf("cst: Finish called with %d unclosed nodes", len(b.parents)))
	case len(b.children) != 1 || b.children[0].isToken():
		panic("cst: Finish called without exactly one root node")
	}

	tree := b.tree
	tree.root = arena.Pointer[rawNode](b.children[0])

	root := tree.root.In(&tree.nodes)
	root.start, root.end = 0, len(tree.file.Text())

	*b = Builder{}
	return tree
}

func (b *Builder) checkLive() {
	if b.tree == nil {
		panic("cst: use of finished Builder")
	}
}

func (b *Builder) elementSpan(e rawElement) source.Span {
	return Element{b.tree, e}.Span()
}
