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


package cst_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/filterexpr/cst"
	"github.com/bufbuild/filterexpr/source"
	"github.com/bufbuild/filterexpr/syntax"
)

// sexpr renders a node as an S-expression, for compact assertions.
func sexpr(n cst.Node) string {
	var b strings.Builder
	fmt.Fprintf(&b, "(%v", n.Kind())
	for child := range n.Children() {
		b.WriteByte(' ')
		if tok := child.AsToken(); !tok.IsZero() {
			fmt.Fprintf(&b, "%q", tok.Text())
		} else {
			b.WriteString(sexpr(child.AsNode()))
		}
	}
	b.WriteByte(')')
	return b.String()
}

func TestBuilderNesting(t *testing.T) {
	t.Parallel()

	file := source.NewFile("test", "(a)")
	b := cst.NewBuilder(file)
	b.Open(syntax.Root)
	b.Token(syntax.OpenParen, file.Span(0, 1))
	b.Open(syntax.BinaryExpr)
	b.Token(syntax.Ident, file.Span(1, 2))
	b.Close()
	b.Token(syntax.CloseParen, file.Span(2, 3))
	b.Close()
	tree := b.Finish()

	assert.Equal(t, `(Root "(" (BinaryExpr "a") ")")`, sexpr(tree.Root()))
	assert.Equal(t, 3, tree.NumTokens())
	assert.Same(t, file, tree.File())

	inner := tree.Root().Child(1).AsNode()
	assert.Equal(t, syntax.BinaryExpr, inner.Kind())
	assert.Equal(t, "a", inner.Span().Text())
	assert.True(t, tree.Root().Child(1).AsToken().IsZero())
	assert.True(t, tree.Root().Child(0).AsNode().IsZero())
	assert.Equal(t, syntax.OpenParen, tree.Root().Child(0).Kind())
}

func TestBuilderCheckpoint(t *testing.T) {
	t.Parallel()

	// Build (a|b)|c left-folded the way the parser does: every operator wraps
	// everything since the checkpoint.
	file := source.NewFile("test", "a|b|c")
	b := cst.NewBuilder(file)
	b.Open(syntax.Root)
	cp := b.Checkpoint()
	b.Token(syntax.Ident, file.Span(0, 1))

	b.Token(syntax.Or, file.Span(1, 2))
	b.OpenAt(cp, syntax.BinaryExpr)
	b.Token(syntax.Ident, file.Span(2, 3))
	b.Close()

	b.Token(syntax.Or, file.Span(3, 4))
	b.OpenAt(cp, syntax.BinaryExpr)
	b.Token(syntax.Ident, file.Span(4, 5))
	b.Close()
	b.Close()
	tree := b.Finish()

	assert.Equal(t,
		`(Root (BinaryExpr (BinaryExpr "a" "|" "b") "|" "c"))`,
		sexpr(tree.Root()),
	)
	assert.Equal(t, "a|b|c", tree.Root().Text())

	var depths []string
	for depth, node := range tree.Root().Nodes() {
		depths = append(depths, fmt.Sprintf("%d:%v@%d..%d", depth, node.Kind(), node.Span().Start, node.Span().End))
	}
	assert.Equal(t, []string{"0:Root@0..5", "1:BinaryExpr@0..5", "2:BinaryExpr@0..3"}, depths)
}

func TestBuilderEmpty(t *testing.T) {
	t.Parallel()

	file := source.NewFile("test", "\t\n")
	b := cst.NewBuilder(file)
	b.Open(syntax.Root)
	b.Open(syntax.BinaryExpr)
	b.Close()
	b.Close()
	tree := b.Finish()

	root := tree.Root()
	assert.Equal(t, 0, root.Span().Start)
	assert.Equal(t, 2, root.Span().End)
	assert.Equal(t, "", root.Text())

	empty := root.Child(0).AsNode()
	assert.Equal(t, 0, empty.Len())
	assert.Equal(t, 0, empty.Span().Len())
}

func TestBuilderMisuse(t *testing.T) {
	t.Parallel()

	file := source.NewFile("test", "ab")
	tests := []struct {
		name  string
		build func(b *cst.Builder)
	}{
		{"close-unopened", func(b *cst.Builder) { b.Close() }},
		{"token-outside-node", func(b *cst.Builder) { b.Token(syntax.Ident, file.Span(0, 1)) }},
		{"open-token-kind", func(b *cst.Builder) { b.Open(syntax.Ident) }},
		{"token-node-kind", func(b *cst.Builder) {
			b.Open(syntax.Root)
			b.Token(syntax.Root, file.Span(0, 1))
		}},
		{"token-wrong-file", func(b *cst.Builder) {
			b.Open(syntax.Root)
			b.Token(syntax.Ident, source.NewFile("other", "ab").Span(0, 1))
		}},
		{"token-out-of-order", func(b *cst.Builder) {
			b.Open(syntax.Root)
			b.Token(syntax.Ident, file.Span(1, 2))
			b.Token(syntax.Ident, file.Span(0, 1))
		}},
		{"stale-checkpoint", func(b *cst.Builder) {
			b.Open(syntax.Root)
			b.Open(syntax.BinaryExpr)
			b.Token(syntax.Ident, file.Span(0, 1))
			b.Token(syntax.Ident, file.Span(1, 2))
			cp := b.Checkpoint()
			b.Close()
			b.OpenAt(cp, syntax.BinaryExpr)
		}},
		{"outer-checkpoint", func(b *cst.Builder) {
			b.Open(syntax.Root)
			b.Token(syntax.Ident, file.Span(0, 1))
			outer := cst.Checkpoint{}
			b.Open(syntax.BinaryExpr)
			b.Token(syntax.Ident, file.Span(1, 2))
			b.OpenAt(outer, syntax.BinaryExpr)
		}},
		{"finish-unclosed", func(b *cst.Builder) {
			b.Open(syntax.Root)
			b.Finish()
		}},
		{"finish-empty", func(b *cst.Builder) { b.Finish() }},
		{"finish-twice", func(b *cst.Builder) {
			b.Open(syntax.Root)
			b.Close()
			b.Finish()
			b.Finish()
		}},
		{"use-after-finish", func(b *cst.Builder) {
			b.Open(syntax.Root)
			b.Close()
			b.Finish()
			b.Open(syntax.Root)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Panics(t, func() { tt.build(cst.NewBuilder(file)) })
		})
	}
}

func TestZeroValues(t *testing.T) {
	t.Parallel()

	var (
		node cst.Node
		tok  cst.Token
		elem cst.Element
	)
	assert.Equal(t, syntax.Unknown, node.Kind())
	assert.Equal(t, syntax.Unknown, tok.Kind())
	assert.Equal(t, syntax.Unknown, elem.Kind())
	assert.True(t, node.Span().IsZero())
	assert.True(t, tok.Span().IsZero())
	assert.True(t, elem.Span().IsZero())
	assert.Equal(t, "", tok.Text())
	assert.Equal(t, "", node.Text())
	assert.Zero(t, node.Len())

	for range node.Nodes() {
		require.Fail(t, "nil node has no descendants")
	}
}
