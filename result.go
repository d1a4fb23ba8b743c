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


package filterexpr

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/bufbuild/filterexpr/cst"
	"github.com/bufbuild/filterexpr/internal/interval"
	"github.com/bufbuild/filterexpr/report"
)

// Result is a successfully parsed filter.
//
// A Result is immutable and may be used from many goroutines at once.
type Result struct {
	tree   *cst.Tree
	report report.Report

	indexOnce sync.Once
	index     interval.Nested[int, cst.Node]
}

// Tree returns the syntax tree.
func (r *Result) Tree() *cst.Tree {
	return r.tree
}

// Root returns the root node of the syntax tree.
func (r *Result) Root() cst.Node {
	return r.tree.Root()
}

// Path returns the path the filter was parsed with.
func (r *Result) Path() string {
	return r.tree.File().Path()
}

// Text reconstructs the parsed text from the tree.
func (r *Result) Text() string {
	return r.Root().Text()
}

// Report returns the warnings produced while parsing.
//
// The returned report is a copy; appending to it does not affect r.
func (r *Result) Report() *report.Report {
	return &report.Report{Diagnostics: slices.Clone(r.report.Diagnostics)}
}

// Render returns a dump of the tree, one element per line.
//
// Nodes are printed as Kind@start..end, with their children beneath them
// indented by two spaces; tokens are printed as Kind followed by their
// quoted text. For example, Render of "a|b" is
//
//	Root@0..3
//	  BinaryExpr@0..3
//	    Ident "a"
//	    Or "|"
//	    Ident "b"
func (r *Result) Render() string {
	var out strings.Builder
	render(&out, r.Root(), 0)
	return strings.TrimSuffix(out.String(), "\n")
}

// String implements [fmt.Stringer]. It is the same as [Result.Render].
func (r *Result) String() string {
	return r.Render()
}

func render(out *strings.Builder, node cst.Node, depth int) {
	span := node.Span()
	indent(out, depth)
	fmt.Fprintf(out, "%v@%d..%d\n", node.Kind(), span.Start, span.End)

	for child := range node.Children() {
		if tok := child.AsToken(); !tok.IsZero() {
			indent(out, depth+1)
			fmt.Fprintf(out, "%v %q\n", tok.Kind(), tok.Text())
			continue
		}
		render(out, child.AsNode(), depth+1)
	}
}

func indent(out *strings.Builder, depth int) {
	for range depth {
		out.WriteString("  ")
	}
}

// Covering returns the nodes whose spans contain the given byte offset,
// from the root inwards.
//
// Returns nil if offset is outside the text. The first call builds an index
// over the tree; later calls are O(d log n) for a tree of depth d.
func (r *Result) Covering(offset int) []cst.Node {
	r.indexOnce.Do(func() {
		for depth, node := range r.Root().Nodes() {
			span := node.Span()
			if span.Len() == 0 {
				continue
			}
			r.index.Insert(depth, span.Start, span.End-1, node)
		}
	})

	var nodes []cst.Node
	for entry := range r.index.Get(offset) {
		nodes = append(nodes, entry.Value)
	}
	return nodes
}
