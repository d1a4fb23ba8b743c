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


// Package filterexpr parses filter expressions into lossless syntax trees.
//
// A filter is a boolean combination of comparisons over record fields:
//
//	target = foo | (level >= info & target = bar)
//
// Parsing proceeds in the following phases:
//
//  1. Classify the text into tokens.
//     Also see: internal/lexer
//  2. Fold the tokens into binary expressions with one token of lookahead.
//  3. Seal the result into an immutable tree.
//     Also see: cst.Builder
//
// Every token the lexer produces, including each space, ends up in the tree,
// so [Result.Text] returns the input unchanged. Tabs, newlines and form feeds
// are the exception: they separate tokens but are not recorded.
//
// # Grammar
//
//	Root     := Expr
//	Expr     := Primary (InfixOp Expr)*
//	Primary  := Ident | '(' Expr ')' | ε
//	InfixOp  := '&' | '|' | '=' | '>' | '<' | '>=' | '<='
//
// All operators bind equally tightly and associate to the left, so
// a = b & c parses as (a = b) & c. Use parentheses to group otherwise.
//
// # Errors
//
// An unclosed parenthesis or input left over after the expression stops the
// parse with a [*ParseError]. A missing operand, as in a | or (), is only a
// warning, recorded in [Result.Report], unless [Parser.Strict] is set.
//
// # Parser
//
// [Parse] uses a zero [Parser]. Set fields on a Parser to name the input in
// diagnostics, to promote warnings to errors, or to bound the parallelism
// of [Parser.ParseAll]:
//
//	parser := filterexpr.Parser{Path: "alerts.yaml", Strict: true}
//	result, err := parser.Parse(text)
package filterexpr
