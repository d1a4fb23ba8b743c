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


// Package syntax defines the closed set of kinds shared by the filter
// lexer, the syntax tree, and the parser.
package syntax

import "iter"

//go:generate go run github.com/bufbuild/filterexpr/internal/enum kind.yaml

// IsTerminal returns whether this kind labels tokens rather than nodes.
func (v Kind) IsTerminal() bool {
	return v > Unknown && v <= Error
}

// IsInfixOp returns whether a token of this kind is a binary operator.
func (v Kind) IsInfixOp() bool {
	switch v {
	case And, Or, Equals,
		GreaterThan, LessThan,
		GreaterThanOrEqualTo, LessThanOrEqualTo:
		return true
	default:
		return false
	}
}

// BindingPower returns the left and right binding power of an infix
// operator, for precedence climbing.
//
// Every operator binds identically, so a chain of operators always folds
// left to right regardless of which operators it contains. Returns zeros
// for kinds that are not infix operators.
func (v Kind) BindingPower() (left, right int) {
	if !v.IsInfixOp() {
		return 0, 0
	}
	return 1, 2
}

// Kinds returns an iterator over every valid Kind, in declaration order,
// excluding [Unknown].
func Kinds() iter.Seq[Kind] {
	return func(yield func(Kind) bool) {
		for k := Unknown + 1; int(k) < kindCount; k++ {
			if !yield(k) {
				return
			}
		}
	}
}
