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

	"github.com/bufbuild/filterexpr/internal/lexer"
	"github.com/bufbuild/filterexpr/report"
	"github.com/bufbuild/filterexpr/source"
	"github.com/bufbuild/filterexpr/syntax"
)

// ErrorKind classifies a [ParseError].
type ErrorKind int

const (
	// ErrUnclosed is an open parenthesis with no matching close.
	ErrUnclosed ErrorKind = iota + 1
	// ErrTrailing is input left over after a complete expression, such as
	// an unmatched ) or an unrecognized character.
	ErrTrailing
	// ErrEmptyOperand is an operator with nothing on one side, or a pair of
	// parentheses with nothing between them. It is a warning unless
	// [Parser.Strict] is set.
	ErrEmptyOperand
)

// String implements [fmt.Stringer].
func (k ErrorKind) String() string {
	switch k {
	case ErrUnclosed:
		return "unclosed"
	case ErrTrailing:
		return "trailing"
	case ErrEmptyOperand:
		return "empty operand"
	default:
		return fmt.Sprintf("filterexpr.ErrorKind(%d)", int(k))
	}
}

// ParseError is a problem found while parsing a filter.
type ParseError struct {
	Kind ErrorKind

	// The offending token, or an empty span at the end of the input if the
	// parser ran out of tokens.
	Span source.Span
	// Descriptions of the token the parser wanted and the one it found,
	// e.g. "`)`" and "end of input".
	Want, Got string

	// Where the problem was noticed: for ErrUnclosed, the (; for
	// ErrEmptyOperand, the operator or parentheses missing an operand.
	// Zero for ErrTrailing.
	Related source.Span

	// For ErrEmptyOperand, names what is missing, such as "right operand
	// of `|`".
	Missing string
}

var _ report.Diagnose = (*ParseError)(nil)

// Error implements [error]. The message is prefixed with the position of
// the error, as path:line:col, or line:col if the path is empty.
func (e *ParseError) Error() string {
	if e.Span.IsZero() {
		return e.message()
	}
	loc := e.Span.StartLoc()
	if e.Span.Path() == "" {
		return fmt.Sprintf("%d:%d: %s", loc.Line, loc.Column, e.message())
	}
	return fmt.Sprintf("%s:%d:%d: %s", e.Span.Path(), loc.Line, loc.Column, e.message())
}

// Diagnose implements [report.Diagnose].
func (e *ParseError) Diagnose(d *report.Diagnostic) {
	d.Apply(
		report.Message("%s", e.message()),
		report.Snippetf(e.Span, "expected %s", e.Want),
	)

	switch e.Kind {
	case ErrUnclosed:
		d.Apply(
			report.Snippetf(e.Related, "unclosed `(` opened here"),
			report.Help("add a `)` to close this group"),
		)
	case ErrTrailing:
		switch {
		case e.Got == describe(syntax.CloseParen, ")"):
			d.Apply(report.Help("remove this `)`, or add a `(` before it"))
		case e.Span.Len() > 0 && e.Got == describe(syntax.Error, e.Span.Text()):
			d.Apply(report.Note("filters consist of identifiers, parentheses and the operators & | = < > <= >="))
		}
	case ErrEmptyOperand:
		d.Apply(report.Snippetf(e.Related, "%s is missing", e.Missing))
	}
}

func (e *ParseError) message() string {
	switch e.Kind {
	case ErrUnclosed:
		return fmt.Sprintf("unclosed parenthesis: expected %s, found %s", e.Want, e.Got)
	case ErrTrailing:
		return fmt.Sprintf("expected %s, found %s", e.Want, e.Got)
	case ErrEmptyOperand:
		return fmt.Sprintf("missing %s: expected %s, found %s", e.Missing, e.Want, e.Got)
	default:
		return fmt.Sprintf("expected %s, found %s", e.Want, e.Got)
	}
}

// describeToken describes a token for use in an error message. The zero
// token is the end of the input.
func describeToken(tok lexer.Token) string {
	if tok.Kind == syntax.Unknown {
		return "end of input"
	}
	return describe(tok.Kind, tok.Text())
}

func describe(kind syntax.Kind, text string) string {
	switch kind {
	case syntax.Ident:
		return fmt.Sprintf("identifier `%s`", text)
	case syntax.Error:
		return fmt.Sprintf("unrecognized character `%s`", text)
	default:
		return fmt.Sprintf("`%s`", text)
	}
}
