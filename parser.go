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
	"github.com/bufbuild/filterexpr/cst"
	"github.com/bufbuild/filterexpr/internal/lexer"
	"github.com/bufbuild/filterexpr/report"
	"github.com/bufbuild/filterexpr/source"
	"github.com/bufbuild/filterexpr/syntax"
)

// parser is the state of a single parse.
//
// It pulls tokens from the lexer one at a time and feeds them to a
// [cst.Builder]. Binary expressions are folded with the builder's
// checkpoints: the left operand is parsed before the parser knows it belongs
// to a BinaryExpr, and is adopted by one when an operator shows up.
type parser struct {
	file    *source.File
	lexer   *lexer.Lexer
	builder *cst.Builder
	report  *report.Report
	strict  bool

	// The next token, if primed. The zero token means end of input.
	next   lexer.Token
	primed bool
}

func newParser(file *source.File, report *report.Report, strict bool) *parser {
	return &parser{
		file:    file,
		lexer:   lexer.New(file),
		builder: cst.NewBuilder(file),
		report:  report,
		strict:  strict,
	}
}

// parse parses the whole file into a Root node.
func (p *parser) parse() (*cst.Tree, error) {
	p.builder.Open(syntax.Root)
	if _, err := p.expr(0); err != nil {
		return nil, err
	}

	if tok := p.peek(); tok.Kind != syntax.Unknown {
		return nil, &ParseError{
			Kind: ErrTrailing,
			Span: tok.Span,
			Want: "end of input",
			Got:  describeToken(tok),
		}
	}

	p.builder.Close()
	return p.builder.Finish(), nil
}

// expr parses an expression made of operators with a left binding power of
// at least minPower.
//
// Returns whether anything other than whitespace was parsed.
func (p *parser) expr(minPower int) (bool, error) {
	checkpoint := p.builder.Checkpoint()

	parsed, err := p.primary()
	if err != nil {
		return false, err
	}

	for {
		op := p.peek()
		if !op.Kind.IsInfixOp() {
			return parsed, nil
		}
		left, right := op.Kind.BindingPower()
		if left < minPower {
			return parsed, nil
		}

		p.bump()
		p.builder.OpenAt(checkpoint, syntax.BinaryExpr)
		if !parsed {
			err := p.emptyOperand(&ParseError{
				Span:    op.Span,
				Got:     describeToken(op),
				Missing: "left operand of " + describeToken(op),
			})
			if err != nil {
				return false, err
			}
		}

		rhs, err := p.expr(right)
		if err != nil {
			return false, err
		}
		if !rhs {
			found := p.peek()
			err := p.emptyOperand(&ParseError{
				Span:    p.spanOf(found),
				Got:     describeToken(found),
				Related: op.Span,
				Missing: "right operand of " + describeToken(op),
			})
			if err != nil {
				return false, err
			}
		}

		p.builder.Close()
		parsed = true
	}
}

// primary parses an identifier, a parenthesized expression, or nothing.
func (p *parser) primary() (bool, error) {
	switch p.peek().Kind {
	case syntax.Ident:
		p.bump()
		return true, nil

	case syntax.OpenParen:
		open := p.bump()
		inner, err := p.expr(0)
		if err != nil {
			return false, err
		}

		closer := p.peek()
		if closer.Kind != syntax.CloseParen {
			return false, &ParseError{
				Kind:    ErrUnclosed,
				Span:    p.spanOf(closer),
				Want:    "`)`",
				Got:     describeToken(closer),
				Related: open.Span,
			}
		}
		if !inner {
			err := p.emptyOperand(&ParseError{
				Span:    closer.Span,
				Got:     describeToken(closer),
				Related: source.Join(open.Span, closer.Span),
				Missing: "expression inside `()`",
			})
			if err != nil {
				return false, err
			}
		}
		p.bump()
		return true, nil

	default:
		return false, nil
	}
}

// emptyOperand records a missing operand. In strict mode it is returned as
// a fatal error instead.
func (p *parser) emptyOperand(err *ParseError) error {
	err.Kind = ErrEmptyOperand
	err.Want = "identifier or `(`"
	if p.strict {
		return err
	}
	p.report.Warn(err)
	return nil
}

// peek returns the next token that is not whitespace, without consuming
// it. Whitespace in the way is added to whichever node is open.
//
// Returns the zero token at end of input.
func (p *parser) peek() lexer.Token {
	for {
		tok := p.lookahead()
		if tok.Kind != syntax.Whitespace {
			return tok
		}
		p.bump()
	}
}

// bump adds the next token to the open node and advances past it.
func (p *parser) bump() lexer.Token {
	tok := p.lookahead()
	if tok.Kind == syntax.Unknown {
		panic("filterexpr: bump past end of input")
	}
	p.builder.Token(tok.Kind, tok.Span)
	p.primed = false
	return tok
}

func (p *parser) lookahead() lexer.Token {
	if !p.primed {
		p.next, _ = p.lexer.Next()
		p.primed = true
	}
	return p.next
}

// spanOf returns the span of tok, or the end of the file for the zero token.
func (p *parser) spanOf(tok lexer.Token) source.Span {
	if tok.Kind == syntax.Unknown {
		return p.file.EOF()
	}
	return tok.Span
}
