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
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/bufbuild/filterexpr/source"
)

// Parser configures how filters are parsed. A zero Parser is ready to use.
type Parser struct {
	// The name of the input, used in diagnostics and error messages. May be
	// empty.
	Path string

	// If set, a missing operand is a fatal [ErrEmptyOperand] error rather
	// than a warning.
	Strict bool

	// The maximum number of filters [Parser.ParseAll] parses at once. If
	// zero or negative, runtime.GOMAXPROCS(0) is used.
	MaxParallelism int
}

// Parse parses text with a zero [Parser].
func Parse(text string) (*Result, error) {
	return Parser{}.Parse(text)
}

// ParseAll parses texts with a zero [Parser].
func ParseAll(ctx context.Context, texts []string) ([]*Result, error) {
	return Parser{}.ParseAll(ctx, texts)
}

// Parse parses a single filter.
//
// Any text can be parsed, including the empty string, which yields a Root
// with no children. A non-nil error is always a [*ParseError].
func (p Parser) Parse(text string) (*Result, error) {
	result := new(Result)
	state := newParser(source.NewFile(p.Path, text), &result.report, p.Strict)

	tree, err := state.parse()
	if err != nil {
		return nil, err
	}
	result.tree = tree
	return result, nil
}

// ParseAll parses every filter in texts, several at a time.
//
// The results are in the same order as texts. If any filter fails to parse,
// or ctx expires, ParseAll stops starting new parses and returns the first
// error, wrapped with the index of the offending filter.
func (p Parser) ParseAll(ctx context.Context, texts []string) ([]*Result, error) {
	par := p.MaxParallelism
	if par <= 0 {
		par = runtime.GOMAXPROCS(0)
	}

	results := make([]*Result, len(texts))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(par)

	for i, text := range texts {
		if groupCtx.Err() != nil {
			break
		}
		group.Go(func() error {
			if groupCtx.Err() != nil {
				return context.Cause(groupCtx)
			}
			result, err := p.Parse(text)
			if err != nil {
				return fmt.Errorf("filter %d: %w", i, err)
			}
			results[i] = result
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	// The loop may have stopped early because ctx expired without any parse
	// observing it.
	if ctx.Err() != nil {
		return nil, context.Cause(ctx)
	}
	return results, nil
}
