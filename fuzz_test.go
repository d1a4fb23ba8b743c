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


package filterexpr_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/filterexpr"
	"github.com/bufbuild/filterexpr/internal/fuzztesting"
)

func FuzzParse(f *testing.F) {
	for _, seed := range []string{
		"",
		"a",
		"target = foo | (level >= info & target = bar)",
		"((a)",
		"a)",
		"() | ",
		"a\t<=\nb",
		"level = \U0001F1FA\U0001F1F8",
	} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, text string) {
		fuzztesting.RunWithTimeout(t, func(context.Context) {
			for _, strict := range []bool{false, true} {
				result, err := filterexpr.Parser{Strict: strict}.Parse(text)
				if err != nil {
					var parseErr *filterexpr.ParseError
					require.True(t, errors.As(err, &parseErr), "unexpected error type: %T", err)
					continue
				}

				if !strings.ContainsAny(text, "\t\n\f") {
					assert.Equal(t, text, result.Text())
				}
				root := result.Root().Span()
				assert.Equal(t, 0, root.Start)
				assert.Equal(t, len(text), root.End)
				if strict {
					assert.Empty(t, result.Report().Diagnostics)
				}
			}
		})
	})
}
