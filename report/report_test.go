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


package report_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/filterexpr/report"
	"github.com/bufbuild/filterexpr/source"
)

func TestRender(t *testing.T) {
	t.Parallel()

	file := source.NewFile("f", "(a")
	r := new(report.Report)
	r.Errorf("unclosed `(`").Apply(
		report.Snippetf(file.Span(0, 1), "never closed"),
		report.Help("add a `)`"),
	)
	r.Warnf("odd").Apply(report.Snippet(file.Span(1, 2)))
	r.Remarkf("hidden")

	text, errs, warns := report.Renderer{}.RenderString(r)
	assert.Equal(t, 1, errs)
	assert.Equal(t, 1, warns)
	assert.Equal(t, strings.Join([]string{
		"error: unclosed `(`",
		"  --> f:1:1",
		"   |",
		" 1 | (a",
		"   | ^ never closed",
		"   = help: add a `)`",
		"",
		"warning: odd",
		"  --> f:1:2",
		"   |",
		" 1 | (a",
		"   |  ^",
		"",
		"encountered 1 error and 1 warning",
		"",
	}, "\n"), text)

	text, _, _ = report.Renderer{Compact: true, ShowRemarks: true}.RenderString(r)
	assert.Equal(t, strings.Join([]string{
		"error: f:1:1: unclosed `(`",
		"warning: f:1:2: odd",
		"remark: hidden",
		"",
	}, "\n"), text)
}

func TestRenderWidths(t *testing.T) {
	t.Parallel()

	file := source.NewFile("f", "x\nü\tab = 日本 |\n")
	r := new(report.Report)
	r.Errorf("wide").Apply(
		report.Snippetf(file.Span(10, 16), "here"),
		report.Snippetf(file.Span(0, 1), "and here"),
		report.Note("two\nlines"),
	)

	got := report.Renderer{}.Diagnostic(r.Diagnostics[0])
	assert.Equal(t, strings.Join([]string{
		"error: wide",
		"  --> f:2:8",
		"   |",
		" 2 | ü   ab = 日本 |",
		"   |          ^^^^ here",
		" 1 | x",
		"   | - and here",
		"   = note: two",
		"           lines",
	}, "\n"), got)
}

func TestRenderColor(t *testing.T) {
	t.Parallel()

	file := source.NewFile("f", "a")
	r := new(report.Report)
	r.Errorf("bad").Apply(report.Snippet(file.Span(0, 1)))

	text, _, _ := report.Renderer{Colorize: true}.RenderString(r)
	assert.Contains(t, text, "\033[1;31merror: bad\033[0m")
	assert.Contains(t, text, "\033[1;31mencountered 1 error\033[0m")
}

type testError struct{ span source.Span }

func (e testError) Error() string { return "test error" }

func (e testError) Diagnose(d *report.Diagnostic) {
	d.Apply(report.Snippetf(e.span, "right here"))
}

func TestReport(t *testing.T) {
	t.Parallel()

	file := source.NewFile("f", "abc")
	r := new(report.Report)
	require.NoError(t, r.Err())

	d := r.Warn(testError{file.Span(1, 2)})
	assert.Equal(t, report.Warning, d.Level)
	assert.Equal(t, "right here", d.Primary().Message)
	assert.True(t, d.Primary().Primary)
	require.NoError(t, r.Err())

	r.Error(testError{file.Span(0, 1)})
	r.Errorf("second")
	assert.Equal(t, 2, r.Count(report.Error))
	assert.Equal(t, 1, r.Count(report.Warning))

	err := r.Err()
	require.Error(t, err)
	var te testError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, 0, te.span.Start)
	assert.Equal(t, "test error\nsecond", err.Error())

	// Zero spans contribute no snippet.
	d = r.Errorf("no span").Apply(report.Snippet(source.Span{}))
	assert.Empty(t, d.Annotations)
	assert.True(t, d.Primary().Span.IsZero())

	assert.Equal(t, "error", report.Error.String())
	assert.Equal(t, "report.Level(9)", report.Level(9).String())
	assert.True(t, errors.Is(r.Err(), r.Diagnostics[2].Err))
}

//nolint:paralleltest // Uses t.Setenv.
func TestDebugTrace(t *testing.T) {
	t.Setenv(report.DebugEnv, "1")

	r := new(report.Report)
	d := r.Errorf("traced")
	require.NotEmpty(t, d.Debug)
	assert.Contains(t, d.Debug[0], "TestDebugTrace")

	text := report.Renderer{ShowDebug: true}.Diagnostic(*d)
	assert.Contains(t, text, "= debug: at ")
	assert.NotContains(t, report.Renderer{}.Diagnostic(*d), "debug")
}
