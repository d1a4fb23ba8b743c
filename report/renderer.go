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


package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Renderer configures a diagnostic rendering operation.
type Renderer struct {
	// If set, uses a compact one-line format for each diagnostic.
	Compact bool

	// If set, rendering results are enriched with ANSI color escapes.
	Colorize bool

	// If set, remark diagnostics will be printed.
	//
	// Ignored by [Renderer.Diagnostic].
	ShowRemarks bool

	// If set, rendering a diagnostic will show the debug footer.
	ShowDebug bool
}

// Render renders a diagnostic report.
//
// In addition to returning the rendering result, returns how many errors and
// warnings were rendered. The error return is an error when writing to the
// writer.
func (r Renderer) Render(report *Report, out io.Writer) (errorCount, warningCount int, err error) {
	for _, diagnostic := range report.Diagnostics {
		if !r.ShowRemarks && diagnostic.Level == Remark {
			continue
		}

		if _, err = fmt.Fprintln(out, r.Diagnostic(diagnostic)); err != nil {
			return errorCount, warningCount, err
		}
		if !r.Compact {
			if _, err = fmt.Fprintln(out); err != nil {
				return errorCount, warningCount, err
			}
		}

		switch diagnostic.Level {
		case Error:
			errorCount++
		case Warning:
			warningCount++
		}
	}
	if r.Compact {
		return errorCount, warningCount, nil
	}

	c := r.colors()
	pluralize := func(count int, what string) string {
		if count == 1 {
			return "1 " + what
		}
		return fmt.Sprint(count, " ", what, "s")
	}

	switch {
	case errorCount > 0 && warningCount > 0:
		_, err = fmt.Fprint(out, c.bError, "encountered ", pluralize(errorCount, "error"),
			" and ", pluralize(warningCount, "warning"), c.reset, "\n")
	case errorCount > 0:
		_, err = fmt.Fprint(out, c.bError, "encountered ", pluralize(errorCount, "error"), c.reset, "\n")
	case warningCount > 0:
		_, err = fmt.Fprint(out, c.bWarning, "encountered ", pluralize(warningCount, "warning"), c.reset, "\n")
	}
	return errorCount, warningCount, err
}

// RenderString is a helper for calling [Renderer.Render] with a [strings.Builder].
func (r Renderer) RenderString(report *Report) (text string, errorCount, warningCount int) {
	var buf strings.Builder
	e, w, _ := r.Render(report, &buf)
	return buf.String(), e, w
}

// Diagnostic renders a single diagnostic to a string.
func (r Renderer) Diagnostic(d Diagnostic) string {
	c := r.colors()
	primary := d.Primary()

	// For the compact style, we imitate the Go compiler.
	if r.Compact {
		if primary.Span.IsZero() {
			return fmt.Sprintf("%s%s: %s%s", c.forLevel(d.Level), d.Level, d.Text(), c.reset)
		}

		start := primary.Span.StartLoc()
		return fmt.Sprintf(
			"%s%s: %s:%d:%d: %s%s",
			c.forLevel(d.Level), d.Level,
			primary.Span.Path(), start.Line, start.Column,
			d.Text(), c.reset,
		)
	}

	// Otherwise, we imitate the Rust compiler.
	var out strings.Builder
	fmt.Fprint(&out, c.boldForLevel(d.Level), d.Level, ": ", d.Text(), c.reset)

	// Figure out how wide the line bar needs to be. This is given by
	// the width of the largest line value among the annotations.
	var greatestLine int
	for _, snip := range d.Annotations {
		greatestLine = max(greatestLine, snip.Span.EndLoc().Line)
	}
	lineBarWidth := max(2, len(strconv.Itoa(greatestLine)))

	if !primary.Span.IsZero() {
		start := primary.Span.StartLoc()
		out.WriteByte('\n')
		out.WriteString(c.nAccent)
		padBy(&out, lineBarWidth)
		fmt.Fprintf(&out, "--> %s:%d:%d", primary.Span.Path(), start.Line, start.Column)

		// A blank line after the file gives the snippets some visual
		// breathing room.
		out.WriteByte('\n')
		padBy(&out, lineBarWidth)
		out.WriteString(" |")

		for _, snip := range d.Annotations {
			renderSnippet(&out, snip, d.Level, lineBarWidth, &c)
		}
	}

	footers := make([][3]string, 0, len(d.Notes)+len(d.Help)+len(d.Debug))
	for _, note := range d.Notes {
		footers = append(footers, [3]string{c.bRemark, "note", note})
	}
	for _, help := range d.Help {
		footers = append(footers, [3]string{c.bRemark, "help", help})
	}
	if r.ShowDebug {
		for _, debug := range d.Debug {
			footers = append(footers, [3]string{c.bError, "debug", debug})
		}
	}
	for _, footer := range footers {
		out.WriteByte('\n')
		out.WriteString(c.nAccent)
		padBy(&out, lineBarWidth)
		out.WriteString(" = ")
		fmt.Fprint(&out, footer[0], footer[1], ": ", c.reset)
		for i, line := range strings.Split(footer[2], "\n") {
			if i > 0 {
				out.WriteByte('\n')
				padBy(&out, lineBarWidth+3+len(footer[1])+2)
			}
			out.WriteString(line)
		}
	}

	out.WriteString(c.reset)
	return out.String()
}

// renderSnippet renders the source line an annotation starts on, followed by
// an underline beneath the annotated columns.
func renderSnippet(out *strings.Builder, snip Annotation, level Level, lineBarWidth int, c *stylesheet) {
	span := snip.Span
	start, end := span.StartLoc(), span.EndLoc()
	line := span.Line(start.Line)

	// Byte offsets of the underline within the line. Spans that run onto
	// later lines are underlined to the end of the first one.
	lineStart, _ := span.LineOffsets(start.Line)
	from := min(start.Offset-lineStart, len(line))
	to := len(line)
	if end.Line == start.Line {
		to = max(from, min(end.Offset-lineStart, len(line)))
	}

	out.WriteByte('\n')
	out.WriteString(c.nAccent)
	fmt.Fprintf(out, "%*d | ", lineBarWidth, start.Line)
	out.WriteString(c.reset)
	out.WriteString(expandTabs(line))

	underline, color := "^", c.boldForLevel(level)
	if !snip.Primary {
		underline, color = "-", c.bAccent
	}

	out.WriteByte('\n')
	out.WriteString(c.nAccent)
	padBy(out, lineBarWidth)
	out.WriteString(" | ")
	out.WriteString(color)
	padBy(out, stringWidth(line[:from]))
	out.WriteString(strings.Repeat(underline, max(1, stringWidth(line[from:to]))))
	if snip.Message != "" {
		out.WriteByte(' ')
		out.WriteString(snip.Message)
	}
	out.WriteString(c.reset)
}

func (r Renderer) colors() stylesheet {
	if !r.Colorize {
		return stylesheet{}
	}

	return stylesheet{
		reset: "\033[0m",
		// Red.
		nError: "\033[0;31m",
		bError: "\033[1;31m",

		// Yellow.
		nWarning: "\033[0;33m",
		bWarning: "\033[1;33m",

		// Cyan.
		nRemark: "\033[0;36m",
		bRemark: "\033[1;36m",

		// Blue. Used for "accents" such as non-primary span underlines, line
		// numbers, and other rendering details to clearly separate them from
		// the source code (which appears in white).
		nAccent: "\033[0;34m",
		bAccent: "\033[1;34m",
	}
}

// stylesheet is the colors used for pretty-rendering diagnostics.
type stylesheet struct {
	reset string
	// Normal colors.
	nError, nWarning, nRemark, nAccent string
	// Bold colors.
	bError, bWarning, bRemark, bAccent string
}

func (c stylesheet) forLevel(l Level) string {
	switch l {
	case Error:
		return c.nError
	case Warning:
		return c.nWarning
	case Remark:
		return c.nRemark
	default:
		return ""
	}
}

func (c stylesheet) boldForLevel(l Level) string {
	switch l {
	case Error:
		return c.bError
	case Warning:
		return c.bWarning
	case Remark:
		return c.bRemark
	default:
		return ""
	}
}

func padBy(out *strings.Builder, spaces int) {
	for range spaces {
		out.WriteByte(' ')
	}
}
