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


// Package report provides diagnostics: errors and warnings attached to spans
// of filter text, and a renderer that prints them with source snippets.
package report

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/bufbuild/filterexpr/source"
)

const (
	Error Level = 1 + iota
	Warning
	Remark
)

// DebugEnv is the environment variable which, when set to a non-empty value,
// causes every diagnostic to record the stack of the code that raised it.
const DebugEnv = "FILTEREXPR_DEBUG"

// Level represents the severity of a diagnostic message.
type Level int8

// String implements [fmt.Stringer].
func (l Level) String() string {
	switch l {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Remark:
		return "remark"
	default:
		return fmt.Sprintf("report.Level(%d)", int(l))
	}
}

// Diagnose is an error that can be rendered as a diagnostic.
type Diagnose interface {
	error

	// Diagnose writes out this error to the given diagnostic.
	//
	// This function should not set Level nor Err; those are set by the
	// diagnostics framework.
	Diagnose(*Diagnostic)
}

// Diagnostic is a type of error that can be rendered as a rich diagnostic.
//
// Not all Diagnostics are "errors", even though Diagnostic does embed error;
// some represent warnings, or perhaps debugging remarks.
type Diagnostic struct {
	// The error that prompted this diagnostic. Its Error() return is used
	// as the diagnostic message, unless Message is set.
	Err error

	// Overrides the text of Err in the rendered diagnostic. Used by errors
	// whose Error() already includes a position, which the renderer prints
	// separately.
	Message string

	// The kind of diagnostic this is, which affects how and whether it is shown
	// to users.
	Level Level

	// A list of annotated source code spans in the diagnostic. The first one
	// is the primary span.
	Annotations []Annotation

	// Notes and help messages to include at the end of the diagnostic, after the
	// Annotations.
	Notes, Help []string

	// Stack trace of the code that raised this diagnostic, one frame per
	// entry. Only populated when DebugEnv is set.
	Debug []string
}

// Annotation is an annotated source code snippet within a [Diagnostic].
type Annotation struct {
	Span source.Span
	// A message to show under this snippet. May be empty.
	Message string
	// Whether this is a "primary" snippet, which is used for deciding whether or not
	// to mark the snippet with the same color as the overall diagnostic.
	Primary bool
}

// Primary returns this diagnostic's primary snippet, if it has one.
//
// If it doesn't have one, it returns the zero annotation.
func (d *Diagnostic) Primary() Annotation {
	for _, annotation := range d.Annotations {
		if annotation.Primary {
			return annotation
		}
	}
	return Annotation{}
}

// Text returns the message this diagnostic renders with.
func (d *Diagnostic) Text() string {
	if d.Message != "" {
		return d.Message
	}
	if d.Err == nil {
		return ""
	}
	return d.Err.Error()
}

// Apply applies the given options to this diagnostic.
func (d *Diagnostic) Apply(options ...DiagnosticOption) *Diagnostic {
	for _, option := range options {
		option(d)
	}
	return d
}

// DiagnosticOption is an option that can be applied to a [Diagnostic].
type DiagnosticOption func(*Diagnostic)

// Message returns a DiagnosticOption that sets the rendered message of a
// diagnostic.
func Message(format string, args ...any) DiagnosticOption {
	return func(d *Diagnostic) {
		d.Message = fmt.Sprintf(format, args...)
	}
}

// Snippet returns a DiagnosticOption that adds a new snippet to a diagnostic.
//
// The first annotation added is the "primary" annotation, and will be rendered
// differently from the others.
func Snippet(at source.Spanner) DiagnosticOption {
	return Snippetf(at, "")
}

// Snippetf returns a DiagnosticOption that adds a new snippet to a diagnostic
// with the given message.
func Snippetf(at source.Spanner, format string, args ...any) DiagnosticOption {
	annotation := Annotation{
		Span:    at.Span(),
		Message: fmt.Sprintf(format, args...),
	}
	return func(d *Diagnostic) {
		if annotation.Span.IsZero() {
			return
		}
		annotation.Primary = len(d.Annotations) == 0
		d.Annotations = append(d.Annotations, annotation)
	}
}

// Note returns a DiagnosticOption that provides the user with context about the
// diagnostic, after the annotations.
func Note(format string, args ...any) DiagnosticOption {
	return func(d *Diagnostic) {
		d.Notes = append(d.Notes, fmt.Sprintf(format, args...))
	}
}

// Help returns a DiagnosticOption that provides the user with a helpful prose
// suggestion for resolving the diagnostic.
func Help(format string, args ...any) DiagnosticOption {
	return func(d *Diagnostic) {
		d.Help = append(d.Help, fmt.Sprintf(format, args...))
	}
}

// Report is a collection of diagnostics.
//
// A zero Report is empty and ready to use.
type Report struct {
	Diagnostics []Diagnostic
}

// Error pushes an error diagnostic onto this report.
func (r *Report) Error(err Diagnose) *Diagnostic {
	d := r.push(err, Error)
	err.Diagnose(d)
	return d
}

// Warn pushes a warning diagnostic onto this report.
func (r *Report) Warn(err Diagnose) *Diagnostic {
	d := r.push(err, Warning)
	err.Diagnose(d)
	return d
}

// Errorf creates a new error diagnostic with an unspecified error type;
// analogous to [fmt.Errorf].
func (r *Report) Errorf(format string, args ...any) *Diagnostic {
	return r.push(fmt.Errorf(format, args...), Error)
}

// Warnf creates a new warning diagnostic with an unspecified error type;
// analogous to [fmt.Errorf].
func (r *Report) Warnf(format string, args ...any) *Diagnostic {
	return r.push(fmt.Errorf(format, args...), Warning)
}

// Remarkf creates a new remark diagnostic with an unspecified error type;
// analogous to [fmt.Errorf].
func (r *Report) Remarkf(format string, args ...any) *Diagnostic {
	return r.push(fmt.Errorf(format, args...), Remark)
}

// Count returns how many diagnostics at the given level this report holds.
func (r *Report) Count(level Level) int {
	var n int
	for _, d := range r.Diagnostics {
		if d.Level == level {
			n++
		}
	}
	return n
}

// Err returns the errors in this report joined with [errors.Join], or nil if
// it contains no error-level diagnostics.
func (r *Report) Err() error {
	var errs []error
	for _, d := range r.Diagnostics {
		if d.Level == Error {
			errs = append(errs, d.Err)
		}
	}
	return errors.Join(errs...)
}

func (r *Report) push(err error, level Level) *Diagnostic {
	d := Diagnostic{Err: err, Level: level}
	if os.Getenv(DebugEnv) != "" {
		d.Debug = callers(3)
	}

	r.Diagnostics = append(r.Diagnostics, d)
	return &r.Diagnostics[len(r.Diagnostics)-1]
}

// callers formats the stack above the given number of frames.
func callers(skip int) []string {
	var pcs [16]uintptr
	n := runtime.Callers(skip+1, pcs[:])
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pcs[:n])

	var out []string
	for {
		frame, more := frames.Next()
		out = append(out, fmt.Sprintf("at %s\n  %s:%d", frame.Function, frame.File, frame.Line))
		if !more {
			return out
		}
	}
}
