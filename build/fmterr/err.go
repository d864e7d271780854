// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fmterr

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Error is a typing error raised while building an intrinsic.
type Error struct {
	// Kind of the error.
	Kind Kind
	// Func is the name of the intrinsic being built.
	Func string
	// Arg describes the offending argument.
	Arg string
	// Want is what the intrinsic expects.
	Want string
	// Got is what the argument provides.
	Got string
	// Cause is the error which triggered this error, if any.
	Cause error

	stack error
}

// New returns an error of a given kind for an argument of an intrinsic.
// want is what the intrinsic expects, got what has been observed.
func New(kind Kind, fn, arg, want string, got any) *Error {
	return &Error{
		Kind:  kind,
		Func:  fn,
		Arg:   arg,
		Want:  want,
		Got:   fmt.Sprint(got),
		stack: errors.New(kind.String()),
	}
}

// Wrap returns a copy of the error caused by another error.
func (e *Error) Wrap(cause error) *Error {
	c := *e
	c.Cause = cause
	return &c
}

// Internalf returns an internal error.
func Internalf(fn, format string, a ...any) *Error {
	return &Error{
		Kind:  Internal,
		Func:  fn,
		Want:  fmt.Sprintf(format, a...),
		stack: errors.New(Internal.String()),
	}
}

// Error returns the message of the error.
func (e *Error) Error() string {
	if e.Kind == Internal {
		return fmt.Sprintf("internal error in %s: %s. This is a bug, please report it", e.Func, e.Want)
	}
	msg := fmt.Sprintf("%s in call to %s: %s: got %s but want %s", e.Kind, e.Func, e.Arg, e.Got, e.Want)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the cause of the error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether the target is the kind of the error.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

// StackTrace returns where the error has been created.
func (e *Error) StackTrace() errors.StackTrace {
	var withSt interface {
		StackTrace() errors.StackTrace
	}
	if !errors.As(e.stack, &withSt) {
		return nil
	}
	return withSt.StackTrace()
}

// Format writes the error into the state of the formatter.
// %+v also writes the stack trace.
func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "%s\nError generated at:%+v\n", e.Error(), e.StackTrace())
			return
		}
		fallthrough
	case 's':
		io.WriteString(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}

// KindOf returns the kind of a typing error.
// The boolean is false if err does not wrap an *Error.
func KindOf(err error) (Kind, bool) {
	var fErr *Error
	if !errors.As(err, &fErr) {
		return Internal, false
	}
	return fErr.Kind, true
}
