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

package value

import (
	"fmt"
	"strings"

	"github.com/Denliness/federated/build/types"
)

type (
	// Expr is the expression computing a value.
	Expr interface {
		String() string
		expr()
	}

	// Data is a terminal host value.
	Data struct {
		Val any
	}

	// Reference is a named placeholder for a value computed elsewhere.
	Reference struct {
		Name string
	}

	// Intrinsic is one of the federated intrinsics instantiated
	// with a concrete function type.
	Intrinsic struct {
		// URI is the identifier of the intrinsic in the catalog.
		URI string
		// Type is the function type of the instance.
		Type *types.Function
	}

	// Call applies a function to an argument.
	Call struct {
		Fn *Value
		// Arg is nil when the function has no parameter.
		Arg *Value
		// Packed is true if Arg is the tuple of several arguments.
		Packed bool
	}

	// Struct is a tuple of values.
	Struct struct {
		Names    []string
		Elements []*Value
	}
)

var (
	_ Expr = (*Data)(nil)
	_ Expr = (*Reference)(nil)
	_ Expr = (*Intrinsic)(nil)
	_ Expr = (*Call)(nil)
	_ Expr = (*Struct)(nil)
)

func (*Data) expr()      {}
func (*Reference) expr() {}
func (*Intrinsic) expr() {}
func (*Call) expr()      {}
func (*Struct) expr()    {}

func (e *Data) String() string {
	if s, ok := e.Val.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprint(e.Val)
}

func (e *Reference) String() string {
	return e.Name
}

func (e *Intrinsic) String() string {
	return e.URI
}

func (e *Call) String() string {
	if e.Arg == nil {
		return e.Fn.String() + "()"
	}
	if e.Packed {
		s := e.Arg.String()
		return e.Fn.String() + "(" + s[1:len(s)-1] + ")"
	}
	return e.Fn.String() + "(" + e.Arg.String() + ")"
}

func (e *Struct) String() string {
	var b strings.Builder
	b.WriteString("<")
	for i, elt := range e.Elements {
		if i > 0 {
			b.WriteString(",")
		}
		if e.Names[i] != "" {
			b.WriteString(e.Names[i])
			b.WriteString("=")
		}
		b.WriteString(elt.String())
	}
	b.WriteString(">")
	return b.String()
}

// NewIntrinsic returns a callable value for an intrinsic instance.
func NewIntrinsic(uri string, typ *types.Function) *Value {
	return New(typ, &Intrinsic{URI: uri, Type: typ})
}
