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

// Package value pairs type signatures with the expressions computing them.
//
// A value is what the intrinsic constructors consume and produce: its type is
// fixed when the value is created and its expression is opaque to the
// constructors.
package value

import (
	"fmt"

	"github.com/Denliness/federated/build/types"
	"github.com/Denliness/federated/build/types/kind"
	"github.com/gx-org/backend/dtype"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

type (
	// Value is an expression with a type signature.
	Value struct {
		typ  types.Type
		expr Expr
	}

	// Convertible is implemented by any type which can be converted into a value.
	Convertible interface {
		ToValue() (*Value, error)
	}

	// Field is a named element used to build a tuple value.
	Field struct {
		Name string
		Val  any
	}
)

// ErrNotConvertible is returned when a Go value cannot be converted into a value.
var ErrNotConvertible = errors.New("not convertible to a value")

// New returns a value given its type and the expression computing it.
func New(typ types.Type, expr Expr) *Value {
	return &Value{typ: typ, expr: expr}
}

// Type returns the type signature of the value.
func (v *Value) Type() types.Type {
	return v.typ
}

// Expr returns the expression computing the value.
func (v *Value) Expr() Expr {
	return v.expr
}

// Callable returns true if the value is a function.
func (v *Value) Callable() bool {
	_, ok := v.typ.(*types.Function)
	return ok
}

// String representation of the value.
func (v *Value) String() string {
	return v.expr.String()
}

// Ref returns a placeholder value given its name and type.
func Ref(name string, typ types.Type) *Value {
	return New(typ, &Reference{Name: name})
}

// Constant returns a scalar value from a Go value.
func Constant[T dtype.GoDataType](val T) *Value {
	return New(types.Scalar(kind.Generic[T]()), &Data{Val: val})
}

// ComplexConstant returns a complex scalar value from a Go complex number.
func ComplexConstant[T constraints.Complex](val T) *Value {
	k := kind.Complex128
	if _, ok := any(val).(complex64); ok {
		k = kind.Complex64
	}
	return New(types.Scalar(k), &Data{Val: val})
}

// Tuple returns a tuple value of unnamed elements.
func Tuple(vals ...*Value) *Value {
	fields := make([]*Value, len(vals))
	copy(fields, vals)
	return newStruct(make([]string, len(vals)), fields)
}

func newStruct(names []string, vals []*Value) *Value {
	elts := make([]types.Element, len(vals))
	for i, val := range vals {
		elts[i] = types.Element{Name: names[i], Type: val.Type()}
	}
	return New(types.NewNamedTuple(elts...), &Struct{Names: names, Elements: vals})
}

// To converts a Go value into a value.
//
// Values are returned as is and Convertible are converted by calling ToValue.
// Go booleans, numbers, and strings become scalar constants. []any and []Field
// become tuples of converted elements.
func To(x any) (*Value, error) {
	switch xT := x.(type) {
	case nil:
		return nil, errors.Wrap(ErrNotConvertible, "nil")
	case *Value:
		if xT == nil {
			return nil, errors.Wrap(ErrNotConvertible, "nil value")
		}
		return xT, nil
	case Convertible:
		val, err := xT.ToValue()
		if err == nil && val == nil {
			return nil, errors.Wrapf(ErrNotConvertible, "%T returned no value", x)
		}
		return val, err
	case bool:
		return Constant(xT), nil
	case int32:
		return Constant(xT), nil
	case int64:
		return Constant(xT), nil
	case int:
		return Constant(int64(xT)), nil
	case uint32:
		return Constant(xT), nil
	case uint64:
		return Constant(xT), nil
	case float32:
		return Constant(xT), nil
	case float64:
		return Constant(xT), nil
	case int8:
		return scalar(kind.Int8, xT), nil
	case int16:
		return scalar(kind.Int16, xT), nil
	case uint8:
		return scalar(kind.Uint8, xT), nil
	case uint16:
		return scalar(kind.Uint16, xT), nil
	case complex64:
		return ComplexConstant(xT), nil
	case complex128:
		return ComplexConstant(xT), nil
	case string:
		return scalar(kind.String, xT), nil
	case []any:
		fields := make([]Field, len(xT))
		for i, elt := range xT {
			fields[i] = Field{Val: elt}
		}
		return toStruct(fields)
	case []Field:
		return toStruct(xT)
	}
	return nil, errors.Wrapf(ErrNotConvertible, "%T", x)
}

func scalar(k kind.Kind, val any) *Value {
	return New(types.Scalar(k), &Data{Val: val})
}

func toStruct(fields []Field) (*Value, error) {
	names := make([]string, len(fields))
	vals := make([]*Value, len(fields))
	for i, field := range fields {
		val, err := To(field.Val)
		if err != nil {
			return nil, errors.Wrapf(err, "tuple element %s", fieldName(i, field))
		}
		names[i] = field.Name
		vals[i] = val
	}
	return newStruct(names, vals), nil
}

func fieldName(i int, field Field) string {
	if field.Name != "" {
		return fmt.Sprintf("%d (%s)", i, field.Name)
	}
	return fmt.Sprint(i)
}
