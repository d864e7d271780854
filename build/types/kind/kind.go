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

// Package kind defines the element kinds of tensor types.
package kind

import "github.com/gx-org/backend/dtype"

// Kind of the elements of a tensor.
type Kind uint

// Kinds shared with the backend keep the backend numbering.
const (
	Invalid = Kind(dtype.Invalid)

	Bool     = Kind(dtype.Bool)
	Int32    = Kind(dtype.Int32)
	Int64    = Kind(dtype.Int64)
	Uint32   = Kind(dtype.Uint32)
	Uint64   = Kind(dtype.Uint64)
	Bfloat16 = Kind(dtype.Bfloat16)
	Float32  = Kind(dtype.Float32)
	Float64  = Kind(dtype.Float64)

	Int8 = Kind(iota + dtype.MaxDataType)
	Int16
	Uint8
	Uint16
	Float16
	Complex64
	Complex128
	String

	// Max value for a Kind constant.
	Max
)

var names = map[Kind]string{
	Bool:       "bool",
	Int8:       "int8",
	Int16:      "int16",
	Int32:      "int32",
	Int64:      "int64",
	Uint8:      "uint8",
	Uint16:     "uint16",
	Uint32:     "uint32",
	Uint64:     "uint64",
	Bfloat16:   "bfloat16",
	Float16:    "float16",
	Float32:    "float32",
	Float64:    "float64",
	Complex64:  "complex64",
	Complex128: "complex128",
	String:     "string",
}

var fromNames = func() map[string]Kind {
	m := make(map[string]Kind, len(names))
	for k, name := range names {
		m[name] = k
	}
	return m
}()

// String returns a string representation of a kind.
func (k Kind) String() string {
	if name, ok := names[k]; ok {
		return name
	}
	return "invalid"
}

// DType converts a kind into a backend data type.
// Kinds unknown to the backend return dtype.Invalid.
func (k Kind) DType() dtype.DataType {
	if k >= Kind(dtype.MaxDataType) {
		return dtype.Invalid
	}
	return dtype.DataType(k)
}

// FromDType returns the kind of a backend data type.
func FromDType(dt dtype.DataType) Kind {
	if dt >= dtype.MaxDataType {
		return Invalid
	}
	return Kind(dt)
}

// FromString returns a kind given its name.
// Returns Invalid if the name is unknown.
func FromString(name string) Kind {
	k, ok := fromNames[name]
	if !ok {
		return Invalid
	}
	return k
}

// Generic returns the kind of a Go data type.
func Generic[T dtype.GoDataType]() Kind {
	return Kind(dtype.Generic[T]())
}

// IsInteger returns true if the kind is a signed or unsigned integer.
func IsInteger(k Kind) bool {
	switch k {
	case Int8, Int16, Int32, Int64:
		return true
	case Uint8, Uint16, Uint32, Uint64:
		return true
	}
	return false
}

// IsFloat returns true if the kind is a floating-point number.
func IsFloat(k Kind) bool {
	switch k {
	case Bfloat16, Float16, Float32, Float64:
		return true
	}
	return false
}

// IsComplex returns true if the kind is a complex number.
func IsComplex(k Kind) bool {
	return k == Complex64 || k == Complex128
}

// IsNumeric returns true if the kind is an integer, a float, or a complex.
func IsNumeric(k Kind) bool {
	return IsInteger(k) || IsFloat(k) || IsComplex(k)
}
