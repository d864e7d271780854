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

// Package types defines the types of federated values.
//
// A type is one of:
//   - a tensor with an element kind and a shape,
//   - a tuple of optionally named elements,
//   - a function from a parameter type to a result type,
//   - a sequence of elements of the same type,
//   - a federated type, that is a member type held by every participant of a placement.
//
// Types are immutable once built and can be shared: the fields of a type must
// not be modified after construction. Build federated types with NewFederated
// or FederatedAt, which reject a member type that is already federated.
package types

import (
	"slices"

	"github.com/Denliness/federated/build/placement"
	"github.com/Denliness/federated/build/types/kind"
	"github.com/pkg/errors"
)

// UnknownDim is the length of a tensor axis which is not statically known.
const UnknownDim = -1

type (
	// Type of a federated value.
	Type interface {
		// String returns the compact notation of the type.
		String() string

		// assignableFrom reports whether a value of the source type can be used
		// where a value of the receiver type is expected.
		assignableFrom(source Type) bool

		equal(other Type) bool
	}

	// Tensor is a leaf type: an array of elements of the same kind.
	Tensor struct {
		DType kind.Kind
		// Dims are the axis lengths. An empty slice is a scalar.
		Dims []int
	}

	// Element of a tuple.
	Element struct {
		// Name of the element. Empty for an unnamed element.
		Name string
		Type Type
	}

	// Tuple is a structural product type.
	Tuple struct {
		Elements []Element
	}

	// Function maps a parameter to a result.
	Function struct {
		// Param is nil for a function with no parameter.
		Param  Type
		Result Type
	}

	// Sequence is an unbounded stream of elements.
	Sequence struct {
		Element Type
	}

	// Federated is a member type held by every participant of a placement.
	// Member has no federated constituents when built with FederatedAt.
	Federated struct {
		Member    Type
		Placement *placement.Literal
		// AllEqual is true if all participants hold the same member value.
		AllEqual bool
	}
)

var (
	_ Type = (*Tensor)(nil)
	_ Type = (*Tuple)(nil)
	_ Type = (*Function)(nil)
	_ Type = (*Sequence)(nil)
	_ Type = (*Federated)(nil)

	_ placement.Placed = (*Federated)(nil)
)

// Scalar returns a tensor type of rank 0.
func Scalar(k kind.Kind) *Tensor {
	return &Tensor{DType: k}
}

// NewTensor returns a tensor type given its element kind and axis lengths.
func NewTensor(k kind.Kind, dims ...int) *Tensor {
	return &Tensor{DType: k, Dims: slices.Clone(dims)}
}

// Rank returns the number of axes of the tensor.
func (t *Tensor) Rank() int { return len(t.Dims) }

// IsScalar returns true if the tensor has no axis.
func (t *Tensor) IsScalar() bool { return len(t.Dims) == 0 }

// NewTuple returns a tuple of unnamed elements.
func NewTuple(typs ...Type) *Tuple {
	elts := make([]Element, len(typs))
	for i, typ := range typs {
		elts[i] = Element{Type: typ}
	}
	return &Tuple{Elements: elts}
}

// NewNamedTuple returns a tuple from a list of elements.
func NewNamedTuple(elts ...Element) *Tuple {
	return &Tuple{Elements: slices.Clone(elts)}
}

// Len returns the number of elements in the tuple.
func (t *Tuple) Len() int { return len(t.Elements) }

// Types returns the types of the elements of the tuple.
func (t *Tuple) Types() []Type {
	typs := make([]Type, len(t.Elements))
	for i, elt := range t.Elements {
		typs[i] = elt.Type
	}
	return typs
}

// Field returns an element type given its name.
func (t *Tuple) Field(name string) (Type, bool) {
	if name == "" {
		return nil, false
	}
	for _, elt := range t.Elements {
		if elt.Name == name {
			return elt.Type, true
		}
	}
	return nil, false
}

// NewFunction returns a function type.
// A nil param declares a function with no parameter.
func NewFunction(param, result Type) *Function {
	return &Function{Param: param, Result: result}
}

// NewSequence returns a sequence type.
func NewSequence(elt Type) *Sequence {
	return &Sequence{Element: elt}
}

// NewFederated returns a federated type using the default all_equal flag
// of the placement.
func NewFederated(member Type, p *placement.Literal) (*Federated, error) {
	return FederatedAt(member, p, p.DefaultAllEqual())
}

// FederatedAt returns a federated type.
// Returns an error if the member type has federated constituents.
func FederatedAt(member Type, p *placement.Literal, allEqual bool) (*Federated, error) {
	if member == nil {
		return nil, errors.Errorf("federated type at %s has no member type", p)
	}
	if p == nil {
		return nil, errors.Errorf("federated type of %s has no placement", member)
	}
	if ContainsFederated(member) {
		return nil, errors.Errorf("cannot place %s at %s: member type is already federated", member, p)
	}
	return &Federated{Member: member, Placement: p, AllEqual: allEqual}, nil
}

// PlacementLiteral returns the placement of the federated type.
func (t *Federated) PlacementLiteral() *placement.Literal {
	return t.Placement
}

// Member returns the member type of a federated type.
// Returns nil if the type is not federated.
func Member(typ Type) Type {
	fed, ok := typ.(*Federated)
	if !ok {
		return nil
	}
	return fed.Member
}

// Equal returns true if x and y are structurally the same type.
func Equal(x, y Type) bool {
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	return x.equal(y)
}

func (t *Tensor) equal(other Type) bool {
	o, ok := other.(*Tensor)
	return ok && t.DType == o.DType && slices.Equal(t.Dims, o.Dims)
}

func (t *Tuple) equal(other Type) bool {
	o, ok := other.(*Tuple)
	if !ok || len(t.Elements) != len(o.Elements) {
		return false
	}
	for i, elt := range t.Elements {
		oElt := o.Elements[i]
		if elt.Name != oElt.Name || !Equal(elt.Type, oElt.Type) {
			return false
		}
	}
	return true
}

func (t *Function) equal(other Type) bool {
	o, ok := other.(*Function)
	return ok && Equal(t.Param, o.Param) && Equal(t.Result, o.Result)
}

func (t *Sequence) equal(other Type) bool {
	o, ok := other.(*Sequence)
	return ok && Equal(t.Element, o.Element)
}

func (t *Federated) equal(other Type) bool {
	o, ok := other.(*Federated)
	return ok &&
		t.Placement == o.Placement &&
		t.AllEqual == o.AllEqual &&
		Equal(t.Member, o.Member)
}
