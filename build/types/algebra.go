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

package types

import "github.com/Denliness/federated/build/types/kind"

// IsAssignableFrom reports whether a value of type source can be used
// where a value of type target is expected.
func IsAssignableFrom(target, source Type) bool {
	if target == nil || source == nil {
		return target == nil && source == nil
	}
	return target.assignableFrom(source)
}

// assignableFrom returns true if the source has the same element kind and rank.
// Axes of unknown length in the receiver accept any length.
func (t *Tensor) assignableFrom(source Type) bool {
	s, ok := source.(*Tensor)
	if !ok || t.DType != s.DType || len(t.Dims) != len(s.Dims) {
		return false
	}
	for i, dim := range t.Dims {
		if dim == UnknownDim {
			continue
		}
		if dim != s.Dims[i] {
			return false
		}
	}
	return true
}

// assignableFrom compares elements in order. Names are ignored.
func (t *Tuple) assignableFrom(source Type) bool {
	s, ok := source.(*Tuple)
	if !ok || len(t.Elements) != len(s.Elements) {
		return false
	}
	for i, elt := range t.Elements {
		if !IsAssignableFrom(elt.Type, s.Elements[i].Type) {
			return false
		}
	}
	return true
}

// assignableFrom is contravariant in the parameter and covariant in the result.
func (t *Function) assignableFrom(source Type) bool {
	s, ok := source.(*Function)
	if !ok {
		return false
	}
	return IsAssignableFrom(s.Param, t.Param) && IsAssignableFrom(t.Result, s.Result)
}

func (t *Sequence) assignableFrom(source Type) bool {
	s, ok := source.(*Sequence)
	return ok && IsAssignableFrom(t.Element, s.Element)
}

// assignableFrom requires the same placement. A source which is not known to be
// equal at all participants cannot be used where an all-equal value is required.
func (t *Federated) assignableFrom(source Type) bool {
	s, ok := source.(*Federated)
	if !ok || t.Placement != s.Placement {
		return false
	}
	if t.AllEqual && !s.AllEqual {
		return false
	}
	return IsAssignableFrom(t.Member, s.Member)
}

// ReductionOp returns the type of a reduction operator (<U,T> -> U)
// where U is the type of the zero and T the type of the reduced members.
func ReductionOp(zero, member Type) *Function {
	return NewFunction(NewTuple(zero, member), zero)
}

// walkLeaves calls f on every tensor reachable through tuples and sequences.
// It returns false as soon as f returns false, or if a type other than
// a tensor, a tuple, or a sequence is reached.
func walkLeaves(typ Type, f func(*Tensor) bool) bool {
	switch typT := typ.(type) {
	case *Tensor:
		return f(typT)
	case *Tuple:
		for _, elt := range typT.Elements {
			if !walkLeaves(elt.Type, f) {
				return false
			}
		}
		return true
	case *Sequence:
		return walkLeaves(typT.Element, f)
	}
	return false
}

// IsSumCompatible returns true if all the tensors of a type are numbers
// and the type has no federated constituents.
func IsSumCompatible(typ Type) bool {
	return walkLeaves(typ, func(t *Tensor) bool {
		return kind.IsNumeric(t.DType)
	})
}

// IsAverageCompatible returns true if all the tensors of a type are
// floating-point or complex numbers and the type has no federated constituents.
func IsAverageCompatible(typ Type) bool {
	return walkLeaves(typ, func(t *Tensor) bool {
		return kind.IsFloat(t.DType) || kind.IsComplex(t.DType)
	})
}

// ContainsFederated returns true if a federated type is reachable from typ.
func ContainsFederated(typ Type) bool {
	switch typT := typ.(type) {
	case *Federated:
		return true
	case *Tuple:
		for _, elt := range typT.Elements {
			if ContainsFederated(elt.Type) {
				return true
			}
		}
	case *Sequence:
		return ContainsFederated(typT.Element)
	case *Function:
		return ContainsFederated(typT.Param) || ContainsFederated(typT.Result)
	}
	return false
}
