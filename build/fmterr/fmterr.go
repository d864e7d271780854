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

// Package fmterr defines the errors reported when an intrinsic
// cannot be built from its arguments.
package fmterr

// Kind classifies a typing error.
type Kind int

// Kinds of typing errors.
const (
	// Internal is an error in the construction layer itself.
	Internal Kind = iota
	// KindMismatch is an argument of the wrong type constructor,
	// for example an operator which is not a function.
	KindMismatch
	// PlacementMismatch is a federated argument at the wrong placement,
	// or with an incorrect all_equal flag.
	PlacementMismatch
	// CompatibilityMismatch is a type which fails a numerical predicate.
	CompatibilityMismatch
	// AssignabilityMismatch is an argument whose type cannot be used where
	// the derived type is expected.
	AssignabilityMismatch
	// ArityMismatch is a tuple with the wrong number of elements.
	ArityMismatch
)

var kindNames = map[Kind]string{
	Internal:              "internal",
	KindMismatch:          "kind mismatch",
	PlacementMismatch:     "placement mismatch",
	CompatibilityMismatch: "compatibility mismatch",
	AssignabilityMismatch: "assignability mismatch",
	ArityMismatch:         "arity mismatch",
}

// String returns a string representation of the kind.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Error returns the name of the kind.
// A kind can then be used as a target of errors.Is.
func (k Kind) Error() string {
	return k.String()
}
