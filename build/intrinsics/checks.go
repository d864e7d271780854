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

package intrinsics

import (
	"github.com/Denliness/federated/build/fmterr"
	"github.com/Denliness/federated/build/intrinsics/defs"
	"github.com/Denliness/federated/build/placement"
	"github.com/Denliness/federated/build/types"
	"github.com/Denliness/federated/build/value"
)

func placedAt(p *placement.Literal) string {
	return "a federated value placed at " + p.Name()
}

// checkFederated returns a type as a federated type if it is placed at want.
func checkFederated(def *defs.Def, arg string, typ types.Type, want *placement.Literal) (*types.Federated, error) {
	fed, ok := typ.(*types.Federated)
	if !ok {
		return nil, fmterr.New(fmterr.KindMismatch, def.URI(), arg, placedAt(want), typ)
	}
	if !placement.Is(fed, want) {
		return nil, fmterr.New(fmterr.PlacementMismatch, def.URI(), arg, placedAt(want), fed)
	}
	if types.ContainsFederated(fed.Member) {
		return nil, fmterr.New(fmterr.PlacementMismatch, def.URI(), arg, "a member type with no federated constituents", fed)
	}
	return fed, nil
}

// checkFunction returns the type of a value if it is a function.
func checkFunction(def *defs.Def, arg string, val *value.Value) (*types.Function, error) {
	fn, ok := val.Type().(*types.Function)
	if !ok {
		return nil, fmterr.New(fmterr.KindMismatch, def.URI(), arg, "a function", val.Type())
	}
	return fn, nil
}

// checkOperator checks that an operator can be used where the expected type is required.
func checkOperator(def *defs.Def, arg string, want *types.Function, op *types.Function) error {
	if !types.IsAssignableFrom(want, op) {
		return fmterr.New(fmterr.AssignabilityMismatch, def.URI(), arg, want.String(), op)
	}
	return nil
}

// checkZero checks that the zero of a reduction has no federated constituents.
func checkZero(def *defs.Def, arg string, zero *value.Value) error {
	if types.ContainsFederated(zero.Type()) {
		return fmterr.New(fmterr.PlacementMismatch, def.URI(), arg, "a value with no federated constituents", zero.Type())
	}
	return nil
}

// place returns the federated type of a result.
// arg is the argument the member type has been derived from.
func place(def *defs.Def, arg string, member types.Type, p *placement.Literal, allEqual bool) (*types.Federated, error) {
	fed, err := types.FederatedAt(member, p, allEqual)
	if err != nil {
		return nil, fmterr.New(fmterr.PlacementMismatch, def.URI(), arg, "a result with no federated constituents", member).Wrap(err)
	}
	return fed, nil
}
